package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rangehub/member_service/internal/domain"
	"github.com/rangehub/member_service/internal/dto"
	"github.com/rangehub/member_service/internal/helper"
	"github.com/rangehub/member_service/internal/interfaces"
	"github.com/rangehub/member_service/internal/repository"
)

type MemberService interface {
	Create(actorID uint, input dto.MemberCreateRequest) (uint, error)
	List(onlyEnabled bool, search string) ([]domain.Member, error)
	Get(id uint) (*domain.Member, error)
	GetAddresses(memberID uint) ([]domain.Address, error)
	Update(actorID, memberID uint, input dto.MemberUpdateRequest) (uint, error)
	AttachDocument(ctx context.Context, actorID, memberID uint, filename string, data []byte) (*domain.MemberDocument, error)
	ListDocuments(memberID uint) ([]domain.MemberDocument, error)
}

type memberService struct {
	members    repository.MemberRepository
	addresses  repository.AddressRepository
	plans      repository.PlanRepository
	documents  repository.DocumentRepository
	users      repository.UserRepository
	uploader   interfaces.Uploader
	audit      AuditTrail
	reconciler *AddressReconciler
}

func NewMemberService(
	members repository.MemberRepository,
	addresses repository.AddressRepository,
	plans repository.PlanRepository,
	documents repository.DocumentRepository,
	users repository.UserRepository,
	uploader interfaces.Uploader,
	audit AuditTrail,
) MemberService {
	return &memberService{
		members:    members,
		addresses:  addresses,
		plans:      plans,
		documents:  documents,
		users:      users,
		uploader:   uploader,
		audit:      audit,
		reconciler: NewAddressReconciler(addresses, audit),
	}
}

var validGenders = map[string]bool{"male": true, "female": true, "other": true}

var validMaritalStatuses = map[string]bool{
	"single": true, "married": true, "widower": true, "legally_separated": true, "divorced": true,
}

var validBloodTypings = map[string]bool{
	"APositive": true, "ANegative": true, "BPositive": true, "BNegative": true,
	"ABPositive": true, "ABNegative": true, "OPositive": true, "ONegative": true,
}

func (m *memberService) Create(actorID uint, input dto.MemberCreateRequest) (uint, error) {
	if err := m.checkActor(actorID); err != nil {
		return 0, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || strings.TrimSpace(input.RG) == "" || strings.TrimSpace(input.IssuingAuthority) == "" ||
		strings.TrimSpace(input.CPF) == "" || strings.TrimSpace(input.Profession) == "" ||
		strings.TrimSpace(input.CellPhone) == "" || strings.TrimSpace(input.CRNumber) == "" {
		return 0, errors.New("invalid inputs")
	}
	if input.NaturalityCityID == 0 || input.PlanID == 0 {
		return 0, errors.New("invalid inputs")
	}
	if !validGenders[input.Gender] {
		return 0, errors.New("invalid gender")
	}
	if !validMaritalStatuses[input.MaritalStatus] {
		return 0, errors.New("invalid marital status")
	}
	if !validBloodTypings[input.BloodTyping] {
		return 0, errors.New("invalid blood typing")
	}

	issuedAt, err := parseDate(input.IssuedAt)
	if err != nil {
		return 0, errors.New("invalid issued_at date")
	}
	birthDate, err := parseDate(input.BirthDate)
	if err != nil {
		return 0, errors.New("invalid birth_date date")
	}
	crValidity, err := parseDate(input.CRValidity)
	if err != nil {
		return 0, errors.New("invalid cr_validity date")
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email != "" {
		existing, err := m.members.FindByEmail(email)
		if err != nil {
			return 0, err
		}
		if existing != nil {
			return 0, helper.ErrEmailInUse
		}
	}

	plan, err := m.plans.FindByID(input.PlanID)
	if err != nil {
		return 0, err
	}
	if plan == nil {
		return 0, helper.ErrPlanNotFound
	}

	member := &domain.Member{
		Name:             name,
		RG:               strings.TrimSpace(input.RG),
		IssuingAuthority: strings.TrimSpace(input.IssuingAuthority),
		CPF:              strings.TrimSpace(input.CPF),
		NaturalityCityID: input.NaturalityCityID,
		MotherName:       strings.TrimSpace(input.MotherName),
		FatherName:       strings.TrimSpace(input.FatherName),
		Profession:       strings.TrimSpace(input.Profession),
		Email:            email,
		Phone:            strings.TrimSpace(input.Phone),
		CellPhone:        strings.TrimSpace(input.CellPhone),
		CRNumber:         strings.TrimSpace(input.CRNumber),
		IssuedAt:         issuedAt,
		BirthDate:        birthDate,
		CRValidity:       crValidity,
		HealthIssues:     strings.TrimSpace(input.HealthIssues),
		Gender:           input.Gender,
		MaritalStatus:    input.MaritalStatus,
		BloodTyping:      input.BloodTyping,
		PlanID:           input.PlanID,
	}
	member.Lifecycle = helper.ResolveLifecycle(input.Disabled, actorID, nil)

	created, err := m.members.Create(member)
	if err != nil {
		return 0, err
	}
	m.audit.Record(domain.TableMembers, domain.AuditActionInsert, created.ID, actorID)

	// creation takes the submitted set as-is, no matching
	if len(input.Addresses) > 0 {
		batch := make([]domain.Address, 0, len(input.Addresses))
		for _, in := range input.Addresses {
			address := domain.Address{MemberID: created.ID}
			applyAddressInput(&address, in)
			address.Lifecycle = helper.ResolveLifecycle(nil, actorID, nil)
			batch = append(batch, address)
		}

		inserted, err := m.addresses.BulkInsert(batch)
		if err != nil {
			return 0, err
		}
		for _, address := range inserted {
			m.audit.Record(domain.TableMembersAddresses, domain.AuditActionInsert, address.ID, actorID)
		}
	}

	return created.ID, nil
}

func (m *memberService) List(onlyEnabled bool, search string) ([]domain.Member, error) {
	return m.members.FindAll(repository.ListFilter{
		OnlyEnabled: onlyEnabled,
		Search:      search,
	})
}

func (m *memberService) Get(id uint) (*domain.Member, error) {
	if id == 0 {
		return nil, errors.New("invalid member id")
	}

	member, err := m.members.FindByID(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, helper.ErrNotFound
	}
	return member, nil
}

func (m *memberService) GetAddresses(memberID uint) ([]domain.Address, error) {
	if memberID == 0 {
		return nil, errors.New("invalid member id")
	}
	return m.addresses.FindByMemberID(memberID)
}

func (m *memberService) Update(actorID, memberID uint, input dto.MemberUpdateRequest) (uint, error) {
	if memberID == 0 {
		return 0, errors.New("invalid member id")
	}
	if err := m.checkActor(actorID); err != nil {
		return 0, err
	}

	member, err := m.members.FindByID(memberID)
	if err != nil {
		return 0, err
	}
	if member == nil {
		return 0, helper.ErrNotFound
	}

	if input.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*input.Email))
		if email != "" && email != member.Email {
			existing, err := m.members.FindByEmail(email)
			if err != nil {
				return 0, err
			}
			if existing != nil {
				return 0, helper.ErrEmailInUse
			}
		}
		member.Email = email
	}

	if input.PlanID != nil {
		plan, err := m.plans.FindByID(*input.PlanID)
		if err != nil {
			return 0, err
		}
		if plan == nil {
			return 0, helper.ErrPlanNotFound
		}
		member.PlanID = *input.PlanID
	}

	if err := applyMemberUpdate(member, input); err != nil {
		return 0, err
	}

	member.Lifecycle = helper.ResolveLifecycle(input.Disabled, actorID, &member.Lifecycle)

	if err := m.members.Save(member); err != nil {
		return 0, err
	}
	m.audit.Record(domain.TableMembers, domain.AuditActionUpdate, member.ID, actorID)

	if len(input.Addresses) > 0 {
		if err := m.reconciler.Reconcile(member.ID, actorID, input.Addresses); err != nil {
			return 0, err
		}
	}

	return member.ID, nil
}

func (m *memberService) AttachDocument(
	ctx context.Context,
	actorID, memberID uint,
	filename string,
	data []byte,
) (*domain.MemberDocument, error) {
	if err := m.checkActor(actorID); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("empty document")
	}

	member, err := m.members.FindByID(memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, helper.ErrNotFound
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	url, err := m.uploader.UploadBytes(ctx, "members/documents", key, data)
	if err != nil {
		return nil, fmt.Errorf("upload document failed: %w", err)
	}

	document := &domain.MemberDocument{
		MemberID: memberID,
		Name:     key,
		Path:     url,
	}
	document.Lifecycle = helper.ResolveLifecycle(nil, actorID, nil)

	created, err := m.documents.Create(document)
	if err != nil {
		return nil, err
	}
	m.audit.Record(domain.TableMembersDocuments, domain.AuditActionInsert, created.ID, actorID)

	return created, nil
}

func (m *memberService) ListDocuments(memberID uint) ([]domain.MemberDocument, error) {
	if memberID == 0 {
		return nil, errors.New("invalid member id")
	}
	return m.documents.FindByMemberID(memberID)
}

func (m *memberService) checkActor(actorID uint) error {
	if actorID == 0 {
		return errors.New("request user not found")
	}
	actor, err := m.users.FindByID(actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return errors.New("request user not found")
	}
	return nil
}

func applyMemberUpdate(member *domain.Member, input dto.MemberUpdateRequest) error {
	if input.Name != nil {
		member.Name = strings.TrimSpace(*input.Name)
	}
	if input.RG != nil {
		member.RG = strings.TrimSpace(*input.RG)
	}
	if input.IssuingAuthority != nil {
		member.IssuingAuthority = strings.TrimSpace(*input.IssuingAuthority)
	}
	if input.CPF != nil {
		member.CPF = strings.TrimSpace(*input.CPF)
	}
	if input.NaturalityCityID != nil {
		member.NaturalityCityID = *input.NaturalityCityID
	}
	if input.MotherName != nil {
		member.MotherName = strings.TrimSpace(*input.MotherName)
	}
	if input.FatherName != nil {
		member.FatherName = strings.TrimSpace(*input.FatherName)
	}
	if input.Profession != nil {
		member.Profession = strings.TrimSpace(*input.Profession)
	}
	if input.Phone != nil {
		member.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.CellPhone != nil {
		member.CellPhone = strings.TrimSpace(*input.CellPhone)
	}
	if input.CRNumber != nil {
		member.CRNumber = strings.TrimSpace(*input.CRNumber)
	}
	if input.HealthIssues != nil {
		member.HealthIssues = strings.TrimSpace(*input.HealthIssues)
	}
	if input.Gender != nil {
		if !validGenders[*input.Gender] {
			return errors.New("invalid gender")
		}
		member.Gender = *input.Gender
	}
	if input.MaritalStatus != nil {
		if !validMaritalStatuses[*input.MaritalStatus] {
			return errors.New("invalid marital status")
		}
		member.MaritalStatus = *input.MaritalStatus
	}
	if input.BloodTyping != nil {
		if !validBloodTypings[*input.BloodTyping] {
			return errors.New("invalid blood typing")
		}
		member.BloodTyping = *input.BloodTyping
	}
	if input.IssuedAt != nil {
		t, err := parseDate(*input.IssuedAt)
		if err != nil {
			return errors.New("invalid issued_at date")
		}
		member.IssuedAt = t
	}
	if input.BirthDate != nil {
		t, err := parseDate(*input.BirthDate)
		if err != nil {
			return errors.New("invalid birth_date date")
		}
		member.BirthDate = t
	}
	if input.CRValidity != nil {
		t, err := parseDate(*input.CRValidity)
		if err != nil {
			return errors.New("invalid cr_validity date")
		}
		member.CRValidity = t
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
