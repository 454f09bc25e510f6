package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rangehub/member_service/internal/domain"
	"github.com/rangehub/member_service/internal/dto"
	"github.com/rangehub/member_service/internal/repository"
)

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

// ---------- addresses ----------

type fakeAddressRepo struct {
	rows   []domain.Address
	nextID uint
	failOn string
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{nextID: 1}
}

func (f *fakeAddressRepo) Create(address *domain.Address) (*domain.Address, error) {
	if f.failOn == "create" {
		return nil, errors.New("create failed")
	}
	address.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *address)
	return address, nil
}

func (f *fakeAddressRepo) BulkInsert(addresses []domain.Address) ([]domain.Address, error) {
	if f.failOn == "bulk" {
		return nil, errors.New("bulk insert failed")
	}
	for i := range addresses {
		addresses[i].ID = f.nextID
		f.nextID++
		f.rows = append(f.rows, addresses[i])
	}
	return addresses, nil
}

func (f *fakeAddressRepo) Save(address *domain.Address) error {
	if f.failOn == "save" {
		return errors.New("save failed")
	}
	for i := range f.rows {
		if f.rows[i].ID == address.ID {
			f.rows[i] = *address
			return nil
		}
	}
	return errors.New("address not found")
}

func (f *fakeAddressRepo) FindByZipcode(memberID uint, zipcode string) ([]domain.Address, error) {
	var out []domain.Address
	for _, row := range f.rows {
		if row.MemberID == memberID && row.Zipcode == zipcode {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeAddressRepo) FindByMemberID(memberID uint) ([]domain.Address, error) {
	var out []domain.Address
	for _, row := range f.rows {
		if row.MemberID == memberID {
			out = append(out, row)
		}
	}
	return out, nil
}

// ---------- audit ----------

type fakeAuditRepo struct {
	entries []domain.AuditLog
	failErr error
}

func (f *fakeAuditRepo) Store(entry *domain.AuditLog) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.entries = append(f.entries, *entry)
	return nil
}

type fakeProducer struct {
	published int
	failErr   error
}

func (f *fakeProducer) PublishMessage(key, value []byte) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.published++
	return nil
}

// ---------- permissions ----------

type fakePermissionRepo struct {
	catalog []domain.Permission
}

func (f *fakePermissionRepo) FindByCodes(codes []string) ([]domain.Permission, error) {
	var out []domain.Permission
	for _, code := range codes {
		for _, p := range f.catalog {
			if p.Code == code {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *fakePermissionRepo) List() ([]domain.Permission, error) {
	return f.catalog, nil
}

type fakeUserPermRepo struct {
	replaced map[uint][]uint
	byUser   map[uint][]domain.Permission
}

func newFakeUserPermRepo() *fakeUserPermRepo {
	return &fakeUserPermRepo{
		replaced: make(map[uint][]uint),
		byUser:   make(map[uint][]domain.Permission),
	}
}

func (f *fakeUserPermRepo) ReplaceUserPermissions(userID uint, permissionIDs []uint) error {
	f.replaced[userID] = permissionIDs
	return nil
}

func (f *fakeUserPermRepo) GetPermissionsByUserID(userID uint) ([]domain.Permission, error) {
	return f.byUser[userID], nil
}

// ---------- users ----------

type fakeUserRepo struct {
	rows   []domain.User
	nextID uint
}

func newFakeUserRepo(seed ...domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{nextID: 1}
	for _, user := range seed {
		if user.ID >= repo.nextID {
			repo.nextID = user.ID + 1
		}
		repo.rows = append(repo.rows, user)
	}
	return repo
}

func (f *fakeUserRepo) Create(user *domain.User) (*domain.User, error) {
	user.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *user)
	return user, nil
}

func (f *fakeUserRepo) FindByID(id uint) (*domain.User, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			user := f.rows[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	for i := range f.rows {
		if f.rows[i].Email == email {
			user := f.rows[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*domain.User, error) {
	for i := range f.rows {
		if f.rows[i].Username == username {
			user := f.rows[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(filter repository.ListFilter, sort dto.SortInput) ([]domain.User, error) {
	var out []domain.User
	for _, user := range f.rows {
		if filter.OnlyEnabled && user.Disabled {
			continue
		}
		out = append(out, user)
	}
	return out, nil
}

func (f *fakeUserRepo) Save(user *domain.User) error {
	for i := range f.rows {
		if f.rows[i].ID == user.ID {
			f.rows[i] = *user
			return nil
		}
	}
	return errors.New("user not found")
}

// ---------- plans ----------

type fakePlanRepo struct {
	rows   []domain.Plan
	nextID uint
}

func newFakePlanRepo(seed ...domain.Plan) *fakePlanRepo {
	repo := &fakePlanRepo{nextID: 1}
	for _, plan := range seed {
		if plan.ID >= repo.nextID {
			repo.nextID = plan.ID + 1
		}
		repo.rows = append(repo.rows, plan)
	}
	return repo
}

func (f *fakePlanRepo) Create(plan *domain.Plan) (*domain.Plan, error) {
	plan.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *plan)
	return plan, nil
}

func (f *fakePlanRepo) FindByID(id uint) (*domain.Plan, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			plan := f.rows[i]
			return &plan, nil
		}
	}
	return nil, nil
}

func (f *fakePlanRepo) FindAll(filter repository.ListFilter) ([]domain.Plan, error) {
	var out []domain.Plan
	for _, plan := range f.rows {
		if filter.OnlyEnabled && plan.Disabled {
			continue
		}
		out = append(out, plan)
	}
	return out, nil
}

func (f *fakePlanRepo) Save(plan *domain.Plan) error {
	for i := range f.rows {
		if f.rows[i].ID == plan.ID {
			f.rows[i] = *plan
			return nil
		}
	}
	return errors.New("plan not found")
}

// ---------- members ----------

type fakeMemberRepo struct {
	rows   []domain.Member
	nextID uint
}

func newFakeMemberRepo(seed ...domain.Member) *fakeMemberRepo {
	repo := &fakeMemberRepo{nextID: 1}
	for _, member := range seed {
		if member.ID >= repo.nextID {
			repo.nextID = member.ID + 1
		}
		repo.rows = append(repo.rows, member)
	}
	return repo
}

func (f *fakeMemberRepo) Create(member *domain.Member) (*domain.Member, error) {
	member.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *member)
	return member, nil
}

func (f *fakeMemberRepo) FindByID(id uint) (*domain.Member, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			member := f.rows[i]
			return &member, nil
		}
	}
	return nil, nil
}

func (f *fakeMemberRepo) FindByEmail(email string) (*domain.Member, error) {
	for i := range f.rows {
		if f.rows[i].Email == email {
			member := f.rows[i]
			return &member, nil
		}
	}
	return nil, nil
}

func (f *fakeMemberRepo) FindAll(filter repository.ListFilter) ([]domain.Member, error) {
	var out []domain.Member
	for _, member := range f.rows {
		if filter.OnlyEnabled && member.Disabled {
			continue
		}
		out = append(out, member)
	}
	return out, nil
}

func (f *fakeMemberRepo) Save(member *domain.Member) error {
	for i := range f.rows {
		if f.rows[i].ID == member.ID {
			f.rows[i] = *member
			return nil
		}
	}
	return errors.New("member not found")
}

// ---------- documents ----------

type fakeDocumentRepo struct {
	rows   []domain.MemberDocument
	nextID uint
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{nextID: 1}
}

func (f *fakeDocumentRepo) Create(document *domain.MemberDocument) (*domain.MemberDocument, error) {
	document.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *document)
	return document, nil
}

func (f *fakeDocumentRepo) FindByMemberID(memberID uint) ([]domain.MemberDocument, error) {
	var out []domain.MemberDocument
	for _, row := range f.rows {
		if row.MemberID == memberID {
			out = append(out, row)
		}
	}
	return out, nil
}

// ---------- uploads ----------

type fakeUploader struct {
	uploads int
	failErr error
}

func (f *fakeUploader) UploadBytes(ctx context.Context, folder, filename string, b []byte) (string, error) {
	if f.failErr != nil {
		return "", f.failErr
	}
	f.uploads++
	return fmt.Sprintf("https://cdn.example.com/%s/%s", folder, filename), nil
}
