package services

import (
	"context"
	"testing"

	"github.com/rangehub/member_service/internal/domain"
	"github.com/rangehub/member_service/internal/dto"
	"github.com/rangehub/member_service/internal/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memberFixture struct {
	svc       MemberService
	members   *fakeMemberRepo
	addresses *fakeAddressRepo
	plans     *fakePlanRepo
	documents *fakeDocumentRepo
	uploader  *fakeUploader
	audit     *fakeAuditRepo
}

func memberServiceUnderTest(seed ...domain.Member) *memberFixture {
	members := newFakeMemberRepo(seed...)
	addresses := newFakeAddressRepo()
	plans := newFakePlanRepo(domain.Plan{ID: 1, Name: "Gold", Value: 100, RenewValue: 80})
	documents := newFakeDocumentRepo()
	users := newFakeUserRepo(domain.User{ID: 1, Name: "Admin", Email: "admin@example.com", Username: "admin"})
	uploader := &fakeUploader{}
	audit := &fakeAuditRepo{}

	svc := NewMemberService(members, addresses, plans, documents, users, uploader, NewAuditTrail(audit, nil))
	return &memberFixture{
		svc:       svc,
		members:   members,
		addresses: addresses,
		plans:     plans,
		documents: documents,
		uploader:  uploader,
		audit:     audit,
	}
}

func validMemberCreate() dto.MemberCreateRequest {
	return dto.MemberCreateRequest{
		Name:             "Maria Souza",
		RG:               "12.345.678-9",
		IssuingAuthority: "SSP/SP",
		CPF:              "123.456.789-00",
		NaturalityCityID: 5,
		Profession:       "Engineer",
		Email:            "maria@example.com",
		CellPhone:        "+55 11 99999-0000",
		CRNumber:         "CR-1001",
		IssuedAt:         "2020-01-15",
		BirthDate:        "1990-06-30",
		CRValidity:       "2030-01-15",
		Gender:           "female",
		MaritalStatus:    "single",
		BloodTyping:      "OPositive",
		PlanID:           1,
	}
}

func TestMemberCreatePersistsWithAddresses(t *testing.T) {
	fx := memberServiceUnderTest()

	input := validMemberCreate()
	input.Addresses = []dto.AddressInput{
		{Zipcode: "04500-000", Number: "12", Street: "Rua A", CityID: 5},
		{Zipcode: "04500-000", Number: "34", Street: "Rua B", CityID: 5},
	}

	id, err := fx.svc.Create(1, input)

	require.NoError(t, err)
	member, err := fx.members.FindByID(id)
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, "Maria Souza", member.Name)
	assert.Equal(t, uint(1), member.CreatedBy)

	// creation takes the submitted address set as-is
	assert.Len(t, fx.addresses.rows, 2)

	// one member insert plus one per address
	require.Len(t, fx.audit.entries, 3)
	assert.Equal(t, domain.TableMembers, fx.audit.entries[0].TableName)
	assert.Equal(t, domain.TableMembersAddresses, fx.audit.entries[1].TableName)
	assert.Equal(t, domain.TableMembersAddresses, fx.audit.entries[2].TableName)
}

func TestMemberCreateRejectsMissingPlan(t *testing.T) {
	fx := memberServiceUnderTest()

	input := validMemberCreate()
	input.PlanID = 42

	_, err := fx.svc.Create(1, input)

	assert.ErrorIs(t, err, helper.ErrPlanNotFound)
	assert.Empty(t, fx.members.rows)
}

func TestMemberCreateRejectsDuplicateEmail(t *testing.T) {
	fx := memberServiceUnderTest(domain.Member{ID: 9, Name: "Maria", Email: "maria@example.com"})

	_, err := fx.svc.Create(1, validMemberCreate())

	assert.ErrorIs(t, err, helper.ErrEmailInUse)
}

func TestMemberCreateRejectsInvalidGender(t *testing.T) {
	fx := memberServiceUnderTest()

	input := validMemberCreate()
	input.Gender = "unknown"

	_, err := fx.svc.Create(1, input)
	assert.Error(t, err)
}

func TestMemberCreateRejectsBadDate(t *testing.T) {
	fx := memberServiceUnderTest()

	input := validMemberCreate()
	input.BirthDate = "30/06/1990"

	_, err := fx.svc.Create(1, input)
	assert.Error(t, err)
}

func TestMemberUpdateNotFound(t *testing.T) {
	fx := memberServiceUnderTest()

	_, err := fx.svc.Update(1, 42, dto.MemberUpdateRequest{})

	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestMemberUpdateRunsAddressReconciliation(t *testing.T) {
	fx := memberServiceUnderTest(domain.Member{
		ID: 9, Name: "Maria", Email: "maria@example.com", PlanID: 1,
		Lifecycle: domain.Lifecycle{CreatedBy: 1, LastUpdatedBy: 1},
	})
	storedAddress(fx.addresses, 9, "04500-000", "12", "Rua Velha")

	_, err := fx.svc.Update(1, 9, dto.MemberUpdateRequest{
		Addresses: []dto.AddressInput{
			{Zipcode: "04500-000", Number: "12", Street: "Rua Nova", CityID: 5},
		},
	})

	require.NoError(t, err)
	require.Len(t, fx.addresses.rows, 1)
	assert.Equal(t, "Rua Nova", fx.addresses.rows[0].Street)
}

func TestMemberUpdateDisableTransition(t *testing.T) {
	fx := memberServiceUnderTest(domain.Member{
		ID: 9, Name: "Maria", PlanID: 1,
		Lifecycle: domain.Lifecycle{CreatedBy: 1, LastUpdatedBy: 1},
	})

	_, err := fx.svc.Update(1, 9, dto.MemberUpdateRequest{Disabled: boolPtr(true)})

	require.NoError(t, err)
	member := fx.members.rows[0]
	assert.True(t, member.Disabled)
	require.NotNil(t, member.DisabledAt)
	require.NotNil(t, member.LastDisabledBy)
	assert.Equal(t, uint(1), *member.LastDisabledBy)
}

func TestMemberUpdateRejectsEmailTakenByAnother(t *testing.T) {
	fx := memberServiceUnderTest(
		domain.Member{ID: 9, Name: "Maria", Email: "maria@example.com", PlanID: 1},
		domain.Member{ID: 10, Name: "Ana", Email: "ana@example.com", PlanID: 1},
	)

	_, err := fx.svc.Update(1, 9, dto.MemberUpdateRequest{Email: strPtr("ana@example.com")})

	assert.ErrorIs(t, err, helper.ErrEmailInUse)
}

func TestAttachDocumentUploadsAndAudits(t *testing.T) {
	fx := memberServiceUnderTest(domain.Member{ID: 9, Name: "Maria", PlanID: 1})

	document, err := fx.svc.AttachDocument(context.Background(), 1, 9, "cr-certificate.pdf", []byte("%PDF"))

	require.NoError(t, err)
	assert.Equal(t, 1, fx.uploader.uploads)
	assert.Contains(t, document.Path, "members/documents")
	assert.Contains(t, document.Name, ".pdf")

	require.Len(t, fx.audit.entries, 1)
	assert.Equal(t, domain.TableMembersDocuments, fx.audit.entries[0].TableName)
	assert.Equal(t, domain.AuditActionInsert, fx.audit.entries[0].Action)
}

func TestAttachDocumentRejectsEmptyPayload(t *testing.T) {
	fx := memberServiceUnderTest(domain.Member{ID: 9, Name: "Maria", PlanID: 1})

	_, err := fx.svc.AttachDocument(context.Background(), 1, 9, "empty.pdf", nil)
	assert.Error(t, err)
}
