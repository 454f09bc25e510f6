package services

import (
	"testing"

	"github.com/rangehub/member_service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogWith(codes ...string) *fakePermissionRepo {
	repo := &fakePermissionRepo{}
	for i, code := range codes {
		repo.catalog = append(repo.catalog, domain.Permission{
			ID:   uint(i + 1),
			Code: code,
			Name: code,
		})
	}
	return repo
}

func TestValidateAcceptsKnownCodes(t *testing.T) {
	v := NewPermissionValidator(catalogWith("members.read", "members.write"))

	accepted, unknown, err := v.Validate([]string{"members.read", "members.write"})

	require.NoError(t, err)
	assert.Empty(t, unknown)
	require.Len(t, accepted, 2)
	assert.Equal(t, "members.read", accepted[0].Code)
	assert.Equal(t, "members.write", accepted[1].Code)
}

func TestValidateReportsEveryUnknownCode(t *testing.T) {
	v := NewPermissionValidator(catalogWith("members.read"))

	accepted, unknown, err := v.Validate([]string{"members.read", "bogus", "also.bogus"})

	require.NoError(t, err)
	assert.Len(t, accepted, 1)
	assert.Equal(t, []string{"bogus", "also.bogus"}, unknown)
}

func TestValidateDedupesKeepingFirstOccurrence(t *testing.T) {
	v := NewPermissionValidator(catalogWith("read", "write"))

	accepted, unknown, err := v.Validate([]string{"read", "read", "write", "read"})

	require.NoError(t, err)
	assert.Empty(t, unknown)
	require.Len(t, accepted, 2)
	assert.Equal(t, "read", accepted[0].Code)
	assert.Equal(t, "write", accepted[1].Code)
}

func TestValidateEmptySubmission(t *testing.T) {
	v := NewPermissionValidator(catalogWith("read"))

	accepted, unknown, err := v.Validate(nil)

	require.NoError(t, err)
	assert.Nil(t, accepted)
	assert.Nil(t, unknown)
}
