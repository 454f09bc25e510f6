package helper

import (
	"testing"
	"time"

	"github.com/rangehub/member_service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestResolveLifecycleCreateEnabled(t *testing.T) {
	lc := ResolveLifecycle(nil, 7, nil)

	assert.Equal(t, uint(7), lc.CreatedBy)
	assert.Equal(t, uint(7), lc.LastUpdatedBy)
	assert.False(t, lc.Disabled)
	assert.Nil(t, lc.DisabledAt)
	assert.Nil(t, lc.LastDisabledBy)
}

func TestResolveLifecycleCreateDisabled(t *testing.T) {
	before := time.Now()
	lc := ResolveLifecycle(boolPtr(true), 7, nil)

	assert.Equal(t, uint(7), lc.CreatedBy)
	assert.True(t, lc.Disabled)
	require.NotNil(t, lc.DisabledAt)
	assert.False(t, lc.DisabledAt.Before(before))
	require.NotNil(t, lc.LastDisabledBy)
	assert.Equal(t, uint(7), *lc.LastDisabledBy)
}

func TestResolveLifecycleUpdateDisables(t *testing.T) {
	existing := domain.Lifecycle{CreatedBy: 1, LastUpdatedBy: 1}

	lc := ResolveLifecycle(boolPtr(true), 7, &existing)

	assert.Equal(t, uint(1), lc.CreatedBy, "creator attribution must survive updates")
	assert.Equal(t, uint(7), lc.LastUpdatedBy)
	assert.True(t, lc.Disabled)
	require.NotNil(t, lc.DisabledAt)
	require.NotNil(t, lc.LastDisabledBy)
	assert.Equal(t, uint(7), *lc.LastDisabledBy)
}

func TestResolveLifecycleUpdateReenables(t *testing.T) {
	disabledAt := time.Now().Add(-time.Hour)
	disabledBy := uint(3)
	existing := domain.Lifecycle{
		Disabled:       true,
		DisabledAt:     &disabledAt,
		LastDisabledBy: &disabledBy,
		CreatedBy:      1,
		LastUpdatedBy:  3,
	}

	lc := ResolveLifecycle(boolPtr(false), 7, &existing)

	assert.Equal(t, uint(1), lc.CreatedBy)
	assert.Equal(t, uint(7), lc.LastUpdatedBy)
	assert.False(t, lc.Disabled)
	assert.Nil(t, lc.DisabledAt, "re-enabling clears the disable timestamp")
	assert.Nil(t, lc.LastDisabledBy)
}

func TestResolveLifecycleUpdateFlagOmitted(t *testing.T) {
	disabledAt := time.Now().Add(-time.Hour)
	disabledBy := uint(3)
	existing := domain.Lifecycle{
		Disabled:       true,
		DisabledAt:     &disabledAt,
		LastDisabledBy: &disabledBy,
		CreatedBy:      1,
		LastUpdatedBy:  3,
	}

	lc := ResolveLifecycle(nil, 7, &existing)

	assert.Equal(t, uint(7), lc.LastUpdatedBy)
	assert.True(t, lc.Disabled, "omitted flag leaves disabled state untouched")
	require.NotNil(t, lc.DisabledAt)
	assert.True(t, lc.DisabledAt.Equal(disabledAt))
	require.NotNil(t, lc.LastDisabledBy)
	assert.Equal(t, uint(3), *lc.LastDisabledBy)
}

func TestResolveLifecycleCreatedByInvariantOverManyUpdates(t *testing.T) {
	lc := ResolveLifecycle(nil, 1, nil)

	for actor := uint(2); actor < 10; actor++ {
		flag := boolPtr(actor%2 == 0)
		lc = ResolveLifecycle(flag, actor, &lc)
		assert.Equal(t, uint(1), lc.CreatedBy)
		assert.Equal(t, actor, lc.LastUpdatedBy)
	}
}
