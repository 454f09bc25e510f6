package helper

import (
	"time"

	"github.com/rangehub/member_service/internal/domain"
)

// ResolveLifecycle computes the attribution fields to persist for a create or
// update. existing == nil means create. disabled follows the request body:
// nil leaves the stored disabled state and its attribution untouched, true
// stamps DisabledAt/LastDisabledBy with the acting user (re-stamped every time
// the flag is submitted true), false clears both.
func ResolveLifecycle(disabled *bool, actorID uint, existing *domain.Lifecycle) domain.Lifecycle {
	lc := domain.Lifecycle{
		LastUpdatedBy: actorID,
	}

	if existing == nil {
		lc.CreatedBy = actorID
	} else {
		lc.CreatedBy = existing.CreatedBy
		lc.Disabled = existing.Disabled
		lc.DisabledAt = existing.DisabledAt
		lc.LastDisabledBy = existing.LastDisabledBy
	}

	if disabled == nil {
		return lc
	}

	if *disabled {
		now := time.Now()
		actor := actorID
		lc.Disabled = true
		lc.DisabledAt = &now
		lc.LastDisabledBy = &actor
	} else {
		lc.Disabled = false
		lc.DisabledAt = nil
		lc.LastDisabledBy = nil
	}

	return lc
}
