package helper

import (
	"errors"
	"fmt"
	"strings"
)

// Domain error kinds. Handlers map these to HTTP statuses; raw persistence
// errors never reach the client.
var (
	ErrNotFound      = errors.New("record not found")
	ErrEmailInUse    = errors.New("email already in use")
	ErrUsernameInUse = errors.New("username already in use")
	ErrPlanNotFound  = errors.New("plan not found")
)

// UnknownPermissionsError rejects a whole user write when one or more
// submitted permission codes are absent from the catalog. Codes holds every
// unknown code so the client sees the full list, not just the first.
type UnknownPermissionsError struct {
	Codes []string
}

func (e *UnknownPermissionsError) Error() string {
	return fmt.Sprintf("one or more permissions do not exist: %s", strings.Join(e.Codes, ", "))
}
