package mutate

import (
	"errors"
	"fmt"
)

// Invalid operations are explicit errors rather than silent no-ops so callers
// can tell "nothing to do" (Changed=false, nil error) apart from "this would
// corrupt an invariant". UIs map these back onto disabled affordances.

var ErrCycle = errors.New("parent assignment would create a cycle")
var ErrNotToggleable = errors.New("module is not toggleable")
var ErrLocked = errors.New("module is locked by a system group")
var ErrEmptyName = errors.New("name is empty")
var ErrUnknownIcon = errors.New("unknown icon id")

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}
