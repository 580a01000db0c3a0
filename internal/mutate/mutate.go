// Package mutate is the single write path for sidebar configurations. Every
// operation takes the current config and returns a new one; inputs are never
// modified, so callers can keep the old value for undo or discard-on-close.
package mutate

import (
	"strings"

	"github.com/google/uuid"

	"navrail-cli/internal/model"
)

// Result is the outcome of a mutation.
//
// Changed=false with a nil error means the operation was a well-formed no-op
// (e.g. enabling an already-enabled module); Config is then the input config.
type Result struct {
	Config  *model.ModuleConfig
	Changed bool

	// ID names the mutated entity: the id of a created divider/custom group, or
	// the target module/group id of an applied edit. Empty when Changed=false.
	ID string

	// Event/Payload describe the applied mutation for the event log. Empty when
	// Changed=false.
	Event   string
	Payload map[string]any
}

func unchanged(cfg *model.ModuleConfig) Result {
	return Result{Config: cfg}
}

func newID(prefix string) string {
	return prefix + uuid.NewString()
}

func trim(s string) string { return strings.TrimSpace(s) }
