package sidebar

import (
	"fmt"
	"strings"

	"navrail-cli/internal/catalog"
	"navrail-cli/internal/model"
)

// OrderMismatchError reports a moduleOrder that does not match the catalog.
// This is expected across app versions (catalog upgrades add/remove modules);
// recovery is Reconcile, not a hard failure.
type OrderMismatchError struct {
	Missing    []string // catalog ids absent from moduleOrder
	Unknown    []string // moduleOrder ids absent from the catalog
	Duplicates []string // ids appearing more than once in moduleOrder
}

func (e OrderMismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing %v", e.Missing))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, fmt.Sprintf("unknown %v", e.Unknown))
	}
	if len(e.Duplicates) > 0 {
		parts = append(parts, fmt.Sprintf("duplicate %v", e.Duplicates))
	}
	return "module order mismatch: " + strings.Join(parts, "; ")
}

// CheckOrder verifies that moduleOrder contains every catalog module id exactly
// once. Returns nil or an *OrderMismatchError.
func CheckOrder(cfg *model.ModuleConfig) error {
	if cfg == nil {
		return &OrderMismatchError{Missing: catalog.ModuleIDs()}
	}
	seen := map[string]int{}
	var unknown, dupes []string
	for _, id := range cfg.ModuleOrder {
		seen[id]++
		if seen[id] == 2 {
			dupes = append(dupes, id)
		}
		if _, ok := catalog.FindModule(id); !ok && seen[id] == 1 {
			unknown = append(unknown, id)
		}
	}
	var missing []string
	for _, id := range catalog.ModuleIDs() {
		if seen[id] == 0 {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 && len(unknown) == 0 && len(dupes) == 0 {
		return nil
	}
	return &OrderMismatchError{Missing: missing, Unknown: unknown, Duplicates: dupes}
}

// Reconcile repairs a config against the current catalog: unknown and duplicate
// moduleOrder entries are dropped, missing catalog ids are appended in catalog
// order, enabled flags are seeded for newly appended modules, and per-module
// maps are stripped of entries for modules the catalog no longer defines.
//
// The input is not modified. changed=false means the returned config is the
// input (already consistent).
func Reconcile(cfg *model.ModuleConfig) (*model.ModuleConfig, bool) {
	if cfg == nil {
		return catalog.DefaultConfig(), true
	}
	if err := CheckOrder(cfg); err == nil {
		return cfg, false
	}

	out := cfg.Clone()
	known := map[string]bool{}
	order := make([]string, 0, len(catalog.ModuleIDs()))
	for _, id := range out.ModuleOrder {
		if known[id] {
			continue
		}
		if _, ok := catalog.FindModule(id); !ok {
			continue
		}
		known[id] = true
		order = append(order, id)
	}
	for _, m := range catalog.Modules() {
		if known[m.ID] {
			continue
		}
		known[m.ID] = true
		order = append(order, m.ID)
		if out.EnabledModules == nil {
			out.EnabledModules = map[string]bool{}
		}
		if _, ok := out.EnabledModules[m.ID]; !ok {
			out.EnabledModules[m.ID] = m.Implemented
		}
	}
	out.ModuleOrder = order

	for id := range out.ModuleParents {
		if _, ok := catalog.FindModule(id); !ok {
			delete(out.ModuleParents, id)
		}
	}
	for id := range out.ModuleIconColors {
		if _, ok := catalog.FindModule(id); !ok {
			delete(out.ModuleIconColors, id)
		}
	}
	for id := range out.EnabledModules {
		if _, ok := catalog.FindModule(id); !ok {
			delete(out.EnabledModules, id)
		}
	}
	if out.Version == 0 {
		out.Version = model.SchemaVersion
	}
	return out, true
}
