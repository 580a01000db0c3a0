package catalog

import (
	"reflect"
	"strings"
	"testing"

	"navrail-cli/internal/model"
)

func TestCatalogIconsHaveGlyphs(t *testing.T) {
	for _, m := range Modules() {
		if _, ok := IconGlyph(m.Icon); !ok {
			t.Fatalf("module %s names icon %q with no unicode glyph", m.ID, m.Icon)
		}
		if g, ok := IconGlyphASCII(m.Icon); !ok || g == "" {
			t.Fatalf("module %s names icon %q with no ascii glyph", m.ID, m.Icon)
		}
	}
	for _, id := range IconIDs() {
		u, _ := IconGlyph(id)
		a, _ := IconGlyphASCII(id)
		if u == "" || a == "" {
			t.Fatalf("icon %q has an empty glyph (unicode %q, ascii %q)", id, u, a)
		}
	}
}

func TestCatalogIDsUniqueAndPrefixed(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Modules() {
		if seen[m.ID] {
			t.Fatalf("duplicate module id %q", m.ID)
		}
		seen[m.ID] = true
		if strings.HasPrefix(m.ID, model.SystemGroupPrefix) ||
			strings.HasPrefix(m.ID, model.CustomGroupPrefix) ||
			strings.HasPrefix(m.ID, model.DividerPrefix) {
			t.Fatalf("module id %q collides with a reserved prefix", m.ID)
		}
	}
	for _, g := range Groups() {
		if seen[g.ID] {
			t.Fatalf("group id %q collides with a module id", g.ID)
		}
		seen[g.ID] = true
		if !strings.HasPrefix(g.ID, model.SystemGroupPrefix) {
			t.Fatalf("system group id %q must carry the %q prefix", g.ID, model.SystemGroupPrefix)
		}
	}
}

func TestCatalogReferencesResolve(t *testing.T) {
	for _, m := range Modules() {
		if _, ok := FindGroup(m.Group); !ok {
			t.Fatalf("module %s names unknown group %q", m.ID, m.Group)
		}
		for _, dep := range m.Dependencies {
			if _, ok := FindModule(dep); !ok {
				t.Fatalf("module %s depends on unknown module %q", m.ID, dep)
			}
			if dep == m.ID {
				t.Fatalf("module %s depends on itself", m.ID)
			}
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Version != model.SchemaVersion {
		t.Fatalf("version %d; want %d", cfg.Version, model.SchemaVersion)
	}
	if !reflect.DeepEqual(cfg.ModuleOrder, ModuleIDs()) {
		t.Fatalf("default order must match the catalog; got %v", cfg.ModuleOrder)
	}
	for _, m := range Modules() {
		enabled, ok := cfg.EnabledModules[m.ID]
		if !ok {
			t.Fatalf("module %s missing an enabled flag", m.ID)
		}
		if enabled != m.Implemented {
			t.Fatalf("module %s enabled=%v; want Implemented=%v", m.ID, enabled, m.Implemented)
		}
	}
	for _, g := range Groups() {
		if !cfg.EnabledGroups[g.ID] {
			t.Fatalf("group %s should start enabled", g.ID)
		}
	}
	if len(cfg.Dividers) != 0 || len(cfg.CustomGroups) != 0 {
		t.Fatalf("default config should carry no dividers or custom groups")
	}
}

func TestDefaultConfig_CopiesAreIndependent(t *testing.T) {
	a := DefaultConfig()
	b := DefaultConfig()
	a.EnabledModules["dashboard"] = false
	a.ModuleOrder[0] = "mutated"
	if !b.EnabledModules["dashboard"] || b.ModuleOrder[0] == "mutated" {
		t.Fatalf("DefaultConfig must return independent values")
	}
}
