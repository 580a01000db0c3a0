package mutate

import (
	"errors"
	"strings"
	"testing"

	"navrail-cli/internal/catalog"
	"navrail-cli/internal/model"
)

func TestAddCustomGroup(t *testing.T) {
	cfg := catalog.DefaultConfig()

	res, err := AddCustomGroup(cfg, "  Projects  ", model.IconFolder, "")
	if err != nil {
		t.Fatalf("AddCustomGroup error: %v", err)
	}
	g := res.Config.FindCustomGroup(res.ID)
	if g == nil {
		t.Fatalf("group %s not found after add", res.ID)
	}
	if g.Name != "Projects" {
		t.Fatalf("name %q; want trimmed %q", g.Name, "Projects")
	}
	if !strings.HasPrefix(g.ID, model.CustomGroupPrefix) {
		t.Fatalf("group id %q missing %q prefix", g.ID, model.CustomGroupPrefix)
	}
	if !g.Enabled {
		t.Fatalf("new groups start enabled")
	}
	if g.Position != len(cfg.ModuleOrder) {
		t.Fatalf("position %d; want end of list %d", g.Position, len(cfg.ModuleOrder))
	}
	if len(cfg.CustomGroups) != 0 {
		t.Fatalf("input config must not be mutated")
	}
}

func TestAddCustomGroup_Rejections(t *testing.T) {
	cfg := catalog.DefaultConfig()
	if _, err := AddCustomGroup(cfg, "   ", model.IconFolder, ""); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName; got %v", err)
	}
	if _, err := AddCustomGroup(cfg, "Projects", model.IconID("nope"), ""); !errors.Is(err, ErrUnknownIcon) {
		t.Fatalf("expected ErrUnknownIcon; got %v", err)
	}
}

func TestEditCustomGroup(t *testing.T) {
	cfg := catalog.DefaultConfig()
	res, err := AddCustomGroup(cfg, "Projects", model.IconFolder, "#112233")
	if err != nil {
		t.Fatalf("AddCustomGroup error: %v", err)
	}
	cfg = res.Config
	id := res.ID

	res, err = EditCustomGroup(cfg, id, "Archive", model.IconBox, "")
	if err != nil {
		t.Fatalf("EditCustomGroup error: %v", err)
	}
	g := res.Config.FindCustomGroup(id)
	if g.Name != "Archive" || g.Icon != model.IconBox || g.IconColor != nil {
		t.Fatalf("edit not applied: %+v", g)
	}

	// Same values again: no-op.
	res2, err := EditCustomGroup(res.Config, id, "Archive", model.IconBox, "")
	if err != nil {
		t.Fatalf("no-op edit error: %v", err)
	}
	if res2.Changed {
		t.Fatalf("expected changed=false for identical edit")
	}

	var nf NotFoundError
	if _, err := EditCustomGroup(cfg, "grp-missing", "X", model.IconFolder, ""); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError; got %v", err)
	}
}

func TestRemoveCustomGroup_StripsParentReferences(t *testing.T) {
	cfg := catalog.DefaultConfig()
	res, err := AddCustomGroup(cfg, "Projects", model.IconFolder, "")
	if err != nil {
		t.Fatalf("AddCustomGroup error: %v", err)
	}
	id := res.ID
	res, err = SetModuleParent(res.Config, "checkouts", id)
	if err != nil {
		t.Fatalf("SetModuleParent error: %v", err)
	}

	res, err = RemoveCustomGroup(res.Config, id)
	if err != nil {
		t.Fatalf("RemoveCustomGroup error: %v", err)
	}
	if res.Config.FindCustomGroup(id) != nil {
		t.Fatalf("group should be gone")
	}
	if _, ok := res.Config.ParentOf("checkouts"); ok {
		t.Fatalf("removal must strip dangling parent references")
	}
}

func TestToggleCustomGroup(t *testing.T) {
	cfg := catalog.DefaultConfig()
	res, err := AddCustomGroup(cfg, "Projects", model.IconFolder, "")
	if err != nil {
		t.Fatalf("AddCustomGroup error: %v", err)
	}
	id := res.ID

	res, err = ToggleCustomGroup(res.Config, id, false)
	if err != nil {
		t.Fatalf("ToggleCustomGroup error: %v", err)
	}
	if res.Config.FindCustomGroup(id).Enabled {
		t.Fatalf("expected group disabled")
	}

	res2, err := ToggleCustomGroup(res.Config, id, false)
	if err != nil {
		t.Fatalf("no-op toggle error: %v", err)
	}
	if res2.Changed {
		t.Fatalf("expected changed=false when flag already matches")
	}
}
