package reorder

import (
	"errors"
	"reflect"
	"testing"

	"navrail-cli/internal/model"
	"navrail-cli/internal/sidebar"
)

func cfgWith(order []string) *model.ModuleConfig {
	return &model.ModuleConfig{
		Version:        model.SchemaVersion,
		ModuleOrder:    append([]string(nil), order...),
		EnabledModules: map[string]bool{},
		EnabledGroups:  map[string]bool{},
	}
}

func mustApply(t *testing.T, cfg *model.ModuleConfig, src int, ind DropIndicator) *model.ModuleConfig {
	t.Helper()
	out, changed, err := Apply(cfg, DragSession{SourceIndex: src}, ind)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if !changed {
		t.Fatalf("expected a changed config")
	}
	return out
}

func TestApply_ModuleToFront(t *testing.T) {
	cfg := cfgWith([]string{"a", "b", "c", "d"})

	// Drag c (index 2) to before a (index 0).
	out := mustApply(t, cfg, 2, DropIndicator{Index: 0, Position: Before})
	want := []string{"c", "a", "b", "d"}
	if !reflect.DeepEqual(out.ModuleOrder, want) {
		t.Fatalf("order %v; want %v", out.ModuleOrder, want)
	}
	if !reflect.DeepEqual(cfg.ModuleOrder, []string{"a", "b", "c", "d"}) {
		t.Fatalf("input config must not be mutated")
	}
}

func TestApply_GroupMovesWithChildren(t *testing.T) {
	cfg := cfgWith([]string{"a", "b", "c"})
	cfg.CustomGroups = []model.CustomGroup{{ID: "grp-1", Name: "G", Icon: model.IconFolder, Enabled: true, Position: 1}}
	cfg.ModuleParents = map[string]string{"b": "grp-1"}

	// Combined list: [a, grp-1, b, c]. Drag the group to after c.
	out := mustApply(t, cfg, 1, DropIndicator{Index: 3, Position: After})

	if want := []string{"a", "c", "b"}; !reflect.DeepEqual(out.ModuleOrder, want) {
		t.Fatalf("order %v; want %v", out.ModuleOrder, want)
	}
	if got := out.CustomGroups[0].Position; got != 2 {
		t.Fatalf("group position %d; want 2", got)
	}
	if out.ModuleParents["b"] != "grp-1" {
		t.Fatalf("nesting must survive the move")
	}

	// The re-projection keeps the group directly above its child.
	list := sidebar.BuildCombinedOrderList(out)
	want := []model.OrderListItem{
		{Type: model.OrderItemModule, ID: "a"},
		{Type: model.OrderItemModule, ID: "c"},
		{Type: model.OrderItemGroup, ID: "grp-1"},
		{Type: model.OrderItemModule, ID: "b"},
	}
	if !reflect.DeepEqual(list, want) {
		t.Fatalf("combined list %v; want %v", list, want)
	}
}

func TestApply_DividerKeepsNeighbors(t *testing.T) {
	cfg := cfgWith([]string{"a", "b", "c", "d"})
	cfg.Dividers = []model.SectionDivider{{ID: "div-1", Position: 1, Enabled: true}}

	// Combined: [a, b, div-1, c, d]. Move a to the end.
	out := mustApply(t, cfg, 0, DropIndicator{Index: 4, Position: After})

	if want := []string{"b", "c", "d", "a"}; !reflect.DeepEqual(out.ModuleOrder, want) {
		t.Fatalf("order %v; want %v", out.ModuleOrder, want)
	}
	// The divider still sits between b and c: position renumbered to 0.
	if got := out.Dividers[0].Position; got != 0 {
		t.Fatalf("divider position %d; want 0", got)
	}
}

func TestApply_AdjacentDropIsNoOp(t *testing.T) {
	cfg := cfgWith([]string{"a", "b", "c"})

	out, changed, err := Apply(cfg, DragSession{SourceIndex: 1}, DropIndicator{Index: 0, Position: After})
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if changed {
		t.Fatalf("dropping into the source gap must be a no-op")
	}
	if out != cfg {
		t.Fatalf("no-op should return the input config")
	}
}

func TestApply_OutOfRange(t *testing.T) {
	cfg := cfgWith([]string{"a", "b"})
	if _, _, err := Apply(cfg, DragSession{SourceIndex: 9}, DropIndicator{Index: 0, Position: Before}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for source; got %v", err)
	}
	if _, _, err := Apply(cfg, DragSession{SourceIndex: 0}, DropIndicator{Index: 9, Position: Before}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for indicator; got %v", err)
	}
}

func TestStart_LockedModuleRefused(t *testing.T) {
	cfg := cfgWith([]string{"a", "b"})
	cfg.ModuleParents = map[string]string{"a": "sys-admin"}
	list := sidebar.BuildCombinedOrderList(cfg)

	if _, err := Start(cfg, list, 0, 0); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked; got %v", err)
	}
	if _, err := Start(cfg, list, 1, 0); err != nil {
		t.Fatalf("unlocked row should start a drag: %v", err)
	}
	if _, err := Start(cfg, list, 5, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange; got %v", err)
	}
}

func TestIndicator_HalfRowAndCollapse(t *testing.T) {
	s := DragSession{SourceIndex: 0}
	row := RowBounds{Top: 10, Height: 2}

	if ind := Indicator(s, 3, row, 10); ind == nil || ind.Position != Before {
		t.Fatalf("top half should yield a before indicator; got %+v", ind)
	}
	if ind := Indicator(s, 3, row, 11); ind == nil || ind.Position != After {
		t.Fatalf("bottom half should yield an after indicator; got %+v", ind)
	}

	// Gaps adjacent to the dragged row collapse to nil.
	if ind := Indicator(s, 0, row, 10); ind != nil {
		t.Fatalf("before the source row should collapse; got %+v", ind)
	}
	if ind := Indicator(s, 0, row, 11); ind != nil {
		t.Fatalf("after the source row should collapse; got %+v", ind)
	}
	if ind := Indicator(s, 1, row, 10); ind != nil {
		t.Fatalf("before the next row is the same gap; got %+v", ind)
	}
}

func TestApply_UnrepresentableMoveIsNoOp(t *testing.T) {
	// div-1 and grp-1 share the gap between a and b. The position encoding
	// renders dividers before groups within a gap, so swapping them inside the
	// gap cannot take effect; Apply must report changed=false instead of
	// persisting a config that re-projects to the original list.
	cfg := cfgWith([]string{"a", "b"})
	cfg.Dividers = []model.SectionDivider{{ID: "div-1", Position: 0, Enabled: true}}
	cfg.CustomGroups = []model.CustomGroup{{ID: "grp-1", Name: "G", Icon: model.IconFolder, Enabled: true, Position: 1}}

	list := sidebar.BuildCombinedOrderList(cfg)
	want := []model.OrderListItem{
		{Type: model.OrderItemModule, ID: "a"},
		{Type: model.OrderItemDivider, ID: "div-1"},
		{Type: model.OrderItemGroup, ID: "grp-1"},
		{Type: model.OrderItemModule, ID: "b"},
	}
	if !reflect.DeepEqual(list, want) {
		t.Fatalf("combined list %v; want %v", list, want)
	}

	out, changed, err := Apply(cfg, DragSession{SourceIndex: 1}, DropIndicator{Index: 2, Position: After})
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if changed {
		t.Fatalf("move with no representable effect must report changed=false")
	}
	if out != cfg {
		t.Fatalf("no-op should return the input config")
	}
}

func TestApply_GroupBlockDroppedBetweenOthers(t *testing.T) {
	cfg := cfgWith([]string{"a", "b", "c", "d"})
	cfg.CustomGroups = []model.CustomGroup{{ID: "grp-1", Name: "G", Icon: model.IconFolder, Enabled: true, Position: 3}}
	cfg.ModuleParents = map[string]string{"d": "grp-1"}

	// Combined: [a, b, c, grp-1, d]. Drag the group to before b.
	out := mustApply(t, cfg, 3, DropIndicator{Index: 1, Position: Before})

	if want := []string{"a", "d", "b", "c"}; !reflect.DeepEqual(out.ModuleOrder, want) {
		t.Fatalf("order %v; want %v", out.ModuleOrder, want)
	}
	if got := out.CustomGroups[0].Position; got != 1 {
		t.Fatalf("group position %d; want 1", got)
	}
}
