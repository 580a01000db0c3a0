package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"navrail-cli/internal/catalog"
	"navrail-cli/internal/model"
	"navrail-cli/internal/store"
)

func newTestModel(t *testing.T) appModel {
	t.Helper()
	t.Setenv("NAVRAIL_EVENTLOG", "jsonl")
	m := newAppModel(store.Store{Dir: t.TempDir()}, catalog.DefaultConfig())
	return step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func step(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(appModel)
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestAppToggleModule(t *testing.T) {
	m := newTestModel(t)

	// Row 1 is notifications in the default catalog order.
	m = step(t, m, key('j'))
	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace})

	if m.cfg.EnabledModules["notifications"] {
		t.Fatalf("space should disable the selected module")
	}
	if !m.dirty {
		t.Fatalf("mutations mark the model dirty")
	}
}

func TestAppToggleRequiredShowsError(t *testing.T) {
	m := newTestModel(t)

	// Row 0 is dashboard, which is required.
	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace})

	if !m.cfg.EnabledModules["dashboard"] {
		t.Fatalf("required module must stay enabled")
	}
	if !m.statusIsErr || m.status == "" {
		t.Fatalf("expected an error in the status line; got %q", m.status)
	}
	if m.dirty {
		t.Fatalf("a rejected mutation must not dirty the model")
	}
}

func TestAppMoveRowFollowsCursor(t *testing.T) {
	m := newTestModel(t)

	m = step(t, m, key('j'))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyShiftDown})

	want := []string{"dashboard", "settings", "notifications"}
	for i, id := range want {
		if m.cfg.ModuleOrder[i] != id {
			t.Fatalf("order %v; want prefix %v", m.cfg.ModuleOrder[:3], want)
		}
	}
	if r, ok := m.currentRow(); !ok || r.item.ID != "notifications" {
		t.Fatalf("cursor should follow the moved row; got %+v", r)
	}
	if !m.dirty {
		t.Fatalf("moves mark the model dirty")
	}
}

func TestAppMouseDragReorder(t *testing.T) {
	m := newTestModel(t)

	// Row 2 (settings) sits at screen line headerLines+2.
	m = step(t, m, tea.MouseMsg{Y: headerLines + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.drag == nil {
		t.Fatalf("left press on a row should start a drag")
	}
	// Hover the top half of row 0.
	m = step(t, m, tea.MouseMsg{Y: headerLines, Action: tea.MouseActionMotion})
	if m.indicator == nil || m.indicator.Index != 0 {
		t.Fatalf("expected a drop indicator at row 0; got %+v", m.indicator)
	}
	m = step(t, m, tea.MouseMsg{Y: headerLines, Action: tea.MouseActionRelease})

	if m.drag != nil || m.indicator != nil {
		t.Fatalf("release should clear the drag state")
	}
	if m.cfg.ModuleOrder[0] != "settings" {
		t.Fatalf("order %v; want settings first", m.cfg.ModuleOrder[:3])
	}
}

func TestAppMouseDragLockedRefused(t *testing.T) {
	t.Setenv("NAVRAIL_EVENTLOG", "jsonl")
	cfg := catalog.DefaultConfig()
	cfg.ModuleParents = map[string]string{"dashboard": "sys-general"}
	m := newAppModel(store.Store{Dir: t.TempDir()}, cfg)
	m = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m = step(t, m, tea.MouseMsg{Y: headerLines, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.drag != nil {
		t.Fatalf("locked modules must refuse the drag")
	}
	if !m.statusIsErr {
		t.Fatalf("expected a status message for the refused drag")
	}
}

func TestAppAddDividerAndRemove(t *testing.T) {
	m := newTestModel(t)

	m = step(t, m, key('d'))
	if len(m.cfg.Dividers) != 1 {
		t.Fatalf("d should append a divider; got %+v", m.cfg.Dividers)
	}

	// The divider lands at the end of the list; select and delete it.
	for range m.rows {
		m = step(t, m, key('j'))
	}
	r, _ := m.currentRow()
	if r.item.Type != model.OrderItemDivider {
		t.Fatalf("last row should be the new divider; got %+v", r)
	}
	m = step(t, m, key('x'))
	if len(m.cfg.Dividers) != 0 {
		t.Fatalf("x should remove the selected divider")
	}
}

func TestAppAddGroupViaInput(t *testing.T) {
	m := newTestModel(t)

	m = step(t, m, key('g'))
	if m.mode != modeInput {
		t.Fatalf("g should open the input prompt")
	}
	for _, r := range "CAD" {
		m = step(t, m, key(r))
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != modeList {
		t.Fatalf("enter should return to the list")
	}
	if len(m.cfg.CustomGroups) != 1 || m.cfg.CustomGroups[0].Name != "CAD" {
		t.Fatalf("expected a CAD group; got %+v", m.cfg.CustomGroups)
	}
}

func TestAppNestAndUnnest(t *testing.T) {
	m := newTestModel(t)

	// Nest notifications (row 1) under dashboard (row 0).
	m = step(t, m, key('j'))
	m = step(t, m, key('n'))
	if p, ok := m.cfg.ParentOf("notifications"); !ok || p != "dashboard" {
		t.Fatalf("n should nest under the row above; parent=%q ok=%v", p, ok)
	}

	m = step(t, m, key('u'))
	if _, ok := m.cfg.ParentOf("notifications"); ok {
		t.Fatalf("u should clear the parent")
	}
}

func TestAppQuitConfirmsWhenDirty(t *testing.T) {
	m := newTestModel(t)
	m = step(t, m, key('j'))
	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace})

	next, cmd := m.Update(key('q'))
	m = next.(appModel)
	if cmd != nil {
		t.Fatalf("first q with unsaved changes must not quit")
	}
	if !m.confirmQuit {
		t.Fatalf("expected the confirm-quit prompt")
	}

	_, cmd = m.Update(key('q'))
	if cmd == nil {
		t.Fatalf("second q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.Quit; got %T", cmd())
	}
}

func TestAppSaveClearsDirty(t *testing.T) {
	m := newTestModel(t)
	m = step(t, m, key('j'))
	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace})

	m = step(t, m, key('s'))
	if m.dirty {
		t.Fatalf("save should clear the dirty flag")
	}
	if !m.store.Exists() {
		t.Fatalf("save should write the config file")
	}

	got, _, err := m.store.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.EnabledModules["notifications"] {
		t.Fatalf("saved config should carry the toggle")
	}
}

func TestAppHelpOverlay(t *testing.T) {
	m := newTestModel(t)

	m = step(t, m, key('?'))
	if m.mode != modeHelp {
		t.Fatalf("? should open help")
	}
	if m.helpText == "" {
		t.Fatalf("help text should render")
	}
	m = step(t, m, key('q'))
	if m.mode != modeList {
		t.Fatalf("any key should dismiss help")
	}
}
