package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"navrail-cli/internal/model"
	"navrail-cli/internal/mutate"
	"navrail-cli/internal/reorder"
	"navrail-cli/internal/sidebar"
	"navrail-cli/internal/store"
)

type mode int

const (
	modeList mode = iota
	modeInput
	modeHelp
)

type inputKind int

const (
	inputAddGroup inputKind = iota
	inputEditGroup
)

// headerLines is the number of chrome lines above the first row (title + blank).
const headerLines = 2

type appModel struct {
	store store.Store
	cfg   *model.ModuleConfig
	dirty bool

	rows   []row
	cursor int
	scroll int
	width  int
	height int

	// In-flight mouse drag. Nil when idle.
	drag      *reorder.DragSession
	indicator *reorder.DropIndicator

	mode        mode
	input       textinput.Model
	inputFor    inputKind
	editGroupID string

	status      string
	statusIsErr bool
	confirmQuit bool

	helpText string
}

func newAppModel(st store.Store, cfg *model.ModuleConfig) appModel {
	applyGlyphPreference()
	applyColorPreference()

	in := textinput.New()
	in.CharLimit = 64
	in.Prompt = "> "

	m := appModel{
		store: st,
		cfg:   cfg,
		input: in,
	}
	m.rows = buildRows(cfg)
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeHelp:
			m.mode = modeList
			return m, nil
		case modeInput:
			return m.updateInput(msg)
		}
		return m.updateList(msg)

	case tea.MouseMsg:
		if m.mode != modeList {
			return m, nil
		}
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key != "q" {
		m.confirmQuit = false
	}
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		if m.dirty && !m.confirmQuit {
			m.confirmQuit = true
			m.setStatus("unsaved changes; press q again to discard", true)
			return m, nil
		}
		return m, tea.Quit
	case "s":
		if err := m.store.Save(m.cfg); err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		_ = m.store.AppendEvent("config.save", "config", nil)
		m.dirty = false
		m.setStatus("saved", false)
		return m, nil
	case "?":
		m.helpText = renderHelp(m.width)
		m.mode = modeHelp
		return m, nil

	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	case "shift+up", "K":
		m.moveRow(-1)
		return m, nil
	case "shift+down", "J":
		m.moveRow(1)
		return m, nil

	case " ", "space":
		m.toggleCurrent()
		return m, nil
	case "d":
		m.applyMutation(mutate.AddDivider(m.cfg))
		return m, nil
	case "x", "delete":
		m.removeCurrent()
		return m, nil
	case "g":
		m.mode = modeInput
		m.inputFor = inputAddGroup
		m.input.SetValue("")
		m.input.Placeholder = "group name"
		m.input.Focus()
		return m, textinput.Blink
	case "e":
		r, ok := m.currentRow()
		if !ok || r.item.Type != model.OrderItemGroup {
			m.setStatus("select a custom group to edit", true)
			return m, nil
		}
		g := m.cfg.FindCustomGroup(r.item.ID)
		if g == nil {
			return m, nil
		}
		m.mode = modeInput
		m.inputFor = inputEditGroup
		m.editGroupID = g.ID
		m.input.SetValue(g.Name)
		m.input.Placeholder = "group name"
		m.input.Focus()
		return m, textinput.Blink
	case "n":
		m.nestCurrent()
		return m, nil
	case "u":
		m.unnestCurrent()
		return m, nil
	}
	return m, nil
}

func (m appModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.Blur()
		return m, nil
	case "enter":
		name := m.input.Value()
		m.mode = modeList
		m.input.Blur()
		switch m.inputFor {
		case inputAddGroup:
			m.applyMutation(mutate.AddCustomGroup(m.cfg, name, model.IconFolder, ""))
		case inputEditGroup:
			g := m.cfg.FindCustomGroup(m.editGroupID)
			if g == nil {
				return m, nil
			}
			color := ""
			if g.IconColor != nil {
				color = *g.IconColor
			}
			m.applyMutation(mutate.EditCustomGroup(m.cfg, m.editGroupID, name, g.Icon, color))
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.moveCursor(-1)
			return m, nil
		case tea.MouseButtonWheelDown:
			m.moveCursor(1)
			return m, nil
		case tea.MouseButtonLeft:
			r, ok := m.rowAt(msg.Y)
			if !ok {
				return m, nil
			}
			m.cursor = r
			m.clampScroll()
			list := sidebar.BuildCombinedOrderList(m.cfg)
			sess, err := reorder.Start(m.cfg, list, m.rows[r].listIndex, msg.Y)
			if err != nil {
				if errors.Is(err, reorder.ErrLocked) {
					m.setStatus("locked by a system group", true)
				}
				return m, nil
			}
			m.drag = &sess
			m.indicator = nil
			return m, nil
		}

	case tea.MouseActionMotion:
		if m.drag == nil {
			return m, nil
		}
		if r, ok := m.rowAt(msg.Y); ok {
			bounds := reorder.RowBounds{Top: m.rowScreenY(r), Height: 1}
			m.indicator = reorder.Indicator(*m.drag, m.rows[r].listIndex, bounds, msg.Y)
		} else if msg.Y >= m.rowScreenY(len(m.rows)-1)+1 && len(m.rows) > 0 {
			// Below the list: drop after the last row.
			last := m.rows[len(m.rows)-1].listIndex
			ind := reorder.DropIndicator{Index: last, Position: reorder.After}
			m.indicator = &ind
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.drag == nil {
			return m, nil
		}
		sess := *m.drag
		ind := m.indicator
		m.drag = nil
		m.indicator = nil
		if ind == nil {
			return m, nil
		}
		next, changed, err := reorder.Apply(m.cfg, sess, *ind)
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		if changed {
			m.cfg = next
			m.dirty = true
			m.rows = buildRows(m.cfg)
			m.clampCursor()
		}
		return m, nil
	}
	return m, nil
}

// applyMutation folds a mutate result into the model. No-ops leave everything
// untouched; errors land in the status line.
func (m *appModel) applyMutation(res mutate.Result, err error) {
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if !res.Changed {
		return
	}
	m.cfg = res.Config
	m.dirty = true
	m.rows = buildRows(m.cfg)
	m.clampCursor()
}

func (m *appModel) toggleCurrent() {
	r, ok := m.currentRow()
	if !ok {
		return
	}
	switch r.item.Type {
	case model.OrderItemModule:
		cur := m.cfg.EnabledModules[r.item.ID]
		m.applyMutation(mutate.SetModuleEnabled(m.cfg, r.item.ID, !cur))
	case model.OrderItemGroup:
		g := m.cfg.FindCustomGroup(r.item.ID)
		if g == nil {
			return
		}
		m.applyMutation(mutate.ToggleCustomGroup(m.cfg, r.item.ID, !g.Enabled))
	}
}

func (m *appModel) removeCurrent() {
	r, ok := m.currentRow()
	if !ok {
		return
	}
	switch r.item.Type {
	case model.OrderItemDivider:
		m.applyMutation(mutate.RemoveDivider(m.cfg, r.item.ID))
	case model.OrderItemGroup:
		m.applyMutation(mutate.RemoveCustomGroup(m.cfg, r.item.ID))
	default:
		m.setStatus("modules can't be removed, only disabled", true)
	}
}

// nestCurrent parents the selected module under the nearest row above it
// (module or group).
func (m *appModel) nestCurrent() {
	r, ok := m.currentRow()
	if !ok || r.item.Type != model.OrderItemModule {
		m.setStatus("select a module to nest", true)
		return
	}
	if m.cursor == 0 {
		return
	}
	prev := m.rows[m.cursor-1]
	if prev.item.Type == model.OrderItemDivider {
		m.setStatus("can't nest under a divider", true)
		return
	}
	m.applyMutation(mutate.SetModuleParent(m.cfg, r.item.ID, prev.item.ID))
}

func (m *appModel) unnestCurrent() {
	r, ok := m.currentRow()
	if !ok || r.item.Type != model.OrderItemModule {
		return
	}
	m.applyMutation(mutate.SetModuleParent(m.cfg, r.item.ID, ""))
}

// moveRow shifts the selected row one slot up or down in the combined list.
func (m *appModel) moveRow(delta int) {
	r, ok := m.currentRow()
	if !ok {
		return
	}
	list := sidebar.BuildCombinedOrderList(m.cfg)
	src := r.listIndex
	var ind reorder.DropIndicator
	if delta < 0 {
		if src == 0 {
			return
		}
		ind = reorder.DropIndicator{Index: src - 1, Position: reorder.Before}
	} else {
		if src >= len(list)-1 {
			return
		}
		ind = reorder.DropIndicator{Index: src + 1, Position: reorder.After}
	}
	sess, err := reorder.Start(m.cfg, list, src, 0)
	if err != nil {
		if errors.Is(err, reorder.ErrLocked) {
			m.setStatus("locked by a system group", true)
		}
		return
	}
	next, changed, err := reorder.Apply(m.cfg, sess, ind)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if !changed {
		return
	}
	moved := r.item
	m.cfg = next
	m.dirty = true
	m.rows = buildRows(m.cfg)
	for i, row := range m.rows {
		if row.item == moved {
			m.cursor = i
			break
		}
	}
	m.clampScroll()
}

func (m *appModel) currentRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *appModel) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *appModel) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampScroll()
}

func (m *appModel) visibleRows() int {
	v := m.height - headerLines - 2 // status + key bar
	if v < 1 {
		v = 1
	}
	return v
}

func (m *appModel) clampScroll() {
	vis := m.visibleRows()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+vis {
		m.scroll = m.cursor - vis + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// rowAt maps a terminal Y coordinate to a rendered row index.
func (m *appModel) rowAt(y int) (int, bool) {
	i := y - headerLines + m.scroll
	if i < 0 || i >= len(m.rows) {
		return 0, false
	}
	return i, true
}

// rowScreenY is the inverse of rowAt for a rendered row index.
func (m *appModel) rowScreenY(i int) int {
	return i - m.scroll + headerLines
}

func (m *appModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusIsErr = isErr
}
