package tui

import (
	"fmt"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"

	"navrail-cli/internal/catalog"
	"navrail-cli/internal/model"
	"navrail-cli/internal/reorder"
	"navrail-cli/internal/sidebar"
)

func (m appModel) View() string {
	if m.mode == modeHelp {
		return m.helpText
	}

	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder

	title := "navrail — sidebar editor"
	if m.dirty {
		title += " " + styleDirty.Render("●")
	}
	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n\n")

	vis := m.visibleRows()
	end := m.scroll + vis
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.scroll; i < end; i++ {
		r := m.rows[i]
		if m.indicator != nil && m.indicator.Position == reorder.Before {
			if ri := rowForListIndex(m.rows, m.indicator.Index); ri == i {
				b.WriteString(m.renderDropLine(width))
			}
		}
		b.WriteString(m.renderRow(r, i == m.cursor, width))
		b.WriteString("\n")
		if m.indicator != nil && m.indicator.Position == reorder.After {
			if ri := rowForListIndex(m.rows, m.indicator.Index); ri == i {
				b.WriteString(m.renderDropLine(width))
			}
		}
	}

	if m.mode == modeInput {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		if m.status != "" {
			if m.statusIsErr {
				b.WriteString(styleStatusErr.Render(m.status))
			} else {
				b.WriteString(styleStatusOK.Render(m.status))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(faintIfDark(styleMuted).Render("space toggle · J/K move · drag with mouse · d divider · g group · n nest · s save · ? help · q quit"))
	return b.String()
}

func (m appModel) renderDropLine(width int) string {
	line := strings.Repeat(glyphDropRune(), max(width-2, 8))
	return styleDropLine.Render(line) + "\n"
}

func (m appModel) renderRow(r row, selected bool, width int) string {
	var line string
	switch r.item.Type {
	case model.OrderItemDivider:
		line = "  " + styleMuted.Render(strings.Repeat(glyphDividerRune(), max(width-6, 8)))

	case model.OrderItemGroup:
		g := m.cfg.FindCustomGroup(r.item.ID)
		if g == nil {
			return ""
		}
		icon, _ := iconFor(g.Icon)
		members := len(sidebar.ChildModules(g.ID, m.cfg))
		name := g.Name
		if !g.Enabled {
			name = styleDisabled.Render(name)
		} else {
			name = styleGroup.Render(name)
		}
		line = fmt.Sprintf("%s %s %s %s", glyphDragHandle(), icon, name, styleMuted.Render(fmt.Sprintf("(%d)", members)))

	case model.OrderItemModule:
		mod, ok := catalog.FindModule(r.item.ID)
		if !ok {
			return ""
		}
		indent := strings.Repeat("  ", r.depth)
		branch := ""
		if r.depth > 0 {
			branch = styleMuted.Render(glyphNestBranch()) + " "
		}
		toggle := glyphToggleOff()
		if m.cfg.EnabledModules[mod.ID] {
			toggle = glyphToggleOn()
		}
		handle := glyphDragHandle()
		if m.cfg.Locked(mod.ID) {
			handle = glyphLock()
		}
		icon, _ := iconFor(mod.Icon)
		name := mod.Name
		switch {
		case !sidebar.ModuleVisible(mod.ID, m.cfg):
			name = styleMuted.Render(name)
		case !mod.Implemented:
			name = styleMuted.Render(name + " (soon)")
		}
		line = fmt.Sprintf("%s%s%s %s %s %s", indent, branch, handle, toggle, icon, name)
	}

	if xansi.StringWidth(line) > width {
		line = xansi.Cut(line, 0, width)
	}
	if selected {
		return styleSelected.Render(line)
	}
	return line
}

func iconFor(id model.IconID) (string, bool) {
	if glyphs() == glyphSetASCII {
		return catalog.IconGlyphASCII(id)
	}
	return catalog.IconGlyph(id)
}
