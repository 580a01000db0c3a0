package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `
# navrail editor

The list mirrors the application sidebar: modules, cosmetic dividers, and
custom groups. Modules nested under a group render beneath it but keep their
own slot in the module order.

## Keys

| Key | Action |
| --- | ------ |
| up/down, j/k | move selection |
| shift+up/down, K/J | move the selected row |
| mouse drag | reorder (drop line shows the insertion gap) |
| space | toggle module / custom group |
| d | add a divider |
| g | add a custom group |
| e | rename the selected custom group |
| x | remove the selected divider or group |
| n | nest the selected module under the row above |
| u | move the selected module back to top level |
| s | save |
| q | quit (asks when unsaved) |

Rows showing a lock glyph are pinned by a system group and can't be moved.
Required modules can only be turned off by disabling their whole group from
the CLI (navrail groups off <group-id>).
`

var (
	helpMu       sync.Mutex
	helpRendered string
	helpWidth    int
)

// renderHelp renders the help screen with glamour, cached per width. Auto
// style is avoided: it can block on terminal queries in some setups.
func renderHelp(width int) string {
	if width < 20 {
		width = 80
	}
	helpMu.Lock()
	defer helpMu.Unlock()
	if helpRendered != "" && helpWidth == width {
		return helpRendered
	}
	style := "light"
	if lipgloss.HasDarkBackground() {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width-2),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(strings.TrimSpace(helpMarkdown))
	if err != nil {
		return helpMarkdown
	}
	helpRendered = out + styleMuted.Render("press any key to close")
	helpWidth = width
	return helpRendered
}
