// Package reorder turns drag gestures over the combined sidebar list into new
// module/divider arrangements. It is pure: geometry in, updated config out.
// Single-pointer UIs cannot produce concurrent drags, so the only session state
// is the DragSession value the caller threads through the gesture handlers.
package reorder

import (
	"errors"

	"navrail-cli/internal/model"
	"navrail-cli/internal/sidebar"
)

var ErrLocked = errors.New("row is not draggable")
var ErrOutOfRange = errors.New("drag index out of range")

// DragSession is the in-flight drag state, recorded at drag start.
type DragSession struct {
	SourceIndex int `json:"sourceIndex"`
	PointerY    int `json:"pointerY"`
}

type Position string

const (
	Before Position = "before"
	After  Position = "after"
)

// DropIndicator names an insertion gap: before or after the row at Index.
type DropIndicator struct {
	Index    int      `json:"index"`
	Position Position `json:"position"`
}

// boundary maps an indicator to an insertion boundary in [0, len(list)]:
// boundary b means "insert between rows b-1 and b".
func (d DropIndicator) boundary() int {
	if d.Position == After {
		return d.Index + 1
	}
	return d.Index
}

// RowBounds is the rendered extent of a row along the drag axis. Terminal rows
// are one cell tall; the half-row math still holds for taller renderings.
type RowBounds struct {
	Top    int
	Height int
}

// Start begins a drag for the row at index. Locked modules (parented under a
// system group) refuse the drag.
func Start(cfg *model.ModuleConfig, list []model.OrderListItem, index, pointerY int) (DragSession, error) {
	if index < 0 || index >= len(list) {
		return DragSession{}, ErrOutOfRange
	}
	it := list[index]
	if it.Type == model.OrderItemModule && cfg.Locked(it.ID) {
		return DragSession{}, ErrLocked
	}
	return DragSession{SourceIndex: index, PointerY: pointerY}, nil
}

// Indicator computes the insertion gap for a pointer hovering the row at
// hoverIndex. The pointer's offset within the row's bounds picks the gap above
// (top half) or below (bottom half) the row. Returns nil when the gap is
// adjacent to the dragged row itself, i.e. the drop would not move anything.
func Indicator(s DragSession, hoverIndex int, row RowBounds, pointerY int) *DropIndicator {
	pos := Before
	if row.Height > 0 && (pointerY-row.Top)*2 >= row.Height {
		pos = After
	}
	ind := DropIndicator{Index: hoverIndex, Position: pos}
	b := ind.boundary()
	if b == s.SourceIndex || b == s.SourceIndex+1 {
		return nil
	}
	return &ind
}

// Apply performs the drop: extracts the move block, splices it at the indicated
// gap, and decomposes the result back into moduleOrder, divider positions and
// custom-group positions. ModuleParents is never touched, so nesting survives
// moves intact.
//
// Dragging a custom group moves the group row plus every module currently
// parented to it as one contiguous block, preserving the block's internal
// order; rows outside the block keep their relative order.
func Apply(cfg *model.ModuleConfig, s DragSession, ind DropIndicator) (*model.ModuleConfig, bool, error) {
	list := sidebar.BuildCombinedOrderList(cfg)
	if s.SourceIndex < 0 || s.SourceIndex >= len(list) {
		return cfg, false, ErrOutOfRange
	}
	if ind.Index < 0 || ind.Index >= len(list) {
		return cfg, false, ErrOutOfRange
	}
	dragged := list[s.SourceIndex]
	if dragged.Type == model.OrderItemModule && cfg.Locked(dragged.ID) {
		return cfg, false, ErrLocked
	}

	blockIdx := moveBlockIndices(cfg, list, s.SourceIndex)
	target := ind.boundary()

	// Remove block rows highest-first so lower indices stay stable, adjusting
	// the target boundary for every removed row that sat before it.
	rest := append([]model.OrderListItem(nil), list...)
	block := make([]model.OrderListItem, 0, len(blockIdx))
	for _, i := range blockIdx {
		block = append(block, list[i])
	}
	for i := len(blockIdx) - 1; i >= 0; i-- {
		idx := blockIdx[i]
		rest = append(rest[:idx], rest[idx+1:]...)
		if idx < target {
			target--
		}
	}
	if target < 0 {
		target = 0
	}
	if target > len(rest) {
		target = len(rest)
	}

	next := make([]model.OrderListItem, 0, len(list))
	next = append(next, rest[:target]...)
	next = append(next, block...)
	next = append(next, rest[target:]...)

	if sameList(list, next) {
		return cfg, false, nil
	}

	order, dividers, groups := sidebar.Decompose(next, cfg)
	out := cfg.Clone()
	out.ModuleOrder = order
	out.Dividers = dividers
	out.CustomGroups = groups

	// The position encoding cannot express every arrangement: within one module
	// gap, dividers always render before groups. A drop whose decomposition
	// re-projects to the original list did not actually move anything.
	if sameList(list, sidebar.BuildCombinedOrderList(out)) {
		return cfg, false, nil
	}
	return out, true, nil
}

// moveBlockIndices returns the ascending row indices that travel together when
// the row at src is dragged. For custom groups that is the group row plus all
// rows for modules parented to it; for everything else just the row itself.
func moveBlockIndices(cfg *model.ModuleConfig, list []model.OrderListItem, src int) []int {
	it := list[src]
	if it.Type != model.OrderItemGroup {
		return []int{src}
	}
	members := map[string]bool{}
	for _, id := range sidebar.ChildModules(it.ID, cfg) {
		members[id] = true
	}
	var out []int
	for i, row := range list {
		if i == src {
			out = append(out, i)
			continue
		}
		if row.Type == model.OrderItemModule && members[row.ID] {
			out = append(out, i)
		}
	}
	return out
}

func sameList(a, b []model.OrderListItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
