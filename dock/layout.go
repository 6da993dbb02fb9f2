// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/layout.go
// Summary: Computes cell rectangles for every node from sizes and styles.
// Usage: Engine.Frame runs Layout; renderers and hit testing read NodeRect.

package dock

import (
	"github.com/mattn/go-runewidth"
)

// Rect is a rectangle in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Center returns the midpoint of r in screen space.
func (r Rect) Center() Point {
	return Point{X: float64(r.X) + float64(r.W)/2, Y: float64(r.Y) + float64(r.H)/2}
}

// Size returns the extent of r.
func (r Rect) Size() Size {
	return Size{W: float64(r.W), H: float64(r.H)}
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Bounds returns the rectangle passed to the last Layout.
func (w *World) Bounds() Rect { return w.bounds }

// Layout assigns a rectangle to every node, starting from bounds for both the
// docking root and the floating layer.
func (w *World) Layout(bounds Rect) {
	w.bounds = bounds
	w.layoutNode(w.root, bounds)
	w.layoutNode(w.floating, bounds)
}

// NodeRect returns the rectangle computed for id by the last Layout.
func (w *World) NodeRect(id EntityID) (Rect, bool) {
	n, ok := w.nodes[id]
	if !ok {
		return Rect{}, false
	}
	return n.rect, true
}

// NodeCenter returns the screen-space center of id.
func (w *World) NodeCenter(id EntityID) Point {
	r, _ := w.NodeRect(id)
	return r.Center()
}

// NodeSize returns the computed size of id.
func (w *World) NodeSize(id EntityID) Size {
	r, _ := w.NodeRect(id)
	return r.Size()
}

func (w *World) layoutNode(id EntityID, r Rect) {
	n, ok := w.nodes[id]
	if !ok {
		return
	}
	n.rect = r

	var sized, flow, absolute []EntityID
	for _, child := range n.Children {
		c, ok := w.nodes[child]
		if !ok {
			continue
		}
		switch {
		case c.Style.Position == PositionAbsolute:
			absolute = append(absolute, child)
		case c.SizedZone != nil:
			sized = append(sized, child)
		default:
			flow = append(flow, child)
		}
	}

	if len(sized) > 0 {
		w.distributeSized(sized, w.childDirection(n), r)
	}
	if len(flow) > 0 {
		w.flowChildren(n, flow, r)
	}
	for _, child := range absolute {
		w.layoutNode(child, w.absoluteRect(w.nodes[child], r))
	}
}

// distributeSized splits r among sized zones along dir. Sizes are normalized
// percentages; min sizes act as a floor and the last visual child takes the
// rounding remainder.
func (w *World) distributeSized(children []EntityID, dir FlexDirection, r Rect) {
	count := len(children)
	visual := make([]*Node, count)
	for i, id := range children {
		idx := i
		if dir.IsReverse() {
			idx = count - 1 - i
		}
		visual[idx] = w.nodes[id]
	}

	extent := r.H
	if dir.IsRow() {
		extent = r.W
	}

	total := 0.0
	for _, c := range visual {
		total += c.SizedZone.size
	}

	extents := make([]int, count)
	used := 0
	for i, c := range visual {
		ratio := 1.0 / float64(count)
		if total > 0 {
			ratio = c.SizedZone.size / total
		}
		e := int(float64(extent) * ratio)
		if floor := int(c.SizedZone.minSize); e < floor {
			e = floor
			if e > extent {
				e = extent
			}
		}
		extents[i] = e
		used += e
	}

	// Over-committed min sizes shrink from the end.
	for i := count - 1; i >= 0 && used > extent; i-- {
		floor := int(visual[i].SizedZone.minSize)
		spare := extents[i] - floor
		if spare <= 0 {
			spare = extents[i]
		}
		cut := used - extent
		if cut > spare {
			cut = spare
		}
		extents[i] -= cut
		used -= cut
	}
	if used < extent {
		extents[count-1] += extent - used
	}

	offset := 0
	for i, c := range visual {
		child := Rect{X: r.X, Y: r.Y + offset, W: r.W, H: extents[i]}
		if dir.IsRow() {
			child = Rect{X: r.X + offset, Y: r.Y, W: extents[i], H: r.H}
		}
		offset += extents[i]
		w.layoutNode(c.ID, child)
	}
}

// flowChildren stacks plain children along the node's own flex direction.
// Fixed lengths are honoured first and Auto children share what is left.
func (w *World) flowChildren(n *Node, children []EntityID, r Rect) {
	dir := n.Style.FlexDirection
	extent := r.H
	cross := r.W
	if dir.IsRow() {
		extent, cross = r.W, r.H
	}

	lengths := make([]int, len(children))
	auto := 0
	used := 0
	for i, id := range children {
		c := w.nodes[id]
		main := c.Style.Height
		if dir.IsRow() {
			main = c.Style.Width
		}
		l, ok := main.Resolve(extent)
		if !ok && c.Tab != nil {
			l, ok = TabHeaderWidth(c.Tab.Title), true
		}
		if !ok {
			lengths[i] = -1
			auto++
			continue
		}
		if l > extent-used {
			l = max(extent-used, 0)
		}
		lengths[i] = l
		used += l
	}
	if auto > 0 {
		share := max(extent-used, 0) / auto
		rest := max(extent-used, 0) - share*auto
		for i := range lengths {
			if lengths[i] >= 0 {
				continue
			}
			lengths[i] = share
			if rest > 0 {
				lengths[i]++
				rest--
			}
		}
	}

	offset := 0
	for i, id := range children {
		if dir.IsReverse() {
			i = len(children) - 1 - i
			id = children[i]
		}
		child := Rect{X: r.X, Y: r.Y + offset, W: cross, H: lengths[i]}
		if dir.IsRow() {
			child = Rect{X: r.X + offset, Y: r.Y, W: lengths[i], H: cross}
		}
		offset += lengths[i]
		w.layoutNode(id, child)
	}
}

func (w *World) absoluteRect(n *Node, parent Rect) Rect {
	width, ok := n.Style.Width.Resolve(parent.W)
	if !ok {
		width = parent.W
	}
	height, ok := n.Style.Height.Resolve(parent.H)
	if !ok {
		height = parent.H
	}
	left, _ := n.Style.Left.Resolve(parent.W)
	top, _ := n.Style.Top.Resolve(parent.H)
	return Rect{X: parent.X + left, Y: parent.Y + top, W: max(width, 0), H: max(height, 0)}
}

// TabHeaderWidth is the number of cells a tab header occupies in its bar.
func TabHeaderWidth(title string) int {
	return runewidth.StringWidth(title) + 2
}

// ZoneAt returns the docking zone under cell (x, y), or EntityPlaceholder.
func (w *World) ZoneAt(x, y int) EntityID {
	for _, id := range w.DockingZones() {
		if w.nodes[id].rect.Contains(x, y) {
			return id
		}
	}
	return EntityPlaceholder
}

// FloatingPanelAt returns the top-most floating panel under (x, y).
func (w *World) FloatingPanelAt(x, y int) EntityID {
	panels := w.FloatingPanels()
	for i := len(panels) - 1; i >= 0; i-- {
		if n, ok := w.nodes[panels[i]]; ok && n.rect.Contains(x, y) {
			return panels[i]
		}
	}
	return EntityPlaceholder
}

// TitleAt returns the draggable title under (x, y) of the top-most floating
// panel there, or EntityPlaceholder.
func (w *World) TitleAt(x, y int) EntityID {
	panel := w.FloatingPanelAt(x, y)
	if panel == EntityPlaceholder {
		return EntityPlaceholder
	}
	title := w.nodes[panel].FloatingPanel.title
	if t, ok := w.nodes[title]; ok && t.rect.Contains(x, y) {
		return title
	}
	return EntityPlaceholder
}

// TabAt returns the tab header under (x, y), or EntityPlaceholder.
func (w *World) TabAt(x, y int) EntityID {
	for _, id := range w.Query(func(n *Node) bool { return n.Tab != nil }) {
		if w.nodes[id].rect.Contains(x, y) {
			return id
		}
	}
	return EntityPlaceholder
}
