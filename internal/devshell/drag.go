// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/drag.go
// Summary: Turns mouse gestures into drag and drop-zone state.

package devshell

import (
	"log"

	"github.com/framegrace/texeldock/dock"
)

// dragTracker follows one floating panel title from press to release and
// writes the phases docking zones react to.
type dragTracker struct {
	title   dock.EntityID
	panel   dock.EntityID
	offsetX int
	offsetY int
	originX int
	originY int
	zone    dock.EntityID
	bar     dock.EntityID
}

func (d *dragTracker) active() bool { return d.title != dock.EntityPlaceholder }

func cellPoint(x, y int) dock.Point {
	return dock.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// press starts a drag when (x, y) is on a floating panel title. It reports
// whether a drag started.
func (d *dragTracker) press(w *dock.World, x, y int) bool {
	title := w.TitleAt(x, y)
	if title == dock.EntityPlaceholder {
		return false
	}
	tn, _ := w.Get(title)
	panel := tn.PanelTitle.Panel()
	rect, _ := w.NodeRect(panel)
	*d = dragTracker{
		title:   title,
		panel:   panel,
		offsetX: x - rect.X,
		offsetY: y - rect.Y,
		originX: rect.X,
		originY: rect.Y,
	}
	if err := w.SetDragState(title, dock.DragStart, cellPoint(x, y)); err != nil {
		log.Printf("Devshell: start drag: %v", err)
	}
	return true
}

// move drags the panel to follow the pointer and updates the zone under it.
func (d *dragTracker) move(w *dock.World, x, y int) {
	if !d.active() {
		return
	}
	pos := cellPoint(x, y)
	if err := w.MoveFloatingPanel(d.panel, x-d.offsetX, y-d.offsetY); err != nil {
		log.Printf("Devshell: move panel: %v", err)
	}
	_ = w.SetDragState(d.title, dock.Dragging, pos)

	d.hoverBar(w, x, y)
	zone := w.ZoneAt(x, y)
	if zone != d.zone {
		if d.zone != dock.EntityPlaceholder {
			_ = w.SetDropZone(d.zone, dock.DropPhaseDroppableLeft, &pos, d.title)
		}
		if zone != dock.EntityPlaceholder {
			_ = w.SetDropZone(zone, dock.DropPhaseDroppableEntered, &pos, d.title)
		}
		d.zone = zone
		return
	}
	if zone != dock.EntityPlaceholder {
		_ = w.SetDropZone(zone, dock.DropPhaseDroppableHover, &pos, d.title)
	}
}

// release drops the panel on the zone under the pointer, if any.
func (d *dragTracker) release(w *dock.World, x, y int) {
	if !d.active() {
		return
	}
	pos := cellPoint(x, y)
	if d.zone != dock.EntityPlaceholder {
		_ = w.SetDropZone(d.zone, dock.DropPhaseDropped, &pos, d.title)
	}
	_ = w.SetDragState(d.title, dock.DragEnd, pos)
	d.clearBar(w)
	*d = dragTracker{}
}

// cancel aborts the drag and puts the panel back where it started.
func (d *dragTracker) cancel(w *dock.World) {
	if !d.active() {
		return
	}
	if d.zone != dock.EntityPlaceholder {
		_ = w.SetDropZone(d.zone, dock.DropPhaseDropCanceled, nil, d.title)
	}
	_ = w.MoveFloatingPanel(d.panel, d.originX, d.originY)
	_ = w.SetDragState(d.title, dock.DragCanceled, dock.Point{X: float64(d.originX), Y: float64(d.originY)})
	d.clearBar(w)
	*d = dragTracker{}
}

// hoverBar marks the tab bar under the pointer as hovered so zones do not
// offer a dock while the pointer is over their tabs.
func (d *dragTracker) hoverBar(w *dock.World, x, y int) {
	var bar dock.EntityID
	if zone := w.ZoneAt(x, y); zone != dock.EntityPlaceholder {
		zn, _ := w.Get(zone)
		if g, ok := w.Get(zn.DockingZone.TabGroup()); ok && g.TabGroup != nil {
			if r, ok := w.NodeRect(g.TabGroup.BarID()); ok && r.Contains(x, y) {
				bar = g.TabGroup.BarID()
			}
		}
	}
	if bar == d.bar {
		return
	}
	d.clearBar(w)
	if n, ok := w.Get(bar); ok {
		n.Interaction = dock.InteractionHovered
	}
	d.bar = bar
}

func (d *dragTracker) clearBar(w *dock.World) {
	if n, ok := w.Get(d.bar); ok {
		n.Interaction = dock.InteractionNone
	}
	d.bar = dock.EntityPlaceholder
}
