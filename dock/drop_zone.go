// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/drop_zone.go
// Summary: Drag and drop state written by the input pipeline and read by the
// highlight controller.

package dock

import "fmt"

// Point is a position in screen space. Cell (x, y) spans [x, x+1).
type Point struct {
	X, Y float64
}

// Size is a width/height pair in screen space.
type Size struct {
	W, H float64
}

// DropPhase is the state of a drag over one drop zone.
type DropPhase int

const (
	DropPhaseInactive DropPhase = iota
	DropPhaseDroppableEntered
	DropPhaseDroppableHover
	DropPhaseDropped
	DropPhaseDroppableLeft
	DropPhaseDropCanceled
)

func (p DropPhase) String() string {
	switch p {
	case DropPhaseInactive:
		return "inactive"
	case DropPhaseDroppableEntered:
		return "entered"
	case DropPhaseDroppableHover:
		return "hover"
	case DropPhaseDropped:
		return "dropped"
	case DropPhaseDroppableLeft:
		return "left"
	case DropPhaseDropCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("DropPhase(%d)", int(p))
	}
}

// DropZone is the drag-over state of a docking zone.
type DropZone struct {
	phase    DropPhase
	position *Point
	incoming EntityID
}

// Phase returns the current drop phase.
func (d *DropZone) Phase() DropPhase { return d.phase }

// Position returns the pointer position, if any.
func (d *DropZone) Position() (Point, bool) {
	if d.position == nil {
		return Point{}, false
	}
	return *d.position, true
}

// Incoming returns the dragged entity, if any.
func (d *DropZone) Incoming() (EntityID, bool) {
	return d.incoming, d.incoming != EntityPlaceholder
}

// SetDropZone records new drag-over state for zone and marks it changed for
// the next Update pass.
func (w *World) SetDropZone(zone EntityID, phase DropPhase, position *Point, incoming EntityID) error {
	n, ok := w.nodes[zone]
	if !ok {
		return fmt.Errorf("set drop zone %v: %w", zone, ErrUnknownEntity)
	}
	if n.DropZone == nil {
		return fmt.Errorf("set drop zone %v: %w", zone, ErrNotDropZone)
	}
	var pos *Point
	if position != nil {
		p := *position
		pos = &p
	}
	n.DropZone.phase = phase
	n.DropZone.position = pos
	n.DropZone.incoming = incoming
	w.changedDropZones[zone] = struct{}{}
	return nil
}

// DragState is the lifecycle of a draggable.
type DragState int

const (
	DragInactive DragState = iota
	DragStart
	Dragging
	DragEnd
	DragCanceled
)

func (s DragState) String() string {
	switch s {
	case DragInactive:
		return "inactive"
	case DragStart:
		return "start"
	case Dragging:
		return "dragging"
	case DragEnd:
		return "end"
	case DragCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("DragState(%d)", int(s))
	}
}

// Draggable marks a node the input pipeline can drag.
type Draggable struct {
	State    DragState
	Origin   Point
	Position Point
}

// SetDragState updates a draggable and marks it changed for the next frame.
func (w *World) SetDragState(id EntityID, state DragState, position Point) error {
	n, ok := w.nodes[id]
	if !ok {
		return fmt.Errorf("set drag state %v: %w", id, ErrUnknownEntity)
	}
	if n.Draggable == nil {
		return fmt.Errorf("set drag state %v: not draggable", id)
	}
	if state == DragStart {
		n.Draggable.Origin = position
	}
	n.Draggable.State = state
	n.Draggable.Position = position
	w.changedDraggables[id] = struct{}{}
	return nil
}

func (w *World) clearChanged() {
	for id := range w.changedDropZones {
		delete(w.changedDropZones, id)
	}
	for id := range w.changedDraggables {
		delete(w.changedDraggables, id)
	}
}
