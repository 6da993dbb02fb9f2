// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/engine.go
// Summary: Runs the per-frame passes over a docking world.
// Usage: Input code writes drag and drop state into the world, then calls
// Frame once per tick. Frame cleans up empty zones, lays out, reacts to drop
// state and lays out again so renderers see the final tree.

package dock

// Engine drives a World through its frame passes.
type Engine struct {
	world       *World
	bounds      Rect
	frame       uint64
	lastVersion uint64
}

// NewEngine wraps world. Call Resize before the first Frame.
func NewEngine(world *World) *Engine {
	return &Engine{world: world, lastVersion: world.StructureVersion()}
}

// World returns the driven world.
func (e *Engine) World() *World { return e.world }

// Resize sets the screen rectangle used for layout.
func (e *Engine) Resize(bounds Rect) {
	e.bounds = bounds
	e.world.Layout(bounds)
}

// FrameCount returns the number of completed frames.
func (e *Engine) FrameCount() uint64 { return e.frame }

// Frame runs one tick: the empty zone cleanup, layout, drop handling and a
// final layout. EventTreeChanged is broadcast when the tree was edited.
func (e *Engine) Frame() {
	w := e.world

	if w.shouldProcessEmptyDockingZones() {
		cmds := w.Commands()
		w.removeEmptyDockingZones(cmds)
		cmds.Apply()
	}
	w.removedTabs = 0

	w.Layout(e.bounds)

	if w.shouldUpdateResizeHandles() {
		w.updateResizeHandles()
	}
	cmds := w.Commands()
	w.handleDropZoneChanges(cmds)
	cmds.Apply()

	w.clearChanged()
	w.Layout(e.bounds)

	e.frame++
	if v := w.StructureVersion(); v != e.lastVersion {
		e.lastVersion = v
		w.emit(Event{Type: EventTreeChanged, Payload: TreePayload{Frame: e.frame}})
	}
}
