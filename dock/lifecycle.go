// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/lifecycle.go
// Summary: Removes docking zones whose tab bars emptied and toggles resize
// handles around panel drags.

package dock

import "log"

// shouldProcessEmptyDockingZones reports whether any tab was removed since the
// last cleanup pass.
func (w *World) shouldProcessEmptyDockingZones() bool {
	return w.removedTabs > 0
}

// removeEmptyDockingZones queues removal of every opted-in docking zone whose
// tab bar has no tabs left. A bar with no children at all and a bar whose
// children are all non-tabs both count as empty.
func (w *World) removeEmptyDockingZones(cmds *Commands) {
	for _, barID := range w.Query(func(n *Node) bool { return n.RemoveEmpty != nil }) {
		bar := w.nodes[barID]
		zone := bar.RemoveEmpty.zone
		if !w.Contains(zone) {
			continue
		}
		if len(bar.Children) == 0 {
			w.queueZoneRemoval(cmds, zone)
			continue
		}
		hasTab := false
		for _, child := range bar.Children {
			if c, ok := w.nodes[child]; ok && c.Tab != nil {
				hasTab = true
				break
			}
		}
		if !hasTab {
			w.queueZoneRemoval(cmds, zone)
		}
	}
}

func (w *World) queueZoneRemoval(cmds *Commands, zone EntityID) {
	cmds.Add(CommandFunc(func(w *World) {
		if !w.despawnRecursive(zone) {
			return
		}
		log.Printf("Lifecycle: removed empty docking zone %v", zone)
		w.recorder.ZoneRemoved()
		w.emit(Event{Type: EventZoneRemoved, Payload: RemovedPayload{Zone: zone}})
	}))
}

// shouldUpdateResizeHandles reports whether a floating panel title changed
// drag state this frame.
func (w *World) shouldUpdateResizeHandles() bool {
	for id := range w.changedDraggables {
		n, ok := w.nodes[id]
		if ok && n.PanelTitle != nil && n.Draggable != nil && n.Draggable.State != DragInactive {
			return true
		}
	}
	return false
}

// updateResizeHandles hides resize handles while any floating panel title is
// being dragged, so they do not steal the drop.
func (w *World) updateResizeHandles() {
	dragging := false
	for _, id := range w.Query(func(n *Node) bool { return n.PanelTitle != nil && n.Draggable != nil }) {
		switch w.nodes[id].Draggable.State {
		case DragStart, Dragging:
			dragging = true
		}
	}
	w.resizeHandlesVisible = !dragging
}
