// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/highlight.go
// Summary: Turns drop zone state into highlight geometry, merges and splits.

package dock

import (
	"log"
	"sort"
)

// handleDropZoneChanges reacts to every drop zone whose state changed since
// the last frame. Structural edits are queued on cmds.
func (w *World) handleDropZoneChanges(cmds *Commands) {
	changed := make([]EntityID, 0, len(w.changedDropZones))
	for id := range w.changedDropZones {
		changed = append(changed, id)
	}
	sort.Slice(changed, func(i, j int) bool { return changed[i] < changed[j] })

	for _, zoneID := range changed {
		zone, ok := w.nodes[zoneID]
		if !ok || zone.DockingZone == nil || zone.DropZone == nil {
			continue
		}
		group, ok := w.nodes[zone.DockingZone.tabGroup]
		if !ok || group.TabGroup == nil {
			log.Printf("Highlight: docking zone %v has no tab group %v", zoneID, zone.DockingZone.tabGroup)
			continue
		}
		bar, ok := w.nodes[group.TabGroup.bar]
		if !ok {
			log.Printf("Highlight: tab group %v has no tab bar %v", group.ID, group.TabGroup.bar)
			continue
		}
		highlight := zone.DockingZone.highlight

		// Hovering the bar itself means tab reordering, not docking.
		if bar.Interaction == InteractionHovered {
			w.clearHighlight(cmds, highlight)
			continue
		}

		drop := zone.DropZone
		switch drop.phase {
		case DropPhaseInactive, DropPhaseDropCanceled, DropPhaseDroppableLeft:
			w.clearHighlight(cmds, highlight)
			continue
		}

		incoming, ok := drop.Incoming()
		if !ok {
			w.clearHighlight(cmds, highlight)
			continue
		}
		title, ok := w.nodes[incoming]
		if !ok || title.PanelTitle == nil {
			w.clearHighlight(cmds, highlight)
			continue
		}
		position, ok := drop.Position()
		if !ok {
			log.Printf("Highlight: drop zone %v has no position", zoneID)
			w.clearHighlight(cmds, highlight)
			continue
		}

		area := CalculateDropArea(position, zone.rect.Center(), zone.rect.Size())

		switch drop.phase {
		case DropPhaseDroppableEntered, DropPhaseDroppableHover:
			w.showHighlight(cmds, highlight, area, zone.rect.H)
			w.recorder.HighlightUpdated(area)
		case DropPhaseDropped:
			panel := title.PanelTitle.panel
			switch area {
			case DropAreaNorth, DropAreaEast, DropAreaSouth, DropAreaWest:
				cmds.Add(DockingZoneSplit{
					DockingZone: zoneID,
					Direction:   area.SplitDirection(),
					PanelToDock: panel,
				})
			default:
				// Anything outside the four edges merges like Center.
				cmds.DockPanel(group.ID, panel)
			}
			w.clearHighlight(cmds, highlight)
		}
	}
}

// showHighlight sizes the overlay to cover the region a drop on area would
// occupy and applies the hover tint.
func (w *World) showHighlight(cmds *Commands, highlight EntityID, area DropArea, zoneHeight int) {
	style := cmds.Style(highlight)
	switch area {
	case DropAreaCenter:
		style.Width(Percent(100)).
			Height(Cells(max(zoneHeight-w.tabBarHeight, 0))).
			Top(Cells(w.tabBarHeight)).
			Left(Percent(0))
	case DropAreaNorth:
		style.Width(Percent(100)).Height(Percent(50)).Top(Percent(0)).Left(Percent(0))
	case DropAreaEast:
		style.Width(Percent(50)).Height(Percent(100)).Top(Percent(0)).Left(Percent(50))
	case DropAreaSouth:
		style.Width(Percent(100)).Height(Percent(50)).Top(Percent(50)).Left(Percent(0))
	case DropAreaWest:
		style.Width(Percent(50)).Height(Percent(100)).Top(Percent(0)).Left(Percent(0))
	default:
		style.Width(Percent(100)).Height(Percent(100)).Top(Percent(0)).Left(Percent(0))
	}
	style.Background(w.highlightTint)
}

func (w *World) clearHighlight(cmds *Commands, highlight EntityID) {
	cmds.Style(highlight).Background(Transparent)
}
