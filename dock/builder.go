// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/builder.go
// Summary: Construction entry point for docking zones.
// Usage: Both presets and the split command build zones through
// Commands.DockingZone so a zone never exists without its tab group and
// highlight.

package dock

import (
	"fmt"
	"log"
)

// DockingZone queues a docking zone under parent: a sized zone holding a tab
// group (filled by populate) and a transparent highlight overlay. With
// removeEmpty the tab bar is tagged so the zone is removed once it has no
// tabs. All parts materialize in the same flush.
func (c *Commands) DockingZone(parent EntityID, cfg SizedZoneConfig, removeEmpty bool, populate func(*TabGroupBuilder)) EntityID {
	var tabGroup, bar, highlight EntityID

	zone := c.SizedZone(parent, cfg, func(zone EntityID, zc *Commands) {
		tabGroup, bar = zc.TabGroup(zone, populate)
		if removeEmpty {
			zc.Add(CommandFunc(func(w *World) {
				if n, ok := w.nodes[bar]; ok {
					n.RemoveEmpty = &RemoveEmptyDockingZone{zone: zone}
				}
			}))
		}
		highlight = zc.Spawn(zone, func(n *Node) {
			n.Name = "docking zone highlight"
			n.Style = highlightStyle()
			n.Highlight = &DockingZoneHighlight{zone: zone}
		})
	})

	c.Add(CommandFunc(func(w *World) {
		n, ok := w.nodes[zone]
		if !ok {
			log.Printf("Commands: docking zone %v was not created", zone)
			return
		}
		n.Name = "docking zone"
		n.DockingZone = &DockingZone{tabGroup: tabGroup, highlight: highlight}
		n.DropZone = &DropZone{}
		n.Interaction = InteractionNone
	}))

	return zone
}

// CreateDockingZone builds a docking zone under parent immediately and
// returns its id.
func (w *World) CreateDockingZone(parent EntityID, cfg SizedZoneConfig, removeEmpty bool, populate func(*TabGroupBuilder)) (EntityID, error) {
	if !w.Contains(parent) {
		return EntityPlaceholder, fmt.Errorf("create docking zone under %v: %w", parent, ErrUnknownEntity)
	}
	cmds := w.Commands()
	zone := cmds.DockingZone(parent, cfg, removeEmpty, populate)
	cmds.Apply()
	return zone, nil
}

// CreateSizedZone builds a plain sized zone (a container for nested zones)
// under parent immediately.
func (w *World) CreateSizedZone(parent EntityID, cfg SizedZoneConfig) (EntityID, error) {
	if !w.Contains(parent) {
		return EntityPlaceholder, fmt.Errorf("create sized zone under %v: %w", parent, ErrUnknownEntity)
	}
	cmds := w.Commands()
	zone := cmds.SizedZone(parent, cfg, nil)
	cmds.Apply()
	return zone, nil
}
