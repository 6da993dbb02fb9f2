// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/split.go
// Summary: Splits a docking zone to make room for a new one.
// Usage: Drop handling queues a DockingZoneSplit; SplitDockingZone is the
// immediate form for callers that already own the frame.

package dock

import (
	"fmt"
	"log"
)

// SplitDirection is the side of the target the new zone appears on.
// Before/After are visual: Before is above or left, After is below or right.
type SplitDirection int

const (
	VerticallyBefore SplitDirection = iota
	VerticallyAfter
	HorizontallyBefore
	HorizontallyAfter
)

func (d SplitDirection) String() string {
	switch d {
	case VerticallyBefore:
		return "vertically-before"
	case VerticallyAfter:
		return "vertically-after"
	case HorizontallyBefore:
		return "horizontally-before"
	case HorizontallyAfter:
		return "horizontally-after"
	default:
		return fmt.Sprintf("SplitDirection(%d)", int(d))
	}
}

// splitPlan says whether a split needs a wrapper container and whether the new
// zone goes before the target in child order.
type splitPlan struct {
	injectWrapper bool
	siblingBefore bool
}

// splitTable is keyed by the target's parent flex direction. A split along the
// parent's axis inserts a sibling; a split across it needs a wrapper, whose own
// direction is the perpendicular one with the same reversal. Reversed parents
// flip child order so the visual result is the same.
var splitTable = map[FlexDirection]map[SplitDirection]splitPlan{
	Row: {
		VerticallyBefore:   {injectWrapper: true, siblingBefore: true},
		VerticallyAfter:    {injectWrapper: true, siblingBefore: false},
		HorizontallyBefore: {injectWrapper: false, siblingBefore: true},
		HorizontallyAfter:  {injectWrapper: false, siblingBefore: false},
	},
	Column: {
		VerticallyBefore:   {injectWrapper: false, siblingBefore: true},
		VerticallyAfter:    {injectWrapper: false, siblingBefore: false},
		HorizontallyBefore: {injectWrapper: true, siblingBefore: true},
		HorizontallyAfter:  {injectWrapper: true, siblingBefore: false},
	},
	RowReverse: {
		VerticallyBefore:   {injectWrapper: true, siblingBefore: false},
		VerticallyAfter:    {injectWrapper: true, siblingBefore: true},
		HorizontallyBefore: {injectWrapper: false, siblingBefore: false},
		HorizontallyAfter:  {injectWrapper: false, siblingBefore: true},
	},
	ColumnReverse: {
		VerticallyBefore:   {injectWrapper: false, siblingBefore: false},
		VerticallyAfter:    {injectWrapper: false, siblingBefore: true},
		HorizontallyBefore: {injectWrapper: true, siblingBefore: false},
		HorizontallyAfter:  {injectWrapper: true, siblingBefore: true},
	},
}

// WrapperShare is the size both halves get inside an injected wrapper.
const WrapperShare = 50.0

// DockingZoneSplit is the deferred form of SplitDockingZone.
type DockingZoneSplit struct {
	DockingZone EntityID
	Direction   SplitDirection
	// PanelToDock is docked into the new zone; EntityPlaceholder leaves it empty.
	PanelToDock EntityID
}

// Apply performs the split, logging instead of returning failures.
func (s DockingZoneSplit) Apply(w *World) {
	if _, err := w.SplitDockingZone(s.DockingZone, s.Direction, s.PanelToDock); err != nil {
		log.Printf("DockingZoneSplit: %v", err)
	}
}

// SplitDockingZone splits zone in direction, creating a new docking zone next
// to it (optionally holding panel) and returning the new zone's id. On error
// nothing is mutated.
func (w *World) SplitDockingZone(zone EntityID, direction SplitDirection, panel EntityID) (EntityID, error) {
	n, ok := w.nodes[zone]
	if !ok || n.DockingZone == nil || n.SizedZone == nil || n.Parent == EntityPlaceholder {
		return EntityPlaceholder, fmt.Errorf("split %v: %w", zone, ErrInvalidTarget)
	}
	if g, ok := w.nodes[n.DockingZone.tabGroup]; !ok || g.TabGroup == nil {
		return EntityPlaceholder, fmt.Errorf("split %v: tab group %v: %w", zone, n.DockingZone.tabGroup, ErrMissingTabGroup)
	}
	parent, ok := w.nodes[n.Parent]
	if !ok {
		return EntityPlaceholder, fmt.Errorf("split %v: parent %v: %w", zone, n.Parent, ErrInvalidTarget)
	}
	index := indexOf(parent.Children, zone)
	if index < 0 {
		return EntityPlaceholder, fmt.Errorf("split %v: not among children of %v: %w", zone, n.Parent, ErrInvalidTarget)
	}
	if panel != EntityPlaceholder {
		if p, ok := w.nodes[panel]; !ok || p.FloatingPanel == nil {
			return EntityPlaceholder, fmt.Errorf("split %v: panel %v: %w", zone, panel, ErrNotFloatingPanel)
		}
	}

	currentSize := n.SizedZone.Size()
	currentMinSize := n.SizedZone.MinSize()
	currentDirection := n.SizedZone.Direction()
	plan := splitTable[currentDirection][direction]

	newSize := currentSize / 2
	if plan.injectWrapper {
		newSize = WrapperShare
	}
	n.SizedZone.SetSize(newSize)

	cmds := w.Commands()
	parentID := n.Parent
	wrapper := EntityPlaceholder

	if plan.injectWrapper {
		wrapper = cmds.SizedZone(parentID, SizedZoneConfig{Size: currentSize, MinSize: currentMinSize}, nil)
		cmds.InsertChildren(parentID, index, wrapper)
		parentID = wrapper
	}

	newZone := cmds.DockingZone(
		parentID,
		SizedZoneConfig{Size: newSize, MinSize: currentMinSize},
		panel != EntityPlaceholder,
		func(tabs *TabGroupBuilder) {
			if panel != EntityPlaceholder {
				tabs.DockPanel(panel)
			}
		},
	)

	switch {
	case plan.injectWrapper && plan.siblingBefore:
		cmds.AddChild(parentID, zone)
	case plan.injectWrapper:
		cmds.InsertChildren(parentID, 0, zone)
	case plan.siblingBefore:
		cmds.InsertChildren(parentID, index, newZone)
	default:
		cmds.InsertChildren(parentID, index+1, newZone)
	}

	cmds.Apply()

	w.recorder.ZoneSplit(direction, plan.injectWrapper)
	w.emit(Event{Type: EventZoneSplit, Payload: SplitPayload{
		Target:    zone,
		NewZone:   newZone,
		Wrapper:   wrapper,
		Direction: direction,
	}})
	return newZone, nil
}
