// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/components.go
// Summary: Component types attached to arena nodes.

package dock

import "github.com/gdamore/tcell/v2"

// Z-order for node styles.
const (
	ZIndexDefault   = 0
	ZIndexHighlight = 100
	ZIndexFloating  = 1000
)

// Interaction is the pointer state of a node, written by the input pipeline.
type Interaction int

const (
	InteractionNone Interaction = iota
	InteractionHovered
	InteractionPressed
)

// PositionType selects flow layout or absolute placement inside the parent.
type PositionType int

const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

// ValKind tells how a Val resolves against its parent extent.
type ValKind int

const (
	ValAuto ValKind = iota
	ValPercent
	ValCells
)

// Val is a length: automatic, a percentage of the parent, or a cell count.
type Val struct {
	Kind  ValKind
	Value float64
}

// Auto returns an automatic length.
func Auto() Val { return Val{Kind: ValAuto} }

// Percent returns a length relative to the parent extent.
func Percent(p float64) Val { return Val{Kind: ValPercent, Value: p} }

// Cells returns an absolute length in terminal cells.
func Cells(n int) Val { return Val{Kind: ValCells, Value: float64(n)} }

// Resolve converts v against extent. Auto lengths report ok=false.
func (v Val) Resolve(extent int) (int, bool) {
	switch v.Kind {
	case ValPercent:
		return int(float64(extent) * v.Value / 100), true
	case ValCells:
		return int(v.Value), true
	default:
		return 0, false
	}
}

// Tint is a color with an opacity, blended over whatever is underneath.
type Tint struct {
	Color tcell.Color
	Alpha float32
}

// Transparent is the cleared highlight background.
var Transparent = Tint{Color: tcell.ColorDefault}

// IsTransparent reports whether the tint has no visible effect.
func (t Tint) IsTransparent() bool {
	return t.Alpha <= 0 || !t.Color.Valid()
}

// Style holds the visual and geometric attributes of a node.
type Style struct {
	Position      PositionType
	Width         Val
	Height        Val
	Top           Val
	Left          Val
	Background    Tint
	ZIndex        int
	FlexDirection FlexDirection
}

// Container marks the top-level docking container.
type Container struct {
	Direction FlexDirection
}

// DockingZone links a sized zone to the tab group and highlight it owns.
type DockingZone struct {
	tabGroup  EntityID
	highlight EntityID
}

// TabGroup returns the owned tab group.
func (d *DockingZone) TabGroup() EntityID { return d.tabGroup }

// Highlight returns the owned highlight overlay.
func (d *DockingZone) Highlight() EntityID { return d.highlight }

// DockingZoneHighlight is the overlay node of a docking zone. Zone is a lookup
// only; the zone owns the highlight.
type DockingZoneHighlight struct {
	zone EntityID
}

// Zone returns the docking zone this highlight belongs to.
func (h *DockingZoneHighlight) Zone() EntityID { return h.zone }

// RemoveEmptyDockingZone opts a tab bar into automatic removal of its docking
// zone once it holds no tabs.
type RemoveEmptyDockingZone struct {
	zone EntityID
}

// Zone returns the docking zone to remove.
func (r *RemoveEmptyDockingZone) Zone() EntityID { return r.zone }

func highlightStyle() Style {
	return Style{
		Position:   PositionAbsolute,
		Width:      Percent(100),
		Height:     Percent(100),
		Background: Transparent,
		ZIndex:     ZIndexHighlight,
	}
}
