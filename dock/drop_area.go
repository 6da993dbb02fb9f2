// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/drop_area.go
// Summary: Classifies a drop position into one of five regions of a zone.

package dock

import "fmt"

// DropArea is where, relative to a zone, a dragged panel was released.
type DropArea int

const (
	DropAreaNone DropArea = iota
	DropAreaCenter
	DropAreaNorth
	DropAreaEast
	DropAreaSouth
	DropAreaWest
)

func (a DropArea) String() string {
	switch a {
	case DropAreaNone:
		return "none"
	case DropAreaCenter:
		return "center"
	case DropAreaNorth:
		return "north"
	case DropAreaEast:
		return "east"
	case DropAreaSouth:
		return "south"
	case DropAreaWest:
		return "west"
	default:
		return fmt.Sprintf("DropArea(%d)", int(a))
	}
}

// SplitDirection maps an edge area to the split it requests. Center and
// anything unknown fall back to VerticallyAfter; callers handle Center as a
// merge before asking.
func (a DropArea) SplitDirection() SplitDirection {
	switch a {
	case DropAreaNorth:
		return VerticallyBefore
	case DropAreaEast:
		return HorizontallyAfter
	case DropAreaSouth:
		return VerticallyAfter
	case DropAreaWest:
		return HorizontallyBefore
	default:
		return VerticallyAfter
	}
}

// CalculateDropArea classifies position against a zone centred at center.
// The horizontal test runs first, so corners resolve to East/West.
func CalculateDropArea(position, center Point, size Size) DropArea {
	sixthWidth := size.W / 6
	sixthHeight := size.H / 6

	switch {
	case position.X < center.X-sixthWidth:
		return DropAreaWest
	case position.X > center.X+sixthWidth:
		return DropAreaEast
	case position.Y < center.Y-sixthHeight:
		return DropAreaNorth
	case position.Y > center.Y+sixthHeight:
		return DropAreaSouth
	default:
		return DropAreaCenter
	}
}
