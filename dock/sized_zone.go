// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/sized_zone.go
// Summary: Resizable region primitive that docking zones and wrappers build on.

package dock

import (
	"fmt"
	"strings"
)

// FlexDirection is the axis and order along which a container lays out its
// sized children.
type FlexDirection int

const (
	Row FlexDirection = iota
	RowReverse
	Column
	ColumnReverse
)

func (d FlexDirection) String() string {
	switch d {
	case Row:
		return "row"
	case RowReverse:
		return "row-reverse"
	case Column:
		return "column"
	case ColumnReverse:
		return "column-reverse"
	default:
		return fmt.Sprintf("FlexDirection(%d)", int(d))
	}
}

// IsRow reports whether children are laid out horizontally.
func (d FlexDirection) IsRow() bool { return d == Row || d == RowReverse }

// IsReverse reports whether visual order is the reverse of child order.
func (d FlexDirection) IsReverse() bool { return d == RowReverse || d == ColumnReverse }

// Perpendicular swaps the axis and keeps the reversal.
func (d FlexDirection) Perpendicular() FlexDirection {
	switch d {
	case Row:
		return Column
	case RowReverse:
		return ColumnReverse
	case Column:
		return Row
	default:
		return RowReverse
	}
}

// ParseFlexDirection accepts the names produced by String.
func ParseFlexDirection(s string) (FlexDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "row":
		return Row, nil
	case "row-reverse", "row_reverse":
		return RowReverse, nil
	case "column", "col":
		return Column, nil
	case "column-reverse", "column_reverse":
		return ColumnReverse, nil
	}
	return Row, fmt.Errorf("unknown flex direction %q", s)
}

// MarshalText lets presets and captures use the readable name.
func (d FlexDirection) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText parses the readable name.
func (d *FlexDirection) UnmarshalText(text []byte) error {
	parsed, err := ParseFlexDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// SizedZone is a region sized as a percentage of its parent's extent along
// the parent's flex direction.
type SizedZone struct {
	size      float64
	minSize   float64
	direction FlexDirection
}

// Size returns the percentage of the parent extent.
func (z *SizedZone) Size() float64 { return z.size }

// SetSize updates the percentage. Negative values clamp to zero.
func (z *SizedZone) SetSize(size float64) {
	if size < 0 {
		size = 0
	}
	z.size = size
}

// MinSize returns the minimum extent in cells.
func (z *SizedZone) MinSize() float64 { return z.minSize }

// Direction returns the flex direction of the parent container, i.e. the axis
// this zone is sized along.
func (z *SizedZone) Direction() FlexDirection { return z.direction }

// SizedZoneConfig is the initial state of a sized zone.
type SizedZoneConfig struct {
	Size    float64
	MinSize float64
}

// DefaultSizedZoneSize is used when a config leaves Size unset.
const DefaultSizedZoneSize = 100.0

func (c SizedZoneConfig) normalized() SizedZoneConfig {
	if c.Size <= 0 {
		c.Size = DefaultSizedZoneSize
	}
	if c.MinSize < 0 {
		c.MinSize = 0
	}
	return c
}

// SizedZone queues a new sized zone under parent and returns its reserved
// id. build, when non-nil, runs immediately to queue the zone's children.
func (c *Commands) SizedZone(parent EntityID, cfg SizedZoneConfig, build func(zone EntityID, cmds *Commands)) EntityID {
	cfg = cfg.normalized()
	zone := c.Spawn(parent, func(n *Node) {
		n.Name = "sized zone"
		n.SizedZone = &SizedZone{size: cfg.Size, minSize: cfg.MinSize}
	})
	if build != nil {
		build(zone, c)
	}
	return zone
}

// childDirection is the flex direction a node uses for its own sized children.
func (w *World) childDirection(n *Node) FlexDirection {
	switch {
	case n.Container != nil:
		return n.Container.Direction
	case n.SizedZone != nil:
		return n.SizedZone.direction.Perpendicular()
	default:
		return n.Style.FlexDirection
	}
}

// refreshDirections propagates flex directions from the root down, so every
// sized zone knows the axis its parent lays it out on.
func (w *World) refreshDirections() {
	w.refreshDirectionsFrom(w.root)
}

func (w *World) refreshDirectionsFrom(id EntityID) {
	n, ok := w.nodes[id]
	if !ok {
		return
	}
	dir := w.childDirection(n)
	for _, child := range n.Children {
		c, ok := w.nodes[child]
		if !ok {
			continue
		}
		if c.SizedZone != nil {
			c.SizedZone.direction = dir
			c.Style.FlexDirection = dir.Perpendicular()
		}
		w.refreshDirectionsFrom(child)
	}
}
