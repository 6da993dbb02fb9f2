// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/snapshot.go
// Summary: Serializable capture of the docking tree.
// Usage: The dump command marshals a LayoutCapture as YAML; the preset loader
// accepts the same shape.

package dock

// LayoutCapture is a snapshot of the docking layout.
type LayoutCapture struct {
	Direction FlexDirection  `yaml:"direction"`
	Zones     []ZoneCapture  `yaml:"zones"`
	Floating  []PanelCapture `yaml:"floating,omitempty"`
}

// Zone kinds used in captures and presets.
const (
	ZoneKindDocking = "docking"
	ZoneKindSized   = "sized"
)

// ZoneCapture stores one sized zone and, for docking zones, its tabs.
type ZoneCapture struct {
	ID          EntityID      `yaml:"id,omitempty"`
	Kind        string        `yaml:"kind"`
	Size        float64       `yaml:"size"`
	MinSize     float64       `yaml:"min_size,omitempty"`
	Axis        FlexDirection `yaml:"axis"`
	RemoveEmpty bool          `yaml:"remove_empty,omitempty"`
	Rect        *Rect         `yaml:"rect,omitempty"`
	Tabs        []TabCapture  `yaml:"tabs,omitempty"`
	Active      int           `yaml:"active,omitempty"`
	Children    []ZoneCapture `yaml:"children,omitempty"`
}

// TabCapture stores a docked tab.
type TabCapture struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body,omitempty"`
}

// PanelCapture stores a floating panel.
type PanelCapture struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body,omitempty"`
	Rect  Rect   `yaml:"rect"`
}

// CaptureLayout walks the tree from the root and records every sized zone.
// Rectangles are included when withRects is set and come from the last
// Layout.
func (w *World) CaptureLayout(withRects bool) LayoutCapture {
	root := w.nodes[w.root]
	capture := LayoutCapture{Direction: root.Container.Direction}
	for _, child := range root.Children {
		if zc, ok := w.captureZone(child, withRects); ok {
			capture.Zones = append(capture.Zones, zc)
		}
	}
	for _, id := range w.FloatingPanels() {
		n := w.nodes[id]
		capture.Floating = append(capture.Floating, PanelCapture{
			Title: n.FloatingPanel.Title,
			Body:  n.FloatingPanel.Body,
			Rect:  w.floatingRect(n),
		})
	}
	return capture
}

func (w *World) captureZone(id EntityID, withRects bool) (ZoneCapture, bool) {
	n, ok := w.nodes[id]
	if !ok || n.SizedZone == nil {
		return ZoneCapture{}, false
	}
	zc := ZoneCapture{
		ID:      id,
		Kind:    ZoneKindSized,
		Size:    n.SizedZone.size,
		MinSize: n.SizedZone.minSize,
		Axis:    n.SizedZone.direction,
	}
	if withRects {
		r := n.rect
		zc.Rect = &r
	}
	if n.DockingZone != nil {
		zc.Kind = ZoneKindDocking
		group := n.DockingZone.tabGroup
		if g, ok := w.nodes[group]; ok && g.TabGroup != nil {
			if bar, ok := w.nodes[g.TabGroup.bar]; ok && bar.RemoveEmpty != nil {
				zc.RemoveEmpty = true
			}
			for i, tab := range w.Tabs(group) {
				t := w.nodes[tab].Tab
				zc.Tabs = append(zc.Tabs, TabCapture{Title: t.Title, Body: t.Body})
				if tab == g.TabGroup.active {
					zc.Active = i
				}
			}
		}
		return zc, true
	}
	for _, child := range n.Children {
		if cc, ok := w.captureZone(child, withRects); ok {
			zc.Children = append(zc.Children, cc)
		}
	}
	return zc, true
}

func (w *World) floatingRect(n *Node) Rect {
	x, _ := n.Style.Left.Resolve(w.bounds.W)
	y, _ := n.Style.Top.Resolve(w.bounds.H)
	width, _ := n.Style.Width.Resolve(w.bounds.W)
	height, _ := n.Style.Height.Resolve(w.bounds.H)
	return Rect{X: x, Y: y, W: width, H: height}
}
