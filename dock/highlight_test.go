// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package dock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dropFixture struct {
	w         *World
	engine    *Engine
	zone      EntityID
	group     EntityID
	highlight EntityID
	panel     EntityID
	title     EntityID
}

func newDropFixture(t *testing.T) *dropFixture {
	t.Helper()
	w, zone := newTestWorld(t, Row)
	engine := NewEngine(w)
	engine.Resize(testBounds)
	panel := w.SpawnFloatingPanel("notes", "body", Rect{X: 2, Y: 2, W: 30, H: 10})
	pn, _ := w.Get(panel)
	zn, _ := w.Get(zone)
	return &dropFixture{
		w:         w,
		engine:    engine,
		zone:      zone,
		group:     zn.DockingZone.TabGroup(),
		highlight: zn.DockingZone.Highlight(),
		panel:     panel,
		title:     pn.FloatingPanel.TitleID(),
	}
}

func (f *dropFixture) drop(t *testing.T, phase DropPhase, pos Point, incoming EntityID) {
	t.Helper()
	require.NoError(t, f.w.SetDropZone(f.zone, phase, &pos, incoming))
	f.engine.Frame()
}

func (f *dropFixture) highlightNode(t *testing.T) *Node {
	t.Helper()
	n, ok := f.w.Get(f.highlight)
	require.True(t, ok)
	return n
}

func TestHoverHighlightGeometry(t *testing.T) {
	cases := []struct {
		name string
		pos  Point
		want Rect
	}{
		{"center", Point{60, 30}, Rect{X: 0, Y: 1, W: 120, H: 59}},
		{"north", Point{60, 2}, Rect{X: 0, Y: 0, W: 120, H: 30}},
		{"south", Point{60, 58}, Rect{X: 0, Y: 30, W: 120, H: 30}},
		{"east", Point{118, 30}, Rect{X: 60, Y: 0, W: 60, H: 60}},
		{"west", Point{2, 30}, Rect{X: 0, Y: 0, W: 60, H: 60}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newDropFixture(t)
			f.drop(t, DropPhaseDroppableHover, tc.pos, f.title)

			hl := f.highlightNode(t)
			assert.Equal(t, f.w.HighlightTint(), hl.Style.Background)
			got, _ := f.w.NodeRect(f.highlight)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHighlightClearsOnLeaveAndCancel(t *testing.T) {
	for _, phase := range []DropPhase{DropPhaseDroppableLeft, DropPhaseDropCanceled, DropPhaseInactive} {
		f := newDropFixture(t)
		f.drop(t, DropPhaseDroppableEntered, Point{60, 30}, f.title)
		require.False(t, f.highlightNode(t).Style.Background.IsTransparent())

		f.drop(t, phase, Point{60, 30}, f.title)
		assert.True(t, f.highlightNode(t).Style.Background.IsTransparent(), "phase %v", phase)
	}
}

func TestHighlightIgnoresNonPanelDrags(t *testing.T) {
	f := newDropFixture(t)
	f.drop(t, DropPhaseDroppableHover, Point{60, 30}, f.group)
	assert.True(t, f.highlightNode(t).Style.Background.IsTransparent())

	f.drop(t, DropPhaseDroppableHover, Point{60, 30}, EntityPlaceholder)
	assert.True(t, f.highlightNode(t).Style.Background.IsTransparent())
}

func TestHighlightSuppressedWhileTabBarHovered(t *testing.T) {
	f := newDropFixture(t)
	g, _ := f.w.Get(f.group)
	bar, _ := f.w.Get(g.TabGroup.BarID())
	bar.Interaction = InteractionHovered

	f.drop(t, DropPhaseDroppableHover, Point{60, 30}, f.title)
	assert.True(t, f.highlightNode(t).Style.Background.IsTransparent())
}

func TestHighlightWithoutPositionFailsSoft(t *testing.T) {
	f := newDropFixture(t)
	require.NoError(t, f.w.SetDropZone(f.zone, DropPhaseDroppableHover, nil, f.title))
	f.engine.Frame()
	assert.True(t, f.highlightNode(t).Style.Background.IsTransparent())
}

func TestCenterDropMergesIntoTabGroup(t *testing.T) {
	f := newDropFixture(t)
	before := f.w.TabCount(f.group)

	f.drop(t, DropPhaseDroppableHover, Point{60, 30}, f.title)
	f.drop(t, DropPhaseDropped, Point{60, 30}, f.title)

	assert.Equal(t, before+1, f.w.TabCount(f.group))
	assert.False(t, f.w.Contains(f.panel))
	assert.Empty(t, f.w.FloatingPanels())
	assert.Len(t, f.w.DockingZones(), 1)
	assert.True(t, f.highlightNode(t).Style.Background.IsTransparent())

	g, _ := f.w.Get(f.group)
	tabs := f.w.Tabs(f.group)
	assert.Equal(t, tabs[len(tabs)-1], g.TabGroup.Active())
}

func TestEdgeDropSplitsZone(t *testing.T) {
	f := newDropFixture(t)
	f.drop(t, DropPhaseDropped, Point{118, 30}, f.title)

	zones := f.w.DockingZones()
	require.Len(t, zones, 2)
	assert.Equal(t, []EntityID{f.zone, zones[1]}, f.w.Children(f.w.Root()))
	assert.False(t, f.w.Contains(f.panel))
	assert.Equal(t, 1, f.w.TabCount(f.group))
	assert.Equal(t, 1, f.w.TabCount(tabGroupOf(t, f.w, zones[1])))

	nr, _ := f.w.NodeRect(zones[1])
	assert.Equal(t, Rect{X: 60, Y: 0, W: 60, H: 60}, nr)
	assert.True(t, f.highlightNode(t).Style.Background.IsTransparent())
}

func TestDockThenPopOutRoundTrip(t *testing.T) {
	f := newDropFixture(t)
	before := f.w.TabCount(f.group)
	f.drop(t, DropPhaseDropped, Point{60, 30}, f.title)

	tabs := f.w.Tabs(f.group)
	panel, err := f.w.PopOutTab(tabs[len(tabs)-1], Rect{X: 1, Y: 1, W: 10, H: 5})
	require.NoError(t, err)
	f.engine.Frame()

	assert.Equal(t, before, f.w.TabCount(f.group))
	assert.Equal(t, []EntityID{panel}, f.w.FloatingPanels())
	pn, _ := f.w.Get(panel)
	assert.Equal(t, "notes", pn.FloatingPanel.Title)
}
