// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package dock

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizeOf(t *testing.T, w *World, id EntityID) float64 {
	t.Helper()
	n, ok := w.Get(id)
	require.True(t, ok)
	require.NotNil(t, n.SizedZone)
	return n.SizedZone.Size()
}

func TestSplitTableCoversEveryCombination(t *testing.T) {
	parents := []FlexDirection{Row, RowReverse, Column, ColumnReverse}
	splits := []SplitDirection{VerticallyBefore, VerticallyAfter, HorizontallyBefore, HorizontallyAfter}

	for _, parent := range parents {
		for _, split := range splits {
			t.Run(fmt.Sprintf("%v/%v", parent, split), func(t *testing.T) {
				w, target := newTestWorld(t, parent)
				plan := splitTable[parent][split]

				newZone, err := w.SplitDockingZone(target, split, EntityPlaceholder)
				require.NoError(t, err)
				require.True(t, w.Contains(newZone))

				rootChildren := w.Children(w.Root())
				if plan.injectWrapper {
					require.Len(t, rootChildren, 1)
					wrapper := rootChildren[0]
					assert.Equal(t, 100.0, sizeOf(t, w, wrapper))
					assert.Equal(t, WrapperShare, sizeOf(t, w, target))
					assert.Equal(t, WrapperShare, sizeOf(t, w, newZone))
					if plan.siblingBefore {
						assert.Equal(t, []EntityID{newZone, target}, w.Children(wrapper))
					} else {
						assert.Equal(t, []EntityID{target, newZone}, w.Children(wrapper))
					}
				} else {
					if plan.siblingBefore {
						assert.Equal(t, []EntityID{newZone, target}, rootChildren)
					} else {
						assert.Equal(t, []EntityID{target, newZone}, rootChildren)
					}
					assert.Equal(t, 50.0, sizeOf(t, w, target))
					assert.Equal(t, 50.0, sizeOf(t, w, newZone))
				}

				w.Layout(testBounds)
				tr, _ := w.NodeRect(target)
				nr, _ := w.NodeRect(newZone)
				switch split {
				case VerticallyBefore:
					assert.Equal(t, tr.X, nr.X)
					assert.LessOrEqual(t, nr.Y+nr.H, tr.Y, "new zone must be above")
				case VerticallyAfter:
					assert.Equal(t, tr.X, nr.X)
					assert.GreaterOrEqual(t, nr.Y, tr.Y+tr.H, "new zone must be below")
				case HorizontallyBefore:
					assert.Equal(t, tr.Y, nr.Y)
					assert.LessOrEqual(t, nr.X+nr.W, tr.X, "new zone must be left")
				case HorizontallyAfter:
					assert.Equal(t, tr.Y, nr.Y)
					assert.GreaterOrEqual(t, nr.X, tr.X+tr.W, "new zone must be right")
				}
				assert.False(t, nr.Empty())
				assert.False(t, tr.Empty())
			})
		}
	}
}

func TestSplitRowVerticallyAfterInjectsWrapper(t *testing.T) {
	w := NewWorld(Options{RootDirection: Row})
	left, err := w.CreateDockingZone(w.Root(), SizedZoneConfig{Size: 40}, false, nil)
	require.NoError(t, err)
	target, err := w.CreateDockingZone(w.Root(), SizedZoneConfig{Size: 60, MinSize: 5}, false, nil)
	require.NoError(t, err)

	newZone, err := w.SplitDockingZone(target, VerticallyAfter, EntityPlaceholder)
	require.NoError(t, err)

	children := w.Children(w.Root())
	require.Len(t, children, 2)
	assert.Equal(t, left, children[0])
	wrapper := children[1]
	assert.NotEqual(t, target, wrapper)

	wn, _ := w.Get(wrapper)
	assert.Nil(t, wn.DockingZone)
	assert.Equal(t, 60.0, wn.SizedZone.Size())
	assert.Equal(t, 5.0, wn.SizedZone.MinSize())
	assert.Equal(t, []EntityID{target, newZone}, w.Children(wrapper))
	assert.Equal(t, 50.0, sizeOf(t, w, target))
	assert.Equal(t, 50.0, sizeOf(t, w, newZone))

	nn, _ := w.Get(newZone)
	assert.Equal(t, 5.0, nn.SizedZone.MinSize())
	assert.Equal(t, Column, nn.SizedZone.Direction())
}

func TestSplitWithoutWrapperConservesSize(t *testing.T) {
	w := NewWorld(Options{RootDirection: Row})
	_, err := w.CreateDockingZone(w.Root(), SizedZoneConfig{Size: 30}, false, nil)
	require.NoError(t, err)
	target, err := w.CreateDockingZone(w.Root(), SizedZoneConfig{Size: 70}, false, nil)
	require.NoError(t, err)

	newZone, err := w.SplitDockingZone(target, HorizontallyAfter, EntityPlaceholder)
	require.NoError(t, err)

	assert.Equal(t, 35.0, sizeOf(t, w, target))
	assert.Equal(t, 35.0, sizeOf(t, w, newZone))
	total := 0.0
	for _, id := range w.Children(w.Root()) {
		total += sizeOf(t, w, id)
	}
	assert.Equal(t, 100.0, total)
}

func TestSplitDocksPanelIntoNewZone(t *testing.T) {
	w, target := newTestWorld(t, Row)
	panel := w.SpawnFloatingPanel("logs", "tail -f", Rect{X: 5, Y: 5, W: 20, H: 8})

	newZone, err := w.SplitDockingZone(target, HorizontallyAfter, panel)
	require.NoError(t, err)

	assert.False(t, w.Contains(panel))
	assert.Empty(t, w.FloatingPanels())
	group := tabGroupOf(t, w, newZone)
	tabs := w.Tabs(group)
	require.Len(t, tabs, 1)
	tab, _ := w.Get(tabs[0])
	assert.Equal(t, "logs", tab.Tab.Title)
	assert.Equal(t, "tail -f", tab.Tab.Body)

	g, _ := w.Get(group)
	assert.Equal(t, tabs[0], g.TabGroup.Active())
	bar, _ := w.Get(g.TabGroup.BarID())
	require.NotNil(t, bar.RemoveEmpty, "zones created with a panel opt into removal")
	assert.Equal(t, newZone, bar.RemoveEmpty.Zone())
}

func TestSplitInvalidTargetLeavesTreeUntouched(t *testing.T) {
	w, zone := newTestWorld(t, Row)
	group := tabGroupOf(t, w, zone)
	before := w.Fingerprint()

	for _, bad := range []EntityID{w.Root(), group, EntityID(4242), EntityPlaceholder} {
		_, err := w.SplitDockingZone(bad, VerticallyAfter, EntityPlaceholder)
		require.ErrorIs(t, err, ErrInvalidTarget, "target %v", bad)
		assert.Equal(t, before, w.Fingerprint())
	}

	_, err := w.SplitDockingZone(zone, VerticallyAfter, group)
	require.ErrorIs(t, err, ErrNotFloatingPanel)
	assert.Equal(t, before, w.Fingerprint())
	assert.Equal(t, 100.0, sizeOf(t, w, zone))
}

func TestSplitMissingTabGroup(t *testing.T) {
	w, zone := newTestWorld(t, Row)
	w.despawnRecursive(tabGroupOf(t, w, zone))
	before := w.Fingerprint()

	_, err := w.SplitDockingZone(zone, HorizontallyBefore, EntityPlaceholder)
	require.ErrorIs(t, err, ErrMissingTabGroup)
	assert.Equal(t, before, w.Fingerprint())
}

func TestDockingZoneSplitCommandLogsFailure(t *testing.T) {
	w, _ := newTestWorld(t, Row)
	before := w.Fingerprint()
	cmds := w.Commands()
	cmds.Add(DockingZoneSplit{DockingZone: w.Root(), Direction: VerticallyBefore})
	cmds.Apply()
	assert.Equal(t, before, w.Fingerprint())
}
