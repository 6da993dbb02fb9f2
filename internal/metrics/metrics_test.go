// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/texeldock/dock"
)

func TestCollectorCountsWorldEdits(t *testing.T) {
	c := NewCollector()
	w := dock.NewWorld(dock.Options{RootDirection: dock.Row, Recorder: c})
	zone, err := w.CreateDockingZone(w.Root(), dock.SizedZoneConfig{}, false, func(tabs *dock.TabGroupBuilder) {
		tabs.AddTab("a", "")
	})
	require.NoError(t, err)

	panel := w.SpawnFloatingPanel("p", "", dock.Rect{W: 10, H: 4})
	newZone, err := w.SplitDockingZone(zone, dock.VerticallyAfter, panel)
	require.NoError(t, err)
	_, err = w.SplitDockingZone(zone, dock.VerticallyBefore, dock.EntityPlaceholder)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.splits.WithLabelValues("vertically-after", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.splits.WithLabelValues("vertically-before", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.docks))

	n, _ := w.Get(newZone)
	tabs := w.Tabs(n.DockingZone.TabGroup())
	require.Len(t, tabs, 1)
	require.NoError(t, w.CloseTab(tabs[0]))
	engine := dock.NewEngine(w)
	engine.Resize(dock.Rect{W: 80, H: 24})
	engine.Frame()
	assert.Equal(t, 1.0, testutil.ToFloat64(c.removals))
}

func TestHandlerServesCounters(t *testing.T) {
	c := NewCollector()
	c.HighlightUpdated(dock.DropAreaNorth)
	h, err := Handler(c)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `texeldock_highlight_updates_total{area="north"} 1`))
}
