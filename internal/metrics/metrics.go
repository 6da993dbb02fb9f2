// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/metrics/metrics.go
// Summary: Prometheus counters for docking edits.
// Usage: Pass a Collector as dock.Options.Recorder and register it with a
// prometheus registry; `texeldock run --metrics-addr` serves it over HTTP.

package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/framegrace/texeldock/dock"
)

// Collector counts structural edits of a docking world.
type Collector struct {
	splits     *prometheus.CounterVec
	docks      prometheus.Counter
	removals   prometheus.Counter
	highlights *prometheus.CounterVec
}

var _ dock.Recorder = (*Collector)(nil)

// NewCollector creates unregistered counters.
func NewCollector() *Collector {
	return &Collector{
		splits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "texeldock",
				Name:      "zone_splits_total",
				Help:      "Docking zone splits by direction and whether a wrapper was injected.",
			},
			[]string{"direction", "wrapped"},
		),
		docks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "texeldock",
			Name:      "panels_docked_total",
			Help:      "Floating panels merged into a tab group.",
		}),
		removals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "texeldock",
			Name:      "zones_removed_total",
			Help:      "Empty docking zones removed by the cleanup pass.",
		}),
		highlights: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "texeldock",
				Name:      "highlight_updates_total",
				Help:      "Hover highlight updates by drop area.",
			},
			[]string{"area"},
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.splits.Describe(ch)
	c.docks.Describe(ch)
	c.removals.Describe(ch)
	c.highlights.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.splits.Collect(ch)
	c.docks.Collect(ch)
	c.removals.Collect(ch)
	c.highlights.Collect(ch)
}

// ZoneSplit implements dock.Recorder.
func (c *Collector) ZoneSplit(direction dock.SplitDirection, wrapped bool) {
	c.splits.WithLabelValues(direction.String(), strconv.FormatBool(wrapped)).Inc()
}

// PanelDocked implements dock.Recorder.
func (c *Collector) PanelDocked() { c.docks.Inc() }

// ZoneRemoved implements dock.Recorder.
func (c *Collector) ZoneRemoved() { c.removals.Inc() }

// HighlightUpdated implements dock.Recorder.
func (c *Collector) HighlightUpdated(area dock.DropArea) {
	c.highlights.WithLabelValues(area.String()).Inc()
}

// Handler registers c on a fresh registry and returns an HTTP handler for it.
func Handler(c *Collector) (http.Handler, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		return nil, err
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}
