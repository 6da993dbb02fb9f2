// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/recorder.go
// Summary: Hook for counting structural edits.

package dock

// Recorder receives a call for every structural edit the world performs.
// Implementations must be cheap; they run inside command flushes.
type Recorder interface {
	ZoneSplit(direction SplitDirection, wrapped bool)
	PanelDocked()
	ZoneRemoved()
	HighlightUpdated(area DropArea)
}

type nopRecorder struct{}

func (nopRecorder) ZoneSplit(SplitDirection, bool) {}
func (nopRecorder) PanelDocked()                   {}
func (nopRecorder) ZoneRemoved()                   {}
func (nopRecorder) HighlightUpdated(DropArea)      {}
