// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner_test.go
// Summary: Drives the shell through a simulated screen.

package devshell_test

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/framegrace/texeldock/dock"
	"github.com/framegrace/texeldock/internal/devshell"
	"github.com/framegrace/texeldock/internal/render"
	"github.com/framegrace/texeldock/theme"
)

type frameState struct {
	tabs     int
	zones    int
	floating int
	handles  bool
}

type harness struct {
	screen tcell.SimulationScreen
	shell  *devshell.Shell
	frames chan frameState
	errCh  chan error
}

func startShell(t *testing.T) (*harness, *dock.World) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	// The simulation screen comes up at 80x25 after Init.
	devshell.SetScreenFactory(func() (tcell.Screen, error) {
		return screen, nil
	})
	t.Cleanup(func() { devshell.SetScreenFactory(nil) })

	w := dock.NewWorld(dock.Options{RootDirection: dock.Row})
	zone, err := w.CreateDockingZone(w.Root(), dock.SizedZoneConfig{}, false, func(tabs *dock.TabGroupBuilder) {
		tabs.AddTab("main", "")
	})
	require.NoError(t, err)
	zn, _ := w.Get(zone)
	group := zn.DockingZone.TabGroup()
	w.SpawnFloatingPanel("float", "", dock.Rect{X: 2, Y: 2, W: 10, H: 4})

	h := &harness{
		screen: screen,
		frames: make(chan frameState, 64),
		errCh:  make(chan error, 1),
	}
	h.shell = devshell.New(devshell.Options{
		World:    w,
		Renderer: render.New(theme.Palette(theme.DefaultScheme)),
		OnFrame: func(w *dock.World) {
			h.frames <- frameState{
				tabs:     w.TabCount(group),
				zones:    len(w.DockingZones()),
				floating: len(w.FloatingPanels()),
				handles:  w.ResizeHandlesVisible(),
			}
		},
	})
	go func() { h.errCh <- h.shell.Run() }()
	h.waitFor(t, "first frame", func(s frameState) bool { return s.tabs == 1 })
	return h, w
}

func (h *harness) waitFor(t *testing.T, what string, cond func(frameState) bool) frameState {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case s := <-h.frames:
			if cond(s) {
				return s
			}
		case <-timeout:
			t.Fatalf("timeout waiting for %s", what)
		}
	}
}

func (h *harness) mouse(x, y int, buttons tcell.ButtonMask) {
	h.screen.PostEvent(tcell.NewEventMouse(x, y, buttons, tcell.ModNone))
}

func (h *harness) quit(t *testing.T) {
	t.Helper()
	h.screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	select {
	case err := <-h.errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("shell did not exit")
	}
}

func TestDragToCenterDocksPanel(t *testing.T) {
	h, _ := startShell(t)

	h.mouse(3, 2, tcell.Button1)
	h.waitFor(t, "drag start hides handles", func(s frameState) bool { return !s.handles })
	h.mouse(30, 10, tcell.Button1)
	h.mouse(40, 12, tcell.Button1)
	h.mouse(40, 12, tcell.ButtonNone)

	s := h.waitFor(t, "panel docked", func(s frameState) bool { return s.tabs == 2 })
	require.Equal(t, 0, s.floating)
	require.Equal(t, 1, s.zones)
	require.True(t, s.handles)
	h.quit(t)
}

func TestDragToEdgeSplits(t *testing.T) {
	h, _ := startShell(t)

	h.mouse(3, 2, tcell.Button1)
	h.mouse(78, 12, tcell.Button1)
	h.mouse(78, 12, tcell.ButtonNone)

	s := h.waitFor(t, "zone split", func(s frameState) bool { return s.zones == 2 })
	require.Equal(t, 0, s.floating)
	h.quit(t)
}

func TestEscapeCancelsDrag(t *testing.T) {
	h, w := startShell(t)

	h.mouse(3, 2, tcell.Button1)
	h.mouse(40, 12, tcell.Button1)
	h.screen.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	h.mouse(40, 12, tcell.ButtonNone)

	s := h.waitFor(t, "drag canceled", func(s frameState) bool { return s.handles })
	require.Equal(t, 1, s.floating)
	require.Equal(t, 1, s.tabs)
	h.quit(t)

	panels := w.FloatingPanels()
	require.Len(t, panels, 1)
	r, _ := w.NodeRect(panels[0])
	require.Equal(t, 2, r.X)
	require.Equal(t, 2, r.Y)
}

func TestPostedWorkRunsOnLoop(t *testing.T) {
	h, w := startShell(t)
	done := make(chan struct{})
	h.shell.Post(func() {
		w.SpawnFloatingPanel("posted", "", dock.Rect{W: 5, H: 3})
		close(done)
	})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("posted function never ran")
	}
	h.waitFor(t, "second panel", func(s frameState) bool { return s.floating == 2 })
	h.quit(t)
}

func TestCtrlCExits(t *testing.T) {
	h, _ := startShell(t)
	h.screen.PostEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone))
	select {
	case err := <-h.errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("shell did not exit after Ctrl-C")
	}
}

func TestPostedQuitStopsShell(t *testing.T) {
	h, _ := startShell(t)
	h.shell.Post(h.shell.Quit)
	select {
	case err := <-h.errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("shell did not exit")
	}
}
