// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Interactive tcell loop around a docking world.
// Usage: `texeldock run` builds a world from a preset and hands it to Run.
// Drag a floating panel by its title onto a zone; Esc cancels the drag.

package devshell

import (
	"fmt"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texeldock/dock"
	"github.com/framegrace/texeldock/internal/render"
)

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Options configures a Shell.
type Options struct {
	World    *dock.World
	Renderer *render.Renderer
	// OnFrame runs on the loop goroutine after every frame is drawn.
	OnFrame func(w *dock.World)
}

// Shell owns the screen, the frame engine and the pointer state.
type Shell struct {
	world    *dock.World
	engine   *dock.Engine
	renderer *render.Renderer
	onFrame  func(w *dock.World)

	drag     dragTracker
	pointerX int
	pointerY int
	spawned  int

	mu     sync.Mutex
	screen tcell.Screen
	posts  []func()
	quit   bool
}

// New prepares a shell. Nothing touches the terminal until Run.
func New(opts Options) *Shell {
	return &Shell{
		world:    opts.World,
		engine:   dock.NewEngine(opts.World),
		renderer: opts.Renderer,
		onFrame:  opts.OnFrame,
	}
}

// Renderer returns the renderer, for palette swaps from Post callbacks.
func (s *Shell) Renderer() *render.Renderer { return s.renderer }

// Post schedules fn on the loop goroutine before the next frame. It is safe
// to call from any goroutine.
func (s *Shell) Post(fn func()) {
	s.mu.Lock()
	s.posts = append(s.posts, fn)
	screen := s.screen
	s.mu.Unlock()
	if screen != nil {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// Quit makes Run return after the current event. Call it from a Post callback.
func (s *Shell) Quit() { s.quit = true }

func (s *Shell) runPosts() {
	s.mu.Lock()
	posts := s.posts
	s.posts = nil
	s.mu.Unlock()
	for _, fn := range posts {
		fn()
	}
}

// Run drives the world until the user quits.
func (s *Shell) Run() error {
	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.Clear()
	screen.EnableMouse()
	defer screen.DisableMouse()

	s.mu.Lock()
	s.screen = screen
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.screen = nil
		s.mu.Unlock()
	}()

	width, height := screen.Size()
	s.engine.Resize(dock.Rect{W: width, H: height})
	s.runPosts()
	if s.quit {
		return nil
	}

	frame := func() {
		s.engine.Frame()
		screen.Clear()
		s.renderer.Draw(screen, s.world)
		screen.Show()
		if s.onFrame != nil {
			s.onFrame(s.world)
		}
	}
	frame()

	for {
		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			s.runPosts()
			if s.quit {
				return nil
			}
		case *tcell.EventResize:
			w, h := tev.Size()
			s.engine.Resize(dock.Rect{W: w, H: h})
			screen.Sync()
		case *tcell.EventKey:
			if s.handleKey(tev) {
				return nil
			}
		case *tcell.EventMouse:
			s.handleMouse(tev)
		}
		frame()
	}
}

// handleKey reports whether the shell should exit.
func (s *Shell) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		s.drag.cancel(s.world)
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case 'n':
		s.spawned++
		s.world.SpawnFloatingPanel(fmt.Sprintf("Panel %d", s.spawned), "drag the title onto a zone",
			dock.Rect{X: s.pointerX, Y: s.pointerY, W: 28, H: 6})
	case 'p':
		if tab := s.activeTabAtPointer(); tab != dock.EntityPlaceholder {
			if _, err := s.world.PopOutTab(tab, dock.Rect{X: s.pointerX, Y: s.pointerY, W: 28, H: 6}); err != nil {
				log.Printf("Devshell: pop out: %v", err)
			}
		}
	case 'x':
		if tab := s.activeTabAtPointer(); tab != dock.EntityPlaceholder {
			if err := s.world.CloseTab(tab); err != nil {
				log.Printf("Devshell: close tab: %v", err)
			}
		}
	}
	return false
}

func (s *Shell) activeTabAtPointer() dock.EntityID {
	zone := s.world.ZoneAt(s.pointerX, s.pointerY)
	if zone == dock.EntityPlaceholder {
		return dock.EntityPlaceholder
	}
	zn, _ := s.world.Get(zone)
	g, ok := s.world.Get(zn.DockingZone.TabGroup())
	if !ok || g.TabGroup == nil {
		return dock.EntityPlaceholder
	}
	return g.TabGroup.Active()
}

func (s *Shell) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	s.pointerX, s.pointerY = x, y

	if ev.Buttons()&tcell.Button1 == 0 {
		s.drag.release(s.world, x, y)
		return
	}
	if s.drag.active() {
		s.drag.move(s.world, x, y)
		return
	}
	if s.drag.press(s.world, x, y) {
		return
	}
	if tab := s.world.TabAt(x, y); tab != dock.EntityPlaceholder {
		_ = s.world.SelectTab(tab)
	}
}
