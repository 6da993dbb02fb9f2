// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/world.go
// Summary: Node arena holding the docking layout and its floating panels.
// Usage: Every other file in the package reads and mutates nodes through World.

package dock

import (
	"fmt"
	"log"
	"sort"

	"github.com/gdamore/tcell/v2"
)

// EntityID is a stable handle into the World arena. Handles are never reused,
// so a handle to a despawned node simply stops resolving.
type EntityID uint64

// EntityPlaceholder is the "no entity" handle.
const EntityPlaceholder EntityID = 0

func (id EntityID) String() string {
	if id == EntityPlaceholder {
		return "Entity(placeholder)"
	}
	return fmt.Sprintf("Entity(%d)", uint64(id))
}

// Node is one entry in the arena. Parent/Children are the owning edges; the
// component pointers are optional and describe what the node is.
type Node struct {
	ID       EntityID
	Name     string
	Parent   EntityID
	Children []EntityID

	Style       Style
	Interaction Interaction

	Container     *Container
	SizedZone     *SizedZone
	DockingZone   *DockingZone
	Highlight     *DockingZoneHighlight
	RemoveEmpty   *RemoveEmptyDockingZone
	TabGroup      *TabGroup
	TabBar        *TabBar
	Tab           *Tab
	FloatingPanel *FloatingPanel
	PanelTitle    *FloatingPanelTitle
	Draggable     *Draggable
	DropZone      *DropZone

	rect Rect
}

// Options configures a new World.
type Options struct {
	// RootDirection is the flex direction of the top-level docking container.
	RootDirection FlexDirection
	// TabBarHeight is the number of rows reserved for each tab bar.
	TabBarHeight int
	// HighlightTint is applied to a docking zone highlight while hovering.
	HighlightTint Tint
	// Recorder receives counters for structural edits. Nil disables recording.
	Recorder Recorder
}

// DefaultHighlightTint is the translucent blue used while a panel hovers a zone.
var DefaultHighlightTint = Tint{Color: tcell.NewRGBColor(179, 204, 230), Alpha: 0.2}

// World owns every node of the docking layout.
type World struct {
	nodes    map[EntityID]*Node
	lastID   EntityID
	root     EntityID
	floating EntityID

	changedDropZones  map[EntityID]struct{}
	changedDraggables map[EntityID]struct{}
	removedTabs       int

	resizeHandlesVisible bool
	structureVersion     uint64

	tabBarHeight  int
	highlightTint Tint
	bounds        Rect

	dispatcher *EventDispatcher
	recorder   Recorder
	flushing   int
	pending    []Event
}

// NewWorld creates a world with an empty root container and floating layer.
func NewWorld(opts Options) *World {
	if opts.TabBarHeight <= 0 {
		opts.TabBarHeight = 1
	}
	if opts.HighlightTint.IsTransparent() {
		opts.HighlightTint = DefaultHighlightTint
	}
	w := &World{
		nodes:                make(map[EntityID]*Node),
		changedDropZones:     make(map[EntityID]struct{}),
		changedDraggables:    make(map[EntityID]struct{}),
		resizeHandlesVisible: true,
		tabBarHeight:         opts.TabBarHeight,
		highlightTint:        opts.HighlightTint,
		dispatcher:           NewEventDispatcher(),
		recorder:             opts.Recorder,
	}
	if w.recorder == nil {
		w.recorder = nopRecorder{}
	}

	w.root = w.reserve()
	w.insertNode(&Node{
		ID:        w.root,
		Name:      "root",
		Container: &Container{Direction: opts.RootDirection},
		Style:     Style{FlexDirection: opts.RootDirection, Width: Percent(100), Height: Percent(100)},
	}, EntityPlaceholder, -1)

	w.floating = w.reserve()
	w.insertNode(&Node{
		ID:    w.floating,
		Name:  "floating layer",
		Style: Style{Position: PositionAbsolute, ZIndex: ZIndexFloating},
	}, EntityPlaceholder, -1)

	return w
}

// Root returns the top-level docking container.
func (w *World) Root() EntityID { return w.root }

// FloatingLayer returns the node that parents every floating panel.
func (w *World) FloatingLayer() EntityID { return w.floating }

// Dispatcher exposes the event dispatcher for subscriptions.
func (w *World) Dispatcher() *EventDispatcher { return w.dispatcher }

// TabBarHeight returns the configured tab bar height in rows.
func (w *World) TabBarHeight() int { return w.tabBarHeight }

// SetHighlightTint changes the tint used for future hover highlights.
func (w *World) SetHighlightTint(t Tint) {
	if t.IsTransparent() {
		t = DefaultHighlightTint
	}
	w.highlightTint = t
}

// HighlightTint returns the tint used for hover highlights.
func (w *World) HighlightTint() Tint { return w.highlightTint }

// ResizeHandlesVisible reports whether sized-zone resize handles should render.
func (w *World) ResizeHandlesVisible() bool { return w.resizeHandlesVisible }

// Get resolves a handle.
func (w *World) Get(id EntityID) (*Node, bool) {
	n, ok := w.nodes[id]
	return n, ok
}

// Contains reports whether the handle still resolves.
func (w *World) Contains(id EntityID) bool {
	_, ok := w.nodes[id]
	return ok
}

// Len returns the number of live nodes.
func (w *World) Len() int { return len(w.nodes) }

// Parent returns the owning parent of id, or EntityPlaceholder.
func (w *World) Parent(id EntityID) EntityID {
	if n, ok := w.nodes[id]; ok {
		return n.Parent
	}
	return EntityPlaceholder
}

// Children returns a copy of the child list of id.
func (w *World) Children(id EntityID) []EntityID {
	n, ok := w.nodes[id]
	if !ok {
		return nil
	}
	out := make([]EntityID, len(n.Children))
	copy(out, n.Children)
	return out
}

// Query returns the ids of all nodes accepted by match, in creation order.
func (w *World) Query(match func(*Node) bool) []EntityID {
	var out []EntityID
	for id, n := range w.nodes {
		if match == nil || match(n) {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DockingZones returns every docking zone in creation order.
func (w *World) DockingZones() []EntityID {
	return w.Query(func(n *Node) bool { return n.DockingZone != nil })
}

// StructureVersion increments on every spawn, despawn, or reparent.
func (w *World) StructureVersion() uint64 { return w.structureVersion }

func (w *World) reserve() EntityID {
	w.lastID++
	return w.lastID
}

// insertNode registers n and attaches it under parent at index (-1 appends).
func (w *World) insertNode(n *Node, parent EntityID, index int) {
	w.nodes[n.ID] = n
	w.structureVersion++
	if parent != EntityPlaceholder {
		w.attach(parent, n.ID, index)
	}
}

// attach moves child under parent at index, detaching it from any previous
// parent first. Indexes past the end append.
func (w *World) attach(parent, child EntityID, index int) bool {
	p, ok := w.nodes[parent]
	if !ok {
		log.Printf("World: attach %v to missing parent %v", child, parent)
		return false
	}
	c, ok := w.nodes[child]
	if !ok {
		log.Printf("World: attach missing child %v to %v", child, parent)
		return false
	}
	w.detach(child)
	if index < 0 || index > len(p.Children) {
		index = len(p.Children)
	}
	p.Children = append(p.Children, EntityPlaceholder)
	copy(p.Children[index+1:], p.Children[index:])
	p.Children[index] = child
	c.Parent = parent
	w.structureVersion++
	return true
}

func (w *World) detach(child EntityID) {
	c, ok := w.nodes[child]
	if !ok || c.Parent == EntityPlaceholder {
		return
	}
	if p, ok := w.nodes[c.Parent]; ok {
		if i := indexOf(p.Children, child); i >= 0 {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
		}
	}
	c.Parent = EntityPlaceholder
	w.structureVersion++
}

// despawnRecursive removes id and everything it owns. It reports whether id
// existed.
func (w *World) despawnRecursive(id EntityID) bool {
	if _, ok := w.nodes[id]; !ok {
		return false
	}
	w.detach(id)
	w.despawnSubtree(id)
	return true
}

func (w *World) despawnSubtree(id EntityID) {
	n, ok := w.nodes[id]
	if !ok {
		return
	}
	for _, child := range n.Children {
		w.despawnSubtree(child)
	}
	if n.Tab != nil {
		w.removedTabs++
	}
	delete(w.nodes, id)
	delete(w.changedDropZones, id)
	delete(w.changedDraggables, id)
	w.structureVersion++
}

func indexOf(ids []EntityID, target EntityID) int {
	for i, id := range ids {
		if id == target {
			return i
		}
	}
	return -1
}
