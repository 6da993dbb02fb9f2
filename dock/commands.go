// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/commands.go
// Summary: Deferred structural edits applied to the world in one flush.
// Usage: Passes record edits on a Commands queue; Apply runs them in order and
// re-derives flex directions before anyone observes the tree again.

package dock

import "log"

// Command is one deferred edit.
type Command interface {
	Apply(w *World)
}

// CommandFunc adapts a function to Command.
type CommandFunc func(w *World)

// Apply calls f.
func (f CommandFunc) Apply(w *World) { f(w) }

// Commands is an ordered queue of edits against one world. Ids returned by
// spawning helpers are reserved immediately and resolve after Apply.
type Commands struct {
	world *World
	queue []Command
}

// Commands returns an empty queue bound to w.
func (w *World) Commands() *Commands {
	return &Commands{world: w}
}

// World returns the world the queue is bound to.
func (c *Commands) World() *World { return c.world }

// Add appends a command.
func (c *Commands) Add(cmd Command) {
	if cmd == nil {
		return
	}
	c.queue = append(c.queue, cmd)
}

// Len returns the number of pending commands.
func (c *Commands) Len() int { return len(c.queue) }

// Apply runs every pending command in order. Commands queued while applying
// run in the same flush.
func (c *Commands) Apply() {
	if len(c.queue) == 0 {
		return
	}
	w := c.world
	w.flushing++
	for len(c.queue) > 0 {
		pending := c.queue
		c.queue = nil
		for _, cmd := range pending {
			cmd.Apply(w)
		}
	}
	w.refreshDirections()
	w.flushing--
	if w.flushing == 0 {
		w.drainEvents()
	}
}

// Spawn reserves an id and queues a node under parent. configure runs when
// the node is materialized.
func (c *Commands) Spawn(parent EntityID, configure func(n *Node)) EntityID {
	id := c.world.reserve()
	c.Add(CommandFunc(func(w *World) {
		if parent != EntityPlaceholder && !w.Contains(parent) {
			log.Printf("Commands: spawn %v under missing parent %v", id, parent)
			return
		}
		n := &Node{ID: id}
		if configure != nil {
			configure(n)
		}
		w.insertNode(n, parent, -1)
	}))
	return id
}

// InsertChildren moves children under parent starting at index. Children that
// already belong to parent are removed from their old slot first.
func (c *Commands) InsertChildren(parent EntityID, index int, children ...EntityID) {
	ids := append([]EntityID(nil), children...)
	c.Add(CommandFunc(func(w *World) {
		for _, child := range ids {
			w.detach(child)
		}
		for i, child := range ids {
			w.attach(parent, child, index+i)
		}
	}))
}

// AddChild moves child to the end of parent's children.
func (c *Commands) AddChild(parent, child EntityID) {
	c.Add(CommandFunc(func(w *World) {
		w.attach(parent, child, -1)
	}))
}

// DespawnRecursive removes id and everything it owns.
func (c *Commands) DespawnRecursive(id EntityID) {
	c.Add(CommandFunc(func(w *World) {
		w.despawnRecursive(id)
	}))
}

// Style returns a builder that queues style changes on id.
func (c *Commands) Style(id EntityID) *StyleCommands {
	return &StyleCommands{cmds: c, id: id}
}

// StyleCommands queues style mutations for one node.
type StyleCommands struct {
	cmds *Commands
	id   EntityID
}

func (s *StyleCommands) edit(f func(st *Style)) *StyleCommands {
	id := s.id
	s.cmds.Add(CommandFunc(func(w *World) {
		n, ok := w.nodes[id]
		if !ok {
			return
		}
		f(&n.Style)
	}))
	return s
}

// Width queues a width change.
func (s *StyleCommands) Width(v Val) *StyleCommands {
	return s.edit(func(st *Style) { st.Width = v })
}

// Height queues a height change.
func (s *StyleCommands) Height(v Val) *StyleCommands {
	return s.edit(func(st *Style) { st.Height = v })
}

// Top queues a top offset change.
func (s *StyleCommands) Top(v Val) *StyleCommands {
	return s.edit(func(st *Style) { st.Top = v })
}

// Left queues a left offset change.
func (s *StyleCommands) Left(v Val) *StyleCommands {
	return s.edit(func(st *Style) { st.Left = v })
}

// Background queues a background tint change.
func (s *StyleCommands) Background(t Tint) *StyleCommands {
	return s.edit(func(st *Style) { st.Background = t })
}
