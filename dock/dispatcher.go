// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/dispatcher.go
// Summary: Broadcasts layout events to listeners once a flush completes.

package dock

import "sync"

// EventType defines the type of an event.
type EventType int

const (
	// EventTreeChanged fires at the end of a frame that edited the tree.
	EventTreeChanged EventType = iota
	EventZoneSplit
	EventZoneRemoved
	EventPanelDocked
)

// Event represents a message passed through the system.
type Event struct {
	Type    EventType
	Payload interface{}
}

// SplitPayload describes a completed split.
type SplitPayload struct {
	Target    EntityID
	NewZone   EntityID
	Wrapper   EntityID
	Direction SplitDirection
}

// DockPayload describes a panel merged into a tab group.
type DockPayload struct {
	TabGroup EntityID
	Tab      EntityID
}

// RemovedPayload names a docking zone reclaimed by the cleanup pass.
type RemovedPayload struct {
	Zone EntityID
}

// TreePayload carries the frame number of a tree change.
type TreePayload struct {
	Frame uint64
}

// Listener is an interface that any component can implement to receive events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a function to Listener. Func values are not comparable,
// so a ListenerFunc cannot be passed to Unsubscribe.
type ListenerFunc func(event Event)

// OnEvent calls f.
func (f ListenerFunc) OnEvent(event Event) { f(event) }

// EventDispatcher manages a list of listeners and broadcasts events to them.
type EventDispatcher struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewEventDispatcher creates a new dispatcher.
func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{
		listeners: make([]Listener, 0),
	}
}

// Subscribe adds a new listener to receive events.
func (d *EventDispatcher) Subscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, listener)
}

// Unsubscribe removes a listener.
func (d *EventDispatcher) Unsubscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, l := range d.listeners {
		if l == listener {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			break
		}
	}
}

// Broadcast sends an event to all subscribed listeners.
func (d *EventDispatcher) Broadcast(event Event) {
	d.mu.RLock()
	listeners := append([]Listener(nil), d.listeners...)
	d.mu.RUnlock()
	for _, l := range listeners {
		l.OnEvent(event)
	}
}

// emit broadcasts immediately outside a flush and defers until the outermost
// flush completes otherwise.
func (w *World) emit(event Event) {
	if w.flushing > 0 {
		w.pending = append(w.pending, event)
		return
	}
	w.dispatcher.Broadcast(event)
}

func (w *World) drainEvents() {
	for len(w.pending) > 0 {
		pending := w.pending
		w.pending = nil
		for _, ev := range pending {
			w.dispatcher.Broadcast(ev)
		}
	}
}
