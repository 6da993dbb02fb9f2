// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/tab_group.go
// Summary: Tab groups, tabs and floating panels that docking zones host.
// Usage: A tab group is a node with a bar child (holding Tab nodes) and a
// content child. Floating panels live under the world's floating layer.

package dock

import (
	"fmt"
	"log"
)

// TabGroup is an ordered set of tabs with a visible bar.
type TabGroup struct {
	bar     EntityID
	content EntityID
	active  EntityID
}

// BarID returns the tab bar node.
func (t *TabGroup) BarID() EntityID { return t.bar }

// ContentID returns the node the active tab renders into.
func (t *TabGroup) ContentID() EntityID { return t.content }

// Active returns the selected tab, or EntityPlaceholder.
func (t *TabGroup) Active() EntityID { return t.active }

// TabBar is the row of tab headers of a tab group.
type TabBar struct {
	container EntityID
}

// ContainerID returns the tab group that owns the bar.
func (b *TabBar) ContainerID() EntityID { return b.container }

// Tab is one docked panel.
type Tab struct {
	Title string
	Body  string
	group EntityID
}

// Group returns the tab group the tab belongs to.
func (t *Tab) Group() EntityID { return t.group }

// FloatingPanel is an undocked panel that can be dragged by its title.
type FloatingPanel struct {
	Title string
	Body  string
	title EntityID
}

// TitleID returns the draggable title node.
func (p *FloatingPanel) TitleID() EntityID { return p.title }

// FloatingPanelTitle marks the draggable title of a floating panel. It is the
// capability docking zones accept as a drop.
type FloatingPanelTitle struct {
	panel EntityID
}

// Panel returns the floating panel the title belongs to.
func (t *FloatingPanelTitle) Panel() EntityID { return t.panel }

// TabGroupBuilder populates a tab group while it is being constructed.
type TabGroupBuilder struct {
	cmds  *Commands
	group EntityID
	bar   EntityID
}

// ID returns the tab group id.
func (b *TabGroupBuilder) ID() EntityID { return b.group }

// DockPanel queues moving a floating panel into the group.
func (b *TabGroupBuilder) DockPanel(panel EntityID) {
	b.cmds.DockPanel(b.group, panel)
}

// AddTab queues a new tab at the end of the bar.
func (b *TabGroupBuilder) AddTab(title, body string) EntityID {
	return b.cmds.addTab(b.group, b.bar, title, body)
}

// TabGroup queues a tab group under parent and returns the group and bar ids.
func (c *Commands) TabGroup(parent EntityID, populate func(*TabGroupBuilder)) (group, bar EntityID) {
	group = c.world.reserve()
	bar = c.world.reserve()
	content := c.world.reserve()
	c.Add(CommandFunc(func(w *World) {
		if !w.Contains(parent) {
			log.Printf("Commands: tab group %v under missing parent %v", group, parent)
			return
		}
		w.insertNode(&Node{
			ID:       group,
			Name:     "tab group",
			TabGroup: &TabGroup{bar: bar, content: content},
			Style:    Style{Width: Percent(100), Height: Percent(100), FlexDirection: Column},
		}, parent, -1)
		w.insertNode(&Node{
			ID:     bar,
			Name:   "tab bar",
			TabBar: &TabBar{container: group},
			Style:  Style{Width: Percent(100), Height: Cells(w.tabBarHeight), FlexDirection: Row},
		}, group, -1)
		w.insertNode(&Node{
			ID:    content,
			Name:  "tab content",
			Style: Style{Width: Percent(100), Height: Auto()},
		}, group, -1)
	}))
	if populate != nil {
		populate(&TabGroupBuilder{cmds: c, group: group, bar: bar})
	}
	return group, bar
}

func (c *Commands) addTab(group, bar EntityID, title, body string) EntityID {
	return c.Spawn(bar, func(n *Node) {
		n.Name = "tab"
		n.Tab = &Tab{Title: title, Body: body, group: group}
		n.Interaction = InteractionNone
		c.world.selectIfNone(group, n.ID)
	})
}

// DockPanel queues merging a floating panel into an existing tab group: the
// panel becomes the group's newest, selected tab and the floating panel is
// removed.
func (c *Commands) DockPanel(group, panel EntityID) {
	c.Add(CommandFunc(func(w *World) {
		if _, err := w.dockPanel(group, panel); err != nil {
			log.Printf("TabGroup: dock panel %v into %v: %v", panel, group, err)
		}
	}))
}

func (w *World) dockPanel(group, panel EntityID) (EntityID, error) {
	g, ok := w.nodes[group]
	if !ok || g.TabGroup == nil {
		return EntityPlaceholder, ErrMissingTabGroup
	}
	if !w.Contains(g.TabGroup.bar) {
		return EntityPlaceholder, ErrMissingTabBar
	}
	p, ok := w.nodes[panel]
	if !ok || p.FloatingPanel == nil {
		return EntityPlaceholder, ErrNotFloatingPanel
	}
	tab := w.reserve()
	w.insertNode(&Node{
		ID:   tab,
		Name: "tab",
		Tab:  &Tab{Title: p.FloatingPanel.Title, Body: p.FloatingPanel.Body, group: group},
	}, g.TabGroup.bar, -1)
	g.TabGroup.active = tab
	w.despawnRecursive(panel)
	w.recorder.PanelDocked()
	w.emit(Event{Type: EventPanelDocked, Payload: DockPayload{TabGroup: group, Tab: tab}})
	return tab, nil
}

func (w *World) selectIfNone(group, tab EntityID) {
	if g, ok := w.nodes[group]; ok && g.TabGroup != nil && !w.Contains(g.TabGroup.active) {
		g.TabGroup.active = tab
	}
}

// TabCount returns the number of tabs in a tab group.
func (w *World) TabCount(group EntityID) int {
	g, ok := w.nodes[group]
	if !ok || g.TabGroup == nil {
		return 0
	}
	return len(w.Tabs(group))
}

// Tabs returns the tabs of a group in bar order.
func (w *World) Tabs(group EntityID) []EntityID {
	g, ok := w.nodes[group]
	if !ok || g.TabGroup == nil {
		return nil
	}
	bar, ok := w.nodes[g.TabGroup.bar]
	if !ok {
		return nil
	}
	var tabs []EntityID
	for _, child := range bar.Children {
		if c, ok := w.nodes[child]; ok && c.Tab != nil {
			tabs = append(tabs, child)
		}
	}
	return tabs
}

// SelectTab makes tab the active tab of its group.
func (w *World) SelectTab(tab EntityID) error {
	n, ok := w.nodes[tab]
	if !ok || n.Tab == nil {
		return fmt.Errorf("select %v: %w", tab, ErrNotTab)
	}
	g, ok := w.nodes[n.Tab.group]
	if !ok || g.TabGroup == nil {
		return fmt.Errorf("select %v: %w", tab, ErrMissingTabGroup)
	}
	g.TabGroup.active = tab
	return nil
}

// CloseTab removes a tab. The removal is counted for the next cleanup pass.
func (w *World) CloseTab(tab EntityID) error {
	n, ok := w.nodes[tab]
	if !ok || n.Tab == nil {
		return fmt.Errorf("close %v: %w", tab, ErrNotTab)
	}
	group := n.Tab.group
	w.despawnRecursive(tab)
	if g, ok := w.nodes[group]; ok && g.TabGroup != nil && g.TabGroup.active == tab {
		g.TabGroup.active = EntityPlaceholder
		if tabs := w.Tabs(group); len(tabs) > 0 {
			g.TabGroup.active = tabs[len(tabs)-1]
		}
	}
	return nil
}

// PopOutTab turns a docked tab back into a floating panel placed at rect and
// returns the new panel.
func (w *World) PopOutTab(tab EntityID, rect Rect) (EntityID, error) {
	n, ok := w.nodes[tab]
	if !ok || n.Tab == nil {
		return EntityPlaceholder, fmt.Errorf("pop out %v: %w", tab, ErrNotTab)
	}
	title, body := n.Tab.Title, n.Tab.Body
	if err := w.CloseTab(tab); err != nil {
		return EntityPlaceholder, err
	}
	return w.SpawnFloatingPanel(title, body, rect), nil
}

// SpawnFloatingPanel creates a floating panel with a draggable title row.
func (w *World) SpawnFloatingPanel(title, body string, rect Rect) EntityID {
	panel := w.reserve()
	titleID := w.reserve()
	w.insertNode(&Node{
		ID:            panel,
		Name:          "floating panel",
		FloatingPanel: &FloatingPanel{Title: title, Body: body, title: titleID},
		Style: Style{
			Position:      PositionAbsolute,
			Left:          Cells(rect.X),
			Top:           Cells(rect.Y),
			Width:         Cells(rect.W),
			Height:        Cells(rect.H),
			ZIndex:        ZIndexFloating,
			FlexDirection: Column,
		},
	}, w.floating, -1)
	w.insertNode(&Node{
		ID:         titleID,
		Name:       "floating panel title",
		PanelTitle: &FloatingPanelTitle{panel: panel},
		Draggable:  &Draggable{},
		Style:      Style{Width: Percent(100), Height: Cells(1)},
	}, panel, -1)
	return panel
}

// MoveFloatingPanel repositions a floating panel so its top-left is at (x, y).
func (w *World) MoveFloatingPanel(panel EntityID, x, y int) error {
	n, ok := w.nodes[panel]
	if !ok || n.FloatingPanel == nil {
		return fmt.Errorf("move %v: %w", panel, ErrNotFloatingPanel)
	}
	n.Style.Left = Cells(x)
	n.Style.Top = Cells(y)
	return nil
}

// FloatingPanels returns every floating panel, bottom-most first.
func (w *World) FloatingPanels() []EntityID {
	return w.Children(w.floating)
}
