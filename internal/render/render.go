// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/render/render.go
// Summary: Paints a laid-out docking world onto a tcell screen.
// Usage: Call Draw after Engine.Frame; the caller owns screen.Show.

package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texeldock/dock"
	"github.com/framegrace/texeldock/theme"
)

// Renderer draws docking zones, their tab bars, hover highlights and the
// floating panels above them.
type Renderer struct {
	colors theme.Colors
}

// New returns a renderer using colors.
func New(colors theme.Colors) *Renderer {
	return &Renderer{colors: colors}
}

// SetColors swaps the palette, e.g. after a config reload.
func (r *Renderer) SetColors(colors theme.Colors) { r.colors = colors }

// Draw paints w in layering order: zones, resize handles, highlights, then
// floating panels bottom to top.
func (r *Renderer) Draw(screen tcell.Screen, w *dock.World) {
	bounds := w.Bounds()
	base := tcell.StyleDefault.Background(r.colors.Surface).Foreground(r.colors.OnSurface)
	fill(screen, bounds, ' ', base)

	for _, zone := range w.DockingZones() {
		r.drawZone(screen, w, zone)
	}
	if w.ResizeHandlesVisible() {
		r.drawResizeHandles(screen, w)
	}
	for _, zone := range w.DockingZones() {
		n, _ := w.Get(zone)
		r.drawHighlight(screen, w, n.DockingZone.Highlight())
	}
	for _, panel := range w.FloatingPanels() {
		r.drawPanel(screen, w, panel)
	}
}

func (r *Renderer) drawZone(screen tcell.Screen, w *dock.World, zone dock.EntityID) {
	n, ok := w.Get(zone)
	if !ok {
		return
	}
	g, ok := w.Get(n.DockingZone.TabGroup())
	if !ok || g.TabGroup == nil {
		return
	}
	barRect, _ := w.NodeRect(g.TabGroup.BarID())
	fill(screen, barRect, ' ', tcell.StyleDefault.Background(r.colors.SurfaceContainerHigh))

	active := g.TabGroup.Active()
	var body string
	for _, tab := range w.Tabs(g.ID) {
		tn, _ := w.Get(tab)
		rect, _ := w.NodeRect(tab)
		style := tcell.StyleDefault.Background(r.colors.SurfaceContainer).Foreground(r.colors.OnSurfaceVariant)
		if tab == active {
			style = tcell.StyleDefault.Background(r.colors.Primary).Foreground(r.colors.OnPrimary).Bold(true)
			body = tn.Tab.Body
		}
		fill(screen, rect, ' ', style)
		drawText(screen, rect.X+1, rect.Y, rect.W-2, tn.Tab.Title, style)
	}

	content, _ := w.NodeRect(g.TabGroup.ContentID())
	style := tcell.StyleDefault.Background(r.colors.Surface).Foreground(r.colors.OnSurface)
	for i, line := range strings.Split(body, "\n") {
		if i >= content.H {
			break
		}
		drawText(screen, content.X+1, content.Y+i, content.W-2, line, style)
	}
}

// drawResizeHandles marks the trailing edge of every sized zone that has a
// neighbour along its parent's axis.
func (r *Renderer) drawResizeHandles(screen tcell.Screen, w *dock.World) {
	style := tcell.StyleDefault.Background(r.colors.Surface).Foreground(r.colors.OutlineVariant)
	for _, id := range w.Query(func(n *dock.Node) bool { return n.SizedZone != nil }) {
		n, _ := w.Get(id)
		rect, _ := w.NodeRect(id)
		parent, _ := w.NodeRect(n.Parent)
		if rect.Empty() {
			continue
		}
		if n.SizedZone.Direction().IsRow() {
			if rect.X+rect.W >= parent.X+parent.W {
				continue
			}
			x := rect.X + rect.W - 1
			for y := rect.Y + w.TabBarHeight(); y < rect.Y+rect.H; y++ {
				screen.SetContent(x, y, '│', nil, style)
			}
			continue
		}
		if rect.Y+rect.H >= parent.Y+parent.H {
			continue
		}
		y := rect.Y + rect.H - 1
		for x := rect.X; x < rect.X+rect.W; x++ {
			screen.SetContent(x, y, '─', nil, style)
		}
	}
}

// drawHighlight tints the cells under a visible highlight, keeping their
// glyphs and foreground.
func (r *Renderer) drawHighlight(screen tcell.Screen, w *dock.World, highlight dock.EntityID) {
	n, ok := w.Get(highlight)
	if !ok || n.Style.Background.IsTransparent() {
		return
	}
	tint := n.Style.Background
	rect, _ := w.NodeRect(highlight)
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			mainc, combc, style, _ := screen.GetContent(x, y)
			fg, bg, attrs := style.Decompose()
			if !bg.Valid() {
				bg = r.colors.Surface
			}
			blended := tcell.StyleDefault.
				Foreground(fg).
				Background(blendColor(bg, tint.Color, tint.Alpha)).
				Attributes(attrs)
			screen.SetContent(x, y, mainc, combc, blended)
		}
	}
}

func (r *Renderer) drawPanel(screen tcell.Screen, w *dock.World, panel dock.EntityID) {
	n, ok := w.Get(panel)
	if !ok || n.FloatingPanel == nil {
		return
	}
	rect, _ := w.NodeRect(panel)
	body := tcell.StyleDefault.Background(r.colors.SurfaceContainerHigh).Foreground(r.colors.OnSurface)
	fill(screen, rect, ' ', body)

	titleRect, _ := w.NodeRect(n.FloatingPanel.TitleID())
	titleStyle := tcell.StyleDefault.Background(r.colors.PrimaryContainer).Foreground(r.colors.OnPrimaryContainer)
	if t, ok := w.Get(n.FloatingPanel.TitleID()); ok && t.Draggable != nil {
		switch t.Draggable.State {
		case dock.DragStart, dock.Dragging:
			titleStyle = titleStyle.Reverse(true)
		}
	}
	fill(screen, titleRect, ' ', titleStyle)
	drawText(screen, titleRect.X+1, titleRect.Y, titleRect.W-2, n.FloatingPanel.Title, titleStyle)

	for i, line := range strings.Split(n.FloatingPanel.Body, "\n") {
		y := titleRect.Y + titleRect.H + i
		if y >= rect.Y+rect.H {
			break
		}
		drawText(screen, rect.X+1, y, rect.W-2, line, body)
	}
}

func fill(screen tcell.Screen, rect dock.Rect, ch rune, style tcell.Style) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// drawText writes s at (x, y), truncated to width cells.
func drawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	if width <= 0 {
		return
	}
	s = runewidth.Truncate(s, width, "…")
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

// blendColor interpolates linearly from original towards blend.
func blendColor(original, blend tcell.Color, intensity float32) tcell.Color {
	if !blend.Valid() || intensity <= 0 {
		return original
	}
	if !original.Valid() {
		return blend
	}
	if intensity > 1 {
		intensity = 1
	}
	r1, g1, b1 := original.RGB()
	r2, g2, b2 := blend.RGB()
	mix := func(a, b int32) int32 {
		v := int32(float32(a)*(1-intensity) + float32(b)*intensity)
		return max(0, min(255, v))
	}
	return tcell.NewRGBColor(mix(r1, r2), mix(g1, g2), mix(b1, b2))
}
