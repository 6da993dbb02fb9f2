// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: Light and dark color schemes at three contrast levels.
// Usage: The renderer asks for Palette(scheme) once per frame; config picks
// the scheme through activeTheme and contrast.

package theme

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Contrast selects how far foreground and background roles are pushed apart.
type Contrast int

const (
	ContrastStandard Contrast = iota
	ContrastMedium
	ContrastHigh
)

func (c Contrast) String() string {
	switch c {
	case ContrastStandard:
		return "standard"
	case ContrastMedium:
		return "medium"
	case ContrastHigh:
		return "high"
	default:
		return fmt.Sprintf("Contrast(%d)", int(c))
	}
}

// Scheme identifies one palette.
type Scheme struct {
	Dark     bool
	Contrast Contrast
}

func (s Scheme) String() string {
	mode := "light"
	if s.Dark {
		mode = "dark"
	}
	return mode + "/" + s.Contrast.String()
}

// DefaultScheme is used when nothing is configured.
var DefaultScheme = Scheme{Dark: true, Contrast: ContrastStandard}

// ParseScheme reads the activeTheme and contrast config values. Empty strings
// select the defaults.
func ParseScheme(mode, contrast string) (Scheme, error) {
	s := DefaultScheme
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "dark":
		s.Dark = true
	case "light":
		s.Dark = false
	default:
		return DefaultScheme, fmt.Errorf("unknown theme %q", mode)
	}
	switch strings.ToLower(strings.TrimSpace(contrast)) {
	case "", "standard":
		s.Contrast = ContrastStandard
	case "medium":
		s.Contrast = ContrastMedium
	case "high":
		s.Contrast = ContrastHigh
	default:
		return DefaultScheme, fmt.Errorf("unknown contrast %q", contrast)
	}
	return s, nil
}

// Colors holds the color roles the docking UI paints with.
type Colors struct {
	Primary              tcell.Color
	OnPrimary            tcell.Color
	PrimaryContainer     tcell.Color
	OnPrimaryContainer   tcell.Color
	Error                tcell.Color
	Background           tcell.Color
	OnBackground         tcell.Color
	Surface              tcell.Color
	OnSurface            tcell.Color
	SurfaceVariant       tcell.Color
	OnSurfaceVariant     tcell.Color
	Outline              tcell.Color
	OutlineVariant       tcell.Color
	Scrim                tcell.Color
	InverseSurface       tcell.Color
	InverseOnSurface     tcell.Color
	SurfaceContainer     tcell.Color
	SurfaceContainerHigh tcell.Color
}

// Palette returns the colors for s, falling back to DefaultScheme.
func Palette(s Scheme) Colors {
	if c, ok := palettes[s]; ok {
		return c
	}
	return palettes[DefaultScheme]
}

// Schemes lists every scheme that has a palette.
func Schemes() []Scheme {
	out := make([]Scheme, 0, len(palettes))
	for _, dark := range []bool{false, true} {
		for _, c := range []Contrast{ContrastStandard, ContrastMedium, ContrastHigh} {
			out = append(out, Scheme{Dark: dark, Contrast: c})
		}
	}
	return out
}
