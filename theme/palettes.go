// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/palettes.go
// Summary: Color tables for every scheme and contrast level.

package theme

import "github.com/gdamore/tcell/v2"

var palettes = map[Scheme]Colors{
	{Dark: false, Contrast: ContrastStandard}: {
		Primary:              tcell.NewHexColor(0x904A44),
		OnPrimary:            tcell.NewHexColor(0xFFFFFF),
		PrimaryContainer:     tcell.NewHexColor(0xFFDAD6),
		OnPrimaryContainer:   tcell.NewHexColor(0x3B0907),
		Error:                tcell.NewHexColor(0xBA1A1A),
		Background:           tcell.NewHexColor(0xFFF8F7),
		OnBackground:         tcell.NewHexColor(0x231918),
		Surface:              tcell.NewHexColor(0xFFF8F7),
		OnSurface:            tcell.NewHexColor(0x231918),
		SurfaceVariant:       tcell.NewHexColor(0xF5DDDA),
		OnSurfaceVariant:     tcell.NewHexColor(0x534341),
		Outline:              tcell.NewHexColor(0x857371),
		OutlineVariant:       tcell.NewHexColor(0xD8C2BF),
		Scrim:                tcell.NewHexColor(0x000000),
		InverseSurface:       tcell.NewHexColor(0x392E2D),
		InverseOnSurface:     tcell.NewHexColor(0xFFEDEA),
		SurfaceContainer:     tcell.NewHexColor(0xFCEAE7),
		SurfaceContainerHigh: tcell.NewHexColor(0xF6E4E2),
	},
	{Dark: false, Contrast: ContrastMedium}: {
		Primary:              tcell.NewHexColor(0x6E302A),
		OnPrimary:            tcell.NewHexColor(0xFFFFFF),
		PrimaryContainer:     tcell.NewHexColor(0xAA6058),
		OnPrimaryContainer:   tcell.NewHexColor(0xFFFFFF),
		Error:                tcell.NewHexColor(0x8C0009),
		Background:           tcell.NewHexColor(0xFFF8F7),
		OnBackground:         tcell.NewHexColor(0x231918),
		Surface:              tcell.NewHexColor(0xFFF8F7),
		OnSurface:            tcell.NewHexColor(0x231918),
		SurfaceVariant:       tcell.NewHexColor(0xF5DDDA),
		OnSurfaceVariant:     tcell.NewHexColor(0x4F3F3D),
		Outline:              tcell.NewHexColor(0x6C5B59),
		OutlineVariant:       tcell.NewHexColor(0x897674),
		Scrim:                tcell.NewHexColor(0x000000),
		InverseSurface:       tcell.NewHexColor(0x392E2D),
		InverseOnSurface:     tcell.NewHexColor(0xFFEDEA),
		SurfaceContainer:     tcell.NewHexColor(0xFCEAE7),
		SurfaceContainerHigh: tcell.NewHexColor(0xF6E4E2),
	},
	{Dark: false, Contrast: ContrastHigh}: {
		Primary:              tcell.NewHexColor(0x44100D),
		OnPrimary:            tcell.NewHexColor(0xFFFFFF),
		PrimaryContainer:     tcell.NewHexColor(0x6E302A),
		OnPrimaryContainer:   tcell.NewHexColor(0xFFFFFF),
		Error:                tcell.NewHexColor(0x4E0002),
		Background:           tcell.NewHexColor(0xFFF8F7),
		OnBackground:         tcell.NewHexColor(0x231918),
		Surface:              tcell.NewHexColor(0xFFF8F7),
		OnSurface:            tcell.NewHexColor(0x000000),
		SurfaceVariant:       tcell.NewHexColor(0xF5DDDA),
		OnSurfaceVariant:     tcell.NewHexColor(0x2E211F),
		Outline:              tcell.NewHexColor(0x4F3F3D),
		OutlineVariant:       tcell.NewHexColor(0x4F3F3D),
		Scrim:                tcell.NewHexColor(0x000000),
		InverseSurface:       tcell.NewHexColor(0x392E2D),
		InverseOnSurface:     tcell.NewHexColor(0xFFFFFF),
		SurfaceContainer:     tcell.NewHexColor(0xFCEAE7),
		SurfaceContainerHigh: tcell.NewHexColor(0xF6E4E2),
	},
	{Dark: true, Contrast: ContrastStandard}: {
		Primary:              tcell.NewHexColor(0xFFB4AB),
		OnPrimary:            tcell.NewHexColor(0x561E1A),
		PrimaryContainer:     tcell.NewHexColor(0x73332E),
		OnPrimaryContainer:   tcell.NewHexColor(0xFFDAD6),
		Error:                tcell.NewHexColor(0xFFB4AB),
		Background:           tcell.NewHexColor(0x1A1110),
		OnBackground:         tcell.NewHexColor(0xF1DEDC),
		Surface:              tcell.NewHexColor(0x1A1110),
		OnSurface:            tcell.NewHexColor(0xF1DEDC),
		SurfaceVariant:       tcell.NewHexColor(0x534341),
		OnSurfaceVariant:     tcell.NewHexColor(0xD8C2BF),
		Outline:              tcell.NewHexColor(0xA08C8A),
		OutlineVariant:       tcell.NewHexColor(0x534341),
		Scrim:                tcell.NewHexColor(0x000000),
		InverseSurface:       tcell.NewHexColor(0xF1DEDC),
		InverseOnSurface:     tcell.NewHexColor(0x392E2D),
		SurfaceContainer:     tcell.NewHexColor(0x271D1C),
		SurfaceContainerHigh: tcell.NewHexColor(0x322826),
	},
	{Dark: true, Contrast: ContrastMedium}: {
		Primary:              tcell.NewHexColor(0xFFBAB2),
		OnPrimary:            tcell.NewHexColor(0x330404),
		PrimaryContainer:     tcell.NewHexColor(0xCC7B73),
		OnPrimaryContainer:   tcell.NewHexColor(0x000000),
		Error:                tcell.NewHexColor(0xFFBAB1),
		Background:           tcell.NewHexColor(0x1A1110),
		OnBackground:         tcell.NewHexColor(0xF1DEDC),
		Surface:              tcell.NewHexColor(0x1A1110),
		OnSurface:            tcell.NewHexColor(0xFFF9F9),
		SurfaceVariant:       tcell.NewHexColor(0x534341),
		OnSurfaceVariant:     tcell.NewHexColor(0xDCC6C3),
		Outline:              tcell.NewHexColor(0xB39E9C),
		OutlineVariant:       tcell.NewHexColor(0x927F7D),
		Scrim:                tcell.NewHexColor(0x000000),
		InverseSurface:       tcell.NewHexColor(0xF1DEDC),
		InverseOnSurface:     tcell.NewHexColor(0x322826),
		SurfaceContainer:     tcell.NewHexColor(0x271D1C),
		SurfaceContainerHigh: tcell.NewHexColor(0x322826),
	},
	{Dark: true, Contrast: ContrastHigh}: {
		Primary:              tcell.NewHexColor(0xFFF9F9),
		OnPrimary:            tcell.NewHexColor(0x000000),
		PrimaryContainer:     tcell.NewHexColor(0xFFBAB2),
		OnPrimaryContainer:   tcell.NewHexColor(0x000000),
		Error:                tcell.NewHexColor(0xFFF9F9),
		Background:           tcell.NewHexColor(0x1A1110),
		OnBackground:         tcell.NewHexColor(0xF1DEDC),
		Surface:              tcell.NewHexColor(0x1A1110),
		OnSurface:            tcell.NewHexColor(0xFFFFFF),
		SurfaceVariant:       tcell.NewHexColor(0x534341),
		OnSurfaceVariant:     tcell.NewHexColor(0xFFF9F9),
		Outline:              tcell.NewHexColor(0xDCC6C3),
		OutlineVariant:       tcell.NewHexColor(0xDCC6C3),
		Scrim:                tcell.NewHexColor(0x000000),
		InverseSurface:       tcell.NewHexColor(0xF1DEDC),
		InverseOnSurface:     tcell.NewHexColor(0x000000),
		SurfaceContainer:     tcell.NewHexColor(0x271D1C),
		SurfaceContainerHigh: tcell.NewHexColor(0x322826),
	},
}
