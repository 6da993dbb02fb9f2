// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestEverySchemeHasCompletePalette(t *testing.T) {
	for _, s := range Schemes() {
		c, ok := palettes[s]
		if !ok {
			t.Fatalf("missing palette for %v", s)
		}
		v := reflect.ValueOf(c)
		for i := 0; i < v.NumField(); i++ {
			color := v.Field(i).Interface().(tcell.Color)
			if !color.Valid() {
				t.Fatalf("%v: role %s is unset", s, v.Type().Field(i).Name)
			}
		}
	}
}

func TestParseScheme(t *testing.T) {
	s, err := ParseScheme("Light", "HIGH")
	if err != nil {
		t.Fatalf("ParseScheme: %v", err)
	}
	if s.Dark || s.Contrast != ContrastHigh {
		t.Fatalf("unexpected scheme %v", s)
	}
	if s, err := ParseScheme("", ""); err != nil || s != DefaultScheme {
		t.Fatalf("empty values should give the default, got %v, %v", s, err)
	}
	if _, err := ParseScheme("sepia", ""); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
	if _, err := ParseScheme("dark", "extreme"); err == nil {
		t.Fatalf("expected error for unknown contrast")
	}
}

func TestPaletteValues(t *testing.T) {
	dark := Palette(Scheme{Dark: true})
	if dark.Primary != tcell.NewHexColor(0xFFB4AB) {
		t.Fatalf("dark primary = %v", dark.Primary)
	}
	light := Palette(Scheme{Contrast: ContrastStandard})
	if light.Background != tcell.NewHexColor(0xFFF8F7) {
		t.Fatalf("light background = %v", light.Background)
	}
	if Palette(Scheme{Contrast: Contrast(9)}) != Palette(DefaultScheme) {
		t.Fatalf("unknown scheme should fall back to default")
	}
}
