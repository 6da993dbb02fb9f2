// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed getters over the loosely typed JSON sections.

package config

import (
	"encoding/json"
	"strconv"
)

func asSection(raw interface{}) (Section, bool) {
	switch v := raw.(type) {
	case Section:
		return v, true
	case map[string]interface{}:
		return Section(v), true
	}
	return nil, false
}

func cloneSection(s Section) Section {
	out := make(Section, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Section returns the named section, or nil. The empty name is the top level.
func (c Config) Section(name string) Section {
	if c == nil {
		return nil
	}
	if name == "" {
		return Section(c)
	}
	s, _ := asSection(c[name])
	return s
}

func (c Config) lookup(section, key string) (interface{}, bool) {
	s := c.Section(section)
	if s == nil {
		return nil, false
	}
	v, ok := s[key]
	return v, ok
}

// GetString returns a string value, or def when missing or not a string.
func (c Config) GetString(section, key, def string) string {
	if v, ok := c.lookup(section, key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// GetFloat returns a numeric value. Numeric strings are accepted.
func (c Config) GetFloat(section, key string, def float64) float64 {
	v, ok := c.lookup(section, key)
	if !ok {
		return def
	}
	if f, ok := toFloat(v); ok {
		return f
	}
	return def
}

// GetInt is GetFloat truncated toward zero.
func (c Config) GetInt(section, key string, def int) int {
	v, ok := c.lookup(section, key)
	if !ok {
		return def
	}
	if f, ok := toFloat(v); ok {
		return int(f)
	}
	return def
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

// Set stores value under key, creating the section as needed.
func (c Config) Set(section, key string, value interface{}) {
	if c == nil {
		return
	}
	if section == "" {
		c[key] = value
		return
	}
	s := c.Section(section)
	if s == nil {
		s = make(Section)
		c[section] = s
	}
	s[key] = value
}

// Clone copies cfg one section deep.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	out := make(Config, len(cfg))
	for name, raw := range cfg {
		if s, ok := asSection(raw); ok {
			out[name] = cloneSection(s)
			continue
		}
		out[name] = raw
	}
	return out
}
