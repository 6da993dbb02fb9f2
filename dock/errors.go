// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package dock

import "errors"

var (
	// ErrUnknownEntity is returned when a handle no longer resolves.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrInvalidTarget is returned when a split target is not a well-formed
	// docking zone (missing parent, sized zone, or docking zone component).
	ErrInvalidTarget = errors.New("not a valid docking zone")
	// ErrMissingTabGroup is returned when a docking zone's tab group is gone.
	ErrMissingTabGroup = errors.New("tab group missing")
	// ErrMissingTabBar is returned when a tab group's bar is gone.
	ErrMissingTabBar = errors.New("tab bar missing")
	// ErrNotFloatingPanel is returned when docking something that is not a
	// floating panel.
	ErrNotFloatingPanel = errors.New("not a floating panel")
	// ErrNotDropZone is returned when writing drop state to a plain node.
	ErrNotDropZone = errors.New("not a drop zone")
	// ErrNotTab is returned by tab operations on other nodes.
	ErrNotTab = errors.New("not a tab")
)
