// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texeldock/main.go
// Summary: Entry point for the texeldock CLI.

package main

func main() {
	Execute()
}
