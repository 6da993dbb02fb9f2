// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texeldock/root.go
// Summary: Root command and flags shared by every subcommand.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "texeldock",
	Short: "texeldock is a drag and drop docking layout for the terminal",
	Long: `texeldock arranges tabbed panels in resizable zones. Floating panels can be
dragged by their title onto a zone to dock them as a tab or to split the zone.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("preset", "", "Layout preset name or YAML file (defaults to layout.preset in texeldock.json)")
	rootCmd.PersistentFlags().String("log", "", "Write logs to this file instead of stderr")
}
