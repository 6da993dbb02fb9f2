// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texeldock/dump.go
// Summary: Prints a preset's layout as YAML after running one frame.
// Usage: texeldock dump --preset stack --width 120 --height 40 > my.yaml

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/framegrace/texeldock/config"
	"github.com/framegrace/texeldock/dock"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the laid out tree of a preset as YAML",
	Long: `Builds the preset, lays it out at the given size and prints the result in the
preset format. The output can be saved to the presets directory and loaded by name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		closer, err := setupLog(cmd, os.Stderr)
		if err != nil {
			return err
		}
		defer closer.Close()

		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		if width <= 0 || height <= 0 {
			return fmt.Errorf("invalid size %dx%d", width, height)
		}
		rects, _ := cmd.Flags().GetBool("rects")
		name, _ := cmd.Flags().GetString("preset")

		w, err := buildWorld(config.Docking(config.System()), name, nil)
		if err != nil {
			return err
		}
		engine := dock.NewEngine(w)
		engine.Resize(dock.Rect{W: width, H: height})
		engine.Frame()

		out, err := yaml.Marshal(w.CaptureLayout(rects))
		if err != nil {
			return fmt.Errorf("encode layout: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().Int("width", 120, "Layout width in cells")
	dumpCmd.Flags().Int("height", 40, "Layout height in cells")
	dumpCmd.Flags().Bool("rects", true, "Include computed rectangles")
}
