// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texeldock/run.go
// Summary: Interactive docking shell with live config reload and metrics.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/framegrace/texeldock/config"
	"github.com/framegrace/texeldock/internal/devshell"
	"github.com/framegrace/texeldock/internal/metrics"
	"github.com/framegrace/texeldock/internal/render"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive docking shell",
	Long: `Opens the docking shell in the current terminal. Drag a floating panel by its
title onto a zone: the middle docks it as a tab, the edges split the zone.`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9464)")
	runCmd.Flags().Bool("no-watch", false, "Do not reload texeldock.json when it changes")

	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}

func runShell(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("texeldock run needs a terminal; use `texeldock dump` for non-interactive output")
	}

	// Anything on stderr would tear the screen.
	closer, err := setupLog(cmd, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg := config.System()
	if err := config.Err(); err != nil {
		log.Printf("Config: %v", err)
	}
	settings := config.Docking(cfg)

	collector := metrics.NewCollector()
	name, _ := cmd.Flags().GetString("preset")
	world, err := buildWorld(settings, name, collector)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if addr, _ := cmd.Flags().GetString("metrics-addr"); addr != "" {
		handler, err := metrics.Handler(collector)
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("Metrics: %v", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	shell := devshell.New(devshell.Options{
		World:    world,
		Renderer: render.New(paletteFor(settings)),
	})

	if noWatch, _ := cmd.Flags().GetBool("no-watch"); !noWatch {
		go func() {
			err := config.Watch(ctx, func(updated config.Config) {
				next := config.Docking(updated)
				shell.Post(func() {
					shell.Renderer().SetColors(paletteFor(next))
					world.SetHighlightTint(highlightTint(next))
					log.Printf("Config: reloaded docking settings")
				})
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("Config: watch stopped: %v", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		shell.Post(shell.Quit)
	}()

	return shell.Run()
}
