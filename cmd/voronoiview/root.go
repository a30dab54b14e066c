// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"fmt"
	"io"

	"github.com/2dChan/r2voronoi/internal/config"
	"github.com/2dChan/r2voronoi/internal/logging"
	"github.com/2dChan/r2voronoi/scene"
	"github.com/2dChan/r2voronoi/session"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "voronoiview.yaml"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "voronoiview",
		Short: "voronoiview edits and renders planar Voronoi diagrams",
		Long: `voronoiview drives an edit session over a planar Voronoi diagram.
Commands such as "add 0.1 0.2", "relax", "undo" or "clip" are read from a
script or from stdin, and the resulting diagram is written as SVG or PNG.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", defaultConfigPath, "Path to the YAML configuration file")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.Int("sites", 0, "Number of sites of the initial diagram")
	flags.Int64("seed", 0, "Seed of site generation")
	flags.String("site-type", "", "Site layout: Random, Circle or Square")
	flags.String("clip", "", "Clip behavior: Clip, None or RemoveSitesOutsideBoundingBoxOnly")

	root.AddCommand(newRenderCmd(), newReplCmd())
	return root
}

// loadConfig reads the config file and applies the flags that were set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	path, err := flags.GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("sites") {
		cfg.Sites, _ = flags.GetInt("sites")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("site-type") {
		cfg.SiteType, _ = flags.GetString("site-type")
	}
	if flags.Changed("clip") {
		cfg.Clip, _ = flags.GetString("clip")
	}
	if flags.Changed("width") {
		cfg.Output.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		cfg.Output.Height, _ = flags.GetInt("height")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newRunner builds a session and runner from cfg. Logs go to errOut.
func newRunner(cfg config.Config, out, errOut io.Writer) (*runner, error) {
	logger := logging.NewWriter(errOut, cfg.Level())
	opts, err := cfg.SessionOptions(logger)
	if err != nil {
		return nil, err
	}
	renderOpts, err := cfg.RenderOptions()
	if err != nil {
		return nil, err
	}
	s := session.New(opts...)
	logger.Debug("session created",
		"sites", s.Size(),
		"site_type", s.SiteType(),
		"clip", s.ClipBehavior(),
		"box", s.BoundingBox().Width,
		"redo", s.RedoPolicy(),
		"history_limit", s.HistoryLimit(),
	)
	return &runner{
		s:       s,
		logger:  logger,
		out:     out,
		render:  renderOpts,
		palette: scene.DefaultPalette(),
	}, nil
}
