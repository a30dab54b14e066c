// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package config loads the viewer configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/2dChan/r2voronoi"
	"github.com/2dChan/r2voronoi/internal/logging"
	"github.com/2dChan/r2voronoi/internal/render"
	"github.com/2dChan/r2voronoi/meshbuf"
	"github.com/2dChan/r2voronoi/session"
	"github.com/2dChan/r2voronoi/utils"
	"github.com/golang/geo/r2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config is the content of a viewer config file.
type Config struct {
	Sites       int                   `yaml:"sites"`
	Seed        int64                 `yaml:"seed"`
	SiteType    string                `yaml:"site_type"`
	Clip        string                `yaml:"clip"`
	BoundingBox BoundingBoxConfig     `yaml:"bounding_box"`
	Render      meshbuf.RenderOptions `yaml:"render"`
	History     HistoryConfig         `yaml:"history"`
	Output      OutputConfig          `yaml:"output"`
	LogLevel    string                `yaml:"log_level"`
}

type BoundingBoxConfig struct {
	Center [2]float64 `yaml:"center"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
}

type HistoryConfig struct {
	// Limit bounds each history; zero means unbounded.
	Limit int `yaml:"limit"`
	// Redo is "preserve" or "clear".
	Redo string `yaml:"redo"`
}

type OutputConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Margin     float64 `yaml:"margin"`
	Background string  `yaml:"background"`
	ShowStatus bool    `yaml:"show_status"`
}

func Default() Config {
	box := r2voronoi.DefaultBoundingBox()
	out := render.DefaultOptions()
	return Config{
		Sites:    session.DefaultInitialSize,
		SiteType: utils.Random.String(),
		Clip:     r2voronoi.Clip.String(),
		BoundingBox: BoundingBoxConfig{
			Width:  box.Width,
			Height: box.Height,
		},
		Render: meshbuf.DefaultRenderOptions(),
		History: HistoryConfig{
			Redo: session.RedoPreserve.String(),
		},
		Output: OutputConfig{
			Width:      out.Width,
			Height:     out.Height,
			Margin:     out.Margin,
			Background: out.Background.Hex(),
			ShowStatus: out.ShowStatus,
		},
		LogLevel: "info",
	}
}

// Load reads the file at path over the defaults. A missing file yields the
// defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Sites < 3 {
		errs = append(errs, fmt.Errorf("sites: need at least 3, got %d", c.Sites))
	}
	if _, err := utils.ParseSiteType(c.SiteType); err != nil {
		errs = append(errs, fmt.Errorf("site_type: %w", err))
	}
	if _, err := r2voronoi.ParseClipBehavior(c.Clip); err != nil {
		errs = append(errs, fmt.Errorf("clip: %w", err))
	}
	if err := c.box().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("bounding_box: %w", err))
	}
	if c.History.Limit < 0 {
		errs = append(errs, fmt.Errorf("history.limit: must be non-negative, got %d", c.History.Limit))
	}
	if _, err := parseRedoPolicy(c.History.Redo); err != nil {
		errs = append(errs, fmt.Errorf("history.redo: %w", err))
	}
	if _, err := c.RenderOptions(); err != nil {
		errs = append(errs, fmt.Errorf("output: %w", err))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}

func (c Config) box() r2voronoi.BoundingBox {
	center := r2.Point{X: c.BoundingBox.Center[0], Y: c.BoundingBox.Center[1]}
	return r2voronoi.NewBoundingBox(center, c.BoundingBox.Width, c.BoundingBox.Height)
}

// SessionOptions translates the config into session options. c must be valid.
func (c Config) SessionOptions(logger *slog.Logger) ([]session.Option, error) {
	siteType, err := utils.ParseSiteType(c.SiteType)
	if err != nil {
		return nil, err
	}
	clip, err := r2voronoi.ParseClipBehavior(c.Clip)
	if err != nil {
		return nil, err
	}
	redo, err := parseRedoPolicy(c.History.Redo)
	if err != nil {
		return nil, err
	}
	return []session.Option{
		session.WithLogger(logger),
		session.WithSeed(c.Seed),
		session.WithInitialSize(c.Sites),
		session.WithSiteType(siteType),
		session.WithClipBehavior(clip),
		session.WithBoundingBox(c.box()),
		session.WithRenderOptions(c.Render),
		session.WithHistoryLimit(c.History.Limit),
		session.WithRedoPolicy(redo),
	}, nil
}

// RenderOptions translates the output section.
func (c Config) RenderOptions() (render.Options, error) {
	opts := render.DefaultOptions()
	opts.Width = c.Output.Width
	opts.Height = c.Output.Height
	opts.Margin = c.Output.Margin
	opts.ShowStatus = c.Output.ShowStatus
	if c.Output.Background != "" {
		bg, err := colorful.Hex(c.Output.Background)
		if err != nil {
			return render.Options{}, fmt.Errorf("background: %w", err)
		}
		opts.Background = bg
	}
	if err := opts.Validate(); err != nil {
		return render.Options{}, err
	}
	return opts, nil
}

// Level returns the configured log level.
func (c Config) Level() slog.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseRedoPolicy(s string) (session.RedoPolicy, error) {
	for _, p := range []session.RedoPolicy{session.RedoPreserve, session.RedoClearOnEdit} {
		if p.String() == s {
			return p, nil
		}
	}
	return session.RedoPreserve, fmt.Errorf("unknown redo policy %q", s)
}
