// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command voronoiview edits planar Voronoi diagrams from scripts or an
// interactive prompt and renders them to SVG or PNG.
package main

import (
	"log/slog"
	"os"

	"github.com/2dChan/r2voronoi/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.New(slog.LevelError).Error("voronoiview failed", "error", err)
		os.Exit(1)
	}
}
