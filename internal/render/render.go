// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render rasterizes scenes to SVG and PNG.
package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/2dChan/r2voronoi"
	"github.com/2dChan/r2voronoi/meshbuf"
	"github.com/2dChan/r2voronoi/scene"
	"github.com/golang/geo/r2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type Options struct {
	Width  int
	Height int
	// Margin is the share of the bounding box added around it on each side.
	Margin      float64
	Background  colorful.Color
	LineWidth   float64
	PointRadius float64
	ShowStatus  bool
}

func DefaultOptions() Options {
	return Options{
		Width:       1000,
		Height:      1000,
		Margin:      0.1,
		Background:  colorful.Color{},
		LineWidth:   1,
		PointRadius: 2,
		ShowStatus:  true,
	}
}

func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("render: image size must be positive, got %dx%d", o.Width, o.Height)
	}
	if o.Margin < 0 {
		return fmt.Errorf("render: margin must be non-negative, got %v", o.Margin)
	}
	return nil
}

// Viewport maps world coordinates onto an image with the y axis pointing up.
type Viewport struct {
	center r2.Point
	scale  float64
	width  int
	height int
}

// NewViewport fits box grown by margin into a width x height image,
// keeping the aspect ratio.
func NewViewport(box r2voronoi.BoundingBox, width, height int, margin float64) Viewport {
	w := box.Width * (1 + 2*margin)
	h := box.Height * (1 + 2*margin)
	return Viewport{
		center: box.Center,
		scale:  math.Min(float64(width)/w, float64(height)/h),
		width:  width,
		height: height,
	}
}

func (v Viewport) ToScreen(p r2.Point) (float64, float64) {
	d := p.Sub(v.center).Mul(v.scale)
	return float64(v.width)/2 + d.X, float64(v.height)/2 - d.Y
}

// canvas is the drawing surface shared by the SVG and PNG backends.
type canvas interface {
	background(c colorful.Color)
	point(x, y, r float64, c colorful.Color)
	line(x1, y1, x2, y2, width float64, c colorful.Color)
	triangle(xs, ys [3]float64, c colorful.Color)
	text(x, y float64, s string, c colorful.Color)
}

func draw(cv canvas, sc scene.Scene, opts Options) {
	vp := NewViewport(sc.Box, opts.Width, opts.Height, opts.Margin)
	cv.background(opts.Background)
	for _, m := range sc.Layers() {
		drawMesh(cv, vp, m, opts)
	}
	if opts.ShowStatus {
		for i, line := range sc.Status {
			cv.text(8, float64(16*(i+1)), line, meshbuf.White)
		}
	}
}

func drawMesh(cv canvas, vp Viewport, m meshbuf.Mesh, opts Options) {
	color := func(idx uint32) colorful.Color {
		if int(idx) < len(m.Colors) {
			return m.Colors[idx]
		}
		return meshbuf.White
	}

	switch m.Topology {
	case meshbuf.Points:
		for _, idx := range m.Indices {
			x, y := vp.ToScreen(m.Positions[idx])
			cv.point(x, y, opts.PointRadius, color(idx))
		}
	case meshbuf.Lines:
		for i := 0; i+1 < len(m.Indices); i += 2 {
			a, b := m.Indices[i], m.Indices[i+1]
			x1, y1 := vp.ToScreen(m.Positions[a])
			x2, y2 := vp.ToScreen(m.Positions[b])
			cv.line(x1, y1, x2, y2, opts.LineWidth, color(a))
		}
	case meshbuf.Triangles:
		for i := 0; i+2 < len(m.Indices); i += 3 {
			var xs, ys [3]float64
			for j := range 3 {
				xs[j], ys[j] = vp.ToScreen(m.Positions[m.Indices[i+j]])
			}
			cv.triangle(xs, ys, color(m.Indices[i]))
		}
	}
}

// WriteFile renders sc to path, choosing the format from its extension.
func WriteFile(path string, sc scene.Scene, opts Options) (err error) {
	var write func(io.Writer, scene.Scene, Options) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		write = SVG
	case ".png":
		write = PNG
	default:
		return fmt.Errorf("render: unsupported output format %q", ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return write(file, sc, opts)
}
