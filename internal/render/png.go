// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"io"

	"github.com/2dChan/r2voronoi/scene"
	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// PNG rasterizes sc and writes it as a PNG image.
func PNG(w io.Writer, sc scene.Scene, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	cv := &pngCanvas{dc: gg.NewContext(opts.Width, opts.Height)}
	draw(cv, sc, opts)
	return cv.dc.EncodePNG(w)
}

type pngCanvas struct {
	dc *gg.Context
}

func (c *pngCanvas) background(col colorful.Color) {
	c.dc.SetColor(col.Clamped())
	c.dc.Clear()
}

func (c *pngCanvas) point(x, y, r float64, col colorful.Color) {
	c.dc.SetColor(col.Clamped())
	c.dc.DrawCircle(x, y, r)
	c.dc.Fill()
}

func (c *pngCanvas) line(x1, y1, x2, y2, width float64, col colorful.Color) {
	c.dc.SetLineWidth(width)
	c.dc.SetColor(col.Clamped())
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

func (c *pngCanvas) triangle(xs, ys [3]float64, col colorful.Color) {
	r, g, b := col.Clamped().RGB255()
	c.dc.SetRGBA255(int(r), int(g), int(b), 153)
	c.dc.MoveTo(xs[0], ys[0])
	c.dc.LineTo(xs[1], ys[1])
	c.dc.LineTo(xs[2], ys[2])
	c.dc.ClosePath()
	c.dc.Fill()
}

func (c *pngCanvas) text(x, y float64, s string, col colorful.Color) {
	c.dc.SetColor(col.Clamped())
	c.dc.DrawString(s, x, y)
}
