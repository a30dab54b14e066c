// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"fmt"
	"io"
	"math"

	"github.com/2dChan/r2voronoi/scene"
	svg "github.com/ajstarks/svgo"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// SVG writes sc as an SVG document.
func SVG(w io.Writer, sc scene.Scene, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	cv := &svgCanvas{svg: svg.New(w), width: opts.Width, height: opts.Height}
	cv.svg.Start(opts.Width, opts.Height)
	draw(cv, sc, opts)
	cv.svg.End()
	return nil
}

type svgCanvas struct {
	svg    *svg.SVG
	width  int
	height int
}

func (c *svgCanvas) background(col colorful.Color) {
	c.svg.Rect(0, 0, c.width, c.height, "fill:"+hex(col))
}

func (c *svgCanvas) point(x, y, r float64, col colorful.Color) {
	c.svg.Circle(px(x), px(y), max(px(r), 1), "fill:"+hex(col))
}

func (c *svgCanvas) line(x1, y1, x2, y2, width float64, col colorful.Color) {
	c.svg.Line(px(x1), px(y1), px(x2), px(y2), fmt.Sprintf("stroke:%s;stroke-width:%g", hex(col), width))
}

func (c *svgCanvas) triangle(xs, ys [3]float64, col colorful.Color) {
	c.svg.Polygon(
		[]int{px(xs[0]), px(xs[1]), px(xs[2])},
		[]int{px(ys[0]), px(ys[1]), px(ys[2])},
		"fill:"+hex(col)+";fill-opacity:0.6",
	)
}

func (c *svgCanvas) text(x, y float64, s string, col colorful.Color) {
	c.svg.Text(px(x), px(y), s, "font-family:monospace;font-size:12px;fill:"+hex(col))
}

func px(v float64) int {
	return int(math.Round(v))
}

func hex(c colorful.Color) string {
	return c.Clamped().Hex()
}
