// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package meshbuf

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Coloring assigns a color to a vertex ordinal.
type Coloring interface {
	Color(i int) colorful.Color
}

// ColoringFunc adapts a plain function to Coloring.
type ColoringFunc func(i int) colorful.Color

func (f ColoringFunc) Color(i int) colorful.Color {
	return f(i)
}

// Solid colors every vertex with c.
func Solid(c colorful.Color) Coloring {
	return ColoringFunc(func(int) colorful.Color { return c })
}

// Rainbow walks the hue circle in period steps.
func Rainbow(period int) Coloring {
	if period < 1 {
		period = 1
	}
	return ColoringFunc(func(i int) colorful.Color {
		hue := 360 * float64(i%period) / float64(period)
		return colorful.Hsv(hue, 0.7, 0.95)
	})
}

var (
	Red   = colorful.Color{R: 1}
	White = colorful.Color{R: 1, G: 1, B: 1}
)

func colorsFor(coloring Coloring, n int) []colorful.Color {
	if coloring == nil {
		coloring = Solid(White)
	}
	colors := make([]colorful.Color, n)
	for i := range colors {
		colors[i] = coloring.Color(i)
	}
	return colors
}
