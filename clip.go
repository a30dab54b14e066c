// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// ClipBehavior controls how sites and cells outside the bounding box are
// treated while building a diagram.
type ClipBehavior int

const (
	// Clip drops sites outside the bounding box and clips every cell to it.
	Clip ClipBehavior = iota
	// None keeps all sites and leaves hull cells open.
	None
	// RemoveSitesOutsideBoundingBoxOnly drops sites outside the bounding box
	// but leaves hull cells open.
	RemoveSitesOutsideBoundingBoxOnly
)

func (c ClipBehavior) String() string {
	switch c {
	case Clip:
		return "Clip"
	case None:
		return "None"
	case RemoveSitesOutsideBoundingBoxOnly:
		return "RemoveSitesOutsideBoundingBoxOnly"
	}
	return fmt.Sprintf("ClipBehavior(%d)", int(c))
}

// Next returns the behavior following c in the Clip, None,
// RemoveSitesOutsideBoundingBoxOnly cycle.
func (c ClipBehavior) Next() ClipBehavior {
	switch c {
	case Clip:
		return None
	case None:
		return RemoveSitesOutsideBoundingBoxOnly
	}
	return Clip
}

// ParseClipBehavior is the inverse of String.
func ParseClipBehavior(s string) (ClipBehavior, error) {
	for _, c := range []ClipBehavior{Clip, None, RemoveSitesOutsideBoundingBoxOnly} {
		if c.String() == s {
			return c, nil
		}
	}
	return Clip, fmt.Errorf("r2voronoi: unknown clip behavior %q", s)
}

func (c ClipBehavior) valid() bool {
	return c >= Clip && c <= RemoveSitesOutsideBoundingBoxOnly
}

func (c ClipBehavior) removesOutsideSites() bool {
	return c == Clip || c == RemoveSitesOutsideBoundingBoxOnly
}

// clipVertex is a polygon vertex that remembers the diagram vertex it came
// from; idx is -1 for points created by clipping.
type clipVertex struct {
	p   r2.Point
	idx int
}

func clipVertexPoints(poly []clipVertex) []r2.Point {
	points := make([]r2.Point, len(poly))
	for i, v := range poly {
		points[i] = v.p
	}
	return points
}

// clipToRect clips poly against rect (Sutherland–Hodgman).
func clipToRect(poly []clipVertex, rect r2.Rect) []clipVertex {
	planes := []struct {
		n   r2.Point
		off float64
	}{
		{r2.Point{X: -1}, -rect.X.Lo},
		{r2.Point{X: 1}, rect.X.Hi},
		{r2.Point{Y: -1}, -rect.Y.Lo},
		{r2.Point{Y: 1}, rect.Y.Hi},
	}
	for _, pl := range planes {
		poly = clipHalfPlane(poly, pl.n, pl.off)
		if len(poly) == 0 {
			break
		}
	}
	return poly
}

// clipHalfPlane keeps the part of poly where p·n <= off.
func clipHalfPlane(poly []clipVertex, n r2.Point, off float64) []clipVertex {
	out := make([]clipVertex, 0, len(poly)+1)
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		curIn := cur.p.Dot(n) <= off
		prevIn := prev.p.Dot(n) <= off
		if curIn != prevIn {
			out = append(out, clipVertex{p: intersect(prev.p, cur.p, n, off), idx: -1})
		}
		if curIn {
			out = append(out, cur)
		}
	}
	return out
}

func intersect(a, b, n r2.Point, off float64) r2.Point {
	t := (off - a.Dot(n)) / b.Sub(a).Dot(n)
	return a.Add(b.Sub(a).Mul(t))
}
