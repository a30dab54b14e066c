// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating planar site sets for Voronoi diagrams.

package utils

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

const (
	// jitterScale is the relative amplitude used to break the exact
	// cocircularity of ring and grid layouts.
	jitterScale = 1e-6
	// ringFill keeps the jittered ring strictly inside the rect.
	ringFill = 0.9
)

// SiteType selects how a fresh site set is laid out.
type SiteType int

const (
	Random SiteType = iota
	Circle
	Square
)

func (t SiteType) String() string {
	switch t {
	case Random:
		return "Random"
	case Circle:
		return "Circle"
	case Square:
		return "Square"
	}
	return fmt.Sprintf("SiteType(%d)", int(t))
}

// Next returns the site type that follows t in the Circle, Random, Square cycle.
func (t SiteType) Next() SiteType {
	switch t {
	case Circle:
		return Random
	case Random:
		return Square
	}
	return Circle
}

// ParseSiteType is the inverse of String.
func ParseSiteType(s string) (SiteType, error) {
	for _, t := range []SiteType{Random, Circle, Square} {
		if t.String() == s {
			return t, nil
		}
	}
	return Random, fmt.Errorf("utils: unknown site type %q", s)
}

// Generate lays out cnt sites of type t inside rect.
func (t SiteType) Generate(cnt int, rect r2.Rect, seed int64) []r2.Point {
	switch t {
	case Circle:
		size := rect.Size()
		radius := ringFill * math.Min(size.X, size.Y) / 2
		return GenerateCirclePoints(cnt, rect.Center(), radius, seed)
	case Square:
		return GenerateSquarePoints(cnt, rect, seed)
	}
	return GenerateRandomPoints(cnt, rect, seed)
}

// GenerateRandomPoints generates cnt points uniformly distributed inside rect.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, rect r2.Rect, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make([]r2.Point, cnt)

	for i := range cnt {
		sites[i] = r2.Point{
			X: rect.X.Lo + random.Float64()*rect.X.Length(),
			Y: rect.Y.Lo + random.Float64()*rect.Y.Length(),
		}
	}

	return sites
}

// GenerateCirclePoints places cnt-1 points evenly on a circle and one point at
// its center.
func GenerateCirclePoints(cnt int, center r2.Point, radius float64, seed int64) []r2.Point {
	if cnt <= 0 {
		return []r2.Point{}
	}
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make([]r2.Point, 0, cnt)
	sites = append(sites, center)

	ring := cnt - 1
	for i := range ring {
		angle := 2 * math.Pi * float64(i) / float64(ring)
		p := r2.Point{X: math.Cos(angle), Y: math.Sin(angle)}.Mul(radius)
		sites = append(sites, center.Add(p).Add(jitter(random, radius)))
	}

	return sites
}

// GenerateSquarePoints places cnt points on a square grid filling rect,
// row by row.
func GenerateSquarePoints(cnt int, rect r2.Rect, seed int64) []r2.Point {
	if cnt <= 0 {
		return []r2.Point{}
	}
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	side := int(math.Ceil(math.Sqrt(float64(cnt))))
	size := rect.Size()
	step := r2.Point{X: size.X / float64(side), Y: size.Y / float64(side)}
	scale := math.Max(size.X, size.Y)

	sites := make([]r2.Point, 0, cnt)
	for i := range cnt {
		row, col := i/side, i%side
		p := r2.Point{
			X: rect.X.Lo + (float64(col)+0.5)*step.X,
			Y: rect.Y.Lo + (float64(row)+0.5)*step.Y,
		}
		sites = append(sites, p.Add(jitter(random, scale)))
	}

	return sites
}

func jitter(random *rand.Rand, scale float64) r2.Point {
	return r2.Point{
		X: (random.Float64()*2 - 1) * jitterScale * scale,
		Y: (random.Float64()*2 - 1) * jitterScale * scale,
	}
}
