// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r2"
)

// DefaultBoundingBoxSize is the side of the default centered square.
const DefaultBoundingBoxSize = 2.0

var ErrInvalidBoundingBox = errors.New("r2voronoi: bounding box must have positive size")

// BoundingBox is an axis-aligned rectangle given by its center and size.
type BoundingBox struct {
	Center r2.Point
	Width  float64
	Height float64
}

func NewBoundingBox(center r2.Point, width, height float64) BoundingBox {
	return BoundingBox{Center: center, Width: width, Height: height}
}

// NewCenteredSquare returns a square of the given side centered on the origin.
func NewCenteredSquare(size float64) BoundingBox {
	return NewBoundingBox(r2.Point{}, size, size)
}

func DefaultBoundingBox() BoundingBox {
	return NewCenteredSquare(DefaultBoundingBoxSize)
}

func (b BoundingBox) Validate() error {
	if !(b.Width > 0) || !(b.Height > 0) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidBoundingBox, b.Width, b.Height)
	}
	return nil
}

func (b BoundingBox) Rect() r2.Rect {
	return r2.RectFromCenterSize(b.Center, r2.Point{X: b.Width, Y: b.Height})
}

func (b BoundingBox) Contains(p r2.Point) bool {
	return b.Rect().ContainsPoint(p)
}

// Corners returns the four corners in CCW order starting at the bottom left.
func (b BoundingBox) Corners() [4]r2.Point {
	return b.Rect().Vertices()
}
