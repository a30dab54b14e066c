// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package session

import (
	"github.com/2dChan/r2voronoi"
	"github.com/golang/geo/r2"
)

// Engine builds diagrams for the session.
type Engine interface {
	Build(sites []r2.Point, box r2voronoi.BoundingBox, clip r2voronoi.ClipBehavior,
		relaxIterations int) (*r2voronoi.Diagram, error)
}

// DefaultEngine builds diagrams with r2voronoi.NewDiagram. A zero Eps uses
// the package default.
type DefaultEngine struct {
	Eps float64
}

func (e DefaultEngine) Build(sites []r2.Point, box r2voronoi.BoundingBox, clip r2voronoi.ClipBehavior,
	relaxIterations int,
) (*r2voronoi.Diagram, error) {
	setters := []r2voronoi.DiagramOption{
		r2voronoi.WithBoundingBox(box),
		r2voronoi.WithClipBehavior(clip),
		r2voronoi.WithLloydRelaxationIterations(relaxIterations),
	}
	if e.Eps > 0 {
		setters = append(setters, r2voronoi.WithEps(e.Eps))
	}
	return r2voronoi.NewDiagram(sites, setters...)
}
