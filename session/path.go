// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package session

import (
	"github.com/2dChan/r2voronoi"
	"github.com/golang/geo/r2"
)

// endpoint is a cell index bound to the diagram it was picked on.
type endpoint struct {
	idx int
	d   *r2voronoi.Diagram
}

func (e endpoint) validFor(d *r2voronoi.Diagram) bool {
	return d != nil && e.d == d && e.idx >= 0 && e.idx < d.NumCells()
}

// SetPathStart records cell i of the current diagram as the path start.
// Validity is checked by QueryPath.
func (s *Session) SetPathStart(i int) {
	s.pathStart = endpoint{idx: i, d: s.current}
}

// SetPathEnd records cell i of the current diagram as the path end.
func (s *Session) SetPathEnd(i int) {
	s.pathEnd = endpoint{idx: i, d: s.current}
}

func (s *Session) SetPathEndpoints(start, end int) {
	s.SetPathStart(start)
	s.SetPathEnd(end)
}

// PathStartNearest sets the path start to the site closest to p. It reports
// false without a current diagram.
func (s *Session) PathStartNearest(p r2.Point) bool {
	return s.pickNearest(p, &s.pathStart)
}

// PathEndNearest sets the path end to the site closest to p.
func (s *Session) PathEndNearest(p r2.Point) bool {
	return s.pickNearest(p, &s.pathEnd)
}

func (s *Session) pickNearest(p r2.Point, e *endpoint) bool {
	if s.current == nil {
		return false
	}
	i, _, ok := s.current.ClosestSite(p)
	if ok {
		*e = endpoint{idx: i, d: s.current}
	}
	return ok
}

// PathEndpoints returns the path endpoints when both are set and valid for
// the current diagram.
func (s *Session) PathEndpoints() (start, end int, ok bool) {
	if !s.pathStart.validFor(s.current) || !s.pathEnd.validFor(s.current) {
		return -1, -1, false
	}
	return s.pathStart.idx, s.pathEnd.idx, true
}

// QueryPath walks the current diagram from the start cell towards the end
// cell's site. It returns nil when the endpoints are unset or were picked on
// an earlier diagram.
func (s *Session) QueryPath() []r2voronoi.Cell {
	start, end, ok := s.PathEndpoints()
	if !ok {
		return nil
	}
	startCell, err := s.current.Cell(start)
	if err != nil {
		return nil
	}
	return startCell.Path(s.current.Sites[end])
}
