// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package session

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/2dChan/r2voronoi"
	"github.com/2dChan/r2voronoi/utils"
	"github.com/golang/geo/r2"
)

// Generate lays out n fresh sites of the current site type inside the
// bounding box and installs the resulting diagram. On failure the current
// diagram and history are left as they were.
func (s *Session) Generate(n int) error {
	return s.generate(n, s.siteType)
}

func (s *Session) generate(n int, siteType utils.SiteType) error {
	start := time.Now()
	seed := s.seed + s.generation
	sites := siteType.Generate(max(n, 0), s.box.Rect(), seed)

	d, err := s.build(sites, s.box, s.clip, 0)
	if err != nil {
		s.logger.Warn("generate rejected", "size", n, "site_type", siteType, "error", err)
		return err
	}

	s.generation++
	s.size = n
	s.siteType = siteType
	s.Replace(d)
	s.logger.Info("generated diagram", "size", n, "site_type", siteType, "seed", seed,
		"elapsed", time.Since(start))
	return nil
}

// EnsureDiagram generates the initial diagram when there is neither a
// current diagram nor any undo history. The session is reset first.
func (s *Session) EnsureDiagram() error {
	if s.current != nil || len(s.undo) > 0 {
		return nil
	}
	s.Reset()
	return s.Generate(s.initialSize)
}

// Refresh rebuilds the current sites with the current bounding box and clip
// behavior.
func (s *Session) Refresh() error {
	return s.rebuild(s.box, s.clip)
}

func (s *Session) rebuild(box r2voronoi.BoundingBox, clip r2voronoi.ClipBehavior) error {
	if s.current == nil {
		return ErrNoDiagram
	}
	d, err := s.build(s.current.Sites, box, clip, 0)
	if err != nil {
		s.logger.Warn("refresh rejected", "error", err)
		return err
	}
	s.box = box
	s.clip = clip
	s.Replace(d)
	return nil
}

// AddSite appends p to the current sites and rebuilds. Points within
// MinSiteDistance of an existing site are rejected.
func (s *Session) AddSite(p r2.Point) error {
	if s.current == nil {
		return ErrNoDiagram
	}
	if _, dist, ok := s.current.ClosestSite(p); ok && dist <= MinSiteDistance {
		s.logger.Debug("add site rejected", "point", p, "distance", dist)
		return fmt.Errorf("%w: %v is %.4g away", ErrSiteTooClose, p, dist)
	}

	sites := append(slices.Clone(s.current.Sites), p)
	d, err := s.build(sites, s.box, s.clip, 0)
	if err != nil {
		s.logger.Warn("add site rejected", "point", p, "error", err)
		return err
	}
	s.Replace(d)
	s.logger.Info("site added", "point", p, "sites", d.NumCells())
	return nil
}

// RemoveSite removes site i and rebuilds. Later sites shift down by one. It
// fails while the diagram has minRemovableSites sites or fewer.
func (s *Session) RemoveSite(i int) error {
	if s.current == nil {
		return ErrNoDiagram
	}
	n := s.current.NumCells()
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d not in [0 %d)", ErrIndexOutOfRange, i, n)
	}
	if n <= minRemovableSites {
		return fmt.Errorf("%w: %d sites", ErrTooFewSites, n)
	}

	sites := slices.Delete(slices.Clone(s.current.Sites), i, i+1)
	d, err := s.build(sites, s.box, s.clip, 0)
	if err != nil {
		s.logger.Warn("remove site rejected", "index", i, "error", err)
		return err
	}
	s.Replace(d)
	s.logger.Info("site removed", "index", i, "sites", d.NumCells())
	return nil
}

// RemoveNearestSite removes the site closest to p if it lies within maxDist.
// It returns the removed index.
func (s *Session) RemoveNearestSite(p r2.Point, maxDist float64) (int, error) {
	if s.current == nil {
		return -1, ErrNoDiagram
	}
	i, dist, ok := s.current.ClosestSite(p)
	if !ok || dist >= maxDist {
		return -1, fmt.Errorf("%w: closest is %.4g away", ErrNoSiteNearby, dist)
	}
	if err := s.RemoveSite(i); err != nil {
		return -1, err
	}
	return i, nil
}

// Relax runs the given number of Lloyd relaxation passes over the current
// sites.
func (s *Session) Relax(iterations int) error {
	if s.current == nil {
		return ErrNoDiagram
	}
	d, err := s.build(s.current.Sites, s.box, s.clip, iterations)
	if err != nil {
		s.logger.Warn("relax rejected", "iterations", iterations, "error", err)
		return err
	}
	s.Replace(d)
	return nil
}

// ResizeBoundingBox grows each side of the box by delta, or shrinks it for a
// negative delta without going below MinBoundingBoxSize, then refreshes the
// current diagram. The box is also made visible.
func (s *Session) ResizeBoundingBox(delta float64) error {
	box := s.box
	box.Width = resizeSide(box.Width, delta)
	box.Height = resizeSide(box.Height, delta)

	if s.current != nil {
		if err := s.rebuild(box, s.clip); err != nil {
			return err
		}
	}
	s.box = box
	s.boxVisible = true
	return nil
}

func resizeSide(side, delta float64) float64 {
	if delta >= 0 {
		return side + delta
	}
	inc := -delta
	return math.Max(side, inc+MinBoundingBoxSize) - inc
}

func (s *Session) ToggleBoundingBoxVisible() {
	s.boxVisible = !s.boxVisible
}

// ToggleClipBehavior advances the clip behavior and refreshes the current
// diagram.
func (s *Session) ToggleClipBehavior() error {
	next := s.clip.Next()
	if s.current != nil {
		if err := s.rebuild(s.box, next); err != nil {
			return err
		}
	}
	s.clip = next
	s.logger.Info("clip behavior changed", "clip", next)
	return nil
}

// CycleSiteType advances the site type and regenerates with the current size.
func (s *Session) CycleSiteType() error {
	return s.generate(s.size, s.siteType.Next())
}

// Grow regenerates with delta more sites.
func (s *Session) Grow(delta int) error {
	return s.Generate(s.size + delta)
}

// Shrink regenerates with delta fewer sites, never below MinShrinkSize.
func (s *Session) Shrink(delta int) error {
	return s.Generate(max(s.size-delta, MinShrinkSize))
}

func (s *Session) CycleVoronoiTopology() {
	s.render.Voronoi = s.render.Voronoi.Next()
}

func (s *Session) CycleDelaunayTopology() {
	s.render.Delaunay = s.render.Delaunay.Next()
}

func (s *Session) build(sites []r2.Point, box r2voronoi.BoundingBox, clip r2voronoi.ClipBehavior,
	relaxIterations int,
) (*r2voronoi.Diagram, error) {
	d, err := s.engine.Build(sites, box, clip, relaxIterations)
	if err != nil {
		return nil, fmt.Errorf("session: build %d sites: %w", len(sites), err)
	}
	return d, nil
}
