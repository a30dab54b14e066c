// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"errors"
	"fmt"
	"math"

	"github.com/2dChan/r2voronoi/r2delaunay"
	"github.com/golang/geo/r2"
)

const (
	defaultEps = 1e-12
)

var (
	// ErrConstruction wraps every failure to build a diagram from a site set.
	ErrConstruction = errors.New("r2voronoi: diagram construction failed")
	// ErrInsufficientSites means fewer than 3 sites were left to triangulate.
	ErrInsufficientSites = r2delaunay.ErrInsufficientVertices
	// ErrDegenerateSites means the sites were coincident or collinear.
	ErrDegenerateSites = r2delaunay.ErrDegenerateVertices
	// ErrIndexOutOfRange is returned when a cell, vertex or neighbor index is invalid.
	ErrIndexOutOfRange = errors.New("r2voronoi: index out of range")
)

// Diagram is an immutable planar Voronoi diagram. A new site set always
// yields a new Diagram.
type Diagram struct {
	Sites []r2.Point
	// Circumcenters of the Delaunay triangles, indexed like the triangles,
	// followed by the vertices introduced by clipping.
	Vertices []r2.Point
	// Flat Delaunay index stream, three site indices per CCW triangle.
	Triangles []int

	// NOTE: Sort in CCW per Cell.
	CellVertices []int
	CellOffsets  []int
	// NOTE: Sort in CCW per Cell.
	CellNeighbors   []int
	NeighborOffsets []int
	CellClosed      []bool

	opts DiagramOptions
	dt   *r2delaunay.Triangulation
}

type DiagramOptions struct {
	Eps                       float64
	BoundingBox               BoundingBox
	ClipBehavior              ClipBehavior
	LloydRelaxationIterations int
}

type DiagramOption func(*DiagramOptions) error

func WithEps(eps float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

func WithBoundingBox(box BoundingBox) DiagramOption {
	return func(o *DiagramOptions) error {
		if err := box.Validate(); err != nil {
			return fmt.Errorf("WithBoundingBox: %w", err)
		}
		o.BoundingBox = box
		return nil
	}
}

func WithClipBehavior(clip ClipBehavior) DiagramOption {
	return func(o *DiagramOptions) error {
		if !clip.valid() {
			return fmt.Errorf("WithClipBehavior: unknown clip behavior %d", int(clip))
		}
		o.ClipBehavior = clip
		return nil
	}
}

func WithLloydRelaxationIterations(iterations int) DiagramOption {
	return func(o *DiagramOptions) error {
		if iterations < 0 {
			return fmt.Errorf("WithLloydRelaxationIterations: iterations must be non-negative, got %d", iterations)
		}
		o.LloydRelaxationIterations = iterations
		return nil
	}
}

// NewDiagram builds the Voronoi diagram of sites. The input slice is copied.
func NewDiagram(sites []r2.Point, setters ...DiagramOption) (*Diagram, error) {
	opts := DiagramOptions{
		Eps:          defaultEps,
		BoundingBox:  DefaultBoundingBox(),
		ClipBehavior: Clip,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	d, err := newDiagram(sites, opts)
	if err != nil {
		return nil, err
	}
	for range opts.LloydRelaxationIterations {
		d, err = newDiagram(d.relaxedSites(), opts)
		if err != nil {
			return nil, err
		}
	}
	return d, nil
}

func newDiagram(sites []r2.Point, opts DiagramOptions) (*Diagram, error) {
	kept := make([]r2.Point, 0, len(sites))
	for _, s := range sites {
		if opts.ClipBehavior.removesOutsideSites() && !opts.BoundingBox.Contains(s) {
			continue
		}
		kept = append(kept, s)
	}
	if len(kept) < 3 {
		return nil, fmt.Errorf("%w: %w (%d of %d sites kept)", ErrConstruction,
			ErrInsufficientSites, len(kept), len(sites))
	}

	dt, err := r2delaunay.NewTriangulation(kept, r2delaunay.WithEps(opts.Eps))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}

	numSites := len(kept)
	numTriangles := len(dt.Triangles)
	d := &Diagram{
		Sites:           kept,
		Vertices:        make([]r2.Point, numTriangles),
		Triangles:       dt.FlatTriangles(),
		CellVertices:    make([]int, 0, numTriangles*3),
		CellOffsets:     make([]int, numSites+1),
		CellNeighbors:   make([]int, 0, numTriangles*3+numSites),
		NeighborOffsets: make([]int, numSites+1),
		CellClosed:      make([]bool, numSites),
		opts:            opts,
		dt:              dt,
	}

	for i := range numTriangles {
		d.Vertices[i] = triangleCircumcenter(dt.TriangleVertices(i))
	}

	rect := opts.BoundingBox.Rect()
	for sIdx := range numSites {
		it := dt.IncidentTriangles(sIdx)
		if opts.ClipBehavior == Clip {
			poly := d.clippedCellPolygon(sIdx, rect)
			for _, v := range poly {
				if v.idx < 0 {
					v.idx = len(d.Vertices)
					d.Vertices = append(d.Vertices, v.p)
				}
				d.CellVertices = append(d.CellVertices, v.idx)
			}
			d.CellClosed[sIdx] = len(poly) >= 3
		} else {
			d.CellVertices = append(d.CellVertices, it...)
			d.CellClosed[sIdx] = !dt.IsHullVertex(sIdx)
		}
		d.CellOffsets[sIdx+1] = len(d.CellVertices)

		for _, tIdx := range it {
			d.CellNeighbors = append(d.CellNeighbors, r2delaunay.NextVertex(dt.Triangles[tIdx], sIdx))
		}
		if dt.IsHullVertex(sIdx) {
			last := dt.Triangles[it[len(it)-1]]
			d.CellNeighbors = append(d.CellNeighbors, r2delaunay.PrevVertex(last, sIdx))
		}
		d.NeighborOffsets[sIdx+1] = len(d.CellNeighbors)
	}

	return d, nil
}

func (d *Diagram) NumCells() int {
	return len(d.Sites)
}

// Cell returns the cell of site i. It returns an error if i is out of range.
func (d *Diagram) Cell(i int) (Cell, error) {
	if i < 0 || i >= d.NumCells() {
		return Cell{}, fmt.Errorf("Cell: %w: %d not in [0 %d)", ErrIndexOutOfRange, i, d.NumCells())
	}
	return Cell{idx: i, d: d}, nil
}

// DelaunayTriangles returns the flat Delaunay index stream.
func (d *Diagram) DelaunayTriangles() []int {
	return d.Triangles
}

func (d *Diagram) BoundingBox() BoundingBox {
	return d.opts.BoundingBox
}

func (d *Diagram) ClipBehavior() ClipBehavior {
	return d.opts.ClipBehavior
}

// Options returns the options the diagram was built with.
func (d *Diagram) Options() DiagramOptions {
	return d.opts
}

// ClosestSite returns the index of the site nearest to p and its distance.
// ok is false for a diagram without sites.
func (d *Diagram) ClosestSite(p r2.Point) (idx int, dist float64, ok bool) {
	idx, dist = -1, math.Inf(1)
	for i, s := range d.Sites {
		if sd := s.Sub(p).Norm(); sd < dist {
			idx, dist = i, sd
		}
	}
	return idx, dist, idx >= 0
}

// Relaxed returns the diagram obtained after the given number of Lloyd
// relaxation passes. d itself is left untouched; zero passes return d.
func (d *Diagram) Relaxed(iterations int) (*Diagram, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("Relaxed: iterations must be non-negative, got %d", iterations)
	}
	opts := d.opts
	opts.LloydRelaxationIterations = 0

	next := d
	for range iterations {
		var err error
		next, err = newDiagram(next.relaxedSites(), opts)
		if err != nil {
			return nil, err
		}
	}
	return next, nil
}

// relaxedSites moves every site to the centroid of its cell clipped to the
// bounding box. Sites whose clipped cell is empty stay in place.
func (d *Diagram) relaxedSites() []r2.Point {
	rect := d.opts.BoundingBox.Rect()
	sites := make([]r2.Point, len(d.Sites))
	for i, s := range d.Sites {
		poly := d.clippedCellPolygon(i, rect)
		if len(poly) < 3 {
			sites[i] = s
			continue
		}
		sites[i] = polygonCentroid(clipVertexPoints(poly))
	}
	return sites
}

// clippedCellPolygon returns the cell of sIdx closed with far points along
// its unbounded edges and clipped to rect.
func (d *Diagram) clippedCellPolygon(sIdx int, rect r2.Rect) []clipVertex {
	dt := d.dt
	it := dt.IncidentTriangles(sIdx)
	poly := make([]clipVertex, 0, len(it)+3)

	if !dt.IsHullVertex(sIdx) {
		for _, tIdx := range it {
			poly = append(poly, clipVertex{p: d.Vertices[tIdx], idx: tIdx})
		}
		return clipToRect(poly, rect)
	}

	site := d.Sites[sIdx]
	first, last := it[0], it[len(it)-1]
	a := d.Sites[r2delaunay.NextVertex(dt.Triangles[first], sIdx)]
	b := d.Sites[r2delaunay.PrevVertex(dt.Triangles[last], sIdx)]
	dirA := outwardNormal(site, a)
	dirB := outwardNormal(b, site)
	far := farDistance(rect, d.Vertices[first], d.Vertices[last], site)

	poly = append(poly, clipVertex{p: d.Vertices[first].Add(dirA.Mul(far)), idx: -1})
	for _, tIdx := range it {
		poly = append(poly, clipVertex{p: d.Vertices[tIdx], idx: tIdx})
	}
	poly = append(poly, clipVertex{p: d.Vertices[last].Add(dirB.Mul(far)), idx: -1})
	if mid := dirA.Add(dirB); mid.Norm() > d.opts.Eps {
		poly = append(poly, clipVertex{p: site.Add(mid.Normalize().Mul(2 * far)), idx: -1})
	}

	return clipToRect(poly, rect)
}

// outwardNormal is the unit normal on the right of the hull edge from->to,
// pointing away from the triangulation.
func outwardNormal(from, to r2.Point) r2.Point {
	return to.Sub(from).Ortho().Mul(-1).Normalize()
}

// farDistance is a ray length that carries points well outside rect.
func farDistance(rect r2.Rect, points ...r2.Point) float64 {
	center := rect.Center()
	far := rect.Size().Norm()
	for _, p := range points {
		far = math.Max(far, p.Sub(center).Norm()+rect.Size().Norm())
	}
	return 4 * far
}

func triangleCircumcenter(a, b, c r2.Point) r2.Point {
	ab := b.Sub(a)
	ac := c.Sub(a)
	den := 2 * ab.Cross(ac)
	abSq := ab.Dot(ab)
	acSq := ac.Dot(ac)

	return r2.Point{
		X: a.X + (ac.Y*abSq-ab.Y*acSq)/den,
		Y: a.Y + (ab.X*acSq-ac.X*abSq)/den,
	}
}

func polygonCentroid(poly []r2.Point) r2.Point {
	var area float64
	var c r2.Point
	n := len(poly)
	for i := range n {
		p, q := poly[i], poly[(i+1)%n]
		cross := p.Cross(q)
		area += cross
		c = c.Add(p.Add(q).Mul(cross))
	}
	if math.Abs(area) <= defaultEps {
		var sum r2.Point
		for _, p := range poly {
			sum = sum.Add(p)
		}
		return sum.Mul(1 / float64(n))
	}
	return c.Mul(1 / (3 * area))
}
