// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2delaunay computes Delaunay triangulations of planar point sets.
//
// The triangulation is the lower convex hull of the points lifted onto the
// paraboloid z = x² + y², computed with QuickHull.
package r2delaunay

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12
)

var (
	// ErrInsufficientVertices is returned when fewer than 3 vertices are given.
	ErrInsufficientVertices = errors.New("r2delaunay: insufficient vertices for triangulation (minimum 3 required)")
	// ErrDegenerateVertices is returned for coincident or collinear input.
	ErrDegenerateVertices = errors.New("r2delaunay: degenerate vertices")
)

// Triangulation is a planar Delaunay triangulation.
type Triangulation struct {
	Vertices []r2.Point
	// NOTE: Sorted in CCW per triangle.
	Triangles [][3]int
	// NOTE: Sorted in CCW per vertex. Fans of hull vertices are open and start
	// at the triangle incident to the outgoing hull edge.
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int
	Hull                    []bool
}

// IncidentTriangles returns the triangles around vertex vIdx in CCW order.
func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(dt.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := dt.IncidentTriangleOffsets[vIdx]
	end := dt.IncidentTriangleOffsets[vIdx+1]
	return dt.IncidentTriangleIndices[start:end]
}

// TriangleVertices returns the three corners of triangle tIdx.
func (dt *Triangulation) TriangleVertices(tIdx int) (r2.Point, r2.Point, r2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

// IsHullVertex reports whether vertex vIdx lies on the convex hull.
func (dt *Triangulation) IsHullVertex(vIdx int) bool {
	return dt.Hull[vIdx]
}

// FlatTriangles returns the triangles as a flat index stream, three indices
// per triangle.
func (dt *Triangulation) FlatTriangles() []int {
	flat := make([]int, 0, len(dt.Triangles)*3)
	for _, t := range dt.Triangles {
		flat = append(flat, t[0], t[1], t[2])
	}
	return flat
}

type TriangulationOptions struct {
	Eps float64
}

type TriangulationOption func(*TriangulationOptions) error

func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// NewTriangulation computes the Delaunay triangulation of vertices.
func NewTriangulation(vertices []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numVertices := len(vertices)
	if numVertices < 3 {
		return nil, ErrInsufficientVertices
	}

	normalized := normalize(vertices)
	if err := checkDegenerate(normalized, opts.Eps); err != nil {
		return nil, err
	}

	var triangles [][3]int
	if numVertices == 3 {
		t := [3]int{0, 1, 2}
		sortTriangleVerticesCCW(&t, normalized, opts.Eps)
		triangles = [][3]int{t}
	} else {
		var err error
		triangles, err = lowerHull(normalized, opts.Eps)
		if err != nil {
			return nil, err
		}
	}

	numTriangles := len(triangles)
	dt := &Triangulation{
		Vertices:                vertices,
		Triangles:               triangles,
		IncidentTriangleIndices: make([]int, numTriangles*3),
		IncidentTriangleOffsets: make([]int, numVertices+1),
		Hull:                    make([]bool, numVertices),
	}

	for _, t := range triangles {
		for _, v := range t {
			dt.IncidentTriangleOffsets[v+1]++
		}
	}
	for i := range numVertices {
		if dt.IncidentTriangleOffsets[i+1] == 0 {
			return nil, fmt.Errorf("%w: vertex %d is not part of any triangle", ErrDegenerateVertices, i)
		}
		dt.IncidentTriangleOffsets[i+1] += dt.IncidentTriangleOffsets[i]
	}

	nxt := make([]int, numVertices)
	copy(nxt, dt.IncidentTriangleOffsets[:numVertices])
	for i, t := range triangles {
		for _, v := range t {
			dt.IncidentTriangleIndices[nxt[v]] = i
			nxt[v]++
		}
	}

	for i := range numVertices {
		dt.Hull[i] = sortIncidentTriangleIndicesCCW(i, dt.IncidentTriangles(i), dt.Triangles)
	}

	return dt, nil
}

// lowerHull lifts the points onto the paraboloid and keeps the hull faces
// whose outward normal points down.
func lowerHull(normalized []r2.Point, eps float64) ([][3]int, error) {
	numVertices := len(normalized)
	lifted := make([]r3.Vector, numVertices)
	centroid := r3.Vector{}
	for i, p := range normalized {
		lifted[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.X*p.X + p.Y*p.Y}
		centroid = centroid.Add(lifted[i])
	}
	centroid = centroid.Mul(1 / float64(numVertices))

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, eps)
	if len(ch.Indices)%3 != 0 {
		return nil, errors.New("r2delaunay: inconsistent number of indices returned from QuickHull")
	}

	triangles := make([][3]int, 0, len(ch.Indices)/3)
	for i := 0; i+2 < len(ch.Indices); i += 3 {
		t := [3]int{ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]}
		a, b, c := lifted[t[0]], lifted[t[1]], lifted[t[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Dot(a.Sub(centroid)) < 0 {
			n = n.Mul(-1)
		}
		if n.Z >= -eps*n.Norm() {
			continue
		}
		if !sortTriangleVerticesCCW(&t, normalized, eps) {
			continue
		}
		triangles = append(triangles, t)
	}
	if len(triangles) == 0 {
		return nil, fmt.Errorf("%w: no lower hull faces", ErrDegenerateVertices)
	}
	return triangles, nil
}

// normalize maps the points into a unit-sized frame centered on their
// bounding rect so the lifted coordinates stay well conditioned.
func normalize(vertices []r2.Point) []r2.Point {
	rect := r2.RectFromPoints(vertices...)
	center := rect.Center()
	size := rect.Size()
	scale := math.Max(size.X, size.Y)
	if scale == 0 {
		scale = 1
	}

	out := make([]r2.Point, len(vertices))
	for i, p := range vertices {
		out[i] = p.Sub(center).Mul(1 / scale)
	}
	return out
}

func checkDegenerate(points []r2.Point, eps float64) error {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := points[order[i]], points[order[j]]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	for i := 1; i < len(order); i++ {
		if points[order[i]].Sub(points[order[i-1]]).Norm() <= eps {
			return fmt.Errorf("%w: vertices %d and %d coincide", ErrDegenerateVertices,
				order[i-1], order[i])
		}
	}

	p0 := points[0]
	far := 0
	for i, p := range points {
		if p.Sub(p0).Norm() > points[far].Sub(p0).Norm() {
			far = i
		}
	}
	dir := points[far].Sub(p0)
	for _, p := range points {
		if math.Abs(dir.Cross(p.Sub(p0))) > eps {
			return nil
		}
	}
	return fmt.Errorf("%w: all vertices are collinear", ErrDegenerateVertices)
}

// sortTriangleVerticesCCW orients t counter-clockwise. It reports false for
// triangles with zero area.
func sortTriangleVerticesCCW(t *[3]int, v []r2.Point, eps float64) bool {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	area := p1.Sub(p0).Cross(p2.Sub(p0))
	if math.Abs(area) <= eps {
		return false
	}
	if area < 0 {
		t[1], t[2] = t[2], t[1]
	}
	return true
}

// sortIncidentTriangleIndicesCCW orders the fan around vIdx so that each
// triangle follows its CCW neighbor. It reports whether the fan is open,
// which is the case for hull vertices.
func sortIncidentTriangleIndicesCCW(vIdx int, incidentTris []int, tris [][3]int) bool {
	n := len(incidentTris)
	if n == 0 {
		return true
	}

	first := 0
	for i := range n {
		nxt := NextVertex(tris[incidentTris[i]], vIdx)
		hasPredecessor := false
		for j := range n {
			if j != i && PrevVertex(tris[incidentTris[j]], vIdx) == nxt {
				hasPredecessor = true
				break
			}
		}
		if !hasPredecessor {
			first = i
			break
		}
	}
	incidentTris[0], incidentTris[first] = incidentTris[first], incidentTris[0]

	for i := 1; i < n; i++ {
		prv := PrevVertex(tris[incidentTris[i-1]], vIdx)
		for j := i; j < n; j++ {
			if NextVertex(tris[incidentTris[j]], vIdx) == prv {
				incidentTris[i], incidentTris[j] = incidentTris[j], incidentTris[i]
				break
			}
		}
	}

	return PrevVertex(tris[incidentTris[n-1]], vIdx) != NextVertex(tris[incidentTris[0]], vIdx)
}

func PrevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}
