// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"errors"
	"fmt"
	"testing"

	"github.com/2dChan/r2voronoi/utils"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/markus-wa/quickhull-go/v2"
)

var testRect = r2.RectFromCenterSize(r2.Point{}, r2.Point{X: 2, Y: 2})

// TriangulationOptions

func TestWithEps(t *testing.T) {
	tests := []struct {
		name    string
		eps     float64
		wantErr bool
	}{
		{"eps positive", 0.5, false},
		{"eps zero", 0, true},
		{"eps negative", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &TriangulationOptions{Eps: defaultEps}
			opt := WithEps(tt.eps)
			err := opt(opts)
			if (err != nil) != tt.wantErr {
				errValMsg := "nil"
				if tt.wantErr {
					errValMsg = "non-nil"
				}
				t.Errorf("WithEps(%v) error = %v, want %v", tt.eps, err, errValMsg)
			}
			if err == nil && opts.Eps != tt.eps {
				t.Errorf("WithEps(%v) opts.Eps = %v, want %v", tt.eps, opts.Eps, tt.eps)
			}
		})
	}
}

// Triangulation

func TestNewTriangulation_WithEps(t *testing.T) {
	points := utils.GenerateRandomPoints(10, testRect, 0)
	tests := []struct {
		name    string
		eps     float64
		wantErr bool
	}{
		{"eps default", defaultEps, false},
		{"eps positive", 1e-9, false},
		{"eps zero", 0, true},
		{"eps negative", -0.01, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTriangulation(points, WithEps(tt.eps))
			if (err != nil) != tt.wantErr {
				errValMsg := "nil"
				if tt.wantErr {
					errValMsg = "non-nil"
				}
				t.Errorf("NewTriangulation(..., WithEps(%v)) error = %v, want %s", tt.eps, err, errValMsg)
			}
		})
	}
}

func TestNewTriangulation_DegenerateInput(t *testing.T) {
	tests := []struct {
		name     string
		vertices []r2.Point
		want     error
	}{
		{
			"too few",
			[]r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
			ErrInsufficientVertices,
		},
		{
			"collinear",
			[]r2.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}},
			ErrDegenerateVertices,
		},
		{
			"coincident",
			[]r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}},
			ErrDegenerateVertices,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTriangulation(tt.vertices)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewTriangulation(%v) error = %v, want %v", tt.vertices, err, tt.want)
			}
		})
	}
}

func TestNewTriangulation_SingleTriangle(t *testing.T) {
	vertices := []r2.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}
	dt, err := NewTriangulation(vertices)
	if err != nil {
		t.Fatalf("NewTriangulation(...) error = %v, want nil", err)
	}
	if len(dt.Triangles) != 1 {
		t.Fatalf("len(dt.Triangles) = %v, want 1", len(dt.Triangles))
	}
	for i := range vertices {
		if !dt.IsHullVertex(i) {
			t.Errorf("dt.IsHullVertex(%d) = false, want true", i)
		}
	}
}

func TestNewTriangulation_EulerCount(t *testing.T) {
	// A square with one interior point: n = 5, h = 4, triangles = 2n - 2 - h.
	vertices := []r2.Point{
		{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: 0.1, Y: 0.2},
	}
	dt, err := NewTriangulation(vertices)
	if err != nil {
		t.Fatalf("NewTriangulation(...) error = %v, want nil", err)
	}
	if got, want := len(dt.Triangles), 4; got != want {
		t.Errorf("len(dt.Triangles) = %v, want %v", got, want)
	}
	if dt.IsHullVertex(4) {
		t.Errorf("dt.IsHullVertex(4) = true, want false")
	}
	if got := len(dt.IncidentTriangles(4)); got != 4 {
		t.Errorf("len(dt.IncidentTriangles(4)) = %v, want 4", got)
	}
}

func TestNewTriangulation_VerifyTrianglesCCW(t *testing.T) {
	dt := mustNewTriangulation(t, 100)

	for i, tri := range dt.Triangles {
		a, b, c := dt.Vertices[tri[0]], dt.Vertices[tri[1]], dt.Vertices[tri[2]]
		if b.Sub(a).Cross(c.Sub(a)) <= 0 {
			t.Errorf("dt.Triangles[%d] vertices are not sorted in CCW", i)
		}
	}
}

func TestNewTriangulation_EmptyCircumcircles(t *testing.T) {
	dt := mustNewTriangulation(t, 100)

	for i := range dt.Triangles {
		a, b, c := dt.TriangleVertices(i)
		for j, p := range dt.Vertices {
			if inCircle(a, b, c, p) > 1e-9 {
				t.Errorf("dt.Triangles[%d] circumcircle contains vertex %d", i, j)
			}
		}
	}
}

func TestNewTriangulation_VerifyIncidentTrianglesSorted(t *testing.T) {
	dt := mustNewTriangulation(t, 100)

	for vIdx := range len(dt.Vertices) {
		incidentTris := dt.IncidentTriangles(vIdx)
		for i := 1; i < len(incidentTris); i++ {
			ct := dt.Triangles[incidentTris[i-1]]
			nt := dt.Triangles[incidentTris[i]]

			if PrevVertex(ct, vIdx) != NextVertex(nt, vIdx) {
				t.Errorf("dt.IncidentTriangles(%d) triangles %d and %d are not CCW neighbors", vIdx, i-1, i)
			}
		}
	}
}

func TestNewTriangulation_HullVerticesOnBoundary(t *testing.T) {
	dt := mustNewTriangulation(t, 100)

	numHull := 0
	for vIdx := range dt.Vertices {
		if dt.IsHullVertex(vIdx) {
			numHull++
		}
	}
	// Euler's formula for a planar triangulation: T = 2n - 2 - h.
	want := 2*len(dt.Vertices) - 2 - numHull
	if got := len(dt.Triangles); got != want {
		t.Errorf("len(dt.Triangles) = %v, want %v (h = %d)", got, want, numHull)
	}
}

func TestTriangulation_IncidentTriangles(t *testing.T) {
	assertPanic := func(dt *Triangulation, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("dt.IncidentTriangles(%d) did not panic, want panic", in)
			}
		}()
		dt.IncidentTriangles(in)
	}

	dt := &Triangulation{
		IncidentTriangleIndices: []int{0, 1, 1, 1, 2},
		IncidentTriangleOffsets: []int{0, 2, 3, 5},
	}

	tests := []struct {
		name string
		in   int
		want []int
	}{
		{"index 0", 0, []int{0, 1}},
		{"index 1", 1, []int{1}},
		{"index 2", 2, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dt.IncidentTriangles(tt.in)
			if !cmp.Equal(tt.want, got) {
				t.Errorf("dt.IncidentTriangles(%d) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	assertPanic(dt, -1)
	assertPanic(dt, len(dt.IncidentTriangleOffsets))
}

func TestTriangulation_TriangleVertices(t *testing.T) {
	assertPanic := func(dt *Triangulation, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("dt.TriangleVertices(%d) did not panic, want panic", in)
			}
		}()
		dt.TriangleVertices(in)
	}

	points := utils.GenerateRandomPoints(3, testRect, 0)
	dt := &Triangulation{
		Vertices:  []r2.Point{points[0], points[1], points[2]},
		Triangles: [][3]int{{0, 1, 2}},
	}

	want := [3]r2.Point{points[0], points[1], points[2]}
	a, b, c := dt.TriangleVertices(0)
	got := [3]r2.Point{a, b, c}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dt.TriangleVertices(0) mismatch (-want +got):\n%s", diff)
	}

	assertPanic(dt, -1)
	assertPanic(dt, len(dt.Triangles))
}

func TestTriangulation_FlatTriangles(t *testing.T) {
	dt := &Triangulation{Triangles: [][3]int{{0, 1, 2}, {2, 1, 3}}}
	want := []int{0, 1, 2, 2, 1, 3}
	if diff := cmp.Diff(want, dt.FlatTriangles()); diff != "" {
		t.Errorf("dt.FlatTriangles() mismatch (-want +got):\n%s", diff)
	}
}

func TestSortTriangleVerticesCCW(t *testing.T) {
	verts := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 0}}

	tri1 := [3]int{0, 1, 2}
	if ok := sortTriangleVerticesCCW(&tri1, verts, defaultEps); !ok {
		t.Errorf("sortTriangleVerticesCCW([0 1 2], verts) = false, want true")
	}
	if diff := cmp.Diff([3]int{0, 1, 2}, tri1); diff != "" {
		t.Errorf("sortTriangleVerticesCCW([0 1 2], verts) mismatch (-want +got):\n%s", diff)
	}

	tri2 := [3]int{0, 2, 1}
	sortTriangleVerticesCCW(&tri2, verts, defaultEps)
	if diff := cmp.Diff([3]int{0, 1, 2}, tri2); diff != "" {
		t.Errorf("sortTriangleVerticesCCW([0 2 1], verts) mismatch (-want +got):\n%s", diff)
	}

	flat := [3]int{0, 1, 3}
	if ok := sortTriangleVerticesCCW(&flat, verts, defaultEps); ok {
		t.Errorf("sortTriangleVerticesCCW([0 1 3], verts) = true, want false")
	}
}

func TestSortIncidentTriangleIndicesCCW(t *testing.T) {
	// Closed fan around vertex 0.
	expected4 := []int{0, 1, 2, 3}
	incident4 := []int{1, 3, 2, 0}
	tris4 := [][3]int{
		{0, 1, 2},
		{0, 4, 1},
		{0, 3, 4},
		{0, 2, 3},
	}
	if open := sortIncidentTriangleIndicesCCW(0, incident4, tris4); open {
		t.Errorf("sortIncidentTriangleIndicesCCW(...) open = true, want false")
	}
	for i := 1; i < len(incident4); i++ {
		if PrevVertex(tris4[incident4[i-1]], 0) != NextVertex(tris4[incident4[i]], 0) {
			t.Errorf("sortIncidentTriangleIndicesCCW(...) = %v, not a CCW chain (one of %v)", incident4, expected4)
		}
	}

	// Open fan: the chain must start at the triangle owning the outgoing hull edge.
	incident3 := []int{2, 0, 1}
	tris3 := [][3]int{
		{0, 1, 2},
		{0, 2, 3},
		{0, 3, 4},
	}
	if open := sortIncidentTriangleIndicesCCW(0, incident3, tris3); !open {
		t.Errorf("sortIncidentTriangleIndicesCCW(...) open = false, want true")
	}
	if diff := cmp.Diff([]int{0, 1, 2}, incident3); diff != "" {
		t.Errorf("sortIncidentTriangleIndicesCCW(...) mismatch (-want +got):\n%s", diff)
	}
}

// Triangle Prev/Next vertex

func TestPrevVertex(t *testing.T) {
	assertPanic := func(tri [3]int, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("PrevVertex(%v, %d) did not panic, want panic", tri, in)
			}
		}()
		PrevVertex(tri, in)
	}

	tri := [3]int{1, 2, 3}
	for i, in := range tri {
		got := PrevVertex(tri, in)
		want := tri[(i+2)%len(tri)]
		if got != want {
			t.Errorf("PrevVertex(%v, %d) = %v, want %v", tri, in, got, want)
		}
	}

	assertPanic(tri, -1)
	assertPanic(tri, 4)
}

func TestNextVertex(t *testing.T) {
	assertPanic := func(tri [3]int, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("NextVertex(%v, %d) did not panic, want panic", tri, in)
			}
		}()
		NextVertex(tri, in)
	}

	tri := [3]int{1, 2, 3}
	for i, in := range tri {
		got := NextVertex(tri, in)
		want := tri[(i+1)%len(tri)]
		if got != want {
			t.Errorf("NextVertex(%v, %d) = %v, want %v", tri, in, got, want)
		}
	}

	assertPanic(tri, -1)
	assertPanic(tri, 4)
}

// Benchmarks

func BenchmarkConvexHull(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4}
	for _, pointsCnt := range sizes {
		b.Run(fmt.Sprintf("N%d", pointsCnt), func(b *testing.B) {
			points := utils.GenerateRandomPoints(pointsCnt, testRect, 0)
			v3 := make([]r3.Vector, len(points))
			for i, p := range points {
				v3[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.X*p.X + p.Y*p.Y}
			}

			qh := new(quickhull.QuickHull)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				qh.ConvexHull(v3, true, true, 0)
			}
		})
	}
}

func BenchmarkNewTriangulation(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4}
	for _, pointsCnt := range sizes {
		b.Run(fmt.Sprintf("N%d", pointsCnt), func(b *testing.B) {
			points := utils.GenerateRandomPoints(pointsCnt, testRect, 0)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				_, err := NewTriangulation(points)
				if err != nil {
					b.Fatalf("NewTriangulation(...) error = %v, want nil", err)
				}
			}
		})
	}
}

// Helpers

func mustNewTriangulation(t *testing.T, n int) *Triangulation {
	t.Helper()
	vertices := utils.GenerateRandomPoints(n, testRect, 0)

	dt, err := NewTriangulation(vertices)
	if err != nil {
		t.Fatalf("NewTriangulation(...) error = %v, want nil", err)
	}
	return dt
}

// inCircle is positive when d lies strictly inside the circumcircle of the
// CCW triangle abc.
func inCircle(a, b, c, d r2.Point) float64 {
	ad, bd, cd := a.Sub(d), b.Sub(d), c.Sub(d)
	return (ad.X*ad.X+ad.Y*ad.Y)*bd.Cross(cd) -
		(bd.X*bd.X+bd.Y*bd.Y)*ad.Cross(cd) +
		(cd.X*cd.X+cd.Y*cd.Y)*ad.Cross(bd)
}
