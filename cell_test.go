package r2voronoi

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

// Cell

func TestCell_SiteIndex(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	for i := range vd.Sites {
		c, err := vd.Cell(i)
		if err != nil {
			t.Fatalf("vd.Cell(%d) error = %v, want nil", i, err)
		}
		if got := c.SiteIndex(); got != i {
			t.Errorf("c.SiteIndex() = %v, want %v", got, i)
		}
	}
}

func TestCell_Site(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	for i, want := range vd.Sites {
		c, err := vd.Cell(i)
		if err != nil {
			t.Fatalf("vd.Cell(%d) error = %v, want nil", i, err)
		}
		if got := c.Site(); got != want {
			t.Errorf("c.Site() = %v, want %v", got, want)
		}
	}
}

func TestCell_NumVertices(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	for i := range vd.Sites {
		c, err := vd.Cell(i)
		if err != nil {
			t.Fatalf("vd.Cell(%d) error = %v, want nil", i, err)
		}
		want := vd.CellOffsets[i+1] - vd.CellOffsets[i]
		if got := c.NumVertices(); got != want {
			t.Errorf("c.NumVertices() = %v, want %v", got, want)
		}
	}
}

func TestCell_VertexIndices(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	for i := range vd.Sites {
		c, err := vd.Cell(i)
		if err != nil {
			t.Fatalf("vd.Cell(%d) error = %v, want nil", i, err)
		}
		want := vd.CellVertices[vd.CellOffsets[i]:vd.CellOffsets[i+1]]
		got := c.VertexIndices()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("c.VertexIndices() mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestCell_Vertex(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	for i := range vd.Sites {
		c, err := vd.Cell(i)
		if err != nil {
			t.Fatalf("vd.Cell(%d) error = %v, want nil", i, err)
		}
		indices := c.VertexIndices()
		for j, idx := range indices {
			want := vd.Vertices[idx]
			got, err := c.Vertex(j)
			if err != nil {
				t.Fatalf("c.Vertex(%d) error = %v, want nil", j, err)
			}
			if got != want {
				t.Errorf("c.Vertex(%d) = %v, want %v", j, got, want)
			}
		}

		if _, err := c.Vertex(-1); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("c.Vertex(-1) error = %v, want %v", err, ErrIndexOutOfRange)
		}
		if _, err := c.Vertex(c.NumVertices()); err == nil {
			t.Errorf("c.Vertex(%d) error = nil, want non-nil", c.NumVertices())
		}
	}
}

func TestCell_NumNeighbors(t *testing.T) {
	vd := mustNewDiagram(t, 100, WithClipBehavior(None))
	for i := range vd.Sites {
		c, err := vd.Cell(i)
		if err != nil {
			t.Fatalf("vd.Cell(%d) error = %v, want nil", i, err)
		}
		want := c.NumVertices()
		if !c.IsClosed() {
			want++
		}
		if got := c.NumNeighbors(); got != want {
			t.Errorf("vd.Cell(%d).NumNeighbors() = %v, want %v", i, got, want)
		}
	}
}

func TestCell_NeighborIndices(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	for i := range vd.Sites {
		c, err := vd.Cell(i)
		if err != nil {
			t.Fatalf("vd.Cell(%d) error = %v, want nil", i, err)
		}
		want := vd.CellNeighbors[vd.NeighborOffsets[i]:vd.NeighborOffsets[i+1]]
		got := c.NeighborIndices()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("c.NeighborIndices() mismatch (-want +got, cell %d):\n%s", i, diff)
		}
	}
}

func TestCell_NeighborsAreSymmetric(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	for i := range vd.Sites {
		c, _ := vd.Cell(i)
		for _, nIdx := range c.NeighborIndices() {
			n, _ := vd.Cell(nIdx)
			found := false
			for _, back := range n.NeighborIndices() {
				if back == i {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("cell %d lists neighbor %d, but not the other way around", i, nIdx)
			}
		}
	}
}

func TestCell_Neighbor(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	for i := range vd.Sites {
		c, err := vd.Cell(i)
		if err != nil {
			t.Fatalf("vd.Cell(%d) error = %v, want nil", i, err)
		}
		neighbors := c.NeighborIndices()
		for j, nIdx := range neighbors {
			got, err := c.Neighbor(j)
			if err != nil {
				t.Fatal(err)
			}
			if got.SiteIndex() != nIdx {
				t.Errorf("c.Neighbor(%d).SiteIndex() = %v, want %v", j, got.SiteIndex(), nIdx)
			}
		}
		if _, err := c.Neighbor(-1); err == nil {
			t.Errorf("c.Neighbor(-1) error = nil, want non-nil")
		}
		if _, err = c.Neighbor(c.NumNeighbors()); err == nil {
			t.Errorf("c.Neighbor(%d) error = nil, want non-nil", c.NumNeighbors())
		}
	}
}

func TestCell_Centroid(t *testing.T) {
	sites := []r2.Point{{}, {X: 0.8}, {Y: 0.8}, {X: -0.8}, {Y: -0.8}}
	vd, err := NewDiagram(sites)
	if err != nil {
		t.Fatalf("NewDiagram(...) error = %v, want nil", err)
	}

	center, _ := vd.Cell(0)
	if got := center.Centroid(); got.Norm() > 1e-9 {
		t.Errorf("vd.Cell(0).Centroid() = %v, want (0, 0)", got)
	}
	// The cell of (0.8, 0) is symmetric about the x axis.
	right, _ := vd.Cell(1)
	if got := right.Centroid(); math.Abs(got.Y) > 1e-9 || got.X <= 0.4 {
		t.Errorf("vd.Cell(1).Centroid() = %v, want (>0.4, 0)", got)
	}
}

func TestCell_Polygon(t *testing.T) {
	for _, clip := range []ClipBehavior{Clip, None} {
		t.Run(clip.String(), func(t *testing.T) {
			vd := mustNewDiagram(t, 50, WithClipBehavior(clip))
			rect := vd.BoundingBox().Rect().ExpandedByMargin(1e-9)
			for i := range vd.NumCells() {
				c, _ := vd.Cell(i)
				poly := c.Polygon()
				if len(poly) < 3 {
					t.Fatalf("vd.Cell(%d).Polygon() has %d points, want >= 3", i, len(poly))
				}
				for _, p := range poly {
					if !rect.ContainsPoint(p) {
						t.Errorf("vd.Cell(%d).Polygon() point %v lies outside the box", i, p)
					}
				}
			}
		})
	}
}

func TestCell_Path(t *testing.T) {
	vd := mustNewDiagram(t, 200)

	start, err := vd.Cell(0)
	if err != nil {
		t.Fatalf("vd.Cell(0) error = %v, want nil", err)
	}
	target := r2.Point{X: 0.9, Y: -0.9}
	path := start.Path(target)
	if len(path) == 0 {
		t.Fatalf("start.Path(%v) is empty", target)
	}
	if path[0].SiteIndex() != 0 {
		t.Errorf("start.Path(...)[0] = %d, want 0", path[0].SiteIndex())
	}

	nearest, _, _ := vd.ClosestSite(target)
	if got := path[len(path)-1].SiteIndex(); got != nearest {
		t.Errorf("start.Path(...) ends at %d, want nearest site %d", got, nearest)
	}

	for i := 1; i < len(path); i++ {
		adjacent := false
		for _, n := range path[i-1].NeighborIndices() {
			if n == path[i].SiteIndex() {
				adjacent = true
			}
		}
		if !adjacent {
			t.Errorf("start.Path(...) steps %d -> %d are not neighbors", path[i-1].SiteIndex(),
				path[i].SiteIndex())
		}
	}
}

func TestCell_PathToOwnSite(t *testing.T) {
	vd := mustNewDiagram(t, 50)
	c, _ := vd.Cell(7)
	path := c.Path(c.Site())
	if len(path) != 1 || path[0].SiteIndex() != 7 {
		t.Errorf("c.Path(c.Site()) = %v cells, want only cell 7", len(path))
	}
}
