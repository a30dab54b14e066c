// Package r2voronoi implements planar Voronoi diagrams, built on Delaunay triangulation.

package r2voronoi

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Cell represents a Voronoi cell. It is a view structure for accessing a cell in a Diagram.
// The cell's index corresponds to the index of its site in the Diagram's Sites.
type Cell struct {
	idx int
	d   *Diagram
}

// SiteIndex returns the index of the site in the Diagram's Sites.
func (c Cell) SiteIndex() int {
	return c.idx
}

// Site returns the site point of the cell.
func (c Cell) Site() r2.Point {
	return c.d.Sites[c.idx]
}

// Diagram returns the diagram the cell belongs to.
func (c Cell) Diagram() *Diagram {
	return c.d
}

// NumVertices returns the number of vertices in the cell.
func (c Cell) NumVertices() int {
	return c.d.CellOffsets[c.idx+1] - c.d.CellOffsets[c.idx]
}

// VertexIndices returns the indices of the vertices that form the cell in the Diagram's Vertices,
// sorted in counter-clockwise order.
func (c Cell) VertexIndices() []int {
	return c.d.CellVertices[c.d.CellOffsets[c.idx]:c.d.CellOffsets[c.idx+1]]
}

// Vertex returns the vertex at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Vertex(i int) (r2.Point, error) {
	start := c.d.CellOffsets[c.idx]
	end := c.d.CellOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		return r2.Point{}, fmt.Errorf("Vertex: %w: %d not in [0 %d)", ErrIndexOutOfRange, i, end-start)
	}
	return c.d.Vertices[c.d.CellVertices[start+i]], nil
}

// Vertices returns the cell boundary in counter-clockwise order.
func (c Cell) Vertices() []r2.Point {
	indices := c.VertexIndices()
	vertices := make([]r2.Point, len(indices))
	for i, vIdx := range indices {
		vertices[i] = c.d.Vertices[vIdx]
	}
	return vertices
}

// IsClosed reports whether the boundary loop is closed. Hull cells are open
// unless the diagram was built with Clip.
func (c Cell) IsClosed() bool {
	return c.d.CellClosed[c.idx]
}

// Polygon returns the cell closed and clipped to the diagram's bounding box,
// in counter-clockwise order. It is empty when the cell misses the box.
func (c Cell) Polygon() []r2.Point {
	if c.d.opts.ClipBehavior == Clip {
		return c.Vertices()
	}
	return clipVertexPoints(c.d.clippedCellPolygon(c.idx, c.d.opts.BoundingBox.Rect()))
}

// Centroid returns the centroid of the cell boundary. Open cells use the
// polygon formed by closing their vertex chain.
func (c Cell) Centroid() r2.Point {
	vertices := c.Vertices()
	if len(vertices) == 0 {
		return c.Site()
	}
	return polygonCentroid(vertices)
}

// NumNeighbors returns the number of neighboring cells.
// Hull cells have one neighbor more than vertices.
func (c Cell) NumNeighbors() int {
	return c.d.NeighborOffsets[c.idx+1] - c.d.NeighborOffsets[c.idx]
}

// NeighborIndices returns the indices of the neighboring cells in the Diagram,
// sorted in counter-clockwise order.
func (c Cell) NeighborIndices() []int {
	return c.d.CellNeighbors[c.d.NeighborOffsets[c.idx]:c.d.NeighborOffsets[c.idx+1]]
}

// Neighbor returns the neighboring cell at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Neighbor(i int) (Cell, error) {
	start := c.d.NeighborOffsets[c.idx]
	end := c.d.NeighborOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		return Cell{}, fmt.Errorf("Neighbor: %w: %d not in [0 %d)", ErrIndexOutOfRange, i, end-start)
	}
	nc, err := c.d.Cell(c.d.CellNeighbors[start+i])
	if err != nil {
		return Cell{}, err
	}
	return nc, nil
}

// Path walks the Delaunay graph from c towards target, always stepping to
// the neighbor closest to target. It returns the visited cells, c first and
// the cell whose site is nearest to target last.
func (c Cell) Path(target r2.Point) []Cell {
	path := []Cell{c}
	cur := c
	for {
		next := cur
		best := cur.Site().Sub(target).Norm()
		for _, nIdx := range cur.NeighborIndices() {
			if d := c.d.Sites[nIdx].Sub(target).Norm(); d < best {
				next = Cell{idx: nIdx, d: c.d}
				best = d
			}
		}
		if next.idx == cur.idx {
			return path
		}
		path = append(path, next)
		cur = next
	}
}
