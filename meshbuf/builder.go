// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package meshbuf

import (
	"slices"

	"github.com/2dChan/r2voronoi"
	"github.com/golang/geo/r2"
)

// CellMesh fans the boundary of c around its site. Position 0 is the site
// and positions 1..n are the boundary loop, so a cell with n vertices yields
// n triangles (0, i, i+1) with the last one wrapping back to vertex 1.
func CellMesh(c r2voronoi.Cell, coloring Coloring) Mesh {
	loop := c.Vertices()
	positions := make([]r2.Point, 0, len(loop)+1)
	positions = append(positions, c.Site())
	positions = append(positions, loop...)

	m := Mesh{
		Topology:  Triangles,
		Positions: positions,
		Colors:    colorsFor(coloring, len(positions)),
	}
	if len(loop) == 0 {
		return m
	}
	m.Indices = TriangleFan(append(identity(len(positions)), 1))
	return m
}

// CellsMesh merges the fans of cells.
func CellsMesh(cells []r2voronoi.Cell, coloring Coloring) Mesh {
	meshes := make([]Mesh, 0, len(cells))
	for _, c := range cells {
		meshes = append(meshes, CellMesh(c, coloring))
	}
	if len(meshes) == 0 {
		return Mesh{Topology: Triangles}
	}
	return Merge(meshes...)
}

// DiagramMesh builds the Voronoi layer of d over its vertices.
//
// Lines draws every cell boundary as a closed loop. Triangles pairs each
// cell boundary without closing it and fans the pairs, which misrenders
// cells left open by the clip behavior. The fan is built per cell rather than
// over the pairs of all cells at once. Points lists every vertex once.
func DiagramMesh(d *r2voronoi.Diagram, topology Topology, coloring Coloring) Mesh {
	m := Mesh{
		Topology:  topology,
		Positions: slices.Clone(d.Vertices),
		Colors:    colorsFor(coloring, len(d.Vertices)),
	}

	switch topology {
	case Points:
		m.Indices = identity(len(d.Vertices))
	case Lines:
		for i := range d.NumCells() {
			m.Indices = append(m.Indices, LineListWrap(cellIndices(d, i))...)
		}
	case Triangles:
		for i := range d.NumCells() {
			m.Indices = append(m.Indices, TriangleFan(LineList(cellIndices(d, i)))...)
		}
	}
	return m
}

// DelaunayMesh builds the Delaunay layer of d over its sites. Lines emits
// the three edges of every triangle, so shared edges appear twice.
func DelaunayMesh(d *r2voronoi.Diagram, topology Topology, coloring Coloring) Mesh {
	m := Mesh{
		Topology:  topology,
		Positions: slices.Clone(d.Sites),
		Colors:    colorsFor(coloring, len(d.Sites)),
	}

	triangles := d.DelaunayTriangles()
	switch topology {
	case Points:
		m.Indices = identity(len(d.Sites))
	case Lines:
		m.Indices = make([]uint32, 0, 2*len(triangles))
		for t := 0; t+2 < len(triangles); t += 3 {
			m.Indices = append(m.Indices, LineListWrap(toUint32(triangles[t:t+3]))...)
		}
	case Triangles:
		m.Indices = toUint32(triangles)
	}
	return m
}

// FrameMesh outlines box as a closed loop of four segments.
func FrameMesh(box r2voronoi.BoundingBox, coloring Coloring) Mesh {
	corners := box.Corners()
	return Mesh{
		Topology:  Lines,
		Positions: corners[:],
		Colors:    colorsFor(coloring, len(corners)),
		Indices:   LineListWrap(identity(len(corners))),
	}
}

func cellIndices(d *r2voronoi.Diagram, i int) []uint32 {
	c, err := d.Cell(i)
	if err != nil {
		panic(err)
	}
	return toUint32(c.VertexIndices())
}
