// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package scene assembles the render layers of a session.
package scene

import (
	"github.com/2dChan/r2voronoi"
	"github.com/2dChan/r2voronoi/meshbuf"
	"github.com/2dChan/r2voronoi/session"
)

// Palette colors each layer.
type Palette struct {
	Voronoi  meshbuf.Coloring
	Delaunay meshbuf.Coloring
	Path     meshbuf.Coloring
	Cell0    meshbuf.Coloring
	Frame    meshbuf.Coloring
}

// DefaultPalette draws the Voronoi layer and highlighted cells in red and the
// Delaunay layer and frame in white.
func DefaultPalette() Palette {
	return Palette{
		Voronoi:  meshbuf.Solid(meshbuf.Red),
		Delaunay: meshbuf.Solid(meshbuf.White),
		Path:     meshbuf.Solid(meshbuf.Red),
		Cell0:    meshbuf.Solid(meshbuf.Red),
		Frame:    meshbuf.Solid(meshbuf.White),
	}
}

// Scene is everything a backend draws for one session state.
type Scene struct {
	Box      r2voronoi.BoundingBox
	Voronoi  meshbuf.Mesh
	Delaunay meshbuf.Mesh
	Path     meshbuf.Mesh
	Cell0    meshbuf.Mesh
	// Frame is empty while the bounding box is hidden.
	Frame  meshbuf.Mesh
	Status []string
}

// Build derives the scene of s. Without a current diagram only the box and
// status lines are set.
func Build(s *session.Session, palette Palette) Scene {
	sc := Scene{
		Box:    s.BoundingBox(),
		Status: s.StatusLines(),
	}
	if s.BoundingBoxVisible() {
		sc.Frame = meshbuf.FrameMesh(sc.Box, palette.Frame)
	}

	d := s.Current()
	if d == nil {
		return sc
	}

	render := s.RenderOptions()
	sc.Voronoi = meshbuf.DiagramMesh(d, render.Voronoi, palette.Voronoi)
	sc.Delaunay = meshbuf.DelaunayMesh(d, render.Delaunay, palette.Delaunay)
	sc.Path = meshbuf.CellsMesh(s.QueryPath(), palette.Path)
	if c, err := d.Cell(0); err == nil {
		sc.Cell0 = meshbuf.CellMesh(c, palette.Cell0)
	}
	return sc
}

// Layers returns the non-empty meshes in draw order.
func (sc Scene) Layers() []meshbuf.Mesh {
	var layers []meshbuf.Mesh
	for _, m := range []meshbuf.Mesh{sc.Cell0, sc.Path, sc.Voronoi, sc.Delaunay, sc.Frame} {
		if !m.Empty() {
			layers = append(layers, m)
		}
	}
	return layers
}
