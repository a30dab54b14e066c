// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package meshbuf

import (
	"fmt"

	"github.com/golang/geo/r2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Mesh holds parallel position and color arrays plus an index stream whose
// meaning depends on Topology.
type Mesh struct {
	Topology  Topology
	Positions []r2.Point
	Colors    []colorful.Color
	Indices   []uint32
}

// NumTriangles returns the number of triangles of a Triangles mesh.
func (m Mesh) NumTriangles() int {
	if m.Topology != Triangles {
		return 0
	}
	return len(m.Indices) / 3
}

// NumSegments returns the number of segments of a Lines mesh.
func (m Mesh) NumSegments() int {
	if m.Topology != Lines {
		return 0
	}
	return len(m.Indices) / 2
}

func (m Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// Merge concatenates meshes of one topology, offsetting the indices of each
// mesh past the positions of those before it. It panics on mixed topologies.
func Merge(meshes ...Mesh) Mesh {
	if len(meshes) == 0 {
		return Mesh{}
	}
	out := Mesh{Topology: meshes[0].Topology}
	for _, m := range meshes {
		if m.Topology != out.Topology {
			panic(fmt.Sprintf("meshbuf: cannot merge %v mesh into %v mesh", m.Topology, out.Topology))
		}
		offset := uint32(len(out.Positions))
		out.Positions = append(out.Positions, m.Positions...)
		out.Colors = append(out.Colors, m.Colors...)
		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, idx+offset)
		}
	}
	return out
}

func identity(n int) []uint32 {
	indices := make([]uint32, n)
	for i := range indices {
		indices[i] = uint32(i)
	}
	return indices
}

func toUint32(indices []int) []uint32 {
	out := make([]uint32, len(indices))
	for i, idx := range indices {
		out[i] = uint32(idx)
	}
	return out
}
