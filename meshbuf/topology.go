// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package meshbuf turns diagrams and cells into vertex, color and index
// buffers ready for a rendering backend.
package meshbuf

import "fmt"

type topologyKind uint8

const (
	kindLines topologyKind = iota
	kindPoints
	kindTriangles
)

// Topology is the primitive a Mesh index stream describes. Only Points,
// Lines and Triangles can be represented; the zero value is Lines.
type Topology struct {
	kind topologyKind
}

var (
	Points    = Topology{kindPoints}
	Lines     = Topology{kindLines}
	Triangles = Topology{kindTriangles}
)

// Next returns the topology following t in the Triangles, Lines, Points cycle.
func (t Topology) Next() Topology {
	switch t {
	case Triangles:
		return Lines
	case Lines:
		return Points
	}
	return Triangles
}

func (t Topology) String() string {
	switch t.kind {
	case kindPoints:
		return "Points"
	case kindTriangles:
		return "Triangles"
	}
	return "Lines"
}

// ParseTopology is the inverse of String.
func ParseTopology(s string) (Topology, error) {
	for _, t := range []Topology{Points, Lines, Triangles} {
		if t.String() == s {
			return t, nil
		}
	}
	return Lines, fmt.Errorf("meshbuf: unknown topology %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(text []byte) error {
	parsed, err := ParseTopology(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// RenderOptions selects the topology of the Voronoi and Delaunay layers.
// The zero value renders both as lines.
type RenderOptions struct {
	Voronoi  Topology `yaml:"voronoi"`
	Delaunay Topology `yaml:"delaunay"`
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Voronoi: Lines, Delaunay: Lines}
}
