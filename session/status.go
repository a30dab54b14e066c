// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package session

import "fmt"

// NumStatusLines is the length of StatusLines.
const NumStatusLines = 8

// StatusLines describes the session for an overlay, one control per line.
func (s *Session) StatusLines() []string {
	path := "[Shift+Click] Path: unset"
	if start, end, ok := s.PathEndpoints(); ok {
		path = fmt.Sprintf("[Shift+Click] Path: %d -> %d (%d cells)", start, end, len(s.QueryPath()))
	}
	return []string{
		fmt.Sprintf("[C] Clip mode: %v", s.clip),
		fmt.Sprintf("[P] Voronoi mesh render mode: %v", s.render.Voronoi),
		fmt.Sprintf("[O] Delaunay mesh render mode: %v", s.render.Delaunay),
		fmt.Sprintf("[PgUp/PgDown] Bounding box: %.2f", s.box.Width),
		fmt.Sprintf("[Home] Site type: %v", s.siteType),
		fmt.Sprintf("[ArrowUp/ArrowDown/G/MouseClick] # of Sites: %d", s.NumSites()),
		fmt.Sprintf("[Ctrl+Z/Ctrl+Y] Undo: %d, Redo: %d", len(s.undo), len(s.redo)),
		path,
	}
}
