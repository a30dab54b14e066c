// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package session

import (
	"github.com/2dChan/r2voronoi"
)

// Replace installs d as the current diagram and pushes the previous one to
// the front of the undo history. A nil d clears the current diagram. It
// returns the previous diagram, nil when there was none.
func (s *Session) Replace(d *r2voronoi.Diagram) *r2voronoi.Diagram {
	old := s.current
	s.current = d
	if d != nil && s.redoPolicy == RedoClearOnEdit {
		s.redo = nil
	}
	if old == nil {
		return nil
	}
	s.undo = s.push(s.undo, old)
	return old
}

// Undo restores the front of the undo history and pushes the current diagram
// to the redo history. It reports false when there is nothing to undo.
func (s *Session) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	prev := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	if s.current != nil {
		s.redo = s.push(s.redo, s.current)
	}
	s.current = prev
	s.logger.Debug("undo", "undo", len(s.undo), "redo", len(s.redo))
	return true
}

// Redo is the inverse of Undo.
func (s *Session) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	next := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	if s.current != nil {
		s.undo = s.push(s.undo, s.current)
	}
	s.current = next
	s.logger.Debug("redo", "undo", len(s.undo), "redo", len(s.redo))
	return true
}

// Reset drops the current diagram and both histories, restores the initial
// bounding box, hides it and clears the path endpoints.
func (s *Session) Reset() {
	s.current = nil
	s.undo = nil
	s.redo = nil
	s.box = s.defaultBox
	s.boxVisible = false
	s.pathStart = endpoint{}
	s.pathEnd = endpoint{}
	s.logger.Debug("session reset")
}

// push adds d to the front of history, evicting the oldest entry past the
// history limit.
func (s *Session) push(history []*r2voronoi.Diagram, d *r2voronoi.Diagram) []*r2voronoi.Diagram {
	history = append(history, d)
	if s.historyLimit > 0 && len(history) > s.historyLimit {
		evicted := len(history) - s.historyLimit
		clear(history[:evicted])
		history = history[evicted:]
	}
	return history
}
