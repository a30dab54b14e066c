// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package session implements the interactive edit session of the viewer.
//
// A Session owns the current diagram, a linear undo/redo history of earlier
// diagrams, the bounding box, clip behavior, site type, pending path
// endpoints and render options. Every edit asks the Engine for a new diagram
// and installs it through Replace; diagrams are never mutated in place.
//
// A Session is not safe for concurrent use. It is meant to be driven by a
// single caller, one discrete action at a time.
package session
