// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package session

import (
	"errors"
	"log/slog"

	"github.com/2dChan/r2voronoi"
	"github.com/2dChan/r2voronoi/internal/logging"
	"github.com/2dChan/r2voronoi/meshbuf"
	"github.com/2dChan/r2voronoi/utils"
)

const (
	// DefaultInitialSize is the number of sites of the lazily generated diagram.
	DefaultInitialSize = 20
	// MinShrinkSize is the floor Shrink never goes below.
	MinShrinkSize = 120
	// MinBoundingBoxSize is the floor ResizeBoundingBox never goes below.
	MinBoundingBoxSize = 0.1
	// MinSiteDistance is how close a new site may come to an existing one.
	MinSiteDistance = 0.001
	// RemoveRadius is the default pick radius of RemoveNearestSite.
	RemoveRadius = 0.2
	// minRemovableSites is the site count at or below which RemoveSite fails.
	minRemovableSites = 4
)

var (
	ErrNoDiagram       = errors.New("session: no current diagram")
	ErrIndexOutOfRange = errors.New("session: site index out of range")
	ErrTooFewSites     = errors.New("session: too few sites to remove one")
	ErrSiteTooClose    = errors.New("session: site too close to an existing site")
	ErrNoSiteNearby    = errors.New("session: no site within reach")
)

// RedoPolicy decides what a fresh edit does to the redo history.
type RedoPolicy int

const (
	// RedoPreserve keeps redo entries across fresh edits.
	RedoPreserve RedoPolicy = iota
	// RedoClearOnEdit drops the redo history on every fresh edit.
	RedoClearOnEdit
)

func (p RedoPolicy) String() string {
	if p == RedoClearOnEdit {
		return "clear"
	}
	return "preserve"
}

// Session is the edit state of one viewer.
type Session struct {
	engine       Engine
	logger       *slog.Logger
	seed         int64
	redoPolicy   RedoPolicy
	historyLimit int
	initialSize  int
	defaultBox   r2voronoi.BoundingBox

	current *r2voronoi.Diagram
	// Both histories keep their front at the end of the slice.
	undo []*r2voronoi.Diagram
	redo []*r2voronoi.Diagram

	box        r2voronoi.BoundingBox
	boxVisible bool
	clip       r2voronoi.ClipBehavior
	siteType   utils.SiteType
	size       int
	render     meshbuf.RenderOptions
	generation int64

	pathStart endpoint
	pathEnd   endpoint
}

// Option configures a Session.
type Option func(*Session)

func WithEngine(engine Engine) Option {
	return func(s *Session) {
		s.engine = engine
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithSeed sets the base seed of site generation.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

func WithRedoPolicy(policy RedoPolicy) Option {
	return func(s *Session) {
		s.redoPolicy = policy
	}
}

// WithHistoryLimit bounds the undo and redo histories; the oldest entries
// are evicted first. Zero or less means unbounded.
func WithHistoryLimit(limit int) Option {
	return func(s *Session) {
		s.historyLimit = max(limit, 0)
	}
}

func WithSiteType(siteType utils.SiteType) Option {
	return func(s *Session) {
		s.siteType = siteType
	}
}

func WithClipBehavior(clip r2voronoi.ClipBehavior) Option {
	return func(s *Session) {
		s.clip = clip
	}
}

// WithBoundingBox sets the box used at start and after Reset. Invalid boxes
// are ignored.
func WithBoundingBox(box r2voronoi.BoundingBox) Option {
	return func(s *Session) {
		if box.Validate() == nil {
			s.defaultBox = box
		}
	}
}

func WithRenderOptions(render meshbuf.RenderOptions) Option {
	return func(s *Session) {
		s.render = render
	}
}

// WithInitialSize sets the site count of the lazily generated diagram.
func WithInitialSize(size int) Option {
	return func(s *Session) {
		if size > 0 {
			s.initialSize = size
		}
	}
}

// New returns an empty session. No diagram is built until the first edit or
// EnsureDiagram.
func New(setters ...Option) *Session {
	s := &Session{
		engine:      DefaultEngine{},
		logger:      logging.NewNop(),
		initialSize: DefaultInitialSize,
		defaultBox:  r2voronoi.DefaultBoundingBox(),
		clip:        r2voronoi.Clip,
		siteType:    utils.Random,
		render:      meshbuf.DefaultRenderOptions(),
	}
	for _, set := range setters {
		set(s)
	}
	s.box = s.defaultBox
	s.size = s.initialSize
	return s
}

// Current returns the current diagram, or nil.
func (s *Session) Current() *r2voronoi.Diagram {
	return s.current
}

func (s *Session) UndoLen() int {
	return len(s.undo)
}

func (s *Session) RedoLen() int {
	return len(s.redo)
}

func (s *Session) BoundingBox() r2voronoi.BoundingBox {
	return s.box
}

func (s *Session) BoundingBoxVisible() bool {
	return s.boxVisible
}

func (s *Session) ClipBehavior() r2voronoi.ClipBehavior {
	return s.clip
}

func (s *Session) SiteType() utils.SiteType {
	return s.siteType
}

// Size returns the site count requested by the last generation.
func (s *Session) Size() int {
	return s.size
}

// NumSites returns the site count of the current diagram, zero without one.
func (s *Session) NumSites() int {
	if s.current == nil {
		return 0
	}
	return s.current.NumCells()
}

func (s *Session) RenderOptions() meshbuf.RenderOptions {
	return s.render
}

func (s *Session) RedoPolicy() RedoPolicy {
	return s.redoPolicy
}

func (s *Session) HistoryLimit() int {
	return s.historyLimit
}
