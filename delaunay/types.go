// Package delaunay defines events, observation hooks and sentinel errors
// for the triangulation driver.
//
// Errors:
//
//	ErrInsufficientInput  - fewer than two input points.
//	ErrDuplicatePoint     - two input points are equal.
//	ErrInternalInvariant  - the topology contradicts an algorithm invariant;
//	                        an unrecoverable bug, never caused by input.
//	geom.ErrCoordinateOverflow - a coordinate exceeds the exact-arithmetic
//	                        bound; surfaced here during input validation.
package delaunay

import (
	"errors"

	"github.com/katalvlaran/lvltri/geom"
)

// Sentinel errors for the triangulation boundary.
var (
	// ErrInsufficientInput indicates fewer than two input points.
	ErrInsufficientInput = errors.New("delaunay: at least two points required")

	// ErrDuplicatePoint indicates two equal input points; the engine
	// assumes distinctness and does not deduplicate.
	ErrDuplicatePoint = errors.New("delaunay: duplicate input point")

	// ErrInternalInvariant indicates a violated algorithm invariant.
	ErrInternalInvariant = errors.New("delaunay: internal invariant violated")
)

// EventKind labels one step of the step-by-step stream.
type EventKind int

const (
	// EventInsert: the undirected edge (A,B) was inserted.
	EventInsert EventKind = iota

	// EventDelete: the undirected edge (A,B) was deleted.
	EventDelete

	// EventCircle: the merge considered the circumcircle through A, B
	// and C, and inserted the cross edge (A,B).
	EventCircle
)

// String returns the lowercase kind label.
func (k EventKind) String() string {
	switch k {
	case EventInsert:
		return "insert"
	case EventDelete:
		return "delete"
	case EventCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Event is one step of the triangulation: an edge insertion, an edge
// deletion, or a circumcircle decision.  C is meaningful only for
// EventCircle.
type Event struct {
	Kind    EventKind
	A, B, C geom.Point
}

// Option configures triangulation observation via functional arguments.
type Option func(*Options)

// Options holds the observation hooks.  All hooks default to no-ops;
// they fire in mutation order, so replaying delete/insert events against
// an empty edge set reproduces the final triangulation.
type Options struct {
	// OnInsert fires after the undirected edge (a,b) is inserted.
	OnInsert func(a, b geom.Point)

	// OnDelete fires after the undirected edge (a,b) is deleted.
	OnDelete func(a, b geom.Point)

	// OnCircle fires after the merge settles a circumcircle decision
	// through (a,b,c) and inserts the cross edge (a,b).
	OnCircle func(a, b, c geom.Point)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnInsert: func(geom.Point, geom.Point) {},
		OnDelete: func(geom.Point, geom.Point) {},
		OnCircle: func(geom.Point, geom.Point, geom.Point) {},
	}
}

// WithOnInsert registers a callback for edge insertions.
func WithOnInsert(fn func(a, b geom.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnInsert = fn
		}
	}
}

// WithOnDelete registers a callback for edge deletions.
func WithOnDelete(fn func(a, b geom.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDelete = fn
		}
	}
}

// WithOnCircle registers a callback for circumcircle decisions.
func WithOnCircle(fn func(a, b, c geom.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCircle = fn
		}
	}
}
