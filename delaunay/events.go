// Package delaunay - eager event-stream collection.
package delaunay

import "github.com/katalvlaran/lvltri/geom"

// TriangulateEvents triangulates points and returns the full
// step-by-step event stream in mutation order: every Delete precedes
// the Insert or Circle step it enabled, so replaying the stream against
// an empty edge set reproduces the final triangulation exactly.
//
// The stream is finite and produced by one fresh run; re-running
// TriangulateEvents is the only way to observe it again.  Validation
// errors match Triangulate.  Callers that want live hooks instead of a
// collected slice pass WithOnInsert/WithOnDelete/WithOnCircle to
// Triangulate directly.
//
// Complexity: O(n·log n) time, O(n) events.
func TriangulateEvents(points []geom.Point) ([]Event, error) {
	events := make([]Event, 0, 4*len(points))

	_, err := Triangulate(points,
		WithOnInsert(func(a, b geom.Point) {
			events = append(events, Event{Kind: EventInsert, A: a, B: b})
		}),
		WithOnDelete(func(a, b geom.Point) {
			events = append(events, Event{Kind: EventDelete, A: a, B: b})
		}),
		WithOnCircle(func(a, b, c geom.Point) {
			events = append(events, Event{Kind: EventCircle, A: a, B: b, C: c})
		}),
	)
	if err != nil {
		return nil, err
	}

	return events, nil
}
