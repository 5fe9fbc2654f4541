package motionplan

import "github.com/golang/geo/r2"

// IterationEvent describes one planner iteration.
type IterationEvent struct {
	Iteration int
	Sample    r2.Point
	// Index of the node added this iteration, or -1 if the sample was rejected.
	Inserted int
	Tree     TreeView
}

// IterationObserver is notified synchronously after every planner iteration. Observers must not retain the TreeView
// past the call.
type IterationObserver interface {
	ObserveIteration(event IterationEvent)
}

// IterationObserverFunc adapts a plain function to an IterationObserver.
type IterationObserverFunc func(event IterationEvent)

// ObserveIteration calls f(event).
func (f IterationObserverFunc) ObserveIteration(event IterationEvent) {
	f(event)
}
