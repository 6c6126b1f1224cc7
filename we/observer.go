package we

// Observer is notified after every committed dispatch. It reads the new state
// from the container rather than receiving it.
type Observer func()

// Unsubscribe removes the observer it was returned for. Calling it more than
// once has no further effect.
type Unsubscribe func()

type subscription struct {
	id       uint64
	observer Observer
}
