package we

import "time"

// Clock supplies the time revisions are stamped with.
type Clock interface {
	Now() time.Time
}

func WithClock[S any, A any](clock Clock) Option[S, A] {
	return func(store *Store[S, A]) {
		store.clock = clock
	}
}

type defaultClock struct {
}

func (defaultClock) Now() time.Time {
	return time.Now()
}
