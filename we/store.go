package we

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "we-store"

// Container is the surface action producers and render consumers work against.
type Container[S any, A any] interface {
	GetState() S
	Snapshot() Snapshot[S]
	Dispatch(ctx context.Context, action A) error
	Subscribe(observer Observer) Unsubscribe
}

type Option[S any, A any] func(store *Store[S, A])

func WithInitialState[S any, A any](state S) Option[S, A] {
	return func(store *Store[S, A]) {
		store.state = state
		store.initialized = true
	}
}

func WithLogger[S any, A any](log *zerolog.Logger) Option[S, A] {
	return func(store *Store[S, A]) {
		store.log = log
	}
}

// Store holds a single state value and replaces it through its reducer.
//
// Dispatch is synchronous and exclusive: a dispatch issued while another one is
// running, including from an observer, returns ErrDispatchInProgress.
// Producers on several goroutines must serialise their calls.
type Store[S any, A any] struct {
	reducer   Reducer[S, A]
	log       *zerolog.Logger
	clock     Clock
	revisions *RevisionGenerator

	mu          sync.RWMutex
	state       S
	initialized bool
	revision    Revision
	observers   []*subscription
	next        uint64

	dispatching atomic.Bool
}

func New[S any, A any](reducer Reducer[S, A], options ...Option[S, A]) (*Store[S, A], error) {
	if reducer == nil {
		return nil, ErrReducerRequired
	}
	if f, ok := reducer.(ReducerFunction[S, A]); ok && f == nil {
		return nil, ErrReducerRequired
	}
	if d, ok := reducer.(DefaultedReducer[S, A]); ok && d.Reducer == nil {
		return nil, ErrReducerRequired
	}
	if d, ok := reducer.(*DefaultedReducer[S, A]); ok && (d == nil || d.Reducer == nil) {
		return nil, ErrReducerRequired
	}

	store := &Store[S, A]{
		reducer:   reducer,
		revisions: NewRevisionGenerator(),
		revision:  InitialRevision,
	}

	for _, option := range options {
		option(store)
	}

	if !store.initialized {
		if initializer, ok := reducer.(Initializer[S]); ok {
			store.state = initializer.InitialState()
		}
		store.initialized = true
	}

	if store.clock == nil {
		store.clock = defaultClock{}
	}

	if store.log == nil {
		nop := zerolog.Nop()
		store.log = &nop
	}

	return store, nil
}

func (s *Store[S, A]) GetState() S {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

func (s *Store[S, A]) Snapshot() Snapshot[S] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot[S]{
		Revision: s.revision,
		Type:     StateTypeOf(s.state),
		State:    s.state,
	}
}

func (s *Store[S, A]) Dispatch(ctx context.Context, action A) error {
	if !s.dispatching.CompareAndSwap(false, true) {
		return ErrDispatchInProgress
	}
	defer s.dispatching.Store(false)

	actionType := ActionTypeOf(action)

	_, span := otel.Tracer(tracerName).Start(ctx, fmt.Sprintf("dispatch %s", actionType))
	defer span.End()
	span.SetAttributes(attribute.String("we.action", actionType.String()))

	next, err := s.reducer.Reduce(s.GetState(), action)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reducer failed")
		s.log.Debug().Err(err).Str("action", actionType.String()).Msg("reducer rejected action")

		return errors.Wrapf(err, "failed to reduce %s", actionType)
	}

	s.mu.Lock()
	s.state = next
	s.revision = s.revisions.NewRevision(s.clock.Now())
	revision := s.revision
	observers := make([]*subscription, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	span.SetAttributes(attribute.String("we.revision", revision.String()))
	s.log.Debug().
		Str("action", actionType.String()).
		Str("revision", revision.String()).
		Int("observers", len(observers)).
		Msg("dispatched action")

	for _, subscription := range observers {
		subscription.observer()
	}

	return nil
}

func (s *Store[S, A]) Subscribe(observer Observer) Unsubscribe {
	if observer == nil {
		panic("we: nil observer")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	sub := &subscription{id: s.next, observer: observer}
	s.observers = append(s.observers, sub)

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(sub.id) })
	}
}

func (s *Store[S, A]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.observers {
		if sub.id == id {
			observers := make([]*subscription, 0, len(s.observers)-1)
			observers = append(observers, s.observers[:i]...)
			s.observers = append(observers, s.observers[i+1:]...)
			return
		}
	}
}
