package we

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// StateGenerator and ActionGenerator produce inputs for the validation suite.
// Generated states and actions must encode to JSON; the encoding taken before
// reduction is compared with the one taken afterwards.
type StateGenerator[S any] func(f faker.Faker) S
type ActionGenerator[A any] func(f faker.Faker) A

func NewReducerValidationSuite[S any, A any](reducer Reducer[S, A], states StateGenerator[S], actions ActionGenerator[A]) *ReducerValidationSuite[S, A] {
	return &ReducerValidationSuite[S, A]{
		reducer:    reducer,
		states:     states,
		actions:    actions,
		faker:      faker.New(),
		Iterations: 50,
	}
}

type ReducerValidationSuite[S any, A any] struct {
	reducer Reducer[S, A]
	states  StateGenerator[S]
	actions ActionGenerator[A]
	faker   faker.Faker

	Iterations int
}

func (s *ReducerValidationSuite[S, A]) Run(t *testing.T) {
	t.Run("is deterministic", s.Deterministic)
	t.Run("does not mutate its arguments", s.LeavesArgumentsIntact)
	t.Run("reads are stable between dispatches", s.StableReads)
	t.Run("notifies once per dispatch", s.NotifiesOncePerDispatch)
}

func (s *ReducerValidationSuite[S, A]) Deterministic(t *testing.T) {
	for i := 0; i < s.Iterations; i++ {
		state := s.states(s.faker)
		action := s.actions(s.faker)

		first, firstErr := s.reducer.Reduce(state, action)
		second, secondErr := s.reducer.Reduce(state, action)

		if firstErr != nil || secondErr != nil {
			if assert.Error(t, firstErr) && assert.Error(t, secondErr) {
				assert.Equal(t, firstErr.Error(), secondErr.Error())
			}
			continue
		}

		assert.Equal(t, first, second)
	}
}

func (s *ReducerValidationSuite[S, A]) LeavesArgumentsIntact(t *testing.T) {
	s.leavesArgumentsIntact(t)
}

func (s *ReducerValidationSuite[S, A]) leavesArgumentsIntact(t assert.TestingT) {
	for i := 0; i < s.Iterations; i++ {
		state := s.states(s.faker)
		action := s.actions(s.faker)

		stateBefore, err := json.Marshal(state)
		if !assert.NoError(t, err, "state must encode to JSON") {
			return
		}
		actionBefore, err := json.Marshal(action)
		if !assert.NoError(t, err, "action must encode to JSON") {
			return
		}

		_, _ = s.reducer.Reduce(state, action)

		stateAfter, err := json.Marshal(state)
		if assert.NoError(t, err) {
			assert.JSONEq(t, string(stateBefore), string(stateAfter), "reducer mutated its state")
		}
		actionAfter, err := json.Marshal(action)
		if assert.NoError(t, err) {
			assert.JSONEq(t, string(actionBefore), string(actionAfter), "reducer mutated its action")
		}
	}
}

func (s *ReducerValidationSuite[S, A]) StableReads(t *testing.T) {
	store, err := New[S, A](s.reducer, WithInitialState[S, A](s.states(s.faker)))
	require.NoError(t, err)

	for i := 0; i < s.Iterations; i++ {
		before := store.Snapshot()
		assert.Equal(t, before, store.Snapshot())
		assert.Equal(t, before.State, store.GetState())

		_ = store.Dispatch(context.Background(), s.actions(s.faker))
	}
}

func (s *ReducerValidationSuite[S, A]) NotifiesOncePerDispatch(t *testing.T) {
	store, err := New[S, A](s.reducer, WithInitialState[S, A](s.states(s.faker)))
	require.NoError(t, err)

	notified := 0
	unsubscribe := store.Subscribe(func() { notified++ })
	defer unsubscribe()

	committed := 0
	for i := 0; i < s.Iterations; i++ {
		if err := store.Dispatch(context.Background(), s.actions(s.faker)); err == nil {
			committed++
		}
	}

	assert.Equal(t, committed, notified)
}
