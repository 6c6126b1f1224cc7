package we

// Reducer computes the next state from the current state and an action. It
// must be pure: no I/O and no mutation of either argument. Actions it does not
// recognise return the state unchanged.
type Reducer[S any, A any] interface {
	Reduce(state S, action A) (S, error)
}

type ReducerFunction[S any, A any] func(state S, action A) (S, error)

func (f ReducerFunction[S, A]) Reduce(state S, action A) (S, error) {
	return f(state, action)
}

// Initializer is implemented by reducers that declare their own default state.
type Initializer[S any] interface {
	InitialState() S
}

// DefaultedReducer pairs a reducer function with the state it starts from.
type DefaultedReducer[S any, A any] struct {
	Initial S
	Reducer ReducerFunction[S, A]
}

func (r DefaultedReducer[S, A]) Reduce(state S, action A) (S, error) {
	return r.Reducer(state, action)
}

func (r DefaultedReducer[S, A]) InitialState() S {
	return r.Initial
}
