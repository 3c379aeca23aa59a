package statebox

// MakeReducer adapts a function over one concrete Action kind into a Reducer.
// Actions of any other kind return the prior state unchanged
func MakeReducer[S any, A Action](fn func(S, A) S) Reducer[S] {
	return func(state S, a Action) S {
		act, ok := a.(A)
		if !ok {
			return state
		}
		return fn(state, act)
	}
}

// ByType routes each Action to the Reducer registered for its ActionType.
// Unknown kinds return the prior state unchanged
func ByType[S any](reducers Reducers[S]) Reducer[S] {
	return func(state S, a Action) S {
		if fn, ok := reducers[a.Type()]; ok {
			return fn(state, a)
		}
		return state
	}
}
