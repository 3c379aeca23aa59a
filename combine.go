package statebox

import (
	"fmt"
	"reflect"
)

// State is an aggregate keyed by slice name
type State map[string]any

// CombineReducers produces a root Reducer that hands each slice reducer its
// own portion of the prior State and assembles the results into a new State
// keyed exactly like the provided mapping. Initialization is left to the
// slice reducers: an unset prior slice arrives as nil
func CombineReducers(slices map[string]Reducer[any]) (Reducer[State], error) {
	if len(slices) == 0 {
		return nil, ErrNoSlices
	}
	names := make([]string, 0, len(slices))
	reducers := make([]Reducer[any], 0, len(slices))
	for name, r := range slices {
		if r == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilSliceReducer, name)
		}
		names = append(names, name)
		reducers = append(reducers, r)
	}

	return func(prior State, a Action) State {
		next := make(State, len(names))
		for i, name := range names {
			next[name] = reducers[i](prior[name], a)
		}
		return next
	}, nil
}

// Slice adapts a typed slice Reducer for use with CombineReducers. An unset
// prior value is passed to the Reducer as the zero value of S
func Slice[S any](r Reducer[S]) Reducer[any] {
	return func(prior any, a Action) any {
		if prior == nil {
			var zero S
			return r(zero, a)
		}
		s, ok := prior.(S)
		if !ok {
			panic(&SliceTypeError{
				Value:    prior,
				Expected: reflect.TypeFor[S]().String(),
			})
		}
		return r(s, a)
	}
}
