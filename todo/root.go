package todo

import "github.com/kode4food/statebox"

// State is the aggregate state of the todos/goals domain
type State struct {
	Todos   []Todo
	Goals   []Goal
	Loading LoadState
}

// Slice names used by Combined
const (
	SliceTodos   = "todos"
	SliceGoals   = "goals"
	SliceLoading = "loading"
)

// Root reduces every slice of State
func Root(s State, a statebox.Action) State {
	return State{
		Todos:   Todos(s.Todos, a),
		Goals:   Goals(s.Goals, a),
		Loading: Loading(s.Loading, a),
	}
}

// Combined builds the same composition as Root through CombineReducers
func Combined() (statebox.Reducer[statebox.State], error) {
	return statebox.CombineReducers(map[string]statebox.Reducer[any]{
		SliceTodos:   statebox.Slice(Todos),
		SliceGoals:   statebox.Slice(Goals),
		SliceLoading: statebox.Slice[LoadState](Loading),
	})
}

// FromCombined converts a State produced by Combined into a typed State
func FromCombined(s statebox.State) State {
	todos, _ := s[SliceTodos].([]Todo)
	goals, _ := s[SliceGoals].([]Goal)
	loading, _ := s[SliceLoading].(LoadState)
	return State{Todos: todos, Goals: goals, Loading: loading}
}
