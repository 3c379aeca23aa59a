package todo

import "github.com/kode4food/statebox"

var (
	// Todos reduces the todo slice
	Todos = statebox.ByType(statebox.Reducers[[]Todo]{
		TypeAddTodo:     statebox.MakeReducer(addTodo),
		TypeRemoveTodo:  statebox.MakeReducer(removeTodo),
		TypeToggleTodo:  statebox.MakeReducer(toggleTodo),
		TypeReceiveData: statebox.MakeReducer(receiveTodos),
	})

	// Goals reduces the goal slice
	Goals = statebox.ByType(statebox.Reducers[[]Goal]{
		TypeAddGoal:     statebox.MakeReducer(addGoal),
		TypeRemoveGoal:  statebox.MakeReducer(removeGoal),
		TypeReceiveData: statebox.MakeReducer(receiveGoals),
	})
)

// Loading reduces the load state slice
func Loading(state LoadState, a statebox.Action) LoadState {
	switch a.(type) {
	case ReceiveData:
		return LoadDone
	default:
		return state
	}
}

func addTodo(todos []Todo, a AddTodo) []Todo {
	return appendCopy(todos, a.Todo)
}

func removeTodo(todos []Todo, a RemoveTodo) []Todo {
	return filter(todos, func(t Todo) bool { return t.ID != a.ID })
}

func toggleTodo(todos []Todo, a ToggleTodo) []Todo {
	res := make([]Todo, len(todos))
	for i, t := range todos {
		if t.ID == a.ID {
			t.Complete = !t.Complete
		}
		res[i] = t
	}
	return res
}

func receiveTodos(_ []Todo, a ReceiveData) []Todo {
	return appendCopy[Todo](nil, a.Todos...)
}

func addGoal(goals []Goal, a AddGoal) []Goal {
	return appendCopy(goals, a.Goal)
}

func removeGoal(goals []Goal, a RemoveGoal) []Goal {
	return filter(goals, func(g Goal) bool { return g.ID != a.ID })
}

func receiveGoals(_ []Goal, a ReceiveData) []Goal {
	return appendCopy[Goal](nil, a.Goals...)
}

// appendCopy never writes into the backing array of s, which older states
// may still reference
func appendCopy[T any](s []T, items ...T) []T {
	res := make([]T, 0, len(s)+len(items))
	res = append(res, s...)
	return append(res, items...)
}

func filter[T any](s []T, keep func(T) bool) []T {
	res := make([]T, 0, len(s))
	for _, item := range s {
		if keep(item) {
			res = append(res, item)
		}
	}
	return res
}
