// Package todo is a small todos and goals domain built on statebox. It
// provides the actions, the slice reducers, the root composition and the glue
// that turns fetched data into a dispatch.
package todo

import "github.com/kode4food/statebox"

type (
	// ID identifies an entity within its slice. IDs are assigned by the
	// caller and are never reused or checked for uniqueness here
	ID int

	Todo struct {
		ID       ID     `json:"id"`
		Name     string `json:"name"`
		Complete bool   `json:"complete"`
	}

	Goal struct {
		ID   ID     `json:"id"`
		Name string `json:"name"`
	}

	// LoadState tracks whether initial data has arrived. The zero value is
	// LoadPending
	LoadState int

	AddTodo struct {
		Todo Todo
	}

	RemoveTodo struct {
		ID ID
	}

	ToggleTodo struct {
		ID ID
	}

	AddGoal struct {
		Goal Goal
	}

	RemoveGoal struct {
		ID ID
	}

	// ReceiveData carries the results of the initial fetch
	ReceiveData struct {
		Todos []Todo
		Goals []Goal
	}
)

const (
	LoadPending LoadState = iota
	LoadDone
)

const (
	TypeAddTodo     statebox.ActionType = "ADD_TODO"
	TypeRemoveTodo  statebox.ActionType = "REMOVE_TODO"
	TypeToggleTodo  statebox.ActionType = "TOGGLE_TODO"
	TypeAddGoal     statebox.ActionType = "ADD_GOAL"
	TypeRemoveGoal  statebox.ActionType = "REMOVE_GOAL"
	TypeReceiveData statebox.ActionType = "RECEIVE_DATA"
)

func (AddTodo) Type() statebox.ActionType     { return TypeAddTodo }
func (RemoveTodo) Type() statebox.ActionType  { return TypeRemoveTodo }
func (ToggleTodo) Type() statebox.ActionType  { return TypeToggleTodo }
func (AddGoal) Type() statebox.ActionType     { return TypeAddGoal }
func (RemoveGoal) Type() statebox.ActionType  { return TypeRemoveGoal }
func (ReceiveData) Type() statebox.ActionType { return TypeReceiveData }

// Loading reports whether initial data is still outstanding
func (l LoadState) Loading() bool {
	return l == LoadPending
}

func (l LoadState) String() string {
	if l.Loading() {
		return "pending"
	}
	return "done"
}
