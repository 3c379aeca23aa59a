package todo

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/kode4food/statebox"
)

type (
	// API is the remote source of todos and goals
	API interface {
		FetchTodos(context.Context) ([]Todo, error)
		FetchGoals(context.Context) ([]Goal, error)
		DeleteTodo(context.Context, ID) error
	}

	// Dispatcher accepts actions, typically a *statebox.Store
	Dispatcher interface {
		Dispatch(statebox.Action) (statebox.Action, error)
	}

	// StaticAPI is an in-memory API. Failures can be injected through Err
	StaticAPI struct {
		Err   error
		todos []Todo
		goals []Goal
		mu    sync.Mutex
	}
)

// HandleInitialData fetches todos and goals concurrently and dispatches a
// single ReceiveData once both have arrived. Nothing is dispatched if either
// fetch fails
func HandleInitialData(ctx context.Context, api API, d Dispatcher) error {
	var todos []Todo
	var goals []Goal

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		todos, err = api.FetchTodos(gctx)
		if err != nil {
			return fmt.Errorf("fetch todos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		goals, err = api.FetchGoals(gctx)
		if err != nil {
			return fmt.Errorf("fetch goals: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	_, err := d.Dispatch(ReceiveData{Todos: todos, Goals: goals})
	return err
}

// HandleDeleteTodo removes the todo right away and restores it if the API
// rejects the deletion
func HandleDeleteTodo(
	ctx context.Context, api API, d Dispatcher, todo Todo,
) error {
	if _, err := d.Dispatch(RemoveTodo{ID: todo.ID}); err != nil {
		return err
	}
	if err := api.DeleteTodo(ctx, todo.ID); err != nil {
		if _, rerr := d.Dispatch(AddTodo{Todo: todo}); rerr != nil {
			return rerr
		}
		return fmt.Errorf("delete todo %d: %w", todo.ID, err)
	}
	return nil
}

// NewStaticAPI returns a StaticAPI serving copies of the provided items
func NewStaticAPI(todos []Todo, goals []Goal) *StaticAPI {
	return &StaticAPI{
		todos: slices.Clone(todos),
		goals: slices.Clone(goals),
	}
}

func (s *StaticAPI) FetchTodos(ctx context.Context) ([]Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(s.todos), nil
}

func (s *StaticAPI) FetchGoals(ctx context.Context) ([]Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	return slices.Clone(s.goals), nil
}

func (s *StaticAPI) DeleteTodo(ctx context.Context, id ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	s.todos = slices.DeleteFunc(s.todos, func(t Todo) bool {
		return t.ID == id
	})
	return nil
}

func (s *StaticAPI) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.Err
}
