package todo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kode4food/statebox"
	"github.com/kode4food/statebox/todo"
)

type failingAPI struct {
	*todo.StaticAPI
	goalsErr error
}

func (f *failingAPI) FetchGoals(ctx context.Context) ([]todo.Goal, error) {
	if f.goalsErr != nil {
		return nil, f.goalsErr
	}
	return f.StaticAPI.FetchGoals(ctx)
}

func TestHandleInitialData(t *testing.T) {
	t.Run("dispatches one receive action", func(t *testing.T) {
		store, err := statebox.NewStore(todo.Root)
		require.NoError(t, err)

		notified := 0
		store.Subscribe(func() { notified++ })

		goals := []todo.Goal{{ID: 0, Name: "Learn Go"}}
		api := todo.NewStaticAPI(sampleTodos(), goals)
		err = todo.HandleInitialData(context.Background(), api, store)
		require.NoError(t, err)

		state := store.GetState()
		assert.Equal(t, sampleTodos(), state.Todos)
		assert.Equal(t, goals, state.Goals)
		assert.Equal(t, todo.LoadDone, state.Loading)
		assert.Equal(t, 1, notified)
	})

	t.Run("fetch failures dispatch nothing", func(t *testing.T) {
		store, err := statebox.NewStore(todo.Root)
		require.NoError(t, err)

		notified := 0
		store.Subscribe(func() { notified++ })

		cause := errors.New("service unavailable")
		api := &failingAPI{
			StaticAPI: todo.NewStaticAPI(sampleTodos(), nil),
			goalsErr:  cause,
		}
		err = todo.HandleInitialData(context.Background(), api, store)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "fetch goals")
		assert.Equal(t, 0, notified)
		assert.True(t, store.GetState().Loading.Loading())
	})

	t.Run("honors cancellation", func(t *testing.T) {
		store, err := statebox.NewStore(todo.Root)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		api := todo.NewStaticAPI(sampleTodos(), nil)
		err = todo.HandleInitialData(ctx, api, store)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, store.GetState().Todos)
	})
}

func TestHandleDeleteTodo(t *testing.T) {
	setup := func(t *testing.T) (*statebox.Store[todo.State], *todo.StaticAPI) {
		store, err := statebox.NewStore(todo.Root)
		require.NoError(t, err)
		api := todo.NewStaticAPI(sampleTodos(), nil)
		require.NoError(t,
			todo.HandleInitialData(context.Background(), api, store),
		)
		return store, api
	}

	t.Run("removes the todo", func(t *testing.T) {
		store, api := setup(t)
		target := sampleTodos()[1]

		err := todo.HandleDeleteTodo(context.Background(), api, store, target)
		require.NoError(t, err)
		assert.Equal(t, []todo.ID{0, 2}, ids(store.GetState().Todos))

		remote, err := api.FetchTodos(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []todo.ID{0, 2}, ids(remote))
	})

	t.Run("restores the todo when the API fails", func(t *testing.T) {
		store, api := setup(t)
		api.Err = errors.New("delete refused")
		target := sampleTodos()[1]

		var seen [][]todo.ID
		store.Subscribe(func() {
			seen = append(seen, ids(store.GetState().Todos))
		})

		err := todo.HandleDeleteTodo(context.Background(), api, store, target)
		assert.ErrorIs(t, err, api.Err)
		assert.Equal(t, [][]todo.ID{{0, 2}, {0, 2, 1}}, seen)
	})
}
