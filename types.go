package statebox

type (
	// ActionType discriminates between kinds of Action
	ActionType string

	// Action describes an intended state change. Implementations are plain
	// immutable structs carrying exactly the payload of their kind
	Action interface {
		Type() ActionType
	}

	// Reducer folds an Action into a prior state, returning the next state.
	// Reducers must be pure and must never modify the prior state in place
	Reducer[S any] func(S, Action) S

	// Reducers maps an ActionType to the Reducer that handles it
	Reducers[S any] map[ActionType]Reducer[S]

	// Listener is notified after every successful dispatch
	Listener func()

	// Unsubscribe removes the Listener registration that returned it
	Unsubscribe func()

	// Dispatch hands an Action to a Store, returning the same Action
	Dispatch func(Action) (Action, error)

	// Interceptor wraps a Store's Dispatch
	Interceptor func(next Dispatch) Dispatch

	// Init is the synthetic Action a Store reduces to compute its initial
	// state
	Init struct{}
)

// InitType is the ActionType of Init
const InitType ActionType = "@@statebox/INIT"

// Type implements Action
func (Init) Type() ActionType {
	return InitType
}
