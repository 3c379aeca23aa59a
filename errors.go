package statebox

import (
	"errors"
	"fmt"
)

type (
	// ReducerError reports a Reducer that panicked while reducing an Action.
	// The Store's state is left untouched when this is returned
	ReducerError struct {
		Action Action
		Cause  error
	}

	// ListenerError reports a Listener that panicked during notification
	ListenerError struct {
		Action       Action
		Subscription uint64
		Cause        error
	}

	// SliceTypeError reports a prior slice value that a typed slice Reducer
	// cannot accept
	SliceTypeError struct {
		Value    any
		Expected string
	}
)

var (
	// ErrNilReducer indicates a Store was created without a Reducer
	ErrNilReducer = errors.New("reducer is nil")

	// ErrNilAction indicates a nil Action was dispatched
	ErrNilAction = errors.New("action is nil")

	// ErrDispatchInReducer indicates a Reducer attempted to dispatch
	ErrDispatchInReducer = errors.New("reducers may not dispatch actions")

	// ErrNoSlices indicates CombineReducers was called with no slices
	ErrNoSlices = errors.New("no slice reducers provided")

	// ErrNilSliceReducer indicates a slice was mapped to a nil Reducer
	ErrNilSliceReducer = errors.New("slice reducer is nil")
)

func (e *ReducerError) Error() string {
	return fmt.Sprintf("reducer failed on %s: %v", actionType(e.Action), e.Cause)
}

func (e *ReducerError) Unwrap() error {
	return e.Cause
}

func (e *ListenerError) Error() string {
	return fmt.Sprintf(
		"listener %d failed after %s: %v",
		e.Subscription, actionType(e.Action), e.Cause,
	)
}

func (e *ListenerError) Unwrap() error {
	return e.Cause
}

func (e *SliceTypeError) Error() string {
	return fmt.Sprintf("slice value %T is not %s", e.Value, e.Expected)
}

func toError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

func actionType(a Action) ActionType {
	if a == nil {
		return ""
	}
	return a.Type()
}
