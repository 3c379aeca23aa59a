package statebox

import (
	"sync"

	"go.uber.org/zap"
)

type (
	// Store holds the current state and the Listeners interested in it. The
	// state only changes through Dispatch. A Store is not safe for concurrent
	// use: every call must come from the goroutine that owns it
	Store[S any] struct {
		state     S
		reducer   Reducer[S]
		dispatch  Dispatch
		listeners registry
		logger    *zap.Logger
		onError   func(*ListenerError)
		reducing  bool
	}
)

// NewStore creates a Store with the default configuration
func NewStore[S any](reducer Reducer[S]) (*Store[S], error) {
	return NewStoreWithConfig(reducer, DefaultConfig())
}

// NewStoreWithConfig creates a Store whose initial state is the result of
// reducing Init over the zero value of S
func NewStoreWithConfig[S any](
	reducer Reducer[S], cfg Config,
) (*Store[S], error) {
	if reducer == nil {
		return nil, ErrNilReducer
	}

	s := &Store[S]{
		reducer: reducer,
		logger:  cfg.Logger,
		onError: cfg.OnListenerError,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	s.dispatch = s.reduce
	if cfg.Interceptor != nil {
		s.dispatch = cfg.Interceptor(s.reduce)
	}

	var zero S
	state, err := s.apply(zero, Init{})
	if err != nil {
		return nil, err
	}
	s.state = state
	return s, nil
}

// GetState returns the state produced by the most recent dispatch
func (s *Store[S]) GetState() S {
	return s.state
}

// Subscribe registers a Listener to be called after every dispatch. The same
// function may be registered more than once; each registration is called
// separately and is removed only by its own Unsubscribe. A nil Listener is
// ignored
func (s *Store[S]) Subscribe(fn Listener) Unsubscribe {
	if fn == nil {
		return func() {}
	}

	sub := s.listeners.register(fn)
	var once sync.Once
	return func() {
		once.Do(func() {
			s.listeners.unregister(sub)
		})
	}
}

// SubscriberCount returns the number of live Listener registrations
func (s *Store[S]) SubscriberCount() int {
	return s.listeners.count()
}

// Dispatch reduces the Action into a new state and then notifies the
// Listeners registered when notification begins, in registration order. The
// Action is returned as-is. If the Reducer panics, the state is unchanged, no
// Listener is called, and a *ReducerError is returned.
//
// A Listener may itself dispatch. The nested dispatch completes, including
// its own notification pass, before the outer pass resumes. A Reducer may not
// dispatch; doing so returns ErrDispatchInReducer
func (s *Store[S]) Dispatch(a Action) (Action, error) {
	if a == nil {
		return nil, ErrNilAction
	}
	return s.dispatch(a)
}

// ReplaceReducer swaps the Store's Reducer and dispatches Init so that any
// newly introduced slices receive their initial values
func (s *Store[S]) ReplaceReducer(reducer Reducer[S]) error {
	if reducer == nil {
		return ErrNilReducer
	}
	s.reducer = reducer
	_, err := s.Dispatch(Init{})
	return err
}

func (s *Store[S]) reduce(a Action) (Action, error) {
	if s.reducing {
		return a, ErrDispatchInReducer
	}

	next, err := s.apply(s.state, a)
	if err != nil {
		return a, err
	}
	s.state = next
	s.notify(a)
	return a, nil
}

func (s *Store[S]) apply(prior S, a Action) (res S, err error) {
	s.reducing = true
	defer func() {
		s.reducing = false
		if r := recover(); r != nil {
			err = &ReducerError{Action: a, Cause: toError(r)}
		}
	}()
	return s.reducer(prior, a), nil
}

func (s *Store[S]) notify(a Action) {
	for _, sub := range s.listeners.snapshot() {
		s.call(sub, a)
	}
}

func (s *Store[S]) call(sub *subscription, a Action) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err := &ListenerError{
			Action:       a,
			Subscription: sub.id,
			Cause:        toError(r),
		}
		s.logger.Error("Listener failed",
			zap.Uint64("subscription", sub.id),
			zap.String("action", string(a.Type())),
			zap.Error(err.Cause),
		)
		if s.onError != nil {
			s.onError(err)
		}
	}()
	sub.fn()
}
