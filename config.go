package statebox

import "go.uber.org/zap"

// Config controls the behavior of a Store
type Config struct {
	// Logger receives listener failures. A nil Logger discards them
	Logger *zap.Logger

	// Interceptor, if set, wraps every call to Dispatch, including the ones
	// listeners make during notification
	Interceptor Interceptor

	// OnListenerError, if set, is called with each recovered listener failure
	OnListenerError func(*ListenerError)
}

func DefaultConfig() Config {
	return Config{
		Logger: zap.NewNop(),
	}
}
