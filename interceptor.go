package statebox

import (
	"time"

	"go.uber.org/zap"
)

// LogActions returns an Interceptor that logs every dispatched Action at
// Debug level, along with how long it took and any error it produced
func LogActions(logger *zap.Logger) Interceptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next Dispatch) Dispatch {
		return func(a Action) (Action, error) {
			start := time.Now()
			res, err := next(a)
			fields := []zap.Field{
				zap.String("action", string(a.Type())),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}
			logger.Debug("Action dispatched", fields...)
			return res, err
		}
	}
}
