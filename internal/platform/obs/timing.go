package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Logger returns the logger carried by ctx, tagged with the request id
// when one is set.
func Logger(ctx context.Context) *zerolog.Logger {
	logger := zerolog.Ctx(ctx)
	if id := RequestID(ctx); id != "" {
		l := logger.With().Str("req_id", id).Logger()
		return &l
	}
	return logger
}

// Time logs the duration of an operation, and its error if one is set
// when the returned func runs:
//
//	defer obs.Time(ctx, "dispatch.truck")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	logger := Logger(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.Warn().
				Str("op", name).
				Dur("dur", dur).
				Err(*errp).
				Msg("operation failed")
			return
		}
		logger.Debug().
			Str("op", name).
			Dur("dur", dur).
			Msg("operation complete")
	}
}
