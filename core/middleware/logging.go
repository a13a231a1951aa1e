package middleware

import (
	"time"

	"github.com/actorkit/actorkit/core"
)

// Logging returns dispatch middleware that logs each handler invocation's
// duration and outcome through the Context's own bound Logger — retargeted
// from the teacher's broker-subscription Logging (which logged to stdlib
// log) to actor dispatch, using whatever Logger the Context carries
// (zap-backed in production, a recording one in tests).
func Logging() core.DispatchMiddleware {
	return func(next core.Dispatch) core.Dispatch {
		return func(ctx *core.Context, msg core.Message) (any, error) {
			start := time.Now()
			value, err := next(ctx, msg)
			elapsed := time.Since(start)

			if err != nil {
				ctx.Exception("handler failed", err, "elapsed", elapsed)
			} else {
				ctx.Debug("handler ok", "elapsed", elapsed)
			}
			return value, err
		}
	}
}
