package middleware

import (
	"fmt"
	"runtime"

	"github.com/actorkit/actorkit/core"
)

// Recovery returns dispatch middleware that recovers from a panicking
// handler and turns it into an error, so the caller's EnvelopeTracker
// still resolves (spec.md §7's HandlerException: "recorded on the
// tracker; not propagated to the serve-loop") instead of the panic
// crashing the actor's serve loop.
func Recovery() core.DispatchMiddleware {
	return func(next core.Dispatch) core.Dispatch {
		return func(ctx *core.Context, msg core.Message) (value any, err error) {
			defer func() {
				if r := recover(); r != nil {
					buf := make([]byte, 4096)
					n := runtime.Stack(buf, false)
					ctx.Error("handler panicked", "panic", r, "stack", string(buf[:n]))
					err = fmt.Errorf("actorkit: handler panic: %v", r)
				}
			}()
			return next(ctx, msg)
		}
	}
}
