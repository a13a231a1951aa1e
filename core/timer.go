package core

import (
	"fmt"
	"time"
)

// timerDriver is the generic actlet entry point behind Actor.CreateTimer
// (spec.md §4.7). Its configuration is always a TimerConfig value. proxy
// addresses the owning actor (the same Proxy every actlet of this owner
// receives), so send delivers cfg.Message to the actor that created the
// timer.
//
// Cancellation between intervals is the normal exit path: sleep returns an
// error in that case, so timerDriver returns (nil, err) rather than a
// TimerDoneMessage — Actlet.run then records the termination as cancelled,
// never surfacing a TimerDoneMessage for a cancelled timer (spec.md §5's
// carve-out), while still posting the framework-level ActletDoneMessage
// like any other actlet (SPEC_FULL.md's resolution of open question #1).
func timerDriver(ctx *Context, proxy *Proxy, configuration Message) (Message, error) {
	cfg, ok := configuration.(TimerConfig)
	if !ok {
		// Fail quietly: log and complete with a TimerDoneMessage.
		ctx.Exception("timer failed", fmt.Errorf("actorkit: timer driver received non-TimerConfig configuration %T", configuration))
		return TimerDoneMessage{}, nil
	}

	if cfg.Delay > 0 {
		if err := sleep(ctx, cfg.Delay); err != nil {
			return nil, err
		}
	}

	remaining := cfg.Repetitions
	unbounded := remaining <= 0

	send := func() {
		proxy.Tell(ctx, cfg.Message)
	}

	if cfg.Now {
		send()
		if !unbounded {
			remaining--
		}
	}

	for unbounded || remaining > 0 {
		if err := sleep(ctx, cfg.Interval); err != nil {
			return nil, err
		}
		send()
		if !unbounded {
			remaining--
		}
	}

	return TimerDoneMessage{}, nil
}

// sleep blocks for d, returning ctx.Err() if ctx is cancelled first —
// timer cancellation between intervals is the normal exit path (spec.md
// §5), propagated here as an error so Actlet.run records it as a
// cancelled, not a successful, termination.
func sleep(ctx *Context, seconds float64) error {
	if seconds <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}
	timer := time.NewTimer(time.Duration(seconds * float64(time.Second)))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
