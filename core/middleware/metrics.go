package middleware

import (
	"time"

	"github.com/actorkit/actorkit/core"
)

// MetricsCollector is the interface metrics backends implement, kept
// decoupled from any specific metrics library — same shape as the
// teacher's broker-subscription MetricsCollector, retargeted from a
// subscription topic label to a message type label.
type MetricsCollector interface {
	// MessageProcessed records that a message of the given type was
	// dispatched, with its processing duration and outcome.
	MessageProcessed(messageType string, duration time.Duration, err error)
}

// Metrics returns dispatch middleware that reports processing metrics to
// collector, labeled by the dispatched message's type name.
func Metrics(collector MetricsCollector) core.DispatchMiddleware {
	return func(next core.Dispatch) core.Dispatch {
		return func(ctx *core.Context, msg core.Message) (any, error) {
			start := time.Now()
			value, err := next(ctx, msg)
			collector.MessageProcessed(core.MessageTypeName(msg), time.Since(start), err)
			return value, err
		}
	}
}
