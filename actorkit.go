// Package actorkit is the top-level API for the actorkit runtime. It
// re-exports core types for convenience, so users can write:
//
//	kit := actorkit.New(log)
//	proxy, err := kit.RootContext().CreateActor("dummy", newEchoActor)
//	value, err := proxy.Ask(kit.RootContext(), DataMessage{Data: "test"})
package actorkit

import (
	"github.com/actorkit/actorkit/core"
)

// Re-export core types at the package level for ergonomic usage.
type (
	Context            = core.Context
	Message            = core.Message
	Base               = core.Base
	Envelope           = core.Envelope
	EnvelopeTracker    = core.EnvelopeTracker
	Router             = core.Router
	Actor              = core.Actor
	Actlet             = core.Actlet
	ActletFunc         = core.ActletFunc
	ActorBehavior      = core.ActorBehavior
	ActorFactory       = core.ActorFactory
	Initializer        = core.Initializer
	Proxy              = core.Proxy
	Core               = core.Core
	Logger             = core.Logger
	Level              = core.Level
	Dispatch           = core.Dispatch
	DispatchMiddleware = core.DispatchMiddleware

	ShutdownMessage   = core.ShutdownMessage
	ActletDoneMessage = core.ActletDoneMessage
	ActletError       = core.ActletError
	TimerDoneMessage  = core.TimerDoneMessage
	TimerConfig       = core.TimerConfig
)

// AddHandler registers h as the handler for message type M on r. Free
// function re-export of core.AddHandler (Go methods cannot be generic).
func AddHandler[M Message](r *Router, h func(ctx *Context, msg M) (any, error)) error {
	return core.AddHandler(r, h)
}

// New creates a running Core, the actor registry every actor lives in.
func New(log Logger) *Core {
	return core.New(log)
}

// RootIdentity is the identity of the implicit root context, "/".
const RootIdentity = core.RootIdentity

// Error sentinels, re-exported for callers using errors.Is without
// importing core directly.
var (
	ErrBadRegistration = core.ErrBadRegistration
	ErrBadEntryPoint   = core.ErrBadEntryPoint
	ErrDuplicateID     = core.ErrDuplicateID
	ErrDuplicateActlet = core.ErrDuplicateActlet
	ErrDuplicateKey    = core.ErrDuplicateKey
	ErrNotFound        = core.ErrNotFound
	ErrNotRunning      = core.ErrNotRunning
	ErrNotShutdown     = core.ErrNotShutdown
	ErrUnhandled       = core.ErrUnhandled
	ErrMissingContext  = core.ErrMissingContext
)
