package core

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Dispatch is one handler invocation, the unit a DispatchMiddleware wraps;
// Core uses such middleware to install cross-cutting behaviour (logging,
// panic recovery, metrics — see core/middleware) around every actor's
// handler invocation. Defined here,
// not in core/middleware, so core itself never needs to import its own
// middleware subpackage (core/middleware imports core, not the reverse).
type Dispatch func(ctx *Context, msg Message) (any, error)

// DispatchMiddleware wraps one Dispatch into another.
type DispatchMiddleware func(Dispatch) Dispatch

// Core is the process-wide registry of actors, keyed by full identity
// (spec.md §4.8). It is the only thing that ever holds a *Actor directly;
// every other caller sees a *Proxy.
type Core struct {
	mu      sync.Mutex
	running bool
	actors  map[string]*Actor

	rootLog Logger

	middlewareMu sync.RWMutex
	middleware   []DispatchMiddleware
}

// New creates a running Core. log is the base Logger every actor's Context
// derives from; a NopLogger is used if nil.
func New(log Logger) *Core {
	if log == nil {
		log = NopLogger{}
	}
	return &Core{
		running: true,
		actors:  make(map[string]*Actor),
		rootLog: log,
	}
}

// RootContext returns a fresh Context at RootIdentity bound to this Core,
// the usual starting point for the first CreateActor call.
func (c *Core) RootContext() *Context {
	return NewContext(c, c.rootLog, RootIdentity)
}

// Use appends mw to the middleware chain installed around every actor's
// handler invocation. Must be called before any actor is created to apply
// uniformly; order is outermost-registered-first.
func (c *Core) Use(mw DispatchMiddleware) {
	c.middlewareMu.Lock()
	defer c.middlewareMu.Unlock()
	c.middleware = append(c.middleware, mw)
}

// buildDispatch wraps base with every installed middleware, outermost
// first.
func (c *Core) buildDispatch(base Dispatch) Dispatch {
	c.middlewareMu.RLock()
	defer c.middlewareMu.RUnlock()
	wrapped := base
	for i := len(c.middleware) - 1; i >= 0; i-- {
		wrapped = c.middleware[i](wrapped)
	}
	return wrapped
}

// CreateActor creates a new actor of the type produced by factory, under
// identity join(callerCtx.Identity(), actorID), starts it, and returns a
// Proxy to it. Fails ErrNotRunning if the Core has been shut down,
// ErrDuplicateID if the synthesised identity already has a live actor.
func (c *Core) CreateActor(callerCtx *Context, actorID string, factory ActorFactory, logBindings ...any) (*Proxy, error) {
	fullID := JoinIdentity(callerCtx.Identity(), actorID)

	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return nil, fmt.Errorf("actorkit: create actor %q: %w", fullID, ErrNotRunning)
	}
	if _, exists := c.actors[fullID]; exists {
		c.mu.Unlock()
		return nil, fmt.Errorf("actorkit: create actor %q: %w", fullID, ErrDuplicateID)
	}

	actorCtx := callerCtx.Derive(WithCore(c), WithIdentity(fullID))
	if len(logBindings) > 0 {
		actorCtx = actorCtx.Derive(WithLogBindings(logBindings...))
	}

	actor := newActor(actorCtx, fullID, factory)
	c.actors[fullID] = actor
	c.mu.Unlock()

	actor.start()
	return newProxy(actor), nil
}

// GetProxy resolves a Proxy to actorID relative to callerCtx's identity.
// Fails ErrNotFound if no live actor has that identity.
func (c *Core) GetProxy(callerCtx *Context, actorID string) (*Proxy, error) {
	fullID := JoinIdentity(callerCtx.Identity(), actorID)

	c.mu.Lock()
	actor, ok := c.actors[fullID]
	c.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("actorkit: get proxy %q: %w", fullID, ErrNotFound)
	}
	return newProxy(actor), nil
}

// removeActor is called by an actor's own teardown, at the end of its
// serve loop, so that I6 ("after shutdown_event is set, the actor is
// absent from the registry") holds by construction: removal always
// happens before the actor's Service reaches its done state. Fails
// ErrNotShutdown if the actor is not yet stopping; silent if already
// absent.
func (c *Core) removeActor(actor *Actor) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	existing, ok := c.actors[actor.actorID]
	if !ok {
		return nil
	}
	if existing == actor && !actor.service.Stopping() {
		return fmt.Errorf("actorkit: remove actor %q: %w", actor.actorID, ErrNotShutdown)
	}
	if existing == actor {
		delete(c.actors, actor.actorID)
	}
	return nil
}

// Shutdown marks the Core not-running (so further CreateActor calls fail
// ErrNotRunning), tells every live actor to shut down, then awaits every
// actor's shutdown in parallel. Waiting for an actor's shutdown yields no
// error, so Shutdown neither logs nor returns per-actor errors. Calling
// Shutdown again is a no-op.
func (c *Core) Shutdown(ctx *Context) {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	actors := make([]*Actor, 0, len(c.actors))
	for _, actor := range c.actors {
		actors = append(actors, actor)
	}
	c.mu.Unlock()

	for _, actor := range actors {
		newProxy(actor).Tell(ctx, ShutdownMessage{})
	}

	var group errgroup.Group
	for _, actor := range actors {
		actor := actor
		group.Go(func() error {
			actor.WaitUntilShutdown()
			return nil
		})
	}
	_ = group.Wait()
}

// IsRunning reports whether the Core still accepts CreateActor calls.
func (c *Core) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// ActorCount returns the number of currently-registered live actors,
// mainly for tests (P10's "registry size is 1").
func (c *Core) ActorCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.actors)
}
