package core

import (
	"fmt"
	"reflect"
	"sync"
)

// dispatchFunc is the type-erased form a registered handler is stored as:
// the generic wrapper downcasts envelope.Message before calling the user's
// typed handler.
type dispatchFunc func(ctx *Context, msg Message) (any, error)

// Router is, per actor instance, the map from message type to handler.
// It is the Go realization of spec.md §4.1: lookups are by exact runtime
// type (no subtype dispatch), and inheritance ("child overrides parent")
// is realized via composeRouter rather than Router itself tracking a
// class hierarchy (Go has no classes) — see Design Notes §9 in SPEC_FULL.md.
type Router struct {
	mu       sync.RWMutex
	handlers map[reflect.Type]dispatchFunc
	names    map[string]reflect.Type
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{
		handlers: make(map[reflect.Type]dispatchFunc),
		names:    make(map[string]reflect.Type),
	}
}

// AddHandler registers h as the handler for message type M. It fails with
// ErrBadRegistration if M's short name is already registered on this
// router. AddHandler is a free function (not a Router method) because Go
// methods cannot be generic.
func AddHandler[M Message](r *Router, h func(ctx *Context, msg M) (any, error)) error {
	var zero M
	t := reflect.TypeOf(zero)
	name := messageName(t)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.names[name]; exists {
		return fmt.Errorf("actorkit: handler for message %q already registered: %w", name, ErrBadRegistration)
	}

	r.handlers[t] = func(ctx *Context, msg Message) (any, error) {
		typed, ok := msg.(M)
		if !ok {
			return nil, fmt.Errorf("actorkit: router matched %T but handler expects %T", msg, zero)
		}
		return h(ctx, typed)
	}
	r.names[name] = t
	return nil
}

// bindIfAbsent registers h for type t only if no handler is already bound,
// silently skipping otherwise. This is the mechanism composeRouter uses to
// let a concrete actor's own handlers take precedence over the base
// actor's built-ins, without Router.AddHandler's duplicate-is-an-error
// behavior getting in the way.
func (r *Router) bindIfAbsent(t reflect.Type, name string, h dispatchFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.names[name]; exists {
		return
	}
	r.handlers[t] = h
	r.names[name] = t
}

// mergeFrom copies every handler of other into r that r does not already
// have bound (by name), i.e. r's own entries win on conflict. This
// implements spec.md §4.1's inheritance rule: "seeded with its own
// directly-declared handlers first, then extended from each base's router
// with only those message types not already bound locally."
func (r *Router) mergeFrom(other *Router) {
	other.mu.RLock()
	defer other.mu.RUnlock()
	for name, t := range other.names {
		r.bindIfAbsent(t, name, other.handlers[t])
	}
}

// Match looks up the handler for message's exact runtime type. Returns
// (nil, false) if none is registered — there is no supertype fallback
// (P5: dispatch is exact).
func (r *Router) Match(message Message) (dispatchFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[reflect.TypeOf(message)]
	return h, ok
}

// LookupByName returns the registered message type for the given short
// name (a Go type name, e.g. "OrderCreated"). Fails with ErrNotFound if no
// such message type is registered.
func (r *Router) LookupByName(name string) (reflect.Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.names[name]
	if !ok {
		return nil, fmt.Errorf("actorkit: no handler registered for message %q: %w", name, ErrNotFound)
	}
	return t, nil
}
