package core

import (
	"context"
	"fmt"
)

// Context is the ambient capability bundle carried through every actor
// call: a reference to the Core, a logger, the caller's identity, and the
// envelope currently being handled (if any). It is cheap to derive: calling
// Derive produces a new Context overriding any subset of its fields.
//
// It also carries a standard context.Context, used solely as the
// cancellation signal an Actlet's entry point observes at its suspension
// points (Done/Err/StdContext below) — spec.md §4.5 fixes an actlet
// entry point's signature at exactly (context, proxy, configuration), so
// cancellation rides inside this Context rather than as a fourth parameter.
type Context struct {
	core     *Core
	log      Logger
	identity string
	envelope *Envelope
	stdCtx   context.Context
}

// NewContext creates a root-ish Context. identity is usually RootIdentity
// for the system's first context, or an actor's full id thereafter.
func NewContext(core *Core, log Logger, identity string) *Context {
	if log == nil {
		log = NopLogger{}
	}
	return &Context{
		core:     core,
		log:      log.Bind("identity", identity),
		identity: identity,
		stdCtx:   context.Background(),
	}
}

func (c *Context) String() string {
	return fmt.Sprintf("Context(identity=%q, envelope=%s)", c.identity, c.envelope)
}

// Core returns the bundled Core.
func (c *Context) Core() *Core { return c.core }

// Log returns the bundled Logger.
func (c *Context) Log() Logger { return c.log }

// Identity returns this context's identity string.
func (c *Context) Identity() string { return c.identity }

// Envelope returns the envelope currently being handled, or nil.
func (c *Context) Envelope() *Envelope { return c.envelope }

// Sender returns the sender identity of the currently handled envelope.
// Panics if there is no envelope; callers only use it from within a
// handler, where an envelope is always present.
func (c *Context) Sender() string {
	if c.envelope == nil {
		panic("actorkit: Context.Sender called outside of envelope handling")
	}
	return c.envelope.Sender
}

// deriveOption overrides one field of a derived Context.
type deriveOption func(*Context)

// WithCore overrides the Core of a derived context.
func WithCore(core *Core) deriveOption {
	return func(c *Context) { c.core = core }
}

// WithLog overrides the Logger of a derived context.
func WithLog(log Logger) deriveOption {
	return func(c *Context) { c.log = log }
}

// WithIdentity overrides the identity of a derived context, re-binding the
// logger's "identity" field to match.
func WithIdentity(identity string) deriveOption {
	return func(c *Context) {
		c.identity = identity
		c.log = c.log.Bind("identity", identity)
	}
}

// WithEnvelope overrides the envelope of a derived context.
func WithEnvelope(envelope *Envelope) deriveOption {
	return func(c *Context) { c.envelope = envelope }
}

// WithStdContext overrides the cancellation signal of a derived context.
func WithStdContext(stdCtx context.Context) deriveOption {
	return func(c *Context) { c.stdCtx = stdCtx }
}

// WithLogBindings derives a context whose logger has the given key/value
// pairs permanently bound, without changing identity.
func WithLogBindings(kv ...any) deriveOption {
	return func(c *Context) {
		if len(kv) > 0 {
			c.log = c.log.Bind(kv...)
		}
	}
}

// Derive produces a new Context, overriding any subset of {core, log,
// identity, envelope} via the With* options. The receiver is left
// unmodified.
func (c *Context) Derive(opts ...deriveOption) *Context {
	derived := &Context{
		core:     c.core,
		log:      c.log,
		identity: c.identity,
		envelope: c.envelope,
		stdCtx:   c.stdCtx,
	}
	for _, opt := range opts {
		opt(derived)
	}
	return derived
}

// Bind temporarily augments the logger's bound fields; call the returned
// restore function (typically via defer) to revert. Mirrors the Python
// context manager `with context.bind(**kv): ...`, adapted to Go's
// defer-based scoping since Go lacks `with` blocks.
func (c *Context) Bind(kv ...any) (restore func()) {
	if c == nil {
		panic(ErrMissingContext)
	}
	old := c.log
	c.log = c.log.Bind(kv...)
	return func() { c.log = old }
}

// BindCall runs fn with ctx's logger temporarily bound to kv, restoring it
// afterward. This is the functional-call analogue of the Python
// `@Context.bind_function(**kv)` decorator: since Go has no parameter-list
// introspection, the context to bind is passed explicitly rather than
// discovered by argument name. Returns ErrMissingContext if ctx is nil.
func BindCall(ctx *Context, kv []any, fn func()) error {
	if ctx == nil {
		return ErrMissingContext
	}
	restore := ctx.Bind(kv...)
	defer restore()
	fn()
	return nil
}

// Debug logs at debug level using the bundled logger.
func (c *Context) Debug(msg string, kv ...any) { c.log.Debug(msg, kv...) }

// Info logs at info level using the bundled logger.
func (c *Context) Info(msg string, kv ...any) { c.log.Info(msg, kv...) }

// Warning logs at warning level using the bundled logger.
func (c *Context) Warning(msg string, kv ...any) { c.log.Warning(msg, kv...) }

// Error logs at error level using the bundled logger.
func (c *Context) Error(msg string, kv ...any) { c.log.Error(msg, kv...) }

// Fatal logs at fatal level using the bundled logger.
func (c *Context) Fatal(msg string, kv ...any) { c.log.Fatal(msg, kv...) }

// Exception logs an error with exception-level treatment (stack context is
// left to the underlying Logger implementation).
func (c *Context) Exception(msg string, err error, kv ...any) { c.log.Exception(msg, err, kv...) }

// Done returns the cancellation channel of this context's standard
// context.Context, closed once an owning Actlet is cancelled. Outside of an
// actlet's entry point this is the background context and never closes.
func (c *Context) Done() <-chan struct{} { return c.stdCtx.Done() }

// Err returns the reason Done is closed, or nil.
func (c *Context) Err() error { return c.stdCtx.Err() }

// StdContext returns the underlying standard context.Context, for handing
// to library calls (e.g. networking, database calls inside an actlet) that
// expect one.
func (c *Context) StdContext() context.Context { return c.stdCtx }

// CreateActor creates a child actor under this context's identity. See
// Core.CreateActor for the full contract.
func (c *Context) CreateActor(actorID string, factory ActorFactory, logBindings ...any) (*Proxy, error) {
	return c.core.CreateActor(c, actorID, factory, logBindings...)
}

// GetProxy resolves a Proxy to actorID, relative to this context's identity.
func (c *Context) GetProxy(actorID string) (*Proxy, error) {
	return c.core.GetProxy(c, actorID)
}
