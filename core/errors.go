package core

import "errors"

// Sentinel errors for the runtime's error taxonomy. Call sites wrap these
// with fmt.Errorf("actorkit: ...: %w", ErrX) so callers can still use
// errors.Is against the sentinel while getting a contextual message.
var (
	// ErrBadRegistration is returned by AddHandler when the handler's
	// message type is already registered.
	ErrBadRegistration = errors.New("actorkit: bad handler registration")

	// ErrBadEntryPoint is returned by Actor.CreateActlet/CreateTimer when
	// the actlet entry point is nil. Whether a non-nil entry point is a
	// free function or a bound method value is not checked.
	ErrBadEntryPoint = errors.New("actorkit: bad actlet entry point")

	// ErrDuplicateID is returned by Core.CreateActor when the synthesized
	// actor id already exists in the registry.
	ErrDuplicateID = errors.New("actorkit: duplicate actor id")

	// ErrDuplicateActlet is returned by Actor.CreateActlet when the name
	// is already in use.
	ErrDuplicateActlet = errors.New("actorkit: duplicate actlet name")

	// ErrDuplicateKey is the DuplicateKey kind of the taxonomy. MultiWaiter
	// does not return it: multiwaiter.Add reports a repeated key with the
	// multiwaiter package's own ErrDuplicateKey.
	ErrDuplicateKey = errors.New("actorkit: duplicate multiwaiter key")

	// ErrNotFound covers unknown actor id, actor type, or message type.
	// MultiWaiter reports an unknown key with multiwaiter.ErrUnknownKey.
	ErrNotFound = errors.New("actorkit: not found")

	// ErrNotRunning is returned by Core operations attempted after shutdown.
	ErrNotRunning = errors.New("actorkit: core is not running")

	// ErrNotShutdown is returned by Core.removeActor when the actor is
	// still alive.
	ErrNotShutdown = errors.New("actorkit: actor is not shut down")

	// ErrUnhandled is returned by Proxy.Ask when the target actor has no
	// handler for the message type.
	ErrUnhandled = errors.New("actorkit: message unhandled")

	// ErrMissingContext is returned when a context-bound call is invoked
	// without a context.
	ErrMissingContext = errors.New("actorkit: missing context")

	// ErrNotDone mirrors the multiwaiter package's own ErrNotDone, which is
	// what MultiWaiter.Result returns when the source has not yet produced a
	// terminal value; MultiWaiter does not return this sentinel.
	ErrNotDone = errors.New("actorkit: multiwaiter source not done")
)
