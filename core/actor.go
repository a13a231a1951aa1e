package core

import (
	stdcontext "context"
	"fmt"
	"sync"

	"github.com/actorkit/actorkit/core/multiwaiter"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ActorBehavior is implemented by every concrete actor type. RegisterHandlers
// is the compile-time analogue of the Python metaclass's class-construction-
// time router build (spec.md §4.1, Design Notes "Class-level handler
// inheritance"): it registers the type's own handlers on r, and — for a type
// that wants to extend a base's behaviour — registers its own handlers
// first and then calls the base's RegisterHandlers, so its own
// registrations win (AddHandler fails with ErrBadRegistration on a second
// registration of an already-bound type and leaves the first handler in
// place, same as the Python add()'s self-duplicate check; the composition
// with the framework's own built-ins happens separately, see composeRouter).
type ActorBehavior interface {
	RegisterHandlers(r *Router)
}

// Initializer is optionally implemented by an ActorBehavior that needs
// async setup work before it starts serving (spec.md §4.5: "initialize(context)
// ... user override; may raise; default no-op"). A behavior that does not
// implement it gets the no-op default.
type Initializer interface {
	Initialize(ctx *Context) error
}

// ActorFactory builds an ActorBehavior given its base Actor (the runtime
// handle providing CreateActlet/CreateTimer/Post/etc). Core.CreateActor
// calls it exactly once per actor.
type ActorFactory func(base *Actor) ActorBehavior

// Actor is the sole owner of its mailbox and its actlets map (spec.md §4.5,
// "the hardest component"). All external access goes through Proxy; Core is
// the only other thing that ever touches an Actor directly.
type Actor struct {
	context  *Context
	actorID  string
	behavior ActorBehavior
	router   *Router

	mailbox *mailbox
	service *Service

	actletsMu sync.Mutex
	actlets   map[string]*Actlet
}

func newActor(ctx *Context, actorID string, factory ActorFactory) *Actor {
	a := &Actor{
		context: ctx,
		actorID: actorID,
		mailbox: newMailbox(),
		service: NewService(),
		actlets: make(map[string]*Actlet),
	}
	a.behavior = factory(a)
	a.router = composeRouter(a.behavior, a)
	return a
}

// composeRouter builds the effective Router for an actor: the behavior's
// own declared handlers first (so a self-duplicate within one
// RegisterHandlers is still an error, per spec.md §4.1), then the
// framework's three built-ins filling any gap the behavior did not itself
// claim (so a behavior can override ShutdownMessage/ActletDoneMessage/
// TimerDoneMessage handling if it wants to).
func composeRouter(behavior ActorBehavior, base *Actor) *Router {
	r := NewRouter()
	behavior.RegisterHandlers(r)

	builtins := NewRouter()
	_ = AddHandler(builtins, base.handleShutdown)
	_ = AddHandler(builtins, base.handleActletDone)
	_ = AddHandler(builtins, base.handleTimerDone)

	r.mergeFrom(builtins)
	return r
}

// ActorID returns the actor's full hierarchical identity.
func (a *Actor) ActorID() string { return a.actorID }

// Context returns the actor's own (envelope-free) Context.
func (a *Actor) Context() *Context { return a.context }

func (a *Actor) core() *Core { return a.context.Core() }

// start begins the actor's lifecycle on its own goroutine via its Service.
func (a *Actor) start() {
	a.service.Start(worker{
		setup:    a.setup,
		serve:    a.serveLoop,
		teardown: a.teardown,
	})
}

// setup runs the behavior's optional Initialize hook (spec.md §4.5's
// "initialize(context)"). Service.markReady (called by the Service's own
// runWorker regardless of setup's outcome) realizes I5's "initialize_event
// is set exactly once", and Service.WaitReady already re-raises a setup
// failure on every call, realizing "initialize_exception ... re-raised on
// every subsequent wait_until_initialized" without a second event needed.
func (a *Actor) setup() error {
	init, ok := a.behavior.(Initializer)
	if !ok {
		return nil
	}
	if err := init.Initialize(a.context); err != nil {
		return fmt.Errorf("actorkit: actor %q initialize: %w", a.actorID, err)
	}
	return nil
}

// teardown removes the actor from the Core registry. Service's runWorker
// calls this unconditionally — even when setup (Initialize) itself
// failed — strictly before marking its done/shutdown signal, so I6
// ("after shutdown_event is set, the actor is absent from the registry")
// holds even on a failed initialize, not just a clean shutdown.
func (a *Actor) teardown() error {
	if err := a.core().removeActor(a); err != nil {
		a.context.Exception("actor teardown: remove from registry", err)
	}
	return nil
}

// WaitUntilInitialized blocks until the actor's Initialize hook has run,
// returning its error if it failed.
func (a *Actor) WaitUntilInitialized() error {
	return a.service.WaitReady()
}

// WaitUntilShutdown blocks until the actor's serve loop has fully exited.
func (a *Actor) WaitUntilShutdown() {
	a.service.Wait()
}

// IsShutdown reports whether the actor has fully exited.
func (a *Actor) IsShutdown() bool {
	return a.service.Done()
}

// Post deep-copies envelope's message, enqueues (copy, fresh tracker) on
// this actor's mailbox, and returns the tracker. Non-blocking; the
// mailbox is unbounded, so Post never fails on the caller's behalf — a
// deep-copy failure (a message type whose structure cannot be walked,
// which should not occur for well-formed Message types) is logged and the
// original message posted uncopied rather than dropped.
func (a *Actor) Post(envelope *Envelope) *EnvelopeTracker {
	copied, err := deepCopyMessage(envelope.Message)
	if err != nil {
		a.context.Exception("post: deep copy failed, posting original message", err)
		copied = envelope.Message
	}
	envCopy := &Envelope{
		ID:       envelope.ID,
		Sender:   envelope.Sender,
		Receiver: envelope.Receiver,
		Message:  copied,
		ReplyTo:  envelope.ReplyTo,
	}
	entry := mailboxEntry{envelope: envCopy, tracker: NewEnvelopeTracker(envCopy)}
	a.mailbox.Push(entry)
	return entry.tracker
}

// TellMe wraps message in a self-addressed envelope (sender = receiver =
// this actor's identity) and posts it to its own mailbox.
func (a *Actor) TellMe(message Message) *EnvelopeTracker {
	return a.Post(&Envelope{
		ID:       uuid.NewString(),
		Sender:   a.actorID,
		Receiver: a.actorID,
		Message:  message,
	})
}

// serveLoop is the dispatch loop (spec.md §4.5). It waits on a MultiWaiter
// over two sources — the Service's stop signal, and the mailbox — and
// processes exactly one envelope at a time, the structural source of I2/P1
// (per-actor serial handler execution).
func (a *Actor) serveLoop() error {
	mw := multiwaiter.New()
	defer mw.Cancel()

	const stopKey = "stop"
	const mailboxKey = "mailbox"

	_ = mw.Add(stopKey, func(ctx stdcontext.Context, _ any) (any, error) {
		select {
		case <-a.service.WaitStop():
			return nil, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})
	_ = mw.Add(mailboxKey, func(ctx stdcontext.Context, _ any) (any, error) {
		entry, err := a.mailbox.Dequeue(ctx)
		if err != nil {
			return nil, err
		}
		return entry, nil
	})

	for {
		completed, err := mw.WaitFirst(stdcontext.Background())
		if err != nil {
			return err
		}

		if _, stopped := completed[stopKey]; stopped {
			return nil
		}

		if _, gotMail := completed[mailboxKey]; gotMail {
			value, err := mw.Result(mailboxKey)
			if err != nil {
				a.context.Exception("serve: mailbox source errored", err)
			} else if entry, ok := value.(mailboxEntry); ok {
				a.handleEntry(entry)
			}
			mw.Reset(stdcontext.Background(), mailboxKey)
		}
	}
}

// handleEntry resolves entry's tracker according to spec.md §4.5's
// dispatch rule: unhandled if no router match, otherwise the matched
// handler's value or error, run through the Core's installed middleware
// chain (logging/recovery/metrics).
func (a *Actor) handleEntry(entry mailboxEntry) {
	handler, ok := a.router.Match(entry.envelope.Message)
	if !ok {
		entry.tracker.resolveUnhandled()
		a.context.Warning("message unhandled",
			"message", messageTypeName(entry.envelope.Message),
			"sender", entry.envelope.Sender)
		return
	}

	derivedCtx := a.context.Derive(WithEnvelope(entry.envelope))
	dispatch := a.core().buildDispatch(func(ctx *Context, msg Message) (any, error) {
		return handler(ctx, msg)
	})

	value, err := dispatch(derivedCtx, entry.envelope.Message)
	if err != nil {
		entry.tracker.resolveError(err)
		return
	}
	entry.tracker.resolveValue(value)
}

// qualifyActlet returns an actlet's fully-qualified, owner-relative name
// (spec.md §6: "<owner_identity>/actlet/<name>").
func (a *Actor) qualifyActlet(relName string) string {
	return actletName(a.actorID, relName)
}

// CreateActlet spawns fn as a concurrent task owned by this actor,
// registered under name. Fails ErrBadEntryPoint if fn is nil,
// ErrDuplicateActlet if name already denotes a live actlet of this actor.
func (a *Actor) CreateActlet(name string, fn ActletFunc, configuration Message) (*Actlet, error) {
	return a.createActletAt(name, fn, configuration)
}

func (a *Actor) createActletAt(relName string, fn ActletFunc, configuration Message) (*Actlet, error) {
	if fn == nil {
		return nil, fmt.Errorf("actorkit: actlet %q: %w", relName, ErrBadEntryPoint)
	}
	qualified := a.qualifyActlet(relName)

	copiedCfg, err := deepCopyMessage(configuration)
	if err != nil {
		return nil, fmt.Errorf("actorkit: actlet %q: deep copy configuration: %w", qualified, err)
	}

	a.actletsMu.Lock()
	if _, exists := a.actlets[qualified]; exists {
		a.actletsMu.Unlock()
		return nil, fmt.Errorf("actorkit: actlet %q: %w", qualified, ErrDuplicateActlet)
	}
	actlet := newActlet(a, qualified, fn, newProxy(a), copiedCfg)
	a.actlets[qualified] = actlet
	a.actletsMu.Unlock()

	actlet.start(a.context)
	return actlet, nil
}

// CancelActlet cancels the actlet registered under name and waits for it to
// exit; it leaves the actlets map once its ActletDoneMessage is handled.
// A no-op if no such actlet exists.
func (a *Actor) CancelActlet(name string) {
	a.cancelActletAt(a.qualifyActlet(name))
}

func (a *Actor) cancelActletAt(qualified string) {
	a.actletsMu.Lock()
	actlet, ok := a.actlets[qualified]
	a.actletsMu.Unlock()
	if !ok {
		return
	}
	actlet.Cancel()
}

// IsActletExists reports whether name denotes a currently-registered
// actlet of this actor.
func (a *Actor) IsActletExists(name string) bool {
	a.actletsMu.Lock()
	defer a.actletsMu.Unlock()
	_, ok := a.actlets[a.qualifyActlet(name)]
	return ok
}

// IsTimerExists reports whether name denotes a currently-registered timer
// of this actor.
func (a *Actor) IsTimerExists(name string) bool {
	a.actletsMu.Lock()
	defer a.actletsMu.Unlock()
	_, ok := a.actlets[a.qualifyActlet(timerName(name))]
	return ok
}

// CreateTimer spawns the generic timer actlet (spec.md §4.7) under
// <identity>/actlet/timer/<name>. repetitions=0 means unbounded.
func (a *Actor) CreateTimer(name string, message Message, interval, delay float64, now bool, repetitions int) (*Actlet, error) {
	cfg := TimerConfig{
		Message:     message,
		Interval:    interval,
		Delay:       delay,
		Now:         now,
		Repetitions: repetitions,
	}
	return a.createActletAt(timerName(name), timerDriver, cfg)
}

// CancelTimer cancels the timer registered under name, like CancelActlet.
func (a *Actor) CancelTimer(name string) {
	a.cancelActletAt(a.qualifyActlet(timerName(name)))
}

// removeActlet drops name from the actlets map, called once the
// ActletDoneMessage built-in handler observes its completion.
func (a *Actor) removeActlet(qualified string) {
	a.actletsMu.Lock()
	delete(a.actlets, qualified)
	a.actletsMu.Unlock()
}

// handleShutdown is the ShutdownMessage built-in handler: cancel every
// actlet in parallel, then stop the service (spec.md §4.5, §5;
// SPEC_FULL.md's resolution of open question #2: cancel-then-stop, one
// Service.Stop(), no separate actor-level override).
func (a *Actor) handleShutdown(ctx *Context, _ ShutdownMessage) (any, error) {
	a.actletsMu.Lock()
	actlets := make([]*Actlet, 0, len(a.actlets))
	for _, actlet := range a.actlets {
		actlets = append(actlets, actlet)
	}
	a.actletsMu.Unlock()

	var group errgroup.Group
	for _, actlet := range actlets {
		actlet := actlet
		group.Go(func() error {
			actlet.Cancel()
			return nil
		})
	}
	_ = group.Wait()

	a.service.Stop()
	return nil, nil
}

// handleActletDone is the ActletDoneMessage built-in handler: if the
// actlet's result is itself a Message, re-post it to self (spec.md §4.5:
// "if result is itself a Message, tell_me(result)"), then forget the
// actlet.
func (a *Actor) handleActletDone(ctx *Context, msg ActletDoneMessage) (any, error) {
	if result, ok := msg.Result.(Message); ok {
		a.TellMe(result)
	}
	a.removeActlet(msg.Name)
	return nil, nil
}

// handleTimerDone is the TimerDoneMessage built-in handler: a no-op debug
// log, overridable by a behavior's own TimerDoneMessage registration.
func (a *Actor) handleTimerDone(ctx *Context, _ TimerDoneMessage) (any, error) {
	ctx.Debug("timer done")
	return nil, nil
}
