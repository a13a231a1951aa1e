package core

import "fmt"

// Envelope is the immutable tuple wrapping a Message with delivery
// metadata. ID is a freshly generated unique string per post.
type Envelope struct {
	ID       string
	Sender   string
	Receiver string
	Message  Message
	ReplyTo  string // empty means "no reply_to"
}

func (e *Envelope) String() string {
	return fmt.Sprintf("Envelope(id=%s, sender=%s, receiver=%s, message=%T)", e.ID, e.Sender, e.Receiver, e.Message)
}

// outcomeKind distinguishes EnvelopeTracker's three mutually exclusive
// terminal shapes (Design Notes #4: "use a three-variant outcome").
type outcomeKind int

const (
	outcomePending outcomeKind = iota
	outcomeValue
	outcomeError
	outcomeUnhandled
)

// EnvelopeTracker is a one-shot future for a handler's outcome: a value, an
// error, or unhandled. Exactly one of these is ever recorded (I1).
type EnvelopeTracker struct {
	envelope *Envelope
	done     chan struct{}

	kind  outcomeKind
	value any
	err   error
}

// NewEnvelopeTracker creates a pending tracker for envelope.
func NewEnvelopeTracker(envelope *Envelope) *EnvelopeTracker {
	return &EnvelopeTracker{
		envelope: envelope,
		done:     make(chan struct{}),
	}
}

func (t *EnvelopeTracker) String() string {
	return fmt.Sprintf("EnvelopeTracker(envelope=%s)", t.envelope)
}

// resolveValue resolves the tracker with a successful handler result.
// Panics if called more than once (I1: exactly one terminal resolution).
func (t *EnvelopeTracker) resolveValue(v any) {
	t.kind = outcomeValue
	t.value = v
	close(t.done)
}

// resolveError resolves the tracker with a handler exception.
func (t *EnvelopeTracker) resolveError(err error) {
	t.kind = outcomeError
	t.err = err
	close(t.done)
}

// resolveUnhandled resolves the tracker with the distinguished unhandled outcome.
func (t *EnvelopeTracker) resolveUnhandled() {
	t.kind = outcomeUnhandled
	close(t.done)
}

// Wait blocks until the tracker resolves and returns nothing. Wait itself
// never fails; use IsHandled/Outcome to interpret the result, or Get for
// the ask-style "value or error" shortcut.
func (t *EnvelopeTracker) Wait() {
	<-t.done
}

// Done returns a channel closed once the tracker resolves, for use in
// select statements alongside other cancellation sources.
func (t *EnvelopeTracker) Done() <-chan struct{} {
	return t.done
}

// IsHandled reports whether the terminal state is not "unhandled". A
// handler that ran and raised still counts as handled.
func (t *EnvelopeTracker) IsHandled() bool {
	<-t.done
	return t.kind != outcomeUnhandled
}

// Outcome returns the tracker's terminal state as three mutually exclusive
// results: (value, nil, false) on success, (nil, err, false) on handler
// exception, (nil, nil, true) if unhandled. Blocks until resolved.
func (t *EnvelopeTracker) Outcome() (value any, err error, unhandled bool) {
	<-t.done
	switch t.kind {
	case outcomeValue:
		return t.value, nil, false
	case outcomeError:
		return nil, t.err, false
	case outcomeUnhandled:
		return nil, nil, true
	default:
		return nil, nil, false
	}
}

// Get is the ask-style accessor: it blocks for resolution and returns the
// handler's value, or an error (either ErrUnhandled or the wrapped handler
// exception).
func (t *EnvelopeTracker) Get() (any, error) {
	value, err, unhandled := t.Outcome()
	if unhandled {
		return nil, fmt.Errorf("actorkit: %s: %w", t.envelope, ErrUnhandled)
	}
	return value, err
}
