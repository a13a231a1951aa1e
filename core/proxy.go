package core

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Proxy is a lightweight, stateful handle addressed to one actor's
// identity. It is the only way external code (or another actor) reaches an
// actor — Actor itself is never exposed outside Core/Proxy (spec.md §3:
// "all external access is through Proxy").
type Proxy struct {
	actor *Actor

	cacheMu sync.Mutex
	cache   map[string]any
}

func newProxy(actor *Actor) *Proxy {
	return &Proxy{actor: actor, cache: make(map[string]any)}
}

func (p *Proxy) String() string {
	return fmt.Sprintf("Proxy(%s)", p.actor.actorID)
}

// Identity returns the full identity of the actor this proxy addresses.
func (p *Proxy) Identity() string { return p.actor.actorID }

// Tell wraps message into a fresh Envelope(sender=ctx.Identity(),
// receiver=this actor, message) and posts it to the target actor's
// mailbox, returning the tracker. Non-blocking.
func (p *Proxy) Tell(ctx *Context, message Message) *EnvelopeTracker {
	return p.TellReplyTo(ctx, message, "")
}

// TellReplyTo is Tell with an explicit reply_to identity recorded on the
// envelope.
func (p *Proxy) TellReplyTo(ctx *Context, message Message, replyTo string) *EnvelopeTracker {
	sender := ""
	if ctx != nil {
		sender = ctx.Identity()
	}
	envelope := &Envelope{
		ID:       uuid.NewString(),
		Sender:   sender,
		Receiver: p.actor.actorID,
		Message:  message,
		ReplyTo:  replyTo,
	}
	return p.actor.Post(envelope)
}

// Ask is Tell followed by awaiting the tracker: it returns the handler's
// value, or an error — either the wrapped handler exception, or
// ErrUnhandled if no handler matched the message type.
func (p *Proxy) Ask(ctx *Context, message Message) (any, error) {
	tracker := p.Tell(ctx, message)
	return tracker.Get()
}

// WaitUntilInitialized passes through to the target actor's own
// WaitUntilInitialized.
func (p *Proxy) WaitUntilInitialized() error {
	return p.actor.WaitUntilInitialized()
}

// WaitUntilShutdown passes through to the target actor's own
// WaitUntilShutdown.
func (p *Proxy) WaitUntilShutdown() {
	p.actor.WaitUntilShutdown()
}

// CacheGet returns the value stored under key in the proxy's cache, the
// per-instance mutable key/value scratch space (spec.md §4.6). Its original
// sole purpose — supplying defaults for the
// dynamic message-name sugar — does not apply here (SPEC_FULL.md omits
// that sugar for Go), but it is kept as useful scratch space for callers
// composing partially-filled messages by hand.
func (p *Proxy) CacheGet(key string) (any, bool) {
	p.cacheMu.Lock()
	defer p.cacheMu.Unlock()
	v, ok := p.cache[key]
	return v, ok
}

// CacheSet stores value under key in the proxy's cache.
func (p *Proxy) CacheSet(key string, value any) {
	p.cacheMu.Lock()
	defer p.cacheMu.Unlock()
	p.cache[key] = value
}

// CacheDelete removes key from the proxy's cache, if present.
func (p *Proxy) CacheDelete(key string) {
	p.cacheMu.Lock()
	defer p.cacheMu.Unlock()
	delete(p.cache, key)
}
