package core

import "reflect"

// Message is the marker interface every actor message type implements.
// Message types are expected to be frozen records: small, comparable value
// types carrying only exported fields (a message type's zero value must
// also be a valid, addressable instance — reflect-based deep copy and
// Router's type-keyed lookup both rely on that).
//
//	type OrderCreated struct {
//	    core.Base
//	    OrderID string
//	}
type Message interface {
	isMessage()
}

// Base is embedded by every concrete message type to satisfy Message.
type Base struct{}

func (Base) isMessage() {}

// Cloner is an optional interface a Message type can implement to take
// over its own deep copy, e.g. when it embeds another Message by interface
// value (TimerConfig.Message does this) and the generic structural copy in
// deepCopy would need to know the field is itself message-shaped.
type Cloner interface {
	Clone() Message
}

// deepCopyMessage returns a structurally independent copy of msg (I3:
// "after proxy.tell returns, mutating any mutable field of m has no
// observable effect on the receiver"). Messages that implement Cloner are
// asked to copy themselves; everything else goes through the generic
// reflection-based deepCopy, which walks pointers/slices/maps/interfaces
// recursively so that ordinary struct-of-value-fields messages (the common
// case) get a correct copy with no boilerplate.
func deepCopyMessage(msg Message) (Message, error) {
	if msg == nil {
		return nil, nil
	}
	if c, ok := msg.(Cloner); ok {
		return c.Clone(), nil
	}
	copied := deepCopy(reflect.ValueOf(msg))
	result, ok := copied.Interface().(Message)
	if !ok {
		return nil, errNotAMessageAfterCopy(msg)
	}
	return result, nil
}

// messageName returns the short, stable name of a message type (its Go
// type name, unqualified), used by Router.LookupByName and anywhere a
// message type needs to be referred to by its wire name rather than
// reflect.Type.
func messageName(t reflect.Type) string {
	return t.Name()
}
