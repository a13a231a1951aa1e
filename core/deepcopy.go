package core

import (
	"fmt"
	"reflect"
)

// errNotAMessageAfterCopy reports the (should-never-happen) case where a
// structural copy of a Message stopped satisfying the Message interface.
func errNotAMessageAfterCopy(original Message) error {
	return fmt.Errorf("actorkit: %T lost its Message-ness across deep copy", original)
}

// deepCopy recursively copies v, following pointers/interfaces/slices/maps/
// arrays/structs so the result shares no mutable backing storage with v.
// There is no ecosystem deep-copy library in the reference pack (the
// teacher and its siblings only ever JSON-round-trip or pass values
// directly); since Go has no generic structural-copy builtin either, this
// is written directly against reflect rather than reached for a dependency
// that was never available, exactly spec.md Design Notes #9's fallback for
// "languages [where] messages may carry mutable payloads... perform an
// equivalent structural copy at post time."
func deepCopy(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(deepCopy(v.Elem()))
		return out

	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(deepCopy(v.Elem()))
		return out

	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.NumField(); i++ {
			field := v.Field(i)
			if !field.CanInterface() {
				// Unexported field: messages are required to carry only
				// exported fields, but embedded framework types (Base) may
				// contribute unexported state-free fields; skip safely.
				continue
			}
			out.Field(i).Set(deepCopy(field))
		}
		return out

	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out

	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out

	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(deepCopy(iter.Key()), deepCopy(iter.Value()))
		}
		return out

	default:
		// Bool, numeric, string, chan, func, unsafe.Pointer: already
		// independent when assigned by value, or not meaningfully
		// copyable (chan/func) — pass through as-is.
		return v
	}
}
