package value

import (
	"fmt"
	"reflect"
)

// Placeholder is the rendering of a payload that has no textual form.
const Placeholder = "<value>"

// holder is the erasure contract behind a Value. Exactly one implementation
// exists per payload type, reached only through the owning Value.
type holder interface {
	// copy returns an independent holder with a copy of the same payload.
	copy() holder

	// hash returns the digest of the payload.
	hash() uint64

	// str returns the textual rendering of the payload, or Placeholder.
	str() string

	// eq reports whether other holds the same concrete type and an equal
	// payload. A type mismatch is false, never an error.
	eq(other holder) bool

	// lt reports whether the payload is less than other's. It requires the
	// same concrete type; on mismatch, or when the type is unordered, it is
	// false. Cross-type ordering is the caller's concern.
	lt(other holder) bool

	// rtype is the identity token of the payload type.
	rtype() reflect.Type
}

// nullType is the payload of an empty Value. It is a real stored object, not
// the absence of one, so empty values go through the same holder machinery.
type nullType struct{}

// instance is the one concrete holder, parameterized by payload type.
// It owns its payload outright.
type instance[T comparable] struct {
	object T
}

func newInstance[T comparable](v T) *instance[T] {
	return &instance[T]{object: v}
}

func (i *instance[T]) copy() holder {
	if c, ok := any(i.object).(Copyable[T]); ok {
		return &instance[T]{object: c.Copy()}
	}
	return &instance[T]{object: i.object}
}

func (i *instance[T]) hash() uint64 {
	return HashOf(i.object)
}

func (i *instance[T]) str() string {
	return render(i.object)
}

func (i *instance[T]) eq(other holder) bool {
	p, ok := other.(*instance[T])
	if !ok {
		return false
	}
	if e, ok := any(i.object).(Equatable[T]); ok {
		return e.Equal(p.object)
	}
	return i.object == p.object
}

func (i *instance[T]) lt(other holder) bool {
	p, ok := other.(*instance[T])
	if !ok {
		return false
	}
	if l, ok := any(i.object).(Lessable[T]); ok {
		return l.Less(p.object)
	}
	return lessNative(i.object, p.object)
}

func (i *instance[T]) rtype() reflect.Type {
	return reflect.TypeFor[T]()
}

// render produces the textual form of a payload: its Stringer output when it
// has one, its Sprint form when it is a basic scalar kind, and Placeholder
// otherwise.
func render(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Placeholder
	}
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return fmt.Sprint(v)
	}
	return Placeholder
}

// lessNative orders two payloads of the same static type by their native <
// when the kind supports one. Payloads of unordered kinds are never less.
func lessNative(a, b any) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if !av.IsValid() || !bv.IsValid() || av.Kind() != bv.Kind() {
		return false
	}
	switch av.Kind() {
	case reflect.Bool:
		return !av.Bool() && bv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return av.Int() < bv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return av.Uint() < bv.Uint()
	case reflect.Float32, reflect.Float64:
		return av.Float() < bv.Float()
	case reflect.String:
		return av.String() < bv.String()
	}
	return false
}
