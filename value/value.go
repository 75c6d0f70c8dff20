// Package value implements type-erased polymorphic scalars: a single Value
// type that can hold any comparable payload while exposing uniform copy,
// hash, render, equality, and ordering operations.
//
// The containable contract is the Go `comparable` constraint: every
// comparable type is equality-testable with == and hashable with
// hash/maphash, so non-comparable types are rejected at compile time.
// Printability and ordering are optional and degrade gracefully; see the
// Lessable, Equatable, Hashable, and fmt.Stringer capability interfaces.
package value

// Value holds exactly one payload of an arbitrary comparable type behind an
// erased interface. The zero Value and Empty() are equivalent: both observe
// the null-marker payload.
//
// A Value is deliberately not comparable with == (so it cannot be wrapped in
// itself and cannot silently key a native map, bypassing its own equality);
// use Equal, Less, and Hash, or the collection package for keyed containers.
//
// Assignment of a Value shares the holder, which is immutable after
// construction; Copy produces a fully independent duplicate. A Value is
// owned by one logical owner at a time and is not synchronized.
type Value struct {
	_      [0]func()
	object holder
}

// nullHolder is the sentinel the empty test compares against. It is created
// once and never mutated.
var nullHolder holder = newInstance(nullType{})

// Empty returns a Value holding the null marker.
func Empty() Value {
	return Value{object: newInstance(nullType{})}
}

// New wraps a payload in a fresh Value. Rejecting non-comparable payloads is
// a compile-time property of the constraint; there is no runtime validation.
func New[T comparable](v T) Value {
	return Value{object: newInstance(v)}
}

// load returns the owned holder, substituting the null sentinel for the zero
// Value so the holder is never nil during an operation.
func (v Value) load() holder {
	if v.object == nil {
		return nullHolder
	}
	return v.object
}

// Empty reports whether v holds the null marker. This is an equality test
// against the sentinel, not a nil check.
func (v Value) Empty() bool {
	return v.load().eq(nullHolder)
}

// String renders the payload. Payloads that are neither basic scalars nor
// fmt.Stringers render as Placeholder. Value itself is a fmt.Stringer, so a
// Value can be written to any fmt-aware sink.
func (v Value) String() string {
	return v.load().str()
}

// Hash returns the digest of the payload, equal to HashOf of the payload
// itself. It makes a Value usable as a key in hash-addressed containers.
func (v Value) Hash() uint64 {
	return v.load().hash()
}

// TypeName returns the package-qualified name of the payload type, or
// "none" for an empty Value. It is a diagnostic label; equality and
// ordering dispatch on type identity, not on this name alone.
func (v Value) TypeName() string {
	if v.Empty() {
		return "none"
	}
	return typeName(v.load().rtype())
}

// Copy returns an independent duplicate. Reassigning or mutating state
// reachable from v never changes the copy.
func (v Value) Copy() Value {
	return Value{object: v.load().copy()}
}

// Equal reports whether v and other hold the same concrete type and equal
// payloads, or are both empty.
func (v Value) Equal(other Value) bool {
	return Equal(v, other)
}

// Less reports whether v sorts before other. See the package ordering rules
// on Less.
func (v Value) Less(other Value) bool {
	return Less(v, other)
}

var (
	_ Copyable[Value]  = Value{}
	_ Equatable[Value] = Value{}
	_ Lessable[Value]  = Value{}
	_ Hashable         = Value{}
)
