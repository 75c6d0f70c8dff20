package value

// Copyable is implemented by payload types that need a deep copy when the
// containing Value is duplicated. Types without it are copied by assignment.
type Copyable[T any] interface {
	Copy() T
}

// Equatable is implemented by payload types that define their own equality.
// Types without it are compared with ==.
//
// A type whose Equal admits payloads that differ under == must also
// implement Hashable so that equal payloads share a digest; otherwise
// hash-addressed use of the containing Value (collection.Map, collection.Set)
// can miss entries that compare Equal.
type Equatable[T any] interface {
	Equal(other T) bool
}

// Lessable is implemented by payload types that define a strict less-than
// relation. Basic scalar kinds are ordered natively; any other type without
// Lessable is unordered and never compares less than anything.
type Lessable[T any] interface {
	Less(other T) bool
}

// Hashable is implemented by payload types that supply their own digest.
// Types without it are hashed with hash/maphash over their comparable
// representation.
type Hashable interface {
	Hash() uint64
}
