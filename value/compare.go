package value

import (
	"reflect"
	"sync"
)

// Equal reports whether a and b are equal. Emptiness is decided before type
// dispatch: two empty Values are equal, an empty and a non-empty Value are
// not. Otherwise equality requires the same concrete payload type; a type
// mismatch is false, never an error, and there is no numeric coercion
// between payload types.
func Equal(a, b Value) bool {
	ae, be := a.Empty(), b.Empty()
	if ae || be {
		return ae && be
	}
	return a.load().eq(b.load())
}

// Less reports whether a sorts before b under the global order:
//
//   - an empty Value sorts before every non-empty Value, and never before
//     another empty Value;
//   - Values of different concrete types are ordered by type identity only,
//     independent of payload content (canonical type name, with a first-use
//     registration index breaking name ties), so the order is total and
//     stable within a process;
//   - Values of the same concrete type use the payload's native or Lessable
//     less-than, which is always false for unordered types.
func Less(a, b Value) bool {
	if a.Empty() {
		return !b.Empty()
	}
	if b.Empty() {
		return false
	}
	ah, bh := a.load(), b.load()
	at, bt := ah.rtype(), bh.rtype()
	if at != bt {
		return typeLess(at, bt)
	}
	return ah.lt(bh)
}

// Compare is a three-way form of Less for slices.SortFunc and friends.
// Unordered same-type payloads compare as 0 regardless of content.
func Compare(a, b Value) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return +1
	default:
		return 0
	}
}

// Equals tests a Value against a bare payload. It is false unless v holds
// exactly type T; then the payloads compare with T's equality. The relation
// is symmetric: there is no directional variant to disagree with.
func Equals[T comparable](v Value, x T) bool {
	p := Cast[T](&v)
	if p == nil {
		return false
	}
	if e, ok := any(*p).(Equatable[T]); ok {
		return e.Equal(x)
	}
	return *p == x
}

// typeRanks assigns every payload type a first-use index, giving the
// cross-type order a total tie-break when two distinct types share a
// canonical name. The registry only grows and entries are never changed.
var (
	typeRanksMu sync.Mutex
	typeRanks   = map[reflect.Type]int{}
)

// typeLess is the content-independent order over payload type identities.
func typeLess(a, b reflect.Type) bool {
	an, bn := typeName(a), typeName(b)
	if an != bn {
		return an < bn
	}
	return typeRank(a) < typeRank(b)
}

// typeName returns a package-qualified name where one exists, so the order
// does not depend on import aliasing or display formatting.
func typeName(t reflect.Type) string {
	if pkg := t.PkgPath(); pkg != "" {
		return pkg + "." + t.Name()
	}
	return t.String()
}

func typeRank(t reflect.Type) int {
	typeRanksMu.Lock()
	defer typeRanksMu.Unlock()
	if r, ok := typeRanks[t]; ok {
		return r
	}
	r := len(typeRanks)
	typeRanks[t] = r
	return r
}
