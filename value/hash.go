package value

import "hash/maphash"

// hashSeed is shared by every digest the package computes, so equal payloads
// in independent Values agree. Digests are stable within a process, not
// across runs.
var hashSeed = maphash.MakeSeed()

// HashOf returns the digest of a bare payload: its own Hash when it
// implements Hashable, otherwise a maphash digest over its comparable
// representation. HashOf(x) == New(x).Hash() for every containable x.
func HashOf[T comparable](v T) uint64 {
	if h, ok := any(v).(Hashable); ok {
		return h.Hash()
	}
	return maphash.Comparable(hashSeed, v)
}
