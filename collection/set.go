package collection

import "martianoff/anyval/value"

// Set holds a collection of distinct Values, where distinctness is
// value.Equal. It is a thin wrapper over Map.
type Set struct {
	m *Map[struct{}]
}

// NewSet creates a Set holding the given values.
func NewSet(vals ...value.Value) *Set {
	s := &Set{m: NewMap[struct{}]()}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *Set) Add(v value.Value) bool {
	if s.Has(v) {
		return false
	}
	s.m.Put(v, struct{}{})
	return true
}

// Has reports whether v is present.
func (s *Set) Has(v value.Value) bool {
	_, ok := s.m.Get(v)
	return ok
}

// Remove deletes v and reports whether it was present.
func (s *Set) Remove(v value.Value) bool {
	return s.m.Delete(v)
}

// Len returns the number of distinct values.
func (s *Set) Len() int {
	return s.m.Len()
}

// Values returns the members in unspecified order.
func (s *Set) Values() []value.Value {
	return s.m.Keys()
}
