package value

import (
	"reflect"

	"martianoff/anyval/anyerr"
)

// Cast returns a live pointer to the payload if v currently holds exactly
// type To and is not empty, else nil. Absence is an ordinary result, not an
// error: casting a Value holding int to float64 is nil, never a coercion.
//
// The pointer aliases the payload inside v's holder; it stays valid for the
// holder's lifetime but must not be used to mutate the payload (replacement
// through assignment is the only supported mutation).
func Cast[To comparable](v *Value) *To {
	if v == nil || v.Empty() {
		return nil
	}
	p, ok := v.load().(*instance[To])
	if !ok {
		return nil
	}
	return &p.object
}

// MustCast returns the payload of v, which must hold exactly type To.
// Holding any other type, or being empty, is a programmer error: MustCast
// panics with a *anyerr.CastError rather than return a default or coerced
// payload. Callers who have not already established the type use Cast.
func MustCast[To comparable](v Value) To {
	p := Cast[To](&v)
	if p == nil {
		panic(anyerr.NewCastError(
			reflect.TypeFor[To]().String(),
			v.load().rtype().String(),
		))
	}
	return *p
}
