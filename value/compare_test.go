package value_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"martianoff/anyval/value"
)

// folded compares case-insensitively, overriding ==.
type folded string

func (f folded) Equal(other folded) bool {
	return strings.EqualFold(string(f), string(other))
}

func TestEqual(t *testing.T) {
	t.Run("reflexive", func(t *testing.T) {
		for _, v := range []value.Value{
			value.New(42),
			value.New("foo"),
			value.New(rgb{1, 2, 3}),
			value.Empty(),
		} {
			assert.True(t, v.Equal(v))
		}
	})

	t.Run("same type same payload", func(t *testing.T) {
		assert.True(t, value.Equal(value.New(42), value.New(42)))
		assert.False(t, value.Equal(value.New(42), value.New(43)))
	})

	t.Run("type mismatch is false, not an error", func(t *testing.T) {
		assert.False(t, value.Equal(value.New(1), value.New("foo")))
		assert.False(t, value.Equal(value.New("foo"), value.New(1)))
	})

	t.Run("no numeric coercion", func(t *testing.T) {
		assert.False(t, value.Equal(value.New(1), value.New(1.0)))
		assert.False(t, value.Equal(value.New(int32(1)), value.New(int64(1))))
	})

	t.Run("empty laws", func(t *testing.T) {
		assert.True(t, value.Equal(value.Empty(), value.Empty()))
		assert.False(t, value.Equal(value.Empty(), value.New(0)))
		assert.False(t, value.Equal(value.New(0), value.Empty()))
	})

	t.Run("equatable payload overrides ==", func(t *testing.T) {
		assert.True(t, value.Equal(value.New(folded("Foo")), value.New(folded("foo"))))
		assert.False(t, value.Equal(value.New(folded("foo")), value.New(folded("bar"))))
	})
}

func TestEquals(t *testing.T) {
	v := value.New(42)

	t.Run("matching payload", func(t *testing.T) {
		assert.True(t, value.Equals(v, 42))
		assert.False(t, value.Equals(v, 43))
	})

	t.Run("type mismatch", func(t *testing.T) {
		assert.False(t, value.Equals(v, 42.0))
		assert.False(t, value.Equals(v, "42"))
	})

	t.Run("empty never equals a payload", func(t *testing.T) {
		assert.False(t, value.Equals(value.Empty(), 0))
	})

	t.Run("equatable payload", func(t *testing.T) {
		assert.True(t, value.Equals(value.New(folded("Foo")), folded("foo")))
	})
}

func TestLess(t *testing.T) {
	t.Run("same type native order", func(t *testing.T) {
		assert.True(t, value.Less(value.New(1), value.New(2)))
		assert.False(t, value.Less(value.New(2), value.New(1)))
		assert.True(t, value.Less(value.New("bar"), value.New("foo")))
		assert.True(t, value.Less(value.New(1.5), value.New(2.5)))
		assert.True(t, value.Less(value.New(uint(1)), value.New(uint(2))))
	})

	t.Run("irreflexive", func(t *testing.T) {
		for _, v := range []value.Value{
			value.New(1),
			value.New("foo"),
			value.New(rgb{1, 2, 3}),
			value.Empty(),
		} {
			assert.False(t, value.Less(v, v))
		}
	})

	t.Run("cross-type order is total", func(t *testing.T) {
		a, b := value.New(1), value.New("foo")
		assert.True(t, value.Less(a, b) != value.Less(b, a))
	})

	t.Run("cross-type order ignores content", func(t *testing.T) {
		// Whatever direction int sorts against string, it must not depend
		// on the payloads.
		dir := value.Less(value.New(1), value.New("foo"))
		assert.Equal(t, dir, value.Less(value.New(999), value.New("")))
	})

	t.Run("empty sorts first", func(t *testing.T) {
		assert.True(t, value.Less(value.Empty(), value.New(1)))
		assert.True(t, value.Less(value.Empty(), value.New("foo")))
		assert.False(t, value.Less(value.New(1), value.Empty()))
		assert.False(t, value.Less(value.Empty(), value.Empty()))
	})

	t.Run("unordered payloads never sort", func(t *testing.T) {
		a, b := value.New(rgb{1, 2, 3}), value.New(rgb{4, 5, 6})
		assert.False(t, value.Less(a, b))
		assert.False(t, value.Less(b, a))
	})

	t.Run("lessable payload", func(t *testing.T) {
		assert.True(t, value.Less(value.New(semver{1, 2}), value.New(semver{1, 10})))
		assert.False(t, value.Less(value.New(semver{2, 0}), value.New(semver{1, 10})))
	})

	t.Run("false sorts before true", func(t *testing.T) {
		assert.True(t, value.Less(value.New(false), value.New(true)))
		assert.False(t, value.Less(value.New(true), value.New(false)))
		assert.False(t, value.Less(value.New(false), value.New(false)))
		assert.False(t, value.Less(value.New(true), value.New(true)))
	})
}

func TestCompare(t *testing.T) {
	t.Run("three way", func(t *testing.T) {
		assert.Equal(t, -1, value.Compare(value.New(1), value.New(2)))
		assert.Equal(t, +1, value.Compare(value.New(2), value.New(1)))
		assert.Equal(t, 0, value.Compare(value.New(2), value.New(2)))
	})

	t.Run("sorts empty first then by type then by payload", func(t *testing.T) {
		vals := []value.Value{
			value.New("foo"),
			value.New(2),
			value.Empty(),
			value.New("bar"),
			value.New(1),
		}
		slices.SortStableFunc(vals, value.Compare)

		assert.True(t, vals[0].Empty())
		// ints sort before strings under the canonical type name order
		assert.Equal(t, "1", vals[1].String())
		assert.Equal(t, "2", vals[2].String())
		assert.Equal(t, "bar", vals[3].String())
		assert.Equal(t, "foo", vals[4].String())
	})
}
