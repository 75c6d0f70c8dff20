package collection_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"martianoff/anyval/collection"
	"martianoff/anyval/value"
)

// folded compares case-insensitively; its Hash folds case the same way so
// Equal payloads share a digest, as Equatable requires of map keys.
type folded string

func (f folded) Equal(other folded) bool {
	return strings.EqualFold(string(f), string(other))
}

func (f folded) Hash() uint64 {
	return value.HashOf(strings.ToLower(string(f)))
}

func TestMap(t *testing.T) {
	t.Run("put and get", func(t *testing.T) {
		m := collection.NewMap[string]()
		m.Put(value.New(42), "int")
		m.Put(value.New("foo"), "string")

		got, ok := m.Get(value.New(42))
		assert.True(t, ok)
		assert.Equal(t, "int", got)

		got, ok = m.Get(value.New("foo"))
		assert.True(t, ok)
		assert.Equal(t, "string", got)

		assert.Equal(t, 2, m.Len())
	})

	t.Run("heterogeneous keys never collapse", func(t *testing.T) {
		m := collection.NewMap[int]()
		m.Put(value.New(1), 1)
		m.Put(value.New("1"), 2)
		m.Put(value.New(1.0), 3)
		m.Put(value.Empty(), 4)
		assert.Equal(t, 4, m.Len())

		got, ok := m.Get(value.New("1"))
		assert.True(t, ok)
		assert.Equal(t, 2, got)

		got, ok = m.Get(value.Empty())
		assert.True(t, ok)
		assert.Equal(t, 4, got)
	})

	t.Run("put replaces", func(t *testing.T) {
		m := collection.NewMap[string]()
		m.Put(value.New("k"), "a")
		m.Put(value.New("k"), "b")
		assert.Equal(t, 1, m.Len())

		got, _ := m.Get(value.New("k"))
		assert.Equal(t, "b", got)
	})

	t.Run("missing key", func(t *testing.T) {
		m := collection.NewMap[string]()
		_, ok := m.Get(value.New("missing"))
		assert.False(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		m := collection.NewMap[string]()
		m.Put(value.New(1), "one")
		assert.True(t, m.Delete(value.New(1)))
		assert.False(t, m.Delete(value.New(1)))
		assert.Equal(t, 0, m.Len())
	})

	t.Run("keys are copies of the inserted values", func(t *testing.T) {
		m := collection.NewMap[string]()
		k := value.New("stable")
		m.Put(k, "v")
		k = value.New("rebound")
		_ = k

		keys := m.Keys()
		assert.Len(t, keys, 1)
		assert.True(t, value.Equals(keys[0], "stable"))
	})

	t.Run("equatable keys with a consistent hash collapse", func(t *testing.T) {
		m := collection.NewMap[int]()
		m.Put(value.New(folded("Foo")), 1)
		m.Put(value.New(folded("FOO")), 2)
		assert.Equal(t, 1, m.Len())

		got, ok := m.Get(value.New(folded("foo")))
		assert.True(t, ok)
		assert.Equal(t, 2, got)
	})

	t.Run("for each", func(t *testing.T) {
		m := collection.NewMap[int]()
		m.Put(value.New("a"), 1)
		m.Put(value.New("b"), 2)

		sum := 0
		m.ForEach(func(_ value.Value, v int) bool {
			sum += v
			return true
		})
		assert.Equal(t, 3, sum)

		visits := 0
		m.ForEach(func(value.Value, int) bool {
			visits++
			return false
		})
		assert.Equal(t, 1, visits)
	})
}
