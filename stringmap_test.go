package hashtab

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringMapAddFindRemove(t *testing.T) {
	m := NewStringMap[string]()

	m.Add("one", "alpha")
	m.Add("two", "beta")
	require.Equal(t, 2, m.Len())

	v, ok := m.Find("one")
	require.True(t, ok)
	require.Equal(t, "alpha", v)

	_, ok = m.Find("three")
	require.False(t, ok)

	v, ok = m.Remove("one")
	require.True(t, ok)
	require.Equal(t, "alpha", v)
	require.Equal(t, 1, m.Len())

	_, ok = m.Find("one")
	require.False(t, ok)

	_, ok = m.Remove("one")
	require.False(t, ok)
}

func TestStringMapInsertReplaces(t *testing.T) {
	m := NewStringMap[int]()

	_, replaced := m.Insert("key", 1)
	require.False(t, replaced)
	require.Equal(t, 1, m.Len())

	prev, replaced := m.Insert("key", 2)
	require.True(t, replaced)
	require.Equal(t, 1, prev)
	require.Equal(t, 1, m.Len())

	v, ok := m.Find("key")
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestStringMapAddAllowsDuplicateKeys(t *testing.T) {
	m := NewStringMap[int]()
	m.Add("dup", 1)
	m.Add("dup", 2)
	require.Equal(t, 2, m.Len())

	_, ok := m.Remove("dup")
	require.True(t, ok)
	_, ok = m.Remove("dup")
	require.True(t, ok)
	_, ok = m.Remove("dup")
	require.False(t, ok)
}

func TestStringMapGrowsUnderLoad(t *testing.T) {
	const numEntries = 100
	m := NewStringMap[int]()
	for i := 0; i < numEntries; i++ {
		m.Add(fmt.Sprintf("key-%d", i), i)
	}

	require.Equal(t, numEntries, m.Len())
	require.GreaterOrEqual(t, m.Grows(), 1)
	for i := 0; i < numEntries; i++ {
		v, ok := m.Find(fmt.Sprintf("key-%d", i))
		require.True(t, ok, "key-%d", i)
		require.Equal(t, i, v)
	}
}

func TestStringMapShrinks(t *testing.T) {
	m := NewStringMap[int](WithSize(8), WithShrinkEnabled())
	for i := 0; i < 100; i++ {
		m.Add(fmt.Sprintf("key-%d", i), i)
	}
	for i := 0; i < 95; i++ {
		_, ok := m.Remove(fmt.Sprintf("key-%d", i))
		require.True(t, ok, "key-%d", i)
	}

	require.GreaterOrEqual(t, m.Shrinks(), 1)
	require.GreaterOrEqual(t, m.Size(), 8)
	for i := 95; i < 100; i++ {
		v, ok := m.Find(fmt.Sprintf("key-%d", i))
		require.True(t, ok, "key-%d", i)
		require.Equal(t, i, v)
	}
}

func TestStringMapRange(t *testing.T) {
	m := NewStringMap[int]()
	want := map[string]int{}
	for i := 0; i < 50; i++ {
		key := fmt.Sprintf("key-%d", i)
		m.Add(key, i)
		want[key] = i
	}

	got := map[string]int{}
	m.Range(func(key string, value int) bool {
		got[key] = value
		return true
	})
	require.Equal(t, want, got)
}

func TestStringMapWithHasher(t *testing.T) {
	for name, hasher := range map[string]func(string) uint64{
		"elf":       ELFHash,
		"djb":       DJBHash,
		"colliding": func(string) uint64 { return 42 },
	} {
		t.Run(name, func(t *testing.T) {
			m := NewStringMapWithHasher[int](hasher, WithSize(4))
			for i := 0; i < 40; i++ {
				m.Add(fmt.Sprintf("key-%d", i), i)
			}
			require.Equal(t, 40, m.Len())
			for i := 0; i < 40; i++ {
				v, ok := m.Find(fmt.Sprintf("key-%d", i))
				require.True(t, ok, "key-%d", i)
				require.Equal(t, i, v)
			}
		})
	}

	require.Panics(t, func() { NewStringMapWithHasher[int](nil) })
}
