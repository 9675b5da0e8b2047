package collections

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashMap(t *testing.T) {
	type Mock struct {
		A string
		B int
	}
	s := NewHashMap[string, *Mock]()
	require.Nil(t, s.Put("aa", &Mock{
		A: "aa",
		B: 22,
	}, false))
	require.Nil(t, s.Put("bb", &Mock{
		A: "bb",
		B: 55,
	}, false))
	require.ErrorIs(t, s.Put("bb", &Mock{A: "bb"}, false), ErrValueExisted)
	require.Equal(t, 2, s.Size())
	require.Equal(t, true, s.Contains("aa"))
	require.Equal(t, true, s.Contains("bb"))
	require.Equal(t, false, s.Contains("cc"))
	keys := s.Keys()
	sort.Strings(keys)
	require.Equal(t, []string{"aa", "bb"}, keys)
	require.Nil(t, s.Put("bb", &Mock{A: "bb", B: 66}, true))
	v, err := s.Get("bb")
	require.Nil(t, err)
	require.Equal(t, 66, v.B)
	_, err = s.Get("cc")
	require.ErrorIs(t, err, ErrValueNotExisted)
	require.Nil(t, s.Delete("bb"))
	require.ErrorIs(t, s.Delete("bb"), ErrValueNotExisted)
	require.Equal(t, false, s.Contains("bb"))
	require.Equal(t, 1, s.Size())
	s.Clear()
	require.Equal(t, 0, s.Size())
}

func TestLinkedHashMap(t *testing.T) {
	s := NewLinkedHashMap[string, int]()
	require.Nil(t, s.Put("c", 3, false))
	require.Nil(t, s.Put("a", 1, false))
	require.Nil(t, s.Put("b", 2, false))
	require.Equal(t, []string{"c", "a", "b"}, s.Keys())
	require.Nil(t, s.Put("c", 30, true))
	require.Equal(t, []string{"c", "a", "b"}, s.Keys())
	v, err := s.Get("c")
	require.Nil(t, err)
	require.Equal(t, 30, v)
	require.Nil(t, s.Delete("a"))
	require.Equal(t, []string{"c", "b"}, s.Keys())
	_, err = s.Get("a")
	require.ErrorIs(t, err, ErrValueNotExisted)
	s.Clear()
	require.Equal(t, 0, s.Size())
	require.Equal(t, []string{}, s.Keys())
}

func TestTreeMap(t *testing.T) {
	s := NewTreeMap[int, string]()
	require.Nil(t, s.Put(3, "c", false))
	require.Nil(t, s.Put(1, "a", false))
	require.Nil(t, s.Put(2, "b", false))
	require.ErrorIs(t, s.Put(2, "bb", false), ErrValueExisted)
	require.Equal(t, []int{1, 2, 3}, s.Keys())
	require.Nil(t, s.Delete(2))
	require.Equal(t, []int{1, 3}, s.Keys())
	require.Equal(t, 2, s.Size())
}

func TestTreeMapRejectsNilKeys(t *testing.T) {
	type Mock struct {
		A int
	}
	s := NewTreeMapWith[*Mock, string](func(a, b *Mock) int {
		return Compare(a.A, b.A)
	})
	require.ErrorIs(t, s.Put(nil, "x", false), ErrUnsupportedValue)
	require.Equal(t, false, s.Contains(nil))
	require.Nil(t, s.Put(&Mock{A: 2}, "b", false))
	require.Nil(t, s.Put(&Mock{A: 1}, "a", false))
	keys := s.Keys()
	require.Equal(t, 2, len(keys))
	require.Equal(t, 1, keys[0].A)
	require.Equal(t, true, s.Contains(&Mock{A: 2}))
}

func TestHashMapsRejectUnhashableKeys(t *testing.T) {
	maps := map[string]Map[any, int]{
		"hash":   NewHashMap[any, int](),
		"linked": NewLinkedHashMap[any, int](),
	}
	for name, m := range maps {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, m.Put([]int{1}, 1, false), ErrUnsupportedValue)
			require.ErrorIs(t, m.Put(math.NaN(), 1, true), ErrUnsupportedValue)
			require.Equal(t, false, m.Contains([]int{1}))
			_, err := m.Get([]int{1})
			require.ErrorIs(t, err, ErrValueNotExisted)
			require.ErrorIs(t, m.Delete([]int{1}), ErrValueNotExisted)
			require.Nil(t, m.Put("k", 1, false))
			require.Equal(t, 1, m.Size())
		})
	}
}
