package collections

import (
	"reflect"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func comparator[T any](cmp func(a, b T) int) utils.Comparator {
	return func(a, b interface{}) int {
		return cmp(cast[T](a), cast[T](b))
	}
}

func cast[T any](v interface{}) (t T) {
	if v == nil {
		return t
	}
	return v.(T)
}

func typed[T any](raw []interface{}) []T {
	arr := make([]T, 0, len(raw))
	for _, v := range raw {
		arr = append(arr, cast[T](v))
	}
	return arr
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// hashable reports whether v can be stored in a hash-based collection: comparing v
// must not panic on an incomparable dynamic type, and v must equal itself, which
// excludes NaN.
func hashable(v any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return v == v
}
