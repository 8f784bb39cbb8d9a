package optics

import (
	"strconv"

	"github.com/agustafson/Monocle/functional"
)

// Stock optics for the common container shapes. Updates never mutate the
// input container: maps and slices are copied before the write.

// First creates a lens for the first element of a pair.
func First[A, B any]() Lens[functional.Pair[A, B], A] {
	return NewLens(
		func(p functional.Pair[A, B]) A { return p.First },
		func(p functional.Pair[A, B], a A) functional.Pair[A, B] {
			return functional.NewPair(a, p.Second)
		},
	)
}

// Second creates a lens for the second element of a pair.
func Second[A, B any]() Lens[functional.Pair[A, B], B] {
	return NewLens(
		func(p functional.Pair[A, B]) B { return p.Second },
		func(p functional.Pair[A, B], b B) functional.Pair[A, B] {
			return functional.NewPair(p.First, b)
		},
	)
}

// At creates a lens for a map entry viewed as an Option: setting Some
// inserts or replaces the value, setting None deletes the key.
func At[K comparable, V any](key K) Lens[map[K]V, functional.Option[V]] {
	return NewLens(
		func(m map[K]V) functional.Option[V] {
			if v, ok := m[key]; ok {
				return functional.Some(v)
			}
			return functional.None[V]()
		},
		func(m map[K]V, opt functional.Option[V]) map[K]V {
			result := make(map[K]V, len(m))
			for k, v := range m {
				result[k] = v
			}
			if opt.IsSome() {
				result[key] = opt.Unwrap()
			} else {
				delete(result, key)
			}
			return result
		},
	)
}

// MapAt creates a lens for a map value at a specific key with default.
func MapAt[K comparable, V any](key K, defaultVal V) Lens[map[K]V, V] {
	return NewLens(
		func(m map[K]V) V {
			if v, ok := m[key]; ok {
				return v
			}
			return defaultVal
		},
		func(m map[K]V, v V) map[K]V {
			result := make(map[K]V, len(m))
			for k, val := range m {
				result[k] = val
			}
			result[key] = v
			return result
		},
	)
}

// MapIndex creates an optional for the value at an existing map key;
// setting a missing key leaves the map unchanged.
func MapIndex[K comparable, V any](key K) Optional[map[K]V, V] {
	return NewOptional(
		func(m map[K]V) functional.Option[V] {
			if v, ok := m[key]; ok {
				return functional.Some(v)
			}
			return functional.None[V]()
		},
		func(m map[K]V, v V) map[K]V {
			if _, ok := m[key]; !ok {
				return m
			}
			result := make(map[K]V, len(m))
			for k, val := range m {
				result[k] = val
			}
			result[key] = v
			return result
		},
	)
}

// Index creates an optional for the slice element at a specific index;
// setting an out-of-range index leaves the slice unchanged.
func Index[T any](i int) Optional[[]T, T] {
	return NewOptional(
		func(s []T) functional.Option[T] {
			if i >= 0 && i < len(s) {
				return functional.Some(s[i])
			}
			return functional.None[T]()
		},
		func(s []T, v T) []T {
			if i < 0 || i >= len(s) {
				return s
			}
			result := make([]T, len(s))
			copy(result, s)
			result[i] = v
			return result
		},
	)
}

// SomePrism creates a prism for Option[T] that focuses on the Some case.
func SomePrism[T any]() Prism[functional.Option[T], T] {
	return NewPrism(
		func(o functional.Option[T]) functional.Option[T] { return o },
		functional.Some[T],
	)
}

// OkPrism creates a prism for Result[T] that focuses on the Ok case.
func OkPrism[T any]() Prism[functional.Result[T], T] {
	return NewPrism(
		func(r functional.Result[T]) functional.Option[T] { return r.ToOption() },
		functional.Ok[T],
	)
}

// StringToInt creates a prism matching strings that are the canonical
// decimal form of an int; "007" and "--1" do not match.
func StringToInt() Prism[string, int] {
	return NewPrism(
		func(s string) functional.Option[int] {
			n, err := strconv.Atoi(s)
			if err != nil || strconv.Itoa(n) != s {
				return functional.None[int]()
			}
			return functional.Some(n)
		},
		strconv.Itoa,
	)
}

// EachSlice creates a traversal visiting every slice element in index order.
func EachSlice[A any]() Traversal[[]A, A] {
	return NewTraversal[[]A, []A, A, A](
		func(s []A) []A { return s },
		func(_ []A, bs []A) []A { return bs },
	)
}

// EachPair creates a traversal visiting both elements of a homogeneous pair.
func EachPair[A any]() Traversal[functional.Pair[A, A], A] {
	return NewTraversal[functional.Pair[A, A], functional.Pair[A, A], A, A](
		func(p functional.Pair[A, A]) []A { return []A{p.First, p.Second} },
		func(_ functional.Pair[A, A], bs []A) functional.Pair[A, A] {
			return functional.NewPair(bs[0], bs[1])
		},
	)
}

// PairSwap creates an isomorphism exchanging the elements of a pair.
func PairSwap[A, B any]() Iso[functional.Pair[A, B], functional.Pair[B, A]] {
	return NewIso(
		func(p functional.Pair[A, B]) functional.Pair[B, A] { return p.Swap() },
		func(p functional.Pair[B, A]) functional.Pair[A, B] { return p.Swap() },
	)
}

// SliceReverse creates an isomorphism between a slice and its reversal.
func SliceReverse[A any]() Iso[[]A, []A] {
	reverse := func(s []A) []A {
		result := make([]A, len(s))
		for i, v := range s {
			result[len(s)-1-i] = v
		}
		return result
	}
	return NewIso(reverse, reverse)
}
