package optics

import "github.com/agustafson/Monocle/functional"

// Fold aggregates zero or more read-only targets through a monoid. Its
// whole behavior is the foldMap shape `(A -> M) -> S -> M`, with the
// monoid type erased to any behind a functional.Monoid capability.
type Fold[S, A any] struct {
	foldMap func(m functional.Monoid, s S, fn func(A) any) any
}

// NewFold builds a fold from a target enumerator.
func NewFold[S, A any](getAll func(S) []A) Fold[S, A] {
	return Fold[S, A]{
		foldMap: func(m functional.Monoid, s S, fn func(A) any) any {
			acc := m.Empty()
			for _, a := range getAll(s) {
				acc = m.Combine(acc, fn(a))
			}
			return acc
		},
	}
}

// FoldMap maps every target of the fold into M and combines the results
// left to right. m must be a monoid over M.
func FoldMap[M, S, A any](f Fold[S, A], m functional.Monoid, s S, fn func(A) M) M {
	return f.foldMap(m, s, func(a A) any { return fn(a) }).(M)
}

// GetAll returns every target in visit order.
func (f Fold[S, A]) GetAll(s S) []A {
	m := functional.MonoidFor([]A(nil), func(x, y []A) []A {
		return append(append([]A(nil), x...), y...)
	})
	return FoldMap(f, m, s, func(a A) []A { return []A{a} })
}

// HeadOption returns the first target, if any.
func (f Fold[S, A]) HeadOption(s S) functional.Option[A] {
	m := functional.MonoidFor(functional.None[A](), func(x, y functional.Option[A]) functional.Option[A] {
		if x.IsSome() {
			return x
		}
		return y
	})
	return FoldMap(f, m, s, functional.Some[A])
}

// Length counts the targets.
func (f Fold[S, A]) Length(s S) int {
	m := functional.MonoidFor(0, func(x, y int) int { return x + y })
	return FoldMap(f, m, s, func(A) int { return 1 })
}

// IsEmpty reports whether the source holds no target.
func (f Fold[S, A]) IsEmpty(s S) bool {
	return f.Length(s) == 0
}

// Exist reports whether any target satisfies the predicate.
func (f Fold[S, A]) Exist(s S, predicate func(A) bool) bool {
	m := functional.MonoidFor(false, func(x, y bool) bool { return x || y })
	return FoldMap(f, m, s, predicate)
}

// All reports whether every target satisfies the predicate.
func (f Fold[S, A]) All(s S, predicate func(A) bool) bool {
	m := functional.MonoidFor(true, func(x, y bool) bool { return x && y })
	return FoldMap(f, m, s, predicate)
}

// Find returns the first target satisfying the predicate.
func (f Fold[S, A]) Find(s S, predicate func(A) bool) functional.Option[A] {
	m := functional.MonoidFor(functional.None[A](), func(x, y functional.Option[A]) functional.Option[A] {
		if x.IsSome() {
			return x
		}
		return y
	})
	return FoldMap(f, m, s, func(a A) functional.Option[A] {
		return functional.Some(a).Filter(predicate)
	})
}

// ComposeFold creates a fold aggregating the inner targets of every
// outer target.
func ComposeFold[S, A, B any](outer Fold[S, A], inner Fold[A, B]) Fold[S, B] {
	return Fold[S, B]{
		foldMap: func(m functional.Monoid, s S, fn func(B) any) any {
			return outer.foldMap(m, s, func(a A) any { return inner.foldMap(m, a, fn) })
		},
	}
}
