// Package optics provides composable optics over immutable data:
// isomorphisms, lenses, prisms, optionals, traversals, setters, getters
// and folds. Optics are immutable value types built from plain functions;
// composing two optics yields a fresh optic of the weakest kind implied
// by the pair, so deep access paths behave exactly like leaf optics.
package optics

import "github.com/agustafson/Monocle/functional"

// PIso is a polymorphic isomorphism: a lossless conversion between S and
// A whose write side may change the source type to T through values of
// type B. Both directions are total and mutually inverse.
type PIso[S, T, A, B any] struct {
	get        func(S) A
	reverseGet func(B) T
}

// Iso is a monomorphic PIso: writes keep the source type.
type Iso[S, A any] = PIso[S, S, A, A]

// NewPIso creates a polymorphic isomorphism from its two directions.
func NewPIso[S, T, A, B any](get func(S) A, reverseGet func(B) T) PIso[S, T, A, B] {
	return PIso[S, T, A, B]{get: get, reverseGet: reverseGet}
}

// NewIso creates an isomorphism from its two directions.
func NewIso[S, A any](get func(S) A, reverseGet func(A) S) Iso[S, A] {
	return PIso[S, S, A, A]{get: get, reverseGet: reverseGet}
}

// PIdentity creates the polymorphic identity isomorphism.
func PIdentity[S, T any]() PIso[S, T, S, T] {
	return PIso[S, T, S, T]{
		get:        func(s S) S { return s },
		reverseGet: func(t T) T { return t },
	}
}

// Identity creates the identity isomorphism, the unit of composition.
func Identity[S any]() Iso[S, S] {
	return PIdentity[S, S]()
}

// Get converts the source into the target.
func (i PIso[S, T, A, B]) Get(s S) A {
	return i.get(s)
}

// ReverseGet converts a written value back to the source side.
func (i PIso[S, T, A, B]) ReverseGet(b B) T {
	return i.reverseGet(b)
}

// Reverse swaps the two directions of the isomorphism.
func (i PIso[S, T, A, B]) Reverse() PIso[B, A, T, S] {
	return PIso[B, A, T, S]{get: i.reverseGet, reverseGet: i.get}
}

// Modify rewrites the target through fn.
func (i PIso[S, T, A, B]) Modify(s S, fn func(A) B) T {
	return i.reverseGet(fn(i.get(s)))
}

// ModifyF rewrites the target through an effectful fn. fn returns an
// effect-wrapped B and ModifyF returns an effect-wrapped T.
func (i PIso[S, T, A, B]) ModifyF(f functional.Functor, s S, fn func(A) any) any {
	return f.Map(fn(i.get(s)), func(b any) any { return i.reverseGet(b.(B)) })
}

// Set replaces the target, ignoring the source.
func (i PIso[S, T, A, B]) Set(_ S, b B) T {
	return i.reverseGet(b)
}

// ComposeIso composes two isomorphisms into one.
func ComposeIso[S, T, A, B, C, D any](outer PIso[S, T, A, B], inner PIso[A, B, C, D]) PIso[S, T, C, D] {
	return PIso[S, T, C, D]{
		get:        func(s S) C { return inner.get(outer.get(s)) },
		reverseGet: func(d D) T { return outer.reverseGet(inner.reverseGet(d)) },
	}
}

// IsoProduct pairs two independent isomorphisms pointwise.
func IsoProduct[S1, T1, A1, B1, S2, T2, A2, B2 any](
	first PIso[S1, T1, A1, B1],
	second PIso[S2, T2, A2, B2],
) PIso[functional.Pair[S1, S2], functional.Pair[T1, T2], functional.Pair[A1, A2], functional.Pair[B1, B2]] {
	return PIso[functional.Pair[S1, S2], functional.Pair[T1, T2], functional.Pair[A1, A2], functional.Pair[B1, B2]]{
		get: func(s functional.Pair[S1, S2]) functional.Pair[A1, A2] {
			return functional.NewPair(first.get(s.First), second.get(s.Second))
		},
		reverseGet: func(b functional.Pair[B1, B2]) functional.Pair[T1, T2] {
			return functional.NewPair(first.reverseGet(b.First), second.reverseGet(b.Second))
		},
	}
}

// IsoFirst lifts an isomorphism to the first element of a pair, passing
// the second element through unchanged.
func IsoFirst[S, T, A, B, C any](i PIso[S, T, A, B]) PIso[functional.Pair[S, C], functional.Pair[T, C], functional.Pair[A, C], functional.Pair[B, C]] {
	return PIso[functional.Pair[S, C], functional.Pair[T, C], functional.Pair[A, C], functional.Pair[B, C]]{
		get: func(s functional.Pair[S, C]) functional.Pair[A, C] {
			return functional.NewPair(i.get(s.First), s.Second)
		},
		reverseGet: func(b functional.Pair[B, C]) functional.Pair[T, C] {
			return functional.NewPair(i.reverseGet(b.First), b.Second)
		},
	}
}

// IsoSecond lifts an isomorphism to the second element of a pair, passing
// the first element through unchanged.
func IsoSecond[S, T, A, B, C any](i PIso[S, T, A, B]) PIso[functional.Pair[C, S], functional.Pair[C, T], functional.Pair[C, A], functional.Pair[C, B]] {
	return PIso[functional.Pair[C, S], functional.Pair[C, T], functional.Pair[C, A], functional.Pair[C, B]]{
		get: func(s functional.Pair[C, S]) functional.Pair[C, A] {
			return functional.NewPair(s.First, i.get(s.Second))
		},
		reverseGet: func(b functional.Pair[C, B]) functional.Pair[C, T] {
			return functional.NewPair(b.First, i.reverseGet(b.Second))
		},
	}
}

// AsLens views the isomorphism as a lens.
func (i PIso[S, T, A, B]) AsLens() PLens[S, T, A, B] {
	return PLens[S, T, A, B]{
		get: i.get,
		set: func(_ S, b B) T { return i.reverseGet(b) },
	}
}

// AsPrism views the isomorphism as an always-matching prism.
func (i PIso[S, T, A, B]) AsPrism() PPrism[S, T, A, B] {
	return PPrism[S, T, A, B]{
		getOrModify: func(s S) functional.Either[T, A] { return functional.Right[T](i.get(s)) },
		reverseGet:  i.reverseGet,
	}
}

// AsOptional views the isomorphism as an optional.
func (i PIso[S, T, A, B]) AsOptional() POptional[S, T, A, B] {
	return i.AsLens().AsOptional()
}

// AsTraversal views the isomorphism as a single-target traversal.
func (i PIso[S, T, A, B]) AsTraversal() PTraversal[S, T, A, B] {
	return i.AsLens().AsTraversal()
}

// AsSetter views the isomorphism as a setter.
func (i PIso[S, T, A, B]) AsSetter() PSetter[S, T, A, B] {
	return i.AsLens().AsSetter()
}

// AsGetter views the isomorphism as a getter.
func (i PIso[S, T, A, B]) AsGetter() Getter[S, A] {
	return Getter[S, A]{get: i.get}
}

// AsFold views the isomorphism as a single-target fold.
func (i PIso[S, T, A, B]) AsFold() Fold[S, A] {
	return i.AsGetter().AsFold()
}
