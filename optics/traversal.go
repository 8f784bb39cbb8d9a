package optics

import "github.com/agustafson/Monocle/functional"

// PTraversal focuses zero or more targets inside a source, visited in a
// fixed order with effects sequenced left to right. Its whole behavior is
// the modifyF shape `(A -> F[B]) -> S -> F[T]`, with the effect F erased
// to any behind a functional.Applicative capability.
type PTraversal[S, T, A, B any] struct {
	modifyF func(app functional.Applicative, s S, fn func(A) any) any
}

// Traversal is a monomorphic PTraversal: writes keep the source type.
type Traversal[S, A any] = PTraversal[S, S, A, A]

// NewTraversal builds a traversal from a target enumerator and a
// rebuilder. rebuild receives exactly one written value per enumerated
// target, in enumeration order.
func NewTraversal[S, T, A, B any](getAll func(S) []A, rebuild func(S, []B) T) PTraversal[S, T, A, B] {
	return PTraversal[S, T, A, B]{
		modifyF: func(app functional.Applicative, s S, fn func(A) any) any {
			acc := app.Pure([]B(nil))
			for _, a := range getAll(s) {
				acc = app.Map2(acc, fn(a), func(bs, b any) any {
					return append(append([]B(nil), bs.([]B)...), b.(B))
				})
			}
			return app.Map(acc, func(bs any) any { return rebuild(s, bs.([]B)) })
		},
	}
}

// ModifyF rewrites every target through an effectful fn, sequencing the
// effects left to right. fn returns effect-wrapped B values and ModifyF
// returns an effect-wrapped T.
func (t PTraversal[S, T, A, B]) ModifyF(app functional.Applicative, s S, fn func(A) any) any {
	return t.modifyF(app, s, fn)
}

// Modify rewrites every target through fn.
func (t PTraversal[S, T, A, B]) Modify(s S, fn func(A) B) T {
	out := t.modifyF(functional.IdentityApplicative(), s, func(a A) any { return fn(a) })
	return out.(T)
}

// Set replaces every target with the same value.
func (t PTraversal[S, T, A, B]) Set(s S, b B) T {
	return t.Modify(s, func(A) B { return b })
}

// GetAll returns every target in visit order.
func (t PTraversal[S, T, A, B]) GetAll(s S) []A {
	return t.AsFold().GetAll(s)
}

// ComposeTraversal creates a traversal visiting the inner targets of
// every outer target.
func ComposeTraversal[S, T, A, B, C, D any](outer PTraversal[S, T, A, B], inner PTraversal[A, B, C, D]) PTraversal[S, T, C, D] {
	return PTraversal[S, T, C, D]{
		modifyF: func(app functional.Applicative, s S, fn func(C) any) any {
			return outer.modifyF(app, s, func(a A) any {
				return inner.modifyF(app, a, fn)
			})
		},
	}
}

// AsSetter views the traversal as a setter.
func (t PTraversal[S, T, A, B]) AsSetter() PSetter[S, T, A, B] {
	return PSetter[S, T, A, B]{modify: t.Modify}
}

// AsFold views the traversal as a fold over the same targets, in the
// same order.
func (t PTraversal[S, T, A, B]) AsFold() Fold[S, A] {
	return Fold[S, A]{
		foldMap: func(m functional.Monoid, s S, fn func(A) any) any {
			return t.modifyF(functional.ConstApplicative(m), s, func(a A) any { return fn(a) })
		},
	}
}
