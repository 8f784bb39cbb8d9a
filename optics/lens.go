package optics

import "github.com/agustafson/Monocle/functional"

// PLens is a polymorphic lens: a total getter and a total setter for a
// part that occurs exactly once in the source.
type PLens[S, T, A, B any] struct {
	get func(S) A
	set func(S, B) T
}

// Lens is a monomorphic PLens: writes keep the source type.
type Lens[S, A any] = PLens[S, S, A, A]

// NewPLens creates a polymorphic lens from get and set functions.
func NewPLens[S, T, A, B any](get func(S) A, set func(S, B) T) PLens[S, T, A, B] {
	return PLens[S, T, A, B]{get: get, set: set}
}

// NewLens creates a lens from get and set functions.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return PLens[S, S, A, A]{get: get, set: set}
}

// Get retrieves the focused value.
func (l PLens[S, T, A, B]) Get(s S) A {
	return l.get(s)
}

// Set returns a new structure with the focused value replaced.
func (l PLens[S, T, A, B]) Set(s S, b B) T {
	return l.set(s, b)
}

// Modify applies a function to the focused value.
func (l PLens[S, T, A, B]) Modify(s S, fn func(A) B) T {
	return l.set(s, fn(l.get(s)))
}

// ModifyF applies an effectful function to the focused value. fn returns
// an effect-wrapped B and ModifyF returns an effect-wrapped T.
func (l PLens[S, T, A, B]) ModifyF(f functional.Functor, s S, fn func(A) any) any {
	return f.Map(fn(l.get(s)), func(b any) any { return l.set(s, b.(B)) })
}

// ComposeLens creates a lens focusing deeper.
func ComposeLens[S, T, A, B, C, D any](outer PLens[S, T, A, B], inner PLens[A, B, C, D]) PLens[S, T, C, D] {
	return PLens[S, T, C, D]{
		get: func(s S) C {
			return inner.get(outer.get(s))
		},
		set: func(s S, d D) T {
			return outer.set(s, inner.set(outer.get(s), d))
		},
	}
}

// AsOptional views the lens as an always-matching optional.
func (l PLens[S, T, A, B]) AsOptional() POptional[S, T, A, B] {
	return POptional[S, T, A, B]{
		getOrModify: func(s S) functional.Either[T, A] { return functional.Right[T](l.get(s)) },
		set:         l.set,
	}
}

// AsTraversal views the lens as a single-target traversal.
func (l PLens[S, T, A, B]) AsTraversal() PTraversal[S, T, A, B] {
	return PTraversal[S, T, A, B]{
		modifyF: func(app functional.Applicative, s S, fn func(A) any) any {
			return l.ModifyF(app, s, fn)
		},
	}
}

// AsSetter views the lens as a setter.
func (l PLens[S, T, A, B]) AsSetter() PSetter[S, T, A, B] {
	return PSetter[S, T, A, B]{modify: l.Modify}
}

// AsGetter views the lens as a getter.
func (l PLens[S, T, A, B]) AsGetter() Getter[S, A] {
	return Getter[S, A]{get: l.get}
}

// AsFold views the lens as a single-target fold.
func (l PLens[S, T, A, B]) AsFold() Fold[S, A] {
	return l.AsGetter().AsFold()
}
