package optics

import "github.com/agustafson/Monocle/functional"

// Getter is a total read-only projection from a source to one target.
type Getter[S, A any] struct {
	get func(S) A
}

// NewGetter creates a getter from a projection function.
func NewGetter[S, A any](get func(S) A) Getter[S, A] {
	return Getter[S, A]{get: get}
}

// Get retrieves the focused value.
func (g Getter[S, A]) Get(s S) A {
	return g.get(s)
}

// ComposeGetter creates a getter focusing deeper.
func ComposeGetter[S, A, B any](outer Getter[S, A], inner Getter[A, B]) Getter[S, B] {
	return Getter[S, B]{get: func(s S) B { return inner.get(outer.get(s)) }}
}

// AsFold views the getter as a single-target fold.
func (g Getter[S, A]) AsFold() Fold[S, A] {
	return Fold[S, A]{
		foldMap: func(_ functional.Monoid, s S, fn func(A) any) any {
			return fn(g.get(s))
		},
	}
}
