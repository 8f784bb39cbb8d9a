package optics

import "github.com/agustafson/Monocle/functional"

// PPrism matches one case of a sum type. GetOrModify either extracts the
// target or returns the source converted unchanged to the write side, and
// ReverseGet rebuilds a whole source from a target alone.
type PPrism[S, T, A, B any] struct {
	getOrModify func(S) functional.Either[T, A]
	reverseGet  func(B) T
}

// Prism is a monomorphic PPrism: writes keep the source type.
type Prism[S, A any] = PPrism[S, S, A, A]

// NewPPrism creates a polymorphic prism from match and construct functions.
func NewPPrism[S, T, A, B any](getOrModify func(S) functional.Either[T, A], reverseGet func(B) T) PPrism[S, T, A, B] {
	return PPrism[S, T, A, B]{getOrModify: getOrModify, reverseGet: reverseGet}
}

// NewPrism creates a prism from a partial match and a total constructor.
func NewPrism[S, A any](getOption func(S) functional.Option[A], reverseGet func(A) S) Prism[S, A] {
	return PPrism[S, S, A, A]{
		getOrModify: func(s S) functional.Either[S, A] {
			opt := getOption(s)
			if opt.IsNone() {
				return functional.Left[S, A](s)
			}
			return functional.Right[S](opt.Unwrap())
		},
		reverseGet: reverseGet,
	}
}

// GetOrModify extracts the target, or returns the untouched source on the
// write side when the prism does not match.
func (p PPrism[S, T, A, B]) GetOrModify(s S) functional.Either[T, A] {
	return p.getOrModify(s)
}

// GetOption attempts to extract the focused value.
func (p PPrism[S, T, A, B]) GetOption(s S) functional.Option[A] {
	return p.getOrModify(s).RightOption()
}

// ReverseGet constructs a whole source from the focused value.
func (p PPrism[S, T, A, B]) ReverseGet(b B) T {
	return p.reverseGet(b)
}

// Modify applies a function to the focused value if present; a mismatch
// returns the fallback unchanged.
func (p PPrism[S, T, A, B]) Modify(s S, fn func(A) B) T {
	e := p.getOrModify(s)
	if e.IsLeft() {
		return e.LeftValue()
	}
	return p.reverseGet(fn(e.RightValue()))
}

// ModifyOption applies a function to the focused value, reporting a
// mismatch as None.
func (p PPrism[S, T, A, B]) ModifyOption(s S, fn func(A) B) functional.Option[T] {
	e := p.getOrModify(s)
	if e.IsLeft() {
		return functional.None[T]()
	}
	return functional.Some(p.reverseGet(fn(e.RightValue())))
}

// Set replaces the focused value if the prism matches.
func (p PPrism[S, T, A, B]) Set(s S, b B) T {
	return p.Modify(s, func(A) B { return b })
}

// ModifyF applies an effectful function to the focused value; a mismatch
// lifts the fallback into the effect with Pure.
func (p PPrism[S, T, A, B]) ModifyF(app functional.Applicative, s S, fn func(A) any) any {
	e := p.getOrModify(s)
	if e.IsLeft() {
		return app.Pure(e.LeftValue())
	}
	return app.Map(fn(e.RightValue()), func(b any) any { return p.reverseGet(b.(B)) })
}

// ComposePrism creates a prism focusing deeper.
func ComposePrism[S, T, A, B, C, D any](outer PPrism[S, T, A, B], inner PPrism[A, B, C, D]) PPrism[S, T, C, D] {
	return PPrism[S, T, C, D]{
		getOrModify: func(s S) functional.Either[T, C] {
			outerE := outer.getOrModify(s)
			if outerE.IsLeft() {
				return functional.Left[T, C](outerE.LeftValue())
			}
			innerE := inner.getOrModify(outerE.RightValue())
			if innerE.IsLeft() {
				return functional.Left[T, C](outer.reverseGet(innerE.LeftValue()))
			}
			return functional.Right[T](innerE.RightValue())
		},
		reverseGet: func(d D) T {
			return outer.reverseGet(inner.reverseGet(d))
		},
	}
}

// AsOptional views the prism as an optional.
func (p PPrism[S, T, A, B]) AsOptional() POptional[S, T, A, B] {
	return POptional[S, T, A, B]{
		getOrModify: p.getOrModify,
		set:         p.Set,
	}
}

// AsTraversal views the prism as a zero-or-one-target traversal.
func (p PPrism[S, T, A, B]) AsTraversal() PTraversal[S, T, A, B] {
	return p.AsOptional().AsTraversal()
}

// AsSetter views the prism as a setter.
func (p PPrism[S, T, A, B]) AsSetter() PSetter[S, T, A, B] {
	return PSetter[S, T, A, B]{modify: p.Modify}
}

// AsFold views the prism as a zero-or-one-target fold.
func (p PPrism[S, T, A, B]) AsFold() Fold[S, A] {
	return p.AsTraversal().AsFold()
}
