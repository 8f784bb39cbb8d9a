package optics

import "github.com/agustafson/Monocle/functional"

// POptional focuses a part that may be absent. Unlike a prism it cannot
// rebuild a source from the target alone: Set needs the original source
// to splice the value back in, and is total even on a miss.
type POptional[S, T, A, B any] struct {
	getOrModify func(S) functional.Either[T, A]
	set         func(S, B) T
}

// Optional is a monomorphic POptional: writes keep the source type.
type Optional[S, A any] = POptional[S, S, A, A]

// NewPOptional creates a polymorphic optional from match and set functions.
func NewPOptional[S, T, A, B any](getOrModify func(S) functional.Either[T, A], set func(S, B) T) POptional[S, T, A, B] {
	return POptional[S, T, A, B]{getOrModify: getOrModify, set: set}
}

// NewOptional creates an optional from a partial getter and a total setter.
func NewOptional[S, A any](getOption func(S) functional.Option[A], set func(S, A) S) Optional[S, A] {
	return POptional[S, S, A, A]{
		getOrModify: func(s S) functional.Either[S, A] {
			opt := getOption(s)
			if opt.IsNone() {
				return functional.Left[S, A](s)
			}
			return functional.Right[S](opt.Unwrap())
		},
		set: set,
	}
}

// GetOrModify extracts the target, or returns the untouched source on the
// write side when the target is absent.
func (o POptional[S, T, A, B]) GetOrModify(s S) functional.Either[T, A] {
	return o.getOrModify(s)
}

// GetOption attempts to extract the focused value.
func (o POptional[S, T, A, B]) GetOption(s S) functional.Option[A] {
	return o.getOrModify(s).RightOption()
}

// Set replaces the focused value. Total: on a miss it returns the source
// converted unchanged.
func (o POptional[S, T, A, B]) Set(s S, b B) T {
	return o.set(s, b)
}

// SetOption replaces the focused value, reporting a miss as None.
func (o POptional[S, T, A, B]) SetOption(s S, b B) functional.Option[T] {
	return o.ModifyOption(s, func(A) B { return b })
}

// Modify applies a function to the focused value if present.
func (o POptional[S, T, A, B]) Modify(s S, fn func(A) B) T {
	e := o.getOrModify(s)
	if e.IsLeft() {
		return e.LeftValue()
	}
	return o.set(s, fn(e.RightValue()))
}

// ModifyOption applies a function to the focused value, reporting a miss
// as None.
func (o POptional[S, T, A, B]) ModifyOption(s S, fn func(A) B) functional.Option[T] {
	e := o.getOrModify(s)
	if e.IsLeft() {
		return functional.None[T]()
	}
	return functional.Some(o.set(s, fn(e.RightValue())))
}

// ModifyF applies an effectful function to the focused value; a miss
// lifts the fallback into the effect with Pure.
func (o POptional[S, T, A, B]) ModifyF(app functional.Applicative, s S, fn func(A) any) any {
	e := o.getOrModify(s)
	if e.IsLeft() {
		return app.Pure(e.LeftValue())
	}
	return app.Map(fn(e.RightValue()), func(b any) any { return o.set(s, b.(B)) })
}

// ComposeOptional creates an optional focusing deeper.
func ComposeOptional[S, T, A, B, C, D any](outer POptional[S, T, A, B], inner POptional[A, B, C, D]) POptional[S, T, C, D] {
	return POptional[S, T, C, D]{
		getOrModify: func(s S) functional.Either[T, C] {
			outerE := outer.getOrModify(s)
			if outerE.IsLeft() {
				return functional.Left[T, C](outerE.LeftValue())
			}
			innerE := inner.getOrModify(outerE.RightValue())
			if innerE.IsLeft() {
				return functional.Left[T, C](outer.set(s, innerE.LeftValue()))
			}
			return functional.Right[T](innerE.RightValue())
		},
		set: func(s S, d D) T {
			return outer.Modify(s, func(a A) B { return inner.set(a, d) })
		},
	}
}

// AsTraversal views the optional as a zero-or-one-target traversal.
func (o POptional[S, T, A, B]) AsTraversal() PTraversal[S, T, A, B] {
	return PTraversal[S, T, A, B]{
		modifyF: func(app functional.Applicative, s S, fn func(A) any) any {
			return o.ModifyF(app, s, fn)
		},
	}
}

// AsSetter views the optional as a setter.
func (o POptional[S, T, A, B]) AsSetter() PSetter[S, T, A, B] {
	return PSetter[S, T, A, B]{modify: o.Modify}
}

// AsFold views the optional as a zero-or-one-target fold.
func (o POptional[S, T, A, B]) AsFold() Fold[S, A] {
	return o.AsTraversal().AsFold()
}
