package optics

// PSetter is the write-only optic: it can rewrite its targets but never
// read them back. Every writable optic degrades to a setter.
type PSetter[S, T, A, B any] struct {
	modify func(s S, fn func(A) B) T
}

// Setter is a monomorphic PSetter: writes keep the source type.
type Setter[S, A any] = PSetter[S, S, A, A]

// NewSetter creates a setter from a modify function.
func NewSetter[S, T, A, B any](modify func(S, func(A) B) T) PSetter[S, T, A, B] {
	return PSetter[S, T, A, B]{modify: modify}
}

// Modify rewrites every target through fn.
func (st PSetter[S, T, A, B]) Modify(s S, fn func(A) B) T {
	return st.modify(s, fn)
}

// Set replaces every target with the same value.
func (st PSetter[S, T, A, B]) Set(s S, b B) T {
	return st.modify(s, func(A) B { return b })
}

// ComposeSetter creates a setter rewriting the inner targets of every
// outer target.
func ComposeSetter[S, T, A, B, C, D any](outer PSetter[S, T, A, B], inner PSetter[A, B, C, D]) PSetter[S, T, C, D] {
	return PSetter[S, T, C, D]{
		modify: func(s S, fn func(C) D) T {
			return outer.modify(s, func(a A) B { return inner.modify(a, fn) })
		},
	}
}
