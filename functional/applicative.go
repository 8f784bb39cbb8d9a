package functional

// Go has no higher-kinded type parameters, so effect capabilities are
// expressed as interfaces over any: an effectful value F[X] travels as an
// any, and the capability knows how to combine such values. Callers wrap
// at the boundary and unwrap the final result with a type assertion.
//
// Implementations must satisfy the usual Functor/Applicative/Monoid laws;
// the library trusts them and does not verify this at runtime.

// Functor describes an effect whose contained value can be mapped over.
type Functor interface {
	// Map applies fn to the value inside the effect fa.
	Map(fa any, fn func(any) any) any
}

// Applicative extends Functor with pure injection and pairwise sequencing.
type Applicative interface {
	Functor
	// Pure wraps a plain value in the effect.
	Pure(value any) any
	// Map2 combines two effectful values, sequencing fa before fb.
	Map2(fa, fb any, fn func(x, y any) any) any
}

// Monoid describes a type with an associative Combine and an identity Empty.
type Monoid interface {
	Empty() any
	Combine(x, y any) any
}

// MonoidFor adapts a typed identity value and combine function into a Monoid.
func MonoidFor[M any](empty M, combine func(M, M) M) Monoid {
	return monoidFor[M]{empty: empty, combine: combine}
}

type monoidFor[M any] struct {
	empty   M
	combine func(M, M) M
}

func (m monoidFor[M]) Empty() any {
	return m.empty
}

func (m monoidFor[M]) Combine(x, y any) any {
	return m.combine(x.(M), y.(M))
}

// IdentityApplicative is the no-effect Applicative: values pass through
// unchanged and sequencing is plain function application.
func IdentityApplicative() Applicative {
	return identityApplicative{}
}

type identityApplicative struct{}

func (identityApplicative) Map(fa any, fn func(any) any) any {
	return fn(fa)
}

func (identityApplicative) Pure(value any) any {
	return value
}

func (identityApplicative) Map2(fa, fb any, fn func(x, y any) any) any {
	return fn(fa, fb)
}

// ConstApplicative discards computed results and accumulates the monoid
// values carried by the effects. Effectful values are monoid values.
func ConstApplicative(m Monoid) Applicative {
	return constApplicative{m: m}
}

type constApplicative struct {
	m Monoid
}

func (constApplicative) Map(fa any, _ func(any) any) any {
	return fa
}

func (c constApplicative) Pure(_ any) any {
	return c.m.Empty()
}

func (c constApplicative) Map2(fa, fb any, _ func(x, y any) any) any {
	return c.m.Combine(fa, fb)
}

// OptionApplicative sequences computations that may be absent; one None
// makes the whole computation None. Effectful values are Option[any].
func OptionApplicative() Applicative {
	return optionApplicative{}
}

type optionApplicative struct{}

func (optionApplicative) Map(fa any, fn func(any) any) any {
	o := fa.(Option[any])
	if o.IsNone() {
		return o
	}
	return Some(fn(o.Unwrap()))
}

func (optionApplicative) Pure(value any) any {
	return Some(value)
}

func (optionApplicative) Map2(fa, fb any, fn func(x, y any) any) any {
	a := fa.(Option[any])
	b := fb.(Option[any])
	if a.IsNone() || b.IsNone() {
		return None[any]()
	}
	return Some(fn(a.Unwrap(), b.Unwrap()))
}

// ResultApplicative sequences computations that may fail, keeping the
// first error encountered. Effectful values are Result[any].
func ResultApplicative() Applicative {
	return resultApplicative{}
}

type resultApplicative struct{}

func (resultApplicative) Map(fa any, fn func(any) any) any {
	r := fa.(Result[any])
	if r.IsErr() {
		return r
	}
	return Ok(fn(r.Unwrap()))
}

func (resultApplicative) Pure(value any) any {
	return Ok(value)
}

func (resultApplicative) Map2(fa, fb any, fn func(x, y any) any) any {
	a := fa.(Result[any])
	if a.IsErr() {
		return a
	}
	b := fb.(Result[any])
	if b.IsErr() {
		return b
	}
	return Ok(fn(a.Unwrap(), b.Unwrap()))
}

// SliceApplicative sequences nondeterministic computations: Map2 combines
// every pairing of the two inputs, left operand varying slowest.
// Effectful values are []any.
func SliceApplicative() Applicative {
	return sliceApplicative{}
}

type sliceApplicative struct{}

func (sliceApplicative) Map(fa any, fn func(any) any) any {
	xs := fa.([]any)
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}
	return out
}

func (sliceApplicative) Pure(value any) any {
	return []any{value}
}

func (sliceApplicative) Map2(fa, fb any, fn func(x, y any) any) any {
	xs := fa.([]any)
	ys := fb.([]any)
	out := make([]any, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			out = append(out, fn(x, y))
		}
	}
	return out
}
