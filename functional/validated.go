package functional

// Validated represents a validation result that accumulates errors
// instead of stopping at the first one.
type Validated[E, A any] struct {
	value  A
	errors []E
	valid  bool
}

// Valid creates a valid result.
func Valid[E, A any](value A) Validated[E, A] {
	return Validated[E, A]{value: value, valid: true}
}

// Invalid creates an invalid result with errors.
func Invalid[E, A any](errors ...E) Validated[E, A] {
	return Validated[E, A]{errors: errors, valid: false}
}

// IsValid returns true if the validation passed.
func (v Validated[E, A]) IsValid() bool {
	return v.valid
}

// IsInvalid returns true if the validation failed.
func (v Validated[E, A]) IsInvalid() bool {
	return !v.valid
}

// GetValue returns the value (panics if invalid).
func (v Validated[E, A]) GetValue() A {
	if !v.valid {
		panic("cannot get value from invalid Validated")
	}
	return v.value
}

// GetErrors returns the errors (empty if valid).
func (v Validated[E, A]) GetErrors() []E {
	return v.errors
}

// MapValidated applies a function to the value if valid.
func MapValidated[E, A, B any](v Validated[E, A], fn func(A) B) Validated[E, B] {
	if !v.valid {
		return Validated[E, B]{errors: v.errors, valid: false}
	}
	return Validated[E, B]{value: fn(v.value), valid: true}
}

// CombineValidated combines two validated values, accumulating errors.
func CombineValidated[E, A, B, C any](va Validated[E, A], vb Validated[E, B], fn func(A, B) C) Validated[E, C] {
	if va.valid && vb.valid {
		return Valid[E, C](fn(va.value, vb.value))
	}
	errs := make([]E, 0, len(va.errors)+len(vb.errors))
	errs = append(errs, va.errors...)
	errs = append(errs, vb.errors...)
	return Invalid[E, C](errs...)
}

// ValidatedApplicative sequences validations, accumulating every error
// left to right. Effectful values are Validated[error, any].
func ValidatedApplicative() Applicative {
	return validatedApplicative{}
}

type validatedApplicative struct{}

func (validatedApplicative) Map(fa any, fn func(any) any) any {
	return MapValidated(fa.(Validated[error, any]), fn)
}

func (validatedApplicative) Pure(value any) any {
	return Valid[error, any](value)
}

func (validatedApplicative) Map2(fa, fb any, fn func(x, y any) any) any {
	return CombineValidated(fa.(Validated[error, any]), fb.(Validated[error, any]), fn)
}
