package functional

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestOptionMapPreservesStructure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Map on Some returns Some(fn(value))", prop.ForAll(
		func(n int) bool {
			fn := func(x int) int { return x * 2 }
			mapped := Some(n).Map(fn)
			return mapped.IsSome() && mapped.Unwrap() == fn(n)
		},
		gen.Int(),
	))

	properties.Property("Map on None returns None", prop.ForAll(
		func(n int) bool {
			return None[int]().Map(func(x int) int { return x * 2 }).IsNone()
		},
		gen.Int(),
	))

	properties.Property("MapOption changes the element type", prop.ForAll(
		func(n int) bool {
			mapped := MapOption(Some(n), func(x int) bool { return x > 0 })
			return mapped == Some(n > 0)
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestOptionBasicOperations(t *testing.T) {
	t.Run("Some creates present option", func(t *testing.T) {
		o := Some(42)
		if !o.IsSome() || o.IsNone() {
			t.Error("expected a present option")
		}
		if o.Unwrap() != 42 {
			t.Errorf("expected 42, got %d", o.Unwrap())
		}
	})

	t.Run("None creates empty option", func(t *testing.T) {
		o := None[int]()
		if o.IsSome() || !o.IsNone() {
			t.Error("expected an empty option")
		}
	})

	t.Run("UnwrapOr returns default on None", func(t *testing.T) {
		if None[int]().UnwrapOr(100) != 100 {
			t.Error("expected default value")
		}
		if Some(42).UnwrapOr(100) != 42 {
			t.Error("expected actual value")
		}
	})

	t.Run("Unwrap panics on None", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		None[int]().Unwrap()
	})

	t.Run("Filter keeps matching values", func(t *testing.T) {
		if Some(42).Filter(func(x int) bool { return x > 0 }) != Some(42) {
			t.Error("expected Some(42)")
		}
		if Some(-1).Filter(func(x int) bool { return x > 0 }).IsSome() {
			t.Error("expected None")
		}
	})

	t.Run("FlatMapOption chains", func(t *testing.T) {
		half := func(x int) Option[int] {
			if x%2 == 0 {
				return Some(x / 2)
			}
			return None[int]()
		}
		if FlatMapOption(Some(4), half) != Some(2) {
			t.Error("expected Some(2)")
		}
		if FlatMapOption(Some(3), half).IsSome() {
			t.Error("expected None")
		}
	})

	t.Run("MatchOption selects the right branch", func(t *testing.T) {
		got := MatchOption(Some(2), func(n int) string { return "some" }, func() string { return "none" })
		if got != "some" {
			t.Errorf("expected some, got %s", got)
		}
		got = MatchOption(None[int](), func(n int) string { return "some" }, func() string { return "none" })
		if got != "none" {
			t.Errorf("expected none, got %s", got)
		}
	})
}
