package optics

import (
	"testing"

	"github.com/agustafson/Monocle/functional"
)

func celsiusFahrenheit() Iso[float64, float64] {
	return NewIso(
		func(c float64) float64 { return c*9/5 + 32 },
		func(f float64) float64 { return (f - 32) * 5 / 9 },
	)
}

func TestIsoDerivedOperations(t *testing.T) {
	iso := celsiusFahrenheit()

	t.Run("Set ignores the source", func(t *testing.T) {
		if got := iso.Set(100, 32); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("Modify goes through the target side", func(t *testing.T) {
		got := iso.Modify(0, func(f float64) float64 { return f + 9 })
		if got != 5 {
			t.Errorf("expected 5, got %v", got)
		}
	})

	t.Run("ModifyF lifts through a functor", func(t *testing.T) {
		got := iso.ModifyF(functional.OptionApplicative(), 0, func(f float64) any {
			return functional.Some[any](f + 9)
		}).(functional.Option[any])
		if got.IsNone() || got.Unwrap().(float64) != 5 {
			t.Errorf("expected Some(5), got %v", got)
		}
	})
}

func TestIsoProduct(t *testing.T) {
	product := IsoProduct(PairSwap[int, string](), celsiusFahrenheit())

	s := functional.NewPair(functional.NewPair(1, "x"), 100.0)
	got := product.Get(s)
	if got.First != functional.NewPair("x", 1) || got.Second != 212 {
		t.Errorf("unexpected product result %v", got)
	}
	if product.ReverseGet(got) != s {
		t.Error("product round-trip failed")
	}
}

func TestIsoFirstSecond(t *testing.T) {
	iso := celsiusFahrenheit()

	t.Run("IsoFirst passes the second element through", func(t *testing.T) {
		lifted := IsoFirst[float64, float64, float64, float64, string](iso)
		s := functional.NewPair(100.0, "tag")
		got := lifted.Get(s)
		if got != functional.NewPair(212.0, "tag") {
			t.Errorf("unexpected %v", got)
		}
		if lifted.ReverseGet(got) != s {
			t.Error("round-trip failed")
		}
	})

	t.Run("IsoSecond passes the first element through", func(t *testing.T) {
		lifted := IsoSecond[float64, float64, float64, float64, string](iso)
		s := functional.NewPair("tag", 100.0)
		got := lifted.Get(s)
		if got != functional.NewPair("tag", 212.0) {
			t.Errorf("unexpected %v", got)
		}
		if lifted.ReverseGet(got) != s {
			t.Error("round-trip failed")
		}
	})
}

func TestIsoDowncasts(t *testing.T) {
	iso := PairSwap[int, string]()
	s := functional.NewPair(1, "x")
	swapped := functional.NewPair("x", 1)

	t.Run("AsLens", func(t *testing.T) {
		lens := iso.AsLens()
		if lens.Get(s) != swapped {
			t.Error("lens view lost the get")
		}
		if lens.Set(s, functional.NewPair("y", 2)) != functional.NewPair(2, "y") {
			t.Error("lens view lost the set")
		}
	})

	t.Run("AsPrism always matches", func(t *testing.T) {
		prism := iso.AsPrism()
		if prism.GetOption(s) != functional.Some(swapped) {
			t.Error("prism view must always match")
		}
		if prism.ReverseGet(swapped) != s {
			t.Error("prism view lost reverseGet")
		}
	})

	t.Run("AsOptional and AsTraversal and AsFold agree", func(t *testing.T) {
		if iso.AsOptional().GetOption(s) != functional.Some(swapped) {
			t.Error("optional view differs")
		}
		all := iso.AsTraversal().GetAll(s)
		if len(all) != 1 || all[0] != swapped {
			t.Error("traversal view differs")
		}
		if iso.AsFold().HeadOption(s) != functional.Some(swapped) {
			t.Error("fold view differs")
		}
		if iso.AsGetter().Get(s) != swapped {
			t.Error("getter view differs")
		}
	})

	t.Run("AsSetter rewrites through the iso", func(t *testing.T) {
		got := iso.AsSetter().Modify(s, func(p functional.Pair[string, int]) functional.Pair[string, int] {
			return functional.NewPair(p.First+"!", p.Second+1)
		})
		if got != functional.NewPair(2, "x!") {
			t.Errorf("unexpected %v", got)
		}
	})
}

func TestPIdentity(t *testing.T) {
	id := Identity[int]()
	if id.Get(3) != 3 || id.ReverseGet(4) != 4 {
		t.Error("identity iso must pass values through")
	}
	if id.Reverse().Get(5) != 5 {
		t.Error("reversed identity must pass values through")
	}
}
