package optics

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/agustafson/Monocle/functional"
)

type nested = functional.Pair[functional.Pair[int, string], bool]

func drawNested(t *rapid.T) nested {
	return functional.NewPair(
		functional.NewPair(rapid.Int().Draw(t, "n"), rapid.String().Draw(t, "s")),
		rapid.Bool().Draw(t, "b"),
	)
}

// TestComposeAssociativity verifies (a . b) . c == a . (b . c) for a
// lens-lens-prism chain, observed through every operation of the
// resulting optional.
func TestComposeAssociativity(t *testing.T) {
	outer := First[functional.Pair[int, string], bool]()
	middle := First[int, string]()
	inner := nonNegative()

	left := ComposeOptionalPrism(ComposeLens(outer, middle).AsOptional(), inner)
	right := ComposeLensOptional(outer, ComposeLensPrism(middle, inner))

	rapid.Check(t, func(t *rapid.T) {
		s := drawNested(t)
		v := rapid.Int().Draw(t, "v")

		if left.GetOption(s) != right.GetOption(s) {
			t.Fatalf("GetOption differs: %v vs %v", left.GetOption(s), right.GetOption(s))
		}
		if left.Set(s, v) != right.Set(s, v) {
			t.Fatalf("Set differs: %v vs %v", left.Set(s, v), right.Set(s, v))
		}
		double := func(n int) int { return n * 2 }
		if left.Modify(s, double) != right.Modify(s, double) {
			t.Fatalf("Modify differs")
		}
	})
}

// TestComposeIdentity verifies that the identity iso is a left and right
// unit for composition.
func TestComposeIdentity(t *testing.T) {
	lens := First[int, string]()

	leftID := ComposeIsoLens(Identity[functional.Pair[int, string]](), lens)
	rightID := ComposeLensIso(lens, Identity[int]())

	rapid.Check(t, func(t *rapid.T) {
		s := functional.NewPair(rapid.Int().Draw(t, "n"), rapid.String().Draw(t, "s"))
		v := rapid.Int().Draw(t, "v")

		if leftID.Get(s) != lens.Get(s) || rightID.Get(s) != lens.Get(s) {
			t.Fatalf("Get differs from the original lens")
		}
		if leftID.Set(s, v) != lens.Set(s, v) || rightID.Set(s, v) != lens.Set(s, v) {
			t.Fatalf("Set differs from the original lens")
		}
	})
}

// TestComposeIsoAssociativity checks associativity for pure iso chains,
// including the reversed composite.
func TestComposeIsoAssociativity(t *testing.T) {
	swap := PairSwap[int, string]()
	swapBack := PairSwap[string, int]()

	left := ComposeIso(ComposeIso(swap, swapBack), swap)
	right := ComposeIso(swap, ComposeIso(swapBack, swap))

	rapid.Check(t, func(t *rapid.T) {
		s := functional.NewPair(rapid.Int().Draw(t, "n"), rapid.String().Draw(t, "s"))

		if left.Get(s) != right.Get(s) {
			t.Fatalf("Get differs: %v vs %v", left.Get(s), right.Get(s))
		}
		if left.Reverse().Get(left.Get(s)) != right.Reverse().Get(right.Get(s)) {
			t.Fatalf("Reverse.Get differs")
		}
	})
}

// TestLensComposePrismScenario pins the composite down on concrete values:
// focusing the first element of a pair through a non-negative match.
func TestLensComposePrismScenario(t *testing.T) {
	composed := ComposeLensPrism(First[int, string](), nonNegative())

	t.Run("matching element is focused", func(t *testing.T) {
		s := functional.NewPair(5, "x")
		if got := composed.GetOption(s); got != functional.Some(5) {
			t.Errorf("expected Some(5), got %v", got)
		}
	})

	t.Run("negative element does not match", func(t *testing.T) {
		s := functional.NewPair(-1, "x")
		if got := composed.GetOption(s); !got.IsNone() {
			t.Errorf("expected None, got %v", got)
		}
	})

	t.Run("set rewrites only a matching element", func(t *testing.T) {
		if got := composed.Set(functional.NewPair(5, "x"), 9); got != functional.NewPair(9, "x") {
			t.Errorf("expected (9, x), got %v", got)
		}
		if got := composed.Set(functional.NewPair(-1, "x"), 9); got != functional.NewPair(-1, "x") {
			t.Errorf("expected unchanged pair, got %v", got)
		}
	})
}

// TestDeepCompositionThroughTraversal walks a slice of pairs down to the
// int side with a three-kind chain.
func TestDeepCompositionThroughTraversal(t *testing.T) {
	firsts := ComposeTraversalLens(EachSlice[functional.Pair[int, string]](), First[int, string]())

	rapid.Check(t, func(t *rapid.T) {
		ns := rapid.SliceOf(rapid.Int()).Draw(t, "ns")
		source := make([]functional.Pair[int, string], len(ns))
		for i, n := range ns {
			source[i] = functional.NewPair(n, "x")
		}

		got := firsts.GetAll(source)
		if !intSlicesEqual(got, ns) {
			t.Fatalf("GetAll: expected %v, got %v", ns, got)
		}

		bumped := firsts.Modify(source, func(n int) int { return n + 1 })
		for i, p := range bumped {
			if p.First != ns[i]+1 || p.Second != "x" {
				t.Fatalf("Modify: unexpected element %v at %d", p, i)
			}
		}
	})
}

// TestReadOnlyComposition checks the getter/fold side of the lattice.
func TestReadOnlyComposition(t *testing.T) {
	firstGetter := First[functional.Pair[int, string], bool]().AsGetter()
	innerGetter := First[int, string]().AsGetter()

	t.Run("getter composed with getter stays a getter", func(t *testing.T) {
		g := ComposeGetter(firstGetter, innerGetter)
		s := functional.NewPair(functional.NewPair(7, "x"), true)
		if g.Get(s) != 7 {
			t.Errorf("expected 7, got %d", g.Get(s))
		}
	})

	t.Run("getter composed with a prism degrades to a fold", func(t *testing.T) {
		f := ComposeGetterPrism(innerGetter, nonNegative())
		if got := f.GetAll(functional.NewPair(7, "x")); !intSlicesEqual(got, []int{7}) {
			t.Errorf("expected [7], got %v", got)
		}
		if got := f.GetAll(functional.NewPair(-3, "x")); len(got) != 0 {
			t.Errorf("expected no targets, got %v", got)
		}
	})

	t.Run("fold composed with a traversal aggregates every target", func(t *testing.T) {
		pairs := NewGetter(func(p functional.Pair[[]int, string]) []int { return p.First })
		f := ComposeGetterTraversal(pairs, EachSlice[int]())
		s := functional.NewPair([]int{1, 2, 3}, "x")
		if got := f.Length(s); got != 3 {
			t.Errorf("expected 3 targets, got %d", got)
		}
		sum := FoldMap(f, functional.MonoidFor(0, func(x, y int) int { return x + y }), s,
			func(n int) int { return n })
		if sum != 6 {
			t.Errorf("expected sum 6, got %d", sum)
		}
	})
}
