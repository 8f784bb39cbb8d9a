package optics

// Cross-kind composition. The result of composing two optic kinds is the
// least upper bound of the pair under
//
//	Iso < Lens < Optional < Traversal < Setter
//	Iso < Prism < Optional
//	Iso < Getter < Fold, Traversal < Fold (read side)
//
// Every function here routes both operands through their downcast views
// into the same-kind composition of the result kind, so each behavior is
// implemented exactly once, in the kind that owns it. Read-only kinds
// (Getter, Fold) never compose with Setter: they share no capability.

// ComposeIsoLens composes an isomorphism with a lens into a lens.
func ComposeIsoLens[S, T, A, B, C, D any](outer PIso[S, T, A, B], inner PLens[A, B, C, D]) PLens[S, T, C, D] {
	return ComposeLens(outer.AsLens(), inner)
}

// ComposeIsoPrism composes an isomorphism with a prism into a prism.
func ComposeIsoPrism[S, T, A, B, C, D any](outer PIso[S, T, A, B], inner PPrism[A, B, C, D]) PPrism[S, T, C, D] {
	return ComposePrism(outer.AsPrism(), inner)
}

// ComposeIsoOptional composes an isomorphism with an optional into an optional.
func ComposeIsoOptional[S, T, A, B, C, D any](outer PIso[S, T, A, B], inner POptional[A, B, C, D]) POptional[S, T, C, D] {
	return ComposeOptional(outer.AsOptional(), inner)
}

// ComposeIsoTraversal composes an isomorphism with a traversal into a traversal.
func ComposeIsoTraversal[S, T, A, B, C, D any](outer PIso[S, T, A, B], inner PTraversal[A, B, C, D]) PTraversal[S, T, C, D] {
	return ComposeTraversal(outer.AsTraversal(), inner)
}

// ComposeIsoSetter composes an isomorphism with a setter into a setter.
func ComposeIsoSetter[S, T, A, B, C, D any](outer PIso[S, T, A, B], inner PSetter[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer.AsSetter(), inner)
}

// ComposeIsoGetter composes an isomorphism with a getter into a getter.
func ComposeIsoGetter[S, T, A, B, C any](outer PIso[S, T, A, B], inner Getter[A, C]) Getter[S, C] {
	return ComposeGetter(outer.AsGetter(), inner)
}

// ComposeIsoFold composes an isomorphism with a fold into a fold.
func ComposeIsoFold[S, T, A, B, C any](outer PIso[S, T, A, B], inner Fold[A, C]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner)
}

// ComposeLensIso composes a lens with an isomorphism into a lens.
func ComposeLensIso[S, T, A, B, C, D any](outer PLens[S, T, A, B], inner PIso[A, B, C, D]) PLens[S, T, C, D] {
	return ComposeLens(outer, inner.AsLens())
}

// ComposeLensPrism composes a lens with a prism; the match may fail, so
// the result is an optional.
func ComposeLensPrism[S, T, A, B, C, D any](outer PLens[S, T, A, B], inner PPrism[A, B, C, D]) POptional[S, T, C, D] {
	return ComposeOptional(outer.AsOptional(), inner.AsOptional())
}

// ComposeLensOptional composes a lens with an optional into an optional.
func ComposeLensOptional[S, T, A, B, C, D any](outer PLens[S, T, A, B], inner POptional[A, B, C, D]) POptional[S, T, C, D] {
	return ComposeOptional(outer.AsOptional(), inner)
}

// ComposeLensTraversal composes a lens with a traversal into a traversal.
func ComposeLensTraversal[S, T, A, B, C, D any](outer PLens[S, T, A, B], inner PTraversal[A, B, C, D]) PTraversal[S, T, C, D] {
	return ComposeTraversal(outer.AsTraversal(), inner)
}

// ComposeLensSetter composes a lens with a setter into a setter.
func ComposeLensSetter[S, T, A, B, C, D any](outer PLens[S, T, A, B], inner PSetter[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer.AsSetter(), inner)
}

// ComposeLensGetter composes a lens with a getter into a getter.
func ComposeLensGetter[S, T, A, B, C any](outer PLens[S, T, A, B], inner Getter[A, C]) Getter[S, C] {
	return ComposeGetter(outer.AsGetter(), inner)
}

// ComposeLensFold composes a lens with a fold into a fold.
func ComposeLensFold[S, T, A, B, C any](outer PLens[S, T, A, B], inner Fold[A, C]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner)
}

// ComposePrismIso composes a prism with an isomorphism into a prism.
func ComposePrismIso[S, T, A, B, C, D any](outer PPrism[S, T, A, B], inner PIso[A, B, C, D]) PPrism[S, T, C, D] {
	return ComposePrism(outer, inner.AsPrism())
}

// ComposePrismLens composes a prism with a lens into an optional.
func ComposePrismLens[S, T, A, B, C, D any](outer PPrism[S, T, A, B], inner PLens[A, B, C, D]) POptional[S, T, C, D] {
	return ComposeOptional(outer.AsOptional(), inner.AsOptional())
}

// ComposePrismOptional composes a prism with an optional into an optional.
func ComposePrismOptional[S, T, A, B, C, D any](outer PPrism[S, T, A, B], inner POptional[A, B, C, D]) POptional[S, T, C, D] {
	return ComposeOptional(outer.AsOptional(), inner)
}

// ComposePrismTraversal composes a prism with a traversal into a traversal.
func ComposePrismTraversal[S, T, A, B, C, D any](outer PPrism[S, T, A, B], inner PTraversal[A, B, C, D]) PTraversal[S, T, C, D] {
	return ComposeTraversal(outer.AsTraversal(), inner)
}

// ComposePrismSetter composes a prism with a setter into a setter.
func ComposePrismSetter[S, T, A, B, C, D any](outer PPrism[S, T, A, B], inner PSetter[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer.AsSetter(), inner)
}

// ComposePrismGetter composes a prism with a getter; the prism may miss,
// so the result is a fold.
func ComposePrismGetter[S, T, A, B, C any](outer PPrism[S, T, A, B], inner Getter[A, C]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner.AsFold())
}

// ComposePrismFold composes a prism with a fold into a fold.
func ComposePrismFold[S, T, A, B, C any](outer PPrism[S, T, A, B], inner Fold[A, C]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner)
}

// ComposeOptionalIso composes an optional with an isomorphism into an optional.
func ComposeOptionalIso[S, T, A, B, C, D any](outer POptional[S, T, A, B], inner PIso[A, B, C, D]) POptional[S, T, C, D] {
	return ComposeOptional(outer, inner.AsOptional())
}

// ComposeOptionalLens composes an optional with a lens into an optional.
func ComposeOptionalLens[S, T, A, B, C, D any](outer POptional[S, T, A, B], inner PLens[A, B, C, D]) POptional[S, T, C, D] {
	return ComposeOptional(outer, inner.AsOptional())
}

// ComposeOptionalPrism composes an optional with a prism into an optional.
func ComposeOptionalPrism[S, T, A, B, C, D any](outer POptional[S, T, A, B], inner PPrism[A, B, C, D]) POptional[S, T, C, D] {
	return ComposeOptional(outer, inner.AsOptional())
}

// ComposeOptionalTraversal composes an optional with a traversal into a traversal.
func ComposeOptionalTraversal[S, T, A, B, C, D any](outer POptional[S, T, A, B], inner PTraversal[A, B, C, D]) PTraversal[S, T, C, D] {
	return ComposeTraversal(outer.AsTraversal(), inner)
}

// ComposeOptionalSetter composes an optional with a setter into a setter.
func ComposeOptionalSetter[S, T, A, B, C, D any](outer POptional[S, T, A, B], inner PSetter[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer.AsSetter(), inner)
}

// ComposeOptionalGetter composes an optional with a getter into a fold.
func ComposeOptionalGetter[S, T, A, B, C any](outer POptional[S, T, A, B], inner Getter[A, C]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner.AsFold())
}

// ComposeOptionalFold composes an optional with a fold into a fold.
func ComposeOptionalFold[S, T, A, B, C any](outer POptional[S, T, A, B], inner Fold[A, C]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner)
}

// ComposeTraversalIso composes a traversal with an isomorphism into a traversal.
func ComposeTraversalIso[S, T, A, B, C, D any](outer PTraversal[S, T, A, B], inner PIso[A, B, C, D]) PTraversal[S, T, C, D] {
	return ComposeTraversal(outer, inner.AsTraversal())
}

// ComposeTraversalLens composes a traversal with a lens into a traversal.
func ComposeTraversalLens[S, T, A, B, C, D any](outer PTraversal[S, T, A, B], inner PLens[A, B, C, D]) PTraversal[S, T, C, D] {
	return ComposeTraversal(outer, inner.AsTraversal())
}

// ComposeTraversalPrism composes a traversal with a prism into a traversal.
func ComposeTraversalPrism[S, T, A, B, C, D any](outer PTraversal[S, T, A, B], inner PPrism[A, B, C, D]) PTraversal[S, T, C, D] {
	return ComposeTraversal(outer, inner.AsTraversal())
}

// ComposeTraversalOptional composes a traversal with an optional into a traversal.
func ComposeTraversalOptional[S, T, A, B, C, D any](outer PTraversal[S, T, A, B], inner POptional[A, B, C, D]) PTraversal[S, T, C, D] {
	return ComposeTraversal(outer, inner.AsTraversal())
}

// ComposeTraversalSetter composes a traversal with a setter into a setter.
func ComposeTraversalSetter[S, T, A, B, C, D any](outer PTraversal[S, T, A, B], inner PSetter[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer.AsSetter(), inner)
}

// ComposeTraversalGetter composes a traversal with a getter into a fold.
func ComposeTraversalGetter[S, T, A, B, C any](outer PTraversal[S, T, A, B], inner Getter[A, C]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner.AsFold())
}

// ComposeTraversalFold composes a traversal with a fold into a fold.
func ComposeTraversalFold[S, T, A, B, C any](outer PTraversal[S, T, A, B], inner Fold[A, C]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner)
}

// ComposeSetterIso composes a setter with an isomorphism into a setter.
func ComposeSetterIso[S, T, A, B, C, D any](outer PSetter[S, T, A, B], inner PIso[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer, inner.AsSetter())
}

// ComposeSetterLens composes a setter with a lens into a setter.
func ComposeSetterLens[S, T, A, B, C, D any](outer PSetter[S, T, A, B], inner PLens[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer, inner.AsSetter())
}

// ComposeSetterPrism composes a setter with a prism into a setter.
func ComposeSetterPrism[S, T, A, B, C, D any](outer PSetter[S, T, A, B], inner PPrism[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer, inner.AsSetter())
}

// ComposeSetterOptional composes a setter with an optional into a setter.
func ComposeSetterOptional[S, T, A, B, C, D any](outer PSetter[S, T, A, B], inner POptional[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer, inner.AsSetter())
}

// ComposeSetterTraversal composes a setter with a traversal into a setter.
func ComposeSetterTraversal[S, T, A, B, C, D any](outer PSetter[S, T, A, B], inner PTraversal[A, B, C, D]) PSetter[S, T, C, D] {
	return ComposeSetter(outer, inner.AsSetter())
}

// ComposeGetterIso composes a getter with an isomorphism into a getter.
func ComposeGetterIso[S, A, B, C, D any](outer Getter[S, A], inner PIso[A, B, C, D]) Getter[S, C] {
	return ComposeGetter(outer, inner.AsGetter())
}

// ComposeGetterLens composes a getter with a lens into a getter.
func ComposeGetterLens[S, A, B, C, D any](outer Getter[S, A], inner PLens[A, B, C, D]) Getter[S, C] {
	return ComposeGetter(outer, inner.AsGetter())
}

// ComposeGetterPrism composes a getter with a prism into a fold.
func ComposeGetterPrism[S, A, B, C, D any](outer Getter[S, A], inner PPrism[A, B, C, D]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner.AsFold())
}

// ComposeGetterOptional composes a getter with an optional into a fold.
func ComposeGetterOptional[S, A, B, C, D any](outer Getter[S, A], inner POptional[A, B, C, D]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner.AsFold())
}

// ComposeGetterTraversal composes a getter with a traversal into a fold.
func ComposeGetterTraversal[S, A, B, C, D any](outer Getter[S, A], inner PTraversal[A, B, C, D]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner.AsFold())
}

// ComposeGetterFold composes a getter with a fold into a fold.
func ComposeGetterFold[S, A, C any](outer Getter[S, A], inner Fold[A, C]) Fold[S, C] {
	return ComposeFold(outer.AsFold(), inner)
}

// ComposeFoldIso composes a fold with an isomorphism into a fold.
func ComposeFoldIso[S, A, B, C, D any](outer Fold[S, A], inner PIso[A, B, C, D]) Fold[S, C] {
	return ComposeFold(outer, inner.AsFold())
}

// ComposeFoldLens composes a fold with a lens into a fold.
func ComposeFoldLens[S, A, B, C, D any](outer Fold[S, A], inner PLens[A, B, C, D]) Fold[S, C] {
	return ComposeFold(outer, inner.AsFold())
}

// ComposeFoldPrism composes a fold with a prism into a fold.
func ComposeFoldPrism[S, A, B, C, D any](outer Fold[S, A], inner PPrism[A, B, C, D]) Fold[S, C] {
	return ComposeFold(outer, inner.AsFold())
}

// ComposeFoldOptional composes a fold with an optional into a fold.
func ComposeFoldOptional[S, A, B, C, D any](outer Fold[S, A], inner POptional[A, B, C, D]) Fold[S, C] {
	return ComposeFold(outer, inner.AsFold())
}

// ComposeFoldTraversal composes a fold with a traversal into a fold.
func ComposeFoldTraversal[S, A, B, C, D any](outer Fold[S, A], inner PTraversal[A, B, C, D]) Fold[S, C] {
	return ComposeFold(outer, inner.AsFold())
}

// ComposeFoldGetter composes a fold with a getter into a fold.
func ComposeFoldGetter[S, A, C any](outer Fold[S, A], inner Getter[A, C]) Fold[S, C] {
	return ComposeFold(outer, inner.AsFold())
}
