// Package combinator builds higher-level combinators out of S, K and I.
//
// Each combinator is obtained by abstraction elimination on its lambda
// definition, using the rules
//
//	[x] x       = I
//	[x] E       = K E            (x not free in E)
//	[x] (E x)   = E              (x not free in E)
//	[x] (E1 E2) = S ([x] E1) ([x] E2)
//
// and, once comp is available, S (K E1) E2 = comp E1 E2. The constructors
// are generic: every use site picks the types it needs.
package combinator

import "github.com/vic/goski/pkg/ski"

// Comp is function composition: comp f g x = f (g x).
//
//	[f][g][x] f (g x)
//	  = [f][g] S (K f) g     (eta on g)
//	  = [f] S (K f)          (eta)
//	  = S (K S) K
func Comp[A, B, C any]() ski.Term[ski.Fn[ski.Fn[B, C], ski.Fn[ski.Fn[A, B], ski.Fn[A, C]]]] {
	return ski.Ap2(
		ski.S[ski.Fn[B, C], ski.Fn[A, ski.Fn[B, C]], ski.Fn[ski.Fn[A, B], ski.Fn[A, C]]](),
		ski.Ap(ski.K[ski.SType[A, B, C], ski.Fn[B, C]](), ski.S[A, B, C]()),
		ski.K[ski.Fn[B, C], A](),
	)
}

// Flip swaps the next two arguments: flip' p x y = p y x.
//
//	[y] p y x         = S p (K x)
//	[x] S p (K x)     = comp (S p) K
//	[p] comp (S p) K  = S (S (K comp) S) (K K)
func Flip[A, B, C any]() ski.Term[ski.Fn[ski.Fn[A, ski.Fn[B, C]], ski.Fn[B, ski.Fn[A, C]]]] {
	// S (K comp) S p = comp (S p)
	inner := ski.Ap2(
		ski.S[ski.Fn[A, ski.Fn[B, C]], ski.Fn[ski.Fn[A, B], ski.Fn[A, C]], ski.Fn[ski.Fn[B, ski.Fn[A, B]], ski.Fn[B, ski.Fn[A, C]]]](),
		ski.Ap(
			ski.K[ski.Fn[ski.Fn[ski.Fn[A, B], ski.Fn[A, C]], ski.Fn[ski.Fn[B, ski.Fn[A, B]], ski.Fn[B, ski.Fn[A, C]]]], ski.Fn[A, ski.Fn[B, C]]](),
			Comp[B, ski.Fn[A, B], ski.Fn[A, C]](),
		),
		ski.S[A, B, C](),
	)
	return ski.Ap2(
		ski.S[ski.Fn[A, ski.Fn[B, C]], ski.Fn[B, ski.Fn[A, B]], ski.Fn[B, ski.Fn[A, C]]](),
		inner,
		ski.Ap(ski.K[ski.KType[B, A], ski.Fn[A, ski.Fn[B, C]]](), ski.K[B, A]()),
	)
}

// Rev is reverse application: rev x f = f x.
//
//	[x][f] f x = [x] flip' I x = flip' I
func Rev[A, B any]() ski.Term[ski.Fn[A, ski.Fn[ski.Fn[A, B], B]]] {
	return ski.Ap(Flip[ski.Fn[A, B], A, B](), ski.I[ski.Fn[A, B]]())
}

// Rotr moves the first of three arguments to the end: rotr x p y = p y x.
func Rotr[A, B, C any]() ski.Term[ski.Fn[B, ski.Fn[ski.Fn[A, ski.Fn[B, C]], ski.Fn[A, C]]]] {
	return ski.Ap(Flip[ski.Fn[A, ski.Fn[B, C]], B, ski.Fn[A, C]](), Flip[A, B, C]())
}

// Rotv holds two arguments for a function supplied last: rotv a b p = p a b.
//
//	[a][b][p] p a b
//	  = [a] flip' (rev a)
//	  = comp flip' rev
func Rotv[A, B, C any]() ski.Term[ski.Fn[A, ski.Fn[B, ski.Fn[ski.Fn[A, ski.Fn[B, C]], C]]]] {
	return ski.Ap2(
		Comp[A, ski.Fn[ski.Fn[A, ski.Fn[B, C]], ski.Fn[B, C]], ski.Fn[B, ski.Fn[ski.Fn[A, ski.Fn[B, C]], C]]](),
		Flip[ski.Fn[A, ski.Fn[B, C]], B, C](),
		Rev[A, ski.Fn[B, C]](),
	)
}

// Join duplicates its argument: join p x = p x x (the W combinator).
//
//	[p][x] p x x = [p] S p I = flip' S I
func Join[A, B any]() ski.Term[ski.Fn[ski.Fn[A, ski.Fn[A, B]], ski.Fn[A, B]]] {
	return ski.Ap2(
		Flip[ski.Fn[A, ski.Fn[A, B]], ski.Fn[A, A], ski.Fn[A, B]](),
		ski.S[A, A, B](),
		ski.I[A](),
	)
}
