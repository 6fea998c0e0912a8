package combinator

import "github.com/vic/goski/pkg/ski"

// Bool is a Church boolean over A: it receives a "then" and an "else" value
// and returns one of them.
//
// A fully general boolean would work for every A at once. Go cannot express
// that, so each use site picks A, and an operator whose first operand selects
// between booleans takes a Bool[Bool[A]].
type Bool[A any] = ski.Fn[A, ski.Fn[A, A]]

// BinOp is the type of And, Or and Xor.
type BinOp[A any] = ski.Fn[Bool[Bool[A]], ski.Fn[Bool[A], Bool[A]]]

// True selects its first operand: true x y = x.
func True[A any]() ski.Term[Bool[A]] {
	return ski.K[A, A]()
}

// False selects its second operand: false x y = K I x y = y.
func False[A any]() ski.Term[Bool[A]] {
	return ski.Ap(ski.K[ski.Fn[A, A], A](), ski.I[A]())
}

// Not swaps the operands of a selector.
func Not[A any]() ski.Term[ski.Fn[Bool[A], Bool[A]]] {
	return Flip[A, A, A]()
}

// And is and' b1 b2 = b1 b2 false.
//
//	[b1][b2] b1 b2 false
//	  = [b1] comp (rev false) b1
//	  = comp (comp (rev false)) I
func And[A any]() ski.Term[BinOp[A]] {
	return ski.Ap2(
		Comp[Bool[Bool[A]], Bool[Bool[A]], ski.Fn[Bool[A], Bool[A]]](),
		ski.Ap(
			Comp[Bool[A], ski.Fn[Bool[A], Bool[A]], Bool[A]](),
			ski.Ap(Rev[Bool[A], Bool[A]](), False[A]()),
		),
		ski.I[Bool[Bool[A]]](),
	)
}

// Or is or' b1 b2 = b1 true b2.
//
//	[b1] b1 true = rev true
func Or[A any]() ski.Term[BinOp[A]] {
	return ski.Ap(Rev[Bool[A], ski.Fn[Bool[A], Bool[A]]](), True[A]())
}

// Xor is xor' b1 b2 = b1 (not' b2) b2.
//
//	[b2] b1 (not' b2) b2 = join (comp b1 not')
//	[b1] join (comp b1 not') = comp join (flip' comp not')
func Xor[A any]() ski.Term[BinOp[A]] {
	return ski.Ap2(
		Comp[Bool[Bool[A]], ski.Fn[Bool[A], ski.Fn[Bool[A], Bool[A]]], ski.Fn[Bool[A], Bool[A]]](),
		Join[Bool[A], Bool[A]](),
		ski.Ap2(
			Flip[Bool[Bool[A]], ski.Fn[Bool[A], Bool[A]], ski.Fn[Bool[A], ski.Fn[Bool[A], Bool[A]]]](),
			Comp[Bool[A], Bool[A], ski.Fn[Bool[A], Bool[A]]](),
			Not[A](),
		),
	)
}

// IfThenElse forces only the branch b selects.
func IfThenElse[A any](b Bool[A], then, els func() A) A {
	return b(ski.Lazy[A](then))(ski.Lazy[A](els))
}

// Select is IfThenElse over computed values.
func Select[A any](b Bool[A], then, els A) A {
	return b.Apply(then).Apply(els)
}

// ToBool reads a selector back as a Go bool.
func ToBool(b Bool[bool]) bool {
	return Select(b, true, false)
}
