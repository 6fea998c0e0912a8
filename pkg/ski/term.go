package ski

import "fmt"

// Kind identifies which of the four term variants a node is.
type Kind int

const (
	KindS Kind = iota
	KindK
	KindI
	KindAp
)

func (k Kind) String() string {
	switch k {
	case KindS:
		return "S"
	case KindK:
		return "K"
	case KindI:
		return "I"
	case KindAp:
		return "Ap"
	default:
		return "Unknown"
	}
}

// Shape is the untyped, read-only structure of a term.
// Operands returns (nil, nil) for the primitives.
type Shape interface {
	Kind() Kind
	Operands() (fun, arg Shape)
	String() string
}

// Term represents an SKI term whose evaluation yields a T.
// The set of implementations is closed: terms are built only with S, K, I
// and Ap, so every Term that compiles is well typed.
type Term[T any] interface {
	Shape
	eval(e *Evaluator) T
}

// Denoted types of the primitives.
type (
	SType[A, B, C any] = Fn[Fn[A, Fn[B, C]], Fn[Fn[A, B], Fn[A, C]]]
	KType[A, B any]    = Fn[A, Fn[B, A]]
	IType[A any]       = Fn[A, A]
)

// TypeError reports a malformed application. The Go compiler rejects
// mismatched operand types; a nil operand is the only fault left for Ap to
// catch at construction time.
type TypeError struct {
	Op     string
	Reason string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("ski: ill-typed %s: %s", e.Op, e.Reason)
}

type sTerm[A, B, C any] struct{}

// S returns the substitution combinator: S p f x = (p x) (f x).
func S[A, B, C any]() Term[SType[A, B, C]] {
	return sTerm[A, B, C]{}
}

func (sTerm[A, B, C]) Kind() Kind               { return KindS }
func (sTerm[A, B, C]) Operands() (Shape, Shape) { return nil, nil }
func (sTerm[A, B, C]) String() string           { return "S" }

func (sTerm[A, B, C]) eval(e *Evaluator) SType[A, B, C] {
	return func(p Lazy[Fn[A, Fn[B, C]]]) Fn[Fn[A, B], Fn[A, C]] {
		return func(f Lazy[Fn[A, B]]) Fn[A, C] {
			return func(x Lazy[A]) C {
				e.fire(RuleS)
				// x is used twice; share it.
				shared := Delay(func() A { return x() })
				fx := Delay(func() B { return f()(shared) })
				return p()(shared)(fx)
			}
		}
	}
}

type kTerm[A, B any] struct{}

// K returns the constant combinator: K x y = x. The second argument is never
// forced.
func K[A, B any]() Term[KType[A, B]] {
	return kTerm[A, B]{}
}

func (kTerm[A, B]) Kind() Kind               { return KindK }
func (kTerm[A, B]) Operands() (Shape, Shape) { return nil, nil }
func (kTerm[A, B]) String() string           { return "K" }

func (kTerm[A, B]) eval(e *Evaluator) KType[A, B] {
	return func(x Lazy[A]) Fn[B, A] {
		return func(Lazy[B]) A {
			e.fire(RuleK)
			return x()
		}
	}
}

type iTerm[A any] struct{}

// I returns the identity combinator: I x = x.
func I[A any]() Term[IType[A]] {
	return iTerm[A]{}
}

func (iTerm[A]) Kind() Kind               { return KindI }
func (iTerm[A]) Operands() (Shape, Shape) { return nil, nil }
func (iTerm[A]) String() string           { return "I" }

func (iTerm[A]) eval(e *Evaluator) IType[A] {
	return func(x Lazy[A]) A {
		e.fire(RuleI)
		return x()
	}
}

type apTerm[A, B any] struct {
	fun Term[Fn[A, B]]
	arg Term[A]
}

// Ap applies fun to arg. The operand types are linked through A, so an
// argument whose type differs from the function's domain does not compile.
func Ap[A, B any](fun Term[Fn[A, B]], arg Term[A]) Term[B] {
	if fun == nil {
		panic(&TypeError{Op: "Ap", Reason: "nil function term"})
	}
	if arg == nil {
		panic(&TypeError{Op: "Ap", Reason: fmt.Sprintf("nil argument to %s", Render(fun))})
	}
	return apTerm[A, B]{fun: fun, arg: arg}
}

// Ap2 is Ap(Ap(fun, x), y).
func Ap2[A, B, C any](fun Term[Fn[A, Fn[B, C]]], x Term[A], y Term[B]) Term[C] {
	return Ap(Ap(fun, x), y)
}

// Ap3 is Ap(Ap(Ap(fun, x), y), z).
func Ap3[A, B, C, D any](fun Term[Fn[A, Fn[B, Fn[C, D]]]], x Term[A], y Term[B], z Term[C]) Term[D] {
	return Ap(Ap2(fun, x, y), z)
}

func (a apTerm[A, B]) Kind() Kind { return KindAp }

func (a apTerm[A, B]) Operands() (Shape, Shape) {
	return a.fun, a.arg
}

func (a apTerm[A, B]) String() string {
	return Render(a)
}

func (a apTerm[A, B]) eval(e *Evaluator) B {
	f := a.fun.eval(e)
	arg := a.arg
	return f(Delay(func() A { return arg.eval(e) }))
}
