package ski

import "sync"

// Lazy is a deferred value; calling it forces the computation.
type Lazy[T any] func() T

// Fn is the denoted type of a term mapping A to B. The argument is passed
// unevaluated, so a function that ignores it never forces it.
type Fn[A, B any] func(Lazy[A]) B

// Now wraps an already computed value.
func Now[T any](v T) Lazy[T] {
	return func() T { return v }
}

// Delay defers f and memoizes its result, so forcing the value twice runs f
// once.
func Delay[T any](f func() T) Lazy[T] {
	return Lazy[T](sync.OnceValue(f))
}

// Force evaluates l.
func Force[T any](l Lazy[T]) T {
	return l()
}

// Apply calls f with a computed argument.
func (f Fn[A, B]) Apply(x A) B {
	return f(Now(x))
}

// ApplyLazy calls f with a deferred argument.
func (f Fn[A, B]) ApplyLazy(x func() A) B {
	return f(Lazy[A](x))
}

// Lift turns a strict Go function into a denoted one. The argument is forced
// when the function is called.
func Lift[A, B any](f func(A) B) Fn[A, B] {
	return func(x Lazy[A]) B { return f(x()) }
}

// Lift2 is Lift for curried two-argument functions.
func Lift2[A, B, C any](f func(A, B) C) Fn[A, Fn[B, C]] {
	return func(x Lazy[A]) Fn[B, C] {
		return func(y Lazy[B]) C { return f(x(), y()) }
	}
}
