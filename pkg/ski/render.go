package ski

import "strings"

// Render prints s fully parenthesized in prefix form: "S", "K", "I" for the
// primitives and "(f x)" for an application.
func Render(s Shape) string {
	var sb strings.Builder
	render(&sb, s)
	return sb.String()
}

func render(sb *strings.Builder, s Shape) {
	if s.Kind() != KindAp {
		sb.WriteString(s.Kind().String())
		return
	}
	fun, arg := s.Operands()
	sb.WriteByte('(')
	render(sb, fun)
	sb.WriteByte(' ')
	render(sb, arg)
	sb.WriteByte(')')
}

// Walk visits s and its subterms in pre-order. Returning false from visit
// skips the operands of that node.
func Walk(s Shape, visit func(Shape) bool) {
	if !visit(s) || s.Kind() != KindAp {
		return
	}
	fun, arg := s.Operands()
	Walk(fun, visit)
	Walk(arg, visit)
}

// Size counts the primitive leaves of s.
func Size(s Shape) int {
	n := 0
	Walk(s, func(n2 Shape) bool {
		if n2.Kind() != KindAp {
			n++
		}
		return true
	})
	return n
}

// Depth is the height of s; a primitive has depth 0.
func Depth(s Shape) int {
	if s.Kind() != KindAp {
		return 0
	}
	fun, arg := s.Operands()
	return 1 + max(Depth(fun), Depth(arg))
}

// Equal reports whether a and b have the same shape. Type instantiations are
// not compared.
func Equal(a, b Shape) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	if a.Kind() != KindAp {
		return true
	}
	af, ax := a.Operands()
	bf, bx := b.Operands()
	return Equal(af, bf) && Equal(ax, bx)
}
