package combinator

import (
	"github.com/samber/lo"

	"github.com/vic/goski/pkg/ski"
)

// Entry names one of the library's combinators. Shape is instantiated at
// placeholder types; only its structure is meaningful.
type Entry struct {
	Name  string
	Doc   string
	Shape ski.Shape
}

var catalog = []Entry{
	{"comp", "comp f g x = f (g x)", Comp[any, any, any]()},
	{"flip", "flip' p x y = p y x", Flip[any, any, any]()},
	{"rev", "rev x f = f x", Rev[any, any]()},
	{"rotr", "rotr x p y = p y x", Rotr[any, any, any]()},
	{"rotv", "rotv a b p = p a b", Rotv[any, any, any]()},
	{"join", "join p x = p x x", Join[any, any]()},
	{"true", "true x y = x", True[any]()},
	{"false", "false x y = y", False[any]()},
	{"not", "not' b x y = b y x", Not[any]()},
	{"and", "and' b1 b2 = b1 b2 false", And[any]()},
	{"or", "or' b1 b2 = b1 true b2", Or[any]()},
	{"xor", "xor' b1 b2 = b1 (not' b2) b2", Xor[any]()},
}

// Catalog lists every named combinator, derived ones first.
func Catalog() []Entry {
	return append([]Entry(nil), catalog...)
}

// Names returns the catalog names in order.
func Names() []string {
	return lo.Map(catalog, func(e Entry, _ int) string {
		return e.Name
	})
}

func Lookup(name string) (Entry, bool) {
	return lo.Find(catalog, func(e Entry) bool {
		return e.Name == name
	})
}
