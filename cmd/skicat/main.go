package main

import (
	"fmt"
	"os"
	"time"

	"github.com/samber/lo"

	"github.com/vic/goski/pkg/combinator"
	"github.com/vic/goski/pkg/ski"
)

func main() {
	entries := combinator.Catalog()
	if len(os.Args) > 1 {
		e, ok := combinator.Lookup(os.Args[1])
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown combinator %q (known: %v)\n", os.Args[1], combinator.Names())
			os.Exit(1)
		}
		entries = []combinator.Entry{e}
	}

	width := len(lo.MaxBy(combinator.Names(), func(a, b string) bool {
		return len(a) > len(b)
	}))
	for _, e := range entries {
		fmt.Printf("%-*s  %s\n", width, e.Name, e.Doc)
		fmt.Printf("%-*s  size=%d depth=%d\n", width, "", ski.Size(e.Shape), ski.Depth(e.Shape))
		fmt.Printf("%-*s  %s\n", width, "", ski.Render(e.Shape))
	}
	if len(os.Args) > 1 {
		return
	}

	ev := ski.NewEvaluator()
	start := time.Now()
	printTruthTables(ev)
	elapsed := time.Since(start)

	stats := ev.GetStats()
	fmt.Fprintf(os.Stderr, "\nStats:\n")
	fmt.Fprintf(os.Stderr, "Time: %v\n", elapsed)
	fmt.Fprintf(os.Stderr, "Total Reductions: %d\n", stats.TotalReductions)
	fmt.Fprintf(os.Stderr, "\nBreakdown:\n")
	fmt.Fprintf(os.Stderr, "  S: %6d\n", stats.SReductions)
	fmt.Fprintf(os.Stderr, "  K: %6d\n", stats.KReductions)
	fmt.Fprintf(os.Stderr, "  I: %6d\n", stats.IReductions)
}

func printTruthTables(ev *ski.Evaluator) {
	ops := []struct {
		name string
		term ski.Term[combinator.BinOp[bool]]
	}{
		{"and", combinator.And[bool]()},
		{"or", combinator.Or[bool]()},
		{"xor", combinator.Xor[bool]()},
	}
	outer := []combinator.Bool[combinator.Bool[bool]]{
		ski.Evaluate(ev, combinator.True[combinator.Bool[bool]]()),
		ski.Evaluate(ev, combinator.False[combinator.Bool[bool]]()),
	}
	inner := []combinator.Bool[bool]{
		ski.Evaluate(ev, combinator.True[bool]()),
		ski.Evaluate(ev, combinator.False[bool]()),
	}

	fmt.Println()
	for _, op := range ops {
		fn := ski.Evaluate(ev, op.term)
		for i, b1 := range outer {
			for j, b2 := range inner {
				res := combinator.ToBool(fn.Apply(b1).Apply(b2))
				fmt.Printf("%-3s %-5v %-5v = %v\n", op.name, i == 0, j == 0, res)
			}
		}
	}
}
