package ski

import (
	"fmt"
	"os"
	"sync/atomic"
)

var skiDebug = os.Getenv("SKI_DEBUG") != ""

// Evaluator collects statistics about the combinators fired while running
// evaluated terms. The zero value is ready to use, and a nil *Evaluator
// records nothing.
//
// Firing happens when the denoted function is called, which may be long
// after Evaluate returns: the closures keep a reference to e.
type Evaluator struct {
	// Stats
	ops uint64 // Total reductions

	statS uint64
	statK uint64
	statI uint64

	traceBuf []TraceEvent
	traceCap uint64
	traceIdx uint64
	traceOn  uint32
}

// Stats holds reduction statistics. A combinator fires when it receives its
// last argument: I after one, K after two, S after three.
type Stats struct {
	TotalReductions uint64
	SReductions     uint64
	KReductions     uint64
	IReductions     uint64
}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Eval returns the Go value denoted by t.
func Eval[T any](t Term[T]) T {
	return t.eval(nil)
}

// Evaluate is Eval with firings counted on e.
func Evaluate[T any](e *Evaluator, t Term[T]) T {
	return t.eval(e)
}

func (e *Evaluator) GetStats() Stats {
	return Stats{
		TotalReductions: atomic.LoadUint64(&e.ops),
		SReductions:     atomic.LoadUint64(&e.statS),
		KReductions:     atomic.LoadUint64(&e.statK),
		IReductions:     atomic.LoadUint64(&e.statI),
	}
}

// ResetStats zeroes the counters. The trace buffer is left alone.
func (e *Evaluator) ResetStats() {
	atomic.StoreUint64(&e.ops, 0)
	atomic.StoreUint64(&e.statS, 0)
	atomic.StoreUint64(&e.statK, 0)
	atomic.StoreUint64(&e.statI, 0)
}

func (e *Evaluator) fire(rule RuleKind) {
	if skiDebug {
		fmt.Fprintf(os.Stderr, "eval: fire %v\n", rule)
	}
	if e == nil {
		return
	}
	atomic.AddUint64(&e.ops, 1)
	switch rule {
	case RuleS:
		atomic.AddUint64(&e.statS, 1)
	case RuleK:
		atomic.AddUint64(&e.statK, 1)
	case RuleI:
		atomic.AddUint64(&e.statI, 1)
	}
	e.recordTrace(rule)
}
