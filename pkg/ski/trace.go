package ski

import "sync/atomic"

type RuleKind int

const (
	RuleUnknown RuleKind = iota
	RuleS
	RuleK
	RuleI
)

func (r RuleKind) String() string {
	switch r {
	case RuleS:
		return "S"
	case RuleK:
		return "K"
	case RuleI:
		return "I"
	default:
		return "Unknown"
	}
}

type TraceEvent struct {
	Step uint64
	Rule RuleKind
}

// EnableTrace starts recording up to capacity firings. Later firings are
// counted in the stats but not recorded.
func (e *Evaluator) EnableTrace(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	e.traceBuf = make([]TraceEvent, capacity)
	e.traceCap = uint64(capacity)
	atomic.StoreUint64(&e.traceIdx, 0)
	atomic.StoreUint32(&e.traceOn, 1)
}

func (e *Evaluator) DisableTrace() {
	atomic.StoreUint32(&e.traceOn, 0)
}

func (e *Evaluator) TraceSnapshot() []TraceEvent {
	if atomic.LoadUint32(&e.traceOn) == 0 {
		return nil
	}
	count := atomic.LoadUint64(&e.traceIdx)
	if count > e.traceCap {
		count = e.traceCap
	}
	res := make([]TraceEvent, count)
	copy(res, e.traceBuf[:count])
	return res
}

func (e *Evaluator) recordTrace(rule RuleKind) {
	if atomic.LoadUint32(&e.traceOn) == 0 || e.traceCap == 0 {
		return
	}
	idx := atomic.AddUint64(&e.traceIdx, 1) - 1
	if idx >= e.traceCap {
		return
	}
	e.traceBuf[idx] = TraceEvent{
		Step: idx,
		Rule: rule,
	}
}
