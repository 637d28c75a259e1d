package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/sarchlab/ia64dis/insts"
)

// Source supplies decoded bundles by address. *fetch.Cache satisfies it.
type Source interface {
	Bundle(addr uint64) (insts.Bundle, error)
}

// TraceOptions bounds a trace.
type TraceOptions struct {
	// Limit is the maximum number of bundles to visit. Zero means no
	// limit.
	Limit int
	// Lo and Hi delimit the traced region [Lo, Hi). Targets outside it
	// are recorded as exits.
	Lo, Hi uint64
}

// Fault is a bundle the trace could not decode.
type Fault struct {
	Addr uint64
	Err  error
}

// TraceResult holds the bundles reachable from an entry.
type TraceResult struct {
	// Addrs are the visited bundle addresses in ascending order.
	Addrs []uint64
	// Exits are branch targets outside the region, in discovery order.
	Exits  []uint64
	Faults []Fault
	// Truncated is set when Limit stopped the trace with work left.
	Truncated bool
}

// ErrOutsideRegion is returned when the entry is not in the region.
var ErrOutsideRegion = errors.New("entry outside trace region")

// Trace follows control flow from entry. Fall-through continues to the
// next bundle unless an unpredicated branch that does not return ends
// the bundle. Branch and speculation-check targets are followed; branch
// predicts are hints and are not.
func Trace(ctx context.Context, src Source, entry uint64, opts TraceOptions) (*TraceResult, error) {
	if opts.Hi <= opts.Lo || opts.Lo%insts.BundleSize != 0 {
		return nil, fmt.Errorf("bad trace region [%#x, %#x)", opts.Lo, opts.Hi)
	}
	if entry < opts.Lo || entry >= opts.Hi || entry%insts.BundleSize != 0 {
		return nil, fmt.Errorf("trace %#x: %w", entry, ErrOutsideRegion)
	}

	n := uint((opts.Hi - opts.Lo + insts.BundleSize - 1) / insts.BundleSize)
	t := &tracer{
		opts:    opts,
		queued:  bitset.New(n),
		visited: bitset.New(n),
		exited:  make(map[uint64]bool),
		res:     &TraceResult{},
	}
	t.push(entry)

	count := 0
	for len(t.work) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if opts.Limit > 0 && count == opts.Limit {
			t.res.Truncated = true
			break
		}
		addr := t.work[len(t.work)-1]
		t.work = t.work[:len(t.work)-1]
		count++
		t.step(src, addr)
	}

	for i, ok := t.visited.NextSet(0); ok; i, ok = t.visited.NextSet(i + 1) {
		t.res.Addrs = append(t.res.Addrs, opts.Lo+uint64(i)*insts.BundleSize)
	}
	return t.res, nil
}

type tracer struct {
	opts    TraceOptions
	queued  *bitset.BitSet
	visited *bitset.BitSet
	exited  map[uint64]bool
	work    []uint64
	res     *TraceResult
}

// push queues addr once. Addresses outside the region become exits.
func (t *tracer) push(addr uint64) {
	if addr < t.opts.Lo || addr >= t.opts.Hi {
		if !t.exited[addr] {
			t.exited[addr] = true
			t.res.Exits = append(t.res.Exits, addr)
		}
		return
	}
	i := t.index(addr)
	if t.queued.Test(i) {
		return
	}
	t.queued.Set(i)
	t.work = append(t.work, addr)
}

func (t *tracer) index(addr uint64) uint {
	return uint((addr - t.opts.Lo) / insts.BundleSize)
}

func (t *tracer) step(src Source, addr uint64) {
	t.visited.Set(t.index(addr))
	b, err := src.Bundle(addr)
	if err != nil {
		t.res.Faults = append(t.res.Faults, Fault{Addr: addr, Err: err})
		return
	}

	for k := range b.Instructions() {
		in := &b.Insts[k]
		if in.Reserved() {
			return
		}
		if disp, _, ok := in.Target(); ok && !isPredict(in) {
			t.push(addr + uint64(disp))
		}
		if endsFlow(in) {
			return
		}
	}
	t.push(addr + insts.BundleSize)
}

func isPredict(in *insts.Instruction) bool {
	return in.Op == insts.OpBrpIP
}

// endsFlow reports whether control never reaches the next slot.
func endsFlow(in *insts.Instruction) bool {
	if in.Predicate != 0 {
		return false
	}
	switch in.Op {
	case insts.OpBrCond, insts.OpBrIa, insts.OpBrRet, insts.OpRfi, insts.OpBrlCond:
		return true
	}
	return false
}
