// Package listing builds disassembly listings of IA-64 code: a parallel
// linear sweep over a segment, branch-target labels, and control-flow
// traces from an entry point.
package listing

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/sarchlab/ia64dis/insts"
	"github.com/sarchlab/ia64dis/loader"
)

// DefaultChunkBundles is the number of bundles per work item when
// Options.ChunkBundles is unset.
const DefaultChunkBundles = 4096

// Options controls Sweep.
type Options struct {
	// Workers bounds the number of decoding goroutines. Default: the
	// number of CPUs.
	Workers int
	// ChunkBundles is the number of bundles per work item.
	ChunkBundles int
	// Progress, if set, is called after each chunk with the number of
	// bundles decoded so far. Calls are serialized.
	Progress func(done int)
	// Symbols are added as labels when they fall inside the segment.
	Symbols []loader.Symbol
}

// Entry is one bundle of a listing.
type Entry struct {
	Addr uint64
	// Bytes aliases the segment data and may be shorter than a bundle
	// at the end of a segment.
	Bytes  []byte
	Bundle insts.Bundle
	Err    error
}

// Listing is the result of a linear sweep.
type Listing struct {
	Base    uint64
	Entries []Entry

	labels *bitset.BitSet
	names  map[uint64]string
}

// Sweep decodes seg in 16-byte steps from its base. Decode errors are
// recorded per entry and never abort the sweep; the returned error is
// only set when ctx is cancelled.
func Sweep(ctx context.Context, dec *insts.Decoder, seg loader.Segment, opts Options) (*Listing, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	chunk := opts.ChunkBundles
	if chunk <= 0 {
		chunk = DefaultChunkBundles
	}

	n := (len(seg.Data) + insts.BundleSize - 1) / insts.BundleSize
	l := &Listing{
		Base:    seg.VirtAddr,
		Entries: make([]Entry, n),
		labels:  bitset.New(uint(n)),
		names:   make(map[uint64]string),
	}

	var (
		mu   sync.Mutex
		done int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				l.decode(dec, seg.Data, i)
			}
			if opts.Progress != nil {
				mu.Lock()
				done += end - start
				opts.Progress(done)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sweep at %#x: %w", seg.VirtAddr, err)
	}

	l.markTargets()
	for _, sym := range opts.Symbols {
		if i, ok := l.index(sym.Addr); ok {
			l.labels.Set(i)
			l.names[sym.Addr] = sym.Name
		}
	}
	return l, nil
}

func (l *Listing) decode(dec *insts.Decoder, data []byte, i int) {
	off := i * insts.BundleSize
	e := &l.Entries[i]
	e.Addr = l.Base + uint64(off)
	e.Bytes = data[off:min(off+insts.BundleSize, len(data))]
	if err := dec.DecodeInto(e.Bytes, &e.Bundle); err != nil {
		e.Err = err
		e.Bundle = insts.Bundle{}
	}
}

// markTargets labels every IP-relative target inside the listing.
func (l *Listing) markTargets() {
	for i := range l.Entries {
		e := &l.Entries[i]
		if e.Err != nil {
			continue
		}
		for k := range e.Bundle.Instructions() {
			in := &e.Bundle.Insts[k]
			if in.Reserved() {
				continue
			}
			disp, _, ok := in.Target()
			if !ok {
				continue
			}
			if j, ok := l.index(e.Addr + uint64(disp)); ok {
				l.labels.Set(j)
			}
		}
	}
}

// index returns the entry index of a bundle address.
func (l *Listing) index(addr uint64) (uint, bool) {
	if addr < l.Base || (addr-l.Base)%insts.BundleSize != 0 {
		return 0, false
	}
	i := (addr - l.Base) / insts.BundleSize
	if i >= uint64(len(l.Entries)) {
		return 0, false
	}
	return uint(i), true
}

// Label returns the label at addr: the symbol name if one starts there,
// otherwise label_<addr> for branch targets.
func (l *Listing) Label(addr uint64) (string, bool) {
	i, ok := l.index(addr)
	if !ok || !l.labels.Test(i) {
		return "", false
	}
	if name, ok := l.names[addr]; ok {
		return name, true
	}
	return fmt.Sprintf("label_%x", addr), true
}

// Labels returns the labelled addresses in ascending order.
func (l *Listing) Labels() []uint64 {
	addrs := make([]uint64, 0, l.labels.Count())
	for i, ok := l.labels.NextSet(0); ok; i, ok = l.labels.NextSet(i + 1) {
		addrs = append(addrs, l.Base+uint64(i)*insts.BundleSize)
	}
	return addrs
}

// Errors returns the entries that failed to decode.
func (l *Listing) Errors() []Entry {
	var bad []Entry
	for _, e := range l.Entries {
		if e.Err != nil {
			bad = append(bad, e)
		}
	}
	return bad
}

// Entry returns the entry at addr.
func (l *Listing) Entry(addr uint64) (*Entry, bool) {
	i := sort.Search(len(l.Entries), func(i int) bool {
		return l.Entries[i].Addr >= addr
	})
	if i < len(l.Entries) && l.Entries[i].Addr == addr {
		return &l.Entries[i], true
	}
	return nil, false
}
