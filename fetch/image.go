package fetch

import (
	"sort"

	"github.com/sarchlab/ia64dis/loader"
)

// BackingStore supplies code bytes to a Cache.
type BackingStore interface {
	// Read returns the bytes at [addr, addr+size). The result is shorter
	// than size when the range runs off mapped memory and empty when addr
	// itself is unmapped.
	Read(addr uint64, size int) []byte
}

// Image is a sparse, read-only view of loaded segments.
type Image struct {
	segs []loader.Segment
}

// NewImage creates an image over segs, which must not overlap. Segments
// without file data are dropped.
func NewImage(segs []loader.Segment) *Image {
	sorted := make([]loader.Segment, 0, len(segs))
	for _, s := range segs {
		if len(s.Data) > 0 {
			sorted = append(sorted, s)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].VirtAddr < sorted[j].VirtAddr
	})
	return &Image{segs: sorted}
}

// NewProgramImage creates an image over the code segments of prog.
func NewProgramImage(prog *loader.Program) *Image {
	return NewImage(prog.CodeSegments())
}

// segment returns the segment holding addr, or nil.
func (m *Image) segment(addr uint64) *loader.Segment {
	i := sort.Search(len(m.segs), func(i int) bool {
		return m.segs[i].End() > addr
	})
	if i < len(m.segs) && m.segs[i].Contains(addr) {
		return &m.segs[i]
	}
	return nil
}

// Mapped reports whether addr is backed by segment data.
func (m *Image) Mapped(addr uint64) bool {
	return m.segment(addr) != nil
}

// Read implements BackingStore. The returned slice aliases segment data.
func (m *Image) Read(addr uint64, size int) []byte {
	seg := m.segment(addr)
	if seg == nil || size <= 0 {
		return nil
	}
	off := addr - seg.VirtAddr
	end := off + uint64(size)
	if end > uint64(len(seg.Data)) {
		end = uint64(len(seg.Data))
	}
	return seg.Data[off:end]
}
