// Package loader provides ELF and raw image loading for IA-64 code.
package loader

import (
	"debug/elf"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// SegmentFlags represents memory protection flags for a segment.
type SegmentFlags uint32

const (
	// SegmentFlagExecute indicates the segment is executable.
	SegmentFlagExecute SegmentFlags = 1 << iota
	// SegmentFlagWrite indicates the segment is writable.
	SegmentFlagWrite
	// SegmentFlagRead indicates the segment is readable.
	SegmentFlagRead
)

// BundleAlign is the alignment of IA-64 code.
const BundleAlign = 16

// Segment represents a loadable segment.
type Segment struct {
	// VirtAddr is the virtual address where this segment is loaded.
	VirtAddr uint64
	// Data contains the segment contents from the file.
	Data []byte
	// MemSize is the size in memory (may be larger than len(Data) for BSS).
	MemSize uint64
	// Flags contains the segment protection flags.
	Flags SegmentFlags
}

// Executable reports whether the segment holds code.
func (s *Segment) Executable() bool {
	return s.Flags&SegmentFlagExecute != 0
}

// Contains reports whether addr falls inside the segment's file data.
func (s *Segment) Contains(addr uint64) bool {
	return addr >= s.VirtAddr && addr-s.VirtAddr < uint64(len(s.Data))
}

// End returns the first address past the segment's file data.
func (s *Segment) End() uint64 {
	return s.VirtAddr + uint64(len(s.Data))
}

// Symbol is a named function address.
type Symbol struct {
	Name string
	Addr uint64
	Size uint64
}

// Program represents a loaded image.
type Program struct {
	// EntryPoint is the virtual address where execution begins.
	EntryPoint uint64
	// Segments contains all loadable segments.
	Segments []Segment

	symbols []Symbol
}

// CodeSegments returns the executable segments in load order.
func (p *Program) CodeSegments() []Segment {
	var code []Segment
	for _, seg := range p.Segments {
		if seg.Executable() {
			code = append(code, seg)
		}
	}
	return code
}

// Symbols returns the function symbols sorted by address. It is empty
// for stripped files and raw images.
func (p *Program) Symbols() []Symbol {
	return p.symbols
}

// SymbolAt returns the function symbol starting at addr.
func (p *Program) SymbolAt(addr uint64) (Symbol, bool) {
	i := sort.Search(len(p.symbols), func(i int) bool {
		return p.symbols[i].Addr >= addr
	})
	if i < len(p.symbols) && p.symbols[i].Addr == addr {
		return p.symbols[i], true
	}
	return Symbol{}, false
}

// Load parses an IA-64 ELF executable or shared object.
func Load(path string) (*Program, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ELF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if f.Class != elf.ELFCLASS64 {
		return nil, fmt.Errorf("not a 64-bit ELF file")
	}
	if f.Data != elf.ELFDATA2LSB {
		return nil, fmt.Errorf("not a little-endian ELF file")
	}
	if f.Machine != elf.EM_IA_64 {
		return nil, fmt.Errorf("not an IA-64 ELF file (machine type: %v)", f.Machine)
	}
	if f.Type != elf.ET_EXEC && f.Type != elf.ET_DYN {
		return nil, fmt.Errorf("unsupported ELF type %v", f.Type)
	}

	prog := &Program{EntryPoint: f.Entry}

	for _, phdr := range f.Progs {
		if phdr.Type != elf.PT_LOAD {
			continue
		}

		data := make([]byte, phdr.Filesz)
		if phdr.Filesz > 0 {
			n, err := phdr.ReadAt(data, 0)
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("failed to read segment at 0x%x: %w", phdr.Vaddr, err)
			}
			if uint64(n) != phdr.Filesz {
				return nil, fmt.Errorf("short read for segment at 0x%x: got %d bytes, expected %d",
					phdr.Vaddr, n, phdr.Filesz)
			}
		}

		var flags SegmentFlags
		if phdr.Flags&elf.PF_X != 0 {
			flags |= SegmentFlagExecute
		}
		if phdr.Flags&elf.PF_W != 0 {
			flags |= SegmentFlagWrite
		}
		if phdr.Flags&elf.PF_R != 0 {
			flags |= SegmentFlagRead
		}

		prog.Segments = append(prog.Segments, Segment{
			VirtAddr: phdr.Vaddr,
			Data:     data,
			MemSize:  phdr.Memsz,
			Flags:    flags,
		})
	}

	syms, err := f.Symbols()
	if err != nil && !errors.Is(err, elf.ErrNoSymbols) {
		return nil, fmt.Errorf("failed to read symbols: %w", err)
	}
	prog.symbols = functionSymbols(syms)

	return prog, nil
}

func functionSymbols(syms []elf.Symbol) []Symbol {
	var funcs []Symbol
	for _, s := range syms {
		if elf.ST_TYPE(s.Info) != elf.STT_FUNC || s.Value == 0 || s.Name == "" {
			continue
		}
		funcs = append(funcs, Symbol{Name: s.Name, Addr: s.Value, Size: s.Size})
	}
	sort.SliceStable(funcs, func(i, j int) bool {
		return funcs[i].Addr < funcs[j].Addr
	})
	return funcs
}

// LoadRaw wraps a file of raw bundles as one executable segment at base.
// base must be bundle aligned.
func LoadRaw(path string, base uint64) (*Program, error) {
	if base%BundleAlign != 0 {
		return nil, fmt.Errorf("raw base 0x%x is not %d-byte aligned", base, BundleAlign)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw image: %w", err)
	}

	return &Program{
		EntryPoint: base,
		Segments: []Segment{{
			VirtAddr: base,
			Data:     data,
			MemSize:  uint64(len(data)),
			Flags:    SegmentFlagExecute | SegmentFlagRead,
		}},
	}, nil
}
