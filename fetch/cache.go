// Package fetch provides bundle fetch from loaded code through a cache of
// decoded lines built on Akita cache components.
package fetch

import (
	"errors"
	"fmt"

	akitacache "github.com/sarchlab/akita/v4/mem/cache"

	"github.com/sarchlab/ia64dis/insts"
)

// Fetch errors.
var (
	ErrUnmapped   = errors.New("unmapped address")
	ErrMisaligned = errors.New("misaligned bundle address")
)

// Config holds cache geometry.
type Config struct {
	// Size in bytes
	Size int `json:"size" yaml:"size"`
	// Associativity (number of ways)
	Associativity int `json:"associativity" yaml:"associativity"`
	// BlockSize in bytes, a multiple of the bundle size
	BlockSize int `json:"block_size" yaml:"block_size"`
}

// DefaultConfig returns a 16KB, 4-way cache with 64B lines, the shape of
// the Itanium 2 L1 instruction cache.
func DefaultConfig() Config {
	return Config{
		Size:          16 * 1024,
		Associativity: 4,
		BlockSize:     64,
	}
}

// Validate checks that the geometry describes at least one set.
func (c Config) Validate() error {
	if c.BlockSize <= 0 || c.BlockSize%insts.BundleSize != 0 {
		return fmt.Errorf("block size %d is not a positive multiple of %d", c.BlockSize, insts.BundleSize)
	}
	if c.BlockSize&(c.BlockSize-1) != 0 {
		return fmt.Errorf("block size %d is not a power of two", c.BlockSize)
	}
	if c.Associativity <= 0 {
		return fmt.Errorf("associativity must be positive, got %d", c.Associativity)
	}
	if c.Size <= 0 || c.Size%(c.Associativity*c.BlockSize) != 0 {
		return fmt.Errorf("size %d is not a multiple of associativity*block size (%d)",
			c.Size, c.Associativity*c.BlockSize)
	}
	return nil
}

// Statistics holds cache statistics.
type Statistics struct {
	Lookups      uint64
	Hits         uint64
	Misses       uint64
	Evictions    uint64
	DecodeErrors uint64
}

// HitRate returns hits over lookups, or 0 before the first lookup.
func (s Statistics) HitRate() float64 {
	if s.Lookups == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Lookups)
}

// line holds the decoded bundles of one cache block.
type line struct {
	bundles []insts.Bundle
	errs    []error
}

// Cache is a set-associative cache of decoded bundles. A miss decodes
// every bundle of the line. Cache is not safe for concurrent use.
type Cache struct {
	config    Config
	directory *akitacache.DirectoryImpl
	lines     []line
	backing   BackingStore
	decoder   *insts.Decoder
	stats     Statistics
}

// New creates a cache in front of backing that decodes with decoder.
func New(config Config, backing BackingStore, decoder *insts.Decoder) (*Cache, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cache config: %w", err)
	}

	numSets := config.Size / (config.Associativity * config.BlockSize)
	perLine := config.BlockSize / insts.BundleSize

	lines := make([]line, numSets*config.Associativity)
	for i := range lines {
		lines[i] = line{
			bundles: make([]insts.Bundle, perLine),
			errs:    make([]error, perLine),
		}
	}

	return &Cache{
		config: config,
		directory: akitacache.NewDirectory(
			numSets,
			config.Associativity,
			config.BlockSize,
			akitacache.NewLRUVictimFinder(),
		),
		lines:   lines,
		backing: backing,
		decoder: decoder,
	}, nil
}

// Config returns the cache configuration.
func (c *Cache) Config() Config {
	return c.config
}

// Stats returns cache statistics.
func (c *Cache) Stats() Statistics {
	return c.stats
}

// ResetStats clears cache statistics.
func (c *Cache) ResetStats() {
	c.stats = Statistics{}
}

func (c *Cache) lineIndex(block *akitacache.Block) int {
	return block.SetID*c.config.Associativity + block.WayID
}

func (c *Cache) blockAddr(addr uint64) uint64 {
	return addr &^ uint64(c.config.BlockSize-1)
}

// Bundle returns the decoded bundle at a 16-byte aligned address.
func (c *Cache) Bundle(addr uint64) (insts.Bundle, error) {
	if addr%insts.BundleSize != 0 {
		return insts.Bundle{}, fmt.Errorf("fetch at %#x: %w", addr, ErrMisaligned)
	}
	c.stats.Lookups++

	blockAddr := c.blockAddr(addr)
	block := c.directory.Lookup(0, blockAddr)
	if block != nil && block.IsValid {
		c.stats.Hits++
		c.directory.Visit(block)
	} else {
		c.stats.Misses++
		block = c.fill(blockAddr)
	}

	l := &c.lines[c.lineIndex(block)]
	i := (addr - blockAddr) / insts.BundleSize
	if err := l.errs[i]; err != nil {
		return insts.Bundle{}, err
	}
	return l.bundles[i], nil
}

// fill decodes the line at blockAddr into a victim block.
func (c *Cache) fill(blockAddr uint64) *akitacache.Block {
	victim := c.directory.FindVictim(blockAddr)
	if victim.IsValid {
		c.stats.Evictions++
	}

	l := &c.lines[c.lineIndex(victim)]
	for i := range l.bundles {
		addr := blockAddr + uint64(i*insts.BundleSize)
		l.errs[i] = nil

		data := c.backing.Read(addr, insts.BundleSize)
		if len(data) == 0 {
			l.errs[i] = fmt.Errorf("fetch at %#x: %w", addr, ErrUnmapped)
			continue
		}
		if err := c.decoder.DecodeInto(data, &l.bundles[i]); err != nil {
			c.stats.DecodeErrors++
			l.errs[i] = fmt.Errorf("fetch at %#x: %w", addr, err)
		}
	}

	victim.Tag = blockAddr
	victim.IsValid = true
	victim.IsDirty = false
	c.directory.Visit(victim)

	return victim
}

// Invalidate drops the line holding addr.
func (c *Cache) Invalidate(addr uint64) {
	block := c.directory.Lookup(0, c.blockAddr(addr))
	if block != nil && block.IsValid {
		block.IsValid = false
	}
}

// Reset invalidates all lines and clears statistics.
func (c *Cache) Reset() {
	c.directory.Reset()
	c.stats = Statistics{}
}
