package fetch_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ia64dis/fetch"
	"github.com/sarchlab/ia64dis/insts"
	"github.com/sarchlab/ia64dis/loader"
)

var _ = Describe("Cache", func() {
	var (
		c     *fetch.Cache
		image *fetch.Image
	)

	BeforeEach(func() {
		text := code(32)
		// A reserved template at 0x1010.
		copy(text[16:], bundle(0x06, nop, nop, nop))
		image = fetch.NewImage([]loader.Segment{
			{VirtAddr: 0x1000, Data: text, Flags: loader.SegmentFlagExecute},
			// A segment starting mid-line and ending in a fragment.
			{VirtAddr: 0x4030, Data: append(code(1), 0x00, 0x01)},
		})

		// 256B, 2-way, 64B lines = 2 sets
		config := fetch.Config{
			Size:          256,
			Associativity: 2,
			BlockSize:     64,
		}
		var err error
		c, err = fetch.New(config, image, insts.NewDecoder())
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Bundle", func() {
		It("should miss on a cold cache", func() {
			b, err := c.Bundle(0x1000)
			Expect(err).NotTo(HaveOccurred())
			Expect(b.String()).To(Equal("[MII] nop.m 0x0; nop.i 0x0; nop.i 0x0"))

			stats := c.Stats()
			Expect(stats.Lookups).To(Equal(uint64(1)))
			Expect(stats.Misses).To(Equal(uint64(1)))
			Expect(stats.Hits).To(BeZero())
		})

		It("should hit on other bundles of the same line", func() {
			_, err := c.Bundle(0x1000)
			Expect(err).NotTo(HaveOccurred())
			_, err = c.Bundle(0x1030)
			Expect(err).NotTo(HaveOccurred())

			stats := c.Stats()
			Expect(stats.Hits).To(Equal(uint64(1)))
			Expect(stats.HitRate()).To(BeNumerically("==", 0.5))
		})

		It("should reject misaligned addresses", func() {
			_, err := c.Bundle(0x1008)
			Expect(err).To(MatchError(fetch.ErrMisaligned))
			Expect(c.Stats().Lookups).To(BeZero())
		})

		It("should report unmapped addresses", func() {
			_, err := c.Bundle(0x9000)
			Expect(err).To(MatchError(fetch.ErrUnmapped))
		})

		It("should cache decode errors with the line", func() {
			_, err := c.Bundle(0x1010)
			Expect(err).To(MatchError(insts.ErrBadBundle))
			Expect(c.Stats().DecodeErrors).To(Equal(uint64(1)))

			_, err = c.Bundle(0x1010)
			Expect(err).To(MatchError(insts.ErrBadBundle))
			Expect(c.Stats().Hits).To(Equal(uint64(1)))
			Expect(c.Stats().DecodeErrors).To(Equal(uint64(1)))
		})

		It("should handle partially mapped lines", func() {
			_, err := c.Bundle(0x4000)
			Expect(err).To(MatchError(fetch.ErrUnmapped))

			_, err = c.Bundle(0x4030)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Stats().Hits).To(Equal(uint64(1)))

			_, err = c.Bundle(0x4040)
			Expect(err).To(MatchError(insts.ErrExhaustedInput))
		})
	})

	Describe("Eviction", func() {
		It("should evict the least recently used line of a set", func() {
			// 0x1000, 0x1080 and 0x1100 all map to set 0
			for _, addr := range []uint64{0x1000, 0x1080, 0x1000, 0x1100} {
				_, err := c.Bundle(addr)
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(c.Stats().Evictions).To(Equal(uint64(1)))

			c.ResetStats()
			_, err := c.Bundle(0x1000)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Stats().Hits).To(Equal(uint64(1)))

			_, err = c.Bundle(0x1080)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Stats().Misses).To(Equal(uint64(1)))
		})
	})

	Describe("Invalidate and Reset", func() {
		It("should refetch an invalidated line", func() {
			_, _ = c.Bundle(0x1000)
			c.Invalidate(0x1020)
			_, _ = c.Bundle(0x1000)
			Expect(c.Stats().Misses).To(Equal(uint64(2)))
		})

		It("should clear lines and statistics on reset", func() {
			_, _ = c.Bundle(0x1000)
			c.Reset()
			Expect(c.Stats()).To(Equal(fetch.Statistics{}))

			_, _ = c.Bundle(0x1000)
			Expect(c.Stats().Misses).To(Equal(uint64(1)))
		})
	})

	Describe("Config", func() {
		It("should accept the default configuration", func() {
			config := fetch.DefaultConfig()
			Expect(config.Validate()).To(Succeed())
			Expect(config.BlockSize).To(Equal(64))
		})

		DescribeTable("should reject bad geometry",
			func(config fetch.Config) {
				Expect(config.Validate()).NotTo(Succeed())
				_, err := fetch.New(config, image, insts.NewDecoder())
				Expect(err).To(MatchError(ContainSubstring("invalid cache config")))
			},
			Entry("block not a bundle multiple", fetch.Config{Size: 1024, Associativity: 1, BlockSize: 24}),
			Entry("block not a power of two", fetch.Config{Size: 960, Associativity: 1, BlockSize: 48}),
			Entry("zero ways", fetch.Config{Size: 1024, Associativity: 0, BlockSize: 64}),
			Entry("partial set", fetch.Config{Size: 1000, Associativity: 2, BlockSize: 64}),
		)
	})
})
