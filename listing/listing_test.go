package listing_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ia64dis/insts"
	"github.com/sarchlab/ia64dis/listing"
	"github.com/sarchlab/ia64dis/loader"
)

var _ = Describe("Sweep", func() {
	var seg loader.Segment

	BeforeEach(func() {
		seg = loader.Segment{
			VirtAddr: 0x1000,
			Data: concat(
				bundle(0x10, nop, nop, brForward),
				mii,
				bundle(0x06, nop, nop, nop),
				mii,
				mii,
				[]byte{0x00, 0x01},
			),
			Flags: loader.SegmentFlagExecute,
		}
	})

	sweep := func(opts listing.Options) *listing.Listing {
		l, err := listing.Sweep(context.Background(), insts.NewDecoder(), seg, opts)
		Expect(err).NotTo(HaveOccurred())
		return l
	}

	It("should produce one entry per bundle", func() {
		l := sweep(listing.Options{})

		Expect(l.Base).To(Equal(uint64(0x1000)))
		Expect(l.Entries).To(HaveLen(6))
		for i, e := range l.Entries {
			Expect(e.Addr).To(Equal(uint64(0x1000 + 16*i)))
		}
		Expect(l.Entries[1].Err).NotTo(HaveOccurred())
		Expect(l.Entries[1].Bundle.String()).To(Equal("[MII] nop.m 0x0; nop.i 0x0; nop.i 0x0"))
	})

	It("should record decode errors per entry", func() {
		l := sweep(listing.Options{})

		Expect(l.Entries[2].Err).To(MatchError(insts.ErrBadBundle))
		Expect(l.Entries[3].Err).NotTo(HaveOccurred())
		Expect(l.Errors()).To(HaveLen(2))
	})

	It("should keep a trailing fragment", func() {
		l := sweep(listing.Options{})

		last := l.Entries[5]
		Expect(last.Bytes).To(Equal([]byte{0x00, 0x01}))
		Expect(last.Err).To(MatchError(insts.ErrExhaustedInput))
	})

	It("should give the same result for any worker count", func() {
		serial := sweep(listing.Options{Workers: 1})
		parallel := sweep(listing.Options{Workers: 4, ChunkBundles: 1})

		Expect(parallel.Entries).To(Equal(serial.Entries))
		Expect(parallel.Labels()).To(Equal(serial.Labels()))
	})

	It("should report progress per chunk", func() {
		var seen []int
		sweep(listing.Options{
			Workers:      3,
			ChunkBundles: 2,
			Progress:     func(done int) { seen = append(seen, done) },
		})

		Expect(seen).To(HaveLen(3))
		Expect(seen[len(seen)-1]).To(Equal(6))
		for i := 1; i < len(seen); i++ {
			Expect(seen[i]).To(BeNumerically(">", seen[i-1]))
		}
	})

	It("should label branch targets", func() {
		l := sweep(listing.Options{})

		Expect(l.Labels()).To(Equal([]uint64{0x1040}))
		name, ok := l.Label(0x1040)
		Expect(ok).To(BeTrue())
		Expect(name).To(Equal("label_1040"))

		_, ok = l.Label(0x1010)
		Expect(ok).To(BeFalse())
		_, ok = l.Label(0x1041)
		Expect(ok).To(BeFalse())
	})

	It("should name labels after symbols", func() {
		l := sweep(listing.Options{Symbols: []loader.Symbol{
			{Name: "main", Addr: 0x1000, Size: 0x40},
			{Name: "elsewhere", Addr: 0x8000},
		}})

		Expect(l.Labels()).To(Equal([]uint64{0x1000, 0x1040}))
		name, ok := l.Label(0x1000)
		Expect(ok).To(BeTrue())
		Expect(name).To(Equal("main"))
	})

	It("should find entries by address", func() {
		l := sweep(listing.Options{})

		e, ok := l.Entry(0x1030)
		Expect(ok).To(BeTrue())
		Expect(e.Addr).To(Equal(uint64(0x1030)))

		_, ok = l.Entry(0x1008)
		Expect(ok).To(BeFalse())
	})

	It("should handle an empty segment", func() {
		seg.Data = nil
		l := sweep(listing.Options{})

		Expect(l.Entries).To(BeEmpty())
		Expect(l.Labels()).To(BeEmpty())
	})

	It("should stop when cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := listing.Sweep(ctx, insts.NewDecoder(), seg, listing.Options{})
		Expect(err).To(MatchError(context.Canceled))
	})
})
