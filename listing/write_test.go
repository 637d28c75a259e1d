package listing_test

import (
	"bytes"
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ia64dis/insts"
	"github.com/sarchlab/ia64dis/listing"
	"github.com/sarchlab/ia64dis/loader"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

var _ = Describe("Write", func() {
	var l *listing.Listing

	BeforeEach(func() {
		seg := loader.Segment{
			VirtAddr: 0x1000,
			Data: concat(
				bundle(0x10, nop, nop, brForward),
				bundle(0x06, nop, nop, nop),
				mii,
				mii,
				mii,
			),
		}
		var err error
		l, err = listing.Sweep(context.Background(), insts.NewDecoder(), seg, listing.Options{
			Symbols: []loader.Symbol{{Name: "main", Addr: 0x1000}},
		})
		Expect(err).NotTo(HaveOccurred())
	})

	render := func(opts listing.WriteOptions) []string {
		var buf bytes.Buffer
		Expect(listing.Write(&buf, l, opts)).To(Succeed())
		return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	}

	It("should write one line per bundle", func() {
		lines := render(listing.WriteOptions{})

		Expect(lines).To(HaveLen(5))
		Expect(lines[2]).To(Equal("0000000000001020: [MII] nop.m 0x0; nop.i 0x0; nop.i 0x0"))
		Expect(lines[0]).To(HavePrefix("0000000000001000: [MIB] "))
		Expect(lines[0]).To(HaveSuffix("br.few $+0x40"))
	})

	It("should mark bundles that fail to decode", func() {
		lines := render(listing.WriteOptions{})

		Expect(lines[1]).To(Equal("0000000000001010: <bad bundle: template 0x6: bad bundle>"))
	})

	It("should write labels and references", func() {
		lines := render(listing.WriteOptions{ShowLabels: true})

		Expect(lines[0]).To(Equal("main:"))
		Expect(lines[1]).To(HaveSuffix("br.few $+0x40  // label_1040"))
		Expect(lines).To(ContainElement("label_1040:"))
		Expect(lines[len(lines)-1]).To(HavePrefix("0000000000001040: "))
	})

	It("should write raw bytes", func() {
		lines := render(listing.WriteOptions{ShowBytes: true})

		Expect(lines[2]).To(HavePrefix("0000000000001020: 00 00 00 00 01 00 00 00 00 02 00 00 00 00 04 00  [MII]"))
	})

	It("should color only when asked", func() {
		plain := render(listing.WriteOptions{ShowLabels: true})
		colored := render(listing.WriteOptions{ShowLabels: true, Color: true})

		Expect(strings.Join(plain, "\n")).NotTo(ContainSubstring("\x1b["))
		Expect(strings.Join(colored, "\n")).To(ContainSubstring("\x1b["))
	})

	It("should report write errors", func() {
		Expect(listing.Write(failingWriter{}, l, listing.WriteOptions{})).NotTo(Succeed())
	})
})
