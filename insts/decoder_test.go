package insts_test

import (
	"bytes"
	"encoding/hex"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/ia64dis/insts"
)

func hexBytes(s string) []byte {
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	Expect(err).NotTo(HaveOccurred())
	return b
}

var (
	nopM = slotOf(27, 0x01)
	nopI = slotOf(27, 0x01)
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("Known bundles", func() {
		It("should decode the PLT entry bundle", func() {
			b, err := decoder.Decode(hexBytes("0b 78 00 02 00 24 00 41 3c 70 29 c0 01 08 00 84"))
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Tag).To(Equal(uint8(0x0b)))
			Expect(b.Count).To(Equal(3))

			Expect(b.Insts[0].Op).To(Equal(insts.OpAddl))
			Expect(b.Insts[0].Unit).To(Equal(insts.UnitA))
			Expect(b.Insts[0].FormName()).To(Equal("A5"))
			Expect(b.Insts[0].Operands()).To(Equal([]insts.Operand{
				insts.GR(15), insts.Imm(0), insts.GR(1),
			}))

			Expect(b.Insts[1].Op).To(Equal(insts.OpLd8Acq))
			Expect(b.Insts[1].Operands()).To(Equal([]insts.Operand{
				insts.GR(16), insts.Mem(15), insts.Imm(8),
			}))

			Expect(b.Insts[2].Op).To(Equal(insts.OpMov))
			Expect(b.Insts[2].Operands()).To(Equal([]insts.Operand{
				insts.GR(14), insts.GR(1),
			}))

			Expect(b.String()).To(Equal(
				"[MMI] addl r15=0x0,r1;; ld8.acq r16=[r15],0x8; mov r14=r1;;"))
		})

		It("should leave a reserved load encoding in place", func() {
			b, err := decoder.Decode(hexBytes("0b 78 00 02 00 24 00 41 3c 70 27 c0 01 08 00 84"))
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Count).To(Equal(3))

			in := b.Insts[1]
			Expect(in.Op).To(Equal(insts.OpPurple))
			Expect(in.Unit).To(Equal(insts.UnitM))
			Expect(in.Reserved()).To(BeTrue())
			Expect(in.FormName()).To(BeEmpty())
			Expect(in.Operands()).To(BeEmpty())

			Expect(b.Insts[0].Op).To(Equal(insts.OpAddl))
			Expect(b.Insts[2].Op).To(Equal(insts.OpMov))
		})

		It("should decode an indirect branch bundle", func() {
			b, err := decoder.Decode(hexBytes("11 08 00 1e 18 10 60 80 04 80 03 00 60 00 80 00"))
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Insts[1].Op).To(Equal(insts.OpMovToBr))
			Expect(b.Insts[1].FormName()).To(Equal("I21"))
			Expect(b.Insts[2].Op).To(Equal(insts.OpBrCond))
			Expect(b.Insts[2].FormName()).To(Equal("B4"))
			Expect(b.String()).To(Equal("[MIB] ld8 r1=[r15]; mov b6=r16; br.few b6;;"))
		})

		It("should pair the L and X slots", func() {
			b, err := decoder.Decode(hexBytes("05 00 00 00 01 00 00 00 00 00 00 00 00 00 00 c0"))
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Count).To(Equal(2))
			Expect(b.Insts[0].Op).To(Equal(insts.OpNopM))
			Expect(b.Insts[1].Op).To(Equal(insts.OpBrlCond))
			Expect(b.Insts[1].Unit).To(Equal(insts.UnitX))
			Expect(b.StopAfter(1)).To(BeTrue())
			Expect(b.String()).To(Equal("[MLX] nop.m 0x0; brl.sptk.few $+0x0;;"))
		})

		DescribeTable("should decode compiler output without error",
			func(line string) {
				b, err := decoder.Decode(hexBytes(line))
				Expect(err).NotTo(HaveOccurred())

				t := b.Template()
				Expect(t.Valid).To(BeTrue())
				if t.Long() {
					Expect(b.Count).To(Equal(2))
				} else {
					Expect(b.Count).To(Equal(3))
				}
				Expect(b.String()).NotTo(ContainSubstring("unknown"))
			},
			Entry("MLX", "0410 1c00 8045 024c 8009 0060 f013 1a60"),
			Entry("MLX with stop", "0510 4118 0021 0000 0000 6020 0023 c86f"),
			Entry("MMI stop", "0908 2144 1814 a000 4444 0820 0100 c000"),
			Entry("MII stop", "0100 0c50 2a04 1048 040a 40c0 0461 0084"),
			Entry("MII alloc", "0158 80fb f027 0082 f5e5 4f60 04ed c79f"),
			Entry("MMI branch setup", "0918 0016 1810 0002 8030 2080 04e9 b79f"),
			Entry("MMI", "0818 0146 1810 4002 9030 2000 0000 0400"),
			Entry("MIB", "1000 2806 9811 5002 2000 4200 50a5 ff58"),
		)
	})

	Describe("Templates", func() {
		It("should reject every reserved template", func() {
			for _, tag := range []uint8{0x06, 0x07, 0x14, 0x15, 0x1a, 0x1b, 0x1e, 0x1f} {
				_, err := decoder.Decode(bundleOf(tag, 0, 0, 0))
				Expect(err).To(MatchError(insts.ErrBadBundle), "tag %#x", tag)
			}
		})

		It("should describe the rejected tag", func() {
			_, err := decoder.Decode(bundleOf(0x06, 0, 0, 0))
			Expect(err).To(MatchError("template 0x6: bad bundle"))
		})

		It("should decode every defined template", func() {
			for tag := uint8(0); tag < 32; tag++ {
				t, ok := insts.LookupTemplate(tag)
				if !ok {
					continue
				}
				b, err := decoder.Decode(bundleOf(tag, 0, 0, 0))
				Expect(err).NotTo(HaveOccurred(), "tag %#x", tag)
				if tag == 0x04 || tag == 0x05 {
					Expect(b.Count).To(Equal(2))
				} else {
					Expect(b.Count).To(Equal(3))
				}
				Expect(b.Template()).To(Equal(t))
			}
		})

		It("should report stops per template", func() {
			b, err := decoder.Decode(bundleOf(0x0b, nopM, nopM, nopI))
			Expect(err).NotTo(HaveOccurred())
			Expect(b.StopAfter(0)).To(BeTrue())
			Expect(b.StopAfter(1)).To(BeFalse())
			Expect(b.StopAfter(2)).To(BeTrue())
			Expect(b.StopAfter(3)).To(BeFalse())
		})

		It("should render invalid bundles", func() {
			b := &insts.Bundle{Tag: 0x1e}
			Expect(b.String()).To(Equal("tag: invalid (30)"))
		})
	})

	Describe("Integer ALU", func() {
		It("should promote tag 9 in M and I slots to addl", func() {
			addl := slotOf(37, 9, 6, 5, 20, 1)
			b, err := decoder.Decode(bundleOf(0x00, addl, addl, nopI))
			Expect(err).NotTo(HaveOccurred())
			for _, in := range b.Insts[:2] {
				Expect(in.Unit).To(Equal(insts.UnitA))
				Expect(in.Op).To(Equal(insts.OpAddl))
				Expect(in.FormName()).To(Equal("A5"))
			}
			Expect(b.Insts[2].Op).To(Equal(insts.OpNopI))
		})

		It("should rewrite addl from r0 as mov", func() {
			addl := slotOf(37, 9, 6, 5, 13, 0x2a)
			b, err := decoder.Decode(bundleOf(0x00, addl, nopI, nopI))
			Expect(err).NotTo(HaveOccurred())
			in := b.Insts[0]
			Expect(in.Op).To(Equal(insts.OpMov))
			Expect(in.Operands()).To(Equal([]insts.Operand{insts.GR(5), insts.Imm(0x2a)}))
			Expect(in.String()).To(Equal("mov r5=0x2a"))
		})

		It("should rewrite adds of zero as mov", func() {
			adds := slotOf(37, 8, 34, 2, 6, 14, 20, 1)
			b, err := decoder.Decode(bundleOf(0x00, nopM, adds, nopI))
			Expect(err).NotTo(HaveOccurred())
			in := b.Insts[1]
			Expect(in.Op).To(Equal(insts.OpMov))
			Expect(in.Operands()).To(Equal([]insts.Operand{insts.GR(14), insts.GR(1)}))
		})

		It("should sign extend negative immediates", func() {
			// adds r3=-1,r2
			adds := slotOf(37, 8, 34, 2, 6, 3, 20, 2, 13, 0x7f, 27, 0x3f, 36, 1)
			b, err := decoder.Decode(bundleOf(0x00, adds, nopI, nopI))
			Expect(err).NotTo(HaveOccurred())
			in := b.Insts[0]
			Expect(in.Op).To(Equal(insts.OpAdds))
			Expect(in.Ops[1].Signed()).To(Equal(int64(-1)))
			Expect(in.String()).To(Equal("adds r3=-0x1,r2"))
		})

		It("should mark compare destinations", func() {
			// cmp.eq p6,p7=r8,r9
			cmp := slotOf(37, 0xe, 6, 6, 27, 7, 13, 8, 20, 9)
			b, err := decoder.Decode(bundleOf(0x00, cmp, nopI, nopI))
			Expect(err).NotTo(HaveOccurred())
			in := b.Insts[0]
			Expect(in.Op).To(Equal(insts.OpCmpEq))
			dest, ok := in.DestBoundary()
			Expect(ok).To(BeTrue())
			Expect(dest).To(Equal(1))
			Expect(in.String()).To(Equal("cmp.eq p6,p7=r8,r9"))
		})
	})

	Describe("Floating point", func() {
		decodeF := func(s uint64) insts.Instruction {
			b, err := decoder.Decode(bundleOf(0x0c, nopM, s, nopI))
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Insts[1].Unit).To(Equal(insts.UnitF))
			return b.Insts[1]
		}

		It("should rewrite fma with an f0 addend as fmpy", func() {
			in := decodeF(slotOf(37, 8, 6, 10, 20, 11, 27, 12))
			Expect(in.Op).To(Equal(insts.OpFmpy))
			Expect(in.Operands()).To(HaveLen(3))
			Expect(in.String()).To(Equal("fmpy.s0 f10=f11,f12"))
		})

		It("should rewrite fma by f1 as fnorm", func() {
			in := decodeF(slotOf(37, 8, 6, 10, 20, 11, 27, 1, 34, 1))
			Expect(in.Op).To(Equal(insts.OpFnorm))
			Expect(in.Operands()).To(Equal([]insts.Operand{insts.FR(10), insts.FR(11)}))
			Expect(in.String()).To(Equal("fnorm.s1 f10=f11"))
		})

		It("should keep fma with a real addend", func() {
			in := decodeF(slotOf(37, 8, 6, 10, 20, 11, 27, 12, 13, 13))
			Expect(in.Op).To(Equal(insts.OpFma))
			Expect(in.String()).To(Equal("fma.s0 f10=f11,f12,f13"))
		})

		It("should rewrite xma.l as xmpy.l without a status field", func() {
			in := decodeF(slotOf(37, 0xe, 36, 1, 6, 4, 20, 5, 27, 6))
			Expect(in.Op).To(Equal(insts.OpXmpyL))
			_, ok := in.StatusField()
			Expect(ok).To(BeFalse())
			Expect(in.String()).To(Equal("xmpy.l f4=f5,f6"))
		})

		It("should omit the status field for fmerge", func() {
			in := decodeF(slotOf(27, 0x10, 6, 2, 13, 3, 20, 4, 34, 2))
			Expect(in.Op).To(Equal(insts.OpFmergeS))
			_, ok := in.StatusField()
			Expect(ok).To(BeFalse())
			Expect(in.String()).To(Equal("fmerge.s f2=f3,f4"))
		})

		It("should keep the status field for frcpa", func() {
			in := decodeF(slotOf(33, 1, 34, 1, 6, 8, 13, 9, 20, 10, 27, 6))
			Expect(in.Op).To(Equal(insts.OpFrcpa))
			sf, ok := in.StatusField()
			Expect(ok).To(BeTrue())
			Expect(sf).To(Equal(uint8(1)))
			Expect(in.String()).To(Equal("frcpa.s1 f8,p6=f9,f10"))
		})

		It("should decode fclass without a status field", func() {
			in := decodeF(slotOf(37, 5, 6, 6, 27, 7, 13, 8, 20, 0x42, 33, 1))
			Expect(in.Op).To(Equal(insts.OpFclassM))
			_, ok := in.StatusField()
			Expect(ok).To(BeFalse())
			Expect(in.String()).To(Equal("fclass.m p6,p7=f8,0xc2"))
		})
	})

	Describe("Memory", func() {
		It("should render locality hints", func() {
			ld := slotOf(37, 4, 30, 0x03, 28, 1, 6, 1, 20, 15)
			b, err := decoder.Decode(bundleOf(0x00, ld, nopI, nopI))
			Expect(err).NotTo(HaveOccurred())
			hint, ok := b.Insts[0].PrefetchHint()
			Expect(ok).To(BeTrue())
			Expect(hint).To(Equal(uint8(1)))
			Expect(b.Insts[0].String()).To(Equal("ld8.nt1 r1=[r15]"))
		})

		It("should render alloc with its frame sizes", func() {
			alloc := slotOf(37, 1, 33, 6, 6, 34, 13, 8, 20, 6)
			b, err := decoder.Decode(bundleOf(0x00, alloc, nopI, nopI))
			Expect(err).NotTo(HaveOccurred())
			in := b.Insts[0]
			Expect(in.Op).To(Equal(insts.OpAlloc))
			_, ok := in.PrefetchHint()
			Expect(ok).To(BeFalse())
			Expect(in.String()).To(Equal("alloc r34=ar.pfs,8,6,0"))
		})

		DescribeTable("indirect register file moves",
			func(x6, form string, s uint64, want string) {
				b, err := decoder.Decode(bundleOf(0x00, s, nopI, nopI))
				Expect(err).NotTo(HaveOccurred())
				in := b.Insts[0]
				Expect(in.FormName()).To(Equal(form), x6)
				_, ok := in.PrefetchHint()
				Expect(ok).To(BeFalse())
				Expect(in.String()).To(Equal(want))
			},
			Entry("to rr", "0x00", "M42", slotOf(37, 1, 27, 0x00, 13, 2, 20, 3), "mov rr[r3]=r2"),
			Entry("to pkr", "0x03", "M42", slotOf(37, 1, 27, 0x03, 13, 2, 20, 3), "mov pkr[r3]=r2"),
			Entry("to msr", "0x06", "M42", slotOf(37, 1, 27, 0x06, 13, 2, 20, 3), "mov msr[r3]=r2"),
			Entry("itr.d", "0x0e", "M42", slotOf(37, 1, 27, 0x0e, 13, 2, 20, 3), "itr.d dtr[r3]=r2"),
			Entry("from pmd", "0x15", "M43", slotOf(37, 1, 27, 0x15, 6, 1, 20, 3), "mov r1=pmd[r3]"),
			Entry("from cpuid", "0x17", "M43", slotOf(37, 1, 27, 0x17, 6, 1, 20, 3), "mov r1=cpuid[r3]"),
		)
	})

	Describe("Integer", func() {
		decodeI := func(s uint64) insts.Instruction {
			b, err := decoder.Decode(bundleOf(0x00, nopM, s, nopI))
			Expect(err).NotTo(HaveOccurred())
			return b.Insts[1]
		}

		It("should render dep.z filling the register as shl", func() {
			in := decodeI(slotOf(37, 5, 34, 1, 33, 1, 6, 3, 13, 4, 20, 59, 27, 59))
			Expect(in.Op).To(Equal(insts.OpDepZ))
			Expect(in.FormName()).To(Equal("I12"))
			Expect(in.String()).To(Equal("shl r3=r4,0x4"))
		})

		It("should render extr.u to the top bit as shr.u", func() {
			in := decodeI(slotOf(37, 5, 34, 1, 6, 3, 20, 4, 14, 8, 27, 55))
			Expect(in.Op).To(Equal(insts.OpExtrU))
			Expect(in.String()).To(Equal("shr.u r3=r4,0x8"))
		})

		It("should keep extr.u for short fields", func() {
			in := decodeI(slotOf(37, 5, 34, 1, 6, 3, 20, 4, 14, 8, 27, 7))
			Expect(in.String()).To(Equal("extr.u r3=r4,0x8,0x8"))
		})

		It("should decode mux1 with a permutation type", func() {
			// @rev
			in := decodeI(slotOf(37, 7, 34, 3, 30, 2, 28, 2, 20, 0xb, 13, 2, 6, 1))
			Expect(in.Op).To(Equal(insts.OpMux1))
			Expect(in.FormName()).To(Equal("I3"))
			Expect(in.String()).To(Equal("mux1 r1=r2,0xb"))
		})

		It("should decode mux2 with its 8-bit mask", func() {
			in := decodeI(slotOf(37, 7, 33, 1, 34, 3, 30, 2, 28, 2, 20, 0x1b, 13, 2, 6, 1))
			Expect(in.Op).To(Equal(insts.OpMux2))
			Expect(in.FormName()).To(Equal("I4"))
			Expect(in.String()).To(Equal("mux2 r1=r2,0x1b"))
		})

		DescribeTable("pmpyshr2 shift counts",
			func(x2b, count2 uint64, want string) {
				in := decodeI(slotOf(37, 7, 33, 1, 28, x2b, 30, count2, 6, 1, 13, 2, 20, 3))
				Expect(in.FormName()).To(Equal("I1"))
				Expect(in.String()).To(Equal(want))
			},
			Entry("signed 0", uint64(3), uint64(0), "pmpyshr2 r1=r2,r3,0x0"),
			Entry("signed 7", uint64(3), uint64(1), "pmpyshr2 r1=r2,r3,0x7"),
			Entry("signed 15", uint64(3), uint64(2), "pmpyshr2 r1=r2,r3,0xf"),
			Entry("unsigned 16", uint64(1), uint64(3), "pmpyshr2.u r1=r2,r3,0x10"),
		)

		It("should decode the variable pshl2", func() {
			in := decodeI(slotOf(37, 7, 33, 1, 30, 1, 6, 1, 13, 2, 20, 3))
			Expect(in.Op).To(Equal(insts.OpPshl2))
			Expect(in.FormName()).To(Equal("I7"))
			Expect(in.String()).To(Equal("pshl2 r1=r2,r3"))
		})

		It("should treat ve=1 multimedia encodings as reserved", func() {
			in := decodeI(slotOf(37, 7, 32, 1, 34, 3, 30, 2, 28, 2))
			Expect(in.Reserved()).To(BeTrue())
		})

		It("should decode chk.s.i with its recovery target", func() {
			in := decodeI(slotOf(37, 0, 33, 1, 13, 5, 6, 4))
			Expect(in.Op).To(Equal(insts.OpChkSIInt))
			Expect(in.FormName()).To(Equal("I20"))
			disp, idx, ok := in.Target()
			Expect(ok).To(BeTrue())
			Expect(idx).To(Equal(1))
			Expect(disp).To(Equal(int64(0x40)))
			Expect(in.String()).To(Equal("chk.s.i r5,$+0x40"))
		})

		It("should decode a backward chk.s.i", func() {
			in := decodeI(slotOf(37, 0, 33, 1, 13, 5, 6, 0x7f, 20, 0x1fff, 36, 1))
			disp, _, ok := in.Target()
			Expect(ok).To(BeTrue())
			Expect(disp).To(Equal(int64(-16)))
			Expect(in.String()).To(Equal("chk.s.i r5,$-0x10"))
		})

		It("should decode mov pr=r2,mask17", func() {
			in := decodeI(slotOf(37, 0, 33, 3, 13, 2, 6, 0x7f, 24, 0xff))
			Expect(in.Op).To(Equal(insts.OpMov))
			Expect(in.FormName()).To(Equal("I23"))
			Expect(in.String()).To(Equal("mov pr=r2,0xfffe"))
		})

		It("should sign-extend mask17", func() {
			in := decodeI(slotOf(37, 0, 33, 3, 13, 2, 6, 0x7f, 24, 0xff, 36, 1))
			Expect(in.String()).To(Equal("mov pr=r2,-0x2"))
		})

		It("should decode mov pr.rot=imm44", func() {
			in := decodeI(slotOf(37, 0, 33, 2, 6, 1))
			Expect(in.FormName()).To(Equal("I24"))
			Expect(in.String()).To(Equal("mov pr.rot=0x10000"))
		})
	})

	Describe("Long slots", func() {
		It("should assemble the movl immediate from both slots", func() {
			x := slotOf(0, 3, 6, 8, 13, 0x10, 22, 0x14, 27, 0x64, 36, 1, 37, 6)
			l := uint64(0x1fb72ea61d9)
			b, err := decoder.Decode(bundleOf(0x04, nopM, l, x))
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Count).To(Equal(2))

			in := b.Insts[1]
			Expect(in.Op).To(Equal(insts.OpMovl))
			Expect(in.Predicate).To(Equal(uint8(3)))
			Expect(in.Ops[1]).To(Equal(insts.UImm(0xfedcba9876543210)))
			Expect(in.String()).To(Equal("(p03) movl r8=0xfedcba9876543210"))
		})

		It("should decode a backward brl.call", func() {
			x := slotOf(13, 0xfffff, 36, 1, 37, 0xd)
			b, err := decoder.Decode(bundleOf(0x05, nopM, 1<<41-1, x))
			Expect(err).NotTo(HaveOccurred())

			in := b.Insts[1]
			Expect(in.Op).To(Equal(insts.OpBrlCall))
			disp, idx, ok := in.Target()
			Expect(ok).To(BeTrue())
			Expect(idx).To(Equal(1))
			Expect(disp).To(Equal(int64(-16)))
			Expect(in.String()).To(Equal("brl.call.sptk.few b0=$-0x10"))
		})
	})

	Describe("Branches", func() {
		It("should clear the predicate of brp", func() {
			brp := slotOf(37, 2, 27, 0x10, 3, 2, 13, 6)
			b, err := decoder.Decode(bundleOf(0x16, brp, brp, brp))
			Expect(err).NotTo(HaveOccurred())
			in := b.Insts[0]
			Expect(in.Op).To(Equal(insts.OpBrp))
			Expect(in.Predicate).To(BeZero())
			Expect(in.String()).To(HavePrefix("brp"))
		})

		It("should report IP-relative targets", func() {
			// (p06) br.cond.dpnt.many $+0x40
			br := slotOf(0, 6, 37, 4, 13, 4, 12, 1, 33, 3)
			b, err := decoder.Decode(bundleOf(0x10, nopM, nopI, br))
			Expect(err).NotTo(HaveOccurred())
			in := b.Insts[2]
			disp, idx, ok := in.Target()
			Expect(ok).To(BeTrue())
			Expect(idx).To(Equal(0))
			Expect(disp).To(Equal(int64(0x40)))
			Expect(in.String()).To(Equal("(p06) br.cond.dpnt.many $+0x40"))
		})

		It("should render unpredicated br.cond as br", func() {
			br := slotOf(37, 4, 13, 0xfffff, 36, 1)
			b, err := decoder.Decode(bundleOf(0x10, nopM, nopI, br))
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Insts[2].String()).To(Equal("br.few $-0x10"))
		})

		It("should treat the br.call link register as its destination", func() {
			call := slotOf(37, 5, 6, 6, 13, 3)
			b, err := decoder.Decode(bundleOf(0x10, nopM, nopI, call))
			Expect(err).NotTo(HaveOccurred())
			in := b.Insts[2]
			Expect(in.FormName()).To(Equal("B3"))
			dest, ok := in.DestBoundary()
			Expect(ok).To(BeTrue())
			Expect(dest).To(Equal(0))
			Expect(in.Ops[0]).To(Equal(insts.BR(6)))
			Expect(in.String()).To(Equal("br.call.sptk.few b6=$+0x30"))
		})

		It("should not report targets for non-branches", func() {
			b, err := decoder.Decode(bundleOf(0x10, nopM, nopI, 0))
			Expect(err).NotTo(HaveOccurred())
			_, _, ok := b.Insts[0].Target()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Strict mode", func() {
		It("should reject reserved encodings", func() {
			strict := insts.NewDecoder(insts.WithStrict(true))
			Expect(strict.Strict()).To(BeTrue())
			_, err := strict.Decode(hexBytes("0b 78 00 02 00 24 00 41 3c 70 27 c0 01 08 00 84"))
			Expect(err).To(MatchError(insts.ErrBadOpcode))
			Expect(err.Error()).To(Equal("slot 1: M purple: bad opcode"))
		})

		It("should accept fully defined bundles", func() {
			strict := insts.NewDecoder(insts.WithStrict(true))
			_, err := strict.Decode(hexBytes("0b 78 00 02 00 24 00 41 3c 70 29 c0 01 08 00 84"))
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Input handling", func() {
		It("should report short input", func() {
			_, err := decoder.Decode(make([]byte, 15))
			Expect(err).To(MatchError(insts.ErrExhaustedInput))
			Expect(err.Error()).To(Equal("need 16 bytes, have 15: exhausted input"))
		})

		It("should read consecutive bundles from a reader", func() {
			stream := append(bundleOf(0x00, nopM, nopI, nopI), bundleOf(0x11, nopM, nopI, 0)...)
			r := bytes.NewReader(stream)

			first, err := decoder.DecodeFrom(r)
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Tag).To(Equal(uint8(0x00)))

			second, err := decoder.DecodeFrom(r)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Tag).To(Equal(uint8(0x11)))

			_, err = decoder.DecodeFrom(r)
			Expect(err).To(MatchError(insts.ErrExhaustedInput))
		})

		It("should report a truncated reader", func() {
			_, err := decoder.DecodeFrom(bytes.NewReader(make([]byte, 10)))
			Expect(err).To(MatchError(insts.ErrExhaustedInput))
		})

		It("should ignore trailing bytes", func() {
			b := append(bundleOf(0x00, nopM, nopI, nopI), 0xff, 0xff)
			bundle, err := decoder.Decode(b)
			Expect(err).NotTo(HaveOccurred())
			Expect(bundle.String()).To(Equal("[MII] nop.m 0x0; nop.i 0x0; nop.i 0x0"))
		})
	})

	Describe("Operands", func() {
		It("should name application registers", func() {
			Expect(insts.AR(insts.ARPFS).String()).To(Equal("ar.pfs"))
			Expect(insts.AR(insts.AppReg(99)).String()).To(Equal("ar99"))
		})

		It("should name control and indirect registers", func() {
			Expect(insts.CR(0).String()).To(Equal("cr.dcr"))
			Expect(insts.CR(5).String()).To(Equal("cr5"))
			Expect(insts.Indirect(insts.SpaceRR, 3).String()).To(Equal("rr[r3]"))
		})
	})
})
