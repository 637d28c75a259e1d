package insts

// Table 4-43 System/Memory Management 4-bit+2-bit Ext. x6 0x01 is
// handled by Table 4-46 before indexing.
var table4_43 = [64]entryM{
	0x00: {OpBreakM, M37},
	0x04: {OpSum, M44},
	0x05: {OpRum, M44},
	0x06: {OpSsm, M44},
	0x07: {OpRsm, M44},
	0x0a: {OpLoadrs, M25},
	0x0c: {OpFlushrs, M25},
	0x10: {OpInvala, M24},
	0x12: {OpInvalaEInt, M26},
	0x13: {OpInvalaEFp, M27},
	0x14: {OpSum, M44},
	0x15: {OpRum, M44},
	0x16: {OpSsm, M44},
	0x17: {OpRsm, M44},
	0x20: {OpFwb, M24},
	0x22: {OpMf, M24},
	0x23: {OpMfA, M24},
	0x24: {OpSum, M44},
	0x25: {OpRum, M44},
	0x26: {OpSsm, M44},
	0x27: {OpRsm, M44},
	0x28: {OpMovM, M30},
	0x30: {OpSrlzD, M24},
	0x31: {OpSrlzI, M24},
	0x33: {OpSyncI, M24},
	0x34: {OpSum, M44},
	0x35: {OpRum, M44},
	0x36: {OpSsm, M44},
	0x37: {OpRsm, M44},
}

// Table 4-42 Opcode 0 System/Memory Management 3-bit Opcode Extensions
var table4_42 = [8]entryM{
	0x04: {OpChkANcInt, M22},
	0x05: {OpChkAClrInt, M22},
	0x06: {OpChkANcFp, M23},
	0x07: {OpChkAClrFp, M23},
}

// Table 4-45 System/Memory Management 6-bit Ext. The MSR moves at 0x06
// and 0x16 are unallocated in the manual but used by firmware.
var table4_45 = [64]entryM{
	0x00: {OpMov, M42},
	0x01: {OpMov, M42},
	0x02: {OpMov, M42},
	0x03: {OpMov, M42},
	0x04: {OpMov, M42},
	0x05: {OpMov, M42},
	0x06: {OpMov, M42},
	0x09: {OpPtcL, M45},
	0x0a: {OpPtcG, M45},
	0x0b: {OpPtcGa, M45},
	0x0c: {OpPtrD, M45},
	0x0d: {OpPtrI, M45},
	0x0e: {OpItrD, M42},
	0x0f: {OpItrI, M42},
	0x10: {OpMov, M43},
	0x11: {OpMov, M43},
	0x12: {OpMov, M43},
	0x13: {OpMov, M43},
	0x14: {OpMov, M43},
	0x15: {OpMov, M43},
	0x16: {OpMov, M43},
	0x17: {OpMov, M43},
	0x18: {OpProbeR, M39},
	0x19: {OpProbeW, M39},
	0x1a: {OpThash, M46},
	0x1b: {OpTtag, M46},
	0x1e: {OpTpa, M46},
	0x1f: {OpTak, M46},
	0x21: {OpMov, M36},
	0x22: {OpMovM, M31},
	0x24: {OpMov, M33},
	0x25: {OpMov, M36},
	0x29: {OpMov, M35},
	0x2a: {OpMovM, M29},
	0x2c: {OpMov, M32},
	0x2d: {OpMov, M35},
	0x2e: {OpItcD, M41},
	0x2f: {OpItcI, M41},
	0x30: {OpFc, M28},
	0x31: {OpProbeRwFault, M40},
	0x32: {OpProbeRFault, M40},
	0x33: {OpProbeWFault, M40},
	0x34: {OpPtcE, M47},
	0x38: {OpProbeR, M38},
	0x39: {OpProbeW, M38},
}

// Table 4-44 Opcode 1 System/Memory Management 3-bit Opcode Extensions
var table4_44 = [8]entryM{
	0x01: {OpChkSMInt, M20},
	0x03: {OpChkSFp, M21},
	0x06: {OpAlloc, M34},
}

// Table 4-30 Integer Load/Store Opcode Extensions. The manual lists M2
// and M6 here; the m=0 loads are M1 and the stores M4.
var table4_30 = [64]entryM{
	0x00: {OpLd1, M1},
	0x01: {OpLd2, M1},
	0x02: {OpLd4, M1},
	0x03: {OpLd8, M1},
	0x04: {OpLd1S, M1},
	0x05: {OpLd2S, M1},
	0x06: {OpLd4S, M1},
	0x07: {OpLd8S, M1},
	0x08: {OpLd1A, M1},
	0x09: {OpLd2A, M1},
	0x0a: {OpLd4A, M1},
	0x0b: {OpLd8A, M1},
	0x0c: {OpLd1Sa, M1},
	0x0d: {OpLd2Sa, M1},
	0x0e: {OpLd4Sa, M1},
	0x0f: {OpLd8Sa, M1},
	0x10: {OpLd1Bias, M1},
	0x11: {OpLd2Bias, M1},
	0x12: {OpLd4Bias, M1},
	0x13: {OpLd8Bias, M1},
	0x14: {OpLd1Acq, M1},
	0x15: {OpLd2Acq, M1},
	0x16: {OpLd4Acq, M1},
	0x17: {OpLd8Acq, M1},
	0x1b: {OpLd8Fill, M1},
	0x20: {OpLd1CClr, M1},
	0x21: {OpLd2CClr, M1},
	0x22: {OpLd4CClr, M1},
	0x23: {OpLd8CClr, M1},
	0x24: {OpLd1CNc, M1},
	0x25: {OpLd2CNc, M1},
	0x26: {OpLd4CNc, M1},
	0x27: {OpLd8CNc, M1},
	0x28: {OpLd1CClrAcq, M1},
	0x29: {OpLd2CClrAcq, M1},
	0x2a: {OpLd4CClrAcq, M1},
	0x2b: {OpLd8CClrAcq, M1},
	0x30: {OpSt1, M4},
	0x31: {OpSt2, M4},
	0x32: {OpSt4, M4},
	0x33: {OpSt8, M4},
	0x34: {OpSt1Rel, M4},
	0x35: {OpSt2Rel, M4},
	0x36: {OpSt4Rel, M4},
	0x37: {OpSt8Rel, M4},
	0x3b: {OpSt8Spill, M4},
}

// Table 4-31 Integer Load +Reg Opcode Extensions
var table4_31 = [64]entryM{
	0x00: {OpLd1, M2},
	0x01: {OpLd2, M2},
	0x02: {OpLd4, M2},
	0x03: {OpLd8, M2},
	0x04: {OpLd1S, M2},
	0x05: {OpLd2S, M2},
	0x06: {OpLd4S, M2},
	0x07: {OpLd8S, M2},
	0x08: {OpLd1A, M2},
	0x09: {OpLd2A, M2},
	0x0a: {OpLd4A, M2},
	0x0b: {OpLd8A, M2},
	0x0c: {OpLd1Sa, M2},
	0x0d: {OpLd2Sa, M2},
	0x0e: {OpLd4Sa, M2},
	0x0f: {OpLd8Sa, M2},
	0x10: {OpLd1Bias, M2},
	0x11: {OpLd2Bias, M2},
	0x12: {OpLd4Bias, M2},
	0x13: {OpLd8Bias, M2},
	0x14: {OpLd1Acq, M2},
	0x15: {OpLd2Acq, M2},
	0x16: {OpLd4Acq, M2},
	0x17: {OpLd8Acq, M2},
	0x1b: {OpLd8Fill, M2},
	0x20: {OpLd1CClr, M2},
	0x21: {OpLd2CClr, M2},
	0x22: {OpLd4CClr, M2},
	0x23: {OpLd8CClr, M2},
	0x24: {OpLd1CNc, M2},
	0x25: {OpLd2CNc, M2},
	0x26: {OpLd4CNc, M2},
	0x27: {OpLd8CNc, M2},
	0x28: {OpLd1CClrAcq, M2},
	0x29: {OpLd2CClrAcq, M2},
	0x2a: {OpLd4CClrAcq, M2},
	0x2b: {OpLd8CClrAcq, M2},
}

// Table 4-33 Semaphore/Get FR/16-byte Opcode Extensions
var table4_33 = [64]entryM{
	0x00: {OpCmpxchg1Acq, M16},
	0x01: {OpCmpxchg2Acq, M16},
	0x02: {OpCmpxchg4Acq, M16},
	0x03: {OpCmpxchg8Acq, M16},
	0x04: {OpCmpxchg1Rel, M16},
	0x05: {OpCmpxchg2Rel, M16},
	0x06: {OpCmpxchg4Rel, M16},
	0x07: {OpCmpxchg8Rel, M16},
	0x08: {OpXchg1, M16},
	0x09: {OpXchg2, M16},
	0x0a: {OpXchg4, M16},
	0x0b: {OpXchg8, M16},
	0x0f: {OpLd8Fill, M2},
	0x12: {OpFetchadd4Acq, M17},
	0x13: {OpFetchadd8Acq, M17},
	0x16: {OpFetchadd4Rel, M17},
	0x17: {OpFetchadd8Rel, M17},
	0x1c: {OpGetfSig, M19},
	0x1d: {OpGetfExp, M19},
	0x1e: {OpGetfS, M19},
	0x1f: {OpGetfD, M19},
	0x20: {OpCmp8xchg16Acq, M16},
	0x24: {OpCmp8xchg16Rel, M16},
	0x28: {OpLd16, M2},
	0x2c: {OpLd16Acq, M2},
	0x30: {OpSt16, M4},
	0x34: {OpSt16Rel, M4},
}

// Table 4-32 Integer Load/Store +Imm Opcode Extensions
var table4_32 = [64]entryM{
	0x00: {OpLd1, M3},
	0x01: {OpLd2, M3},
	0x02: {OpLd4, M3},
	0x03: {OpLd8, M3},
	0x04: {OpLd1S, M3},
	0x05: {OpLd2S, M3},
	0x06: {OpLd4S, M3},
	0x07: {OpLd8S, M3},
	0x08: {OpLd1A, M3},
	0x09: {OpLd2A, M3},
	0x0a: {OpLd4A, M3},
	0x0b: {OpLd8A, M3},
	0x0c: {OpLd1Sa, M3},
	0x0d: {OpLd2Sa, M3},
	0x0e: {OpLd4Sa, M3},
	0x0f: {OpLd8Sa, M3},
	0x10: {OpLd1Bias, M3},
	0x11: {OpLd2Bias, M3},
	0x12: {OpLd4Bias, M3},
	0x13: {OpLd8Bias, M3},
	0x14: {OpLd1Acq, M3},
	0x15: {OpLd2Acq, M3},
	0x16: {OpLd4Acq, M3},
	0x17: {OpLd8Acq, M3},
	0x1b: {OpLd8Fill, M3},
	0x20: {OpLd1CClr, M3},
	0x21: {OpLd2CClr, M3},
	0x22: {OpLd4CClr, M3},
	0x23: {OpLd8CClr, M3},
	0x24: {OpLd1CNc, M3},
	0x25: {OpLd2CNc, M3},
	0x26: {OpLd4CNc, M3},
	0x27: {OpLd8CNc, M3},
	0x28: {OpLd1CClrAcq, M3},
	0x29: {OpLd2CClrAcq, M3},
	0x2a: {OpLd4CClrAcq, M3},
	0x2b: {OpLd8CClrAcq, M3},
	0x30: {OpSt1, M5},
	0x31: {OpSt2, M5},
	0x32: {OpSt4, M5},
	0x33: {OpSt8, M5},
	0x34: {OpSt1Rel, M5},
	0x35: {OpSt2Rel, M5},
	0x36: {OpSt4Rel, M5},
	0x37: {OpSt8Rel, M5},
	0x3b: {OpSt8Spill, M5},
}

// Table 4-34 Floating-point Load/Store/Lfetch Opcode Extensions
var table4_34 = [64]entryM{
	0x00: {OpLdfe, M6},
	0x01: {OpLdf8, M6},
	0x02: {OpLdfs, M6},
	0x03: {OpLdfd, M6},
	0x04: {OpLdfeS, M6},
	0x05: {OpLdf8S, M6},
	0x06: {OpLdfsS, M6},
	0x07: {OpLdfdS, M6},
	0x08: {OpLdfeA, M6},
	0x09: {OpLdf8A, M6},
	0x0a: {OpLdfsA, M6},
	0x0b: {OpLdfdA, M6},
	0x0c: {OpLdfeSa, M6},
	0x0d: {OpLdf8Sa, M6},
	0x0e: {OpLdfsSa, M6},
	0x0f: {OpLdfdSa, M6},
	0x1b: {OpLdfFill, M6},
	0x20: {OpLdfeCClr, M6},
	0x21: {OpLdf8CClr, M6},
	0x22: {OpLdfsCClr, M6},
	0x23: {OpLdfdCClr, M6},
	0x24: {OpLdfeCNc, M6},
	0x25: {OpLdf8CNc, M6},
	0x26: {OpLdfsCNc, M6},
	0x27: {OpLdfdCNc, M6},
	0x2c: {OpLfetch, M13},
	0x2d: {OpLfetchExcl, M13},
	0x2e: {OpLfetchFault, M13},
	0x2f: {OpLfetchFaultExcl, M13},
	0x30: {OpStfe, M9},
	0x31: {OpStf8, M9},
	0x32: {OpStfs, M9},
	0x33: {OpStfd, M9},
	0x3b: {OpStfSpill, M9},
}

// Table 4-35 Floating-point Load/Lfetch +Reg Opcode Extensions
var table4_35 = [64]entryM{
	0x00: {OpLdfe, M7},
	0x01: {OpLdf8, M7},
	0x02: {OpLdfs, M7},
	0x03: {OpLdfd, M7},
	0x04: {OpLdfeS, M7},
	0x05: {OpLdf8S, M7},
	0x06: {OpLdfsS, M7},
	0x07: {OpLdfdS, M7},
	0x08: {OpLdfeA, M7},
	0x09: {OpLdf8A, M7},
	0x0a: {OpLdfsA, M7},
	0x0b: {OpLdfdA, M7},
	0x0c: {OpLdfeSa, M7},
	0x0d: {OpLdf8Sa, M7},
	0x0e: {OpLdfsSa, M7},
	0x0f: {OpLdfdSa, M7},
	0x1b: {OpLdfFill, M7},
	0x20: {OpLdfeCClr, M7},
	0x21: {OpLdf8CClr, M7},
	0x22: {OpLdfsCClr, M7},
	0x23: {OpLdfdCClr, M7},
	0x24: {OpLdfeCNc, M7},
	0x25: {OpLdf8CNc, M7},
	0x26: {OpLdfsCNc, M7},
	0x27: {OpLdfdCNc, M7},
	0x2c: {OpLfetch, M14},
	0x2d: {OpLfetchExcl, M14},
	0x2e: {OpLfetchFault, M14},
	0x2f: {OpLfetchFaultExcl, M14},
}

// Table 4-37 Floating-point Load Pair/Set FR Opcode Extensions
var table4_37 = [64]entryM{
	0x01: {OpLdfp8, M11},
	0x02: {OpLdfps, M11},
	0x03: {OpLdfpd, M11},
	0x05: {OpLdfp8S, M11},
	0x06: {OpLdfpsS, M11},
	0x07: {OpLdfpdS, M11},
	0x09: {OpLdfp8A, M11},
	0x0a: {OpLdfpsA, M11},
	0x0b: {OpLdfpdA, M11},
	0x0d: {OpLdfp8Sa, M11},
	0x0e: {OpLdfpsSa, M11},
	0x0f: {OpLdfpdSa, M11},
	0x1c: {OpSetfSig, M18},
	0x1d: {OpSetfExp, M18},
	0x1e: {OpSetfS, M18},
	0x1f: {OpSetfD, M18},
	0x21: {OpLdfp8CClr, M11},
	0x22: {OpLdfpsCClr, M11},
	0x23: {OpLdfpdCClr, M11},
	0x25: {OpLdfp8CNc, M11},
	0x26: {OpLdfpsCNc, M11},
	0x27: {OpLdfpdCNc, M11},
}

// Table 4-38 Floating-point Load Pair +Imm Opcode Extensions
var table4_38 = [64]entryM{
	0x01: {OpLdfp8, M12},
	0x02: {OpLdfps, M12},
	0x03: {OpLdfpd, M12},
	0x05: {OpLdfp8S, M12},
	0x06: {OpLdfpsS, M12},
	0x07: {OpLdfpdS, M12},
	0x09: {OpLdfp8A, M12},
	0x0a: {OpLdfpsA, M12},
	0x0b: {OpLdfpdA, M12},
	0x0d: {OpLdfp8Sa, M12},
	0x0e: {OpLdfpsSa, M12},
	0x0f: {OpLdfpdSa, M12},
	0x21: {OpLdfp8CClr, M12},
	0x22: {OpLdfpsCClr, M12},
	0x23: {OpLdfpdCClr, M12},
	0x25: {OpLdfp8CNc, M12},
	0x26: {OpLdfpsCNc, M12},
	0x27: {OpLdfpdCNc, M12},
}

// Table 4-36 Floating-point Load/Store/Lfetch +Imm Opcode Extensions
var table4_36 = [64]entryM{
	0x00: {OpLdfe, M8},
	0x01: {OpLdf8, M8},
	0x02: {OpLdfs, M8},
	0x03: {OpLdfd, M8},
	0x04: {OpLdfeS, M8},
	0x05: {OpLdf8S, M8},
	0x06: {OpLdfsS, M8},
	0x07: {OpLdfdS, M8},
	0x08: {OpLdfeA, M8},
	0x09: {OpLdf8A, M8},
	0x0a: {OpLdfsA, M8},
	0x0b: {OpLdfdA, M8},
	0x0c: {OpLdfeSa, M8},
	0x0d: {OpLdf8Sa, M8},
	0x0e: {OpLdfsSa, M8},
	0x0f: {OpLdfdSa, M8},
	0x1b: {OpLdfFill, M8},
	0x20: {OpLdfeCClr, M8},
	0x21: {OpLdf8CClr, M8},
	0x22: {OpLdfsCClr, M8},
	0x23: {OpLdfdCClr, M8},
	0x24: {OpLdfeCNc, M8},
	0x25: {OpLdf8CNc, M8},
	0x26: {OpLdfsCNc, M8},
	0x27: {OpLdfdCNc, M8},
	0x2c: {OpLfetch, M15},
	0x2d: {OpLfetchExcl, M15},
	0x2e: {OpLfetchFault, M15},
	0x2f: {OpLfetchFaultExcl, M15},
	0x30: {OpStfe, M10},
	0x31: {OpStf8, M10},
	0x32: {OpStfs, M10},
	0x33: {OpStfd, M10},
	0x3b: {OpStfSpill, M10},
}

// Table 4-28 Integer Load/Store/Semaphore/Get FR 1-bit Opcode Extensions,
// indexed by m:x.
var table4_28 = [4]*[64]entryM{&table4_30, &table4_33, &table4_31, nil}

// Table 4-29 Floating-point Load/Store/Load Pair/Set FR 1-bit Opcode
// Extensions, indexed by m:x.
var table4_29 = [4]*[64]entryM{&table4_34, &table4_37, &table4_35, &table4_38}

// resolveM maps a memory slot to its opcode and form. tag is always
// below 8.
func resolveM(tag uint8, s slot) entryM {
	switch tag {
	case 0:
		x3 := s.bits(33, 36)
		if x3 != 0 {
			return table4_42[x3]
		}
		x6 := s.bits(27, 33)
		if x6 == 0x01 {
			// Table 4-46 Misc M-Unit 1-bit Opcode Extensions
			if s.set(26) {
				return entryM{OpHintM, M48}
			}
			return entryM{OpNopM, M48}
		}
		return table4_43[x6]
	case 1:
		x3 := s.bits(33, 36)
		if x3 != 0 {
			return table4_44[x3]
		}
		return table4_45[s.bits(27, 33)]
	case 4:
		t := table4_28[s.bit(36)<<1|s.bit(27)]
		if t == nil {
			return entryM{}
		}
		return t[s.bits(30, 36)]
	case 5:
		return table4_32[s.bits(30, 36)]
	case 6:
		return table4_29[s.bit(36)<<1|s.bit(27)][s.bits(30, 36)]
	case 7:
		return table4_36[s.bits(30, 36)]
	default:
		// 2 and 3
		return entryM{}
	}
}

// fetchadd increments, indexed by i2b.
var fetchaddIncs = [4]int64{16, 8, 4, 1}

// Register files reached by mov to and from an indirect index, in x6
// order.
var indirectSpaces = [8]RegSpace{
	SpaceRR, SpaceDBR, SpaceIBR, SpacePKR, SpacePMC, SpacePMD, SpaceMSR, SpaceCPUID,
}

// readM extracts the operands of a memory form.
func readM(form FormM, s slot) operandList {
	r1 := GR(s.reg(6))
	r2 := GR(s.reg(13))
	r3 := GR(s.reg(20))
	f1 := FR(s.reg(6))
	f2 := FR(s.reg(13))
	mem := Mem(s.reg(20))
	// imm9 is split as s:i:imm7 with imm7 at [6,13) for stores and
	// [13,20) for loads.
	imm9a := Imm(signExtend(s.bit(36)<<8|s.bit(27)<<7|s.bits(6, 13), 9))
	imm9b := Imm(signExtend(s.bit(36)<<8|s.bit(27)<<7|s.bits(13, 20), 9))

	switch form {
	case M1:
		return list(0, r1, mem)
	case M2, M16:
		return list(0, r1, mem, r2)
	case M3:
		return list(0, r1, mem, imm9b)
	case M4:
		return list(0, mem, r2)
	case M5:
		return list(0, mem, r2, imm9a)
	case M6:
		return list(0, f1, mem)
	case M7:
		return list(0, f1, mem, r2)
	case M8:
		return list(0, f1, mem, imm9b)
	case M9:
		return list(0, mem, f2)
	case M10:
		return list(0, mem, f2, imm9a)
	case M11:
		return list(1, f1, f2, mem)
	case M12:
		// The pair size follows from the opcode; bit 30 is the low x6 bit.
		size := uint64(8)
		if s.set(30) {
			size = 16
		}
		return list(1, f1, f2, mem, UImm(size))
	case M13:
		return list(NoField, mem)
	case M14:
		return list(NoField, mem, r2)
	case M15:
		return list(NoField, mem, imm9b)
	case M17:
		inc := fetchaddIncs[s.bits(13, 15)]
		if s.set(15) {
			inc = -inc
		}
		return list(0, r1, mem, Imm(inc))
	case M18:
		return list(0, f1, r2)
	case M19:
		return list(0, r1, f2)
	case M20, M21:
		disp := signExtend(s.bit(36)<<20|s.bits(20, 33)<<7|s.bits(6, 13), 21) << 4
		if form == M21 {
			return list(NoField, f2, Imm(disp))
		}
		return list(NoField, r2, Imm(disp))
	case M22, M23:
		disp := signExtend(s.bit(36)<<20|s.bits(13, 33), 21) << 4
		if form == M23 {
			return list(NoField, f1, Imm(disp))
		}
		return list(NoField, r1, Imm(disp))
	case M24, M25:
		return list(NoField)
	case M26:
		return list(NoField, r1)
	case M27:
		return list(NoField, f1)
	case M28, M47:
		return list(NoField, r3)
	case M29:
		return list(0, AR(AppReg(s.reg(20))), r2)
	case M30:
		imm8 := signExtend(s.bit(36)<<7|s.bits(13, 20), 8)
		return list(0, AR(AppReg(s.reg(20))), Imm(imm8))
	case M31:
		return list(0, r1, AR(AppReg(s.reg(20))))
	case M32:
		return list(0, CR(s.reg(20)), r2)
	case M33:
		return list(0, r1, CR(s.reg(20)))
	case M34:
		return list(0, r1, AR(ARPFS), UImm(s.bits(13, 20)), UImm(s.bits(20, 27)), UImm(s.bits(27, 31)))
	case M35:
		if s.bits(27, 33) == 0x2d {
			return list(0, PSRL, r2)
		}
		return list(0, PSRUM, r2)
	case M36:
		if s.bits(27, 33) == 0x25 {
			return list(0, r1, PSR)
		}
		return list(0, r1, PSRUM)
	case M37, M48:
		return list(NoField, UImm(s.bit(36)<<20|s.bits(6, 26)))
	case M38:
		return list(0, r1, r3, r2)
	case M39:
		return list(0, r1, r3, UImm(s.bits(13, 15)))
	case M40:
		return list(NoField, r3, UImm(s.bits(13, 15)))
	case M41:
		return list(NoField, r2)
	case M42:
		x6 := s.bits(27, 33)
		var space RegSpace
		switch {
		case x6 <= 0x06:
			space = indirectSpaces[x6]
		case x6 == 0x0e:
			space = SpaceDTR
		case x6 == 0x0f:
			space = SpaceITR
		default:
			return operandList{dest: NoField}
		}
		return list(0, Indirect(space, s.reg(20)), r2)
	case M43:
		x6 := s.bits(27, 33)
		if x6 < 0x10 || x6 > 0x17 {
			return operandList{dest: NoField}
		}
		return list(0, r1, Indirect(indirectSpaces[x6-0x10], s.reg(20)))
	case M44:
		return list(NoField, UImm(s.bit(36)<<23|s.bits(31, 33)<<21|s.bits(6, 27)))
	case M45:
		return list(NoField, r3, r2)
	case M46:
		return list(0, r1, r3)
	}
	return operandList{dest: NoField}
}
