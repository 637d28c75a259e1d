package insts

// Table 4-25 Misc I-Unit 6-bit Opcode Extensions, indexed by x6.
var table4_25 = [64]entryI{
	0x00: {OpBreakI, I19},
	0x0a: {OpMovI, I27},
	0x10: {OpZxt1, I29},
	0x11: {OpZxt2, I29},
	0x12: {OpZxt4, I29},
	0x14: {OpSxt1, I29},
	0x15: {OpSxt2, I29},
	0x16: {OpSxt4, I29},
	0x18: {OpCzx1L, I29},
	0x19: {OpCzx2L, I29},
	0x1c: {OpCzx1R, I29},
	0x1d: {OpCzx2R, I29},
	0x2a: {OpMovI, I26},
	0x30: {OpMov, I25},
	0x31: {OpMov, I22},
	0x32: {OpMovI, I28},
	0x33: {OpMov, I25},
}

// Table 4-24 Misc I-Unit 3-bit Opcode Extensions, indexed by x3.
var table4_24 = [7]entryI{
	0x01: {OpChkSIInt, I20},
	0x02: {OpMov, I24},
	0x03: {OpMov, I23},
}

// Table 4-23 Test Bit Opcode Extensions, indexed by x:ta:tb:c:y
// (bits 19, 33, 36, 12, 13). With x set the tnat column becomes tf.
var table4_23 = [32]entryI{
	0x00: {OpTbitZ, I16},
	0x01: {OpTnatZ, I17},
	0x02: {OpTbitZUnc, I16},
	0x03: {OpTnatZUnc, I17},
	0x04: {OpTbitZAnd, I16},
	0x05: {OpTnatZAnd, I17},
	0x06: {OpTbitNzAnd, I16},
	0x07: {OpTnatNzAnd, I17},
	0x08: {OpTbitZOr, I16},
	0x09: {OpTnatZOr, I17},
	0x0a: {OpTbitNzOr, I16},
	0x0b: {OpTnatNzOr, I17},
	0x0c: {OpTbitZOrAndcm, I16},
	0x0d: {OpTnatZOrAndcm, I17},
	0x0e: {OpTbitNzOrAndcm, I16},
	0x0f: {OpTnatNzOrAndcm, I17},
	0x10: {OpTbitZ, I16},
	0x11: {OpTfZ, I30},
	0x12: {OpTbitZUnc, I16},
	0x13: {OpTfZNc, I30},
	0x14: {OpTbitZAnd, I16},
	0x15: {OpTfZAnd, I30},
	0x16: {OpTbitNzAnd, I16},
	0x17: {OpTfNzAnd, I30},
	0x18: {OpTbitZOr, I16},
	0x19: {OpTfZOr, I30},
	0x1a: {OpTbitNzOr, I16},
	0x1b: {OpTfNzOr, I30},
	0x1c: {OpTbitZOrAndcm, I16},
	0x1d: {OpTfZOrAndcm, I30},
	0x1e: {OpTbitNzOrAndcm, I16},
	0x1f: {OpTfNzOrAndcm, I30},
}

// Table 4-17 Multimedia Opcode 7 Size 1 2-bit Opcode Extensions,
// indexed by x2a:x2c:x2b.
var table4_17 = [64]entryI{
	0x21: {OpPmin1U, I2},
	0x24: {OpUnpack1H, I2},
	0x25: {OpPmax1U, I2},
	0x26: {OpUnpack1L, I2},
	0x28: {OpMix1R, I2},
	0x2a: {OpMix1L, I2},
	0x2b: {OpPsad1, I1},
	0x3a: {OpMux1, I3},
}

// Table 4-18 Multimedia Opcode 7 Size 2 2-bit Opcode Extensions.
var table4_18 = [64]entryI{
	0x00: {OpPshr2U, I5},
	0x01: {OpPmpyshr2U, I1},
	0x02: {OpPshr2, I5},
	0x03: {OpPmpyshr2, I1},
	0x04: {OpPshl2, I7},
	0x05: {OpPmpyshr2U, I1},
	0x07: {OpPmpyshr2, I1},
	0x09: {OpPmpyshr2U, I1},
	0x0b: {OpPmpyshr2, I1},
	0x0d: {OpPmpyshr2U, I1},
	0x0f: {OpPmpyshr2, I1},
	0x11: {OpPshr2UFixed, I6},
	0x13: {OpPshr2Fixed, I6},
	0x19: {OpPopcnt, I9},
	0x1d: {OpClz, I9},
	0x20: {OpPack2Uss, I2},
	0x22: {OpPack2Sss, I2},
	0x23: {OpPmin2, I2},
	0x24: {OpUnpack2H, I2},
	0x26: {OpUnpack2L, I2},
	0x27: {OpPmax2, I2},
	0x28: {OpMix2R, I2},
	0x2a: {OpMix2L, I2},
	0x2d: {OpPmpy2R, I2},
	0x2f: {OpPmpy2L, I2},
	0x35: {OpPshl2Fixed, I8},
	0x3a: {OpMux2, I4},
}

// Table 4-19 Multimedia Opcode 7 Size 4 2-bit Opcode Extensions.
var table4_19 = [64]entryI{
	0x00: {OpPshr4U, I5},
	0x02: {OpPshr4, I5},
	0x04: {OpPshl4, I7},
	0x0d: {OpMpy4, I2},
	0x0f: {OpMpyshl4, I2},
	0x10: {OpPshr4UFixed, I6},
	0x12: {OpPshr4Fixed, I6},
	0x22: {OpPack4Sss, I2},
	0x24: {OpUnpack4H, I2},
	0x26: {OpUnpack4L, I2},
	0x28: {OpMix4R, I2},
	0x2a: {OpMix4L, I2},
	0x35: {OpPshl4Fixed, I8},
}

// Table 4-20 Variable Shift Opcode 7 2-bit Opcode Extensions.
var table4_20 = [64]entryI{
	0x00: {OpShrU, I5},
	0x02: {OpShr, I5},
	0x04: {OpShl, I7},
}

// Table 4-16 Multimedia and Variable Shift 1-bit Opcode Extensions,
// indexed by za:zb for ve=0.
var table4_16 = [4]*[64]entryI{
	&table4_17,
	&table4_18,
	&table4_19,
	&table4_20,
}

// resolveI maps a non-ALU integer slot to its opcode and form. tag is
// always below 8.
func resolveI(tag uint8, s slot) entryI {
	switch tag {
	case 0:
		x3 := s.bits(33, 36)
		switch x3 {
		case 0:
			x6 := s.bits(27, 33)
			if x6 == 0x01 {
				// Table 4-26 Misc I-Unit 1-bit Opcode Extensions
				if s.set(26) {
					return entryI{OpHintI, I18}
				}
				return entryI{OpNopI, I18}
			}
			return table4_25[x6]
		case 7:
			if s.set(22) {
				return entryI{OpMovRetToBr, I21}
			}
			return entryI{OpMovToBr, I21}
		default:
			return table4_24[x3]
		}
	case 4:
		return entryI{OpDep, I15}
	case 5:
		// Table 4-22 Deposit Opcode Extensions
		x2 := s.bits(34, 36)
		if x2 == 0 {
			return table4_23[s.bit(19)<<4|s.bit(33)<<3|s.bit(36)<<2|s.bit(12)<<1|s.bit(13)]
		}
		if s.set(33) {
			switch x2 {
			case 1:
				if s.set(26) {
					return entryI{OpDepZ, I13}
				}
				return entryI{OpDepZ, I12}
			case 3:
				return entryI{OpDep, I14}
			}
			return entryI{}
		}
		switch x2 {
		case 1:
			if s.set(13) {
				return entryI{OpExtr, I11}
			}
			return entryI{OpExtrU, I11}
		case 3:
			return entryI{OpShrp, I10}
		}
		return entryI{}
	case 7:
		if s.set(32) {
			// ve=1 is undefined throughout Table 4-16.
			return entryI{}
		}
		t := table4_16[s.bit(36)<<1|s.bit(33)]
		return t[s.bits(28, 32)|s.bits(34, 36)<<4]
	default:
		// 1, 2, 3 and 6
		return entryI{}
	}
}

// pmpyshr2 shift counts, indexed by count2.
var pmpyshrCounts = [4]uint64{0, 7, 15, 16}

// readI extracts the operands of a non-ALU integer form.
func readI(form FormI, s slot) operandList {
	r1 := GR(s.reg(6))
	r2 := GR(s.reg(13))
	r3 := GR(s.reg(20))
	p1 := PR(uint8(s.bits(6, 12)))
	p2 := PR(uint8(s.bits(27, 33)))
	// len is encoded as len-1 and cpos as 63-pos
	len6 := UImm(s.bits(27, 33) + 1)

	switch form {
	case I1:
		return list(0, r1, r2, r3, UImm(pmpyshrCounts[s.bits(30, 32)]))
	case I2, I7:
		return list(0, r1, r2, r3)
	case I3:
		return list(0, r1, r2, UImm(s.bits(20, 24)))
	case I4:
		return list(0, r1, r2, UImm(s.bits(20, 28)))
	case I5:
		return list(0, r1, r3, r2)
	case I6:
		return list(0, r1, r3, UImm(s.bits(14, 19)))
	case I8:
		return list(0, r1, r2, UImm(31-s.bits(20, 25)))
	case I9:
		return list(0, r1, r3)
	case I10:
		return list(0, r1, r2, r3, UImm(s.bits(27, 33)))
	case I11:
		return list(0, r1, r3, UImm(s.bits(14, 20)), len6)
	case I12:
		return list(0, r1, r2, UImm(63-s.bits(20, 26)), len6)
	case I13:
		imm8 := signExtend(s.bit(36)<<7|s.bits(13, 20), 8)
		return list(0, r1, Imm(imm8), UImm(63-s.bits(20, 26)), len6)
	case I14:
		imm1 := signExtend(s.bit(36), 1)
		return list(0, r1, Imm(imm1), r3, UImm(63-s.bits(14, 20)), len6)
	case I15:
		return list(0, r1, r2, r3, UImm(63-s.bits(31, 37)), UImm(s.bits(27, 31)+1))
	case I16:
		return list(1, p1, p2, r3, UImm(s.bits(14, 20)))
	case I17:
		return list(1, p1, p2, r3)
	case I18, I19:
		return list(NoField, UImm(s.bit(36)<<20|s.bits(6, 26)))
	case I20:
		// chk.s.i r2, target25
		disp := signExtend(s.bit(36)<<20|s.bits(20, 33)<<7|s.bits(6, 13), 21) << 4
		return list(NoField, r2, Imm(disp))
	case I21:
		tag := signExtend(s.bits(24, 33), 9) << 4
		return list(0, BR(uint8(s.bits(6, 9))), r2, Imm(tag), UImm(s.bit(23)), UImm(s.bits(20, 22)))
	case I22:
		return list(0, r1, BR(uint8(s.bits(13, 16))))
	case I23:
		mask := signExtend(s.bit(36)<<16|s.bits(24, 32)<<8|s.bits(6, 13)<<1, 17)
		return list(0, Predicates, r2, Imm(mask))
	case I24:
		imm := signExtend(s.bit(36)<<27|s.bits(6, 33), 28) << 16
		return list(0, Predicates, Imm(imm))
	case I25:
		switch s.bits(27, 33) {
		case 0x30:
			return list(0, r1, IP)
		case 0x33:
			return list(0, r1, Predicates)
		}
		return list(0, r1)
	case I26:
		return list(0, AR(AppReg(s.reg(20))), r2)
	case I27:
		imm8 := signExtend(s.bit(36)<<7|s.bits(13, 20), 8)
		return list(0, AR(AppReg(s.reg(20))), Imm(imm8))
	case I28:
		return list(0, r1, AR(AppReg(s.reg(20))))
	case I29:
		return list(0, r1, r3)
	case I30:
		return list(1, p1, p2, UImm(s.bits(14, 19)))
	}
	return operandList{dest: NoField}
}
