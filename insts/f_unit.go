package insts

// Table 4-60 Opcode 0 Miscellaneous Floating-point 6-bit Opcode
// Extensions. x6 0x01 is handled by Table 4-68 before indexing.
var table4_60 = [64]entryF{
	0x00: {OpBreakF, F15},
	0x04: {OpFsetc, F12},
	0x05: {OpFclrf, F13},
	0x08: {OpFchkf, F14},
	0x10: {OpFmergeS, F9},
	0x11: {OpFmergeNs, F9},
	0x12: {OpFmergeSe, F9},
	0x14: {OpFmin, F8},
	0x15: {OpFmax, F8},
	0x16: {OpFamin, F8},
	0x17: {OpFamax, F8},
	0x18: {OpFcvtFx, F10},
	0x19: {OpFcvtFxu, F10},
	0x1a: {OpFcvtFxTrunc, F10},
	0x1b: {OpFcvtFxuTrunc, F10},
	0x1c: {OpFcvtXf, F11},
	0x28: {OpFpack, F9},
	0x2c: {OpFand, F9},
	0x2d: {OpFandcm, F9},
	0x2e: {OpFor, F9},
	0x2f: {OpFxor, F9},
	0x34: {OpFswap, F9},
	0x35: {OpFswapNl, F9},
	0x36: {OpFswapNr, F9},
	0x39: {OpFmixLr, F9},
	0x3a: {OpFmixR, F9},
	0x3b: {OpFmixL, F9},
	0x3c: {OpFsxtR, F9},
	0x3d: {OpFsxtL, F9},
}

// Table 4-61 Opcode 1 Miscellaneous Floating-point 6-bit Opcode
// Extensions
var table4_61 = [64]entryF{
	0x10: {OpFpmergeS, F9},
	0x11: {OpFpmergeNs, F9},
	0x12: {OpFpmergeSe, F9},
	0x14: {OpFpmin, F8},
	0x15: {OpFpmax, F8},
	0x16: {OpFpamin, F8},
	0x17: {OpFpamax, F8},
	0x18: {OpFpcvtFx, F10},
	0x19: {OpFpcvtFxu, F10},
	0x1a: {OpFpcvtFxTrunc, F10},
	0x1b: {OpFpcvtFxuTrunc, F10},
	0x30: {OpFpcmpEq, F8},
	0x31: {OpFpcmpLt, F8},
	0x32: {OpFpcmpLe, F8},
	0x33: {OpFpcmpUnord, F8},
	0x34: {OpFpcmpNeq, F8},
	0x35: {OpFpcmpNlt, F8},
	0x36: {OpFpcmpNle, F8},
	0x37: {OpFpcmpOrd, F8},
}

// Table 4-66 Floating-point Compare Opcode Extensions, indexed by
// ta:ra:rb.
var table4_66 = [8]entryF{
	0x00: {OpFcmpEq, F4},
	0x01: {OpFcmpLt, F4},
	0x02: {OpFcmpLe, F4},
	0x03: {OpFcmpUnord, F4},
	0x04: {OpFcmpEqUnc, F4},
	0x05: {OpFcmpLtUnc, F4},
	0x06: {OpFcmpLeUnc, F4},
	0x07: {OpFcmpUnordUnc, F4},
}

// Table 4-58 Fixed-point Multiply Add and Select Opcode Extensions,
// indexed by x2 when x is set.
var table4_58 = [4]entryF{
	0x00: {OpXmaL, F2},
	0x01: {OpWhite, FNone},
	0x02: {OpXmaHu, F2},
	0x03: {OpXmaH, F2},
}

// Multiply-add major opcodes 8 through 0xd, indexed by tag-8 and x.
var fmaOps = [6][2]Opcode{
	{OpFma, OpFmaS},
	{OpFmaD, OpFpma},
	{OpFms, OpFmsS},
	{OpFmsD, OpFpms},
	{OpFnma, OpFnmaS},
	{OpFnmaD, OpFpnma},
}

// resolveF maps a floating-point slot to its opcode and form.
func resolveF(tag uint8, s slot) entryF {
	switch tag {
	case 0x0, 0x1:
		// Table 4-59 Miscellaneous Floating-point 1-bit Opcode Extensions
		if s.set(33) {
			switch {
			case tag == 0 && s.set(36):
				return entryF{OpFrsqrta, F7}
			case tag == 0:
				return entryF{OpFrcpa, F6}
			case s.set(36):
				return entryF{OpFprsqrta, F7}
			default:
				return entryF{OpFprcpa, F6}
			}
		}
		x6 := s.bits(27, 33)
		if tag == 1 {
			return table4_61[x6]
		}
		if x6 == 0x01 {
			// Table 4-68 Misc F-Unit 1-bit Opcode Extensions
			if s.set(26) {
				return entryF{OpHintF, F16}
			}
			return entryF{OpNopF, F16}
		}
		return table4_60[x6]
	case 0x4:
		return table4_66[s.bit(12)<<2|s.bit(33)<<1|s.bit(36)]
	case 0x5:
		// Table 4-67 Floating-point Class 1-bit Opcode Extensions
		if s.set(12) {
			return entryF{OpFclassMUnc, F5}
		}
		return entryF{OpFclassM, F5}
	case 0x8, 0x9, 0xa, 0xb, 0xc, 0xd:
		return entryF{fmaOps[tag-8][s.bit(36)], F1}
	case 0xe:
		if s.set(36) {
			return table4_58[s.bits(34, 36)]
		}
		return entryF{OpFselect, F3}
	default:
		// 2, 3, 6, 7 and 0xf
		return entryF{}
	}
}

// statusFieldFree reports whether an F slot has no sf completer, so
// bits [34,36) belong to some other field.
func statusFieldFree(tag uint8, s slot) bool {
	switch tag {
	case 0x0:
		if s.set(33) {
			return false
		}
		switch s.bits(27, 33) {
		case 0x00, 0x01, 0x10, 0x11, 0x12, 0x1c, 0x28,
			0x2c, 0x2d, 0x2e, 0x2f, 0x34, 0x35, 0x36,
			0x39, 0x3a, 0x3b, 0x3c, 0x3d:
			return true
		}
	case 0x1:
		if s.set(33) {
			return false
		}
		switch s.bits(27, 33) {
		case 0x10, 0x11, 0x12:
			return true
		}
	case 0x5, 0xe:
		return true
	}
	return false
}

// readF extracts the operands of a floating-point form. The multiply
// add forms list the addend f2 last so that fma f1=f3,f4,f2 reads in
// assembler order.
func readF(form FormF, s slot) operandList {
	f1 := FR(s.reg(6))
	f2 := FR(s.reg(13))
	f3 := FR(s.reg(20))
	p1 := PR(uint8(s.bits(6, 12)))
	p2 := PR(uint8(s.bits(27, 33)))
	imm21 := UImm(s.bit(36)<<20 | s.bits(6, 26))

	switch form {
	case F1, F2, F3:
		return list(0, f1, f3, FR(s.reg(27)), f2)
	case F4:
		return list(1, p1, p2, f2, f3)
	case F5:
		return list(1, p1, p2, f2, UImm(s.bits(33, 35)<<7|s.bits(20, 27)))
	case F6:
		return list(1, f1, p2, f2, f3)
	case F7:
		return list(1, f1, p2, f3)
	case F8, F9:
		return list(0, f1, f2, f3)
	case F10, F11:
		return list(0, f1, f2)
	case F12:
		return list(NoField, UImm(s.bits(13, 20)), UImm(s.bits(20, 27)))
	case F13:
		return list(NoField)
	case F14:
		// fchkf target25
		disp := signExtend(s.bit(36)<<20|s.bits(6, 26), 21) << 4
		return list(NoField, Imm(disp))
	case F15, F16:
		return list(NoField, imm21)
	}
	return operandList{dest: NoField}
}
