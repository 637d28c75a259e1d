package insts

// Table 4-9 Integer ALU 4-bit+2-bit Opcode Extensions, indexed by
// x4:x2b (bits 27-32).
var table4_9 = [64]entryA{
	0x00: {OpAdd, A1},
	0x01: {OpAddPlusOne, A1},
	0x04: {OpSubMinusOne, A1},
	0x05: {OpSub, A1},
	0x08: {OpAddp4, A1},
	0x0c: {OpAnd, A1},
	0x0d: {OpAndcm, A1},
	0x0e: {OpOr, A1},
	0x0f: {OpXor, A1},
	0x10: {OpShladd, A2},
	0x11: {OpShladd, A2},
	0x12: {OpShladd, A2},
	0x13: {OpShladd, A2},
	0x18: {OpShladdp4, A2},
	0x19: {OpShladdp4, A2},
	0x1a: {OpShladdp4, A2},
	0x1b: {OpShladdp4, A2},
	0x25: {OpSub, A3},
	0x2c: {OpAnd, A3},
	0x2d: {OpAndcm, A3},
	0x2e: {OpOr, A3},
	0x2f: {OpXor, A3},
}

// Table 4-13 Multimedia ALU Size 1 4-bit+2-bit Opcode Extensions.
var table4_13 = [64]entryA{
	0x00: {OpPadd1, A9},
	0x01: {OpPadd1Sss, A9},
	0x02: {OpPadd1Uuu, A9},
	0x03: {OpPadd1Uus, A9},
	0x04: {OpPsub1, A9},
	0x05: {OpPsub1Sss, A9},
	0x06: {OpPsub1Uuu, A9},
	0x07: {OpPsub1Uus, A9},
	0x0a: {OpPavg1, A9},
	0x0b: {OpPavg1Raz, A9},
	0x0e: {OpPavgsub1, A9},
	0x24: {OpPcmp1Eq, A9},
	0x25: {OpPcmp1Gt, A9},
}

// Table 4-14 Multimedia ALU Size 2 4-bit+2-bit Opcode Extensions.
var table4_14 = [64]entryA{
	0x00: {OpPadd2, A9},
	0x01: {OpPadd2Sss, A9},
	0x02: {OpPadd2Uuu, A9},
	0x03: {OpPadd2Uus, A9},
	0x04: {OpPsub2, A9},
	0x05: {OpPsub2Sss, A9},
	0x06: {OpPsub2Uuu, A9},
	0x07: {OpPsub2Uus, A9},
	0x0a: {OpPavg2, A9},
	0x0b: {OpPavg2Raz, A9},
	0x0e: {OpPavgsub2, A9},
	0x10: {OpPshladd2, A10},
	0x11: {OpPshladd2, A10},
	0x12: {OpPshladd2, A10},
	0x13: {OpPshladd2, A10},
	0x18: {OpPshradd2, A10},
	0x19: {OpPshradd2, A10},
	0x1a: {OpPshradd2, A10},
	0x1b: {OpPshradd2, A10},
	0x24: {OpPcmp2Eq, A9},
	0x25: {OpPcmp2Gt, A9},
}

// Table 4-15 Multimedia ALU Size 4 4-bit+2-bit Opcode Extensions.
var table4_15 = [64]entryA{
	0x00: {OpPadd4, A9},
	0x04: {OpPsub4, A9},
	0x24: {OpPcmp4Eq, A9},
	0x25: {OpPcmp4Gt, A9},
}

// Table 4-12 Multimedia ALU 2-bit+1-bit Opcode Extensions, indexed by
// za:zb (bits 36, 33).
var table4_12 = [4]*[64]entryA{
	&table4_13,
	&table4_14,
	&table4_15,
	nil,
}

// Table 4-10 Integer Compare Opcode Extensions, per major opcode C, D
// and E, indexed by x2<0>:tb:ta:c.
var table4_10 = [3][16]Opcode{
	{
		OpCmpLt, OpCmpLtUnc, OpCmpEqAnd, OpCmpNeAnd,
		OpCmpGtAnd, OpCmpLeAnd, OpCmpGeAnd, OpCmpLtAnd,
		OpCmp4Lt, OpCmp4LtUnc, OpCmp4EqAnd, OpCmp4NeAnd,
		OpCmp4GtAnd, OpCmp4LeAnd, OpCmp4GeAnd, OpCmp4LtAnd,
	},
	{
		OpCmpLtu, OpCmpLtuUnc, OpCmpEqOr, OpCmpNeOr,
		OpCmpGtOr, OpCmpLeOr, OpCmpGeOr, OpCmpLtOr,
		OpCmp4Ltu, OpCmp4LtuUnc, OpCmp4EqOr, OpCmp4NeOr,
		OpCmp4GtOr, OpCmp4LeOr, OpCmp4GeOr, OpCmp4LtOr,
	},
	{
		OpCmpEq, OpCmpEqUnc, OpCmpEqOrAndcm, OpCmpNeOrAndcm,
		OpCmpGtOrAndcm, OpCmpLeOrAndcm, OpCmpGeOrAndcm, OpCmpLtOrAndcm,
		OpCmp4Eq, OpCmp4EqUnc, OpCmp4EqOrAndcm, OpCmp4NeOrAndcm,
		OpCmp4GtOrAndcm, OpCmp4LeOrAndcm, OpCmp4GeOrAndcm, OpCmp4LtOrAndcm,
	},
}

// Table 4-11 Integer Compare Immediate Opcode Extensions, indexed by
// x2<0>:ta:c.
var table4_11 = [3][8]Opcode{
	{
		OpCmpLt, OpCmpLtUnc, OpCmpEqAnd, OpCmpNeAnd,
		OpCmp4Lt, OpCmp4LtUnc, OpCmp4EqAnd, OpCmp4NeAnd,
	},
	{
		OpCmpLtu, OpCmpLtuUnc, OpCmpEqOr, OpCmpNeOr,
		OpCmp4Ltu, OpCmp4LtuUnc, OpCmp4EqOr, OpCmp4NeOr,
	},
	{
		OpCmpEq, OpCmpEqUnc, OpCmpEqOrAndcm, OpCmpNeOrAndcm,
		OpCmp4Eq, OpCmp4EqUnc, OpCmp4EqOrAndcm, OpCmp4NeOrAndcm,
	},
}

// resolveA maps an integer ALU slot to its opcode and form. tag is
// always 8 or above.
func resolveA(tag uint8, s slot) entryA {
	switch tag {
	case 0x8:
		x2a := s.bits(34, 36)
		if s.set(33) && x2a != 1 {
			// Table 4-8, ve=1 is only defined for multimedia.
			return entryA{}
		}
		// Table 4-8 Integer ALU 2-bit+1-bit Opcode Extensions
		switch x2a {
		case 0:
			return table4_9[s.bits(27, 33)]
		case 1:
			t := table4_12[s.bit(36)<<1|s.bit(33)]
			if t == nil {
				return entryA{}
			}
			return t[s.bits(27, 33)]
		case 2:
			return entryA{OpAdds, A4}
		default:
			return entryA{OpAddp4, A4}
		}
	case 0x9:
		return entryA{OpAddl, A5}
	case 0xc, 0xd, 0xe:
		cmp := tag - 0xc
		idx := s.bit(12) | s.bit(33)<<1 // c, ta
		if s.bits(34, 36) > 1 {
			return entryA{table4_11[cmp][idx|s.bit(34)<<2], A8}
		}
		form := A6
		if s.set(36) {
			form = A7
		}
		return entryA{table4_10[cmp][idx|s.bit(36)<<2|s.bit(34)<<3], form}
	default:
		// 0xa, 0xb, 0xf
		return entryA{}
	}
}

// readA extracts the operands of an integer ALU form.
func readA(form FormA, s slot) operandList {
	r1 := GR(s.reg(6))
	r2 := GR(s.reg(13))
	r3 := GR(s.reg(20))

	switch form {
	case A1, A9:
		return list(0, r1, r2, r3)
	case A2:
		// count2 is encoded as count-1
		return list(0, r1, r2, UImm(s.bits(27, 29)+1), r3)
	case A3:
		imm8 := signExtend(s.bit(36)<<7|s.bits(13, 20), 8)
		return list(0, r1, Imm(imm8), r3)
	case A4:
		imm14 := signExtend(s.bit(36)<<13|s.bits(27, 33)<<7|s.bits(13, 20), 14)
		return list(0, r1, Imm(imm14), r3)
	case A5:
		// r3 is only two bits wide, so addl can only add to r0-r3
		imm22 := signExtend(s.bit(36)<<21|s.bits(22, 27)<<16|s.bits(27, 36)<<7|s.bits(13, 20), 22)
		return list(0, r1, Imm(imm22), GR(uint8(s.bits(20, 22))))
	case A6:
		return list(1, PR(uint8(s.bits(6, 12))), PR(uint8(s.bits(27, 33))), r2, r3)
	case A7:
		// The r2 field must be zero; r0 is implied.
		return list(1, PR(uint8(s.bits(6, 12))), PR(uint8(s.bits(27, 33))), GR(0), r3)
	case A8:
		imm8 := signExtend(s.bit(36)<<7|s.bits(13, 20), 8)
		return list(1, PR(uint8(s.bits(6, 12))), PR(uint8(s.bits(27, 33))), Imm(imm8), r3)
	case A10:
		return list(0, r1, r2, UImm(s.bits(27, 29)+1), r3)
	}
	return operandList{dest: NoField}
}
