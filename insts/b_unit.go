package insts

// Table 4-48 Indirect/Miscellaneous Branch Opcode Extensions. x6 0x20
// and 0x21 select Tables 4-49 and 4-50; 0x22 and above are reserved.
var table4_48 = [32]entryB{
	0x00: {OpBreakB, B9},
	0x01: {OpWhite, BNone},
	0x02: {OpCover, B8},
	0x04: {OpClrrb, B8},
	0x05: {OpClrrbPr, B8},
	0x08: {OpRfi, B8},
	0x0c: {OpBsw0, B8},
	0x0d: {OpBsw1, B8},
	0x10: {OpEpc, B8},
	0x18: {OpVmsw0, B8},
	0x19: {OpVmsw1, B8},
}

// resolveB maps a branch slot to its opcode and form.
func resolveB(tag uint8, s slot) entryB {
	switch tag {
	case 0x0:
		x6 := s.bits(27, 33)
		switch {
		case x6 == 0x20:
			// Table 4-49 Indirect Branch Types
			switch s.bits(6, 9) {
			case 0:
				return entryB{OpBrCond, B4}
			case 1:
				return entryB{OpBrIa, B4}
			}
			return entryB{OpBrown, BNone}
		case x6 == 0x21:
			// Table 4-50 Indirect Return Branch Types
			if s.bits(6, 9) == 4 {
				return entryB{OpBrRet, B4}
			}
			return entryB{OpBrown, BNone}
		case x6 >= 0x20:
			return entryB{OpBrown, BNone}
		}
		e := table4_48[x6]
		if e.op == OpPurple {
			return entryB{OpCyan, BNone}
		}
		return e
	case 0x1:
		return entryB{OpBrCall, B5}
	case 0x2:
		// Table 4-55 Indirect Predict/Nop/Hint Opcode Extensions
		switch s.bits(27, 33) {
		case 0x00:
			return entryB{OpNopB, B9}
		case 0x01:
			return entryB{OpHintB, B9}
		case 0x10:
			return entryB{OpBrp, B7}
		case 0x11:
			return entryB{OpBrpRet, B7}
		}
		return entryB{OpWhite, BNone}
	case 0x4:
		// Table 4-47 IP-Relative Branch Types
		switch s.bits(6, 9) {
		case 0:
			return entryB{OpBrCond, B1}
		case 2:
			return entryB{OpBrWexit, B1}
		case 3:
			return entryB{OpBrWtop, B1}
		case 5:
			return entryB{OpBrCloop, B2}
		case 6:
			return entryB{OpBrCexit, B2}
		case 7:
			return entryB{OpBrCtop, B2}
		}
		return entryB{OpBrown, BNone}
	case 0x5:
		return entryB{OpBrCall, B3}
	case 0x7:
		return entryB{OpBrpIP, B6}
	case 0x3, 0x6:
		return entryB{OpWhite, BNone}
	default:
		return entryB{OpBrown, BNone}
	}
}

// branchTarget reads the 21-bit bundle displacement used by B1, B2, B3
// and B6 and scales it to bytes.
func branchTarget(s slot) int64 {
	return signExtend(s.bit(36)<<20|s.bits(13, 33), 21) << 4
}

// predictTag reads the 9-bit bundle offset of the branch a brp refers
// to.
func predictTag(s slot) int64 {
	return signExtend(s.bits(33, 35)<<7|s.bits(6, 13), 9) << 4
}

// readB extracts the operands of a branch form. Hint fields follow the
// branch operands as unsigned immediates: p (prefetch), wh (whether)
// and d (dealloc) for branches; tag, ih and wh for predicts.
func readB(form FormB, s slot) operandList {
	p := UImm(s.bit(12))
	wh := UImm(s.bits(33, 35))
	d := UImm(s.bit(35))
	b1 := BR(uint8(s.bits(6, 9)))
	b2 := BR(uint8(s.bits(13, 16)))

	switch form {
	case B1, B2:
		return list(NoField, Imm(branchTarget(s)), p, wh, d)
	case B3:
		return list(0, b1, Imm(branchTarget(s)), p, wh, d)
	case B4:
		return list(NoField, b2, p, wh, d)
	case B5:
		return list(0, b1, b2, p, wh, d)
	case B6:
		return list(NoField, Imm(branchTarget(s)), Imm(predictTag(s)), UImm(s.bit(35)), UImm(s.bits(3, 5)))
	case B7:
		return list(NoField, b2, Imm(predictTag(s)), UImm(s.bit(35)), UImm(s.bits(3, 5)))
	case B8:
		return list(NoField)
	case B9:
		return list(NoField, UImm(s.bit(36)<<20|s.bits(6, 26)))
	}
	return operandList{dest: NoField}
}
