package insts

// resolveX maps the X slot of an L+X pair to its opcode and form.
func resolveX(tag uint8, s slot) entryX {
	switch tag {
	case 0x0:
		// Table 4-70 Misc X-Unit 3-bit and 6-bit Opcode Extensions
		if s.bits(33, 36) != 0 {
			return entryX{}
		}
		switch s.bits(27, 33) {
		case 0x00:
			return entryX{OpBreakX, X1}
		case 0x01:
			// Table 4-73 Misc X-Unit 1-bit Opcode Extensions
			if s.set(26) {
				return entryX{OpHintX, X5}
			}
			return entryX{OpNopX, X5}
		}
		return entryX{}
	case 0x6:
		return entryX{OpMovl, X2}
	case 0xc:
		return entryX{OpBrlCond, X3}
	case 0xd:
		return entryX{OpBrlCall, X4}
	case 0x8, 0x9, 0xa, 0xb, 0xe, 0xf:
		return entryX{OpCyan, XNone}
	default:
		return entryX{}
	}
}

// readX extracts the operands of an L+X pair. x is the X slot, l the L
// slot supplying the upper immediate bits.
func readX(form FormX, x, l slot) operandList {
	imm41 := uint64(l)
	imm62 := UImm(imm41<<21 | x.bit(36)<<20 | x.bits(6, 26))

	switch form {
	case X1, X5:
		return list(NoField, imm62)
	case X2:
		imm64 := x.bit(36)<<63 | imm41<<22 | x.bit(21)<<21 |
			x.bits(22, 27)<<16 | x.bits(27, 36)<<7 | x.bits(13, 20)
		return list(0, GR(x.reg(6)), UImm(imm64))
	case X3, X4:
		// imm60 = i:imm39:imm20b, in bundles
		imm39 := imm41 >> 2
		disp := Imm(signExtend(x.bit(36)<<59|imm39<<20|x.bits(13, 33), 60) << 4)
		p := UImm(x.bit(12))
		wh := UImm(x.bits(33, 35))
		d := UImm(x.bit(35))
		if form == X4 {
			return list(0, BR(uint8(x.bits(6, 9))), disp, p, wh, d)
		}
		return list(NoField, disp, p, wh, d)
	}
	return operandList{dest: NoField}
}
