package insts

import (
	"fmt"
	"strings"
)

var appRegNames = map[AppReg]string{
	ARKR0: "ar.kr0", ARKR1: "ar.kr1", ARKR2: "ar.kr2", ARKR3: "ar.kr3",
	ARKR4: "ar.kr4", ARKR5: "ar.kr5", ARKR6: "ar.kr6", ARKR7: "ar.kr7",
	ARRSC: "ar.rsc", ARBSP: "ar.bsp", ARBSPSTORE: "ar.bspstore", ARRNAT: "ar.rnat",
	ARFCR: "ar.fcr", AREFLAG: "ar.eflag", ARCSD: "ar.csd", ARSSD: "ar.ssd",
	ARCFLG: "ar.cflg", ARFSR: "ar.fsr", ARFIR: "ar.fir", ARFDR: "ar.fdr",
	ARCCV: "ar.ccv", ARUNAT: "ar.unat", ARFPSR: "ar.fpsr", ARITC: "ar.itc",
	ARRUC: "ar.ruc", ARPFS: "ar.pfs", ARLC: "ar.lc", AREC: "ar.ec",
}

func (r AppReg) String() string {
	if name, ok := appRegNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ar%d", uint8(r))
}

// Control register names, from the control register table of the
// system architecture.
var ctrlRegNames = map[uint8]string{
	0: "cr.dcr", 1: "cr.itm", 2: "cr.iva", 8: "cr.pta",
	16: "cr.ipsr", 17: "cr.isr", 19: "cr.iip", 20: "cr.ifa",
	21: "cr.itir", 22: "cr.iipa", 23: "cr.ifs", 24: "cr.iim", 25: "cr.iha",
	64: "cr.lid", 65: "cr.ivr", 66: "cr.tpr", 67: "cr.eoi",
	68: "cr.irr0", 69: "cr.irr1", 70: "cr.irr2", 71: "cr.irr3",
	72: "cr.itv", 73: "cr.pmv", 74: "cr.cmcv", 80: "cr.lrr0", 81: "cr.lrr1",
}

func (o Operand) String() string {
	switch o.Kind {
	case KindNone:
		return ""
	case KindGR:
		return fmt.Sprintf("r%d", o.Reg)
	case KindFR:
		return fmt.Sprintf("f%d", o.Reg)
	case KindPR:
		return fmt.Sprintf("p%d", o.Reg)
	case KindBR:
		return fmt.Sprintf("b%d", o.Reg)
	case KindAR:
		return AppReg(o.Reg).String()
	case KindCR:
		if name, ok := ctrlRegNames[o.Reg]; ok {
			return name
		}
		return fmt.Sprintf("cr%d", o.Reg)
	case KindImm:
		if v := o.Signed(); v < 0 {
			return fmt.Sprintf("-%#x", uint64(-v))
		}
		return fmt.Sprintf("%#x", o.Value)
	case KindUImm:
		return fmt.Sprintf("%#x", o.Value)
	case KindMem:
		return fmt.Sprintf("[r%d]", o.Reg)
	case KindIndirect:
		return fmt.Sprintf("%s[r%d]", o.Space, o.Reg)
	case KindPSR:
		return "psr"
	case KindPSRL:
		return "psr.l"
	case KindPSRUM:
		return "psr.um"
	case KindPredicates:
		return "pr"
	case KindIP:
		return "ip"
	}
	return fmt.Sprintf("?%d", o.Kind)
}

// Target returns the IP-relative displacement in bytes of a branch,
// predict or speculation check, and the operand index holding it.
func (in *Instruction) Target() (disp int64, idx int, ok bool) {
	idx = -1
	switch in.Unit {
	case UnitB:
		switch FormB(in.Form) {
		case B1, B2, B6:
			idx = 0
		case B3:
			idx = 1
		}
	case UnitX:
		switch FormX(in.Form) {
		case X3:
			idx = 0
		case X4:
			idx = 1
		}
	case UnitM:
		switch FormM(in.Form) {
		case M20, M21, M22, M23:
			idx = 1
		}
	case UnitI:
		if FormI(in.Form) == I20 {
			idx = 1
		}
	case UnitF:
		if FormF(in.Form) == F14 {
			idx = 0
		}
	}
	if idx < 0 || in.Ops[idx].Kind != KindImm {
		return 0, 0, false
	}
	return in.Ops[idx].Signed(), idx, true
}

var (
	branchWhether  = [4]string{".sptk", ".spnt", ".dptk", ".dpnt"}
	branchPrefetch = [2]string{".few", ".many"}
	branchDealloc  = [2]string{"", ".clr"}
	predictWhether = [4]string{".sptk", ".loop", ".dptk", ".exit"}
	indirectWhere  = [4]string{".sptk", "", ".dptk", ""}
	moveWhether    = [4]string{".sptk", "", ".dptk", ""}
	importance     = [2]string{"", ".imp"}
	memoryHints    = [4]string{"", ".nt1", ".nt2", ".nta"}
)

// pick returns names[v], or "" when v is out of range.
func pick(names []string, o Operand) string {
	if o.Value >= uint64(len(names)) {
		return ""
	}
	return names[o.Value]
}

func relative(o Operand) string {
	if o.Kind != KindImm {
		return o.String()
	}
	if o.Signed() < 0 {
		return "$" + o.String()
	}
	return "$+" + o.String()
}

// String renders the instruction in assembler syntax.
func (in *Instruction) String() string {
	var sb strings.Builder
	if in.Predicate != 0 {
		fmt.Fprintf(&sb, "(p%02d) ", in.Predicate)
	}
	if !in.writeSpecial(&sb) {
		in.writeGeneric(&sb)
	}
	return sb.String()
}

func (in *Instruction) writeSpecial(sb *strings.Builder) bool {
	ops := in.Ops
	switch {
	case in.Op == OpAlloc && in.Ops[4].Kind != KindNone:
		fmt.Fprintf(sb, "alloc %s=%s,%d,%d,%d", ops[0], ops[1], ops[2].Value, ops[3].Value, ops[4].Value)
		return true
	case in.Unit == UnitB && (in.Form == uint8(B1) || in.Form == uint8(B2) || in.Form == uint8(B4)),
		in.Unit == UnitX && in.Form == uint8(X3):
		mnemonic := in.Op.String()
		whether := pick(branchWhether[:], ops[2])
		switch {
		case in.Op == OpBrCond && in.Predicate != 0:
		case in.Op == OpBrCond:
			// br is the unconditional pseudo-op; .sptk is its default
			mnemonic = "br"
			if ops[2].Value == 0 {
				whether = ""
			}
		case in.Op == OpBrlCond && in.Predicate == 0:
			mnemonic = "brl"
		}
		fmt.Fprintf(sb, "%s%s%s%s %s", mnemonic, whether,
			pick(branchPrefetch[:], ops[1]), pick(branchDealloc[:], ops[3]), relative(ops[0]))
		return true
	case in.Unit == UnitB && (in.Form == uint8(B3) || in.Form == uint8(B5)),
		in.Unit == UnitX && in.Form == uint8(X4):
		fmt.Fprintf(sb, "%s%s%s%s %s=%s", in.Op, pick(branchWhether[:], ops[3]),
			pick(branchPrefetch[:], ops[2]), pick(branchDealloc[:], ops[4]), ops[0], relative(ops[1]))
		return true
	case in.Unit == UnitB && in.Form == uint8(B6):
		fmt.Fprintf(sb, "%s%s%s %s,%s", in.Op, pick(predictWhether[:], ops[3]),
			pick(importance[:], ops[2]), relative(ops[0]), relative(ops[1]))
		return true
	case in.Unit == UnitB && in.Form == uint8(B7):
		fmt.Fprintf(sb, "%s%s%s %s,%s", in.Op, pick(indirectWhere[:], ops[3]),
			pick(importance[:], ops[2]), ops[0], relative(ops[1]))
		return true
	case in.Unit == UnitI && in.Form == uint8(I21):
		fmt.Fprintf(sb, "%s%s%s %s=%s", in.Op, pick(moveWhether[:], ops[4]),
			pick(importance[:], ops[3]), ops[0], ops[1])
		if ops[2].Value != 0 {
			fmt.Fprintf(sb, ",%s", relative(ops[2]))
		}
		return true
	case in.Unit == UnitI && in.Form == uint8(I24):
		fmt.Fprintf(sb, "%s pr.rot=%s", in.Op, ops[1])
		return true
	case in.Unit == UnitI && in.Form == uint8(I12) && in.Op == OpDepZ:
		if ops[2].Value+ops[3].Value == 64 {
			fmt.Fprintf(sb, "shl %s=%s,%s", ops[0], ops[1], ops[2])
			return true
		}
	case in.Unit == UnitI && in.Form == uint8(I11):
		if ops[2].Value+ops[3].Value == 64 {
			mnemonic := "shr"
			if in.Op == OpExtrU {
				mnemonic = "shr.u"
			}
			fmt.Fprintf(sb, "%s %s=%s,%s", mnemonic, ops[0], ops[1], ops[2])
			return true
		}
	}
	return false
}

func (in *Instruction) writeGeneric(sb *strings.Builder) {
	sb.WriteString(in.Op.String())
	if sf, ok := in.StatusField(); ok {
		fmt.Fprintf(sb, ".s%d", sf)
	}
	if hint, ok := in.PrefetchHint(); ok {
		sb.WriteString(memoryHints[hint&3])
	}

	_, tidx, rel := in.Target()
	for i, op := range in.Operands() {
		switch {
		case i == 0:
			sb.WriteByte(' ')
		case int(in.Dest) == i-1:
			sb.WriteByte('=')
		default:
			sb.WriteByte(',')
		}
		if rel && i == tidx {
			sb.WriteString(relative(op))
			continue
		}
		sb.WriteString(op.String())
	}
}

// String renders the bundle as "[MII] i0; i1;; i2;;" with ";;" marking
// stops.
func (b *Bundle) String() string {
	t, ok := LookupTemplate(b.Tag)
	if !ok || b.Count == 0 {
		return fmt.Sprintf("tag: invalid (%d)", b.Tag)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s]", t.Name())
	for i := range b.Instructions() {
		sb.WriteByte(' ')
		sb.WriteString(b.Insts[i].String())
		last := i == b.Count-1
		switch {
		case b.StopAfter(i):
			sb.WriteString(";;")
		case !last:
			sb.WriteByte(';')
		}
	}
	return sb.String()
}
