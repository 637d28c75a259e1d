package insts

// OperandKind identifies what an Operand refers to.
type OperandKind uint8

// Operand kinds.
const (
	KindNone     OperandKind = iota
	KindGR                   // general register r0-r127
	KindFR                   // floating-point register f0-f127
	KindPR                   // predicate register p0-p63
	KindBR                   // branch register b0-b7
	KindAR                   // application register
	KindCR                   // control register
	KindImm                  // signed immediate
	KindUImm                 // unsigned immediate
	KindMem                  // memory reference [rN]
	KindIndirect             // register file indirection, e.g. rr[rN]
	KindPSR                  // psr
	KindPSRL                 // psr.l
	KindPSRUM                // psr.um
	KindPredicates           // pr, the whole predicate file
	KindIP                   // ip
)

// Operand is a single decoded operand. Reg holds the register number for
// register kinds and the base general register for KindMem and
// KindIndirect. Value holds the raw bits of an immediate.
type Operand struct {
	Kind  OperandKind
	Reg   uint8
	Space RegSpace
	Value uint64
}

// AppReg is an application register number.
type AppReg uint8

// Architected application registers.
const (
	ARKR0      AppReg = 0
	ARKR1      AppReg = 1
	ARKR2      AppReg = 2
	ARKR3      AppReg = 3
	ARKR4      AppReg = 4
	ARKR5      AppReg = 5
	ARKR6      AppReg = 6
	ARKR7      AppReg = 7
	ARRSC      AppReg = 16
	ARBSP      AppReg = 17
	ARBSPSTORE AppReg = 18
	ARRNAT     AppReg = 19
	ARFCR      AppReg = 21
	AREFLAG    AppReg = 24
	ARCSD      AppReg = 25
	ARSSD      AppReg = 26
	ARCFLG     AppReg = 27
	ARFSR      AppReg = 28
	ARFIR      AppReg = 29
	ARFDR      AppReg = 30
	ARCCV      AppReg = 32
	ARUNAT     AppReg = 36
	ARFPSR     AppReg = 40
	ARITC      AppReg = 44
	ARRUC      AppReg = 45
	ARPFS      AppReg = 64
	ARLC       AppReg = 65
	AREC       AppReg = 66
)

// RegSpace is a register file reached through an indirect index.
type RegSpace uint8

// Indirect register files.
const (
	SpaceCPUID RegSpace = iota
	SpaceDBR
	SpaceDTR
	SpaceIBR
	SpaceITR
	SpaceMSR
	SpacePKR
	SpacePMC
	SpacePMD
	SpaceRR
)

var spaceNames = [...]string{
	SpaceCPUID: "cpuid",
	SpaceDBR:   "dbr",
	SpaceDTR:   "dtr",
	SpaceIBR:   "ibr",
	SpaceITR:   "itr",
	SpaceMSR:   "msr",
	SpacePKR:   "pkr",
	SpacePMC:   "pmc",
	SpacePMD:   "pmd",
	SpaceRR:    "rr",
}

func (s RegSpace) String() string {
	if int(s) >= len(spaceNames) {
		return "?"
	}
	return spaceNames[s]
}

// GR returns general register n.
func GR(n uint8) Operand { return Operand{Kind: KindGR, Reg: n} }

// FR returns floating-point register n.
func FR(n uint8) Operand { return Operand{Kind: KindFR, Reg: n} }

// PR returns predicate register n.
func PR(n uint8) Operand { return Operand{Kind: KindPR, Reg: n} }

// BR returns branch register n.
func BR(n uint8) Operand { return Operand{Kind: KindBR, Reg: n} }

// AR returns application register n.
func AR(n AppReg) Operand { return Operand{Kind: KindAR, Reg: uint8(n)} }

// CR returns control register n.
func CR(n uint8) Operand { return Operand{Kind: KindCR, Reg: n} }

// Imm returns a signed immediate.
func Imm(v int64) Operand { return Operand{Kind: KindImm, Value: uint64(v)} }

// UImm returns an unsigned immediate.
func UImm(v uint64) Operand { return Operand{Kind: KindUImm, Value: v} }

// Mem returns a memory reference through general register base.
func Mem(base uint8) Operand { return Operand{Kind: KindMem, Reg: base} }

// Indirect returns an indexed reference into register file s.
func Indirect(s RegSpace, index uint8) Operand {
	return Operand{Kind: KindIndirect, Space: s, Reg: index}
}

// Pseudo-operands.
var (
	PSR        = Operand{Kind: KindPSR}
	PSRL       = Operand{Kind: KindPSRL}
	PSRUM      = Operand{Kind: KindPSRUM}
	Predicates = Operand{Kind: KindPredicates}
	IP         = Operand{Kind: KindIP}
)

// IsNone reports whether o is an empty operand slot.
func (o Operand) IsNone() bool {
	return o.Kind == KindNone
}

// Signed returns the immediate as a signed value.
func (o Operand) Signed() int64 {
	return int64(o.Value)
}

// Immediate returns the raw immediate bits. ok is false when o is not an
// immediate.
func (o Operand) Immediate() (v uint64, ok bool) {
	if o.Kind != KindImm && o.Kind != KindUImm {
		return 0, false
	}
	return o.Value, true
}
