package insts

// FormA is an encoding form of the integer ALU unit.
type FormA uint8

// A-unit encoding forms. ANone marks a reserved table entry.
const (
	ANone FormA = iota
	A1
	A2
	A3
	A4
	A5
	A6
	A7
	A8
	A9
	A10
)

// FormI is an encoding form of the non-ALU integer unit.
type FormI uint8

// I-unit encoding forms. INone marks a reserved table entry.
const (
	INone FormI = iota
	I1
	I2
	I3
	I4
	I5
	I6
	I7
	I8
	I9
	I10
	I11
	I12
	I13
	I14
	I15
	I16
	I17
	I18
	I19
	I20
	I21
	I22
	I23
	I24
	I25
	I26
	I27
	I28
	I29
	I30
)

// FormM is an encoding form of the memory unit.
type FormM uint8

// M-unit encoding forms. MNone marks a reserved table entry.
const (
	MNone FormM = iota
	M1
	M2
	M3
	M4
	M5
	M6
	M7
	M8
	M9
	M10
	M11
	M12
	M13
	M14
	M15
	M16
	M17
	M18
	M19
	M20
	M21
	M22
	M23
	M24
	M25
	M26
	M27
	M28
	M29
	M30
	M31
	M32
	M33
	M34
	M35
	M36
	M37
	M38
	M39
	M40
	M41
	M42
	M43
	M44
	M45
	M46
	M47
	M48
)

// FormF is an encoding form of the floating-point unit.
type FormF uint8

// F-unit encoding forms. FNone marks a reserved table entry.
const (
	FNone FormF = iota
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
)

// FormB is an encoding form of the branch unit.
type FormB uint8

// B-unit encoding forms. BNone marks a reserved table entry.
const (
	BNone FormB = iota
	B1
	B2
	B3
	B4
	B5
	B6
	B7
	B8
	B9
)

// FormX is an encoding form of the long immediate (L+X) unit.
type FormX uint8

// X-unit encoding forms. XNone marks a reserved table entry.
const (
	XNone FormX = iota
	X1
	X2
	X3
	X4
	X5
)

// entry pairs an opcode with its encoding form. Each unit has its own
// entry type so tables cannot mix forms across units.
type entryA struct {
	op   Opcode
	form FormA
}

type entryI struct {
	op   Opcode
	form FormI
}

type entryM struct {
	op   Opcode
	form FormM
}

type entryF struct {
	op   Opcode
	form FormF
}

type entryB struct {
	op   Opcode
	form FormB
}

type entryX struct {
	op   Opcode
	form FormX
}
