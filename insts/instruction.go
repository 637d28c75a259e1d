package insts

import "fmt"

// MaxOperands is the operand capacity of an Instruction.
const MaxOperands = 5

// NoField marks an absent optional field.
const NoField int8 = -1

// Instruction represents one decoded slot (or L+X pair).
type Instruction struct {
	Op   Opcode // Operation code
	Unit Unit   // Unit the encoding was resolved for
	Form uint8  // Encoding form number within Unit, 0 if reserved

	Predicate uint8 // Qualifying predicate, 0 is always true
	SF        int8  // FPSR status field s0-s3, or NoField
	Hint      int8  // Locality hint 0-3 for memory ops, or NoField

	// Dest is the index of the last operand written left of '=' in
	// assembly syntax, or NoField.
	Dest int8

	// Ops is left-packed: no KindNone operand precedes a used one.
	Ops [MaxOperands]Operand
}

// Operands returns the used prefix of Ops.
func (in *Instruction) Operands() []Operand {
	n := 0
	for n < MaxOperands && in.Ops[n].Kind != KindNone {
		n++
	}
	return in.Ops[:n]
}

// StatusField returns the FPSR status field, if the encoding has one.
func (in *Instruction) StatusField() (uint8, bool) {
	if in.SF == NoField {
		return 0, false
	}
	return uint8(in.SF), true
}

// PrefetchHint returns the memory locality hint, if the encoding has one.
func (in *Instruction) PrefetchHint() (uint8, bool) {
	if in.Hint == NoField {
		return 0, false
	}
	return uint8(in.Hint), true
}

// DestBoundary returns the index of the last destination operand.
func (in *Instruction) DestBoundary() (int, bool) {
	if in.Dest == NoField {
		return 0, false
	}
	return int(in.Dest), true
}

// FormName returns the encoding form, e.g. "A5", or "" for reserved
// encodings.
func (in *Instruction) FormName() string {
	if in.Form == 0 {
		return ""
	}
	return fmt.Sprintf("%s%d", in.Unit, in.Form)
}

// Reserved reports whether the slot resolved to an undefined encoding.
func (in *Instruction) Reserved() bool {
	return in.Op.Reserved()
}

// Bundle is a decoded 16-byte bundle.
type Bundle struct {
	Tag   uint8 // Template field, bits [0,5)
	Count int   // 3, or 2 for L+X templates
	Insts [3]Instruction
}

// Instructions returns the decoded instructions in slot order.
func (b *Bundle) Instructions() []Instruction {
	return b.Insts[:b.Count]
}

// Template returns the bundle's template.
func (b *Bundle) Template() Template {
	t, _ := LookupTemplate(b.Tag)
	return t
}

// StopAfter reports whether an instruction group ends after instruction
// k. For L+X bundles the second instruction ends with the template's
// slot 1 stop bit.
func (b *Bundle) StopAfter(k int) bool {
	if k < 0 || k >= b.Count {
		return false
	}
	return b.Template().StopAfter(k)
}
