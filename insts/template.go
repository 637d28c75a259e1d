package insts

// Unit is the execution unit type an encoding is interpreted for.
type Unit uint8

// Execution unit types. A is never named by a template; integer ALU
// encodings live in M and I slots with tag 8 and above.
const (
	UnitNone Unit = iota
	UnitA
	UnitI
	UnitM
	UnitF
	UnitB
	UnitL
	UnitX
)

var unitNames = [...]string{"-", "A", "I", "M", "F", "B", "L", "X"}

func (u Unit) String() string {
	if int(u) >= len(unitNames) {
		return "?"
	}
	return unitNames[u]
}

// Template describes the slot types and stop positions of a bundle
// template.
type Template struct {
	Slots [3]Unit
	// Stops has bit 2 set for a stop after slot 0, bit 1 after slot 1 and
	// bit 0 after slot 2.
	Stops uint8
	Valid bool
}

// Name returns the slot type mnemonic, e.g. "MII".
func (t Template) Name() string {
	if !t.Valid {
		return "???"
	}
	return t.Slots[0].String() + t.Slots[1].String() + t.Slots[2].String()
}

// StopAfter reports whether an instruction group ends after slot i.
func (t Template) StopAfter(i int) bool {
	if i < 0 || i > 2 {
		return false
	}
	return t.Stops&(0b100>>uint(i)) != 0
}

// Long reports whether the template pairs an L slot with an X slot.
func (t Template) Long() bool {
	return t.Valid && t.Slots[1] == UnitL
}

func tpl(a, b, c Unit, stops uint8) Template {
	return Template{Slots: [3]Unit{a, b, c}, Stops: stops, Valid: true}
}

// Table 3-10 Template Field Encoding and Instruction Slot Mapping.
var templates = [32]Template{
	0x00: tpl(UnitM, UnitI, UnitI, 0b000),
	0x01: tpl(UnitM, UnitI, UnitI, 0b001),
	0x02: tpl(UnitM, UnitI, UnitI, 0b010),
	0x03: tpl(UnitM, UnitI, UnitI, 0b011),
	0x04: tpl(UnitM, UnitL, UnitX, 0b000),
	0x05: tpl(UnitM, UnitL, UnitX, 0b010),
	0x08: tpl(UnitM, UnitM, UnitI, 0b000),
	0x09: tpl(UnitM, UnitM, UnitI, 0b001),
	0x0a: tpl(UnitM, UnitM, UnitI, 0b100),
	0x0b: tpl(UnitM, UnitM, UnitI, 0b101),
	0x0c: tpl(UnitM, UnitF, UnitI, 0b000),
	0x0d: tpl(UnitM, UnitF, UnitI, 0b001),
	0x0e: tpl(UnitM, UnitM, UnitF, 0b000),
	0x0f: tpl(UnitM, UnitM, UnitF, 0b001),
	0x10: tpl(UnitM, UnitI, UnitB, 0b000),
	0x11: tpl(UnitM, UnitI, UnitB, 0b001),
	0x12: tpl(UnitM, UnitB, UnitB, 0b000),
	0x13: tpl(UnitM, UnitB, UnitB, 0b001),
	0x16: tpl(UnitB, UnitB, UnitB, 0b000),
	0x17: tpl(UnitB, UnitB, UnitB, 0b001),
	0x18: tpl(UnitM, UnitM, UnitB, 0b000),
	0x19: tpl(UnitM, UnitM, UnitB, 0b001),
	0x1c: tpl(UnitM, UnitF, UnitB, 0b000),
	0x1d: tpl(UnitM, UnitF, UnitB, 0b001),
}

// LookupTemplate returns the template for a 5-bit template tag. ok is
// false for reserved tags.
func LookupTemplate(tag uint8) (t Template, ok bool) {
	if tag >= 32 {
		return Template{}, false
	}
	t = templates[tag]
	return t, t.Valid
}
