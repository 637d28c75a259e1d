package insts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Decoder decodes IA-64 bundles. A Decoder holds no per-call state and is
// safe for concurrent use.
type Decoder struct {
	logger *slog.Logger
	strict bool
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger used for decode diagnostics. Diagnostics are
// logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithStrict makes the decoder reject bundles in which any slot resolves
// to a reserved encoding.
func WithStrict(strict bool) Option {
	return func(d *Decoder) {
		d.strict = strict
	}
}

// NewDecoder creates a new IA-64 bundle decoder.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Strict reports whether reserved encodings are reported as errors.
func (d *Decoder) Strict() bool {
	return d.strict
}

// Decode decodes the bundle in the first 16 bytes of b.
func (d *Decoder) Decode(b []byte) (*Bundle, error) {
	bundle := &Bundle{}
	if err := d.DecodeInto(b, bundle); err != nil {
		return nil, err
	}
	return bundle, nil
}

// DecodeFrom reads one bundle from r and decodes it. A short read
// reports ErrExhaustedInput.
func (d *Decoder) DecodeFrom(r io.Reader) (*Bundle, error) {
	var buf [BundleSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("reading bundle: %w", ErrExhaustedInput)
		}
		return nil, fmt.Errorf("reading bundle: %w", err)
	}
	return d.Decode(buf[:])
}

// DecodeInto decodes the bundle in the first 16 bytes of b into out,
// overwriting it. It does not allocate on success.
func (d *Decoder) DecodeInto(b []byte, out *Bundle) error {
	if len(b) < BundleSize {
		return fmt.Errorf("need %d bytes, have %d: %w", BundleSize, len(b), ErrExhaustedInput)
	}

	v := loadBits(b)
	tag := uint8(v.field(0, 5))
	t, ok := LookupTemplate(tag)
	if !ok {
		if d.logger.Enabled(context.Background(), slog.LevelDebug) {
			d.logger.Debug("reserved template", "tag", tag)
		}
		return fmt.Errorf("template %#x: %w", tag, ErrBadBundle)
	}

	*out = Bundle{Tag: tag}
	for i := 0; i < 3; i++ {
		in := &out.Insts[i]
		out.Count = i + 1
		if t.Slots[i] == UnitL {
			// The L slot is always slot 1 and carries no opcode.
			d.decodeLong(v.slotBits(i+1), v.slotBits(i), in)
			break
		}
		d.decodeSlot(t.Slots[i], v.slotBits(i), in)
	}

	for i := range out.Instructions() {
		in := &out.Insts[i]
		if !in.Reserved() {
			continue
		}
		if d.logger.Enabled(context.Background(), slog.LevelDebug) {
			d.logger.Debug("reserved encoding",
				"tag", tag, "slot", i, "unit", in.Unit.String(), "marker", in.Op.String())
		}
		if d.strict {
			return fmt.Errorf("slot %d: %s %s: %w", i, in.Unit, in.Op, ErrBadOpcode)
		}
	}
	return nil
}

// operandList is an operand reader result.
type operandList struct {
	dest int8
	ops  [MaxOperands]Operand
}

func list(dest int8, ops ...Operand) operandList {
	l := operandList{dest: dest}
	copy(l.ops[:], ops)
	return l
}

func (l operandList) apply(in *Instruction) {
	in.Dest = l.dest
	in.Ops = l.ops
}

// decodeSlot decodes a single 41-bit slot of the given unit type.
func (d *Decoder) decodeSlot(unit Unit, s slot, in *Instruction) {
	tag := s.tag()
	if tag >= 8 && (unit == UnitM || unit == UnitI) {
		unit = UnitA
	}

	*in = Instruction{
		Unit:      unit,
		Predicate: s.qp(),
		SF:        NoField,
		Hint:      NoField,
		Dest:      NoField,
	}

	switch unit {
	case UnitA:
		e := resolveA(tag, s)
		in.Op, in.Form = e.op, uint8(e.form)
		if e.form != ANone {
			readA(e.form, s).apply(in)
		}
		aliasA(in)
	case UnitI:
		e := resolveI(tag, s)
		in.Op, in.Form = e.op, uint8(e.form)
		if e.form != INone {
			readI(e.form, s).apply(in)
		}
	case UnitM:
		e := resolveM(tag, s)
		in.Op, in.Form = e.op, uint8(e.form)
		if e.form != MNone {
			readM(e.form, s).apply(in)
		}
		if memoryHint(tag, s) {
			in.Hint = int8(s.bits(28, 30))
		}
	case UnitF:
		e := resolveF(tag, s)
		in.Op, in.Form = e.op, uint8(e.form)
		if e.form != FNone {
			readF(e.form, s).apply(in)
		}
		if !statusFieldFree(tag, s) {
			in.SF = int8(s.bits(34, 36))
		}
		aliasF(in)
	case UnitB:
		e := resolveB(tag, s)
		in.Op, in.Form = e.op, uint8(e.form)
		if e.form != BNone {
			readB(e.form, s).apply(in)
		}
		if e.form == B6 || e.form == B7 {
			// brp reuses the qp field for its wh hint
			in.Predicate = 0
		}
	}
}

// decodeLong decodes an L+X pair. The X slot x carries the opcode and
// predicate; the L slot l only extends the immediate.
func (d *Decoder) decodeLong(x, l slot, in *Instruction) {
	*in = Instruction{
		Unit:      UnitX,
		Predicate: x.qp(),
		SF:        NoField,
		Hint:      NoField,
		Dest:      NoField,
	}
	e := resolveX(x.tag(), x)
	in.Op, in.Form = e.op, uint8(e.form)
	if e.form != XNone {
		readX(e.form, x, l).apply(in)
	}
}

// memoryHint reports whether an M slot carries an ld/st hint completer
// in bits [28,30).
func memoryHint(tag uint8, s slot) bool {
	switch tag {
	case 0, 1:
		return false
	case 4, 6:
		// getf and setf
		if x6 := s.bits(30, 36); x6 >= 0x1c && x6 <= 0x1f && !s.set(36) && s.set(27) {
			return false
		}
	}
	return true
}

// aliasA rewrites addl from r0 and adds of zero to the mov pseudo-op.
func aliasA(in *Instruction) {
	switch in.Op {
	case OpAddl:
		if in.Ops[2] == GR(0) {
			in.Op = OpMov
			in.Ops[2] = Operand{}
		}
	case OpAdds:
		if in.Ops[1] == Imm(0) {
			in.Op = OpMov
			in.Ops[1] = in.Ops[2]
			in.Ops[2] = Operand{}
		}
	}
}

var (
	fmpyAliases = map[Opcode]Opcode{
		OpFma: OpFmpy, OpFmaS: OpFmpyS, OpFmaD: OpFmpyD,
		OpXmaL: OpXmpyL, OpXmaH: OpXmpyH, OpXmaHu: OpXmpyHu,
	}
	fnormAliases = map[Opcode]Opcode{
		OpFma: OpFnorm, OpFmaS: OpFnormS, OpFmaD: OpFnormD,
	}
)

// aliasF rewrites multiply-adds with an f0 addend to fmpy, xmpy or, when
// the multiplier is f1, fnorm.
func aliasF(in *Instruction) {
	if in.Form != uint8(F1) && in.Form != uint8(F2) || in.Ops[3] != FR(0) {
		return
	}
	if op, ok := fnormAliases[in.Op]; ok && in.Ops[2] == FR(1) {
		in.Op = op
		in.Ops[2] = Operand{}
		in.Ops[3] = Operand{}
		return
	}
	if op, ok := fmpyAliases[in.Op]; ok {
		in.Op = op
		in.Ops[3] = Operand{}
	}
}
