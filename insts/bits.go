package insts

import (
	"encoding/binary"
	"fmt"
)

// BundleSize is the size of an IA-64 bundle in bytes.
const BundleSize = 16

// bits128 is a bundle viewed as a little-endian 128-bit vector. Word 0
// holds bits [0,64), word 1 holds bits [64,128).
type bits128 [2]uint64

func loadBits(b []byte) bits128 {
	return bits128{
		binary.LittleEndian.Uint64(b[0:8]),
		binary.LittleEndian.Uint64(b[8:16]),
	}
}

// field returns bits [lo, hi) with bit lo as the least significant bit
// of the result. Ranges are fixed by the architecture, so a bad range
// is a bug in the caller and panics.
func (v bits128) field(lo, hi uint) uint64 {
	if hi < lo || hi > 128 || hi-lo > 64 {
		panic(fmt.Sprintf("insts: bad bit range [%d,%d)", lo, hi))
	}

	n := hi - lo
	if n == 0 {
		return 0
	}

	var r uint64
	switch {
	case lo >= 64:
		r = v[1] >> (lo - 64)
	case hi <= 64:
		r = v[0] >> lo
	default:
		r = v[0]>>lo | v[1]<<(64-lo)
	}

	if n < 64 {
		r &= 1<<n - 1
	}
	return r
}

// slotBits returns the 41-bit window of slot i (0, 1 or 2).
func (v bits128) slotBits(i int) slot {
	lo := 5 + uint(i)*slotWidth
	return slot(v.field(lo, lo+slotWidth))
}

const slotWidth = 41

// slot is one 41-bit instruction window. Bit 0 is the least significant
// bit of the window.
type slot uint64

// bits returns slot bits [lo, hi).
func (s slot) bits(lo, hi uint) uint64 {
	if hi < lo || hi > slotWidth {
		panic(fmt.Sprintf("insts: bad slot range [%d,%d)", lo, hi))
	}
	return uint64(s) >> lo & (1<<(hi-lo) - 1)
}

// bit returns slot bit n as 0 or 1.
func (s slot) bit(n uint) uint64 {
	return s.bits(n, n+1)
}

// set reports whether slot bit n is 1.
func (s slot) set(n uint) bool {
	return s.bit(n) == 1
}

// reg returns the 7-bit register field starting at lo.
func (s slot) reg(lo uint) uint8 {
	return uint8(s.bits(lo, lo+7))
}

// tag is the major opcode, bits [37,41).
func (s slot) tag() uint8 {
	return uint8(s.bits(37, 41))
}

// qp is the qualifying predicate, bits [0,6).
func (s slot) qp() uint8 {
	return uint8(s.bits(0, 6))
}

// signExtend interprets the low width bits of v as a two's complement value.
func signExtend(v uint64, width uint) int64 {
	shift := 64 - width
	return int64(v<<shift) >> shift
}
