// Package insts provides IA-64 (Itanium) instruction definitions and
// bundle decoding.
//
// IA-64 code is fetched in 16-byte bundles. Bits [0,5) select a template
// that assigns a unit type (M, I, F, B, or the L+X long-immediate pair)
// to each of three 41-bit slots and marks where instruction groups stop.
// This package decodes a bundle into its instructions: opcode, qualifying
// predicate, completers and a left-packed operand list. It supports:
//   - all 24 defined templates, including MLX pairing
//   - integer ALU (A), integer (I), memory (M), floating-point (F),
//     branch (B) and long (X) encodings
//   - the mov, fmpy, fnorm and xmpy pseudo-ops
//
// Reserved encodings decode to one of the marker opcodes (OpPurple,
// OpCyan, OpBrown, OpWhite) unless the decoder is strict.
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	bundle, err := decoder.Decode(code[0:16])
//	if err != nil {
//		return err
//	}
//	fmt.Println(bundle) // [MIB] ld8 r1=[r15]; mov b6=r16; br.few b6;;
package insts
