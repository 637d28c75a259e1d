package insts

import "errors"

// Decode errors. Errors returned by Decoder wrap exactly one of these.
var (
	ErrExhaustedInput = errors.New("exhausted input")
	ErrBadBundle      = errors.New("bad bundle")
	ErrBadOpcode      = errors.New("bad opcode")
	ErrBadOperand     = errors.New("bad operand")
)
