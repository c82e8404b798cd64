package thumb

import "fmt"

// Caller receives one decoded call site. hasImm is true for a call
// produced by EncodeCallWithImmediate, in which case imm carries the
// embedded 32-bit immediate (destined for r0); it is false for a call
// produced by EncodeCall.
type Caller func(target uint32, imm uint32, hasImm bool) error

// Run decodes and executes a code buffer produced by this package's
// encoders: a Prologue, zero or more EncodeCall/EncodeCallWithImmediate
// blocks, and an Epilogue.
//
// A real Cortex-M simply branches into these bytes; a hosted
// development machine has no matching calling convention to blx into
// without an assembly trampoline, so Run instead decodes exactly the
// closed set of shapes this package's encoders can ever produce and
// dispatches each call through caller. This is the "sole unsafe/FFI
// boundary" spec.md §9 asks for, re-expressed as a decode-and-dispatch
// loop instead of a native branch; see SPEC_FULL.md [M7].
func Run(code []uint16, caller Caller) error {
	if len(code) < 1 || code[0] != OpPushR3LR {
		return fmt.Errorf("thumb: missing function prologue")
	}
	pos := 1

	for pos < len(code) {
		switch {
		case matches(code, pos, OpPopR3PC, OpNop):
			return nil

		case matchesCallWithImmediate(code, pos):
			imm := joinWord(code[pos+5], code[pos+6])
			target := joinWord(code[pos+7], code[pos+8])
			if err := caller(target, imm, true); err != nil {
				return err
			}
			pos += 10

		case matchesCall(code, pos):
			target := joinWord(code[pos+3], code[pos+4])
			if err := caller(target, 0, false); err != nil {
				return err
			}
			pos += 6

		default:
			return fmt.Errorf("thumb: unrecognized instruction sequence at half-word %d", pos)
		}
	}

	return fmt.Errorf("thumb: fell off the end of the code buffer without an epilogue")
}

func matches(code []uint16, pos int, want ...uint16) bool {
	if pos+len(want) > len(code) {
		return false
	}
	for i, w := range want {
		if code[pos+i] != w {
			return false
		}
	}
	return true
}

func matchesCallWithImmediate(code []uint16, pos int) bool {
	return matches(code, pos, OpLdrR0PC8, OpLdrR3PC8, OpBlxR3, OpNop, OpBranch8)
}

func matchesCall(code []uint16, pos int) bool {
	return matches(code, pos, OpLdrR3PC4, OpBlxR3, OpBranch4)
}

func joinWord(lo, hi uint16) uint32 {
	return uint32(lo) | uint32(hi)<<16
}
