// Package thumb encodes and decodes the small, fixed vocabulary of
// Thumb-2 instruction sequences SForth's compiler ever emits: a
// function prologue/epilogue and two literal-pool call forms that load
// a 32-bit address (and, for one of them, a 32-bit immediate) and
// branch-with-link through it.
//
// Grounded on original_source/CompilationBuffer.h's beginFunction,
// endFunction, insertCallToVoid, and insertCallToVoidWithArg, and on
// other_examples/LJS360d-RoBA__thumb_instructions.go's opcode table
// for naming convention.
package thumb

// Fixed Thumb-2 opcodes used by the encoder. Names follow the ARM
// mnemonic they encode, mirroring the opcode tables in
// other_examples/LJS360d-RoBA__thumb_instructions.go.
const (
	OpPushR3LR    uint16 = 0xB508 // push {r3, lr}          (function prologue)
	OpPopR3PC     uint16 = 0xBD08 // pop  {r3, pc}           (function epilogue)
	OpNop         uint16 = 0xBF00 // nop                     (literal-pool alignment)
	OpLdrR0PC8    uint16 = 0x4802 // ldr  r0, [pc, #8]
	OpLdrR3PC8    uint16 = 0x4B02 // ldr  r3, [pc, #8]
	OpLdrR3PC4    uint16 = 0x4B01 // ldr  r3, [pc, #4]
	OpBlxR3       uint16 = 0x4798 // blx  r3
	OpBranch8     uint16 = 0xE002 // b    .+8  (skip an 8-byte literal pair)
	OpBranch4     uint16 = 0xE001 // b    .+4  (skip a 4-byte literal)
)

// ThumbBit is the low bit of a code address that signals Thumb-state
// execution to blx.
const ThumbBit uint32 = 1

// WithThumbBit ORs in the Thumb bit, as the compiler must for every
// user-defined word's payload address before embedding it in a
// literal pool (spec.md §4.7's "Thumb bit discipline").
func WithThumbBit(addr uint32) uint32 {
	return addr | ThumbBit
}

// Prologue returns the half-words a compiled word's body begins with:
// push {r3, lr}, saving the caller's link register so nested blx calls
// return correctly.
func Prologue() []uint16 {
	return []uint16{OpPushR3LR}
}

// Epilogue returns the half-words a compiled word's body ends with:
// pop {r3, pc}, followed by an alignment nop.
func Epilogue() []uint16 {
	return []uint16{OpPopR3PC, OpNop}
}

// splitWord returns the little-endian low and high half-words of v.
func splitWord(v uint32) (lo, hi uint16) {
	return uint16(v), uint16(v >> 16)
}

// EncodeCallWithImmediate returns the 10 half-word sequence that loads
// r0 with imm, loads r3 with target, calls through r3, and skips over
// the two embedded 32-bit literals. This is the exact layout spec.md
// §4.4 and property P7 describe: literal halves at half-word offsets
// 5..7 (imm) and 7..9 (target), i.e. byte offsets 10..14 and 14..18.
func EncodeCallWithImmediate(target, imm uint32) []uint16 {
	immLo, immHi := splitWord(imm)
	tgtLo, tgtHi := splitWord(target)
	return []uint16{
		OpLdrR0PC8,
		OpLdrR3PC8,
		OpBlxR3,
		OpNop,
		OpBranch8,
		immLo, immHi,
		tgtLo, tgtHi,
		OpNop,
	}
}

// EncodeCall returns the 6 half-word sequence that loads r3 with
// target and branches-with-link through it, skipping the embedded
// 32-bit literal. Byte offsets 6..10 hold the literal (P7).
func EncodeCall(target uint32) []uint16 {
	tgtLo, tgtHi := splitWord(target)
	return []uint16{
		OpLdrR3PC4,
		OpBlxR3,
		OpBranch4,
		tgtLo, tgtHi,
		OpNop,
	}
}
