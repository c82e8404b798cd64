package sforth

import "github.com/scm2000/SForth/internal/thumb"

// CodeBuffer is the compiler's transient, growable half-word buffer.
// It is owned exclusively by the compiler between Begin and End; once
// End returns, its bytes are copied into a new dictionary entry and
// the buffer is discarded.
//
// Grounded on original_source/CompilationBuffer.h.
type CodeBuffer struct {
	halfwords []uint16
	quantum   int
}

// NewCodeBuffer returns a CodeBuffer that grows by quantum half-words
// at a time.
func NewCodeBuffer(quantum int) *CodeBuffer {
	if quantum <= 0 {
		quantum = 256
	}
	return &CodeBuffer{quantum: quantum}
}

// Begin discards any prior content and seeds the function prologue
// (push {r3, lr}).
func (c *CodeBuffer) Begin() {
	c.halfwords = c.halfwords[:0]
	c.halfwords = append(c.halfwords, thumb.Prologue()...)
}

// reserve grows the buffer by whole quanta until it can hold n more
// half-words without reallocating again on the next few emits; growth
// never discards or reorders previously written content (P6).
func (c *CodeBuffer) reserve(n int) {
	want := len(c.halfwords) + n
	if cap(c.halfwords) >= want {
		return
	}
	grown := cap(c.halfwords)
	for grown < want {
		grown += c.quantum
	}
	next := make([]uint16, len(c.halfwords), grown)
	copy(next, c.halfwords)
	c.halfwords = next
}

// EmitCallWithImmediate appends the 10 half-word block that loads r0
// with imm, loads r3 with target, and calls through r3.
func (c *CodeBuffer) EmitCallWithImmediate(target, imm Cell) {
	block := thumb.EncodeCallWithImmediate(uint32(target), uint32(imm))
	c.reserve(len(block))
	c.halfwords = append(c.halfwords, block...)
}

// EmitCall appends the 6 half-word block that loads r3 with target and
// branches-with-link through it.
func (c *CodeBuffer) EmitCall(target Cell) {
	block := thumb.EncodeCall(uint32(target))
	c.reserve(len(block))
	c.halfwords = append(c.halfwords, block...)
}

// End appends the function epilogue (pop {r3, pc}; nop). The buffer is
// then ready to be copied into a dictionary entry via Bytes.
func (c *CodeBuffer) End() {
	epi := thumb.Epilogue()
	c.reserve(len(epi))
	c.halfwords = append(c.halfwords, epi...)
}

// HalfWords returns the half-words written so far.
func (c *CodeBuffer) HalfWords() []uint16 {
	return c.halfwords
}

// Bytes returns the buffer's content as little-endian bytes, the wire
// format CompilationBuffer.h's uint16_t* array has on an ARM target.
func (c *CodeBuffer) Bytes() []byte {
	out := make([]byte, len(c.halfwords)*2)
	for i, hw := range c.halfwords {
		out[2*i] = byte(hw)
		out[2*i+1] = byte(hw >> 8)
	}
	return out
}
