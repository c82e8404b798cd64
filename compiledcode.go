package sforth

import (
	"github.com/scm2000/SForth/internal/texec"
	"github.com/scm2000/SForth/internal/thumb"
)

// compiledCode is the payload of a CompiledWord dictionary entry: a
// Thumb-2 function body resident in executable memory, ready to be
// invoked.
type compiledCode struct {
	region    *texec.Region
	halfWords []uint16
}

// newCompiledCode copies code (as produced by CodeBuffer) into a fresh
// executable-permission memory region and returns a handle to it. This
// is the "variable-length, contiguous, executable byte blob" spec.md
// §3 describes a CompiledWord's payload as.
func newCompiledCode(code []byte) (*compiledCode, error) {
	region, err := texec.Alloc(len(code))
	if err != nil {
		return nil, raise(OutOfMemory, "unable to map executable memory for compiled word: %v", err)
	}
	copy(region.Bytes(), code)
	if err := region.MakeExecutable(); err != nil {
		region.Release()
		return nil, raise(OutOfMemory, "unable to mark compiled word executable: %v", err)
	}

	halfWords := make([]uint16, len(code)/2)
	for i := range halfWords {
		halfWords[i] = uint16(code[2*i]) | uint16(code[2*i+1])<<8
	}
	return &compiledCode{region: region, halfWords: halfWords}, nil
}

// Invoke runs the compiled word's body against e. Invoking a compiled
// word means decoding the exact, closed Thumb-2 instruction set
// CodeBuffer can ever emit and dispatching each call site through e's
// AddressSpace — see SPEC_FULL.md [M7] for why a hosted Go process
// cannot simply blx into these bytes.
func (c *compiledCode) Invoke(e *Engine) error {
	return thumb.Run(c.halfWords, func(target, imm uint32, hasImm bool) error {
		return e.dispatchAddress(Cell(target), Cell(imm), hasImm)
	})
}
