package sforth

import (
	"fmt"

	"github.com/scm2000/SForth/internal/config"
)

// Engine holds all of SForth's process-wide state: the dictionary, the
// data stack, the address space that backs it, the tokenizer's
// position within the line currently being evaluated, and the host
// collaborators (Output, Input, Peripheral). Exactly one Engine should
// ever be driving a given line of input at a time — spec.md §5
// forbids re-entering the interpreter or compiler while a primitive
// invoked from compiled code is running.
//
// Grounded on hagna-eforth/vm.go's Forth struct: one struct gathering
// what the reference scatters across C file-scope statics.
type Engine struct {
	Stack      *DataStack
	Dict       *Dictionary
	Addr       *AddressSpace
	Output     Output
	Input      Input
	Peripheral Peripheral

	cfg   config.Config
	tok   Tokenizer
	code  *CodeBuffer
	debug bool

	line     []byte
	prompted bool
}

// New returns an Engine ready for Begin. out must not be nil; in and
// peripheral may be nil if the caller never uses ShellHook or
// pinMode/digitalWrite respectively.
func New(cfg config.Config, out Output, in Input, peripheral Peripheral) *Engine {
	e := &Engine{
		Output:     out,
		Input:      in,
		Peripheral: peripheral,
		cfg:        cfg,
		debug:      cfg.Debug,
	}
	e.Addr = newAddressSpace()
	e.Dict = newDictionary(e.Addr)
	e.Stack = NewDataStack(cfg.StackBlockSize)
	e.code = NewCodeBuffer(cfg.CodeBufferQuantum)
	e.tok.SetMaxTokenLen(cfg.MaxTokenLen)
	if e.Peripheral == nil {
		e.Peripheral = LoggingPeripheral{Output: out}
	}
	return e
}

// Begin performs one-time initialization: it resets the dictionary
// (by constructing a fresh one) and installs every built-in primitive
// in spec.md §4.5, then announces readiness on Output.
//
// Grounded on original_source/SForth.cpp's SForthBegin.
func (e *Engine) Begin() error {
	e.Addr = newAddressSpace()
	e.Dict = newDictionary(e.Addr)
	e.Stack = NewDataStack(e.cfg.StackBlockSize)
	installPrimitives(e)

	fmt.Fprint(e.Output, "SForth is up and running!\r\n")
	return nil
}

// debugPrint writes a verbose trace line when e.debug is set, matching
// original_source/utils.h's DEBUG_PRINT macro (itself gated on a
// compile-time #ifdef DEBUG): "SForth DEBUG: <msg>" on the same output
// channel ordinary evaluation results go to.
func (e *Engine) debugPrint(msg string) {
	if !e.debug {
		return
	}
	fmt.Fprintf(e.Output, "SForth DEBUG: %s\r\n", msg)
}

// Evaluate runs the interpreter on one NUL-free source line. Any error
// raised by a token is caught here, printed as
// "Error: <kind>, <message>", and Evaluate returns normally — spec.md
// §7's non-local-escape-to-the-public-entry-point policy, implemented
// with an ordinary Go error return in place of the reference's
// setjmp/longjmp.
func (e *Engine) Evaluate(line string) error {
	if len(line) > e.cfg.MaxLineLen {
		line = line[:e.cfg.MaxLineLen]
	}

	if err := e.evaluate(line); err != nil {
		fmt.Fprintf(e.Output, "%s\r\n", err)
		return nil
	}
	return nil
}

func (e *Engine) evaluate(line string) error {
	e.debugPrint("Evaluate called")
	e.tok.Reset(line)
	for {
		tok := e.tok.NextToken()
		if tok == "" {
			return nil
		}
		if err := e.evalToken(tok); err != nil {
			return err
		}
	}
}

// evalToken performs one step of spec.md §4.6's dispatch: push a
// number, or look up and run a word.
func (e *Engine) evalToken(tok string) error {
	if isNumberToken(tok) {
		e.debugPrint("token is a number")
		e.debugPrint("token is: " + tok)
		val, err := parseNumber(tok)
		if err != nil {
			return err
		}
		e.Stack.Push(val)
		return nil
	}

	e.debugPrint("token is a word")
	entry := e.Dict.Lookup(tok)
	if entry == nil {
		return raise(UndefinedWord, "%s", tok)
	}
	return e.runEntry(entry)
}

// runEntry executes a dictionary entry per its kind, as spec.md §4.6
// describes.
func (e *Engine) runEntry(entry *dictElt) error {
	switch entry.kind {
	case Variable:
		e.debugPrint("token is a variable reference")
		e.Stack.Push(entry.addr)
		return nil
	case NativePrimitive:
		e.debugPrint("token is a predefined function reference")
		return entry.prim(e)
	case CompiledWord:
		e.debugPrint("token is a function reference")
		return entry.code.Invoke(e)
	default:
		e.debugPrint("dict is trashed?")
		return raise(InternalError, "apparently the dictionary is trashed")
	}
}

// dispatchAddress resolves one call site decoded out of a compiled
// word's body (internal/thumb.Run's Caller) and runs whatever it
// names: push_cell for a literal or variable-address push, a
// primitive, or a nested compiled word.
func (e *Engine) dispatchAddress(target, imm Cell, hasImm bool) error {
	if hasImm {
		if target != PushCellAddr {
			return raise(InternalError, "call-with-immediate to unexpected address 0x%08x", uint32(target))
		}
		e.Stack.Push(imm)
		return nil
	}

	if prim := e.Addr.Primitive(target); prim != nil {
		return prim(e)
	}
	if elt := e.Addr.CompiledWord(target); elt != nil {
		return elt.code.Invoke(e)
	}
	return raise(InternalError, "call to unknown address 0x%08x", uint32(target))
}
