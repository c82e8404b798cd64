package sforth

// compile drives the compiler's state machine (spec.md §4.7) from
// ExpectName through Body to Finalize. It is entered when the ":"
// primitive runs and owns the engine's transient CodeBuffer for its
// entire duration.
//
// State machine (spec.md §4.7):
//
//	Idle --':'--> ExpectName
//	ExpectName --valid name--> Body --';' or empty--> Finalize --> Idle
//	                           --number--> emit literal push, stay in Body
//	                           --word----> resolve + emit call, stay in Body
//	                           --error---> Abort --> Idle (buffer released)
//
// Grounded on original_source/SForth.cpp's sfDefineFunction stub and
// CompilationBuffer.h's begin/insertCall*/end sequence.
func (e *Engine) compile() error {
	e.code.Begin()

	name := e.tok.NextToken()
	if name == "" || !isLetter(name[0]) {
		return raise(NotAWord, "colon definitions must start with a letter")
	}

	for {
		tok := e.tok.NextToken()
		if tok == "" || tok[0] == ';' {
			break
		}

		if err := e.compileToken(tok); err != nil {
			// Abort: the partial code in the transient buffer is
			// discarded by the next Begin; the dictionary is left
			// unchanged.
			return err
		}
	}

	e.code.End()

	code, err := newCompiledCode(e.code.Bytes())
	if err != nil {
		return err
	}
	e.Dict.DefineCompiled(name, code)
	return nil
}

// compileToken emits one body token's code, per spec.md §4.7 step 3.
func (e *Engine) compileToken(tok string) error {
	if isNumberToken(tok) {
		num, err := parseNumber(tok)
		if err != nil {
			return err
		}
		e.code.EmitCallWithImmediate(PushCellAddr, num)
		return nil
	}

	entry := e.Dict.Lookup(tok)
	if entry == nil {
		return raise(UndefinedWord, "%s", tok)
	}

	switch entry.kind {
	case Variable:
		// Pushes the variable's address at run time, by the same
		// push_cell call a numeric literal uses.
		e.code.EmitCallWithImmediate(PushCellAddr, entry.addr)
	case NativePrimitive:
		e.code.EmitCall(entry.addr)
	case CompiledWord:
		// The Thumb bit must be set on every callable user-word
		// address embedded into a literal pool (spec.md §4.7's
		// "Thumb bit discipline").
		e.code.EmitCall(entry.addr | thumbBit)
	default:
		return raise(InternalError, "apparently the dictionary is trashed")
	}
	return nil
}
