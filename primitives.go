package sforth

import "fmt"

// installPrimitives registers every built-in word spec.md §4.5 lists.
// Order matches original_source/SForth.cpp's SForthBegin so a hex dump
// of early address tokens lines up with the reference's dictionary.
func installPrimitives(e *Engine) {
	e.Dict.DefinePrimitive("+", primAdd)
	e.Dict.DefinePrimitive("-", primSubtract)
	e.Dict.DefinePrimitive("<<", primLeftShift)
	e.Dict.DefinePrimitive(">>", primRightShift)
	e.Dict.DefinePrimitive("!", primStore)
	e.Dict.DefinePrimitive("@", primFetch)
	e.Dict.DefinePrimitive("pinMode", primPinMode)
	e.Dict.DefinePrimitive("digitalWrite", primDigitalWrite)
	e.Dict.DefinePrimitive(".", primPrintUnsigned)
	e.Dict.DefinePrimitive(".s", primPrintSigned)
	e.Dict.DefinePrimitive(".x", primPrintHex)
	e.Dict.DefinePrimitive("dup", primDup)
	e.Dict.DefinePrimitive("swap", primSwap)
	e.Dict.DefinePrimitive("variable", primVariable)
	e.Dict.DefinePrimitive(":", primColon)
}

// sfAdd ( a b -- a+b ). Commutative, so pop order does not matter.
func primAdd(e *Engine) error {
	a, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	e.Stack.Push(a + b)
	return nil
}

// sfSubtract ( b a -- b-a ). The first pop is the right operand: for
// input text "b a -" the result is b-a (P5).
func primSubtract(e *Engine) error {
	a, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	e.Stack.Push(b - a)
	return nil
}

// sfLeftShift ( b a -- b<<a ). Shift count is applied mod 32 (Go's own
// uint32 shift would yield 0 for a count of 32 or more).
func primLeftShift(e *Engine) error {
	a, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	e.Stack.Push(b << (uint32(a) % 32))
	return nil
}

// sfRightShift ( b a -- b>>a ). Logical (unsigned) shift.
func primRightShift(e *Engine) error {
	a, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	e.Stack.Push(b >> (uint32(a) % 32))
	return nil
}

// sfStoreToMem ( v addr -- ). Interprets addr as an address token and
// stores v at the cell it names.
func primStore(e *Engine) error {
	addr, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	v, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	cell := e.Addr.Cell(addr)
	if cell == nil {
		return raise(InternalError, "! to an address that is not a variable: 0x%08x", uint32(addr))
	}
	*cell = v
	return nil
}

// sfFetchFromMem ( addr -- v ). Interprets addr as an address token
// and loads the cell it names.
func primFetch(e *Engine) error {
	addr, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	cell := e.Addr.Cell(addr)
	if cell == nil {
		return raise(InternalError, "@ on an address that is not a variable: 0x%08x", uint32(addr))
	}
	e.Stack.Push(*cell)
	return nil
}

// sfDup ( a -- a a ).
func primDup(e *Engine) error {
	a, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	e.Stack.Push(a)
	e.Stack.Push(a)
	return nil
}

// sfSwap ( a b -- b a ).
func primSwap(e *Engine) error {
	a, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	b, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	e.Stack.Push(a)
	e.Stack.Push(b)
	return nil
}

// printUnsignedDecimalValue ( a -- ).
func primPrintUnsigned(e *Engine) error {
	v, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	fmt.Fprintf(e.Output, "%d\r\n", uint32(v))
	return nil
}

// printSignedDecimalValue ( a -- ).
func primPrintSigned(e *Engine) error {
	v, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	fmt.Fprintf(e.Output, "%d\r\n", int32(v))
	return nil
}

// printHexValue ( a -- ).
func primPrintHex(e *Engine) error {
	v, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	fmt.Fprintf(e.Output, "0x%08x\r\n", uint32(v))
	return nil
}

// sfVariable reads the next token and, if it starts with a letter,
// defines it as a new Variable entry; otherwise raises NotAWord.
func primVariable(e *Engine) error {
	name := e.tok.NextToken()
	if name == "" || !isLetter(name[0]) {
		return raise(NotAWord, "non-existent or numeric token for variable")
	}
	e.Dict.DefineVariable(name)
	return nil
}

// sfDefineFunction: ":" hands off to the compiler (compiler.go).
func primColon(e *Engine) error {
	return e.compile()
}

// sfPinMode ( pin mode -- ), delegated to the host Peripheral.
func primPinMode(e *Engine) error {
	mode, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	pin, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	e.Peripheral.PinMode(pin, mode)
	return nil
}

// sfDigitalWrite ( pin val -- ), delegated to the host Peripheral.
func primDigitalWrite(e *Engine) error {
	val, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	pin, err := e.Stack.Pop()
	if err != nil {
		return err
	}
	e.Peripheral.DigitalWrite(pin, val)
	return nil
}
