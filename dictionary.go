package sforth

// EntryKind tags the payload carried by a dictionary entry.
//
// Grounded on original_source/Dictionary.h's dictEltType, generalized
// per spec.md §4.3: the reference's early SForth.c has a dictDefine
// switch missing a break after predefinedFunction that falls through
// to the error arm (noted as a latent bug in spec.md §9); this
// implementation's dispatch (engine.go, compiler.go) has no such
// fallthrough.
type EntryKind int

const (
	// Variable entries hold one cell of storage; looking one up
	// pushes its address, not its value.
	Variable EntryKind = iota
	// NativePrimitive entries call straight into a host Go closure.
	NativePrimitive
	// CompiledWord entries hold a Thumb-2 function body emitted by
	// the compiler.
	CompiledWord
)

// dictElt is one dictionary entry: name, kind, payload, and a
// newest-first back-link. Entries are heap-allocated once and never
// moved or freed, so their addresses (and the address tokens minted
// for them) stay valid for the process's lifetime.
type dictElt struct {
	name string
	kind EntryKind
	prev *dictElt
	addr Cell // this entry's address token, minted once at definition time

	// cell is the payload for Variable entries.
	cell *Cell
	// prim is the payload for NativePrimitive entries.
	prim primitiveFunc
	// code is the payload for CompiledWord entries: the finished
	// Thumb-2 function body, resident in executable memory.
	code *compiledCode
}

// Dictionary is a singly-linked, newest-first list of entries. It
// doubles as the linker: the compiler resolves a word to the address
// token of an earlier entry's payload at compile time, so no entry
// may ever move.
//
// Grounded on original_source/Dictionary.h's prependNew/lookup.
type Dictionary struct {
	head *dictElt
	addr *AddressSpace
}

func newDictionary(addr *AddressSpace) *Dictionary {
	return &Dictionary{addr: addr}
}

func (d *Dictionary) prepend(elt *dictElt) {
	elt.prev = d.head
	d.head = elt
}

// DefineVariable appends a new Variable entry, payload initialized to
// zero, and returns its address token.
func (d *Dictionary) DefineVariable(name string) Cell {
	cell, token := d.addr.NewCell()
	d.prepend(&dictElt{name: name, kind: Variable, cell: cell, addr: token})
	return token
}

// DefinePrimitive appends a new NativePrimitive entry and returns its
// address token.
func (d *Dictionary) DefinePrimitive(name string, fn primitiveFunc) Cell {
	token := d.addr.NewPrimitive(fn)
	d.prepend(&dictElt{name: name, kind: NativePrimitive, prim: fn, addr: token})
	return token
}

// DefineCompiled appends a new CompiledWord entry whose payload is
// code, and returns the entry's (Thumb-bit-unset) address token.
func (d *Dictionary) DefineCompiled(name string, code *compiledCode) Cell {
	elt := &dictElt{name: name, kind: CompiledWord, code: code}
	token := d.addr.NewCompiledWord(elt)
	elt.addr = token
	d.prepend(elt)
	return token
}

// Lookup performs a linear search from the head and returns the
// newest entry named name, or nil. Names are not required to be
// unique; the newest definition shadows all older ones (P2).
func (d *Dictionary) Lookup(name string) *dictElt {
	for e := d.head; e != nil; e = e.prev {
		if e.name == name {
			return e
		}
	}
	return nil
}
