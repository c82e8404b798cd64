package sforth

// Cell is the 32-bit unit of the data stack, of variable storage, and
// of every address handle exposed by this package. Signed
// interpretation, where it matters (.s), is per-operation.
type Cell uint32
