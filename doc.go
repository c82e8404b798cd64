/*
Package sforth implements SForth, an interactive Forth-like language
meant to be embedded into an ARM Cortex-M microcontroller.

A host feeds SForth lines of source text through Evaluate. Whitespace
delimited tokens are either numbers (pushed onto the data stack) or
words looked up in the dictionary. A word is one of three things: a
Variable (its dictionary-entry address is pushed), a NativePrimitive (a
host Go function is called directly), or a CompiledWord (native Thumb-2
machine code, emitted earlier by the compiler, is invoked).

The interesting part of this package is the compiler (compiler.go):
when ":" is evaluated, it drives a small state machine that reads
tokens up to ";" and emits a Thumb-2 function body for each one into a
CodeBuffer, using the literal-pool call sequences described in
internal/thumb. The finished buffer becomes a new CompiledWord entry
in the dictionary and can be called like any other word from then on.

Persisting the dictionary and data stack to flash is left unimplemented,
matching the reference this package is modeled on (see image.go).
*/
package sforth
