package sforth

import "io"

// Output is the blocking output sink SForth prints to. Any io.Writer
// (a serial port on a real MCU, stdout on a host) satisfies it.
type Output = io.Writer

// Input is the byte-at-a-time, non-blocking input source ShellHook
// polls. Available must return immediately; ReadByte is only ever called
// when Available has just reported true, so it never blocks either.
//
// Grounded on original_source/SForth.cpp's shellHook, which polls
// Serial.available()/Serial.read() from the host idle loop.
type Input interface {
	Available() bool
	ReadByte() byte
}
