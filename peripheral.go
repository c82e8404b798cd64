package sforth

import "fmt"

// Peripheral is the host collaborator pinMode and digitalWrite
// delegate to. spec.md §1 explicitly keeps the Arduino-style
// peripheral primitives out of this package's scope ("external
// collaborators with fixed contracts") while keeping their dictionary
// entries and stack-effect contract (§4.5); a real MCU build supplies
// its own implementation, and the default one here just logs.
type Peripheral interface {
	PinMode(pin, mode Cell)
	DigitalWrite(pin, value Cell)
}

// LoggingPeripheral is the default Peripheral: it writes a line to the
// engine's output sink for every call instead of touching real
// hardware.
type LoggingPeripheral struct {
	Output Output
}

func (p LoggingPeripheral) PinMode(pin, mode Cell) {
	fmt.Fprintf(p.Output, "pinMode(%d, %d)\r\n", pin, mode)
}

func (p LoggingPeripheral) DigitalWrite(pin, value Cell) {
	fmt.Fprintf(p.Output, "digitalWrite(%d, %d)\r\n", pin, value)
}
