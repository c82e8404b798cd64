package sforth

import "errors"

// ErrNotImplemented is returned by SaveImage and LoadImage.
// Persistence of the dictionary and data stack to flash is a
// documented non-goal (spec.md §1); original_source/SForth.cpp itself
// ends with a "Writing the dictionary and datastack to flash" comment
// and no implementation. These two methods exist so the gap is an
// explicit, discoverable stub rather than a missing feature nobody
// thought about.
var ErrNotImplemented = errors.New("sforth: flash persistence is not implemented")

// SaveImage would serialize the dictionary and data stack for later
// restore. Not implemented; see ErrNotImplemented.
func (e *Engine) SaveImage() error {
	return ErrNotImplemented
}

// LoadImage would restore a dictionary and data stack previously
// written by SaveImage. Not implemented; see ErrNotImplemented.
func (e *Engine) LoadImage() error {
	return ErrNotImplemented
}
