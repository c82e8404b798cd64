// Package texec places compiled code in real executable-permission
// memory and provides the instruction-cache synchronization seam
// spec.md §4.7 requires before a freshly written buffer is first
// invoked.
//
// Grounded on launix-de-memcp/scm/jit.go's allocExec/makeRX, adapted
// from raw "syscall" to the ecosystem golang.org/x/sys/unix package
// several pack repos already depend on.
package texec

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Region is one mmap'd, page-aligned block of memory that starts out
// writable and is flipped to executable once its code has been
// written.
type Region struct {
	mem []byte
}

// Alloc reserves a private anonymous mapping of at least size bytes,
// initially PROT_READ|PROT_WRITE.
func Alloc(size int) (*Region, error) {
	if size <= 0 {
		size = 1
	}
	page := unix.Getpagesize()
	n := (size + page - 1) &^ (page - 1)

	mem, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("texec: mmap: %w", err)
	}
	return &Region{mem: mem}, nil
}

// Bytes returns the region's backing slice for writing (while it is
// still PROT_WRITE) or decoding (once it is PROT_EXEC; most platforms
// keep PROT_READ alongside PROT_EXEC so this remains valid).
func (r *Region) Bytes() []byte {
	return r.mem
}

// MakeExecutable switches the region from writable to
// PROT_READ|PROT_EXEC and runs the instruction-cache sync hook. Once
// this returns, the region's bytes must not be written again.
func (r *Region) MakeExecutable() error {
	if err := unix.Mprotect(r.mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		return fmt.Errorf("texec: mprotect: %w", err)
	}
	SyncInstructionCache(r.mem)
	return nil
}

// Release unmaps the region. Callers must not use it afterward.
func (r *Region) Release() error {
	if r.mem == nil {
		return nil
	}
	err := unix.Munmap(r.mem)
	r.mem = nil
	return err
}
