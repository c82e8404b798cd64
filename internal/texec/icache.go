package texec

// SyncInstructionCache makes the instruction view of a freshly written
// code region consistent with the data view before it is first called,
// as spec.md §4.7 requires ("on targets with split instruction/data
// caches ... the implementation must ensure that the instruction view
// of those bytes is consistent before first call").
//
// On hosted amd64/arm64 Linux there is no cache SForth needs to manage
// by hand (the kernel's mprotect already takes care of what matters
// for a process's own writes), so this is a no-op. A bare-metal
// Cortex-M integration overrides this with the target's cache-clean /
// invalidate / isb sequence; this function is the documented hook for
// that, per spec.md's "implementation requires the implementation
// provide a hook".
func SyncInstructionCache(code []byte) {
	_ = code
}
