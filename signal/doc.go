//go:build linux

// Package signal provides synchronous signal primitives: signal sets,
// sigaction-style handler installation, thread signal masks and blocking
// waits, targeted at a process or at a single kernel thread.
//
// Everything in this package acts on the calling thread. Pin the goroutine
// with runtime.LockOSThread around any sequence of SetMask, Wait and
// KillThread calls, otherwise the kernel state lands on whichever thread the
// scheduler picked at that moment.
//
// The package does not buffer, reorder or dispatch signals; ordering and
// coalescing are exactly what the kernel provides. A Wait without a timeout
// can only be ended by a qualifying signal, not from elsewhere in the
// process.
package signal
