//go:build linux

// Package thread identifies kernel threads, so that signals can be aimed at
// one thread instead of the whole process.
package thread

import "github.com/unixkit/unixkit/internal/unix"

// ID names a kernel thread within this process.
type ID int

// Self returns the caller's thread ID. The result is only meaningful while
// the goroutine is pinned to its thread with runtime.LockOSThread.
func Self() ID {
	return ID(unix.Gettid())
}
