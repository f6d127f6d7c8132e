//go:build linux

package signal

import (
	"fmt"
	"os"
	"runtime"
	"time"
	"unsafe"

	"github.com/unixkit/unixkit/internal/unix"
	"github.com/unixkit/unixkit/thread"
)

// How selects the way SetMask combines a set with the current thread mask.
type How int

const (
	// Block adds the set to the blocked signals.
	Block How = unix.SIG_BLOCK
	// Unblock removes the set from the blocked signals.
	Unblock How = unix.SIG_UNBLOCK
	// Replace installs the set as the new mask.
	Replace How = unix.SIG_SETMASK
)

// Info describes a delivered signal, decoded from the kernel siginfo
// record. It is produced by Wait and WaitTimeout and read-only afterwards.
type Info struct {
	// Signo is the delivered signal.
	Signo Signal
	// Errno is the OS error associated with the delivery, if any.
	Errno int32
	// Code identifies the delivery cause (SI_USER, SI_TKILL, ...).
	Code int32
}

// Install sets the action for sig and returns the action that was in effect
// immediately before the call. A nil act queries the current action without
// changing it.
//
// Failure is reported through the process-wide error state of the
// underlying call; catching an uncatchable signal yields EINVAL.
func Install(sig Signal, act *Action) (Action, error) {
	var kact *kernelSigaction
	if act != nil {
		k := act.kernel()
		kact = &k
	}
	var old kernelSigaction
	_, _, errno := unix.RawSyscall6(unix.SYS_RT_SIGACTION,
		uintptr(sig),
		uintptr(unsafe.Pointer(kact)),
		uintptr(unsafe.Pointer(&old)),
		kernelSigsetBytes, 0, 0)
	runtime.KeepAlive(kact)
	if errno != 0 {
		return Action{}, os.NewSyscallError("rt_sigaction", errno)
	}
	return actionFromKernel(&old), nil
}

// SetMask adjusts the calling thread's signal mask and returns the mask
// that was in effect before. A nil set queries the current mask without
// changing it.
//
// Pin the goroutine with runtime.LockOSThread first, otherwise the mask
// lands on whichever thread the goroutine happens to run on.
func SetMask(how How, set *Set) (Set, error) {
	var sp *unix.Sigset_t
	if set != nil {
		sp = &set.set
	}
	old := Empty()
	if err := unix.PthreadSigmask(int(how), sp, &old.set); err != nil {
		return Set{}, os.NewSyscallError("pthread_sigmask", err)
	}
	return old, nil
}

// Kill sends sig to the process pid.
func Kill(pid int, sig Signal) error {
	if err := unix.Kill(pid, sig); err != nil {
		return os.NewSyscallError("kill", err)
	}
	return nil
}

// KillThread sends sig to a single thread of this process. The tid is
// paired with the process id, so a recycled tid in another process can
// never be hit by mistake.
func KillThread(tid thread.ID, sig Signal) error {
	if err := unix.Tgkill(unix.Getpid(), int(tid), sig); err != nil {
		return os.NewSyscallError("tgkill", err)
	}
	return nil
}

// Wait blocks until one of the signals in set is pending, consumes it and
// returns its description. The signals in set must already be blocked on
// the calling thread; that is the caller's obligation and is not checked
// here. A plain Wait cannot be ended from elsewhere in the process, only by
// a qualifying signal; use WaitTimeout when that matters.
//
// Unlike Install and SetMask there is no query form, so a nil set fails
// with EINVAL instead of selecting one.
func Wait(set *Set) (Info, error) {
	return timedwait(set, nil)
}

// WaitTimeout is Wait with an upper bound. It fails with EAGAIN when no
// signal arrives within d. A zero duration polls without blocking.
func WaitTimeout(set *Set, d time.Duration) (Info, error) {
	ts := unix.NsecToTimespec(d.Nanoseconds())
	return timedwait(set, &ts)
}

func timedwait(set *Set, ts *unix.Timespec) (Info, error) {
	if set == nil {
		return Info{}, fmt.Errorf("nil signal set: %w", unix.EINVAL)
	}
	var si unix.Siginfo
	_, _, errno := unix.Syscall6(unix.SYS_RT_SIGTIMEDWAIT,
		uintptr(unsafe.Pointer(&set.set)),
		uintptr(unsafe.Pointer(&si)),
		uintptr(unsafe.Pointer(ts)),
		kernelSigsetBytes, 0, 0)
	if errno != 0 {
		return Info{}, os.NewSyscallError("rt_sigtimedwait", errno)
	}
	return Info{Signo: Signal(si.Signo), Errno: si.Errno, Code: si.Code}, nil
}

// Pending returns the set of signals pending for the calling thread and
// process.
func Pending() (Set, error) {
	set := Empty()
	_, _, errno := unix.RawSyscall(unix.SYS_RT_SIGPENDING,
		uintptr(unsafe.Pointer(&set.set)), kernelSigsetBytes, 0)
	if errno != 0 {
		return Set{}, os.NewSyscallError("rt_sigpending", errno)
	}
	return set, nil
}
