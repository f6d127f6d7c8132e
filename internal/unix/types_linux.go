//go:build linux

// Package unix is a thin wrapper around golang.org/x/sys/unix. It narrows
// the dependency to the identifiers unixkit actually uses and keeps platform
// selection in one place: there is no fallback file, so building any
// consumer of this package on an unsupported OS fails at compile time.
package unix

import (
	"syscall"

	linux "golang.org/x/sys/unix"
)

type Errno = syscall.Errno

type (
	Signal   = linux.Signal
	Sigset_t = linux.Sigset_t
	Siginfo  = linux.Siginfo
	Timespec = linux.Timespec
)

type (
	RawSockaddrInet4 = linux.RawSockaddrInet4
	RawSockaddrInet6 = linux.RawSockaddrInet6
	RawSockaddrUnix  = linux.RawSockaddrUnix
	IPMreq           = linux.IPMreq
)

const (
	AF_INET  = linux.AF_INET
	AF_INET6 = linux.AF_INET6
	AF_UNIX  = linux.AF_UNIX

	SizeofSockaddrInet4 = linux.SizeofSockaddrInet4
	SizeofSockaddrInet6 = linux.SizeofSockaddrInet6
	SizeofSockaddrUnix  = linux.SizeofSockaddrUnix

	SIG_BLOCK   = linux.SIG_BLOCK
	SIG_UNBLOCK = linux.SIG_UNBLOCK
	SIG_SETMASK = linux.SIG_SETMASK

	SYS_RT_SIGACTION    = linux.SYS_RT_SIGACTION
	SYS_RT_SIGPENDING   = linux.SYS_RT_SIGPENDING
	SYS_RT_SIGTIMEDWAIT = linux.SYS_RT_SIGTIMEDWAIT
)

const (
	SIGHUP    = linux.SIGHUP
	SIGINT    = linux.SIGINT
	SIGQUIT   = linux.SIGQUIT
	SIGILL    = linux.SIGILL
	SIGTRAP   = linux.SIGTRAP
	SIGABRT   = linux.SIGABRT
	SIGIOT    = linux.SIGIOT
	SIGBUS    = linux.SIGBUS
	SIGFPE    = linux.SIGFPE
	SIGKILL   = linux.SIGKILL
	SIGUSR1   = linux.SIGUSR1
	SIGSEGV   = linux.SIGSEGV
	SIGUSR2   = linux.SIGUSR2
	SIGPIPE   = linux.SIGPIPE
	SIGALRM   = linux.SIGALRM
	SIGTERM   = linux.SIGTERM
	SIGCHLD   = linux.SIGCHLD
	SIGCONT   = linux.SIGCONT
	SIGSTOP   = linux.SIGSTOP
	SIGTSTP   = linux.SIGTSTP
	SIGTTIN   = linux.SIGTTIN
	SIGTTOU   = linux.SIGTTOU
	SIGURG    = linux.SIGURG
	SIGXCPU   = linux.SIGXCPU
	SIGXFSZ   = linux.SIGXFSZ
	SIGVTALRM = linux.SIGVTALRM
	SIGPROF   = linux.SIGPROF
	SIGWINCH  = linux.SIGWINCH
	SIGIO     = linux.SIGIO
	SIGPOLL   = linux.SIGPOLL
	SIGPWR    = linux.SIGPWR
	SIGSYS    = linux.SIGSYS
)

const (
	EAGAIN       = linux.EAGAIN
	EAFNOSUPPORT = linux.EAFNOSUPPORT
	EINVAL       = linux.EINVAL
	ENAMETOOLONG = linux.ENAMETOOLONG
	EPERM        = linux.EPERM
	ESRCH        = linux.ESRCH
)

func Kill(pid int, sig Signal) error {
	return linux.Kill(pid, sig)
}

func Tgkill(tgid, tid int, sig Signal) error {
	return linux.Tgkill(tgid, tid, sig)
}

func Gettid() int {
	return linux.Gettid()
}

func Getpid() int {
	return linux.Getpid()
}

func PthreadSigmask(how int, set, oldset *Sigset_t) error {
	return linux.PthreadSigmask(how, set, oldset)
}

func NsecToTimespec(nsec int64) Timespec {
	return linux.NsecToTimespec(nsec)
}

func RawSyscall(trap, a1, a2, a3 uintptr) (r1, r2 uintptr, err Errno) {
	return linux.RawSyscall(trap, a1, a2, a3)
}

func RawSyscall6(trap, a1, a2, a3, a4, a5, a6 uintptr) (r1, r2 uintptr, err Errno) {
	return linux.RawSyscall6(trap, a1, a2, a3, a4, a5, a6)
}

func Syscall6(trap, a1, a2, a3, a4, a5, a6 uintptr) (r1, r2 uintptr, err Errno) {
	return linux.Syscall6(trap, a1, a2, a3, a4, a5, a6)
}
