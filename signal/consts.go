//go:build linux

package signal

import "github.com/unixkit/unixkit/internal/unix"

// Signal is a platform signal number. It aliases the x/sys signal type and
// therefore interoperates with the os and syscall packages.
type Signal = unix.Signal

// Signal numbers for the current platform. The numeric values differ
// between architectures (MIPS in particular); the right table is selected
// at compile time.
const (
	SIGHUP    = unix.SIGHUP
	SIGINT    = unix.SIGINT
	SIGQUIT   = unix.SIGQUIT
	SIGILL    = unix.SIGILL
	SIGTRAP   = unix.SIGTRAP
	SIGABRT   = unix.SIGABRT
	SIGIOT    = unix.SIGIOT
	SIGBUS    = unix.SIGBUS
	SIGFPE    = unix.SIGFPE
	SIGKILL   = unix.SIGKILL
	SIGUSR1   = unix.SIGUSR1
	SIGSEGV   = unix.SIGSEGV
	SIGUSR2   = unix.SIGUSR2
	SIGPIPE   = unix.SIGPIPE
	SIGALRM   = unix.SIGALRM
	SIGTERM   = unix.SIGTERM
	SIGCHLD   = unix.SIGCHLD
	SIGCONT   = unix.SIGCONT
	SIGSTOP   = unix.SIGSTOP
	SIGTSTP   = unix.SIGTSTP
	SIGTTIN   = unix.SIGTTIN
	SIGTTOU   = unix.SIGTTOU
	SIGURG    = unix.SIGURG
	SIGXCPU   = unix.SIGXCPU
	SIGXFSZ   = unix.SIGXFSZ
	SIGVTALRM = unix.SIGVTALRM
	SIGPROF   = unix.SIGPROF
	SIGWINCH  = unix.SIGWINCH
	SIGIO     = unix.SIGIO
	SIGPOLL   = unix.SIGPOLL
	SIGPWR    = unix.SIGPWR
	SIGSYS    = unix.SIGSYS
)
