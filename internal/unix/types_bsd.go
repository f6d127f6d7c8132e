//go:build darwin || dragonfly || freebsd

package unix

import (
	"syscall"

	bsd "golang.org/x/sys/unix"
)

// Only the socket-address surface is available on the BSDs. The signal
// surface needs raw syscall access that golang.org/x/sys no longer exposes
// there, so its consumers are restricted to Linux.

type Errno = syscall.Errno

type (
	RawSockaddrInet4 = bsd.RawSockaddrInet4
	RawSockaddrInet6 = bsd.RawSockaddrInet6
	RawSockaddrUnix  = bsd.RawSockaddrUnix
	IPMreq           = bsd.IPMreq
)

const (
	AF_INET  = bsd.AF_INET
	AF_INET6 = bsd.AF_INET6
	AF_UNIX  = bsd.AF_UNIX

	SizeofSockaddrInet4 = bsd.SizeofSockaddrInet4
	SizeofSockaddrInet6 = bsd.SizeofSockaddrInet6
	SizeofSockaddrUnix  = bsd.SizeofSockaddrUnix
)

const (
	EAFNOSUPPORT = bsd.EAFNOSUPPORT
	EINVAL       = bsd.EINVAL
	ENAMETOOLONG = bsd.ENAMETOOLONG
)
