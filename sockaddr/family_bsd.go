//go:build darwin || dragonfly || freebsd

package sockaddr

import "github.com/unixkit/unixkit/internal/unix"

// BSD sockaddrs carry their own length byte ahead of the family tag.

func initInet4(sa *unix.RawSockaddrInet4) {
	sa.Len = unix.SizeofSockaddrInet4
	sa.Family = unix.AF_INET
}

func initInet6(sa *unix.RawSockaddrInet6) {
	sa.Len = unix.SizeofSockaddrInet6
	sa.Family = unix.AF_INET6
}

func initUnix(sa *unix.RawSockaddrUnix) {
	sa.Len = unix.SizeofSockaddrUnix
	sa.Family = unix.AF_UNIX
}
