//go:build linux

package sockaddr

import "github.com/unixkit/unixkit/internal/unix"

func initInet4(sa *unix.RawSockaddrInet4) {
	sa.Family = unix.AF_INET
}

func initInet6(sa *unix.RawSockaddrInet6) {
	sa.Family = unix.AF_INET6
}

func initUnix(sa *unix.RawSockaddrUnix) {
	sa.Family = unix.AF_UNIX
}
