package sockaddr

import (
	"strconv"
	"unsafe"

	"github.com/unixkit/unixkit/internal/unix"
)

// Family tags the encoding of a socket address.
type Family int

const (
	Inet  Family = unix.AF_INET
	Inet6 Family = unix.AF_INET6
	Unix  Family = unix.AF_UNIX
)

func (f Family) String() string {
	switch f {
	case Inet:
		return "inet"
	case Inet6:
		return "inet6"
	case Unix:
		return "unix"
	default:
		return "family(" + strconv.Itoa(int(f)) + ")"
	}
}

// Sockaddr is the union of the three supported address encodings. The
// concrete types are *Inet4Addr, *Inet6Addr and *UnixAddr; each owns a raw
// struct whose embedded family tag always matches the concrete type.
type Sockaddr interface {
	// Family reports which variant this is.
	Family() Family

	// Equal reports whether b describes the same endpoint. Padding bytes
	// never take part in the comparison.
	Equal(b Sockaddr) bool

	// Raw exposes the native struct and its size for address-consuming
	// syscalls. Callers must treat the memory as read-only.
	Raw() (unsafe.Pointer, uint32)

	// String renders the address: "a.b.c.d:port" for IPv4, "[addr]:port"
	// for IPv6 and the bare path for unix-domain addresses.
	String() string
}
