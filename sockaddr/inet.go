package sockaddr

import (
	"fmt"
	"net/netip"
	"unsafe"

	"github.com/unixkit/unixkit/internal/unix"
)

// FromAddrPort encodes ap in the native format of its address family. Port
// and address land in network byte order; all padding in the native struct
// is zeroed. IPv6 zone names are not mapped to scope ids.
func FromAddrPort(ap netip.AddrPort) (Sockaddr, error) {
	switch addr := ap.Addr(); {
	case addr.Is4():
		sa := &Inet4Addr{}
		initInet4(&sa.raw)
		sa.raw.Addr = addr.As4()
		putPort(&sa.raw.Port, ap.Port())
		return sa, nil
	case addr.Is6():
		sa := &Inet6Addr{}
		initInet6(&sa.raw)
		sa.raw.Addr = addr.As16()
		putPort(&sa.raw.Port, ap.Port())
		return sa, nil
	default:
		return nil, fmt.Errorf("address %v: %w", ap, unix.EAFNOSUPPORT)
	}
}

// Inet4Addr is an IPv4 endpoint in its native sockaddr_in form.
type Inet4Addr struct {
	raw unix.RawSockaddrInet4
}

func (a *Inet4Addr) Family() Family { return Inet }

// Addr returns the IP address as a portable value.
func (a *Inet4Addr) Addr() netip.Addr {
	return netip.AddrFrom4(a.raw.Addr)
}

// Port returns the port in host byte order.
func (a *Inet4Addr) Port() uint16 {
	return getPort(&a.raw.Port)
}

// AddrPort returns the address and port as one portable value.
func (a *Inet4Addr) AddrPort() netip.AddrPort {
	return netip.AddrPortFrom(a.Addr(), a.Port())
}

// Equal compares port and raw address bytes.
func (a *Inet4Addr) Equal(b Sockaddr) bool {
	o, ok := b.(*Inet4Addr)
	return ok && a.raw.Port == o.raw.Port && a.raw.Addr == o.raw.Addr
}

func (a *Inet4Addr) Raw() (unsafe.Pointer, uint32) {
	return unsafe.Pointer(&a.raw), unix.SizeofSockaddrInet4
}

func (a *Inet4Addr) String() string {
	return a.AddrPort().String()
}

// Inet6Addr is an IPv6 endpoint in its native sockaddr_in6 form.
type Inet6Addr struct {
	raw unix.RawSockaddrInet6
}

func (a *Inet6Addr) Family() Family { return Inet6 }

// Addr returns the IP address as a portable value. The sixteen address
// bytes are kept verbatim, so the big-endian segment encoding survives the
// round trip on any host.
func (a *Inet6Addr) Addr() netip.Addr {
	return netip.AddrFrom16(a.raw.Addr)
}

// Port returns the port in host byte order.
func (a *Inet6Addr) Port() uint16 {
	return getPort(&a.raw.Port)
}

// AddrPort returns the address and port as one portable value.
func (a *Inet6Addr) AddrPort() netip.AddrPort {
	return netip.AddrPortFrom(a.Addr(), a.Port())
}

// Flowinfo returns the IPv6 flow label field.
func (a *Inet6Addr) Flowinfo() uint32 {
	return a.raw.Flowinfo
}

// ScopeID returns the interface scope of a link-local address.
func (a *Inet6Addr) ScopeID() uint32 {
	return a.raw.Scope_id
}

// Equal compares port, raw address bytes, flow info and scope id.
func (a *Inet6Addr) Equal(b Sockaddr) bool {
	o, ok := b.(*Inet6Addr)
	return ok && a.raw.Port == o.raw.Port && a.raw.Addr == o.raw.Addr &&
		a.raw.Flowinfo == o.raw.Flowinfo && a.raw.Scope_id == o.raw.Scope_id
}

func (a *Inet6Addr) Raw() (unsafe.Pointer, uint32) {
	return unsafe.Pointer(&a.raw), unix.SizeofSockaddrInet6
}

func (a *Inet6Addr) String() string {
	return a.AddrPort().String()
}

// putPort stores port into a raw sockaddr port field, which holds network
// byte order no matter the host's endianness.
func putPort(field *uint16, port uint16) {
	b := (*[2]byte)(unsafe.Pointer(field))
	b[0], b[1] = byte(port>>8), byte(port)
}

func getPort(field *uint16) uint16 {
	b := (*[2]byte)(unsafe.Pointer(field))
	return uint16(b[0])<<8 | uint16(b[1])
}
