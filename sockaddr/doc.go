// Package sockaddr encodes IPv4, IPv6 and unix-domain socket addresses in
// the exact binary layout the kernel consumes, while exposing portable
// net/netip values on the way in and out.
//
// Addresses are immutable values: construct them with FromAddrPort or
// NewUnixAddr and compare them with Equal. Multi-byte fields are stored in
// network byte order internally and converted at the accessor boundary.
package sockaddr
