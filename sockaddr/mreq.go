package sockaddr

import (
	"fmt"

	"github.com/unixkit/unixkit/internal/unix"
)

// IPMreq is the native IPv4 multicast membership request. It aliases the
// x/sys type, so it can be handed straight to setsockopt wrappers.
type IPMreq = unix.IPMreq

// NewIPMreq builds a membership request for joining group on iface. Only
// IPv4 addresses fit the record; anything else fails with EINVAL. A nil
// iface selects the wildcard interface (INADDR_ANY).
//
// Both fields are copied in the network byte order form the addresses
// already hold; no conversion happens here.
func NewIPMreq(group, iface Sockaddr) (IPMreq, error) {
	g, ok := group.(*Inet4Addr)
	if !ok {
		return IPMreq{}, fmt.Errorf("multicast group %v: %w", group, unix.EINVAL)
	}

	var mreq IPMreq
	mreq.Multiaddr = g.raw.Addr
	if iface != nil {
		i, ok := iface.(*Inet4Addr)
		if !ok {
			return IPMreq{}, fmt.Errorf("multicast interface %v: %w", iface, unix.EINVAL)
		}
		mreq.Interface = i.raw.Addr
	}
	return mreq, nil
}
