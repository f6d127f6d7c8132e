package sockaddr

import (
	"fmt"
	"unsafe"

	"github.com/unixkit/unixkit/internal/unix"
)

// UnixAddr is a filesystem path endpoint in its native sockaddr_un form.
type UnixAddr struct {
	raw unix.RawSockaddrUnix
}

// NewUnixAddr encodes path. The path and its NUL terminator must fit the
// fixed sun_path buffer; longer paths fail with ENAMETOOLONG and no partial
// value is produced. The terminator itself is provided by the zero-filled
// buffer, no extra byte is written.
func NewUnixAddr(path string) (*UnixAddr, error) {
	sa := &UnixAddr{}
	initUnix(&sa.raw)
	if len(path) >= len(sa.raw.Path) {
		return nil, fmt.Errorf("unix path %q: %w", path, unix.ENAMETOOLONG)
	}
	for i := 0; i < len(path); i++ {
		sa.raw.Path[i] = int8(path[i])
	}
	return sa, nil
}

func (a *UnixAddr) Family() Family { return Unix }

// Path decodes the NUL terminated sun_path buffer.
func (a *UnixAddr) Path() string {
	b := make([]byte, 0, len(a.raw.Path))
	for _, c := range a.raw.Path {
		if c == 0 {
			break
		}
		b = append(b, byte(c))
	}
	return string(b)
}

// Equal compares decoded paths, so addresses differing only in bytes after
// the terminator are still equal.
func (a *UnixAddr) Equal(b Sockaddr) bool {
	o, ok := b.(*UnixAddr)
	return ok && a.Path() == o.Path()
}

func (a *UnixAddr) Raw() (unsafe.Pointer, uint32) {
	return unsafe.Pointer(&a.raw), unix.SizeofSockaddrUnix
}

func (a *UnixAddr) String() string {
	return a.Path()
}
