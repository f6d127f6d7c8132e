package sockaddr

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/unixkit/unixkit/internal/unix"
)

func TestUnixAddrRoundTrip(t *testing.T) {
	for _, path := range []string{"", "/tmp/sock", "/run/some/dir/x.sock"} {
		sa, err := NewUnixAddr(path)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(sa.Path(), path))
		qt.Assert(t, qt.Equals(sa.String(), path))
		qt.Assert(t, qt.Equals(sa.Family(), Unix))
	}
}

func TestUnixAddrLength(t *testing.T) {
	var sa UnixAddr
	capacity := len(sa.raw.Path)

	// The longest encodable path leaves exactly one byte for the
	// terminator.
	longest := strings.Repeat("a", capacity-1)
	got, err := NewUnixAddr(longest)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got.Path(), longest))

	_, err = NewUnixAddr(strings.Repeat("a", capacity))
	qt.Assert(t, qt.ErrorIs(err, unix.ENAMETOOLONG))
	_, err = NewUnixAddr(strings.Repeat("a", capacity+13))
	qt.Assert(t, qt.ErrorIs(err, unix.ENAMETOOLONG))
}

func TestUnixAddrEqualIgnoresTrailingBytes(t *testing.T) {
	a, err := NewUnixAddr("/tmp/sock")
	qt.Assert(t, qt.IsNil(err))
	b, err := NewUnixAddr("/tmp/sock")
	qt.Assert(t, qt.IsNil(err))

	// Scribble past the terminator: the decoded path is what counts.
	b.raw.Path[len("/tmp/sock")+2] = 'x'
	qt.Assert(t, qt.IsTrue(a.Equal(b)))

	c, err := NewUnixAddr("/tmp/other")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsFalse(a.Equal(c)))
	qt.Assert(t, qt.IsFalse(a.Equal(mustAddr(t, "1.2.3.4:80"))))
}

func TestUnixAddrMapKey(t *testing.T) {
	a, err := NewUnixAddr("/tmp/sock")
	qt.Assert(t, qt.IsNil(err))
	b, err := NewUnixAddr("/tmp/sock")
	qt.Assert(t, qt.IsNil(err))

	m := make(map[UnixAddr]int)
	m[*a]++
	m[*b]++
	qt.Assert(t, qt.HasLen(m, 1))
}

func TestUnixAddrRaw(t *testing.T) {
	a, err := NewUnixAddr("/tmp/sock")
	qt.Assert(t, qt.IsNil(err))

	ptr, n := a.Raw()
	qt.Assert(t, qt.IsTrue(ptr != nil))
	qt.Assert(t, qt.Equals(n, uint32(unix.SizeofSockaddrUnix)))
}
