//go:build linux

package signal

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestNewInfoForcesSiginfoFlag(t *testing.T) {
	act := NewInfo(Ignore, Restart, Empty())
	qt.Assert(t, qt.Equals(act.Flags(), Restart|Siginfo))

	// The plain constructor leaves flags untouched.
	act = New(Ignore, Restart, Empty())
	qt.Assert(t, qt.Equals(act.Flags(), Restart))
}

func TestActionKernelRoundTrip(t *testing.T) {
	mask := Empty()
	qt.Assert(t, qt.IsNil(mask.Add(SIGTERM)))

	act := NewInfo(Ignore, Restart|OnStack, mask)
	k := act.kernel()
	got := actionFromKernel(&k)

	qt.Assert(t, qt.Equals(got.Handler(), act.Handler()))
	qt.Assert(t, qt.Equals(got.Flags(), act.Flags()))
	qt.Assert(t, qt.IsTrue(got.Mask().Contains(SIGTERM)))
	qt.Assert(t, qt.IsFalse(got.Mask().Contains(SIGUSR1)))
}
