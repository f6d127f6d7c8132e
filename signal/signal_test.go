//go:build linux

package signal_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/go-quicktest/qt"

	"github.com/unixkit/unixkit/internal/unix"
	"github.com/unixkit/unixkit/signal"
	"github.com/unixkit/unixkit/thread"
)

func TestSignalRoundTrip(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	set := signal.Empty()
	qt.Assert(t, qt.IsNil(set.Add(signal.SIGUSR1)))

	prevMask, err := signal.SetMask(signal.Block, &set)
	qt.Assert(t, qt.IsNil(err))
	defer func() {
		_, err := signal.SetMask(signal.Replace, &prevMask)
		qt.Assert(t, qt.IsNil(err))
	}()

	act := signal.NewInfo(signal.Ignore, 0, signal.Empty())
	prevAct, err := signal.Install(signal.SIGUSR1, &act)
	qt.Assert(t, qt.IsNil(err))
	defer func() {
		_, err := signal.Install(signal.SIGUSR1, &prevAct)
		qt.Assert(t, qt.IsNil(err))
	}()

	qt.Assert(t, qt.IsNil(signal.KillThread(thread.Self(), signal.SIGUSR1)))

	info, err := signal.WaitTimeout(&set, time.Second)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(info.Signo, signal.SIGUSR1))

	// Nothing is pending anymore, so a short wait must time out.
	_, err = signal.WaitTimeout(&set, 10*time.Millisecond)
	qt.Assert(t, qt.ErrorIs(err, unix.EAGAIN))
}

func TestInstallQueryAndUncatchable(t *testing.T) {
	// Passing a nil action queries without modifying.
	prev, err := signal.Install(signal.SIGUSR2, nil)
	qt.Assert(t, qt.IsNil(err))

	again, err := signal.Install(signal.SIGUSR2, nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(again.Handler(), prev.Handler()))
	qt.Assert(t, qt.Equals(again.Flags(), prev.Flags()))

	act := signal.New(signal.Ignore, 0, signal.Empty())
	_, err = signal.Install(signal.SIGKILL, &act)
	qt.Assert(t, qt.ErrorIs(err, unix.EINVAL))
}

func TestSetMaskReturnsPrevious(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	set := signal.Empty()
	qt.Assert(t, qt.IsNil(set.Add(signal.SIGWINCH)))

	prev, err := signal.SetMask(signal.Block, &set)
	qt.Assert(t, qt.IsNil(err))
	defer func() {
		_, err := signal.SetMask(signal.Replace, &prev)
		qt.Assert(t, qt.IsNil(err))
	}()

	// A nil set queries the mask in effect.
	cur, err := signal.SetMask(signal.Block, nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(cur.Contains(signal.SIGWINCH)))

	_, err = signal.SetMask(signal.Unblock, &set)
	qt.Assert(t, qt.IsNil(err))
	cur, err = signal.SetMask(signal.Block, nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsFalse(cur.Contains(signal.SIGWINCH)))
}

func TestPending(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	set := signal.Empty()
	qt.Assert(t, qt.IsNil(set.Add(signal.SIGUSR2)))

	prevMask, err := signal.SetMask(signal.Block, &set)
	qt.Assert(t, qt.IsNil(err))
	defer func() {
		_, err := signal.SetMask(signal.Replace, &prevMask)
		qt.Assert(t, qt.IsNil(err))
	}()

	qt.Assert(t, qt.IsNil(signal.KillThread(thread.Self(), signal.SIGUSR2)))

	pending, err := signal.Pending()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(pending.Contains(signal.SIGUSR2)))

	// Drain the signal before unblocking it again.
	info, err := signal.WaitTimeout(&set, time.Second)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(info.Signo, signal.SIGUSR2))
}

func TestWaitTimeoutPolls(t *testing.T) {
	set := signal.Empty()
	qt.Assert(t, qt.IsNil(set.Add(signal.SIGWINCH)))

	start := time.Now()
	_, err := signal.WaitTimeout(&set, 0)
	qt.Assert(t, qt.ErrorIs(err, unix.EAGAIN))
	qt.Assert(t, qt.IsTrue(time.Since(start) < time.Second))
}

func TestWaitNilSet(t *testing.T) {
	_, err := signal.Wait(nil)
	qt.Assert(t, qt.ErrorIs(err, unix.EINVAL))

	_, err = signal.WaitTimeout(nil, time.Millisecond)
	qt.Assert(t, qt.ErrorIs(err, unix.EINVAL))
}

func TestKill(t *testing.T) {
	// Signal 0 performs permission and existence checks without delivering
	// anything.
	qt.Assert(t, qt.IsNil(signal.Kill(unix.Getpid(), 0)))

	err := signal.Kill(-2147483647, signal.SIGTERM)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestKillThreadBadTid(t *testing.T) {
	err := signal.KillThread(thread.ID(-1), signal.SIGWINCH)
	qt.Assert(t, qt.ErrorIs(err, unix.EINVAL))
}
