//go:build linux

package thread_test

import (
	"runtime"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/unixkit/unixkit/thread"
)

func TestSelf(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	id := thread.Self()
	qt.Assert(t, qt.IsTrue(id > 0))
	qt.Assert(t, qt.Equals(thread.Self(), id))
}
