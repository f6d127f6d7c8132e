//go:build linux

package signal

import (
	"fmt"
	"unsafe"

	"github.com/unixkit/unixkit/internal/unix"
)

// Set is a fixed-size signal bitmask wrapping the platform sigset_t. The
// zero value is the empty set. Sets are plain values: copy them freely, no
// locking is ever needed.
type Set struct {
	set unix.Sigset_t
}

const (
	// The number of bits in one sigset_t word. The word size follows the
	// platform's unsigned long, so this is 32 or 64 depending on the target.
	wordBits = int(unsafe.Sizeof(unix.Sigset_t{}.Val[0])) * 8

	// maxSignal is the highest signal number the kernel-facing part of the
	// mask can represent. sigset_t has room for more bits, but the rt_*
	// syscalls never read past the first kernelSigsetBytes of it.
	maxSignal = Signal(kernelSigsetBytes * 8)
)

// Empty returns a set with no signals in it.
func Empty() Set {
	return Set{}
}

// All returns a set containing every signal.
func All() Set {
	var s Set
	for i := range s.set.Val {
		s.set.Val[i] = ^s.set.Val[i]
	}
	return s
}

// Add puts sig into the set. Signal numbers outside the platform's valid
// range fail with EINVAL; there is no second validation pass anywhere else.
func (s *Set) Add(sig Signal) error {
	word, bit, err := sigsetIndex(sig)
	if err != nil {
		return err
	}
	s.set.Val[word] |= 1 << bit
	return nil
}

// Remove takes sig out of the set. Range errors are reported as for Add.
func (s *Set) Remove(sig Signal) error {
	word, bit, err := sigsetIndex(sig)
	if err != nil {
		return err
	}
	s.set.Val[word] &^= 1 << bit
	return nil
}

// Contains reports whether sig is in the set. Out-of-range signal numbers
// are never contained.
func (s Set) Contains(sig Signal) bool {
	word, bit, err := sigsetIndex(sig)
	if err != nil {
		return false
	}
	return s.set.Val[word]&(1<<bit) != 0
}

// sigsetIndex locates the word and bit for sig. For amd64 this is the same
// operation as runtime.sigaddset:
//
//	set[(signal-1)/32] |= 1 << ((uint32(signal) - 1) & 31)
//
// generalized over the word size of the target.
func sigsetIndex(sig Signal) (word, bit int, err error) {
	if sig < 1 || sig > maxSignal {
		return 0, 0, fmt.Errorf("signal %d: %w", sig, unix.EINVAL)
	}
	n := int(sig - 1)
	return n / wordBits, n % wordBits, nil
}

// kernelMask returns the leading bytes of the set, sized to what the kernel
// reads as a signal mask.
func (s *Set) kernelMask() [kernelSigsetBytes]byte {
	var k [kernelSigsetBytes]byte
	copy(k[:], s.bytes())
	return k
}

// setFromKernelMask widens a kernel mask back into a Set, zeroing the bits
// the kernel never saw.
func setFromKernelMask(b []byte) Set {
	s := Empty()
	copy(s.bytes(), b)
	return s
}

// bytes views the underlying sigset_t as raw bytes. The layout matches the
// kernel's: an array of unsigned long words, lowest signals first.
func (s *Set) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&s.set)), int(unsafe.Sizeof(s.set)))
}
