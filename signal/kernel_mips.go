//go:build linux && (mips || mipsle || mips64 || mips64le)

package signal

// MIPS defines 128 signals, so the kernel mask is twice the size of the
// generic one.
const kernelSigsetBytes = 16

// Sigaction flag bits from arch/mips/include/uapi/asm/signal.h. NoCldWait
// and Siginfo sit at different positions than on every other architecture.
const (
	saNoCldStop = 0x00000001
	saSiginfo   = 0x00000008
	saNoCldWait = 0x00010000
	saOnStack   = 0x08000000
	saRestart   = 0x10000000
	saNoDefer   = 0x40000000
	saResetHand = 0x80000000
)

// kernelSigaction matches arch/mips/include/uapi/asm/signal.h: the flags
// come first, there is no restorer field, and the compiler inserts the same
// padding before the handler pointer as the C struct has on 64-bit.
type kernelSigaction struct {
	flags   uint32
	handler uintptr
	mask    [kernelSigsetBytes]byte
}

func (a *Action) kernel() kernelSigaction {
	return kernelSigaction{
		flags:   uint32(a.flags),
		handler: uintptr(a.handler),
		mask:    a.mask.kernelMask(),
	}
}

func actionFromKernel(k *kernelSigaction) Action {
	return Action{
		handler: Handler(k.handler),
		flags:   Flags(k.flags),
		mask:    setFromKernelMask(k.mask[:]),
	}
}
