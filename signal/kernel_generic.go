//go:build linux && !mips && !mipsle && !mips64 && !mips64le

package signal

// kernelSigsetBytes is the size of the signal mask the kernel reads, passed
// as the sigsetsize argument of the rt_* syscalls. glibc's sigset_t is much
// larger; only the leading words ever reach the kernel.
const kernelSigsetBytes = 8

// Sigaction flag bits from asm-generic/signal.h. golang.org/x/sys does not
// export SA_* values for Linux, so they are spelled out here.
const (
	saNoCldStop = 0x00000001
	saNoCldWait = 0x00000002
	saSiginfo   = 0x00000004
	saOnStack   = 0x08000000
	saRestart   = 0x10000000
	saNoDefer   = 0x40000000
	saResetHand = 0x80000000
)

// flagRestorer marks an action carrying a signal-return trampoline. The bit
// is not exposed as a Flags constant; it only travels through decoded
// actions so they can be reinstalled unchanged.
const flagRestorer Flags = 0x04000000

// kernelSigaction matches the struct the rt_sigaction syscall expects, as
// laid out in asm-generic/signal.h. Note that this is not the glibc
// struct sigaction, whose field order differs.
type kernelSigaction struct {
	handler  uintptr
	flags    uintptr
	restorer uintptr
	mask     [kernelSigsetBytes]byte
}

func (a *Action) kernel() kernelSigaction {
	k := kernelSigaction{
		handler: uintptr(a.handler),
		flags:   uintptr(a.flags),
		mask:    a.mask.kernelMask(),
	}
	// The restorer address is only meaningful under its flag.
	if a.flags&flagRestorer != 0 {
		k.restorer = a.restorer
	}
	return k
}

func actionFromKernel(k *kernelSigaction) Action {
	return Action{
		handler:  Handler(k.handler),
		flags:    Flags(k.flags),
		restorer: k.restorer,
		mask:     setFromKernelMask(k.mask[:]),
	}
}
