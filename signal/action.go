//go:build linux

package signal

// Handler is the value installed as a signal's disposition. Default and
// Ignore are the only portable values; anything else is interpreted by the
// kernel as the address of a handler routine, which must follow the signal
// handling ABI of the platform.
type Handler uintptr

const (
	// Default restores the signal's default behavior (SIG_DFL).
	Default Handler = 0
	// Ignore discards the signal on delivery (SIG_IGN).
	Ignore Handler = 1
)

// Flags modify the behavior of an installed action. The numeric values are
// the kernel's SA_* bits for the target architecture, defined next to the
// sigaction struct layout they travel in.
type Flags uint32

const (
	// NoCldStop suppresses SIGCHLD when children stop.
	NoCldStop Flags = saNoCldStop
	// NoCldWait prevents children from turning into zombies.
	NoCldWait Flags = saNoCldWait
	// NoDefer leaves the signal unblocked while its handler runs.
	NoDefer Flags = saNoDefer
	// OnStack delivers the signal on the alternate signal stack.
	OnStack Flags = saOnStack
	// ResetHand restores the default disposition after one delivery.
	ResetHand Flags = saResetHand
	// Restart makes interrupted slow syscalls restart instead of failing
	// with EINTR.
	Restart Flags = saRestart
	// Siginfo requests the extended three-argument handler form. NewInfo
	// sets it automatically.
	Siginfo Flags = saSiginfo
)

// Action pairs a handler with its flags and the mask of signals blocked
// while the handler runs. Construct one with New or NewInfo right before
// installing it. The constructors determine every field of the kernel
// record, reserved bytes included, so no partially initialized struct ever
// crosses the syscall boundary.
type Action struct {
	handler Handler
	flags   Flags
	mask    Set

	// Trampoline address on ABIs that carry one. Never set for new
	// actions; preserved so a previously installed action can be
	// reinstalled unchanged.
	restorer uintptr
}

// New builds an action whose handler receives only the signal number.
func New(h Handler, flags Flags, mask Set) Action {
	return Action{handler: h, flags: flags, mask: mask}
}

// NewInfo builds an action whose handler receives extended signal
// information. The Siginfo flag is ORed in unconditionally: installing an
// info-style handler without it is a kernel ABI violation, so the mismatch
// cannot be expressed through this API.
func NewInfo(h Handler, flags Flags, mask Set) Action {
	return Action{handler: h, flags: flags | Siginfo, mask: mask}
}

// Handler returns the installed disposition.
func (a *Action) Handler() Handler {
	return a.handler
}

// Flags returns the behavioral flags, including any set by the kernel on a
// previously installed action.
func (a *Action) Flags() Flags {
	return a.flags
}

// Mask returns the signals blocked during handler execution.
func (a *Action) Mask() Set {
	return a.mask
}
