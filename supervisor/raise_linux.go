//go:build linux
// +build linux

package supervisor

import (
	"os/signal"
	"runtime"
	"unsafe"

	errorspkg "github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// kernelSigaction is struct sigaction as rt_sigaction(2) reads it. The zero
// value is SIG_DFL with an empty mask.
type kernelSigaction struct {
	handler  uintptr
	flags    uint64
	restorer uintptr
	mask     uint64
}

// DieFromSignal restores the default disposition of sig and sends it to the
// calling thread, which acts on it before the syscall returns. The Go runtime
// keeps its own handler for some signals even after signal.Reset, so the
// disposition is installed directly. DieFromSignal only returns when the
// default action of sig does not terminate the process.
func DieFromSignal(sig unix.Signal) error {
	signal.Reset(sig)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// SIGKILL and SIGSTOP cannot be caught, so their action is always the
	// default one.
	if sig != unix.SIGKILL && sig != unix.SIGSTOP {
		var action kernelSigaction
		_, _, errno := unix.RawSyscall6(
			unix.SYS_RT_SIGACTION,
			uintptr(sig),
			uintptr(unsafe.Pointer(&action)),
			0,
			unsafe.Sizeof(action.mask),
			0, 0,
		)
		if errno != 0 {
			return errorspkg.Wrapf(errno, "restoring the default action of %s", sig)
		}
	}

	if err := unix.Tgkill(unix.Getpid(), unix.Gettid(), sig); err != nil {
		return errorspkg.Wrapf(err, "sending %s to self", sig)
	}

	return nil
}
