//go:build !linux
// +build !linux

package supervisor

import (
	"os/signal"

	errorspkg "github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

func DieFromSignal(sig unix.Signal) error {
	signal.Reset(sig)
	if err := unix.Kill(unix.Getpid(), sig); err != nil {
		return errorspkg.Wrapf(err, "sending %s to self", sig)
	}
	return nil
}
