//go:build !linux
// +build !linux

package sandbox // import "code.cloudfoundry.org/nix-user-chroot/sandbox"

import (
	"errors"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/nix-user-chroot/chroot"
)

func (s *Starter) Start(logger lager.Logger, spec chroot.Spec) (chroot.Child, error) {
	return chroot.Child{}, errors.New("Not implemented on non-linux platforms")
}
