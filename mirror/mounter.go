package mirror // import "code.cloudfoundry.org/nix-user-chroot/mirror"

import (
	errorspkg "github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

//go:generate counterfeiter . Mounter
type Mounter interface {
	BindMount(source, target string) error
}

// RecursiveBindMounter makes source visible at target, submounts included.
// Only usable from inside a mount namespace the caller owns.
type RecursiveBindMounter struct{}

func (RecursiveBindMounter) BindMount(source, target string) error {
	if err := unix.Mount(source, target, "none", unix.MS_BIND|unix.MS_REC, ""); err != nil {
		return errorspkg.Wrapf(err, "failed to bind mount %s to %s", source, target)
	}
	return nil
}
