package mirror // import "code.cloudfoundry.org/nix-user-chroot/mirror"

import (
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/nix-user-chroot/chroot"
	errorspkg "github.com/pkg/errors"
)

// Store puts the package store at the reserved mount point of the new root.
type Store struct {
	mounter Mounter
	policy  chroot.Policy
}

func NewStore(mounter Mounter, policy chroot.Policy) *Store {
	return &Store{
		mounter: mounter,
		policy:  policy,
	}
}

func (s *Store) Overlay(logger lager.Logger, storePath, rootDir string) error {
	mountpoint := filepath.Join(rootDir, chroot.StoreMountName)
	logger = logger.Session("overlaying-store", lager.Data{"storePath": storePath, "mountpoint": mountpoint})
	logger.Debug("starting")
	defer logger.Debug("ending")

	if err := os.Mkdir(mountpoint, 0755); err != nil {
		return s.policy.Handle(logger, chroot.OpCreateStoreMountpoint,
			errorspkg.Wrapf(err, "failed to create %s", mountpoint))
	}

	if err := s.mounter.BindMount(storePath, mountpoint); err != nil {
		return s.policy.Handle(logger, chroot.OpBindStore,
			errorspkg.Wrapf(err, "failed to bind mount %s to /%s", storePath, chroot.StoreMountName))
	}

	return nil
}
