package rootdir // import "code.cloudfoundry.org/nix-user-chroot/rootdir"

import (
	"io"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/v3"
	"github.com/hashicorp/go-multierror"
	"github.com/moby/sys/mountinfo"
	errorspkg "github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Remove deletes an ephemeral root. It refuses to touch a tree that still has
// mount points below it, never follows symlinks and never leaves the
// filesystem the root lives on. A missing root is not an error.
func (a *Allocator) Remove(logger lager.Logger, path string) error {
	logger = logger.Session("removing-root", lager.Data{"path": path})
	logger.Debug("starting")
	defer logger.Debug("ending")

	path, err := filepath.Abs(path)
	if err != nil {
		return errorspkg.Wrapf(err, "resolving `%s`", path)
	}
	if path == "/" {
		return errorspkg.New("refusing to remove `/`")
	}

	mounts, err := mountinfo.GetMounts(mountinfo.PrefixFilter(path))
	if err != nil {
		return errorspkg.Wrap(err, "reading mount table")
	}
	if len(mounts) > 0 {
		return errorspkg.Errorf("cannot remove tempdir `%s`: `%s` is still mounted", path, mounts[0].Mountpoint)
	}

	parent, err := os.Open(filepath.Dir(path))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errorspkg.Wrapf(err, "cannot remove tempdir `%s`", path)
	}
	defer parent.Close()

	var parentStat unix.Stat_t
	if err := unix.Fstat(int(parent.Fd()), &parentStat); err != nil {
		return errorspkg.Wrapf(err, "cannot remove tempdir `%s`", path)
	}

	if err := removeAt(parent, filepath.Base(path), uint64(parentStat.Dev)); err != nil {
		return errorspkg.Wrapf(err, "cannot remove tempdir `%s`", path)
	}

	return nil
}

func removeAt(parent *os.File, name string, dev uint64) error {
	parentFd := int(parent.Fd())
	err := unix.Unlinkat(parentFd, name, 0)
	if err == nil || err == unix.ENOENT {
		return nil
	}
	if err != unix.EISDIR && err != unix.EPERM {
		return err
	}

	fd, err := unix.Openat(parentFd, name, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_NOFOLLOW|unix.O_CLOEXEC, 0)
	if err != nil {
		return err
	}
	dir := os.NewFile(uintptr(fd), name)

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		dir.Close()
		return err
	}
	if uint64(stat.Dev) != dev {
		dir.Close()
		return errorspkg.Errorf("`%s` is on another filesystem", name)
	}

	childErr := removeEntries(dir, dev)
	dir.Close()

	err = unix.Unlinkat(parentFd, name, unix.AT_REMOVEDIR)
	if err == nil || err == unix.ENOENT {
		return nil
	}
	if childErr != nil {
		return childErr
	}
	return err
}

func removeEntries(dir *os.File, dev uint64) error {
	var result *multierror.Error
	for {
		names, readErr := dir.Readdirnames(1024)
		for _, name := range names {
			if err := removeAt(dir, name, dev); err != nil {
				result = multierror.Append(result, errorspkg.Wrapf(err, "removing `%s`", name))
			}
		}
		if readErr == io.EOF || (readErr == nil && len(names) == 0) {
			return result.ErrorOrNil()
		}
		if readErr != nil {
			return multierror.Append(result, readErr)
		}
	}
}
