package mirror // import "code.cloudfoundry.org/nix-user-chroot/mirror"

import (
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/nix-user-chroot/chroot"
	errorspkg "github.com/pkg/errors"
)

type Kind int

const (
	Other Kind = iota
	Directory
	RegularFile
	Symlink
)

func (k Kind) String() string {
	switch k {
	case Directory:
		return "directory"
	case RegularFile:
		return "regular-file"
	case Symlink:
		return "symlink"
	default:
		return "other"
	}
}

// Entry is one top-level entry of the host root and where it lands in the
// new root.
type Entry struct {
	Name        string
	Kind        Kind
	Source      string
	Destination string
}

func kindOf(mode os.FileMode) Kind {
	switch {
	case mode&os.ModeSymlink != 0:
		return Symlink
	case mode.IsDir():
		return Directory
	case mode.IsRegular():
		return RegularFile
	default:
		return Other
	}
}

type Tree struct {
	mounter Mounter
	policy  chroot.Policy
}

func NewTree(mounter Mounter, policy chroot.Policy) *Tree {
	return &Tree{
		mounter: mounter,
		policy:  policy,
	}
}

// Entries lists the host root's children, in name order, leaving out the
// store mount point.
func (t *Tree) Entries(logger lager.Logger, hostRoot, rootDir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(hostRoot)
	if err != nil {
		return nil, t.policy.Handle(logger, chroot.OpListHostRoot,
			errorspkg.Wrapf(err, "failed to list %s", hostRoot))
	}

	entries := []Entry{}
	for _, dirEntry := range dirEntries {
		if dirEntry.Name() == chroot.StoreMountName {
			logger.Debug("skipping-store-mountpoint", lager.Data{"name": dirEntry.Name()})
			continue
		}

		source := filepath.Join(hostRoot, dirEntry.Name())
		info, err := dirEntry.Info()
		if err != nil {
			if err := t.policy.Handle(logger, chroot.OpInspectEntry,
				errorspkg.Wrapf(err, "cannot get stat of %s", source)); err != nil {
				return nil, err
			}
			continue
		}

		entries = append(entries, Entry{
			Name:        dirEntry.Name(),
			Kind:        kindOf(info.Mode()),
			Source:      source,
			Destination: filepath.Join(rootDir, dirEntry.Name()),
		})
	}

	return entries, nil
}

// Mirror replicates every top-level host entry into rootDir: directories and
// regular files are bind mounted over fresh placeholders, symlinks are
// recreated, everything else is left out.
func (t *Tree) Mirror(logger lager.Logger, hostRoot, rootDir string) error {
	logger = logger.Session("mirroring-tree", lager.Data{"hostRoot": hostRoot, "rootDir": rootDir})
	logger.Debug("starting")
	defer logger.Debug("ending")

	entries, err := t.Entries(logger, hostRoot, rootDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := t.mirrorEntry(logger, entry); err != nil {
			return err
		}
	}

	return nil
}

func (t *Tree) mirrorEntry(logger lager.Logger, entry Entry) error {
	data := lager.Data{"source": entry.Source, "destination": entry.Destination, "kind": entry.Kind.String()}

	switch entry.Kind {
	case Directory:
		if err := os.Mkdir(entry.Destination, 0755); err != nil && !os.IsExist(err) {
			return t.policy.Handle(logger, chroot.OpCreateMountpoint,
				errorspkg.Wrapf(err, "failed to create %s", entry.Destination), data)
		}
		return t.bind(logger, entry, data)

	case RegularFile:
		placeholder, err := os.OpenFile(entry.Destination, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return t.policy.Handle(logger, chroot.OpCreatePlaceholder,
				errorspkg.Wrapf(err, "failed to create %s", entry.Destination), data)
		}
		placeholder.Close()
		return t.bind(logger, entry, data)

	case Symlink:
		target, err := os.Readlink(entry.Source)
		if err != nil {
			return t.policy.Handle(logger, chroot.OpReadSymlink,
				errorspkg.Wrapf(err, "failed to resolve symlink %s", entry.Source), data)
		}
		if err := os.Symlink(target, entry.Destination); err != nil {
			return t.policy.Handle(logger, chroot.OpCreateSymlink,
				errorspkg.Wrapf(err, "failed to create symlink %s -> %s", entry.Destination, target), data)
		}
		logger.Debug("symlink-mirrored", data)
		return nil

	default:
		logger.Debug("ignoring-entry", data)
		return nil
	}
}

func (t *Tree) bind(logger lager.Logger, entry Entry, data lager.Data) error {
	if err := t.mounter.BindMount(entry.Source, entry.Destination); err != nil {
		return t.policy.Handle(logger, chroot.OpBindEntry, err, data)
	}
	logger.Debug("entry-mounted", data)
	return nil
}
