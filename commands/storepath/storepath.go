package storepath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	errorspkg "github.com/pkg/errors"
)

const (
	// DirEnv names the store explicitly for the multicall form.
	DirEnv = "NIX_USER_CHROOT_DIR"
	// DataDirName is looked up below the XDG data home otherwise.
	DataDirName = "nix-user-chroot"
)

// NotFoundError is returned when no implicit store can be found.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not defined, and XDG_DATA_HOME/%s (%s) does not exist. "+
		"Please specify the chroot dir for multicall functionality", DirEnv, DataDirName, e.Path)
}

// Implicit returns the store used when none is given on the command line.
func Implicit() (string, error) {
	return Resolve(os.Getenv(DirEnv), xdg.DataHome)
}

// Resolve prefers override and falls back to the store under dataHome, which
// must exist.
func Resolve(override, dataHome string) (string, error) {
	if override != "" {
		return override, nil
	}

	storePath := filepath.Join(dataHome, DataDirName)
	if _, err := os.Stat(storePath); err != nil {
		return "", &NotFoundError{Path: storePath}
	}

	return storePath, nil
}

// Canonicalize resolves the store given on the command line to an absolute
// path free of symlinks.
func Canonicalize(storePath string) (string, error) {
	absPath, err := filepath.Abs(storePath)
	if err != nil {
		return "", errorspkg.Wrapf(err, "failed to resolve nix directory %s", storePath)
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", errorspkg.Wrapf(err, "failed to resolve nix directory %s", storePath)
	}

	return resolved, nil
}

func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
