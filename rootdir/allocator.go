package rootdir // import "code.cloudfoundry.org/nix-user-chroot/rootdir"

import (
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/v3"
	errorspkg "github.com/pkg/errors"
	"github.com/ventu-io/go-shortid"
)

const (
	Prefix = "nix-chroot."

	maxAttempts = 16
)

type Allocator struct {
	baseDir string
}

func NewAllocator(baseDir string) *Allocator {
	return &Allocator{baseDir: baseDir}
}

// Allocate creates a fresh, empty, owner-only directory below the base
// directory. The name is the fixed prefix followed by a random suffix.
func (a *Allocator) Allocate(logger lager.Logger) (string, error) {
	logger = logger.Session("allocating-root", lager.Data{"baseDir": a.baseDir})
	logger.Debug("starting")
	defer logger.Debug("ending")

	if err := a.ensureBaseDir(); err != nil {
		return "", err
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		suffix, err := shortid.Generate()
		if err != nil {
			return "", errorspkg.Wrap(err, "generating root directory suffix")
		}

		path := filepath.Join(a.baseDir, Prefix+suffix)
		err = os.Mkdir(path, 0700)
		if err == nil {
			return path, nil
		}
		if !os.IsExist(err) {
			return "", errorspkg.Wrapf(err, "creating root directory `%s`", path)
		}
		logger.Debug("name-collision", lager.Data{"path": path, "attempt": attempt + 1})
	}

	return "", errorspkg.Errorf("could not find a free root directory name in `%s`", a.baseDir)
}

func (a *Allocator) ensureBaseDir() error {
	info, err := os.Stat(a.baseDir)
	if err == nil {
		if !info.IsDir() {
			return errorspkg.Errorf("temporary directory `%s` is not a directory", a.baseDir)
		}
		return nil
	}

	if !os.IsNotExist(err) {
		return errorspkg.Wrapf(err, "checking temporary directory `%s`", a.baseDir)
	}

	if err := os.MkdirAll(a.baseDir, 0700); err != nil {
		return errorspkg.Wrapf(err, "making temporary directory `%s`", a.baseDir)
	}

	return nil
}
