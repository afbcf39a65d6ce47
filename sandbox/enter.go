package sandbox // import "code.cloudfoundry.org/nix-user-chroot/sandbox"

import (
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/nix-user-chroot/chroot"
	errorspkg "github.com/pkg/errors"
)

//go:generate counterfeiter . TreeMirror
//go:generate counterfeiter . StoreOverlay
//go:generate counterfeiter . IDMapper
//go:generate counterfeiter . System

type TreeMirror interface {
	Mirror(logger lager.Logger, hostRoot, rootDir string) error
}

type StoreOverlay interface {
	Overlay(logger lager.Logger, storePath, rootDir string) error
}

type IDMapper interface {
	Map(logger lager.Logger, uid, gid int) error
}

// System is the part of the kernel the isolated child talks to directly.
type System interface {
	Chroot(path string) error
	Chdir(path string) error
	LookPath(file string) (string, error)
	ClearAmbientCaps() error
	Exec(path string, argv []string, env []string) error
	Environ() []string
}

type Enterer struct {
	tree   TreeMirror
	store  StoreOverlay
	mapper IDMapper
	system System
	policy chroot.Policy
}

func NewEnterer(tree TreeMirror, store StoreOverlay, mapper IDMapper, system System, policy chroot.Policy) *Enterer {
	return &Enterer{
		tree:   tree,
		store:  store,
		mapper: mapper,
		system: system,
		policy: policy,
	}
}

// Enter builds the new root, moves into it and replaces the current process
// with the target command. It only returns on failure.
func (e *Enterer) Enter(logger lager.Logger, spec chroot.Spec) error {
	logger = logger.Session("entering", lager.Data{"rootDir": spec.RootDir, "command": spec.Command})
	logger.Debug("starting")
	defer logger.Debug("ending")

	if err := e.tree.Mirror(logger, spec.HostRoot, spec.RootDir); err != nil {
		return err
	}

	if err := e.store.Overlay(logger, spec.StorePath, spec.RootDir); err != nil {
		return err
	}

	if err := e.system.Chroot(spec.RootDir); err != nil {
		if err := e.policy.Handle(logger, chroot.OpChroot,
			errorspkg.Wrapf(err, "failed to chroot to %s", spec.RootDir)); err != nil {
			return err
		}
	}

	if err := e.system.Chdir("/"); err != nil {
		if err := e.policy.Handle(logger, chroot.OpChdirRoot,
			errorspkg.Wrap(err, "failed to chdir to new root directory")); err != nil {
			return err
		}
	}

	if err := e.mapper.Map(logger, spec.UID, spec.GID); err != nil {
		return err
	}

	if err := e.system.Chdir(spec.WorkDir); err != nil {
		if err := e.policy.Handle(logger, chroot.OpRestoreWorkDir,
			errorspkg.Wrapf(err, "cannot restore working directory %s", spec.WorkDir)); err != nil {
			return err
		}
	}

	return e.exec(logger, spec)
}

func (e *Enterer) exec(logger lager.Logger, spec chroot.Spec) error {
	path, err := e.system.LookPath(spec.Command)
	if err != nil {
		return e.policy.Handle(logger, chroot.OpExec, errorspkg.Wrapf(err, "failed to execute %s", spec.Command))
	}

	if err := e.system.ClearAmbientCaps(); err != nil {
		return e.policy.Handle(logger, chroot.OpExec, errorspkg.Wrap(err, "clearing ambient capabilities"))
	}

	argv := append([]string{spec.Command}, spec.Args...)
	env := Environ(e.system.Environ(), spec.ConfDir)
	logger.Debug("executing", lager.Data{"path": path, "argv": argv})

	if err := e.system.Exec(path, argv, env); err != nil {
		return e.policy.Handle(logger, chroot.OpExec, errorspkg.Wrapf(err, "failed to execute %s", spec.Command))
	}

	return nil
}

// Environ returns env with NIX_CONF_DIR set to confDir, replacing any
// inherited value.
func Environ(env []string, confDir string) []string {
	prefix := chroot.ConfDirEnv + "="

	result := make([]string, 0, len(env)+1)
	for _, entry := range env {
		if strings.HasPrefix(entry, prefix) {
			continue
		}
		result = append(result, entry)
	}

	return append(result, prefix+confDir)
}
