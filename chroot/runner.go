package chroot // import "code.cloudfoundry.org/nix-user-chroot/chroot"

import (
	"code.cloudfoundry.org/lager/v3"
	errorspkg "github.com/pkg/errors"
)

type Runner struct {
	allocator  RootAllocator
	starter    ChildStarter
	supervisor Supervisor
}

func NewRunner(allocator RootAllocator, starter ChildStarter, supervisor Supervisor) *Runner {
	return &Runner{
		allocator:  allocator,
		starter:    starter,
		supervisor: supervisor,
	}
}

// Run allocates the ephemeral root, starts the isolated child, supervises it
// and removes the root again. The returned error is only set when the run
// could not be started or the root could not be removed; the child's own
// outcome is always reported through the Result.
func (r *Runner) Run(logger lager.Logger, spec Spec) (Result, error) {
	logger = logger.Session("run", lager.Data{"storePath": spec.StorePath, "command": spec.Command})
	logger.Debug("starting")
	defer logger.Debug("ending")

	rootDir, err := r.allocator.Allocate(logger)
	if err != nil {
		return Result{ExitStatus: FallbackExitStatus}, FailurePolicy.Handle(logger, OpAllocateRoot, err)
	}
	spec.RootDir = rootDir
	logger.Debug("root-allocated", lager.Data{"rootDir": rootDir})

	child, err := r.starter.Start(logger, spec)
	if err != nil {
		startErr := errorspkg.Wrap(err, "starting isolated child")
		if removeErr := r.allocator.Remove(logger, rootDir); removeErr != nil {
			logger.Error("removing-root-after-failed-start", removeErr, lager.Data{"rootDir": rootDir})
		}
		return Result{ExitStatus: FallbackExitStatus}, startErr
	}
	logger.Debug("child-started", lager.Data{"pid": child.Pid})

	result := r.supervisor.Supervise(logger, child.Pid)
	if result.Anomaly == nil && child.LogsDone != nil {
		<-child.LogsDone
	}

	if err := r.allocator.Remove(logger, rootDir); err != nil {
		return result, FailurePolicy.Handle(logger, OpRemoveRoot, err, lager.Data{"rootDir": rootDir})
	}
	logger.Debug("root-removed", lager.Data{"rootDir": rootDir})

	return result, nil
}
