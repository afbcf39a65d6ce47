package chroot // import "code.cloudfoundry.org/nix-user-chroot/chroot"

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
)

type Operation string

const (
	OpAllocateRoot          Operation = "allocate-root"
	OpRemoveRoot            Operation = "remove-root"
	OpListHostRoot          Operation = "list-host-root"
	OpInspectEntry          Operation = "inspect-entry"
	OpCreateMountpoint      Operation = "create-mountpoint"
	OpCreatePlaceholder     Operation = "create-placeholder"
	OpBindEntry             Operation = "bind-mount-entry"
	OpReadSymlink           Operation = "read-symlink"
	OpCreateSymlink         Operation = "create-symlink"
	OpCreateStoreMountpoint Operation = "create-store-mountpoint"
	OpBindStore             Operation = "bind-mount-store"
	OpChroot                Operation = "chroot"
	OpChdirRoot             Operation = "chdir-root"
	OpDenySetgroups         Operation = "deny-setgroups"
	OpWriteUIDMap           Operation = "write-uid-map"
	OpWriteGIDMap           Operation = "write-gid-map"
	OpRestoreWorkDir        Operation = "restore-workdir"
	OpExec                  Operation = "exec"
)

type Action int

const (
	// Abort stops the responsible process.
	Abort Action = iota
	// Warn logs the failure and carries on.
	Warn
	// Ignore carries on, only leaving a debug line behind.
	Ignore
)

func (a Action) String() string {
	switch a {
	case Abort:
		return "abort"
	case Warn:
		return "warn"
	case Ignore:
		return "ignore"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

type Policy map[Operation]Action

// FailurePolicy decides, per operation, whether a failure ends the setup.
// Operations missing from the table abort.
var FailurePolicy = Policy{
	OpAllocateRoot:          Abort,
	OpRemoveRoot:            Abort,
	OpListHostRoot:          Abort,
	OpInspectEntry:          Abort,
	OpCreateMountpoint:      Abort,
	OpCreatePlaceholder:     Abort,
	OpBindEntry:             Warn,
	OpReadSymlink:           Abort,
	OpCreateSymlink:         Abort,
	OpCreateStoreMountpoint: Abort,
	OpBindStore:             Abort,
	OpChroot:                Abort,
	OpChdirRoot:             Abort,
	OpDenySetgroups:         Ignore,
	OpWriteUIDMap:           Abort,
	OpWriteGIDMap:           Abort,
	OpRestoreWorkDir:        Abort,
	OpExec:                  Abort,
}

func (p Policy) ActionFor(op Operation) Action {
	if action, ok := p[op]; ok {
		return action
	}
	return Abort
}

// Handle applies the policy to a failed operation. It returns nil when the
// caller should continue and an *OperationError when it must stop. Aborting
// failures are only logged at debug level: whoever ends the run reports them.
func (p Policy) Handle(logger lager.Logger, op Operation, err error, data ...lager.Data) error {
	if err == nil {
		return nil
	}

	switch p.ActionFor(op) {
	case Ignore:
		logger.Debug(string(op)+"-ignored", append(data, lager.Data{"error": err.Error()})...)
		return nil
	case Warn:
		logger.Error(string(op)+"-failed", err, append(data, lager.Data{"policy": Warn.String()})...)
		return nil
	default:
		logger.Debug(string(op)+"-failed", append(data, lager.Data{"error": err.Error(), "policy": Abort.String()})...)
		return &OperationError{Op: op, Err: err}
	}
}

type OperationError struct {
	Op  Operation
	Err error
}

func (e *OperationError) Error() string {
	return e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
