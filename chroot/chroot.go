package chroot // import "code.cloudfoundry.org/nix-user-chroot/chroot"

import (
	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/sys/unix"
)

const (
	// StoreMountName is the top-level entry of the new root that is backed by
	// the supplied package store.
	StoreMountName = "nix"

	ConfDirEnv     = "NIX_CONF_DIR"
	DefaultConfDir = "/nix/etc/nix"

	// FallbackExitStatus is used whenever the child's own status is unknown.
	FallbackExitStatus = 1
)

//go:generate counterfeiter . RootAllocator
//go:generate counterfeiter . ChildStarter
//go:generate counterfeiter . Supervisor

// Spec is everything the isolated child needs. It is resolved once by the
// caller and handed to the child by value.
type Spec struct {
	StorePath string   `json:"store_path"`
	Command   string   `json:"command"`
	Args      []string `json:"args"`
	RootDir   string   `json:"root_dir"`
	HostRoot  string   `json:"host_root"`
	WorkDir   string   `json:"work_dir"`
	UID       int      `json:"uid"`
	GID       int      `json:"gid"`
	ConfDir   string   `json:"conf_dir"`
	LogLevel  string   `json:"log_level"`
}

// Result is the outcome of supervising the child.
type Result struct {
	ExitStatus int
	// Signal is set when the child was terminated by a signal.
	Signal unix.Signal
	// Anomaly is set when supervision ended on an unexpected wait event.
	Anomaly error
}

func (r Result) Signaled() bool {
	return r.Signal != 0
}

type Child struct {
	Pid int
	// LogsDone is closed once the child's setup log stream has been drained.
	LogsDone <-chan struct{}
}

type RootAllocator interface {
	Allocate(logger lager.Logger) (string, error)
	Remove(logger lager.Logger, path string) error
}

type ChildStarter interface {
	Start(logger lager.Logger, spec Spec) (Child, error)
}

type Supervisor interface {
	Supervise(logger lager.Logger, pid int) Result
}
