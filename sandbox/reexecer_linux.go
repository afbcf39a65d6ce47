//go:build linux
// +build linux

package sandbox // import "code.cloudfoundry.org/nix-user-chroot/sandbox"

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"syscall"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/nix-user-chroot/chroot"
	"code.cloudfoundry.org/nix-user-chroot/idmap"
	"code.cloudfoundry.org/nix-user-chroot/mirror"
	"code.cloudfoundry.org/nix-user-chroot/relogger"
	"github.com/containers/storage/pkg/reexec"
	"github.com/opencontainers/runc/libcontainer/userns"
	errorspkg "github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// ChildCapabilities survive the re-exec into the not yet mapped user
// namespace.
var ChildCapabilities = []uintptr{
	unix.CAP_SYS_ADMIN,
	unix.CAP_SYS_CHROOT,
	unix.CAP_SETUID,
	unix.CAP_SETGID,
}

// RunningInUserNS reports whether the caller already lives in a user
// namespace other than the initial one.
var RunningInUserNS = userns.RunningInUserNS

func init() {
	reexec.Register(EnterCommand, enter)
}

func enter() {
	// Ambient capabilities are per thread and must be cleared on the thread
	// that execs.
	runtime.LockOSThread()

	logsFile := os.NewFile(logsFd, fmt.Sprintf("/ctrl/%s-logs", EnterCommand))
	unix.CloseOnExec(logsFd)

	spec, err := DecodeSpec(os.Args[1:])
	if err != nil {
		fail(lager.NewLogger(EnterCommand), err)
	}

	logger := lager.NewLogger(EnterCommand)
	logger.RegisterSink(lager.NewWriterSink(logsFile, spec.Level()))

	mounter := mirror.RecursiveBindMounter{}
	enterer := NewEnterer(
		mirror.NewTree(mounter, chroot.FailurePolicy),
		mirror.NewStore(mounter, chroot.FailurePolicy),
		idmap.NewMapper(idmap.SelfProcDir, chroot.FailurePolicy),
		NewLinuxSystem(),
		chroot.FailurePolicy,
	)

	err = enterer.Enter(logger, spec)
	if err == nil {
		err = errorspkg.Errorf("%s was not executed", spec.Command)
	}
	fail(logger, err)
}

func fail(logger lager.Logger, err error) {
	logger.Debug("entering-failed", lager.Data{"error": err.Error()})
	fmt.Fprintf(os.Stderr, "nix-user-chroot: %s\n", err.Error())
	os.Exit(chroot.FallbackExitStatus)
}

// Command builds the re-exec of the current binary that becomes the isolated
// child. logs is handed to it as fd 3.
func (s *Starter) Command(spec chroot.Spec, logs *os.File) (*exec.Cmd, error) {
	specJSON, err := EncodeSpec(spec)
	if err != nil {
		return nil, err
	}

	cmd := reexec.Command(EnterCommand, specJSON)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Cloneflags:  syscall.CLONE_NEWNS | syscall.CLONE_NEWUSER,
		AmbientCaps: ChildCapabilities,
	}
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr
	cmd.ExtraFiles = []*os.File{logs}

	return cmd, nil
}

func (s *Starter) Start(logger lager.Logger, spec chroot.Spec) (chroot.Child, error) {
	logger = logger.Session("starting-child", lager.Data{"rootDir": spec.RootDir})
	logger.Debug("starting")
	defer logger.Debug("ending")

	logsR, logsW, err := os.Pipe()
	if err != nil {
		return chroot.Child{}, errorspkg.Wrap(err, "creating child log pipe")
	}

	cmd, err := s.Command(spec, logsW)
	if err != nil {
		logsR.Close()
		logsW.Close()
		return chroot.Child{}, err
	}

	logger.Debug("starting-reexec-command", lager.Data{"path": cmd.Path, "args": cmd.Args})
	if err := s.cmdRunner.Start(cmd); err != nil {
		logsR.Close()
		logsW.Close()
		return chroot.Child{}, errorspkg.Wrap(namespaceError(err), "starting reexec command")
	}
	logsW.Close()

	if cmd.Process == nil {
		logsR.Close()
		return chroot.Child{}, errorspkg.New("reexec command has no process")
	}

	logsDone := relogger.Drain(logger.Session("child"), logsR)
	logger.Debug("reexec-command-is-started", lager.Data{"pid": cmd.Process.Pid})

	return chroot.Child{
		Pid:      cmd.Process.Pid,
		LogsDone: logsDone,
	}, nil
}

// namespaceError explains the errors clone(2) reports when a user namespace
// cannot be created.
func namespaceError(err error) error {
	if !errors.Is(err, unix.EPERM) && !errors.Is(err, unix.EINVAL) &&
		!errors.Is(err, unix.ENOSPC) && !errors.Is(err, unix.EUSERS) {
		return err
	}

	if RunningInUserNS() {
		return errorspkg.Wrap(err, "cannot create a user namespace nested in the current one (check user.max_user_namespaces and the outer namespace's id mappings)")
	}
	return errorspkg.Wrap(err, "cannot create a user namespace (unprivileged user namespaces may be disabled on this host)")
}
