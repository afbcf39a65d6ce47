package commands

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/nix-user-chroot/chroot"
	"code.cloudfoundry.org/nix-user-chroot/commands/commandrunner"
	"code.cloudfoundry.org/nix-user-chroot/commands/config"
	"code.cloudfoundry.org/nix-user-chroot/commands/storepath"
	"code.cloudfoundry.org/nix-user-chroot/rootdir"
	"code.cloudfoundry.org/nix-user-chroot/sandbox"
	"code.cloudfoundry.org/nix-user-chroot/supervisor"
	errorspkg "github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sys/unix"
)

// ImplicitStoreExitStatus is used when the multicall form cannot find a store.
const ImplicitStoreExitStatus = 2

type Invocation struct {
	StorePath string
	Command   string
	Args      []string
}

// ParseArgs reads the explicit form: <store-path> <command> [args...].
func ParseArgs(progName string, args []string) (Invocation, error) {
	if len(args) < 2 {
		return Invocation{}, cli.Exit(fmt.Sprintf("Usage: %s <nixpath> <command>\n", progName), chroot.FallbackExitStatus)
	}

	return Invocation{
		StorePath: args[0],
		Command:   args[1],
		Args:      args[2:],
	}, nil
}

// RunAction is the action of the explicit form.
func RunAction(ctx *cli.Context) error {
	logger := ctx.App.Metadata["logger"].(lager.Logger)
	cfg := ctx.App.Metadata["config"].(config.Config)

	invocation, err := ParseArgs(os.Args[0], ctx.Args().Slice())
	if err != nil {
		return err
	}

	storePath, err := storepath.Canonicalize(invocation.StorePath)
	if err != nil {
		logger.Error("resolving-store-path", err)
		return cli.Exit(err.Error(), chroot.FallbackExitStatus)
	}
	invocation.StorePath = storePath

	return exitWith(Launch(logger, cfg, invocation))
}

// Multicall runs command with args against the implicit store.
func Multicall(logger lager.Logger, cfg config.Config, command string, args []string) error {
	storePath, err := storepath.Implicit()
	if err != nil {
		logger.Debug("resolving-implicit-store-path-failed", lager.Data{"error": err.Error()})
		if storepath.IsNotFound(err) {
			return cli.Exit("Error: "+err.Error(), ImplicitStoreExitStatus)
		}
		return cli.Exit("Error: "+err.Error(), chroot.FallbackExitStatus)
	}

	return exitWith(Launch(logger, cfg, Invocation{
		StorePath: storePath,
		Command:   command,
		Args:      args,
	}))
}

func exitWith(status int) error {
	if status == 0 {
		return nil
	}
	return cli.Exit("", status)
}

// NewSpec resolves everything the isolated child needs from the calling
// process.
func NewSpec(cfg config.Config, invocation Invocation) (chroot.Spec, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return chroot.Spec{}, errorspkg.Wrap(err, "cannot get current working directory")
	}

	return chroot.Spec{
		StorePath: invocation.StorePath,
		Command:   invocation.Command,
		Args:      invocation.Args,
		HostRoot:  "/",
		WorkDir:   workDir,
		UID:       os.Getuid(),
		GID:       os.Getgid(),
		ConfDir:   cfg.NixConfDir,
		LogLevel:  cfg.LogLevel,
	}, nil
}

// Launch runs the invocation to completion and returns the status to exit
// with. When the child was killed by a signal the same signal is raised on
// the calling process first.
func Launch(logger lager.Logger, cfg config.Config, invocation Invocation) int {
	spec, err := NewSpec(cfg, invocation)
	if err != nil {
		logger.Error("building-spec", err)
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		return chroot.FallbackExitStatus
	}

	sup := supervisor.New(logger, supervisor.Wait4Waiter{}, supervisor.KillSignaller{})
	defer sup.Stop()

	runner := chroot.NewRunner(
		rootdir.NewAllocator(cfg.TmpDir),
		sandbox.NewStarter(commandrunner.New()),
		sup,
	)

	result, err := runner.Run(logger, spec)
	return ExitStatus(logger, result, err, sup)
}

//go:generate counterfeiter . Raiser

type Raiser interface {
	Raise(logger lager.Logger, sig unix.Signal)
}

// ExitStatus turns the outcome of a run into the status to exit with. A child
// killed by a signal takes the caller down with the same signal; should the
// caller survive it, the status is the shell's 128+signal.
func ExitStatus(logger lager.Logger, result chroot.Result, err error, raiser Raiser) int {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		return chroot.FallbackExitStatus
	}

	if result.Anomaly != nil {
		fmt.Fprintf(os.Stderr, "%s\n", result.Anomaly.Error())
		return chroot.FallbackExitStatus
	}

	if result.Signaled() {
		raiser.Raise(logger, result.Signal)
		return 128 + int(result.Signal)
	}

	return result.ExitStatus
}
