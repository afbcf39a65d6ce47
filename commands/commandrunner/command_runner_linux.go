package commandrunner

import (
	"os/exec"

	cfcommandrunner "code.cloudfoundry.org/commandrunner"
	"code.cloudfoundry.org/commandrunner/linux_command_runner"
)

// ForegroundCommandRunner starts commands in the caller's process group. The
// isolated child must stay in the terminal's foreground job so that ^C, ^Z
// and terminal reads reach it directly; linux_command_runner always moves
// commands into a group of their own.
type ForegroundCommandRunner struct {
	*linux_command_runner.RealCommandRunner
}

// New returns the runner used to start the isolated child.
func New() cfcommandrunner.CommandRunner {
	return &ForegroundCommandRunner{
		RealCommandRunner: linux_command_runner.New(),
	}
}

func (r *ForegroundCommandRunner) Run(cmd *exec.Cmd) error {
	return cmd.Run()
}

func (r *ForegroundCommandRunner) Start(cmd *exec.Cmd) error {
	return cmd.Start()
}
