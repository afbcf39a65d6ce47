package sandbox // import "code.cloudfoundry.org/nix-user-chroot/sandbox"

import (
	"encoding/json"
	"os"

	"code.cloudfoundry.org/commandrunner"
	"code.cloudfoundry.org/nix-user-chroot/chroot"
	errorspkg "github.com/pkg/errors"
)

// EnterCommand is the name the binary re-executes itself under to become the
// isolated child.
const EnterCommand = "nix-user-chroot-enter"

// logsFd is where the isolated child writes its setup logs.
const logsFd = 3

type Starter struct {
	cmdRunner commandrunner.CommandRunner
	stdin     *os.File
	stdout    *os.File
	stderr    *os.File
}

func NewStarter(cmdRunner commandrunner.CommandRunner) *Starter {
	return &Starter{
		cmdRunner: cmdRunner,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

func EncodeSpec(spec chroot.Spec) (string, error) {
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return "", errorspkg.Wrap(err, "marshaling spec")
	}
	return string(specJSON), nil
}

func DecodeSpec(args []string) (chroot.Spec, error) {
	if len(args) != 1 {
		return chroot.Spec{}, errorspkg.Errorf("expected a single spec argument, got %d", len(args))
	}

	var spec chroot.Spec
	if err := json.Unmarshal([]byte(args[0]), &spec); err != nil {
		return chroot.Spec{}, errorspkg.Wrap(err, "unmarshaling spec")
	}
	return spec, nil
}
