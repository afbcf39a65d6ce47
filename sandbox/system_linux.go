//go:build linux
// +build linux

package sandbox // import "code.cloudfoundry.org/nix-user-chroot/sandbox"

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

type LinuxSystem struct{}

func NewLinuxSystem() LinuxSystem {
	return LinuxSystem{}
}

func (LinuxSystem) Chroot(path string) error {
	return unix.Chroot(path)
}

func (LinuxSystem) Chdir(path string) error {
	return os.Chdir(path)
}

func (LinuxSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (LinuxSystem) ClearAmbientCaps() error {
	return unix.Prctl(unix.PR_CAP_AMBIENT, unix.PR_CAP_AMBIENT_CLEAR_ALL, 0, 0, 0)
}

func (LinuxSystem) Exec(path string, argv []string, env []string) error {
	return unix.Exec(path, argv, env)
}

func (LinuxSystem) Environ() []string {
	return os.Environ()
}
