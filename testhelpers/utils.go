package testhelpers

import (
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// UserNamespacesUsable reports whether the current user may create a user
// namespace with a private mount namespace.
func UserNamespacesUsable() bool {
	cmd := exec.Command("true")
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Cloneflags: syscall.CLONE_NEWUSER | syscall.CLONE_NEWNS,
	}
	return cmd.Run() == nil
}

func SkipWithoutUserNamespaces(usable bool) {
	if !usable {
		Skip("unprivileged user namespaces are not available")
	}
}

// TempDir creates a temporary directory and returns its symlink-free path.
func TempDir(prefix string) string {
	dir, err := os.MkdirTemp("", prefix)
	Expect(err).NotTo(HaveOccurred())

	dir, err = filepath.EvalSymlinks(dir)
	Expect(err).NotTo(HaveOccurred())
	return dir
}
