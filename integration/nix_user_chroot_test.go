package integration_test

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"code.cloudfoundry.org/nix-user-chroot/testhelpers"
	"github.com/creack/pty"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("nix-user-chroot", func() {
	var (
		tmpDir    string
		storePath string
		workDir   string
		env       []string
	)

	start := func(argv0 string, args ...string) *gexec.Session {
		cmd := exec.Command(argv0, args...)
		cmd.Env = env
		cmd.Dir = workDir

		session, err := gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		return session
	}

	ephemeralRoots := func() []string {
		roots, err := filepath.Glob(filepath.Join(tmpDir, "nix-chroot.*"))
		Expect(err).NotTo(HaveOccurred())
		return roots
	}

	BeforeEach(func() {
		tmpDir = testhelpers.TempDir("nix-user-chroot-tmp")
		storePath = testhelpers.TempDir("nix-user-chroot-store")
		Expect(os.MkdirAll(filepath.Join(storePath, "etc", "nix"), 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(storePath, "marker"), []byte("from the store"), 0644)).To(Succeed())

		workDir = testhelpers.TempDir("nix-user-chroot-work")

		env = []string{
			"PATH=/usr/local/bin:/usr/bin:/bin",
			"TMPDIR=" + tmpDir,
			"NIX_CONF_DIR=/somewhere/else",
		}
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
		Expect(os.RemoveAll(storePath)).To(Succeed())
		Expect(os.RemoveAll(workDir)).To(Succeed())
	})

	Describe("usage", func() {
		It("fails with a usage message when no command is given", func() {
			session := start(NixUserChrootBin, storePath)

			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say("Usage: .* <nixpath> <command>"))
			Expect(ephemeralRoots()).To(BeEmpty())
		})

		It("fails with a usage message without any arguments", func() {
			session := start(NixUserChrootBin)

			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say("Usage:"))
		})

		It("fails when the store path cannot be resolved", func() {
			session := start(NixUserChrootBin, filepath.Join(storePath, "missing"), "true")

			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say("failed to resolve nix directory"))
			Expect(ephemeralRoots()).To(BeEmpty())
		})

		It("rejects an unknown log level", func() {
			session := start(NixUserChrootBin, "--log-level", "chatty", storePath, "true")

			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say("invalid log level `chatty`"))
		})
	})

	Describe("multicall", func() {
		var binDir string

		BeforeEach(func() {
			binDir = testhelpers.TempDir("nix-user-chroot-bin")
			Expect(os.Symlink(NixUserChrootBin, filepath.Join(binDir, "nix-env"))).To(Succeed())
		})

		AfterEach(func() {
			Expect(os.RemoveAll(binDir)).To(Succeed())
		})

		Context("when there is no implicit store", func() {
			BeforeEach(func() {
				env = append(env, "XDG_DATA_HOME="+tmpDir, "NIX_USER_CHROOT_DIR=")
			})

			It("exits with status 2", func() {
				session := start(filepath.Join(binDir, "nix-env"), "--version")

				Eventually(session).Should(gexec.Exit(2))
				Expect(session.Err).To(gbytes.Say("NIX_USER_CHROOT_DIR not defined"))
				Expect(ephemeralRoots()).To(BeEmpty())
			})
		})

		Context("when NIX_USER_CHROOT_DIR names the store", func() {
			BeforeEach(func() {
				testhelpers.SkipWithoutUserNamespaces(UserNamespacesUsable)
				env = append(env, "NIX_USER_CHROOT_DIR="+storePath)
			})

			It("runs the tool named by argv[0] with the arguments untouched", func() {
				session := start(filepath.Join(binDir, "nix-env"), "--log-level", "debug")

				Eventually(session, 10*time.Second).Should(gexec.Exit(1))
				Expect(session.Err).To(gbytes.Say("failed to execute nix-env"))
				Expect(ephemeralRoots()).To(BeEmpty())
			})
		})
	})

	Describe("running a command", func() {
		BeforeEach(func() {
			testhelpers.SkipWithoutUserNamespaces(UserNamespacesUsable)
		})

		It("sets NIX_CONF_DIR for the command", func() {
			session := start(NixUserChrootBin, storePath, "printenv", "NIX_CONF_DIR")

			Eventually(session, 10*time.Second).Should(gexec.Exit(0))
			Expect(string(session.Out.Contents())).To(Equal("/nix/etc/nix\n"))
		})

		It("lets --nix-conf-dir choose NIX_CONF_DIR", func() {
			session := start(NixUserChrootBin, "--nix-conf-dir", "/nix/etc/other", storePath, "printenv", "NIX_CONF_DIR")

			Eventually(session, 10*time.Second).Should(gexec.Exit(0))
			Expect(string(session.Out.Contents())).To(Equal("/nix/etc/other\n"))
		})

		It("shows the store at /nix", func() {
			session := start(NixUserChrootBin, storePath, "cat", "/nix/marker")

			Eventually(session, 10*time.Second).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("from the store"))
		})

		It("keeps the rest of the host visible", func() {
			session := start(NixUserChrootBin, storePath, "cat", filepath.Join(storePath, "marker"))

			Eventually(session, 10*time.Second).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("from the store"))
		})

		It("runs in the caller's working directory", func() {
			session := start(NixUserChrootBin, storePath, "pwd")

			Eventually(session, 10*time.Second).Should(gexec.Exit(0))
			Expect(string(session.Out.Contents())).To(Equal(workDir + "\n"))
		})

		It("runs as the caller", func() {
			session := start(NixUserChrootBin, storePath, "id", "-u")

			Eventually(session, 10*time.Second).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("^%d\n", os.Getuid()))
		})

		It("exits with the command's status", func() {
			session := start(NixUserChrootBin, storePath, "sh", "-c", "exit 7")

			Eventually(session, 10*time.Second).Should(gexec.Exit(7))
		})

		DescribeTable("dies by the signal that killed the command",
			func(signal string, status int) {
				for i := 0; i < 3; i++ {
					session := start(NixUserChrootBin, storePath, "sh", "-c", "kill -"+signal+" $$")

					Eventually(session, 10*time.Second).Should(gexec.Exit(status))
					Expect(session.Err.Contents()).NotTo(ContainSubstring("goroutine"))
					Expect(ephemeralRoots()).To(BeEmpty())
				}
			},
			Entry("SIGTERM", "TERM", 128+15),
			Entry("SIGINT", "INT", 128+2),
			Entry("SIGQUIT", "QUIT", 128+3),
			Entry("SIGABRT", "ABRT", 128+6),
		)

		It("fails when the command does not exist", func() {
			session := start(NixUserChrootBin, storePath, "no-such-command")

			Eventually(session, 10*time.Second).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say("failed to execute no-such-command"))
			Expect(strings.Count(string(session.Err.Contents()), "failed to execute")).To(Equal(1))
		})

		It("removes the ephemeral root afterwards", func() {
			session := start(NixUserChrootBin, storePath, "true")

			Eventually(session, 10*time.Second).Should(gexec.Exit(0))
			Expect(ephemeralRoots()).To(BeEmpty())
		})

		It("relays the child's setup logs at debug level", func() {
			session := start(NixUserChrootBin, "--log-level", "debug", storePath, "true")

			Eventually(session, 10*time.Second).Should(gexec.Exit(0))
			Expect(session.Err).To(gbytes.Say("mirroring-tree"))
		})

		It("stays quiet by default", func() {
			session := start(NixUserChrootBin, storePath, "true")

			Eventually(session, 10*time.Second).Should(gexec.Exit(0))
			Expect(session.Err.Contents()).To(BeEmpty())
		})
	})

	Describe("job control", func() {
		var (
			terminal *os.File
			output   *gbytes.Buffer
			exited   chan struct{}
		)

		// inShell runs nix-user-chroot as the foreground job of a job control
		// shell on a fresh terminal. The shell reports the job's status and
		// resumes the job with fg if it was stopped.
		inShell := func(args ...string) {
			script := `set -m
"$@"
status=$?
echo "STATUS $status"
if [ $status -eq 147 ] || [ $status -eq 148 ]; then
  fg >/dev/null
  echo "RESUMED $?"
fi`
			cmd := exec.Command("bash", append([]string{"-c", script, "bash", NixUserChrootBin, storePath}, args...)...)
			cmd.Env = env
			cmd.Dir = workDir

			var err error
			terminal, err = pty.Start(cmd)
			Expect(err).NotTo(HaveOccurred())

			output = gbytes.NewBuffer()
			go func() {
				_, _ = io.Copy(io.MultiWriter(output, GinkgoWriter), terminal)
			}()

			exited = make(chan struct{})
			go func() {
				_ = cmd.Wait()
				close(exited)
			}()
		}

		BeforeEach(func() {
			testhelpers.SkipWithoutUserNamespaces(UserNamespacesUsable)
			if _, err := exec.LookPath("bash"); err != nil {
				Skip("bash is needed to drive job control")
			}
		})

		AfterEach(func() {
			terminal.Close()
			Eventually(exited, 10*time.Second).Should(BeClosed())
		})

		It("delivers ^C to the command", func() {
			inShell("sh", "-c", "echo READY; exec sleep 30")
			Eventually(output, 10*time.Second).Should(gbytes.Say("READY"))

			_, err := terminal.Write([]byte{0x03})
			Expect(err).NotTo(HaveOccurred())

			Eventually(output, 5*time.Second).Should(gbytes.Say(fmt.Sprintf("STATUS %d", 128+2)))
			Expect(ephemeralRoots()).To(BeEmpty())
		})

		It("stops the whole job on ^Z and lets the command resume on fg", func() {
			inShell("sh", "-c", `echo READY; read line; echo "GOT $line"`)
			Eventually(output, 10*time.Second).Should(gbytes.Say("READY"))

			_, err := terminal.Write([]byte{0x1a})
			Expect(err).NotTo(HaveOccurred())
			// The job stops by ^Z itself, or by the SIGSTOP nix-user-chroot
			// sends itself once it sees the command stop.
			Eventually(output, 5*time.Second).Should(gbytes.Say("STATUS 14[78]"))

			_, err = terminal.Write([]byte("hello\n"))
			Expect(err).NotTo(HaveOccurred())

			Eventually(output, 5*time.Second).Should(gbytes.Say("GOT hello"))
			Eventually(output, 5*time.Second).Should(gbytes.Say("RESUMED 0"))
			Expect(ephemeralRoots()).To(BeEmpty())
		})
	})
})
