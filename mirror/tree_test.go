package mirror_test

import (
	"errors"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/nix-user-chroot/chroot"
	"code.cloudfoundry.org/nix-user-chroot/mirror"
	"code.cloudfoundry.org/nix-user-chroot/mirror/mirrorfakes"
	"code.cloudfoundry.org/nix-user-chroot/testhelpers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/sys/unix"
)

var _ = Describe("Tree", func() {
	var (
		logger   *lagertest.TestLogger
		tmpDir   string
		hostRoot string
		rootDir  string
		mounter  *mirrorfakes.FakeMounter
		tree     *mirror.Tree
	)

	mounted := func() map[string]string {
		binds := map[string]string{}
		for i := 0; i < mounter.BindMountCallCount(); i++ {
			source, target := mounter.BindMountArgsForCall(i)
			binds[source] = target
		}
		return binds
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("mirror")

		var err error
		tmpDir, err = os.MkdirTemp("", "mirror-tree")
		Expect(err).NotTo(HaveOccurred())

		hostRoot = filepath.Join(tmpDir, "host")
		rootDir = filepath.Join(tmpDir, "root")
		Expect(os.Mkdir(hostRoot, 0755)).To(Succeed())
		Expect(os.Mkdir(rootDir, 0700)).To(Succeed())

		Expect(os.Mkdir(filepath.Join(hostRoot, "usr"), 0755)).To(Succeed())
		Expect(os.Mkdir(filepath.Join(hostRoot, "etc"), 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(hostRoot, "swapfile"), []byte("swap"), 0600)).To(Succeed())
		Expect(os.Symlink("usr/bin", filepath.Join(hostRoot, "bin"))).To(Succeed())
		Expect(os.Symlink("/does/not/exist", filepath.Join(hostRoot, "dangling"))).To(Succeed())
		Expect(unix.Mkfifo(filepath.Join(hostRoot, "fifo"), 0644)).To(Succeed())
		Expect(os.Mkdir(filepath.Join(hostRoot, "nix"), 0755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(hostRoot, "nix", "marker"), []byte{}, 0644)).To(Succeed())

		mounter = new(mirrorfakes.FakeMounter)
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	JustBeforeEach(func() {
		tree = mirror.NewTree(mounter, chroot.FailurePolicy)
	})

	Describe("Entries", func() {
		It("classifies every top-level entry except the store mount point", func() {
			entries, err := tree.Entries(logger, hostRoot, rootDir)
			Expect(err).NotTo(HaveOccurred())

			kinds := map[string]mirror.Kind{}
			for _, entry := range entries {
				kinds[entry.Name] = entry.Kind
				Expect(entry.Source).To(Equal(filepath.Join(hostRoot, entry.Name)))
				Expect(entry.Destination).To(Equal(filepath.Join(rootDir, entry.Name)))
			}

			Expect(kinds).To(Equal(map[string]mirror.Kind{
				"usr":      mirror.Directory,
				"etc":      mirror.Directory,
				"swapfile": mirror.RegularFile,
				"bin":      mirror.Symlink,
				"dangling": mirror.Symlink,
				"fifo":     mirror.Other,
			}))
		})

		It("returns entries in name order", func() {
			entries, err := tree.Entries(logger, hostRoot, rootDir)
			Expect(err).NotTo(HaveOccurred())

			names := []string{}
			for _, entry := range entries {
				names = append(names, entry.Name)
			}
			Expect(names).To(Equal([]string{"bin", "dangling", "etc", "fifo", "swapfile", "usr"}))
		})
	})

	Describe("Mirror", func() {
		It("creates a matching entry for every mirrored host entry", func() {
			Expect(tree.Mirror(logger, hostRoot, rootDir)).To(Succeed())

			Expect(filepath.Join(rootDir, "usr")).To(BeADirectory())
			Expect(filepath.Join(rootDir, "etc")).To(BeADirectory())
			Expect(filepath.Join(rootDir, "swapfile")).To(BeARegularFile())

			target, err := os.Readlink(filepath.Join(rootDir, "bin"))
			Expect(err).NotTo(HaveOccurred())
			Expect(target).To(Equal("usr/bin"))

			target, err = os.Readlink(filepath.Join(rootDir, "dangling"))
			Expect(err).NotTo(HaveOccurred())
			Expect(target).To(Equal("/does/not/exist"))
		})

		It("creates empty file placeholders", func() {
			Expect(tree.Mirror(logger, hostRoot, rootDir)).To(Succeed())

			contents, err := os.ReadFile(filepath.Join(rootDir, "swapfile"))
			Expect(err).NotTo(HaveOccurred())
			Expect(contents).To(BeEmpty())
		})

		It("bind mounts directories and regular files only", func() {
			Expect(tree.Mirror(logger, hostRoot, rootDir)).To(Succeed())

			Expect(mounted()).To(Equal(map[string]string{
				filepath.Join(hostRoot, "etc"):      filepath.Join(rootDir, "etc"),
				filepath.Join(hostRoot, "swapfile"): filepath.Join(rootDir, "swapfile"),
				filepath.Join(hostRoot, "usr"):      filepath.Join(rootDir, "usr"),
			}))
		})

		It("never mirrors the store mount point", func() {
			Expect(tree.Mirror(logger, hostRoot, rootDir)).To(Succeed())

			_, err := os.Lstat(filepath.Join(rootDir, "nix"))
			Expect(os.IsNotExist(err)).To(BeTrue())
			Expect(mounted()).NotTo(HaveKey(filepath.Join(hostRoot, "nix")))
		})

		It("ignores special files", func() {
			Expect(tree.Mirror(logger, hostRoot, rootDir)).To(Succeed())

			_, err := os.Lstat(filepath.Join(rootDir, "fifo"))
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		Context("when a directory placeholder already exists", func() {
			BeforeEach(func() {
				Expect(os.Mkdir(filepath.Join(rootDir, "usr"), 0755)).To(Succeed())
			})

			It("carries on and mounts over it", func() {
				Expect(tree.Mirror(logger, hostRoot, rootDir)).To(Succeed())
				Expect(mounted()).To(HaveKeyWithValue(filepath.Join(hostRoot, "usr"), filepath.Join(rootDir, "usr")))
			})
		})

		Context("when a bind mount fails", func() {
			BeforeEach(func() {
				mounter.BindMountStub = func(source, target string) error {
					if filepath.Base(source) == "etc" {
						return errors.New("failed to bind mount etc: operation not permitted")
					}
					return nil
				}
			})

			It("warns and continues with the next entry", func() {
				Expect(tree.Mirror(logger, hostRoot, rootDir)).To(Succeed())

				Expect(mounter.BindMountCallCount()).To(Equal(3))
				Expect(filepath.Join(rootDir, "usr")).To(BeADirectory())
				Expect(logger.LogMessages()).To(ContainElement(ContainSubstring("bind-mount-entry-failed")))
			})
		})

		Context("when the new root cannot be written", func() {
			BeforeEach(func() {
				rootDir = filepath.Join(tmpDir, "missing")
			})

			It("aborts", func() {
				err := tree.Mirror(logger, hostRoot, rootDir)

				Expect(err).To(testhelpers.AbortOperation(chroot.OpCreateSymlink))
				Expect(err).To(MatchError(ContainSubstring(filepath.Join(rootDir, "bin"))))
				Expect(mounter.BindMountCallCount()).To(BeZero())
			})
		})

		Context("when a symlink destination is taken", func() {
			BeforeEach(func() {
				Expect(os.WriteFile(filepath.Join(rootDir, "bin"), []byte{}, 0644)).To(Succeed())
			})

			It("aborts", func() {
				err := tree.Mirror(logger, hostRoot, rootDir)
				Expect(err).To(MatchError(ContainSubstring("failed to create symlink")))
			})
		})

		Context("when the host root cannot be listed", func() {
			BeforeEach(func() {
				hostRoot = filepath.Join(tmpDir, "no-host")
			})

			It("aborts", func() {
				err := tree.Mirror(logger, hostRoot, rootDir)

				Expect(err).To(testhelpers.AbortOperation(chroot.OpListHostRoot))
			})
		})
	})
})
