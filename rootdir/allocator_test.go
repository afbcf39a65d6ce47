package rootdir_test

import (
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/nix-user-chroot/rootdir"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Allocator", func() {
	var (
		logger    *lagertest.TestLogger
		tmpDir    string
		baseDir   string
		allocator *rootdir.Allocator
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("rootdir")

		var err error
		tmpDir, err = os.MkdirTemp("", "rootdir-allocator")
		Expect(err).NotTo(HaveOccurred())
		baseDir = tmpDir
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	JustBeforeEach(func() {
		allocator = rootdir.NewAllocator(baseDir)
	})

	Describe("Allocate", func() {
		It("creates an empty owner-only directory with the fixed prefix", func() {
			path, err := allocator.Allocate(logger)
			Expect(err).NotTo(HaveOccurred())

			Expect(filepath.Dir(path)).To(Equal(baseDir))
			Expect(strings.HasPrefix(filepath.Base(path), rootdir.Prefix)).To(BeTrue())
			Expect(len(filepath.Base(path))).To(BeNumerically(">", len(rootdir.Prefix)))

			info, err := os.Stat(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.IsDir()).To(BeTrue())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0700)))

			entries, err := os.ReadDir(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(BeEmpty())
		})

		It("never hands out the same directory twice", func() {
			seen := map[string]bool{}
			for i := 0; i < 50; i++ {
				path, err := allocator.Allocate(logger)
				Expect(err).NotTo(HaveOccurred())
				Expect(seen).NotTo(HaveKey(path))
				seen[path] = true
			}
		})

		Context("when the base directory does not exist yet", func() {
			BeforeEach(func() {
				baseDir = filepath.Join(baseDir, "not", "yet")
			})

			It("creates it", func() {
				path, err := allocator.Allocate(logger)
				Expect(err).NotTo(HaveOccurred())
				Expect(baseDir).To(BeADirectory())
				Expect(path).To(BeADirectory())
			})
		})

		Context("when the base directory is a file", func() {
			BeforeEach(func() {
				baseDir = filepath.Join(baseDir, "file")
				Expect(os.WriteFile(baseDir, []byte{}, 0600)).To(Succeed())
			})

			It("returns an error", func() {
				_, err := allocator.Allocate(logger)
				Expect(err).To(MatchError(ContainSubstring("is not a directory")))
			})
		})
	})
})
