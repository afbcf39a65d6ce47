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
)

var _ = Describe("Store", func() {
	var (
		logger    *lagertest.TestLogger
		rootDir   string
		storePath string
		mounter   *mirrorfakes.FakeMounter
		store     *mirror.Store
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("mirror")

		var err error
		rootDir, err = os.MkdirTemp("", "mirror-store")
		Expect(err).NotTo(HaveOccurred())
		storePath = "/home/u/.local/share/nix-user-chroot"

		mounter = new(mirrorfakes.FakeMounter)
	})

	AfterEach(func() {
		Expect(os.RemoveAll(rootDir)).To(Succeed())
	})

	JustBeforeEach(func() {
		store = mirror.NewStore(mounter, chroot.FailurePolicy)
	})

	It("creates an empty mount point and binds the store onto it", func() {
		Expect(store.Overlay(logger, storePath, rootDir)).To(Succeed())

		mountpoint := filepath.Join(rootDir, "nix")
		Expect(mountpoint).To(BeADirectory())

		Expect(mounter.BindMountCallCount()).To(Equal(1))
		source, target := mounter.BindMountArgsForCall(0)
		Expect(source).To(Equal(storePath))
		Expect(target).To(Equal(mountpoint))
	})

	Context("when the mount point cannot be created", func() {
		BeforeEach(func() {
			Expect(os.Mkdir(filepath.Join(rootDir, "nix"), 0755)).To(Succeed())
		})

		It("aborts without mounting", func() {
			err := store.Overlay(logger, storePath, rootDir)

			Expect(err).To(testhelpers.AbortOperation(chroot.OpCreateStoreMountpoint))
			Expect(mounter.BindMountCallCount()).To(BeZero())
		})
	})

	Context("when the store cannot be mounted", func() {
		BeforeEach(func() {
			mounter.BindMountReturns(errors.New("no such file or directory"))
		})

		It("aborts, unlike generic entries", func() {
			err := store.Overlay(logger, storePath, rootDir)

			Expect(err).To(testhelpers.AbortOperation(chroot.OpBindStore))
			Expect(err).To(MatchError(ContainSubstring("failed to bind mount " + storePath + " to /nix")))
		})
	})
})
