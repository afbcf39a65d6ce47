package chroot_test

import (
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/nix-user-chroot/chroot"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseLogLevel", func() {
	DescribeTable("known levels",
		func(name string, expected lager.LogLevel) {
			level, err := chroot.ParseLogLevel(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(level).To(Equal(expected))
		},
		Entry("debug", "debug", lager.DEBUG),
		Entry("info", "INFO", lager.INFO),
		Entry("error", "error", lager.ERROR),
		Entry("fatal", "fatal", lager.FATAL),
		Entry("empty defaults to error", "", lager.ERROR),
	)

	It("rejects anything else", func() {
		_, err := chroot.ParseLogLevel("verbose")
		Expect(err).To(MatchError(ContainSubstring("invalid log level `verbose`")))
	})

	It("falls back to error for a spec with an unknown level", func() {
		Expect(chroot.Spec{LogLevel: "loud"}.Level()).To(Equal(lager.ERROR))
		Expect(chroot.Spec{LogLevel: "debug"}.Level()).To(Equal(lager.DEBUG))
	})
})
