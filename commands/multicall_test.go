package commands_test

import (
	"code.cloudfoundry.org/nix-user-chroot/commands"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MulticallCommand", func() {
	It("knows exactly twelve tools", func() {
		Expect(commands.MulticallNames).To(HaveLen(12))
	})

	DescribeTable("recognised names",
		func(argv0, expected string) {
			command, ok := commands.MulticallCommand(argv0)
			Expect(ok).To(BeTrue())
			Expect(command).To(Equal(expected))
		},
		Entry("bare name", "nix-env", "nix-env"),
		Entry("nix itself", "nix", "nix"),
		Entry("through a path", "/home/u/bin/nix-shell", "nix-shell"),
		Entry("relative path", "./nix-store", "nix-store"),
	)

	DescribeTable("other names",
		func(argv0 string) {
			_, ok := commands.MulticallCommand(argv0)
			Expect(ok).To(BeFalse())
		},
		Entry("the binary itself", "/usr/local/bin/nix-user-chroot"),
		Entry("a prefix of a tool", "nix-st"),
		Entry("a tool with a suffix", "nix-env.sh"),
		Entry("a tool name as a directory", "/nix-env/bash"),
	)
})
