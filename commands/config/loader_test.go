package config_test

import (
	"os"
	"path"

	"code.cloudfoundry.org/nix-user-chroot/commands/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	yaml "gopkg.in/yaml.v2"
)

var _ = Describe("Load", func() {
	var (
		configDir      string
		configFilePath string
	)

	BeforeEach(func() {
		var err error
		configDir, err = os.MkdirTemp("", "")
		Expect(err).NotTo(HaveOccurred())

		cfg := config.Config{
			LogLevel: "debug",
			TmpDir:   "/var/tmp",
		}

		configYaml, err := yaml.Marshal(cfg)
		Expect(err).NotTo(HaveOccurred())
		configFilePath = path.Join(configDir, "config.yaml")

		Expect(os.WriteFile(configFilePath, configYaml, 0755)).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(configDir)).To(Succeed())
	})

	It("loads a config file", func() {
		config, err := config.Load(configFilePath)
		Expect(err).NotTo(HaveOccurred())
		Expect(config.LogLevel).To(Equal("debug"))
		Expect(config.TmpDir).To(Equal("/var/tmp"))
		Expect(config.NixConfDir).To(BeEmpty())
	})

	Context("when filepath is invalid", func() {
		It("returns an error", func() {
			_, err := config.Load("/tmp/not-here")
			Expect(err).To(MatchError(ContainSubstring("invalid config path")))
		})
	})

	Context("when config file has invalid content", func() {
		BeforeEach(func() {
			configFilePath = path.Join(configDir, "invalid-config.yaml")
			Expect(os.WriteFile(configFilePath, []byte("invalid-content"), 0755)).To(Succeed())
		})

		It("returns an error", func() {
			_, err := config.Load(configFilePath)
			Expect(err).To(MatchError(ContainSubstring("invalid config file")))
		})
	})

	Context("when config file has unknown keys", func() {
		BeforeEach(func() {
			Expect(os.WriteFile(configFilePath, []byte("store_path: /var/vcap\n"), 0755)).To(Succeed())
		})

		It("returns an error", func() {
			_, err := config.Load(configFilePath)
			Expect(err).To(MatchError(ContainSubstring("invalid config file")))
		})
	})
})
