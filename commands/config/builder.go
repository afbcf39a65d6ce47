package config

import (
	"os"

	"code.cloudfoundry.org/nix-user-chroot/chroot"
)

type Builder struct {
	config *Config
}

func NewBuilder() *Builder {
	return &Builder{
		config: &Config{},
	}
}

// NewBuilderFromFile starts from the file's values. An empty path starts
// from scratch.
func NewBuilderFromFile(pathToYaml string) (*Builder, error) {
	if pathToYaml == "" {
		return NewBuilder(), nil
	}

	config, err := Load(pathToYaml)
	if err != nil {
		return nil, err
	}

	return &Builder{
		config: &config,
	}, nil
}

// Build fills in the defaults and validates the result.
func (b *Builder) Build() (Config, error) {
	config := *b.config

	if config.LogLevel == "" {
		config.LogLevel = chroot.DefaultLogLevel
	}
	if _, err := chroot.ParseLogLevel(config.LogLevel); err != nil {
		return Config{}, err
	}

	if config.TmpDir == "" {
		config.TmpDir = os.TempDir()
	}

	if config.NixConfDir == "" {
		config.NixConfDir = chroot.DefaultConfDir
	}

	return config, nil
}

func (b *Builder) WithLogLevel(level string, isSet bool) *Builder {
	if isSet || b.config.LogLevel == "" {
		b.config.LogLevel = level
	}
	return b
}

func (b *Builder) WithTmpDir(tmpDir string, isSet bool) *Builder {
	if isSet || b.config.TmpDir == "" {
		b.config.TmpDir = tmpDir
	}
	return b
}

func (b *Builder) WithNixConfDir(confDir string, isSet bool) *Builder {
	if isSet || b.config.NixConfDir == "" {
		b.config.NixConfDir = confDir
	}
	return b
}
