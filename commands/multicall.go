package commands

import "path/filepath"

// MulticallNames are the tools the binary stands in for when it is invoked
// under their name, busybox style.
var MulticallNames = []string{
	"nix",
	"nix-build",
	"nix-channel",
	"nix-collect-garbage",
	"nix-copy-closure",
	"nix-daemon",
	"nix-env",
	"nix-hash",
	"nix-instantiate",
	"nix-prefetch-url",
	"nix-shell",
	"nix-store",
}

// MulticallCommand returns the tool argv0 names, if any.
func MulticallCommand(argv0 string) (string, bool) {
	name := filepath.Base(argv0)
	for _, multicallName := range MulticallNames {
		if name == multicallName {
			return name, true
		}
	}
	return "", false
}
