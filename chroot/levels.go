package chroot // import "code.cloudfoundry.org/nix-user-chroot/chroot"

import (
	"strings"

	"code.cloudfoundry.org/lager/v3"
	errorspkg "github.com/pkg/errors"
)

const DefaultLogLevel = "error"

func ParseLogLevel(level string) (lager.LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return lager.DEBUG, nil
	case "info":
		return lager.INFO, nil
	case "error", "":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return lager.ERROR, errorspkg.Errorf("invalid log level `%s`: must be one of debug, info, error, fatal", level)
	}
}

// Level is the configured log level, falling back to error when it is not a
// known level.
func (s Spec) Level() lager.LogLevel {
	level, _ := ParseLogLevel(s.LogLevel)
	return level
}
