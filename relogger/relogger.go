package relogger // import "code.cloudfoundry.org/nix-user-chroot/relogger"

import (
	"io"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/chug"
)

// RelogStream replays every lager line read from input into destination
// until input is exhausted. Lines that are not lager JSON are kept as debug
// output.
func RelogStream(destination lager.Logger, input io.Reader) {
	entries := make(chan chug.Entry)
	go chug.Chug(input, entries)
	for entry := range entries {
		if entry.IsLager {
			relog(destination, entry.Log)
			continue
		}

		line := strings.TrimSpace(string(entry.Raw))
		if line != "" {
			destination.Debug("unstructured-output", lager.Data{"line": line})
		}
	}
}

// Drain relogs input in the background. The returned channel is closed once
// input hits EOF.
func Drain(destination lager.Logger, input io.ReadCloser) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer input.Close()
		RelogStream(destination, input)
	}()
	return done
}

func relog(logger lager.Logger, entry chug.LogEntry) {
	data := lager.Data{}
	for key, value := range entry.Data {
		data[key] = value
	}
	data["original_timestamp"] = entry.Timestamp
	if entry.Session != "" {
		data["original_session"] = entry.Session
	}

	switch entry.LogLevel {
	case lager.DEBUG:
		logger.Debug(entry.Message, data)
	case lager.INFO:
		logger.Info(entry.Message, data)
	case lager.ERROR, lager.FATAL:
		logger.Error(entry.Message, entry.Error, data)
	}
}
