// Package logging builds the structured logger shared by the host and the
// session.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level is configured
const DefaultLevel = "warn"

// New returns a text logger writing to out at the named level. An empty level
// selects DefaultLevel; a nil out discards everything.
func New(level string, out io.Writer) (*logrus.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	log := logrus.New()
	log.SetLevel(lvl)
	if out == nil {
		out = io.Discard
	}
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return log, nil
}

// OpenFile opens path for appending log lines. The terminal front-end owns
// stdout, so logs go to a file while it runs.
func OpenFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
