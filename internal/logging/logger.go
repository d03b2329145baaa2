package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LogFormat selects the logrus formatter
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// NewLogger builds the process logger. Unknown levels fall back to info.
func NewLogger(format LogFormat, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	switch format {
	case LogFormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger
}
