package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds the process logger. JSON to stdout by default; LOG_FORMAT=text
// switches to the human-readable formatter for local runs. LOG_LEVEL
// follows the usual logrus names and defaults to info.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "text") {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
	case "trace":
		l.SetLevel(logrus.TraceLevel)
	case "debug":
		l.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		l.SetLevel(logrus.WarnLevel)
	case "error":
		l.SetLevel(logrus.ErrorLevel)
	default:
		l.SetLevel(logrus.InfoLevel)
	}
	return l
}
