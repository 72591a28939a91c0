package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
)

// newLogger returns a logger writing to path, or one that discards everything
// when path is empty. The terminal belongs to the UI.
func newLogger(path, level string) (logr.Logger, io.Closer, error) {
	if path == "" {
		return logr.Discard(), io.NopCloser(nil), nil
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logr.Logger{}, nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logr.Logger{}, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(file)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logr.New(&sink{entry: logrus.NewEntry(logger)}), file, nil
}

// sink routes logr records into logrus. logr verbosity 0 is logrus info,
// 1 is debug and 2 and above is trace.
type sink struct {
	entry *logrus.Entry
	name  string
}

func (s *sink) Init(logr.RuntimeInfo) {}

func (s *sink) Enabled(level int) bool {
	return s.entry.Logger.IsLevelEnabled(levelFor(level))
}

func (s *sink) Info(level int, msg string, keysAndValues ...any) {
	s.entry.WithFields(fields(keysAndValues)).Log(levelFor(level), s.prefix(msg))
}

func (s *sink) Error(err error, msg string, keysAndValues ...any) {
	s.entry.WithFields(fields(keysAndValues)).WithError(err).Error(s.prefix(msg))
}

func (s *sink) WithValues(keysAndValues ...any) logr.LogSink {
	return &sink{entry: s.entry.WithFields(fields(keysAndValues)), name: s.name}
}

func (s *sink) WithName(name string) logr.LogSink {
	if s.name != "" {
		name = s.name + "/" + name
	}
	return &sink{entry: s.entry, name: name}
}

func (s *sink) prefix(msg string) string {
	if s.name == "" {
		return msg
	}
	return s.name + ": " + msg
}

func levelFor(level int) logrus.Level {
	switch {
	case level <= 0:
		return logrus.InfoLevel
	case level == 1:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

func fields(keysAndValues []any) logrus.Fields {
	f := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		f[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	if len(keysAndValues)%2 == 1 {
		f["!BADKEY"] = keysAndValues[len(keysAndValues)-1]
	}
	return f
}
