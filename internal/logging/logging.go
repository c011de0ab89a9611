// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alexrayosb/CRUD-TodoList/internal/config"
)

// ServiceName is attached to every entry.
const ServiceName = "tasklist"

// New returns a logger writing to w with the configured level and format.
func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(w)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %s", level)
	}
	l.SetLevel(lvl)

	switch format {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "ts",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	return l, nil
}

// Open builds the logger for cfg.
// With cfg.Debug it logs to stderr at debug level; otherwise it appends to the log file,
// since the terminal belongs to the UI. The returned closer releases the file.
func Open(cfg *config.Config, stderr io.Writer) (logrus.FieldLogger, io.Closer, error) {
	if cfg.Debug {
		l, err := New(stderr, "debug", cfg.LogFormat)
		if err != nil {
			return nil, nil, err
		}
		return l.WithField("service", ServiceName), nopCloser{}, nil
	}

	path := cfg.LogFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l, err := New(f, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return l.WithField("service", ServiceName), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
