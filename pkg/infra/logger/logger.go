package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultDir = "logs"

type Config struct {
	Level   string
	Dir     string
	File    string
	Console bool
}

// NewLogger builds the JSON logger. LOG_LEVEL overrides the configured
// level. The returned close func flushes the async writers.
func NewLogger(cfg Config) (*logrus.Logger, func(), error) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})

	level := cfg.Level
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	logger.SetLevel(parseLevel(level))

	if cfg.File == "" {
		logger.SetOutput(os.Stdout)
		return logger, func() {}, nil
	}

	dir := cfg.Dir
	if dir == "" {
		dir = defaultDir
	}
	logFile := filepath.Join(dir, cfg.File)
	if !strings.HasPrefix(logFile, filepath.Clean(dir)+string(filepath.Separator)) {
		return nil, nil, fmt.Errorf("invalid log file path %q: must be in %s", cfg.File, dir)
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	asyncWriter, err := NewAsyncFileWriter(logFile, 32*1024)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}
	logger.SetOutput(asyncWriter)

	closers := []io.Closer{asyncWriter}
	if cfg.Console {
		consoleHook := NewAsyncConsoleHook(1000)
		logger.AddHook(consoleHook)
		closers = append([]io.Closer{consoleHook}, closers...)
	}

	return logger, func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}, nil
}

func parseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
