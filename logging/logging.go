// Package logging builds the process logger. The terminal owns stdout and
// stderr while a game runs, so logs go to a rotated file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// LogFileName is the active log inside the log directory
	LogFileName = "skyfolio.log"

	// MaxLogSize triggers rotation of the previous log at startup
	MaxLogSize = 10 * 1024 * 1024
)

// Options selects where and how much to log
type Options struct {
	Debug bool
	Dir   string
	Level string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup returns a JSON file logger when Debug is set, otherwise a disabled logger
// The closer must be closed on exit
func Setup(opts Options) (zerolog.Logger, io.Closer, error) {
	if !opts.Debug {
		return zerolog.Nop(), nopCloser{}, nil
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("creating log directory: %w", err)
	}

	path := filepath.Join(opts.Dir, LogFileName)
	if err := rotate(path); err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("opening log file: %w", err)
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	logger.Info().Str("path", path).Str("level", level.String()).Msg("Logging started")

	return logger, f, nil
}

// ParseLevel maps config names onto zerolog levels, empty means info and "warning" means warn
func ParseLevel(name string) (zerolog.Level, error) {
	switch name = strings.ToLower(strings.TrimSpace(name)); name {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q: %w", name, err)
	}
	return level, nil
}

// rotate renames an oversized log aside with a timestamp suffix
func rotate(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking log file: %w", err)
	}
	if info.Size() <= MaxLogSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", strings.TrimSuffix(path, ext), time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotating log file: %w", err)
	}
	return nil
}
