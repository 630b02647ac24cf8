package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"go.opentelemetry.io/otel"

	"taskdash/pkg/filesystem"
)

// FileName is the log file written under the data directory while the TUI
// owns the terminal
const FileName = "taskdash.log"

// Options controls logger construction
type Options struct {
	// Verbosity enables V(n) logs up to n
	Verbosity int
	// Output defaults to stderr
	Output io.Writer
}

// New builds the process logger and installs it as the otel logger
func New(opts Options) logr.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	stdr.SetVerbosity(opts.Verbosity)
	logger := stdr.NewWithOptions(log.New(out, "taskdash ", log.LstdFlags), stdr.Options{
		LogCaller: stdr.None,
	})

	otel.SetLogger(logger.WithName("otel"))
	return logger
}

// Discard returns a logger that drops everything
func Discard() logr.Logger {
	return logr.Discard()
}

// OpenFile opens the log file under dataPath for appending
func OpenFile(dataPath string) (*os.File, error) {
	if err := filesystem.EnsureDir(dataPath, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	path := filepath.Join(dataPath, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
