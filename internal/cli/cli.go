// Package cli holds the plumbing shared by the command line tools.
package cli

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"kastelo.dev/attendance"
)

const (
	ExitFailure       = 1
	ExitInputNotFound = 2
)

// LoadEnv loads a .env file from the working directory, if there is one,
// so that flag defaults taken from the environment can be set there.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Ignoring unreadable .env file", "error", err)
	}
}

func SetupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// CheckInput returns an *attendance.InputNotFoundError unless path names an
// existing regular file.
func CheckInput(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return &attendance.InputNotFoundError{Path: path}
	}
	return nil
}

func ExitCode(err error) int {
	var notFound *attendance.InputNotFoundError
	if errors.As(err, &notFound) {
		return ExitInputNotFound
	}
	return ExitFailure
}

// Fatal logs err and exits with the code matching its kind.
func Fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(ExitCode(err))
}
