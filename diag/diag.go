// Package diag holds the error kinds and the logger shared by every
// component of the solver: the DIMACS and Sudoku front ends, the solver
// core's self-check, and the CLI driver.
package diag

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Kinds of failure the system can report, per the error handling design.
// These are sentinels: callers wrap them with errors.Wrap/Wrapf to attach
// call-site context, and compare against them with errors.Is or
// errors.Cause.
var (
	// ErrBadFormat is returned for malformed DIMACS or Sudoku text.
	ErrBadFormat = errors.New("bad input format")
	// ErrHeaderMismatch is returned when a declared V/C disagrees with the
	// observed content.
	ErrHeaderMismatch = errors.New("header mismatch")
	// ErrIoFailure is returned when an input cannot be opened or read.
	ErrIoFailure = errors.New("io failure")
	// ErrDecodeInconsistent is returned when a solved Sudoku model yields
	// zero or multiple true digits for some cell.
	ErrDecodeInconsistent = errors.New("inconsistent decode")
	// ErrInternalInvariantBroken indicates a solver self-check failed; it is
	// always a bug in the solver core, never a user-facing input problem.
	ErrInternalInvariantBroken = errors.New("internal invariant broken")
)

// Cause unwraps err down to one of the sentinel kinds above. It returns err
// itself if no sentinel matches.
func Cause(err error) error {
	for _, sentinel := range []error{
		ErrBadFormat,
		ErrHeaderMismatch,
		ErrIoFailure,
		ErrDecodeInconsistent,
		ErrInternalInvariantBroken,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return err
}

// NewLogger returns a logger configured in the solver's standard shape:
// timestamped text output to stdout, level controlled by verbose.
func NewLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}
