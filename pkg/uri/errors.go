package uri

import (
	"errors"
	"fmt"

	"github.com/rohmanhakim/http-message/pkg/failure"
)

type ErrorCause string

const (
	ErrCauseParse           ErrorCause = "unable to parse uri"
	ErrCausePortOutOfRange  ErrorCause = "port out of range"
	ErrCauseInvalidRelative ErrorCause = "invalid relative uri"
)

var (
	ErrParse           = errors.New(string(ErrCauseParse))
	ErrPortOutOfRange  = errors.New(string(ErrCausePortOutOfRange))
	ErrInvalidRelative = errors.New(string(ErrCauseInvalidRelative))
)

// Error reports a URI that could not be built. All causes signal malformed
// input or a caller mistake, so none of them is recoverable.
type Error struct {
	Message string
	Input   string
	Cause   ErrorCause
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("uri error: %s: %q", e.Cause, e.Input)
	}
	return fmt.Sprintf("uri error: %s: %s", e.Cause, e.Message)
}

func (e *Error) Severity() failure.Severity {
	return failure.SeverityFatal
}

// Unwrap exposes the sentinel matching the cause, for errors.Is.
func (e *Error) Unwrap() error {
	switch e.Cause {
	case ErrCauseParse:
		return ErrParse
	case ErrCausePortOutOfRange:
		return ErrPortOutOfRange
	case ErrCauseInvalidRelative:
		return ErrInvalidRelative
	default:
		return nil
	}
}

func parseError(input string, message string) *Error {
	return &Error{Message: message, Input: input, Cause: ErrCauseParse}
}

func portError(input string) *Error {
	return &Error{
		Message: fmt.Sprintf("port %s is outside %d-%d", input, minPort, maxPort),
		Input:   input,
		Cause:   ErrCausePortOutOfRange,
	}
}

func relativeError(input string, message string) *Error {
	return &Error{Message: message, Input: input, Cause: ErrCauseInvalidRelative}
}
