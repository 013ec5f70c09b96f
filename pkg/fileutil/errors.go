package fileutil

import (
	"fmt"

	"github.com/rohmanhakim/http-message/pkg/failure"
)

type FileErrorCause string

const (
	ErrCauseNotFound    FileErrorCause = "file not found"
	ErrCauseReadFailure FileErrorCause = "read failure"
	ErrCauseTooLarge    FileErrorCause = "input too large"
)

type FileError struct {
	Message   string
	Retryable bool
	Cause     FileErrorCause
	Path      string
}

func (e *FileError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("file error: %s", e.Cause)
	}
	return fmt.Sprintf("file error: %s: %s", e.Cause, e.Message)
}

func (e *FileError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}
