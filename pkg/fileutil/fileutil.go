package fileutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rohmanhakim/http-message/pkg/failure"
)

// StdinPath selects standard input in place of a file path.
const StdinPath = "-"

// MaxInputSize bounds how much ReadInput accepts from a single source.
const MaxInputSize = 1 << 20

// GetFileExtension extracts the file extension from a path, or empty string if none
func GetFileExtension(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// ReadInput returns the contents of path, or of stdin when path is empty or
// StdinPath. Inputs larger than MaxInputSize are rejected.
func ReadInput(path string, stdin io.Reader) ([]byte, failure.ClassifiedError) {
	if path == "" || path == StdinPath {
		return readLimited(stdin, "stdin")
	}

	f, err := os.Open(path)
	if err != nil {
		cause := ErrCauseReadFailure
		if errors.Is(err, os.ErrNotExist) {
			cause = ErrCauseNotFound
		}
		return nil, &FileError{
			Message:   errors.Wrap(err, "open input").Error(),
			Retryable: false,
			Cause:     cause,
			Path:      path,
		}
	}
	defer f.Close()

	return readLimited(f, path)
}

func readLimited(r io.Reader, name string) ([]byte, failure.ClassifiedError) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return nil, &FileError{
			Message:   errors.Wrapf(err, "read %s", name).Error(),
			Retryable: false,
			Cause:     ErrCauseReadFailure,
			Path:      name,
		}
	}
	if len(data) > MaxInputSize {
		return nil, &FileError{
			Message:   errors.Errorf("%s exceeds %d bytes", name, MaxInputSize).Error(),
			Retryable: false,
			Cause:     ErrCauseTooLarge,
			Path:      name,
		}
	}
	return data, nil
}
