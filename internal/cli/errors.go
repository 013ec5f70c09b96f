package cmd

import (
	"github.com/pkg/errors"
	"github.com/rohmanhakim/http-message/internal/config"
	"github.com/rohmanhakim/http-message/internal/metadata"
	"github.com/rohmanhakim/http-message/pkg/failure"
	"github.com/rohmanhakim/http-message/pkg/fileutil"
	"github.com/rohmanhakim/http-message/pkg/hashutil"
	"github.com/rohmanhakim/http-message/pkg/uri"
	"github.com/rohmanhakim/http-message/pkg/urlutil"
)

const (
	exitOK          = 0
	exitFatal       = 1
	exitRecoverable = 2
)

// ExitCode derives the process status from the severity of err.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case failure.IsFatal(err):
		return exitFatal
	default:
		return exitRecoverable
	}
}

func mapURLErrorToMetadataCause(err *uri.Error) metadata.ErrorCause {
	switch err.Cause {
	case uri.ErrCauseParse:
		return metadata.CauseMalformedURI
	case uri.ErrCausePortOutOfRange:
		return metadata.CausePortOutOfRange
	case uri.ErrCauseInvalidRelative:
		return metadata.CauseAmbiguousReference
	default:
		return metadata.CauseUnknown
	}
}

// classifyError names the package an error originates from and its
// observability cause.
func classifyError(err error) (string, metadata.ErrorCause) {
	var uriErr *uri.Error
	if errors.As(err, &uriErr) {
		return "uri", mapURLErrorToMetadataCause(uriErr)
	}
	var fileErr *fileutil.FileError
	if errors.As(err, &fileErr) {
		return "fileutil", metadata.CauseInputFailure
	}

	switch {
	case errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, config.ErrFileDoesNotExist),
		errors.Is(err, config.ErrReadConfigFail),
		errors.Is(err, config.ErrConfigParsingFail):
		return "config", metadata.CauseConfigInvalid
	case errors.Is(err, hashutil.ErrUnsupportedAlgo):
		return "hashutil", metadata.CauseConfigInvalid
	case errors.Is(err, urlutil.ErrInvalidHost):
		return "urlutil", metadata.CauseMalformedURI
	default:
		return "cmd", metadata.CauseUnknown
	}
}
