package cmd_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	cmd "github.com/rohmanhakim/http-message/internal/cli"
	"github.com/rohmanhakim/http-message/internal/metadata"
	"github.com/stretchr/testify/mock"
)

type recordedError struct {
	packageName string
	action      string
	cause       metadata.ErrorCause
	details     string
	attrs       []metadata.Attribute
}

type recordingSink struct {
	errors     []recordedError
	operations []string
}

func (r *recordingSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause metadata.ErrorCause,
	details string,
	attrs []metadata.Attribute,
) {
	r.errors = append(r.errors, recordedError{
		packageName: packageName,
		action:      action,
		cause:       cause,
		details:     details,
		attrs:       attrs,
	})
}

func (r *recordingSink) RecordOperation(action string, input string, attrs []metadata.Attribute) {
	r.operations = append(r.operations, action)
}

// syncingSink counts Sync calls on top of recording.
type syncingSink struct {
	recordingSink
	syncs int
}

func (s *syncingSink) Sync() error {
	s.syncs++
	return nil
}

type mockSink struct {
	mock.Mock
}

func (m *mockSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause metadata.ErrorCause,
	details string,
	attrs []metadata.Attribute,
) {
	m.Called(observedAt, packageName, action, cause, details, attrs)
}

func (m *mockSink) RecordOperation(action string, input string, attrs []metadata.Attribute) {
	m.Called(action, input, attrs)
}

type runResult struct {
	stdout string
	stderr string
	sink   *recordingSink
	err    error
}

// run executes the command tree with args, stdin and the given environ
// source, isolated from the working directory's .env file.
func run(t *testing.T, stdin string, environ []string, args ...string) runResult {
	t.Helper()
	sink := &recordingSink{}
	res := runWithSink(t, sink, stdin, environ, args...)
	res.sink = sink
	return res
}

func runWithSink(t *testing.T, sink metadata.MetadataSink, stdin string, environ []string, args ...string) runResult {
	t.Helper()
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	var in io.Reader = strings.NewReader(stdin)

	rootCmd := cmd.NewRootCommand(in, &stdout, &stderr,
		cmd.WithSink(sink),
		cmd.WithEnviron(func() []string { return environ }),
	)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return runResult{
		stdout: stdout.String(),
		stderr: stderr.String(),
		err:    err,
	}
}
