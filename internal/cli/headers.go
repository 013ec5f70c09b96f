package cmd

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rohmanhakim/http-message/internal/metadata"
	"github.com/rohmanhakim/http-message/pkg/fileutil"
	"github.com/rohmanhakim/http-message/pkg/header"
	"github.com/spf13/cobra"
)

type headersFlags struct {
	set    []string
	add    []string
	remove []string
}

type headerBlockReport struct {
	ProtocolVersion string            `json:"protocolVersion"`
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`

	lines header.Headers
}

func (r headerBlockReport) renderText(w io.Writer) error {
	if err := writeFields(w, [][2]string{
		{"protocol", r.ProtocolVersion},
		{"status", strconv.Itoa(r.StatusCode)},
	}); err != nil {
		return err
	}
	_, err := r.lines.WriteTo(w)
	return err
}

func newHeadersCommand(a *app) *cobra.Command {
	flags := &headersFlags{}
	headersCmd := &cobra.Command{
		Use:   "headers [FILE]",
		Short: "Parse a raw HTTP header block from FILE or stdin",
		Long: `headers reads a start line followed by "Name: value" lines, reports the
protocol version and status code, applies the requested edits and prints the
resulting header fields in wire form.`,
		Example: `  curl -sI https://example.com | httpmsg headers --remove Date
  httpmsg headers response.txt --set Cache-Control=no-store -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fileutil.StdinPath
			if len(args) == 1 {
				path = args[0]
			}

			raw, readErr := fileutil.ReadInput(path, a.in)
			if readErr != nil {
				a.recordError("ReadInput", readErr, metadata.NewAttr(metadata.AttrPath, path))
				return readErr
			}

			parser := header.NewParser(string(bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))))
			h, err := editHeaders(parser.Headers(), flags)
			if err != nil {
				a.recordError("EditHeaders", err, metadata.NewAttr(metadata.AttrPath, path))
				return err
			}

			a.recordOperation("headers", path,
				metadata.NewAttr(metadata.AttrCount, strconv.Itoa(h.Len())),
			)
			return a.render(headerBlockReport{
				ProtocolVersion: parser.ProtocolVersion(),
				StatusCode:      parser.StatusCode(),
				Headers:         h.AsMap(),
				lines:           h,
			})
		},
	}

	f := headersCmd.Flags()
	f.StringArrayVar(&flags.remove, "remove", nil, "drop every field with this name (repeatable)")
	f.StringArrayVar(&flags.set, "set", nil, "replace a field as Name=value (repeatable)")
	f.StringArrayVar(&flags.add, "add", nil, "add a value to a field as Name=value (repeatable)")
	return headersCmd
}

// editHeaders applies removals, then replacements, then additions.
func editHeaders(h header.Headers, flags *headersFlags) (header.Headers, error) {
	for _, name := range flags.remove {
		h = h.WithoutHeader(name)
	}
	for _, field := range flags.set {
		name, value, err := splitField(field)
		if err != nil {
			return header.Headers{}, err
		}
		h = h.WithHeader(name, value)
	}
	for _, field := range flags.add {
		name, value, err := splitField(field)
		if err != nil {
			return header.Headers{}, err
		}
		h = h.WithAddedHeaderValue(name, value)
	}
	return h, nil
}

func splitField(field string) (string, string, error) {
	name, value, ok := strings.Cut(field, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", errors.Errorf("expected Name=value, got %q", field)
	}
	return name, strings.TrimSpace(value), nil
}
