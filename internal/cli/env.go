package cmd

import (
	"io"
	"strconv"

	"github.com/rohmanhakim/http-message/internal/metadata"
	"github.com/rohmanhakim/http-message/pkg/header"
	"github.com/spf13/cobra"
)

type environHeaders struct {
	Headers map[string]string `json:"headers"`

	lines header.Headers
}

func (e environHeaders) renderText(w io.Writer) error {
	_, err := e.lines.WriteTo(w)
	return err
}

func newEnvCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print the request headers carried by HTTP_* environment variables",
		Long: `env reconstructs request headers the way a CGI gateway passes them:
every HTTP_* variable becomes a header named after the rest of the key with
underscores turned into hyphens.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := header.FromEnviron(a.environ())
			a.recordOperation("env", "environ", metadata.NewAttr(metadata.AttrCount, strconv.Itoa(h.Len())))
			return a.render(environHeaders{Headers: h.AsMap(), lines: h})
		},
	}
}
