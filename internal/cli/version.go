package cmd

import (
	"fmt"
	"io"

	"github.com/rohmanhakim/http-message/internal/build"
	"github.com/spf13/cobra"
)

type versionReport build.BuildInfo

func (v versionReport) renderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "httpmsg %s+%s (built %s)\n", v.Version, v.Commit, v.BuildTime)
	return err
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(versionReport(build.Info()))
		},
	}
}
