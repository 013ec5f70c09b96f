package cmd

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rohmanhakim/http-message/internal/metadata"
	"github.com/rohmanhakim/http-message/pkg/uri"
	"github.com/spf13/cobra"
)

type resolution struct {
	Reference    string `json:"reference"`
	Resolved     string `json:"resolved"`
	SameDocument bool   `json:"sameDocument"`
}

type resolutionReport struct {
	Base        string       `json:"base"`
	Resolutions []resolution `json:"resolutions"`
}

func (r resolutionReport) renderText(w io.Writer) error {
	for _, res := range r.Resolutions {
		if _, err := fmt.Fprintln(w, res.Resolved); err != nil {
			return err
		}
	}
	return nil
}

func newResolveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve BASE REFERENCE...",
		Short: "Resolve references against a base URI (RFC 3986 section 5.2)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := uri.Parse(args[0])
			if err != nil {
				a.recordError("Resolve", err, metadata.NewAttr(metadata.AttrBase, args[0]))
				return errors.Wrapf(err, "parse base %q", args[0])
			}

			report := resolutionReport{Base: base.String()}
			for _, raw := range args[1:] {
				res, err := resolveOne(base, raw)
				if err != nil {
					a.recordError("Resolve", err,
						metadata.NewAttr(metadata.AttrBase, base.String()),
						metadata.NewAttr(metadata.AttrURL, raw),
					)
					return err
				}
				a.recordOperation("resolve", raw,
					metadata.NewAttr(metadata.AttrBase, base.String()),
					metadata.NewAttr(metadata.AttrURL, res.Resolved),
				)
				report.Resolutions = append(report.Resolutions, res)
			}
			return a.render(report)
		},
	}
}

func resolveOne(base uri.URL, raw string) (resolution, error) {
	rel, err := uri.Parse(raw)
	if err != nil {
		return resolution{}, errors.Wrapf(err, "parse reference %q", raw)
	}
	resolved, err := uri.Resolve(base, rel)
	if err != nil {
		return resolution{}, errors.Wrapf(err, "resolve %q", raw)
	}
	same, err := rel.IsSameDocumentReferenceTo(base)
	if err != nil {
		return resolution{}, errors.Wrapf(err, "compare %q", raw)
	}
	return resolution{
		Reference:    rel.String(),
		Resolved:     resolved.String(),
		SameDocument: same,
	}, nil
}
