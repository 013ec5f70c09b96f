package cmd

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rohmanhakim/http-message/internal/metadata"
	"github.com/rohmanhakim/http-message/pkg/query"
	"github.com/rohmanhakim/http-message/pkg/uri"
	"github.com/spf13/cobra"
)

type urlReport struct {
	URL          string              `json:"url"`
	Scheme       string              `json:"scheme"`
	Authority    string              `json:"authority"`
	UserInfo     string              `json:"userInfo"`
	Host         string              `json:"host"`
	Port         *int                `json:"port,omitempty"`
	Path         string              `json:"path"`
	Query        string              `json:"query"`
	Fragment     string              `json:"fragment"`
	Reference    string              `json:"reference"`
	SameDocument bool                `json:"sameDocument"`
	QueryValues  map[string][]string `json:"queryValues,omitempty"`
}

func newURLReport(u uri.URL) urlReport {
	r := urlReport{
		URL:          u.String(),
		Scheme:       u.Scheme(),
		Authority:    u.Authority(),
		UserInfo:     u.UserInfo(),
		Host:         u.Host(),
		Path:         u.Path(),
		Query:        u.Query(),
		Fragment:     u.Fragment(),
		Reference:    referenceType(u),
		SameDocument: u.IsSameDocumentReference(),
	}
	if port, ok := u.Port(); ok {
		r.Port = &port
	}

	values := query.Parse(u.Query())
	if values.Len() > 0 {
		r.QueryValues = make(map[string][]string)
		for _, key := range values.Keys() {
			r.QueryValues[key] = values.GetAll(key)
		}
	}
	return r
}

func referenceType(u uri.URL) string {
	switch {
	case u.IsAbsolute():
		return "absolute"
	case u.IsNetworkPathReference():
		return "network-path"
	case u.IsAbsolutePathReference():
		return "absolute-path"
	default:
		return "relative-path"
	}
}

func (r urlReport) renderText(w io.Writer) error {
	port := ""
	if r.Port != nil {
		port = strconv.Itoa(*r.Port)
	}
	return writeFields(w, [][2]string{
		{"url", r.URL},
		{"scheme", r.Scheme},
		{"authority", r.Authority},
		{"userinfo", r.UserInfo},
		{"host", r.Host},
		{"port", port},
		{"path", r.Path},
		{"query", r.Query},
		{"fragment", r.Fragment},
		{"reference", r.Reference},
	})
}

func newParseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse URI",
		Short: "Split a URI reference into its normalized components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := args[0]
			u, err := uri.Parse(raw)
			if err != nil {
				a.recordError("Parse", err, metadata.NewAttr(metadata.AttrURL, raw))
				return errors.Wrapf(err, "parse %q", raw)
			}
			a.recordOperation("parse", raw, metadata.NewAttr(metadata.AttrURL, u.String()))
			return a.render(newURLReport(u))
		},
	}
}
