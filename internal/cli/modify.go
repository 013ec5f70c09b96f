package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rohmanhakim/http-message/internal/metadata"
	"github.com/rohmanhakim/http-message/pkg/uri"
	"github.com/spf13/cobra"
)

type modifyFlags struct {
	scheme      string
	user        string
	password    string
	host        string
	port        int
	withoutPort bool
	path        string
	query       string
	fragment    string
	setQuery    []string
	removeQuery []string
}

// step is one URL mutation; steps run in a fixed component order so the
// result does not depend on the order flags were given in.
type step func(uri.URL) (uri.URL, error)

func newModifyCommand(a *app) *cobra.Command {
	flags := &modifyFlags{}
	modifyCmd := &cobra.Command{
		Use:   "modify URI",
		Short: "Rewrite components of a URI reference",
		Long: `modify applies component changes to a URI and prints the result.

Query pairs given with --set-query replace every pair with the same decoded key;
a bare key without '=' is added without a value.`,
		Example: `  httpmsg modify http://example.com/a --scheme https --port 8443 --set-query page=2
  httpmsg modify 'https://example.com/?a=1&b=2' --remove-query a`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := args[0]
			u, err := uri.Parse(raw)
			if err == nil {
				u, err = applySteps(u, modifySteps(cmd, flags))
			}
			if err != nil {
				a.recordError("Modify", err, metadata.NewAttr(metadata.AttrURL, raw))
				return errors.Wrapf(err, "modify %q", raw)
			}
			a.recordOperation("modify", raw, metadata.NewAttr(metadata.AttrURL, u.String()))
			return a.render(newURLReport(u))
		},
	}

	f := modifyCmd.Flags()
	f.StringVar(&flags.scheme, "scheme", "", "replace the scheme")
	f.StringVar(&flags.user, "user", "", "replace the user name")
	f.StringVar(&flags.password, "password", "", "replace the password (used with --user)")
	f.StringVar(&flags.host, "host", "", "replace the host")
	f.IntVar(&flags.port, "port", 0, "set an explicit port (1-65535)")
	f.BoolVar(&flags.withoutPort, "without-port", false, "clear the explicit port")
	f.StringVar(&flags.path, "path", "", "replace the path")
	f.StringVar(&flags.query, "query", "", "replace the whole query")
	f.StringVar(&flags.fragment, "fragment", "", "replace the fragment")
	f.StringArrayVar(&flags.setQuery, "set-query", nil, "set a query pair as key=value or a bare key (repeatable)")
	f.StringArrayVar(&flags.removeQuery, "remove-query", nil, "remove every pair with this key (repeatable)")
	modifyCmd.MarkFlagsMutuallyExclusive("port", "without-port")
	return modifyCmd
}

func modifySteps(cmd *cobra.Command, flags *modifyFlags) []step {
	changed := cmd.Flags().Changed
	var steps []step

	if changed("scheme") {
		steps = append(steps, func(u uri.URL) (uri.URL, error) { return u.WithScheme(flags.scheme) })
	}
	if changed("user") || changed("password") {
		steps = append(steps, func(u uri.URL) (uri.URL, error) { return u.WithUserInfo(flags.user, flags.password) })
	}
	if changed("host") {
		steps = append(steps, func(u uri.URL) (uri.URL, error) { return u.WithHost(flags.host) })
	}
	if changed("port") {
		steps = append(steps, func(u uri.URL) (uri.URL, error) { return u.WithPort(flags.port) })
	}
	if flags.withoutPort {
		steps = append(steps, uri.URL.WithoutPort)
	}
	if changed("path") {
		steps = append(steps, func(u uri.URL) (uri.URL, error) { return u.WithPath(flags.path) })
	}
	if changed("query") {
		steps = append(steps, func(u uri.URL) (uri.URL, error) { return u.WithQuery(flags.query) })
	}
	for _, key := range flags.removeQuery {
		steps = append(steps, func(u uri.URL) (uri.URL, error) { return u.WithoutQueryValue(key) })
	}
	for _, pair := range flags.setQuery {
		key, value, hasValue := strings.Cut(pair, "=")
		if hasValue {
			steps = append(steps, func(u uri.URL) (uri.URL, error) { return u.WithQueryValue(key, value) })
		} else {
			steps = append(steps, func(u uri.URL) (uri.URL, error) { return u.WithQueryKey(key) })
		}
	}
	if changed("fragment") {
		steps = append(steps, func(u uri.URL) (uri.URL, error) { return u.WithFragment(flags.fragment) })
	}
	return steps
}

func applySteps(u uri.URL, steps []step) (uri.URL, error) {
	for _, s := range steps {
		next, err := s(u)
		if err != nil {
			return uri.URL{}, err
		}
		u = next
	}
	return u, nil
}
