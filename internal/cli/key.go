package cmd

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rohmanhakim/http-message/internal/metadata"
	"github.com/rohmanhakim/http-message/pkg/hashutil"
	"github.com/rohmanhakim/http-message/pkg/uri"
	"github.com/rohmanhakim/http-message/pkg/urlutil"
	"github.com/spf13/cobra"
)

type cacheKey struct {
	URL       string `json:"url"`
	Canonical string `json:"canonical"`
	Key       string `json:"key"`
}

type cacheKeys []cacheKey

func (k cacheKeys) renderText(w io.Writer) error {
	for _, entry := range k {
		if _, err := fmt.Fprintf(w, "%s  %s\n", entry.Key, entry.Canonical); err != nil {
			return err
		}
	}
	return nil
}

func newKeyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "key URI...",
		Short: "Print the canonical form and cache key of each URI",
		Long: `key canonicalizes each URI (dot segments removed, fragment dropped,
default port elided, internationalized host converted to ASCII) and hashes the
result with the configured algorithm.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo := a.cfg.HashAlgo()
			keys := make(cacheKeys, 0, len(args))
			for _, raw := range args {
				entry, err := deriveKey(raw, algo, a.cfg.Punycode())
				if err != nil {
					a.recordError("CacheKey", err,
						metadata.NewAttr(metadata.AttrURL, raw),
						metadata.NewAttr(metadata.AttrAlgo, string(algo)),
					)
					return err
				}
				a.recordOperation("key", raw, metadata.NewAttr(metadata.AttrAlgo, string(algo)))
				keys = append(keys, entry)
			}
			return a.render(keys)
		},
	}
}

func deriveKey(raw string, algo hashutil.HashAlgo, punycode bool) (cacheKey, error) {
	u, err := uri.Parse(raw)
	if err != nil {
		return cacheKey{}, errors.Wrapf(err, "parse %q", raw)
	}
	canonical, err := urlutil.Canonicalize(u, punycode)
	if err != nil {
		return cacheKey{}, errors.Wrapf(err, "canonicalize %q", raw)
	}
	key, err := urlutil.CacheKey(u, algo, punycode)
	if err != nil {
		return cacheKey{}, err
	}
	return cacheKey{URL: u.String(), Canonical: canonical.String(), Key: key}, nil
}
