// Package urlutil derives canonical forms of URLs and the cache keys built
// from them.
package urlutil

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rohmanhakim/http-message/pkg/hashutil"
	"github.com/rohmanhakim/http-message/pkg/uri"
	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

var ErrInvalidHost = errors.New("invalid host")

// Canonicalize applies a deterministic normalization to a URL, producing a canonical form.
// It maps equivalent URL spellings to a single canonical representation.
//
// The normalization follows these rules:
//   - Scheme and host are lowercased (already guaranteed by uri.URL)
//   - Internationalized hosts are NFC-normalized and, when punycode is set,
//     converted to their ASCII form
//   - Dot segments are removed from the path
//   - An empty path under an authority becomes "/"
//   - Fragments are removed
//   - Default ports are omitted
//
// The query is kept untouched since pair order can be significant.
//
// Canonicalize(Canonicalize(u)) == Canonicalize(u).
func Canonicalize(sourceURL uri.URL, punycode bool) (uri.URL, error) {
	canonical, err := sourceURL.WithFragment("")
	if err != nil {
		return uri.URL{}, err
	}

	if canonical.IsDefaultPort() {
		if canonical, err = canonical.WithoutPort(); err != nil {
			return uri.URL{}, err
		}
	}

	host, err := canonicalHost(canonical.Host(), punycode)
	if err != nil {
		return uri.URL{}, err
	}
	if canonical, err = canonical.WithHost(host); err != nil {
		return uri.URL{}, err
	}

	path := uri.RemoveDotSegments(canonical.Path())
	if path == "" && canonical.Authority() != "" {
		path = "/"
	}
	return canonical.WithPath(path)
}

// CacheKey hashes the canonical form of u, so that equivalent spellings of a
// URL share one key.
func CacheKey(u uri.URL, algo hashutil.HashAlgo, punycode bool) (string, error) {
	canonical, err := Canonicalize(u, punycode)
	if err != nil {
		return "", err
	}
	return hashutil.HashString(canonical.String(), algo)
}

func canonicalHost(host string, punycode bool) (string, error) {
	if host == "" || strings.HasPrefix(host, "[") || isASCII(host) {
		return host, nil
	}

	host = norm.NFC.String(host)
	if !punycode {
		return host, nil
	}

	ascii, err := idna.ToASCII(host)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidHost, "%q: %v", host, err)
	}
	return ascii, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
