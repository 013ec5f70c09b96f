package uri

import (
	"strings"

	"github.com/rohmanhakim/http-message/pkg/percent"
	"github.com/rohmanhakim/http-message/pkg/query"
)

// queryDelimiters escapes the bytes that would otherwise be read as pair or
// key/value separators when a raw key or value is inserted into a query.
var queryDelimiters = strings.NewReplacer("=", "%3D", "&", "%26", "^", "%5E")

// WithQueryValue drops every pair whose decoded key equals the decoded key
// and appends "key=value". Delimiters inside key and value are escaped;
// existing escapes are not doubled.
//
// Keys are compared after percent-decoding only, so "a%26b" and "a&b" name
// the same pair even though the latter splits into two pairs when written
// raw into a query. This mirrors the long-standing behavior callers rely on.
func (u URL) WithQueryValue(key string, value string) (URL, error) {
	return u.withQueryPair(key, value, true)
}

// WithQueryKey is WithQueryValue for a bare key without '='.
func (u URL) WithQueryKey(key string) (URL, error) {
	return u.withQueryPair(key, "", false)
}

// WithoutQueryValue removes every pair whose decoded key matches, keeping
// the order of the remaining pairs.
func (u URL) WithoutQueryValue(key string) (URL, error) {
	return u.WithQuery(strings.Join(u.pairsWithoutKey(key), "&"))
}

// QueryValue returns the first decoded value stored under key, understanding
// the "key[]" convention for repeated keys.
func (u URL) QueryValue(key string) (string, bool) {
	return query.Parse(u.query).Get(key)
}

// QueryValues returns every decoded value stored under key.
func (u URL) QueryValues(key string) []string {
	return query.Parse(u.query).GetAll(key)
}

func (u URL) withQueryPair(key string, value string, hasValue bool) (URL, error) {
	var pairs []string
	if u.query != "" {
		pairs = u.pairsWithoutKey(key)
	}

	pair := queryDelimiters.Replace(key)
	if hasValue {
		pair += "=" + queryDelimiters.Replace(value)
	}
	pairs = append(pairs, pair)

	return u.WithQuery(strings.Join(pairs, "&"))
}

func (u URL) pairsWithoutKey(key string) []string {
	decodedKey := percent.Decode(key)
	var kept []string
	for _, pair := range strings.Split(u.query, "&") {
		name, _, _ := strings.Cut(pair, "=")
		if percent.Decode(name) != decodedKey {
			kept = append(kept, pair)
		}
	}
	return kept
}
