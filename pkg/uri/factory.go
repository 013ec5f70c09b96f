package uri

import "strings"

// FromParts builds a URL from raw components, applying the same filters and
// normalization as Parse.
func FromParts(parts Parts) (URL, error) {
	return URL{}.applyParts(parts)
}

// Compose concatenates the components into a reference string and parses
// it. "//" precedes the authority when the authority is non-empty or the
// scheme is "file".
func Compose(scheme, authority, path, query, fragment string) (URL, error) {
	var b strings.Builder
	if scheme != "" {
		b.WriteString(scheme)
		b.WriteByte(':')
	}
	if authority != "" || scheme == "file" {
		b.WriteString("//")
		b.WriteString(authority)
	}
	b.WriteString(path)
	if query != "" {
		b.WriteByte('?')
		b.WriteString(query)
	}
	if fragment != "" {
		b.WriteByte('#')
		b.WriteString(fragment)
	}
	return Parse(b.String())
}
