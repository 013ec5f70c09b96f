package header

import "strings"

// commaHeaders holds the lowercased names of headers whose values carry
// commas of their own. Their values are joined with "\n" and every Add
// produces a separate entry.
var commaHeaders = map[string]struct{}{
	"cookie-set":         {},
	"www-authenticate":   {},
	"proxy-authenticate": {},
}

// environPrefix marks server variables that carry request headers.
const environPrefix = "HTTP_"

// IsCommaHeader reports whether name belongs to the comma-header set,
// ignoring case.
func IsCommaHeader(name string) bool {
	_, ok := commaHeaders[strings.ToLower(name)]
	return ok
}
