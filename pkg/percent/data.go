package percent

// Allowed-extra character sets per URI component. Unreserved characters and
// sub-delimiters are always allowed on top of these.
const (
	PathExtra     = ":@/"
	QueryExtra    = ":@/?"
	FragmentExtra = QueryExtra
	UserInfoExtra = ":"
)

const upperhex = "0123456789ABCDEF"

// isUnreserved reports whether c is in A-Za-z0-9_.~-
func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_', c == '.', c == '~', c == '-':
		return true
	}
	return false
}

// isSubDelim reports whether c is in !$&'()*+,;=
func isSubDelim(c byte) bool {
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
