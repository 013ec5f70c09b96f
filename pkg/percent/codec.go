// Package percent implements the RFC 3986 percent-encoding rules used by the
// URI components: characters outside the unreserved set, the sub-delimiters
// and a per-component extra set are escaped byte by byte, while escapes that
// are already valid pass through untouched.
package percent

import "strings"

// Encode escapes every byte of raw that is neither unreserved, a
// sub-delimiter, nor contained in allowedExtra. A '%' that starts a valid
// "%XX" escape is kept as is; any other '%' becomes "%25".
func Encode(raw string, allowedExtra string) string {
	if !needsEncoding(raw, allowedExtra) {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw) + 2*countEncoded(raw, allowedExtra))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '%' {
			if isEscape(raw, i) {
				b.WriteString(raw[i : i+3])
				i += 2
				continue
			}
			b.WriteString("%25")
			continue
		}
		if allowed(c, allowedExtra) {
			b.WriteByte(c)
			continue
		}
		writeEscaped(&b, c)
	}
	return b.String()
}

// EncodePath applies the path rules: ':', '@' and '/' stay literal, '?' and
// '#' are escaped.
func EncodePath(path string) string {
	return Encode(path, PathExtra)
}

// EncodeQuery applies the query rules, which additionally allow a literal '?'.
func EncodeQuery(query string) string {
	return Encode(query, QueryExtra)
}

func EncodeFragment(fragment string) string {
	return Encode(fragment, FragmentExtra)
}

func EncodeUserInfo(userInfo string) string {
	return Encode(userInfo, UserInfoExtra)
}

// Decode turns every valid "%XX" escape into its byte. Invalid escapes are
// left untouched and '+' is not treated specially.
func Decode(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && isEscape(s, i) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// EncodeForm escapes s the way application/x-www-form-urlencoded does:
// only unreserved characters stay literal and a space becomes '+'.
func EncodeForm(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isUnreserved(c):
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			writeEscaped(&b, c)
		}
	}
	return b.String()
}

// DecodeForm is the inverse of EncodeForm: '+' becomes a space before the
// escapes are decoded.
func DecodeForm(s string) string {
	return Decode(strings.ReplaceAll(s, "+", " "))
}

func allowed(c byte, allowedExtra string) bool {
	return isUnreserved(c) || isSubDelim(c) || strings.IndexByte(allowedExtra, c) >= 0
}

func isEscape(s string, i int) bool {
	return i+2 < len(s) && s[i] == '%' && isHex(s[i+1]) && isHex(s[i+2])
}

func needsEncoding(raw string, allowedExtra string) bool {
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '%' {
			if !isEscape(raw, i) {
				return true
			}
			i += 2
			continue
		}
		if !allowed(c, allowedExtra) {
			return true
		}
	}
	return false
}

func countEncoded(raw string, allowedExtra string) int {
	n := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] != '%' && !allowed(raw[i], allowedExtra) {
			n++
		}
	}
	return n
}

func writeEscaped(b *strings.Builder, c byte) {
	b.WriteByte('%')
	b.WriteByte(upperhex[c>>4])
	b.WriteByte(upperhex[c&15])
}
