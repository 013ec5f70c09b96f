package uri

import (
	"strconv"
	"strings"
)

// Split breaks a URI reference into its raw components without applying any
// encoding or normalization. It fails with ErrParse when the authority is
// structurally broken and with ErrPortOutOfRange when the port digits fall
// outside 1-65535.
//
// The general form accepted is:
//
//	[scheme:][//[user[:pass]@]host[:port]]path[?query][#fragment]
func Split(raw string) (Parts, error) {
	var parts Parts
	rest := raw

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		parts.Fragment = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		parts.Query = rest[i+1:]
		rest = rest[:i]
	}

	if scheme, remainder, ok := cutScheme(rest); ok {
		parts.Scheme = scheme
		rest = remainder
	}

	if !strings.HasPrefix(rest, "//") {
		parts.Path = rest
		return parts, nil
	}

	authority := rest[2:]
	if i := strings.IndexByte(authority, '/'); i >= 0 {
		parts.Path = authority[i:]
		authority = authority[:i]
	}

	if authority == "" && !strings.EqualFold(parts.Scheme, "file") {
		return Parts{}, parseError(raw, "empty authority")
	}

	if err := splitAuthority(raw, authority, &parts); err != nil {
		return Parts{}, err
	}
	return parts, nil
}

// cutScheme returns the scheme in front of the first ':' when every byte
// before it is a scheme character.
func cutScheme(s string) (string, string, bool) {
	i := strings.IndexByte(s, ':')
	if i <= 0 {
		return "", s, false
	}
	for j := 0; j < i; j++ {
		if !isSchemeChar(s[j]) {
			return "", s, false
		}
	}
	return s[:i], s[i+1:], true
}

func isSchemeChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '+', c == '-', c == '.':
		return true
	}
	return false
}

func splitAuthority(raw string, authority string, parts *Parts) error {
	hostPort := authority
	if i := strings.LastIndexByte(authority, '@'); i >= 0 {
		userInfo := authority[:i]
		hostPort = authority[i+1:]
		user, pass, _ := strings.Cut(userInfo, ":")
		parts.User = user
		parts.Pass = pass
	}

	host, port := hostPort, ""
	if strings.HasPrefix(hostPort, "[") {
		end := strings.IndexByte(hostPort, ']')
		if end < 0 {
			return parseError(raw, "missing ']' in host")
		}
		host = hostPort[:end+1]
		after := hostPort[end+1:]
		if after != "" {
			if after[0] != ':' {
				return parseError(raw, "unexpected characters after host")
			}
			port = after[1:]
		}
	} else if i := strings.LastIndexByte(hostPort, ':'); i >= 0 {
		host = hostPort[:i]
		port = hostPort[i+1:]
		if strings.IndexByte(host, ':') >= 0 {
			return parseError(raw, "host must not contain ':'")
		}
	}
	parts.Host = host

	if port == "" {
		return nil
	}
	for i := 0; i < len(port); i++ {
		if port[i] < '0' || port[i] > '9' {
			return parseError(raw, "invalid port "+strconv.Quote(port))
		}
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < minPort || n > maxPort {
		return portError(port)
	}
	parts.Port = n
	return nil
}
