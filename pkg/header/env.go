package header

import "strings"

// FromEnvironment collects request headers from CGI-style server variables.
// Only keys starting with "HTTP_" are kept; the prefix is stripped, the rest
// upper-cased and underscores become hyphens, so HTTP_ACCEPT_LANGUAGE turns
// into ACCEPT-LANGUAGE. Keys are visited in sorted order.
func FromEnvironment(env map[string]string) Headers {
	var h Headers
	for _, key := range sortedKeys(env) {
		name, ok := strings.CutPrefix(key, environPrefix)
		if !ok || name == "" {
			continue
		}
		h.Add(strings.ToUpper(name), env[key])
	}
	return h
}

// FromEnviron is FromEnvironment for "KEY=value" entries as returned by
// os.Environ. Entries without '=' are ignored and later duplicates win.
func FromEnviron(environ []string) Headers {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		env[key] = value
	}
	return FromEnvironment(env)
}
