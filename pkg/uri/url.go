// Package uri provides an immutable URI value modeled after PSR-7 and the
// RFC 3986 reference grammar, together with dot-segment removal and
// reference resolution.
package uri

import (
	"strconv"
	"strings"

	"github.com/rohmanhakim/http-message/pkg/percent"
)

// URL is an immutable URI reference. The zero value is the empty reference.
//
// Every With* method returns a fresh copy and never alters the receiver, so a
// URL can be shared freely between goroutines.
type URL struct {
	scheme   string
	userInfo string
	host     string
	port     int // 0 when not set
	path     string
	query    string
	fragment string
}

// Parse splits raw into components, filters each one and normalizes the
// result. Parse(s).String() == s for every s already in normal form.
func Parse(raw string) (URL, error) {
	parts, err := Split(raw)
	if err != nil {
		return URL{}, err
	}
	return FromParts(parts)
}

// MustParse is like Parse but panics on error. It is meant for literals in
// tests and package-level variables.
func MustParse(raw string) URL {
	u, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}

func (u URL) applyParts(parts Parts) (URL, error) {
	port, err := filterPort(parts.Port, parts.Port != 0)
	if err != nil {
		return URL{}, err
	}
	u.scheme = filterScheme(parts.Scheme)
	u.userInfo = filterUserInfo(parts.User, parts.Pass)
	u.host = filterHost(parts.Host)
	u.port = port
	u.path = percent.EncodePath(parts.Path)
	u.query = percent.EncodeQuery(parts.Query)
	u.fragment = percent.EncodeFragment(parts.Fragment)
	return u.normalize()
}

// String reconstructs the reference from its components.
func (u URL) String() string {
	var b strings.Builder
	if u.scheme != "" {
		b.WriteString(u.scheme)
		b.WriteByte(':')
	}

	authority := u.Authority()
	if authority != "" || u.scheme == "file" {
		b.WriteString("//")
		b.WriteString(authority)
	}

	b.WriteString(u.path)

	if u.query != "" {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	if u.fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}
	return b.String()
}

func (u URL) Scheme() string {
	return u.scheme
}

// Authority returns "[userinfo@]host[:port]", leaving the port out when it
// is the scheme's default.
func (u URL) Authority() string {
	var b strings.Builder
	if u.userInfo != "" {
		b.WriteString(u.userInfo)
		b.WriteByte('@')
	}
	b.WriteString(u.host)
	if !u.IsDefaultPort() {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(u.port))
	}
	return b.String()
}

func (u URL) UserInfo() string {
	return u.userInfo
}

func (u URL) Host() string {
	return u.host
}

// Port returns the explicit port. ok is false when no port is set or the
// port equals the scheme's default.
func (u URL) Port() (port int, ok bool) {
	if u.IsDefaultPort() {
		return 0, false
	}
	return u.port, true
}

func (u URL) Path() string {
	return u.path
}

// Query returns the encoded query without the leading '?'.
func (u URL) Query() string {
	return u.query
}

// Fragment returns the encoded fragment without the leading '#'.
func (u URL) Fragment() string {
	return u.fragment
}

// IsDefaultPort reports whether the port is unset or matches the default
// port of the scheme.
func (u URL) IsDefaultPort() bool {
	if u.port == 0 {
		return true
	}
	def, ok := defaultPorts[u.scheme]
	return ok && def == u.port
}

func (u URL) WithScheme(scheme string) (URL, error) {
	u.scheme = filterScheme(scheme)
	return u.normalize()
}

// WithUserInfo replaces the user information. The password is only kept
// when non-empty.
func (u URL) WithUserInfo(user string, password string) (URL, error) {
	u.userInfo = filterUserInfo(user, password)
	return u.normalize()
}

func (u URL) WithHost(host string) (URL, error) {
	u.host = filterHost(host)
	return u.normalize()
}

// WithPort sets an explicit port, failing with ErrPortOutOfRange outside
// 1-65535.
func (u URL) WithPort(port int) (URL, error) {
	p, err := filterPort(port, true)
	if err != nil {
		return URL{}, err
	}
	u.port = p
	return u.normalize()
}

// WithoutPort clears the explicit port.
func (u URL) WithoutPort() (URL, error) {
	u.port = 0
	return u.normalize()
}

func (u URL) WithPath(path string) (URL, error) {
	u.path = percent.EncodePath(path)
	return u.normalize()
}

func (u URL) WithQuery(query string) (URL, error) {
	u.query = percent.EncodeQuery(query)
	return u.normalize()
}

func (u URL) WithFragment(fragment string) (URL, error) {
	u.fragment = percent.EncodeFragment(fragment)
	return u.normalize()
}

func (u URL) IsAbsolute() bool {
	return u.scheme != ""
}

func (u URL) IsNetworkPathReference() bool {
	return u.scheme == "" && u.Authority() != ""
}

func (u URL) IsAbsolutePathReference() bool {
	return u.scheme == "" && u.Authority() == "" && strings.HasPrefix(u.path, "/")
}

func (u URL) IsRelativePathReference() bool {
	return u.scheme == "" && u.Authority() == "" && !strings.HasPrefix(u.path, "/")
}

// IsSameDocumentReference reports whether u only carries a fragment, or
// nothing at all.
func (u URL) IsSameDocumentReference() bool {
	return u.scheme == "" && u.Authority() == "" && u.path == "" && u.query == ""
}

// IsSameDocumentReferenceTo resolves u against base and reports whether the
// target differs from base in its fragment at most.
func (u URL) IsSameDocumentReferenceTo(base URL) (bool, error) {
	resolved, err := Resolve(base, u)
	if err != nil {
		return false, err
	}
	return resolved.scheme == base.scheme &&
		resolved.Authority() == base.Authority() &&
		resolved.path == base.path &&
		resolved.query == base.query, nil
}

// normalize applies the invariants every URL must hold after construction
// or mutation. It works on a copy, so a failure leaves the caller's value
// intact.
func (u URL) normalize() (URL, error) {
	if u.host == "" && strings.HasPrefix(u.scheme, "http") {
		u.host = DefaultHost
	}

	if u.Authority() == "" {
		if strings.HasPrefix(u.path, "//") {
			return URL{}, relativeError(u.path,
				`the path of a URI without an authority must not start with two slashes "//"`)
		}
		firstSegment, _, _ := strings.Cut(u.path, "/")
		if u.scheme == "" && strings.IndexByte(firstSegment, ':') >= 0 {
			return URL{}, relativeError(u.path,
				"a relative URI must not have a path beginning with a segment containing a colon")
		}
		return u, nil
	}

	if u.path != "" && u.path[0] != '/' {
		u.path = "/" + u.path
	}
	return u, nil
}

func filterScheme(scheme string) string {
	return strings.ToLower(scheme)
}

func filterHost(host string) string {
	return strings.ToLower(host)
}

func filterUserInfo(user string, password string) string {
	userInfo := percent.EncodeUserInfo(user)
	if password != "" {
		userInfo += ":" + percent.EncodeUserInfo(password)
	}
	return userInfo
}

func filterPort(port int, set bool) (int, error) {
	if !set {
		return 0, nil
	}
	if port < minPort || port > maxPort {
		return 0, portError(strconv.Itoa(port))
	}
	return port, nil
}
