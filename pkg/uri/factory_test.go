package uri_test

import (
	"testing"

	"github.com/rohmanhakim/http-message/pkg/uri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromParts(t *testing.T) {
	u, err := uri.FromParts(uri.Parts{
		Scheme: "HTTP",
		User:   "john doe",
		Pass:   "s3cr:t",
		Host:   "Example.COM",
		Port:   80,
		Path:   "a b",
		Query:  "q=1",
	})
	require.NoError(t, err)

	assert.Equal(t, "http", u.Scheme())
	assert.Equal(t, "john%20doe:s3cr:t", u.UserInfo())
	assert.Equal(t, "example.com", u.Host())
	_, ok := u.Port()
	assert.False(t, ok)
	assert.Equal(t, "/a%20b", u.Path())
	assert.Equal(t, "http://john%20doe:s3cr:t@example.com/a%20b?q=1", u.String())
}

func TestFromParts_PortOutOfRange(t *testing.T) {
	_, err := uri.FromParts(uri.Parts{Host: "example.com", Port: 70000})
	assert.ErrorIs(t, err, uri.ErrPortOutOfRange)
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name                                       string
		scheme, authority, path, query, fragment   string
		want                                       string
	}{
		{
			name:   "full",
			scheme: "https", authority: "user@example.com:8443", path: "/p", query: "a=1", fragment: "f",
			want: "https://user@example.com:8443/p?a=1#f",
		},
		{
			name:   "file without authority",
			scheme: "file", path: "/etc/hosts",
			want: "file:///etc/hosts",
		},
		{
			name: "relative path only",
			path: "rel/path",
			want: "rel/path",
		},
		{
			name:  "query only",
			query: "x=y",
			want:  "?x=y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := uri.Compose(tt.scheme, tt.authority, tt.path, tt.query, tt.fragment)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestCompose_InvalidAuthority(t *testing.T) {
	_, err := uri.Compose("http", "host:with:colon", "/", "", "")
	assert.ErrorIs(t, err, uri.ErrParse)
}

func TestDefaultPort(t *testing.T) {
	port, ok := uri.DefaultPort("https")
	assert.True(t, ok)
	assert.Equal(t, 443, port)

	_, ok = uri.DefaultPort("HTTPS")
	assert.False(t, ok)

	_, ok = uri.DefaultPort("urn")
	assert.False(t, ok)
}
