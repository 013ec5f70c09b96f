package build_test

import (
	"testing"

	"github.com/rohmanhakim/http-message/internal/build"
)

func TestFullVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{
			name:    "default values",
			version: "dev",
			commit:  "none",
			want:    "dev+none",
		},
		{
			name:    "version with commit",
			version: "1.0.0",
			commit:  "abc123",
			want:    "1.0.0+abc123",
		},
		{
			name:    "version with empty commit",
			version: "1.0.0",
			commit:  "",
			want:    "1.0.0+",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			build.Version = tt.version
			build.Commit = tt.commit

			got := build.FullVersion()
			if got != tt.want {
				t.Errorf("FullVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	build.Version = "1.2.3"
	build.Commit = "abc123"
	build.BuildTime = "2024-01-01T00:00:00Z"

	got := build.Info()
	want := build.BuildInfo{Version: "1.2.3", Commit: "abc123", BuildTime: "2024-01-01T00:00:00Z"}
	if got != want {
		t.Errorf("Info() = %+v, want %+v", got, want)
	}
}
