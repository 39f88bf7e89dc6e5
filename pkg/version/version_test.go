package version

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withReleasesServer(t *testing.T, status int, body string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	original := ReleasesURL
	ReleasesURL = srv.URL
	t.Cleanup(func() { ReleasesURL = original })
}

func TestLatestVersion(t *testing.T) {
	tests := []struct {
		name    string
		current string
		status  int
		body    string
		want    string
		wantOK  bool
	}{
		{"newer release", "1.0.0", http.StatusOK, `{"tag_name":"v1.2.0"}`, "1.2.0", true},
		{"same release", "1.2.0", http.StatusOK, `{"tag_name":"v1.2.0"}`, "", false},
		{"dev build skipped", "0.0.0-dev", http.StatusOK, `{"tag_name":"v9.9.9"}`, "", false},
		{"server error", "1.0.0", http.StatusInternalServerError, ``, "", false},
		{"bad body", "1.0.0", http.StatusOK, `{`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withReleasesServer(t, tt.status, tt.body)
			got, ok := LatestVersion(tt.current, http.DefaultClient)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatVersion(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = origVersion, origCommit, origBuild })

	Version, Commit, BuildTime = "1.2.3", "", ""
	assert.Equal(t, "1.2.3 (development)", FormatVersion())

	Commit = "abc1234"
	assert.Equal(t, "1.2.3 (commit: abc1234)", FormatVersion())

	BuildTime = "2026-10-19T10:00:00Z"
	assert.Equal(t, "1.2.3 (commit: abc1234, built at: 2026-10-19T10:00:00Z)", FormatVersion())
}
