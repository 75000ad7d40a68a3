package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBuildInfo(t *testing.T, version, commit, date string) {
	t.Helper()
	v, c, d := Version, GitCommit, BuildDate
	t.Cleanup(func() { SetBuildInfo(v, c, d) })
	SetBuildInfo(version, commit, date)
}

func TestGetFormattedVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{name: "development build", version: "0.1.0", commit: "unknown", date: "unknown", want: "Zile v0.1.0"},
		{name: "release build", version: "1.2.3", commit: "abcdef123456", date: "2026-01-02", want: "Zile v1.2.3, commit abcdef1, built 2026-01-02"},
		{name: "invalid version", version: "not-semver", commit: "", date: "", want: "Zile vnot-semver (invalid version)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.version, tt.commit, tt.date)
			assert.Equal(t, tt.want, GetFormattedVersion())
		})
	}
}

func TestGetBaseVersion(t *testing.T) {
	withBuildInfo(t, "1.4.2-rc.1+42.deadbee", "unknown", "unknown")
	assert.Equal(t, "1.4.2", GetBaseVersion())
	assert.True(t, IsPrerelease())

	detailed := GetDetailedVersion()
	assert.True(t, strings.HasPrefix(detailed, "Zile v1.4.2-rc.1+42.deadbee\n"))
	assert.Contains(t, detailed, "Build Metadata: 42.deadbee")
}

func TestGetInfo(t *testing.T) {
	withBuildInfo(t, "0.3.0", "c0ffee", "2026-10-01")

	info, err := GetInfo()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), info.SemVer.Minor())
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
	assert.False(t, IsPrerelease())

	withBuildInfo(t, "bogus", "", "")
	_, err = GetInfo()
	assert.Error(t, err)
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		v1, v2  string
		want    int
		wantErr bool
	}{
		{v1: "1.0.0", v2: "1.0.1", want: -1},
		{v1: "2.0.0", v2: "2.0.0", want: 0},
		{v1: "2.1.0", v2: "2.0.9", want: 1},
		{v1: "x", v2: "1.0.0", wantErr: true},
		{v1: "1.0.0", v2: "y", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.v1+"_"+tt.v2, func(t *testing.T) {
			got, err := CompareVersions(tt.v1, tt.v2)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
