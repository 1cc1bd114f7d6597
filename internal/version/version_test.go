package version_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appmodel/apphost/internal/version"
)

func TestGet(t *testing.T) {
	info := version.Get()
	assert.Equal(t, version.Version, info.Version)
	assert.Equal(t, version.GitCommit, info.GitCommit)
	assert.Equal(t, version.BuildDate, info.BuildDate)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestString(t *testing.T) {
	info := version.Info{Version: "v1.2.3", GitCommit: "abc123", BuildDate: "2026-01-01", GoVersion: "go1.25.0"}
	s := info.String()
	assert.Contains(t, s, "v1.2.3")
	assert.Contains(t, s, "abc123")
	assert.Contains(t, s, "2026-01-01")
	assert.Contains(t, s, "go1.25.0")
}
