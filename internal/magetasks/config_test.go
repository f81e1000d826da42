package magetasks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tmpDir := t.TempDir()
	testChdir(t, tmpDir)

	require.NoError(t, Initialize())
	assert.DirExists(t, filepath.Join(tmpDir, "bin"))

	expectedRoot, _ := filepath.EvalSymlinks(tmpDir)
	actualRoot, _ := filepath.EvalSymlinks(ProjectRoot)
	assert.Equal(t, expectedRoot, actualRoot)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "github.com/dkoosis/nreport", ModulePath)
	assert.Equal(t, "./bin/nreport", BinPath)
	assert.Equal(t, "./cmd/nreport", MainPackage)
}

func TestLdflags(t *testing.T) {
	got := ldflags("v1.0.0", "abc123", "2026-01-02T03:04:05Z")
	assert.Contains(t, got, "-X 'github.com/dkoosis/nreport/internal/version.Version=v1.0.0'")
	assert.Contains(t, got, "-X 'github.com/dkoosis/nreport/internal/version.CommitHash=abc123'")
	assert.Contains(t, got, "-X 'github.com/dkoosis/nreport/internal/version.BuildDate=2026-01-02T03:04:05Z'")
}

// testChdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it
// changes the working directory and PWD, restoring both on cleanup.
func testChdir(t *testing.T, dir string) {
	t.Helper()
	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
	t.Setenv("PWD", abs)
}
