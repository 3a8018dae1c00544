// Package integration exercises the built awms binary end to end:
// once over raw pipes asserting exact wire behavior, and once through
// the official MCP SDK client proving real-client interoperability.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	buildOnce sync.Once
	buildPath string
	buildErr  error
	buildLog  []byte
)

// buildBinary compiles the stub once per test run and returns its path.
func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping binary integration test in short mode")
	}

	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "awms-test")
		if err != nil {
			buildErr = err
			return
		}
		buildPath = filepath.Join(dir, "awms")

		cmd := exec.Command("go", "build", "-o", buildPath, ".")
		cmd.Dir = moduleRoot(t)
		buildLog, buildErr = cmd.CombinedOutput()
	})

	require.NoError(t, buildErr, "go build failed: %s", buildLog)
	return buildPath
}

// moduleRoot resolves the repository root relative to this package.
func moduleRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Dir(filepath.Dir(wd))
}
