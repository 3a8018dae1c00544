package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/githubnext/gh-aw-mcp-stub/internal/cmd"
)

func main() {
	cmd.SetVersion(buildVersionString())
	cmd.Execute()
}

const shortHashLength = 7 // Length for short git commit hash

// buildVersionString constructs a detailed version string with build metadata
func buildVersionString() string {
	parts := []string{Version}

	if GitCommit != "" {
		parts = append(parts, fmt.Sprintf("commit: %s", GitCommit))
	} else if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range buildInfo.Settings {
			if setting.Key == "vcs.revision" {
				commitHash := setting.Value
				if len(commitHash) > shortHashLength {
					commitHash = commitHash[:shortHashLength]
				}
				parts = append(parts, fmt.Sprintf("commit: %s", commitHash))
				break
			}
		}
	}

	if BuildDate != "" {
		parts = append(parts, fmt.Sprintf("built: %s", BuildDate))
	}

	return strings.Join(parts, ", ")
}
