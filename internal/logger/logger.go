// Package logger provides the stub's diagnostics channel.
//
// Everything here writes to stderr: the protocol stream on stdout must
// never carry anything except one JSON response per line, so stderr is
// the only place human-readable output may go. Startup and shutdown
// lines use the stdlib log package directly (which defaults to
// stderr); per-component debug loggers from New are silenced unless
// MCP_STUB_DEBUG is set, keeping the default stderr output down to the
// startup lines a conformance harness expects.
package logger

import (
	"io"
	"log"
	"os"
)

// DebugEnvVar enables per-component debug loggers when set to any
// non-empty value.
const DebugEnvVar = "MCP_STUB_DEBUG"

// New returns a debug logger scoped to one component, named
// "pkg:component" by convention. The returned logger discards output
// unless DebugEnvVar is set in the environment at the time of the
// call.
func New(component string) *log.Logger {
	var out io.Writer = io.Discard
	if os.Getenv(DebugEnvVar) != "" {
		out = os.Stderr
	}
	return log.New(out, "["+component+"] ", log.LstdFlags|log.Lmsgprefix)
}
