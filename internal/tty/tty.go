// Package tty detects when the protocol streams are wired to an
// interactive terminal, so the stub can hint on stderr that it is
// waiting for line-delimited JSON-RPC rather than appearing hung.
package tty

import (
	"os"

	"golang.org/x/term"

	"github.com/githubnext/gh-aw-mcp-stub/internal/logger"
)

var logTTY = logger.New("tty:detect")

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	isTerm := term.IsTerminal(int(f.Fd()))
	logTTY.Printf("fd %d terminal=%v", f.Fd(), isTerm)
	return isTerm
}

// Interactive reports whether the protocol endpoints (stdin and
// stdout) are both terminals, i.e. the stub was launched by hand
// rather than by an MCP client.
func Interactive() bool {
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}
