// Package server implements the stub's protocol loop: line-delimited
// JSON-RPC 2.0 read from an input stream, dispatched against the tool
// registry, and answered one JSON document per output line.
package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/githubnext/gh-aw-mcp-stub/internal/config"
	"github.com/githubnext/gh-aw-mcp-stub/internal/logger"
	"github.com/githubnext/gh-aw-mcp-stub/internal/mcp"
	"github.com/githubnext/gh-aw-mcp-stub/internal/stub"
)

var logStdio = logger.New("server:stdio")

// flusher is implemented by buffered writers that need an explicit
// flush for the peer to observe a response without delay.
type flusher interface {
	Flush() error
}

// Stdio serves the conformance protocol over a pair of byte streams.
// It holds no mutable state across requests; the registry and config
// are read-only after construction.
type Stdio struct {
	cfg *config.Config
	reg *stub.Registry
	in  io.Reader
	out io.Writer
}

// NewStdio wires the serve loop to the given streams. Production use
// passes os.Stdin and os.Stdout; tests pass in-memory buffers.
func NewStdio(cfg *config.Config, reg *stub.Registry, in io.Reader, out io.Writer) *Stdio {
	return &Stdio{cfg: cfg, reg: reg, in: in, out: out}
}

// Serve runs the read-dispatch-write cycle strictly sequentially: one
// request is fully handled and its response flushed before the next
// line is read. Lines are unbounded; a request line is never rejected
// for its size alone. Blank lines are skipped. End-of-stream
// terminates the loop cleanly; a cancelled context terminates it
// between lines without emitting further output.
func (s *Stdio) Serve(ctx context.Context) error {
	logStdio.Print("entering serve loop")

	reader := bufio.NewReader(s.in)
	for {
		select {
		case <-ctx.Done():
			logStdio.Print("context cancelled, abandoning loop")
			return ctx.Err()
		default:
		}

		raw, readErr := reader.ReadString('\n')
		if line := bytes.TrimSpace([]byte(raw)); len(line) > 0 {
			resp := s.dispatch(ctx, line)
			if resp == nil {
				// Notification: nothing goes on the wire.
				logger.LogRPCResponse(logger.DirectionOutbound, nil, nil)
			} else if err := s.write(resp); err != nil {
				return fmt.Errorf("write response: %w", err)
			}
		}

		if readErr == io.EOF {
			logStdio.Print("end of input stream, serve loop done")
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read request line: %w", readErr)
		}
	}
}

// write serializes one response as a single line and flushes so an
// incrementally-reading peer observes it immediately.
func (s *Stdio) write(resp *mcp.Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		// Response shapes are built from plain structs; this only
		// fires on a programming error.
		return fmt.Errorf("marshal response: %w", err)
	}
	logger.LogRPCResponse(logger.DirectionOutbound, data, nil)

	data = append(data, '\n')
	if _, err := s.out.Write(data); err != nil {
		return err
	}
	if f, ok := s.out.(flusher); ok {
		return f.Flush()
	}
	return nil
}
