package server

import (
	"context"
	"encoding/json"

	"github.com/githubnext/gh-aw-mcp-stub/internal/logger"
	"github.com/githubnext/gh-aw-mcp-stub/internal/mcp"
)

var logDispatch = logger.New("server:dispatch")

// dispatch handles one request line and returns the response to emit,
// or nil for a notification. It never lets a failure escape: parse
// failures, unknown methods, unknown tools, and tool errors all map to
// well-formed failure responses, and a panic anywhere below is
// converted to the internal-error shape so the loop keeps running.
func (s *Stdio) dispatch(ctx context.Context, line []byte) (resp *mcp.Response) {
	var req mcp.Request
	if err := json.Unmarshal(line, &req); err != nil {
		logger.LogRPCRequest(logger.DirectionInbound, "", line)
		logDispatch.Printf("unparseable line: %v", err)
		return mcp.NewError(nil, mcp.CodeParseError, "Parse error: %v", err)
	}
	logger.LogRPCRequest(logger.DirectionInbound, req.Method, line)

	defer func() {
		if r := recover(); r != nil {
			logDispatch.Printf("recovered panic in %q handler: %v", req.Method, r)
			resp = mcp.NewError(req.ID, mcp.CodeInternalError, "Internal error: %v", r)
		}
	}()

	switch req.Method {
	case mcp.MethodInitialize:
		return s.handleInitialize(req)
	case mcp.MethodInitialized:
		// Notification: acknowledged with silence.
		logDispatch.Print("initialized notification received")
		return nil
	case mcp.MethodToolsList:
		return mcp.NewResult(req.ID, &mcp.ListToolsResult{Tools: s.reg.Tools()})
	case mcp.MethodToolsCall:
		return s.handleToolsCall(ctx, req)
	default:
		return mcp.NewError(req.ID, mcp.CodeMethodNotFound, "Method not found: %s", req.Method)
	}
}

// handleInitialize answers the handshake with fixed configuration
// values. Ordering is not enforced: initialize is valid at any time,
// any number of times, and conformance clients rely on that
// permissiveness.
func (s *Stdio) handleInitialize(req mcp.Request) *mcp.Response {
	logDispatch.Printf("handling initialize, id=%v", req.ID)
	return mcp.NewResult(req.ID, &mcp.InitializeResult{
		ProtocolVersion: s.cfg.ProtocolVersion,
		Capabilities:    mcp.Capabilities{},
		ServerInfo: mcp.ServerInfo{
			Name:    s.cfg.ServerName,
			Version: s.cfg.ServerVersion,
		},
	})
}

// handleToolsCall resolves params.name against the registry and runs
// the tool. Params decode leniently: a malformed params object yields
// the zero value, which then reports an unknown (empty) tool name
// rather than a decode failure.
func (s *Stdio) handleToolsCall(ctx context.Context, req mcp.Request) *mcp.Response {
	var params mcp.CallToolParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			logDispatch.Printf("ignoring malformed tools/call params: %v", err)
		}
	}

	handler, ok := s.reg.Lookup(params.Name)
	if !ok {
		return mcp.NewError(req.ID, mcp.CodeInvalidParams, "Unknown tool: %s", params.Name)
	}

	args := params.Arguments
	if args == nil {
		args = map[string]interface{}{}
	}

	logDispatch.Printf("invoking tool %q, id=%v", params.Name, req.ID)
	result, err := handler(ctx, args)
	if err != nil {
		return mcp.NewError(req.ID, mcp.CodeInternalError, "Internal error: %v", err)
	}
	return mcp.NewResult(req.ID, result)
}
