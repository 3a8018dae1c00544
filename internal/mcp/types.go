// Package mcp defines the JSON-RPC 2.0 wire types and MCP result
// shapes the stub serializes. The stub owns its wire bytes instead of
// delegating to an SDK: a conformance client asserts on exact error
// messages and id echoing, so the types here map one-to-one onto the
// documents that appear on the protocol stream.
package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// Version is the JSON-RPC protocol marker carried on every response.
const Version = "2.0"

// Method names understood by the dispatcher. Anything else maps to
// CodeMethodNotFound.
const (
	MethodInitialize  = "initialize"
	MethodInitialized = "notifications/initialized"
	MethodToolsList   = "tools/list"
	MethodToolsCall   = "tools/call"
)

// Reserved JSON-RPC error codes used by the stub.
const (
	CodeParseError     = -32700
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request represents a JSON-RPC 2.0 request. ID stays untyped: it is
// opaque to the server and echoed back verbatim. A nil ID marks a
// request that carried no id (or one that could not be parsed).
type Request struct {
	JSONRPC string          `json:"jsonrpc,omitempty"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response represents a JSON-RPC 2.0 response. The ID member is always
// serialized, as null when the originating request had none. Exactly
// one of Result and Error is set.
type Response struct {
	JSONRPC string         `json:"jsonrpc"`
	ID      interface{}    `json:"id"`
	Result  interface{}    `json:"result,omitempty"`
	Error   *ResponseError `json:"error,omitempty"`
}

// ResponseError represents a JSON-RPC 2.0 error object.
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewResult builds a success response echoing id.
func NewResult(id, result interface{}) *Response {
	return &Response{
		JSONRPC: Version,
		ID:      id,
		Result:  result,
	}
}

// NewError builds a failure response echoing id.
func NewError(id interface{}, code int, format string, args ...interface{}) *Response {
	return &Response{
		JSONRPC: Version,
		ID:      id,
		Error: &ResponseError{
			Code:    code,
			Message: fmt.Sprintf(format, args...),
		},
	}
}

// Tool is an MCP tool descriptor: immutable, defined once at startup.
type Tool struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

// CallToolParams carries the params object of a tools/call request.
// Arguments decode leniently; missing or wrong-typed fields fall back
// to per-tool defaults rather than failing the call.
type CallToolParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

// ContentItem is one entry of a tool result's content list.
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// CallToolResult is the uniform success shape of a tool invocation.
type CallToolResult struct {
	Content []ContentItem `json:"content"`
}

// TextResult wraps text in the single-item content shape every stub
// tool produces.
func TextResult(text string) *CallToolResult {
	return &CallToolResult{
		Content: []ContentItem{{Type: "text", Text: text}},
	}
}

// ListToolsResult is the result of tools/list.
type ListToolsResult struct {
	Tools []*Tool `json:"tools"`
}

// ServerInfo identifies the server in the initialize response.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ToolCapabilities is intentionally empty; it serializes as {} to
// advertise plain tool support.
type ToolCapabilities struct{}

// Capabilities always advertises tools and nothing else.
type Capabilities struct {
	Tools ToolCapabilities `json:"tools"`
}

// InitializeResult is the fixed payload of the initialize handshake.
type InitializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	Capabilities    Capabilities `json:"capabilities"`
	ServerInfo      ServerInfo   `json:"serverInfo"`
}
