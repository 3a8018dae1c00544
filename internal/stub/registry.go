// Package stub holds the tool registry and the fixed tool set the
// conformance server exposes. The registry is static configuration:
// built once at process start, read-only afterwards.
package stub

import (
	"context"

	"github.com/githubnext/gh-aw-mcp-stub/internal/mcp"
)

// Handler executes one tool call. Arguments arrive as the decoded
// params.arguments object; handlers must treat missing or wrong-typed
// fields as their documented defaults. A returned error surfaces to
// the client as an internal-error failure.
type Handler func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error)

type entry struct {
	tool    *mcp.Tool
	handler Handler
}

// Registry maps tool names to descriptors and handlers, preserving
// registration order for enumeration. It is not safe for concurrent
// mutation; register everything before serving.
type Registry struct {
	order  []string
	byName map[string]entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]entry)}
}

// Register adds a tool. Re-registering a name replaces the handler and
// descriptor but keeps the original enumeration position.
func (r *Registry) Register(tool *mcp.Tool, handler Handler) {
	if _, exists := r.byName[tool.Name]; !exists {
		r.order = append(r.order, tool.Name)
	}
	r.byName[tool.Name] = entry{tool: tool, handler: handler}
}

// Tools returns all descriptors in registration order.
func (r *Registry) Tools() []*mcp.Tool {
	tools := make([]*mcp.Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.byName[name].tool)
	}
	return tools
}

// Lookup resolves a tool name to its handler.
func (r *Registry) Lookup(name string) (Handler, bool) {
	e, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return e.handler, true
}

// Len reports the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}
