package stub

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/githubnext/gh-aw-mcp-stub/internal/mcp"
)

// Default builds the registry with the four fixed conformance tools,
// in their canonical enumeration order.
func Default() *Registry {
	r := NewRegistry()
	r.Register(echoTool(), handleEcho)
	r.Register(addTool(), handleAdd)
	r.Register(environmentTool(), handleEnvironment)
	r.Register(failTool(), handleFail)
	return r
}

func echoTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "echo",
		Description: "Echoes back the input text",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"text": {Type: "string", Description: "Text to echo back"},
			},
			Required: []string{"text"},
		},
	}
}

func handleEcho(_ context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	return mcp.TextResult("Echo: " + stringArg(args, "text")), nil
}

func addTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add",
		Description: "Adds two numbers together",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"a": {Type: "number", Description: "First number"},
				"b": {Type: "number", Description: "Second number"},
			},
			Required: []string{"a", "b"},
		},
	}
}

func handleAdd(_ context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	a := numberArg(args, "a")
	b := numberArg(args, "b")
	text := fmt.Sprintf("%s + %s = %s",
		formatNumber(a), formatNumber(b), formatNumber(a+b))
	return mcp.TextResult(text), nil
}

func environmentTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "environment",
		Description: "Returns environment variable value",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"var": {Type: "string", Description: "Environment variable name"},
			},
			Required: []string{"var"},
		},
	}
}

func handleEnvironment(_ context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	name := stringArg(args, "var")
	value, ok := os.LookupEnv(name)
	if !ok {
		return mcp.TextResult(fmt.Sprintf("Environment variable '%s' not found", name)), nil
	}
	return mcp.TextResult(name + "=" + value), nil
}

func failTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "fail",
		Description: "Always fails for testing error handling",
		InputSchema: &jsonschema.Schema{
			Type:       "object",
			Properties: map[string]*jsonschema.Schema{},
		},
	}
}

// errAlwaysFails exercises the internal-error path end to end; the
// message is part of the conformance surface, capitalization included.
//
//nolint:staticcheck // ST1005: clients assert on this exact string
var errAlwaysFails = errors.New("This tool always fails")

func handleFail(_ context.Context, _ map[string]interface{}) (*mcp.CallToolResult, error) {
	return nil, errAlwaysFails
}

// stringArg reads a string argument, defaulting to "" when the key is
// missing or holds a non-string value.
func stringArg(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

// numberArg reads a numeric argument, defaulting to 0. JSON numbers
// decode as float64.
func numberArg(args map[string]interface{}, key string) float64 {
	n, _ := args[key].(float64)
	return n
}

// formatNumber renders the shortest decimal form that round-trips, so
// integral inputs print without a fractional part: 5, not 5.000000.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
