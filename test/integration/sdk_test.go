package integration

import (
	"context"
	"os/exec"
	"testing"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connectSDK spawns the stub and completes the initialize handshake
// with the official MCP client, the same way a real client would.
func connectSDK(t *testing.T) *sdk.ClientSession {
	t.Helper()
	binary := buildBinary(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)

	client := sdk.NewClient(&sdk.Implementation{
		Name:    "awms-conformance-client",
		Version: "dev",
	}, nil)

	cmd := exec.CommandContext(ctx, binary)
	session, err := client.Connect(ctx, &sdk.CommandTransport{Command: cmd}, nil)
	require.NoError(t, err, "official SDK client must complete the handshake")
	t.Cleanup(func() { session.Close() })

	return session
}

func TestSDKClient_ListTools(t *testing.T) {
	session := connectSDK(t)
	ctx := context.Background()

	result, err := session.ListTools(ctx, &sdk.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, result.Tools, 4)

	var names []string
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description)
		assert.NotNil(t, tool.InputSchema)
	}
	assert.Equal(t, []string{"echo", "add", "environment", "fail"}, names)
}

func TestSDKClient_CallTools(t *testing.T) {
	session := connectSDK(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		tool      string
		arguments map[string]interface{}
		want      string
	}{
		{name: "Echo", tool: "echo", arguments: map[string]interface{}{"text": "hi"}, want: "Echo: hi"},
		{name: "Add", tool: "add", arguments: map[string]interface{}{"a": 2, "b": 3}, want: "2 + 3 = 5"},
		{name: "EnvironmentUnset", tool: "environment", arguments: map[string]interface{}{"var": "DOES_NOT_EXIST_XYZ"},
			want: "Environment variable 'DOES_NOT_EXIST_XYZ' not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := session.CallTool(ctx, &sdk.CallToolParams{
				Name:      tt.tool,
				Arguments: tt.arguments,
			})
			require.NoError(t, err)
			require.Len(t, result.Content, 1)

			text, ok := result.Content[0].(*sdk.TextContent)
			require.True(t, ok, "content must be text")
			assert.Equal(t, tt.want, text.Text)
		})
	}
}

func TestSDKClient_FailToolSurfacesAsError(t *testing.T) {
	session := connectSDK(t)

	_, err := session.CallTool(context.Background(), &sdk.CallToolParams{
		Name:      "fail",
		Arguments: map[string]interface{}{},
	})
	require.Error(t, err, "the fail tool must never succeed")
	assert.Contains(t, err.Error(), "This tool always fails")
}

func TestSDKClient_UnknownToolSurfacesAsError(t *testing.T) {
	session := connectSDK(t)

	_, err := session.CallTool(context.Background(), &sdk.CallToolParams{
		Name: "nonexistent",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown tool: nonexistent")
}
