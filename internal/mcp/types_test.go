package mcp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResponseSerialization_IDAlwaysPresent verifies the id member is
// serialized even when the originating request carried no id.
func TestResponseSerialization_IDAlwaysPresent(t *testing.T) {
	resp := NewError(nil, CodeParseError, "Parse error: bad input")

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	id, present := decoded["id"]
	assert.True(t, present, "id member must be serialized")
	assert.Nil(t, id, "absent request id must serialize as null")
	assert.Equal(t, "2.0", decoded["jsonrpc"])
}

// TestResponseSerialization_ExactlyOneOfResultError checks the tagged
// union property on the wire.
func TestResponseSerialization_ExactlyOneOfResultError(t *testing.T) {
	tests := []struct {
		name       string
		resp       *Response
		wantResult bool
		wantError  bool
	}{
		{
			name:       "Success",
			resp:       NewResult(1, TextResult("ok")),
			wantResult: true,
		},
		{
			name:      "Failure",
			resp:      NewError(1, CodeInternalError, "Internal error: boom"),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.resp)
			require.NoError(t, err)

			var decoded map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &decoded))

			_, hasResult := decoded["result"]
			_, hasError := decoded["error"]
			assert.Equal(t, tt.wantResult, hasResult)
			assert.Equal(t, tt.wantError, hasError)
		})
	}
}

// TestNewError_MessageFormatting verifies details are interpolated into
// the fixed message shapes.
func TestNewError_MessageFormatting(t *testing.T) {
	resp := NewError("req-9", CodeMethodNotFound, "Method not found: %s", "tools/badmethod")

	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeMethodNotFound, resp.Error.Code)
	assert.Equal(t, "Method not found: tools/badmethod", resp.Error.Message)
	assert.Equal(t, "req-9", resp.ID)
}

// TestCapabilities_EmptyToolsObject pins the {"tools":{}} shape the
// initialize handshake advertises.
func TestCapabilities_EmptyToolsObject(t *testing.T) {
	data, err := json.Marshal(Capabilities{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tools":{}}`, string(data))
}

// TestRequest_OpaqueIDRoundTrip verifies ids of any JSON type survive
// decode and re-encode untouched.
func TestRequest_OpaqueIDRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		line string
		want interface{}
	}{
		{name: "Number", line: `{"method":"initialize","id":7}`, want: float64(7)},
		{name: "String", line: `{"method":"initialize","id":"abc"}`, want: "abc"},
		{name: "Null", line: `{"method":"initialize","id":null}`, want: nil},
		{name: "Absent", line: `{"method":"initialize"}`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req Request
			require.NoError(t, json.Unmarshal([]byte(tt.line), &req))
			assert.Equal(t, tt.want, req.ID)
		})
	}
}
