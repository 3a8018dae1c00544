package logger

// RPC message logging for the protocol loop. One compact line per
// request and per response, grep-friendly, with the payload truncated
// so a pathological input cannot flood the diagnostics channel.

// Direction tags whether a message arrived on stdin or left on stdout.
type Direction string

const (
	// DirectionInbound marks requests read from the input stream.
	DirectionInbound Direction = "IN"
	// DirectionOutbound marks responses written to the output stream.
	DirectionOutbound Direction = "OUT"
)

// MaxPayloadPreview is the maximum number of payload bytes included in
// an RPC log line.
const MaxPayloadPreview = 2048

var rpcLog = New("rpc")

// LogRPCRequest records an inbound request line. method may be empty
// when the line did not parse.
func LogRPCRequest(dir Direction, method string, payload []byte) {
	rpcLog.Printf("%s REQUEST method=%s size=%d payload=%s",
		dir, method, len(payload), truncatePayload(payload))
}

// LogRPCResponse records an outbound response line, or the absence of
// one for a notification.
func LogRPCResponse(dir Direction, payload []byte, err error) {
	if err != nil {
		rpcLog.Printf("%s RESPONSE size=%d error=%v", dir, len(payload), err)
		return
	}
	rpcLog.Printf("%s RESPONSE size=%d payload=%s",
		dir, len(payload), truncatePayload(payload))
}

func truncatePayload(payload []byte) string {
	if len(payload) <= MaxPayloadPreview {
		return string(payload)
	}
	return string(payload[:MaxPayloadPreview]) + "...(truncated)"
}
