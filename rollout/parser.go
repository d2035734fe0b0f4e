package rollout

import (
	"strings"

	"github.com/bytedance/sonic"
)

// Tags delimiting structured blocks in model output.
const (
	ToolCallOpenTag  = "<tool_call>"
	ToolCallCloseTag = "</tool_call>"
)

// ToolCall is one parsed tool invocation from a model turn.
type ToolCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// ParseToolCalls extracts tool calls from a model turn. Each well-formed
// <tool_call>...</tool_call> block decodes to a ToolCall; blocks with
// malformed JSON or a missing name are returned separately so the caller
// can turn them into error observations instead of failing the turn.
func ParseToolCalls(text string) (calls []ToolCall, malformed []string) {
	rest := text
	for {
		start := strings.Index(rest, ToolCallOpenTag)
		if start < 0 {
			return calls, malformed
		}
		rest = rest[start+len(ToolCallOpenTag):]
		end := strings.Index(rest, ToolCallCloseTag)
		if end < 0 {
			malformed = append(malformed, strings.TrimSpace(rest))
			return calls, malformed
		}
		body := strings.TrimSpace(rest[:end])
		rest = rest[end+len(ToolCallCloseTag):]

		var call ToolCall
		if err := sonic.UnmarshalString(body, &call); err != nil || call.Name == "" {
			malformed = append(malformed, body)
			continue
		}
		calls = append(calls, call)
	}
}
