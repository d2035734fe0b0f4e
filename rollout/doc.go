// Package rollout drives one multi-turn trajectory between a language model
// and the tool registry.
//
// The conversation loop is an explicit state machine:
//
//	StateAwaitingModel -> StateToolCallPending -> StateToolResultReady -> ...
//	                   -> StateTerminal
//
// Each model turn is scanned for structured <tool_call> tags carrying a
// JSON body of {"name": ..., "arguments": {...}}. Parsed calls are
// dispatched through the tool registry against the trajectory's instance
// identifiers and the observations are fed back as tool messages. The loop
// ends when the model emits the terminal tag or the turn budget runs out.
//
// Tool failures follow the transient/structural split: a malformed tool-call
// tag or an unknown tool becomes a textual error observation so the
// conversation never sees a broken turn, while registry and lifecycle
// misuse surfaces as an error from Run.
package rollout
