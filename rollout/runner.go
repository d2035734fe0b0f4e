package rollout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agentfoundry/trajexec/tool"
)

// Default configuration values.
const (
	DefaultMaxTurns    = 10
	DefaultTerminalTag = "<diff_gen>"
)

// Message is one turn in the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Model is the inference boundary. The loop that decides when to call a
// tool lives behind this interface; the runner only consumes its text.
//
// Contract:
// - Context: must honor cancellation/deadlines.
// - Errors: a Generate failure aborts the trajectory.
type Model interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

// Logger is an optional interface for observability during a rollout.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: logging must be best-effort; Logf should not panic.
type Logger interface {
	Logf(format string, args ...any)
}

// Config configures a rollout runner.
type Config struct {
	// Registry resolves tool names from model output. Required.
	Registry *tool.Registry

	// Model produces each assistant turn. Required.
	Model Model

	// MaxTurns bounds the number of model turns per trajectory.
	// Default: 10
	MaxTurns int

	// TerminalTag marks a model turn as the trajectory's final answer.
	// Default: <diff_gen>
	TerminalTag string

	// Logger is an optional logger for rollout events.
	Logger Logger
}

// Validate checks that required fields are set.
func (c *Config) Validate() error {
	if c.Registry == nil {
		return fmt.Errorf("rollout: Registry is required")
	}
	if c.Model == nil {
		return fmt.Errorf("rollout: Model is required")
	}
	return nil
}

// applyDefaults sets default values for unset optional fields.
func (c *Config) applyDefaults() {
	if c.MaxTurns == 0 {
		c.MaxTurns = DefaultMaxTurns
	}
	if c.TerminalTag == "" {
		c.TerminalTag = DefaultTerminalTag
	}
}

// CallRecord captures one tool invocation made during a trajectory.
type CallRecord struct {
	// Tool is the name the call was dispatched on.
	Tool string `json:"tool"`

	// Args are the decoded call arguments.
	Args map[string]any `json:"args,omitempty"`

	// Observation is the text fed back to the conversation.
	Observation string `json:"observation,omitempty"`

	// Metrics carries the tool's machine-readable execution metadata.
	Metrics map[string]any `json:"metrics,omitempty"`

	// Error is the error message when the call failed.
	Error string `json:"error,omitempty"`

	// DurationMs is the call time in milliseconds.
	DurationMs int64 `json:"durationMs"`
}

// Trajectory is the outcome of one complete multi-turn interaction.
type Trajectory struct {
	// Messages is the full conversation, prompt included.
	Messages []Message

	// Calls records every tool invocation in order.
	Calls []CallRecord

	// State is the final loop state; StateTerminal unless Run errored.
	State State

	// Turns is the number of model turns consumed.
	Turns int
}

// Runner drives trajectories against a tool registry.
type Runner struct {
	cfg Config
}

// NewRunner creates a runner with the given configuration.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &Runner{cfg: cfg}, nil
}

// Run executes one trajectory. For every entry in tools, an instance is
// created on the named tool before the first model turn and released when
// the trajectory ends, success or not. Tool calls naming a tool without an
// instance, or an unregistered tool, become textual error observations; the
// conversation keeps going.
func (r *Runner) Run(ctx context.Context, prompt []Message, tools map[string]tool.CreateOptions) (Trajectory, error) {
	traj := Trajectory{
		Messages: append([]Message(nil), prompt...),
		State:    StateAwaitingModel,
	}

	instances := make(map[string]string, len(tools))
	defer func() {
		for name, id := range instances {
			t, err := r.cfg.Registry.Get(name)
			if err != nil {
				continue
			}
			if err := t.Release(ctx, id); err != nil && r.cfg.Logger != nil {
				r.cfg.Logger.Logf("release %s/%s: %v", name, id, err)
			}
		}
	}()

	for name, opts := range tools {
		t, err := r.cfg.Registry.Get(name)
		if err != nil {
			return traj, err
		}
		id, obs, err := t.Create(ctx, opts)
		if err != nil {
			return traj, fmt.Errorf("create %s: %w", name, err)
		}
		instances[name] = id
		if obs != "" {
			traj.Messages = append(traj.Messages, Message{Role: "tool", Content: obs})
		}
	}

	for traj.Turns < r.cfg.MaxTurns {
		if err := ctx.Err(); err != nil {
			return traj, err
		}

		text, err := r.cfg.Model.Generate(ctx, traj.Messages)
		if err != nil {
			return traj, fmt.Errorf("model turn %d: %w", traj.Turns, err)
		}
		traj.Turns++
		traj.Messages = append(traj.Messages, Message{Role: "assistant", Content: text})

		if strings.Contains(text, r.cfg.TerminalTag) {
			traj.State = StateTerminal
			return traj, nil
		}

		calls, malformed := ParseToolCalls(text)
		if len(calls) == 0 && len(malformed) == 0 {
			// No structured content and no terminal tag; ask again.
			continue
		}
		traj.State = StateToolCallPending

		for _, body := range malformed {
			traj.Messages = append(traj.Messages, Message{
				Role:    "tool",
				Content: fmt.Sprintf("error: malformed tool call: %s", body),
			})
		}
		for _, call := range calls {
			record := r.dispatch(ctx, call, instances)
			traj.Calls = append(traj.Calls, record)
			content := record.Observation
			if record.Error != "" {
				content = fmt.Sprintf("error: %s", record.Error)
			}
			traj.Messages = append(traj.Messages, Message{Role: "tool", Content: content})
		}

		traj.State = StateToolResultReady
	}

	// Turn budget exhausted; close the trajectory rather than looping.
	traj.State = StateTerminal
	return traj, nil
}

// dispatch executes one parsed tool call against its trajectory instance.
func (r *Runner) dispatch(ctx context.Context, call ToolCall, instances map[string]string) CallRecord {
	record := CallRecord{Tool: call.Name, Args: call.Arguments}

	id, ok := instances[call.Name]
	if !ok {
		record.Error = fmt.Sprintf("no instance for tool %q", call.Name)
		return record
	}
	t, err := r.cfg.Registry.Get(call.Name)
	if err != nil {
		record.Error = err.Error()
		return record
	}

	start := time.Now()
	resp, err := t.Execute(ctx, id, call.Arguments)
	record.DurationMs = time.Since(start).Milliseconds()

	if err != nil {
		record.Error = err.Error()
		if r.cfg.Logger != nil {
			r.cfg.Logger.Logf("execute %s: %v", call.Name, err)
		}
		return record
	}
	record.Observation = resp.Text
	record.Metrics = resp.Metrics
	return record
}
