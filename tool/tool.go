package tool

import "context"

// CreateOptions configures a new tool instance for one trajectory.
type CreateOptions struct {
	// InstanceID is the identifier to allocate state under.
	// If empty, the tool generates a unique opaque token.
	InstanceID string

	// GroundTruth is the optional reference answer a reward manager may
	// score the trajectory against.
	GroundTruth string

	// Extra carries tool-specific creation parameters. Tools ignore keys
	// they do not recognize.
	Extra map[string]any
}

// Response is the outcome of one Execute call.
type Response struct {
	// Text is the observation returned to the conversation.
	Text string

	// Reward is the tool-defined immediate reward. Tools that defer
	// scoring to CalcReward or an external reward manager return 0.
	Reward float64

	// Metrics carries machine-readable execution metadata for downstream
	// reward computation.
	Metrics map[string]any
}

// Tool is the uniform lifecycle contract implemented per tool kind. The
// registry dispatches a model's function call by name to the matching
// implementation, resolved at startup.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use across
//   instance identifiers. Operations on one identifier are the caller's to
//   sequence; the tool does not lock per-instance state.
// - Context: Execute must honor cancellation/deadlines; the remaining
//   lifecycle methods are non-suspending in-memory operations.
// - Errors: unknown identifiers return ErrInstanceNotFound; malformed
//   parameters that coerce to a usable default must not fail Execute.
// - Ownership: params are read-only; the returned Response is caller-owned.
type Tool interface {
	// Schema returns the immutable tool schema. Pure; no side effects.
	Schema() Schema

	// Create allocates instance state for one trajectory and returns the
	// instance identifier plus an optional initial observation. Fails with
	// ErrInstanceExists when the identifier is already live.
	Create(ctx context.Context, opts CreateOptions) (instanceID, observation string, err error)

	// Execute performs the tool's action with the given call parameters
	// and records the observation in the instance state.
	Execute(ctx context.Context, instanceID string, params map[string]any) (Response, error)

	// CalcReward returns the instance's stored reward without mutating
	// execution state.
	CalcReward(ctx context.Context, instanceID string) (float64, error)

	// Release removes the instance state. Releasing an unknown or already
	// released identifier fails with ErrInstanceNotFound.
	Release(ctx context.Context, instanceID string) error
}
