// Package grepsearch provides a tool that searches a codebase for an
// agent's query and returns the matched lines as the observation.
//
// Searches run through the search package's rg-then-grep fallback chain with
// a hard wall-clock bound. Transient failures never break the conversation:
// a timeout becomes the single sentinel line "<search timeout>" and zero
// matches become "<no match>", so the calling loop always receives a
// well-formed observation.
package grepsearch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/agentfoundry/trajexec/search"
	"github.com/agentfoundry/trajexec/tool"
)

// Sentinel observations substituted for empty or failed search outcomes.
const (
	NoMatchSentinel = "<no match>"
	TimeoutSentinel = "<search timeout>"
)

// Name is the tool name the registry dispatches on.
const Name = "grep_search"

// Tool implements tool.Tool for codebase search.
type Tool struct {
	schema    tool.Schema
	cfg       Config
	instances *tool.InstanceStore
}

// New creates a grep search tool with the given configuration.
func New(cfg Config) *Tool {
	cfg.applyDefaults()
	return &Tool{
		schema:    defaultSchema(),
		cfg:       cfg,
		instances: tool.NewInstanceStore(),
	}
}

func defaultSchema() tool.Schema {
	return tool.Schema{
		Type: "function",
		Function: tool.FunctionSchema{
			Name:        Name,
			Description: "A tool for searching the answer from the codebase",
			Parameters: tool.ParameterSchema{
				Type: "object",
				Properties: map[string]tool.PropertySchema{
					"query": {
						Type:        "string",
						Description: "The query to search the codebase",
					},
				},
				Required: []string{"query"},
			},
		},
	}
}

// Schema returns the immutable tool schema.
func (t *Tool) Schema() tool.Schema {
	return t.schema
}

// Create allocates instance state for one trajectory. The initial
// observation is empty; this tool only observes through Execute.
func (t *Tool) Create(_ context.Context, opts tool.CreateOptions) (string, string, error) {
	id, err := t.instances.Create(opts.InstanceID, opts.GroundTruth)
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

// Execute runs the search and records the observation in the instance
// state. Malformed parameters coerce to usable defaults: a missing query is
// the empty string, a non-string query is formatted with fmt.Sprint. An
// unknown instance identifier fails with tool.ErrInstanceNotFound.
func (t *Tool) Execute(ctx context.Context, instanceID string, params map[string]any) (tool.Response, error) {
	if _, err := t.instances.Get(instanceID); err != nil {
		return tool.Response{}, err
	}

	query := coerceQuery(params["query"])

	result, err := t.cfg.Searcher.Search(ctx, query, t.cfg.SearchRoot)
	switch {
	case errors.Is(err, search.ErrTimeout):
		// The trajectory must continue; a timeout is a sentinel
		// observation, not a hard failure.
		if t.cfg.Logger != nil {
			t.cfg.Logger.Logf("search timed out: query=%q root=%s", query, t.cfg.SearchRoot)
		}
		result = search.Result{Lines: []string{TimeoutSentinel}, TotalMatches: 1}
	case err != nil:
		return tool.Response{}, fmt.Errorf("grep search: %w", err)
	}

	result = result.Truncate(t.cfg.MaxLines)

	text := NoMatchSentinel
	if len(result.Lines) > 0 {
		text = strings.Join(result.Lines, "\n")
	}
	if err := t.instances.SetResponse(instanceID, text); err != nil {
		return tool.Response{}, err
	}

	return tool.Response{
		Text:   text,
		Reward: 0,
		Metrics: map[string]any{
			"query":          query,
			"total_matches":  result.TotalMatches,
			"returned_lines": len(result.Lines),
		},
	}, nil
}

// CalcReward returns the instance's stored reward. This tool never scores
// itself; reward stays at zero and scoring is deferred to the reward layer.
func (t *Tool) CalcReward(_ context.Context, instanceID string) (float64, error) {
	state, err := t.instances.Get(instanceID)
	if err != nil {
		return 0, err
	}
	return state.Reward, nil
}

// Release removes the instance state. Double release returns
// tool.ErrInstanceNotFound.
func (t *Tool) Release(_ context.Context, instanceID string) error {
	return t.instances.Release(instanceID)
}

// coerceQuery converts a call parameter to a search query string. Missing
// values become the empty string rather than an error.
func coerceQuery(v any) string {
	switch q := v.(type) {
	case nil:
		return ""
	case string:
		return q
	default:
		return fmt.Sprint(q)
	}
}

var _ tool.Tool = (*Tool)(nil)
