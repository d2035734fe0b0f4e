package dataset

import (
	"encoding/json"
	"fmt"

	"github.com/agentfoundry/trajexec/rollout"
	"github.com/agentfoundry/trajexec/tool/grepsearch"
)

// Prompt content used for every prepared row.
const (
	DefaultSystemContent = "You are a powerful agentic AI coding assistant. " +
		"You can use tools to help you solve coding problems."
	DefaultUserPrefix = "Fix the given code problem. You must conduct reasoning inside " +
		"<think> and </think> every time you get new information. " +
		"When you have found the solution, you must provide the patch inside a `<diff_gen>` block. " +
		"\n\nProblem: "
)

// DataSource identifies the corpus prepared rows come from.
const DataSource = "swe_bench_lite"

// Record is one raw problem row from the upstream dump.
type Record struct {
	Repo             string `json:"repo"`
	InstanceID       string `json:"instance_id"`
	BaseCommit       string `json:"base_commit"`
	ProblemStatement string `json:"problem_statement"`
}

// Row is one trajectory-ready record. Prompt, ToolsKwargs, and ExtraInfo
// are JSON-encoded columns.
type Row struct {
	DataSource  string `parquet:"data_source" json:"data_source"`
	Repo        string `parquet:"repo" json:"repo"`
	InstanceID  string `parquet:"instance_id" json:"instance_id"`
	BaseCommit  string `parquet:"base_commit" json:"base_commit"`
	Issue       string `parquet:"issue" json:"issue"`
	Prompt      string `parquet:"prompt" json:"prompt"`
	ToolsKwargs string `parquet:"tools_kwargs" json:"tools_kwargs"`
	ExtraInfo   string `parquet:"extra_info" json:"extra_info"`
}

// extraInfo is the bookkeeping metadata attached to each row.
type extraInfo struct {
	Index           int    `json:"index"`
	NeedToolsKwargs bool   `json:"need_tools_kwargs"`
	Split           string `json:"split"`
}

// BuildRow prepares one record for the given split. The prompt pairs the
// standard system message with the problem statement, and tools_kwargs
// requests a grep search instance per trajectory.
func BuildRow(rec Record, split string, index int) (Row, error) {
	prompt := []rollout.Message{
		{Role: "system", Content: DefaultSystemContent},
		{Role: "user", Content: DefaultUserPrefix + rec.ProblemStatement},
	}
	promptJSON, err := json.Marshal(prompt)
	if err != nil {
		return Row{}, fmt.Errorf("dataset: encode prompt: %w", err)
	}

	toolsKwargs := map[string]any{
		grepsearch.Name: map[string]any{
			"create_kwargs": map[string]any{},
		},
	}
	toolsJSON, err := json.Marshal(toolsKwargs)
	if err != nil {
		return Row{}, fmt.Errorf("dataset: encode tools_kwargs: %w", err)
	}

	infoJSON, err := json.Marshal(extraInfo{
		Index:           index,
		NeedToolsKwargs: true,
		Split:           split,
	})
	if err != nil {
		return Row{}, fmt.Errorf("dataset: encode extra_info: %w", err)
	}

	return Row{
		DataSource:  DataSource,
		Repo:        rec.Repo,
		InstanceID:  rec.InstanceID,
		BaseCommit:  rec.BaseCommit,
		Issue:       rec.ProblemStatement,
		Prompt:      string(promptJSON),
		ToolsKwargs: string(toolsJSON),
		ExtraInfo:   string(infoJSON),
	}, nil
}
