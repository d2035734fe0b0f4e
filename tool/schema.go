package tool

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Schema is the static, declarative description of a tool in the
// function-call wire format the calling model parses. It is constructed once
// at registration and treated as immutable afterwards.
type Schema struct {
	// Type is always "function".
	Type string `json:"type"`

	// Function describes the callable surface of the tool.
	Function FunctionSchema `json:"function"`
}

// FunctionSchema describes a callable tool function.
type FunctionSchema struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  ParameterSchema `json:"parameters"`
}

// ParameterSchema is the recursive structural description of a tool's
// parameters: an object with named, typed properties and a required subset.
type ParameterSchema struct {
	// Type is always "object".
	Type       string                    `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
	Required   []string                  `json:"required,omitempty"`
}

// PropertySchema describes a single named parameter.
type PropertySchema struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ParseSchema decodes and validates a schema from its wire format.
// Returns ErrSchemaInvalid when the shape is malformed.
func ParseSchema(data []byte) (Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	if err := s.Validate(); err != nil {
		return Schema{}, err
	}
	return s, nil
}

// Validate checks the schema against the fixed shape contract:
// type "function", a non-empty name, and an object-typed parameters block.
func (s Schema) Validate() error {
	if s.Type != "function" {
		return fmt.Errorf("%w: type must be %q, got %q", ErrSchemaInvalid, "function", s.Type)
	}
	if s.Function.Name == "" {
		return fmt.Errorf("%w: function name is required", ErrSchemaInvalid)
	}
	if s.Function.Parameters.Type != "object" {
		return fmt.Errorf("%w: parameters type must be %q, got %q",
			ErrSchemaInvalid, "object", s.Function.Parameters.Type)
	}
	props := s.Function.Parameters.Properties
	for _, name := range s.Function.Parameters.Required {
		if _, ok := props[name]; !ok {
			return fmt.Errorf("%w: required parameter %q has no property definition",
				ErrSchemaInvalid, name)
		}
	}
	return nil
}

// Name returns the tool name the registry dispatches on.
func (s Schema) Name() string {
	return s.Function.Name
}

var titleCaser = cases.Title(language.English)

// MCPTool converts the schema to the MCP tool shape for hosts that speak
// the Model Context Protocol instead of the function-call format.
func (s Schema) MCPTool() mcp.Tool {
	props := make(map[string]any, len(s.Function.Parameters.Properties))
	for name, p := range s.Function.Parameters.Properties {
		props[name] = map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
	}
	input := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(s.Function.Parameters.Required) > 0 {
		input["required"] = append([]string(nil), s.Function.Parameters.Required...)
	}
	return mcp.Tool{
		Name:        s.Function.Name,
		Title:       titleCaser.String(strings.ReplaceAll(s.Function.Name, "_", " ")),
		Description: s.Function.Description,
		InputSchema: input,
	}
}
