package tool

import "errors"

// Sentinel errors for tool lifecycle and registry operations.
var (
	// ErrInstanceNotFound indicates a lifecycle method was invoked with an
	// identifier no Create call produced (or one already released).
	ErrInstanceNotFound = errors.New("tool instance not found")

	// ErrInstanceExists indicates Create was called with an identifier that
	// is already live for this tool.
	ErrInstanceExists = errors.New("tool instance already exists")

	// ErrToolNotFound indicates the registry has no tool under the
	// requested name.
	ErrToolNotFound = errors.New("tool not found")

	// ErrToolExists is returned when registering a duplicate tool name.
	ErrToolExists = errors.New("tool already registered")

	// ErrSchemaInvalid indicates a malformed tool schema at registration
	// time. This is fatal; it is never deferred to execution.
	ErrSchemaInvalid = errors.New("invalid tool schema")
)
