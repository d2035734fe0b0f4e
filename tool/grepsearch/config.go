package grepsearch

import (
	"os"
	"time"

	"github.com/agentfoundry/trajexec/search"
)

// Default configuration values.
const (
	DefaultMaxLines = 20
	DefaultTimeout  = search.DefaultTimeout
)

// Logger is an optional interface for observability during searches.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: logging must be best-effort; Logf should not panic.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...any)
}

// Config configures a grep search tool.
type Config struct {
	// SearchRoot is the directory tree queries run against.
	// Default: current working directory
	SearchRoot string

	// MaxLines caps the number of match lines returned per call, protecting
	// the model's context window from unbounded tool output.
	// Default: 20
	MaxLines int

	// Timeout bounds the search subprocess.
	// Default: 10s
	Timeout time.Duration

	// Searcher executes the query. If nil, the standard rg-then-grep
	// fallback chain is used with Timeout applied to both backends.
	Searcher search.Searcher

	// Logger is an optional logger for search events.
	Logger Logger
}

// applyDefaults sets default values for unset optional fields.
func (c *Config) applyDefaults() {
	if c.SearchRoot == "" {
		if wd, err := os.Getwd(); err == nil {
			c.SearchRoot = wd
		} else {
			c.SearchRoot = "."
		}
	}
	if c.MaxLines == 0 {
		c.MaxLines = DefaultMaxLines
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Searcher == nil {
		c.Searcher = &search.Fallback{
			Primary:   &search.Ripgrep{Timeout: c.Timeout},
			Secondary: &search.Grep{Timeout: c.Timeout},
		}
	}
}
