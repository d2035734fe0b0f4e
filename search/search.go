package search

import (
	"context"
	"errors"
	"time"
)

// DefaultTimeout bounds a single search invocation.
const DefaultTimeout = 10 * time.Second

// Errors returned by search backends.
var (
	// ErrUnavailable is returned when the backing search utility is not
	// installed or not resolvable on PATH.
	ErrUnavailable = errors.New("search backend unavailable")

	// ErrTimeout is returned when a search exceeds its wall-clock bound.
	ErrTimeout = errors.New("search timed out")
)

// Result holds the matches produced by one search invocation.
// Results are ephemeral; they are produced fresh per call and not persisted.
type Result struct {
	// Lines are the matched lines in path:line:content shape, in the
	// order the backend emitted them.
	Lines []string

	// TotalMatches is the number of matches before any truncation.
	TotalMatches int

	// Truncated is true when Lines was cut down from a larger match set.
	Truncated bool
}

// Truncate returns a copy of the result limited to at most max lines.
// TotalMatches is preserved so callers can report the pre-truncation count.
// A max of zero or less returns the result unchanged.
func (r Result) Truncate(max int) Result {
	if max <= 0 || len(r.Lines) <= max {
		return r
	}
	return Result{
		Lines:        r.Lines[:max],
		TotalMatches: r.TotalMatches,
		Truncated:    true,
	}
}

// Searcher executes a text query against all files under a directory root.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return promptly on timeout.
// - Errors: ErrUnavailable when the backing utility is missing; ErrTimeout
//   when the wall-clock bound elapses. Zero matches is a success with an
//   empty Result, never an error.
// - Ownership: the returned Result is caller-owned.
type Searcher interface {
	Search(ctx context.Context, query, root string) (Result, error)
}
