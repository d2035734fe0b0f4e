package search

import (
	"context"
	"time"
)

// Grep searches with POSIX grep -R. Slower than rg but available on
// effectively every host, which makes it the standard fallback backend.
// Output shape matches Ripgrep: one path:line:content entry per match.
type Grep struct {
	// Path is the grep binary to invoke.
	// Default: grep (uses PATH)
	Path string

	// Timeout bounds a single search.
	// Default: DefaultTimeout
	Timeout time.Duration
}

// Search runs grep recursively over root and returns the matched lines.
func (s *Grep) Search(ctx context.Context, query, root string) (Result, error) {
	bin := s.Path
	if bin == "" {
		bin = "grep"
	}
	lines, err := runCommand(ctx, s.Timeout, bin, "-R", "-n", query, root)
	if err != nil {
		return Result{}, err
	}
	return Result{Lines: lines, TotalMatches: len(lines)}, nil
}

var _ Searcher = (*Grep)(nil)
