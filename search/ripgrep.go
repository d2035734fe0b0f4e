package search

import (
	"context"
	"time"
)

// Ripgrep searches with the rg utility. It is the primary backend: fast and
// line-oriented, producing numbered matches without per-file headings.
type Ripgrep struct {
	// Path is the rg binary to invoke.
	// Default: rg (uses PATH)
	Path string

	// Timeout bounds a single search.
	// Default: DefaultTimeout
	Timeout time.Duration
}

// Search runs rg over all files under root and returns the matched lines.
func (s *Ripgrep) Search(ctx context.Context, query, root string) (Result, error) {
	bin := s.Path
	if bin == "" {
		bin = "rg"
	}
	lines, err := runCommand(ctx, s.Timeout, bin, "-n", "--no-heading", "--color", "never", query, root)
	if err != nil {
		return Result{}, err
	}
	return Result{Lines: lines, TotalMatches: len(lines)}, nil
}

var _ Searcher = (*Ripgrep)(nil)
