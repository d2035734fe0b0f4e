package search

import (
	"context"
	"errors"
)

// Fallback chains two backends: the secondary runs only when the primary's
// utility is not installed. Timeouts and other failures from the primary are
// returned as-is; a missing primary is an environment property, not a search
// failure, so it is recovered locally.
type Fallback struct {
	// Primary is tried first. Required.
	Primary Searcher

	// Secondary runs when Primary reports ErrUnavailable.
	// Optional; if nil, ErrUnavailable surfaces to the caller.
	Secondary Searcher
}

// NewFallback returns the standard backend chain: rg first, grep second.
func NewFallback() *Fallback {
	return &Fallback{
		Primary:   &Ripgrep{},
		Secondary: &Grep{},
	}
}

// Search tries the primary backend, falling back to the secondary when the
// primary is unavailable. ErrUnavailable surfaces only when both are missing.
func (s *Fallback) Search(ctx context.Context, query, root string) (Result, error) {
	res, err := s.Primary.Search(ctx, query, root)
	if err == nil || !errors.Is(err, ErrUnavailable) {
		return res, err
	}
	if s.Secondary == nil {
		return Result{}, err
	}
	return s.Secondary.Search(ctx, query, root)
}

var _ Searcher = (*Fallback)(nil)
