// Package search provides line-oriented content search backends over a
// directory tree, used by tools that expose codebase search to an agent.
//
// The package defines the [Searcher] interface and two subprocess-backed
// implementations:
//
//   - [Ripgrep]: the primary backend, using rg for speed
//   - [Grep]: the fallback backend, using POSIX grep -R for portability
//
// Both produce one match per line in path:line:content shape so callers can
// swap backends without changing how they consume results.
//
// # Fallback
//
// [Fallback] chains a primary and a secondary backend. When the primary's
// utility is not installed ([ErrUnavailable]), the secondary runs with
// equivalent flags. Only when both are missing does the error surface:
//
//	s := search.NewFallback()
//	result, err := s.Search(ctx, "func main", "/repo")
//
// # Timeouts
//
// Every search is bounded by a wall-clock timeout (default [DefaultTimeout]).
// The subprocess runs in its own process group and the whole group is killed
// when the deadline passes, so a hung search cannot leak processes under
// concurrent trajectories. Timeouts are reported as [ErrTimeout]; callers
// decide whether to surface them or substitute a sentinel observation.
package search
