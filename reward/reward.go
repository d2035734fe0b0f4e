package reward

import "context"

// Batch is a batch of trajectories at the reward boundary. Each trajectory
// carries a fixed-length response token sequence; ground truth is optional
// and may be shorter than Responses or absent entirely.
type Batch struct {
	// Responses holds one token-id sequence per trajectory.
	Responses [][]int64

	// GroundTruth holds the optional reference answer per trajectory.
	GroundTruth []string
}

// Result is the scored outcome of a batch. Tensor has exactly the shape of
// the batch's Responses.
type Result struct {
	Tensor [][]float64
}

// Manager computes scalar rewards over a batch of trajectories at
// trajectory end.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: missing ground truth must not fail managers that do not need it.
// - Ownership: the batch is read-only; the returned Result is caller-owned.
type Manager interface {
	Score(ctx context.Context, batch Batch) (Result, error)
}
