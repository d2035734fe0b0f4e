// Package reward defines the reward-manager boundary consumed by the
// training loop and a no-op implementation for tool-enabled generation
// without a training signal.
//
// Managers are pluggable and selected by name:
//
//	mgr, err := reward.New("noop", nil)
//	result, err := mgr.Score(ctx, reward.Batch{Responses: responses})
//
// The no-op manager returns an all-zero tensor shaped like the batch's
// responses and never fails on missing ground truth; that failure mode is
// precisely what it exists to avoid.
package reward
