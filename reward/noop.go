package reward

import "context"

// Noop is a reward manager that scores every token of every trajectory as
// zero. It is used for pure inference or tool-enabled generation where
// ground-truth scoring is unavailable or undesired.
type Noop struct{}

// NewNoop creates a no-op reward manager.
func NewNoop() *Noop {
	return &Noop{}
}

// Score returns an all-zero tensor shaped exactly like batch.Responses.
// It never fails, regardless of missing or mismatched ground truth.
func (*Noop) Score(_ context.Context, batch Batch) (Result, error) {
	tensor := make([][]float64, len(batch.Responses))
	for i, resp := range batch.Responses {
		tensor[i] = make([]float64, len(resp))
	}
	return Result{Tensor: tensor}, nil
}

var _ Manager = (*Noop)(nil)

func init() {
	Register("noop", func(map[string]any) (Manager, error) {
		return NewNoop(), nil
	})
}
