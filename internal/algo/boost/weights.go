package boost

import (
	"fmt"
	"math"

	coinmath "github.com/drakos74/free-boost/internal/math"
	"gonum.org/v1/gonum/floats"
)

// Weights is the per-example distribution maintained across the boosting rounds.
type Weights []float64

// NewWeights creates a uniform distribution over n examples.
// NOTE : every entry starts at 1/N rather than 1,
// so that the first round error is a fraction of the total weight like all later ones.
func NewWeights(n int) (Weights, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%d examples: %w", n, ErrEmptyDataset)
	}
	w := make(Weights, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}
	return w, nil
}

// Error returns the total weight of the misclassified examples.
func (w Weights) Error(correct []bool) float64 {
	var rate float64
	for j, ok := range correct {
		if !ok {
			rate += w[j]
		}
	}
	return rate
}

// Rescale multiplies the weight of every correctly classified example by rate/(1-rate).
// The weights of misclassified examples are left unchanged.
func (w Weights) Rescale(round int, correct []bool, rate float64) error {
	if degenerate(rate) {
		return &DegenerateError{Round: round, Rate: rate}
	}
	f := rate / (1 - rate)
	for j, ok := range correct {
		if ok {
			w[j] *= f
		}
	}
	return nil
}

// Normalize returns a new distribution summing to 1.
func (w Weights) Normalize() (Weights, error) {
	v, err := coinmath.Normalize(w)
	if err != nil {
		return nil, fmt.Errorf("could not normalize weights: %w", err)
	}
	return v, nil
}

// Sum returns the total weight.
func (w Weights) Sum() float64 {
	return floats.Sum(w)
}

func (w Weights) copy() []float64 {
	c := make([]float64, len(w))
	copy(c, w)
	return c
}

func degenerate(rate float64) bool {
	return math.IsNaN(rate) || rate <= 0 || rate >= 1
}

// confidence is the voting weight of a hypothesis with the given weighted error.
func confidence(rate float64) float64 {
	return math.Log((1 - rate) / rate)
}
