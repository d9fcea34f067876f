package math

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrZeroSum  = errors.New("vector sums to zero")
	ErrNegative = errors.New("negative vector element")
)

// Normalize returns a copy of v scaled so that its elements sum to 1.
// Relative magnitudes are preserved.
func Normalize(v []float64) ([]float64, error) {
	for i, x := range v {
		if x < 0 || math.IsNaN(x) {
			return nil, fmt.Errorf("element %d is %v: %w", i, x, ErrNegative)
		}
	}
	sum := floats.Sum(v)
	if sum == 0 || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("sum is %v: %w", sum, ErrZeroSum)
	}
	w := make([]float64, len(v))
	copy(w, v)
	floats.Scale(1/sum, w)
	return w, nil
}
