package ml

import (
	"fmt"
	"math"

	"github.com/drakos74/free-boost/internal/model"
	"gonum.org/v1/gonum/floats"
)

// Stump is a one level decision tree.
// It splits on a single feature threshold and predicts one label on either side.
type Stump[L comparable] struct {
	feature   int
	threshold float64
	left      L
	right     L
	trained   bool
}

// NewStump creates a new untrained decision stump.
func NewStump[L comparable]() *Stump[L] {
	return &Stump[L]{}
}

// Train fits the stump giving every example the same weight.
func (s *Stump[L]) Train(ds model.Dataset[L]) error {
	if ds == nil || ds.Size() == 0 {
		return ErrNoData
	}
	n := ds.Size()
	w := make([]float64, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}
	return s.TrainWeighted(ds, w)
}

type split struct {
	feature     int
	threshold   float64
	left, right int
	err         float64
}

// TrainWeighted picks the feature threshold with the lowest weighted error.
func (s *Stump[L]) TrainWeighted(ds model.Dataset[L], weights []float64) error {
	x, y, labels, err := encode(ds)
	if err != nil {
		return err
	}
	n := len(x)
	if len(weights) != n {
		return fmt.Errorf("%d weights for %d examples: %w", len(weights), n, ErrDimension)
	}

	total := make([]float64, labels.Len())
	for i, c := range y {
		total[c] += weights[i]
	}
	sum := floats.Sum(weights)

	// the constant hypothesis of the weighted majority
	major := floats.MaxIdx(total)
	best := split{
		threshold: math.Inf(1),
		left:      major,
		right:     major,
		err:       sum - total[major],
	}

	values := make([]float64, n)
	order := make([]int, n)
	left := make([]float64, labels.Len())
	right := make([]float64, labels.Len())
	for f := 0; f < len(x[0]); f++ {
		for i := range x {
			values[i] = x[i][f]
		}
		floats.Argsort(values, order)
		for c := range total {
			left[c] = 0
			right[c] = total[c]
		}
		for p := 0; p < n-1; p++ {
			i := order[p]
			left[y[i]] += weights[i]
			right[y[i]] -= weights[i]
			if values[p] == values[p+1] {
				continue
			}
			l := floats.MaxIdx(left)
			r := floats.MaxIdx(right)
			if l == r {
				continue
			}
			e := sum - left[l] - right[r]
			if e < best.err {
				best = split{
					feature:   f,
					threshold: (values[p] + values[p+1]) / 2,
					left:      l,
					right:     r,
					err:       e,
				}
			}
		}
	}

	s.feature = best.feature
	s.threshold = best.threshold
	s.left, _ = labels.Label(best.left)
	s.right, _ = labels.Label(best.right)
	s.trained = true
	return nil
}

// Predict returns the label of the side of the threshold the example falls on.
func (s *Stump[L]) Predict(e model.Example[L]) (L, error) {
	var label L
	if !s.trained {
		return label, ErrNotFitted
	}
	if math.IsInf(s.threshold, 1) {
		return s.left, nil
	}
	if s.feature >= len(e.Features) {
		return label, fmt.Errorf("feature %d of %d: %w", s.feature, len(e.Features), ErrDimension)
	}
	if e.Features[s.feature] <= s.threshold {
		return s.left, nil
	}
	return s.right, nil
}

func (s *Stump[L]) String() string {
	return fmt.Sprintf("x[%d] <= %.4f ? %v : %v", s.feature, s.threshold, s.left, s.right)
}
