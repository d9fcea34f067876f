package ml

import (
	"fmt"
	"io"

	"github.com/cdipaolo/goml/base"
	"github.com/cdipaolo/goml/linear"
	"github.com/drakos74/free-boost/internal/model"
)

// Logistic is a binary logistic regression classifier.
type Logistic[L comparable] struct {
	alpha      float64
	iterations int
	model      *linear.Logistic
	labels     *Labels[L]
}

func NewLogistic[L comparable](alpha float64, iterations int) *Logistic[L] {
	return &Logistic[L]{
		alpha:      alpha,
		iterations: iterations,
	}
}

func ConstructLogistic[L comparable](alpha float64, iterations int) func() *Logistic[L] {
	return func() *Logistic[L] {
		return NewLogistic[L](alpha, iterations)
	}
}

func (l *Logistic[L]) Train(ds model.Dataset[L]) error {
	x, y, labels, err := encode(ds)
	if err != nil {
		return err
	}
	if labels.Len() > 2 {
		return fmt.Errorf("%d classes for binary regression: %w", labels.Len(), ErrTooManyClasses)
	}
	l.labels = labels
	l.model = nil
	if labels.Len() == 1 {
		return nil
	}
	expected := make([]float64, len(y))
	for i, c := range y {
		expected[i] = float64(c)
	}
	regression := linear.NewLogistic(base.BatchGA, l.alpha, 0, l.iterations, x, expected)
	regression.Output = io.Discard
	if err := regression.Learn(); err != nil {
		return fmt.Errorf("could not learn: %w", err)
	}
	l.model = regression
	return nil
}

func (l *Logistic[L]) Predict(e model.Example[L]) (L, error) {
	var label L
	if l.labels == nil {
		return label, ErrNotFitted
	}
	c := 0
	if l.model != nil {
		guess, err := l.model.Predict(e.Features)
		if err != nil {
			return label, fmt.Errorf("could not predict: %w", err)
		}
		if guess[0] >= 0.5 {
			c = 1
		}
	}
	label, _ = l.labels.Label(c)
	return label, nil
}
