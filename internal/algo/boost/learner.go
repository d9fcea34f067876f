package boost

import (
	"github.com/drakos74/free-boost/internal/model"
)

// Learner is a trainable classifier.
// Predict must be safe for concurrent use once Train has returned.
type Learner[L comparable] interface {
	Train(ds model.Dataset[L]) error
	Predict(e model.Example[L]) (L, error)
}

// WeightedLearner is a Learner that can fit a weighted distribution over the examples.
// weights has one entry per example and sums to 1.
type WeightedLearner[L comparable] interface {
	Learner[L]
	TrainWeighted(ds model.Dataset[L], weights []float64) error
}

// Factory constructs a fresh, untrained weak learner.
type Factory[L comparable] func() (Learner[L], error)

// Of creates a Factory out of a constructor that cannot fail.
func Of[L comparable, T Learner[L]](construct func() T) Factory[L] {
	return func() (Learner[L], error) {
		return construct(), nil
	}
}
