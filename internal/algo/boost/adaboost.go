package boost

import (
	"context"
	"sync/atomic"

	"github.com/drakos74/free-boost/internal/model"
)

// AdaBoost is a Learner training a weighted majority ensemble of weak learners.
// Train swaps in a complete ensemble only on success,
// so Predict and Test can run concurrently with it and always see a consistent model.
type AdaBoost[L comparable] struct {
	factory  Factory[L]
	cfg      Config
	onRound  func(id string, r Round)
	ensemble atomic.Pointer[Ensemble[L]]
}

var _ Learner[string] = (*AdaBoost[string])(nil)

// New creates a new AdaBoost learner.
func New[L comparable](factory Factory[L], cfg Config) *AdaBoost[L] {
	return &AdaBoost[L]{
		factory: factory,
		cfg:     cfg,
	}
}

// Construct creates a Factory producing AdaBoost learners.
func Construct[L comparable](factory Factory[L], cfg Config) Factory[L] {
	return func() (Learner[L], error) {
		return New(factory, cfg), nil
	}
}

// OnRound registers a callback invoked after every completed round of a training run.
func (a *AdaBoost[L]) OnRound(f func(id string, r Round)) *AdaBoost[L] {
	a.onRound = f
	return a
}

// Train trains a new ensemble on the dataset and replaces the current one.
func (a *AdaBoost[L]) Train(ds model.Dataset[L]) error {
	return a.TrainContext(context.Background(), ds)
}

// TrainContext is Train with cancellation at round boundaries.
func (a *AdaBoost[L]) TrainContext(ctx context.Context, ds model.Dataset[L]) error {
	t := &trainer[L]{cfg: a.cfg}
	if a.onRound != nil {
		t.observe = func(id string, r Round, _ Weights) {
			a.onRound(id, r)
		}
	}
	ensemble, err := t.run(ctx, ds, a.factory)
	if err != nil {
		return err
	}
	a.ensemble.Store(ensemble)
	return nil
}

// Predict returns the weighted majority label for the example.
func (a *AdaBoost[L]) Predict(x model.Example[L]) (L, error) {
	return a.ensemble.Load().Predict(x)
}

// Test tallies the correct and incorrect predictions over the dataset.
func (a *AdaBoost[L]) Test(ds model.Dataset[L]) (Result, error) {
	return a.ensemble.Load().Test(ds)
}

// Ensemble returns the current trained ensemble.
func (a *AdaBoost[L]) Ensemble() (*Ensemble[L], error) {
	e := a.ensemble.Load()
	if e == nil {
		return nil, ErrNotTrained
	}
	return e, nil
}
