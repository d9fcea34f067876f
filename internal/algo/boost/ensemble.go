package boost

import (
	"fmt"

	"github.com/drakos74/free-boost/internal/metrics"
	"github.com/drakos74/free-boost/internal/model"
	"github.com/google/uuid"
)

// Result is the outcome of testing a classifier on a dataset.
type Result struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

// Total returns the number of tested examples.
func (r Result) Total() int {
	return r.Correct + r.Incorrect
}

// Accuracy returns the fraction of correct predictions.
func (r Result) Accuracy() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total())
}

// Ensemble is a weighted majority classifier.
// It is immutable once created and safe for concurrent use.
type Ensemble[L comparable] struct {
	id         string
	hypotheses []Learner[L]
	weights    []float64
	rounds     []Round
}

// NewEnsemble combines trained hypotheses with their voting weights.
func NewEnsemble[L comparable](hypotheses []Learner[L], weights []float64) (*Ensemble[L], error) {
	if len(hypotheses) != len(weights) {
		return nil, fmt.Errorf("%d hypotheses for %d weights: %w", len(hypotheses), len(weights), ErrInvalidConfig)
	}
	rounds := make([]Round, len(weights))
	for k, z := range weights {
		rounds[k] = Round{Index: k, Weight: z}
	}
	return newEnsemble(uuid.New().String(), hypotheses, weights, rounds), nil
}

func newEnsemble[L comparable](id string, hypotheses []Learner[L], weights []float64, rounds []Round) *Ensemble[L] {
	e := &Ensemble[L]{
		id:         id,
		hypotheses: make([]Learner[L], len(hypotheses)),
		weights:    make([]float64, len(weights)),
		rounds:     make([]Round, len(rounds)),
	}
	copy(e.hypotheses, hypotheses)
	copy(e.weights, weights)
	copy(e.rounds, rounds)
	return e
}

// ID returns the identifier of the training run that created the ensemble.
func (e *Ensemble[L]) ID() string {
	return e.id
}

// Size returns the number of hypotheses.
func (e *Ensemble[L]) Size() int {
	if e == nil {
		return 0
	}
	return len(e.hypotheses)
}

// Weights returns the hypothesis weights in round order.
func (e *Ensemble[L]) Weights() []float64 {
	w := make([]float64, len(e.weights))
	copy(w, e.weights)
	return w
}

// Rounds returns the round history in round order.
func (e *Ensemble[L]) Rounds() []Round {
	r := make([]Round, len(e.rounds))
	copy(r, e.rounds)
	return r
}

// Predict returns the label with the highest sum of hypothesis weights.
// Ties go to the label that was predicted first in round order.
func (e *Ensemble[L]) Predict(x model.Example[L]) (L, error) {
	var label L
	if e.Size() == 0 {
		return label, ErrNotTrained
	}

	labels := make([]L, 0)
	votes := make(map[L]float64)
	for k, h := range e.hypotheses {
		y, err := h.Predict(x)
		if err != nil {
			return label, fmt.Errorf("hypothesis %d: %w", k, err)
		}
		if _, ok := votes[y]; !ok {
			labels = append(labels, y)
		}
		votes[y] += e.weights[k]
	}

	label = labels[0]
	for _, l := range labels[1:] {
		if votes[l] > votes[label] {
			label = l
		}
	}
	metrics.Observer.Predicted()
	return label, nil
}

// Test predicts every example of the dataset and tallies the outcome against the true labels.
func (e *Ensemble[L]) Test(ds model.Dataset[L]) (Result, error) {
	var result Result
	if e.Size() == 0 {
		return result, ErrNotTrained
	}
	if ds == nil {
		return result, nil
	}
	for i := 0; i < ds.Size(); i++ {
		x := ds.Example(i)
		y, err := e.Predict(x)
		if err != nil {
			return Result{}, fmt.Errorf("example %d: %w", i, err)
		}
		if y == x.Label {
			result.Correct++
		} else {
			result.Incorrect++
		}
	}
	return result, nil
}
