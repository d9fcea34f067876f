package ml

import (
	"fmt"

	"github.com/drakos74/free-boost/internal/model"
	randomforest "github.com/malaschitz/randomForest"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

// RandomForest wraps a random forest of the given number of trees.
type RandomForest[L comparable] struct {
	trees  int
	forest *randomforest.Forest
	labels *Labels[L]
}

func NewForest[L comparable](n int) *RandomForest[L] {
	return &RandomForest[L]{
		trees: n,
	}
}

// ConstructForest returns a constructor for forests of n trees.
func ConstructForest[L comparable](n int) func() *RandomForest[L] {
	return func() *RandomForest[L] {
		return NewForest[L](n)
	}
}

func (rf *RandomForest[L]) Train(ds model.Dataset[L]) error {
	x, y, labels, err := encode(ds)
	if err != nil {
		return err
	}
	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: x, Class: y}
	forest.Train(rf.trees)
	rf.forest = forest
	rf.labels = labels
	log.Debug().
		Int("trees", rf.trees).
		Int("samples", len(x)).
		Str("importance", fmt.Sprintf("%+v", forest.FeatureImportance)).
		Msg("forest trained")
	return nil
}

// Predict returns the label with the most votes.
func (rf *RandomForest[L]) Predict(e model.Example[L]) (L, error) {
	var label L
	if rf.forest == nil {
		return label, ErrNotFitted
	}
	votes := rf.forest.Vote(e.Features)
	if len(votes) == 0 {
		return label, ErrNotFitted
	}
	label, ok := rf.labels.Label(floats.MaxIdx(votes))
	if !ok {
		return label, fmt.Errorf("unknown class for votes %v", votes)
	}
	return label, nil
}
