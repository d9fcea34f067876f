package boost

import (
	"context"
	"errors"
	"sync"

	"github.com/drakos74/free-boost/internal/model"
)

// constant always predicts the same label.
type constant struct {
	label string
}

func (c *constant) Train(ds model.Dataset[string]) error {
	return nil
}

func (c *constant) Predict(e model.Example[string]) (string, error) {
	return c.label, nil
}

// scripted predicts by looking up the first feature.
type scripted map[float64]string

func (s scripted) Train(ds model.Dataset[string]) error {
	return nil
}

func (s scripted) Predict(e model.Example[string]) (string, error) {
	return s[e.Features[0]], nil
}

// majority predicts the most frequent label of its training set.
type majority struct {
	label string
}

func (m *majority) Train(ds model.Dataset[string]) error {
	count := make(map[string]int)
	best := 0
	for i := 0; i < ds.Size(); i++ {
		l := ds.Example(i).Label
		count[l]++
		if count[l] > best {
			best = count[l]
			m.label = l
		}
	}
	return nil
}

func (m *majority) Predict(e model.Example[string]) (string, error) {
	return m.label, nil
}

// spy records what it was trained with.
type spy struct {
	majority
	size     int
	weights  []float64
	weighted bool
}

func (s *spy) Train(ds model.Dataset[string]) error {
	s.size = ds.Size()
	return s.majority.Train(ds)
}

func (s *spy) TrainWeighted(ds model.Dataset[string], weights []float64) error {
	s.weighted = true
	s.weights = weights
	return s.Train(ds)
}

type broken struct{}

func (b broken) Train(ds model.Dataset[string]) error {
	return errors.New("broken")
}

func (b broken) Predict(e model.Example[string]) (string, error) {
	return "", errors.New("broken")
}

// sequence hands out the given learners in order, cycling when exhausted.
func sequence(learners ...Learner[string]) Factory[string] {
	var mutex sync.Mutex
	i := 0
	return func() (Learner[string], error) {
		mutex.Lock()
		defer mutex.Unlock()
		l := learners[i%len(learners)]
		i++
		return l, nil
	}
}

// cancelling cancels the context once it has been asked for the given number of learners.
func cancelling(cancel context.CancelFunc, after int, factory Factory[string]) Factory[string] {
	i := 0
	return func() (Learner[string], error) {
		i++
		if i == after {
			cancel()
		}
		return factory()
	}
}

// line puts the labels on consecutive integer positions of a single feature.
func line(labels ...string) model.Set[string] {
	set := model.NewSet[string]()
	for i, l := range labels {
		set = set.Add([]float64{float64(i)}, l)
	}
	return set
}
