package ml

import (
	"errors"
	"fmt"

	"github.com/drakos74/free-boost/internal/model"
)

var (
	ErrNoData         = errors.New("no training data")
	ErrNotFitted      = errors.New("model not fitted")
	ErrDimension      = errors.New("feature dimension mismatch")
	ErrTooManyClasses = errors.New("too many classes")
)

// Labels maps comparable labels to dense class indices in order of first appearance.
type Labels[L comparable] struct {
	index  map[L]int
	values []L
}

// NewLabels creates an empty label index.
func NewLabels[L comparable]() *Labels[L] {
	return &Labels[L]{
		index:  make(map[L]int),
		values: make([]L, 0),
	}
}

// Add returns the class index of the label, registering it if needed.
func (l *Labels[L]) Add(v L) int {
	if i, ok := l.index[v]; ok {
		return i
	}
	i := len(l.values)
	l.index[v] = i
	l.values = append(l.values, v)
	return i
}

// Index returns the class index of the label.
func (l *Labels[L]) Index(v L) (int, bool) {
	i, ok := l.index[v]
	return i, ok
}

// Label returns the label for the class index.
func (l *Labels[L]) Label(i int) (L, bool) {
	var v L
	if i < 0 || i >= len(l.values) {
		return v, false
	}
	return l.values[i], true
}

// Len returns the number of classes.
func (l *Labels[L]) Len() int {
	return len(l.values)
}

// encode splits the dataset into a feature matrix and class indices.
func encode[L comparable](ds model.Dataset[L]) ([][]float64, []int, *Labels[L], error) {
	if ds == nil || ds.Size() == 0 {
		return nil, nil, nil, ErrNoData
	}
	n := ds.Size()
	dim := len(ds.Example(0).Features)
	labels := NewLabels[L]()
	x := make([][]float64, n)
	y := make([]int, n)
	for i := 0; i < n; i++ {
		e := ds.Example(i)
		if len(e.Features) != dim {
			return nil, nil, nil, fmt.Errorf("example %d has %d features instead of %d: %w", i, len(e.Features), dim, ErrDimension)
		}
		x[i] = e.Features
		y[i] = labels.Add(e.Label)
	}
	return x, y, labels, nil
}
