package model

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Example is a labeled input vector.
type Example[L comparable] struct {
	Features []float64 `json:"features"`
	Label    L         `json:"label"`
}

// String creates a string representation of the example.
func (e Example[L]) String() string {
	return fmt.Sprintf("%v -> %v", e.Features, e.Label)
}

// Dataset defines an ordered, indexable collection of examples.
// Implementations must allow concurrent reads.
type Dataset[L comparable] interface {
	Size() int
	Example(i int) Example[L]
}

// Set is a slice backed Dataset.
type Set[L comparable] []Example[L]

// NewSet creates a new set from the given examples.
func NewSet[L comparable](examples ...Example[L]) Set[L] {
	set := make(Set[L], len(examples))
	copy(set, examples)
	return set
}

// Size returns the number of examples in the set.
func (s Set[L]) Size() int {
	return len(s)
}

// Example returns the example at index i.
func (s Set[L]) Example(i int) Example[L] {
	return s[i]
}

// Add appends an example to the set.
func (s Set[L]) Add(x []float64, label L) Set[L] {
	return append(s, Example[L]{Features: x, Label: label})
}

// Labels returns the distinct labels of the dataset in order of first appearance.
func Labels[L comparable](ds Dataset[L]) []L {
	seen := make(map[L]struct{})
	labels := make([]L, 0)
	for i := 0; i < ds.Size(); i++ {
		l := ds.Example(i).Label
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			labels = append(labels, l)
		}
	}
	return labels
}

// Split shuffles the dataset with the given seed and splits it into a train and a test set.
// ratio is the fraction of examples that end up in the train set.
func Split[L comparable](ds Dataset[L], ratio float64, seed uint64) (Set[L], Set[L], error) {
	if ratio <= 0 || ratio > 1 {
		return nil, nil, fmt.Errorf("invalid split ratio %.2f", ratio)
	}
	n := ds.Size()
	cut := int(float64(n) * ratio)
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	train := make(Set[L], 0, cut)
	test := make(Set[L], 0, n-cut)
	for i, j := range perm {
		if i < cut {
			train = append(train, ds.Example(j))
		} else {
			test = append(test, ds.Example(j))
		}
	}
	return train, test, nil
}
