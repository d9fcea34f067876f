package boost

import (
	"github.com/drakos74/free-boost/internal/model"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// resample draws a bootstrap replica of the dataset,
// picking each of the N examples with replacement according to the weights.
func resample[L comparable](ds model.Dataset[L], w Weights, seed uint64) model.Set[L] {
	categorical := distuv.NewCategorical(w, rand.NewSource(seed))
	set := make(model.Set[L], ds.Size())
	for i := range set {
		set[i] = ds.Example(int(categorical.Rand()))
	}
	return set
}
