package ml

import (
	"fmt"
	"strconv"

	"github.com/drakos74/free-boost/internal/model"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/trees"
)

// Tree is an ID3 decision tree over float features.
type Tree[L comparable] struct {
	prune    float64
	tree     *trees.ID3DecisionTree
	features []*base.FloatAttribute
	class    *base.CategoricalAttribute
	labels   *Labels[L]
}

// NewTree creates a tree that prunes with the given ratio held out.
// A zero ratio disables pruning.
func NewTree[L comparable](prune float64) *Tree[L] {
	return &Tree[L]{prune: prune}
}

func ConstructTree[L comparable](prune float64) func() *Tree[L] {
	return func() *Tree[L] {
		return NewTree[L](prune)
	}
}

func (t *Tree[L]) Train(ds model.Dataset[L]) error {
	x, y, labels, err := encode(ds)
	if err != nil {
		return err
	}
	t.features = make([]*base.FloatAttribute, len(x[0]))
	for i := range t.features {
		t.features[i] = base.NewFloatAttribute(fmt.Sprintf("x%d", i))
	}
	t.class = base.NewCategoricalAttribute()
	t.class.SetName("class")
	for c := 0; c < labels.Len(); c++ {
		t.class.GetSysValFromString(strconv.Itoa(c))
	}
	instances, err := t.instances(x, y)
	if err != nil {
		return fmt.Errorf("could not build instances: %w", err)
	}
	tree := trees.NewID3DecisionTree(t.prune)
	if err := tree.Fit(instances); err != nil {
		return fmt.Errorf("could not fit tree: %w", err)
	}
	t.tree = tree
	t.labels = labels
	return nil
}

func (t *Tree[L]) Predict(e model.Example[L]) (L, error) {
	var label L
	if t.tree == nil {
		return label, ErrNotFitted
	}
	if len(e.Features) != len(t.features) {
		return label, fmt.Errorf("%d features instead of %d: %w", len(e.Features), len(t.features), ErrDimension)
	}
	instances, err := t.instances([][]float64{e.Features}, []int{0})
	if err != nil {
		return label, err
	}
	predictions, err := t.tree.Predict(instances)
	if err != nil {
		return label, fmt.Errorf("could not predict: %w", err)
	}
	c, err := strconv.Atoi(base.GetClass(predictions, 0))
	if err != nil {
		return label, fmt.Errorf("unexpected class: %w", err)
	}
	label, ok := t.labels.Label(c)
	if !ok {
		return label, fmt.Errorf("unknown class %d", c)
	}
	return label, nil
}

func (t *Tree[L]) instances(x [][]float64, y []int) (*base.DenseInstances, error) {
	instances := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(t.features))
	for i, attr := range t.features {
		specs[i] = instances.AddAttribute(attr)
	}
	class := instances.AddAttribute(t.class)
	if err := instances.AddClassAttribute(t.class); err != nil {
		return nil, err
	}
	if err := instances.Extend(len(x)); err != nil {
		return nil, err
	}
	for r, row := range x {
		for i, v := range row {
			instances.Set(specs[i], r, base.PackFloatToBytes(v))
		}
		instances.Set(class, r, t.class.GetSysValFromString(strconv.Itoa(y[r])))
	}
	return instances, nil
}
