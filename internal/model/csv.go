package model

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/base"
)

// ReadCSV loads the examples of a csv file.
// The last column is used as the label, every other numeric column becomes a feature.
// Non-numeric feature columns are ignored.
func ReadCSV(fileName string, headers bool) (Set[string], error) {
	instances, err := base.ParseCSVToInstances(fileName, headers)
	if err != nil {
		return nil, fmt.Errorf("could not parse '%s': %w", fileName, err)
	}

	attributes := base.NonClassFloatAttributes(instances)
	specs := make([]base.AttributeSpec, len(attributes))
	for i, attr := range attributes {
		spec, err := instances.GetAttribute(attr)
		if err != nil {
			return nil, fmt.Errorf("could not resolve attribute '%s': %w", attr.GetName(), err)
		}
		specs[i] = spec
	}

	_, rows := instances.Size()
	set := make(Set[string], rows)
	for row := 0; row < rows; row++ {
		x := make([]float64, len(specs))
		for i, spec := range specs {
			x[i] = base.UnpackBytesToFloat(instances.Get(spec, row))
		}
		set[row] = Example[string]{
			Features: x,
			Label:    base.GetClass(instances, row),
		}
	}

	log.Debug().
		Str("file", fileName).
		Int("examples", rows).
		Int("features", len(specs)).
		Msg("loaded dataset")
	return set, nil
}
