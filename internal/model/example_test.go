package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabels(t *testing.T) {
	set := NewSet(
		Example[string]{Features: []float64{1}, Label: "b"},
		Example[string]{Features: []float64{2}, Label: "a"},
		Example[string]{Features: []float64{3}, Label: "b"},
		Example[string]{Features: []float64{4}, Label: "c"},
	)
	assert.Equal(t, []string{"b", "a", "c"}, Labels[string](set))
}

func TestSplit(t *testing.T) {

	type test struct {
		ratio float64
		train int
		test  int
		err   bool
	}

	tests := map[string]test{
		"all": {
			ratio: 1,
			train: 10,
			test:  0,
		},
		"most": {
			ratio: 0.8,
			train: 8,
			test:  2,
		},
		"zero": {
			ratio: 0,
			err:   true,
		},
		"above-one": {
			ratio: 1.5,
			err:   true,
		},
	}

	set := Set[int]{}
	for i := 0; i < 10; i++ {
		set = set.Add([]float64{float64(i)}, i%2)
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			train, test, err := Split[int](set, tt.ratio, 7)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.train, train.Size())
			assert.Equal(t, tt.test, test.Size())

			seen := make(map[float64]bool)
			for _, e := range append(train, test...) {
				seen[e.Features[0]] = true
			}
			assert.Equal(t, 10, len(seen))
		})
	}
}

func TestSplit_Deterministic(t *testing.T) {
	set := Set[int]{}
	for i := 0; i < 20; i++ {
		set = set.Add([]float64{float64(i)}, i%3)
	}
	a, _, err := Split[int](set, 0.5, 42)
	require.NoError(t, err)
	b, _, err := Split[int](set, 0.5, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestReadCSV(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "data.csv")
	content := "x,y,class\n" +
		"1.0,2.0,yes\n" +
		"3.5,0.5,no\n" +
		"2.0,1.0,yes\n"
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0644))

	set, err := ReadCSV(fileName, true)
	require.NoError(t, err)
	require.Equal(t, 3, set.Size())

	assert.Equal(t, []float64{1.0, 2.0}, set.Example(0).Features)
	assert.Equal(t, "yes", set.Example(0).Label)
	assert.Equal(t, []float64{3.5, 0.5}, set.Example(1).Features)
	assert.Equal(t, "no", set.Example(1).Label)
}

func TestReadCSV_Missing(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "missing.csv"), true)
	assert.Error(t, err)
}
