package net

import (
	"fmt"

	randomforest "github.com/malaschitz/randomForest"
	"gonum.org/v1/gonum/mat"

	"github.com/drakos74/kfold/cv"
	"github.com/drakos74/kfold/data"
)

// Forest is a random forest classification learner.
// Labels are class indices carried in the first label row.
type Forest struct {
	trees   int
	classes int
	info    data.Info
}

// NewForest creates a new forest learner with the given number of trees.
func NewForest(trees int) *Forest {
	return &Forest{
		trees: trees,
	}
}

// Configure picks up the dataset metadata and the class count.
func (f *Forest) Configure(info data.Info, numClasses int) {
	f.info = info
	f.classes = numClasses
}

// Train grows a forest on the given training window.
func (f *Forest) Train(x, y mat.Matrix, args ...float64) (cv.Model, error) {
	d, n := x.Dims()
	if n == 0 {
		return nil, fmt.Errorf("no samples to train on")
	}

	xx := make([][]float64, n)
	yy := make([]int, n)
	for i := 0; i < n; i++ {
		xx[i] = make([]float64, d)
		for j := 0; j < d; j++ {
			xx[i][j] = x.At(j, i)
		}
		yy[i] = int(y.At(0, i))
		if f.classes > 0 && yy[i] >= f.classes {
			return nil, fmt.Errorf("label out of the class range: %d vs %d", yy[i], f.classes)
		}
	}

	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: xx, Class: yy}
	forest.Train(f.trees)

	return &forestModel{forest: forest}, nil
}

type forestModel struct {
	forest *randomforest.Forest
}

// Predict votes each feature column into a class index.
func (m *forestModel) Predict(x mat.Matrix) (*mat.Dense, error) {
	d, n := x.Dims()

	yy := mat.NewDense(1, n, nil)
	for j := 0; j < n; j++ {
		col := make([]float64, d)
		for i := 0; i < d; i++ {
			col[i] = x.At(i, j)
		}
		votes := m.forest.Vote(col)
		class := 0
		for c, v := range votes {
			if v > votes[class] {
				class = c
			}
		}
		yy.Set(0, j, float64(class))
	}
	return yy, nil
}
