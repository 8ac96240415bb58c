package net

import (
	"fmt"

	"github.com/cdipaolo/goml/base"
	"github.com/cdipaolo/goml/linear"
	"gonum.org/v1/gonum/mat"

	"github.com/drakos74/kfold/cv"
)

// Descent is a gradient descent least squares learner.
// It handles a single label row only.
// The first extra arg of a run overrides the learning rate.
type Descent struct {
	alpha      float64
	iterations int
}

// NewDescent creates a new gradient descent learner.
func NewDescent(alpha float64, iterations int) *Descent {
	return &Descent{
		alpha:      alpha,
		iterations: iterations,
	}
}

// Train runs batch gradient descent on the given training window.
func (d *Descent) Train(x, y mat.Matrix, args ...float64) (cv.Model, error) {
	dim, n := x.Dims()
	out, _ := y.Dims()
	if out != 1 {
		return nil, fmt.Errorf("descent handles a single label row: %d", out)
	}

	xx := make([][]float64, n)
	yy := make([]float64, n)
	for i := 0; i < n; i++ {
		xx[i] = make([]float64, dim)
		for j := 0; j < dim; j++ {
			xx[i][j] = x.At(j, i)
		}
		yy[i] = y.At(0, i)
	}

	alpha := d.alpha
	if len(args) > 0 {
		alpha = args[0]
	}

	model := linear.NewLeastSquares(base.BatchGA, alpha, 0, d.iterations, xx, yy)
	if err := model.Learn(); err != nil {
		return nil, fmt.Errorf("could not run gradient descent: %w", err)
	}

	return &descentModel{model: model}, nil
}

type descentModel struct {
	model *linear.LeastSquares
}

// Predict evaluates the fit on each feature column.
func (m *descentModel) Predict(x mat.Matrix) (*mat.Dense, error) {
	d, n := x.Dims()

	yy := mat.NewDense(1, n, nil)
	for j := 0; j < n; j++ {
		col := make([]float64, d)
		for i := 0; i < d; i++ {
			col[i] = x.At(i, j)
		}
		p, err := m.model.Predict(col)
		if err != nil {
			return nil, fmt.Errorf("could not predict: %w", err)
		}
		yy.Set(0, j, p[0])
	}
	return yy, nil
}
