// Package net provides reference learners and metrics for the cross validation harness.
// The learners wrap the fitting libraries behind the cv contract,
// the concrete model configuration stays with the learner.
package net

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/drakos74/kfold/cv"
)

// LeastSquares fits a multivariate linear model with a bias term by QR decomposition.
// It supports per-sample weights by scaling the normal equations with sqrt(w).
type LeastSquares struct{}

// NewLeastSquares creates a new least squares learner.
func NewLeastSquares() *LeastSquares {
	return &LeastSquares{}
}

// Train fits the model on the given training window.
func (l *LeastSquares) Train(x, y mat.Matrix, args ...float64) (cv.Model, error) {
	return l.fit(x, y, nil)
}

// TrainWeighted fits the model taking the per-sample weights into account.
func (l *LeastSquares) TrainWeighted(x, y mat.Matrix, w mat.Vector, args ...float64) (cv.Model, error) {
	return l.fit(x, y, w)
}

func (l *LeastSquares) fit(x, y mat.Matrix, w mat.Vector) (cv.Model, error) {
	d, n := x.Dims()
	out, _ := y.Dims()

	// rows are samples, the extra column carries the bias
	a := mat.NewDense(n, d+1, nil)
	b := mat.NewDense(n, out, nil)
	for i := 0; i < n; i++ {
		scale := 1.0
		if w != nil {
			scale = math.Sqrt(w.AtVec(i))
		}
		for j := 0; j < d; j++ {
			a.Set(i, j, scale*x.At(j, i))
		}
		a.Set(i, d, scale)
		for o := 0; o < out; o++ {
			b.Set(i, o, scale*y.At(o, i))
		}
	}

	qr := new(mat.QR)
	qr.Factorize(a)

	coef := mat.NewDense(d+1, out, nil)
	if err := qr.SolveTo(coef, false, b); err != nil {
		return nil, fmt.Errorf("could not solve least squares: %w", err)
	}

	return &lsqModel{coef: coef}, nil
}

type lsqModel struct {
	coef *mat.Dense
}

// Predict evaluates the linear model on the given feature columns.
func (m *lsqModel) Predict(x mat.Matrix) (*mat.Dense, error) {
	d, n := x.Dims()
	rows, out := m.coef.Dims()
	if rows != d+1 {
		return nil, fmt.Errorf("feature dimensions do not match the fit: %d vs %d", d, rows-1)
	}

	yy := mat.NewDense(out, n, nil)
	for j := 0; j < n; j++ {
		for o := 0; o < out; o++ {
			v := m.coef.At(d, o)
			for i := 0; i < d; i++ {
				v += m.coef.At(i, o) * x.At(i, j)
			}
			yy.Set(o, j, v)
		}
	}
	return yy, nil
}
