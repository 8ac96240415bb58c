package net

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/drakos74/kfold/cv"
)

// MSE scores a model with the mean squared error over the validation window.
// Lower is better.
type MSE struct{}

func (MSE) Evaluate(m cv.Model, x, y mat.Matrix) (float64, error) {
	pred, err := m.Predict(x)
	if err != nil {
		return 0, fmt.Errorf("could not predict: %w", err)
	}

	out, n := y.Dims()
	po, pn := pred.Dims()
	if po != out || pn != n {
		return 0, fmt.Errorf("prediction shape does not match the labels: %dx%d vs %dx%d", po, pn, out, n)
	}

	var sum float64
	for j := 0; j < n; j++ {
		for o := 0; o < out; o++ {
			d := pred.At(o, j) - y.At(o, j)
			sum += d * d
		}
	}
	return sum / float64(n*out), nil
}

// Accuracy scores a classification model with the share of exactly matched classes.
// Higher is better.
type Accuracy struct{}

func (Accuracy) Evaluate(m cv.Model, x, y mat.Matrix) (float64, error) {
	pred, err := m.Predict(x)
	if err != nil {
		return 0, fmt.Errorf("could not predict: %w", err)
	}

	_, n := y.Dims()
	var hits float64
	for j := 0; j < n; j++ {
		if math.Round(pred.At(0, j)) == math.Round(y.At(0, j)) {
			hits++
		}
	}
	return hits / float64(n), nil
}

// RSquared scores a regression model with the coefficient of determination
// of the first label row. Higher is better.
type RSquared struct{}

func (RSquared) Evaluate(m cv.Model, x, y mat.Matrix) (float64, error) {
	pred, err := m.Predict(x)
	if err != nil {
		return 0, fmt.Errorf("could not predict: %w", err)
	}

	_, n := y.Dims()
	estimates := make([]float64, n)
	values := make([]float64, n)
	for j := 0; j < n; j++ {
		estimates[j] = pred.At(0, j)
		values[j] = y.At(0, j)
	}
	return stat.RSquaredFrom(estimates, values, nil), nil
}
