package data

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Info carries optional metadata about the feature dimensions of a dataset.
// It is forwarded once to learners that can make use of it.
type Info struct {
	// Categorical flags the feature dimensions holding categorical values.
	Categorical []bool
}

// NewInfo creates a dataset info for the given number of numeric dimensions.
func NewInfo(dim int) Info {
	return Info{
		Categorical: make([]bool, dim),
	}
}

// WithCategorical marks the given dimension as categorical.
func (i Info) WithCategorical(dim int) Info {
	i.Categorical[dim] = true
	return i
}

// AssertConsistency checks that features and labels describe the same samples.
func AssertConsistency(xs, ys mat.Matrix) error {
	_, xn := xs.Dims()
	_, yn := ys.Dims()
	if xn != yn {
		return fmt.Errorf("features and labels should have the same number of columns: %d vs %d", xn, yn)
	}
	return nil
}

// AssertWeights checks that the weight vector covers the samples.
// An empty vector means no weighting and is always consistent.
func AssertWeights(xs mat.Matrix, w mat.Vector) error {
	if w == nil || w.Len() == 0 {
		return nil
	}
	_, xn := xs.Dims()
	if w.Len() != xn {
		return fmt.Errorf("weights should cover all sample columns: %d vs %d", w.Len(), xn)
	}
	return nil
}
