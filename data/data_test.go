package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestAssertConsistency(t *testing.T) {

	type test struct {
		xs  *mat.Dense
		ys  *mat.Dense
		err bool
	}

	tests := map[string]test{
		"matching": {
			xs: mat.NewDense(3, 10, nil),
			ys: mat.NewDense(1, 10, nil),
		},
		"label-matrix": {
			xs: mat.NewDense(3, 10, nil),
			ys: mat.NewDense(4, 10, nil),
		},
		"mismatch": {
			xs:  mat.NewDense(3, 10, nil),
			ys:  mat.NewDense(1, 9, nil),
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := AssertConsistency(tt.xs, tt.ys)
			if tt.err {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssertWeights(t *testing.T) {

	xs := mat.NewDense(3, 10, nil)

	assert.NoError(t, AssertWeights(xs, nil))
	assert.NoError(t, AssertWeights(xs, mat.NewVecDense(10, nil)))
	assert.Error(t, AssertWeights(xs, mat.NewVecDense(4, nil)))
}

func TestInfo(t *testing.T) {

	info := NewInfo(3).WithCategorical(1)
	assert.Equal(t, []bool{false, true, false}, info.Categorical)
}
