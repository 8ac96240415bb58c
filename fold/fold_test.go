package fold

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Geometry(t *testing.T) {

	type test struct {
		n       int
		k       int
		binSize int
		train   int
		lastBin int
		staged  int
	}

	tests := map[string]test{
		"even-split": {
			n:       10,
			k:       5,
			binSize: 2,
			train:   8,
			lastBin: 2,
			staged:  16,
		},
		"remainder": {
			n:       10,
			k:       3,
			binSize: 3,
			train:   6,
			lastBin: 4,
			staged:  13,
		},
		"two-folds": {
			n:       10,
			k:       2,
			binSize: 5,
			train:   5,
			lastBin: 5,
			staged:  10,
		},
		"one-per-fold": {
			n:       5,
			k:       5,
			binSize: 1,
			train:   4,
			lastBin: 1,
			staged:  8,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g, err := New(tt.n, tt.k)
			assert.NoError(t, err)
			assert.Equal(t, tt.binSize, g.BinSize)
			assert.Equal(t, tt.train, g.TrainSize)
			assert.Equal(t, tt.lastBin, g.LastBinSize)
			assert.Equal(t, tt.staged, g.StagedCols())
		})
	}
}

func TestNew_Invalid(t *testing.T) {

	type test struct {
		n int
		k int
	}

	tests := map[string]test{
		"zero-folds":      {n: 10, k: 0},
		"one-fold":        {n: 10, k: 1},
		"negative-folds":  {n: 10, k: -3},
		"too-few-samples": {n: 3, k: 5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(tt.n, tt.k)
			assert.Error(t, err)
		})
	}
}

func TestGeometry_Windows(t *testing.T) {

	g, err := New(10, 5)
	assert.NoError(t, err)

	// fold 0 holds out the columns right after the training block
	assert.Equal(t, Span{From: 8, Cols: 2}, g.Validation(0))
	// fold 1 holds out the very first columns
	assert.Equal(t, Span{From: 0, Cols: 2}, g.Validation(1))
	// the last fold absorbs the remainder bin
	assert.Equal(t, Span{From: 8, Cols: 8}, g.Train(4))

	g, err = New(10, 3)
	assert.NoError(t, err)

	assert.Equal(t, Span{From: 6, Cols: 4}, g.Validation(0))
	assert.Equal(t, Span{From: 6, Cols: 7}, g.Train(2))

	g, err = New(10, 2)
	assert.NoError(t, err)

	assert.Equal(t, Span{From: 5, Cols: 5}, g.Validation(0))
	assert.Equal(t, Span{From: 0, Cols: 5}, g.Validation(1))
}

func TestGeometry_Invariants(t *testing.T) {

	for n := 2; n <= 40; n++ {
		for k := 2; k <= n; k++ {
			g, err := New(n, k)
			assert.NoError(t, err, fmt.Sprintf("n = %d , k = %d", n, k))

			assert.Equal(t, n, g.BinSize*(g.K-1)+g.LastBinSize)
			assert.True(t, g.LastBinSize >= 1)

			// every sample is used in training or validation per fold, never both
			seen := make([]int, n)
			for i := 0; i < k; i++ {
				train := g.Train(i)
				val := g.Validation(i)
				assert.Equal(t, n, train.Cols+val.Cols)
				assert.True(t, train.To() <= g.StagedCols())
				assert.True(t, val.To() <= g.StagedCols())
				for c := val.From; c < val.To(); c++ {
					seen[c]++
				}
			}
			// the validation windows partition the columns exactly once
			for c, count := range seen {
				assert.Equal(t, 1, count, fmt.Sprintf("n = %d , k = %d , col = %d", n, k, c))
			}
		}
	}
}
