package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/drakos74/kfold/fold"
)

func matrix(rows, cols int) *mat.Dense {
	data := make([]float64, rows*cols)
	m := mat.NewDense(rows, cols, data)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			m.Set(i, j, float64(j)+float64(i)/10)
		}
	}
	return m
}

func TestStage_Layout(t *testing.T) {

	type test struct {
		n      int
		k      int
		staged []float64 // expected first row of the arena
	}

	tests := map[string]test{
		"no-extension": {
			n:      10,
			k:      2,
			staged: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		"remainder": {
			n:      10,
			k:      3,
			staged: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1, 2},
		},
		"even-split": {
			n:      10,
			k:      5,
			staged: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1, 2, 3, 4, 5},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g, err := fold.New(tt.n, tt.k)
			assert.NoError(t, err)

			s, err := Stage(matrix(2, tt.n), g)
			assert.NoError(t, err)

			_, cols := s.data.Dims()
			assert.Equal(t, len(tt.staged), cols)
			for j, v := range tt.staged {
				assert.Equal(t, v, s.data.At(0, j))
				// second row carries the same column index shifted by the row offset
				assert.Equal(t, v+0.1, s.data.At(1, j))
			}
		})
	}
}

func TestStage_Windows(t *testing.T) {

	g, err := fold.New(10, 5)
	assert.NoError(t, err)

	s, err := Stage(matrix(3, 10), g)
	assert.NoError(t, err)
	assert.Equal(t, g, s.Geometry())

	for i := 0; i < g.K; i++ {
		train := s.Train(i)
		val := s.Validation(i)

		_, tc := train.Dims()
		_, vc := val.Dims()
		assert.Equal(t, 10, tc+vc)

		// windows carry contiguous column indices of the staged arena
		span := g.Train(i)
		for j := 0; j < tc; j++ {
			col := span.From + j
			if col >= 10 {
				col -= 10
			}
			assert.Equal(t, float64(col), train.At(0, j))
		}
	}
}

func TestStage_ZeroCopy(t *testing.T) {

	g, err := fold.New(10, 3)
	assert.NoError(t, err)

	s, err := Stage(matrix(2, 10), g)
	assert.NoError(t, err)

	w, ok := s.Window(g.Validation(1)).(*mat.Dense)
	assert.True(t, ok)

	// writing through the view is visible in the arena, no copy was made
	w.Set(0, 0, 42)
	assert.Equal(t, 42.0, s.data.At(0, g.Validation(1).From))
}

func TestStage_Mismatch(t *testing.T) {

	g, err := fold.New(10, 3)
	assert.NoError(t, err)

	_, err = Stage(matrix(2, 7), g)
	assert.Error(t, err)

	_, err = StageVec(mat.NewVecDense(7, nil), g)
	assert.Error(t, err)
}

func TestStageVec(t *testing.T) {

	g, err := fold.New(10, 3)
	assert.NoError(t, err)

	src := mat.NewVecDense(10, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	s, err := StageVec(src, g)
	assert.NoError(t, err)
	assert.Equal(t, g, s.Geometry())

	assert.Equal(t, g.StagedCols(), s.data.Len())
	// repeated prefix at the end of the arena
	assert.Equal(t, 0.0, s.data.AtVec(10))
	assert.Equal(t, 2.0, s.data.AtVec(12))

	train := s.Train(2)
	assert.Equal(t, g.Train(2).Cols, train.Len())
	assert.Equal(t, 6.0, train.AtVec(0))
}
