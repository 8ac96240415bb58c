package buffer

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/drakos74/kfold/fold"
)

// Staged is a column-major sample buffer extended for k-fold rotation.
// The first TrainSize-BinSize columns of the source are repeated at the end of the arena,
// so that every training window is a single contiguous span,
// even when the logical training set wraps around the end of the data.
// The arena is allocated once at staging and never mutated afterwards.
type Staged struct {
	geom fold.Geometry
	data *mat.Dense
}

// Stage copies the source columns into a new owned arena laid out for the given geometry.
// For k == 2 the windows never wrap, so the arena has exactly the source columns.
func Stage(src mat.Matrix, g fold.Geometry) (*Staged, error) {
	rows, cols := src.Dims()
	if cols != g.Samples {
		return nil, fmt.Errorf("buffer columns do not match the fold geometry: %d vs %d", cols, g.Samples)
	}
	data := mat.NewDense(rows, g.StagedCols(), nil)
	for j := 0; j < g.StagedCols(); j++ {
		col := j
		if col >= g.Samples {
			col = j - g.Samples
		}
		for i := 0; i < rows; i++ {
			data.Set(i, j, src.At(i, col))
		}
	}
	return &Staged{
		geom: g,
		data: data,
	}, nil
}

// Geometry returns the fold geometry the buffer was staged for.
func (s *Staged) Geometry() fold.Geometry {
	return s.geom
}

// Window returns a zero-copy view of the given column span.
// The view references the arena directly and stays valid for the lifetime of the buffer.
func (s *Staged) Window(sp fold.Span) mat.Matrix {
	rows, _ := s.data.Dims()
	return s.data.Slice(0, rows, sp.From, sp.To())
}

// Train returns the training window for the given fold.
func (s *Staged) Train(i int) mat.Matrix {
	return s.Window(s.geom.Train(i))
}

// Validation returns the held-out window for the given fold.
func (s *Staged) Validation(i int) mat.Matrix {
	return s.Window(s.geom.Validation(i))
}

// StagedVec is the vector shape of Staged, used for per-sample weights.
// It follows exactly the same column arithmetic as the matrix buffers.
type StagedVec struct {
	geom fold.Geometry
	data *mat.VecDense
}

// StageVec copies the source vector into a new owned arena laid out for the given geometry.
func StageVec(src mat.Vector, g fold.Geometry) (*StagedVec, error) {
	if src.Len() != g.Samples {
		return nil, fmt.Errorf("buffer length does not match the fold geometry: %d vs %d", src.Len(), g.Samples)
	}
	data := mat.NewVecDense(g.StagedCols(), nil)
	for j := 0; j < g.StagedCols(); j++ {
		col := j
		if col >= g.Samples {
			col = j - g.Samples
		}
		data.SetVec(j, src.AtVec(col))
	}
	return &StagedVec{
		geom: g,
		data: data,
	}, nil
}

// Geometry returns the fold geometry the buffer was staged for.
func (s *StagedVec) Geometry() fold.Geometry {
	return s.geom
}

// Window returns a zero-copy view of the given column span.
func (s *StagedVec) Window(sp fold.Span) mat.Vector {
	return s.data.SliceVec(sp.From, sp.To())
}

// Train returns the training window for the given fold.
func (s *StagedVec) Train(i int) mat.Vector {
	return s.Window(s.geom.Train(i))
}

// Validation returns the held-out window for the given fold.
func (s *StagedVec) Validation(i int) mat.Vector {
	return s.Window(s.geom.Validation(i))
}
