package fold

import "fmt"

// Geometry holds the column arithmetic for splitting n samples into k bins.
// All validation folds have exactly BinSize columns, except fold 0,
// which absorbs the remainder of the division into LastBinSize.
type Geometry struct {
	K           int
	Samples     int
	BinSize     int
	TrainSize   int
	LastBinSize int
}

// Span defines a contiguous column window into a staged buffer.
type Span struct {
	From int
	Cols int
}

// To returns the exclusive end column of the span.
func (s Span) To() int {
	return s.From + s.Cols
}

// New computes the fold geometry for n samples split into k folds.
// It requires k >= 2 and n >= k, so that every fold gets at least one column.
func New(n, k int) (Geometry, error) {
	if k < 2 {
		return Geometry{}, fmt.Errorf("folds should not be less than 2: %d", k)
	}
	if n < k {
		return Geometry{}, fmt.Errorf("not enough samples for %d folds: %d", k, n)
	}
	binSize := n / k
	return Geometry{
		K:           k,
		Samples:     n,
		BinSize:     binSize,
		TrainSize:   binSize * (k - 1),
		LastBinSize: n - (k-1)*binSize,
	}, nil
}

// StagedCols returns the column count of the staged buffer,
// the original samples plus the repeated prefix.
func (g Geometry) StagedCols() int {
	return g.Samples + g.BinSize*(g.K-2)
}

// Train returns the training window for the given fold.
// The last fold absorbs the remainder bin,
// so its window is shorter or longer than the standard TrainSize.
func (g Geometry) Train(i int) Span {
	cols := g.TrainSize
	if i == g.K-1 {
		cols = g.LastBinSize + (g.K-2)*g.BinSize
	}
	return Span{From: g.BinSize * i, Cols: cols}
}

// Validation returns the held-out window for the given fold.
// The first rotation keeps its held-out columns physically after the training block,
// so fold 0 starts at TrainSize instead of column 0.
func (g Geometry) Validation(i int) Span {
	if i == 0 {
		return Span{From: g.TrainSize, Cols: g.LastBinSize}
	}
	return Span{From: g.BinSize * (i - 1), Cols: g.BinSize}
}
