package net

import (
	"fmt"
	"math"

	xml "github.com/drakos74/go-ex-machina/xmachina/ml"
	xnet "github.com/drakos74/go-ex-machina/xmachina/net"
	"github.com/drakos74/go-ex-machina/xmachina/net/ff"
	"github.com/drakos74/go-ex-machina/xmath"
	"gonum.org/v1/gonum/mat"

	"github.com/drakos74/kfold/cv"
)

// Neural is a feed-forward network learner.
// The hidden layer sizes are fixed at construction,
// input and output sizes follow the training window shape.
// The first extra arg of a run overrides the number of training epochs.
type Neural struct {
	hidden []int
	rate   float64
	epochs int
}

// NewNeural creates a new feed-forward learner with the given hidden layers.
func NewNeural(hidden ...int) *Neural {
	return &Neural{
		hidden: hidden,
		rate:   0.1,
		epochs: 10,
	}
}

// WithRate adjusts the learning rate.
func (n *Neural) WithRate(rate float64) *Neural {
	n.rate = rate
	return n
}

// WithEpochs adjusts the default number of training epochs.
func (n *Neural) WithEpochs(epochs int) *Neural {
	n.epochs = epochs
	return n
}

// Train runs the network over the training window for the configured epochs.
func (n *Neural) Train(x, y mat.Matrix, args ...float64) (cv.Model, error) {
	d, cols := x.Dims()
	out, _ := y.Dims()
	if cols == 0 {
		return nil, fmt.Errorf("no samples to train on")
	}

	rate := xml.Learn(n.rate, n.rate)
	initW := xmath.Rand(-1, 1, math.Sqrt)
	initB := xmath.Rand(-1, 1, math.Sqrt)

	network := ff.New(d, out)
	for _, s := range n.hidden {
		network.Add(s, xnet.NewBuilder().
			WithModule(xml.Base().
				WithRate(rate).
				WithActivation(xml.TanH)).
			WithWeights(initW, initB).
			Factory(xnet.NewActivationCell))
	}
	network.Add(out, xnet.NewBuilder().
		WithModule(xml.Base().
			WithRate(rate).
			WithActivation(xml.TanH)).
		WithWeights(initW, initB).
		Factory(xnet.NewActivationCell))
	network.Loss(xml.Pow)

	epochs := n.epochs
	if len(args) > 0 {
		epochs = int(args[0])
	}

	for e := 0; e < epochs; e++ {
		for j := 0; j < cols; j++ {
			in := xmath.Vec(d)
			for i := 0; i < d; i++ {
				in[i] = x.At(i, j)
			}
			exp := xmath.Vec(out)
			for o := 0; o < out; o++ {
				exp[o] = y.At(o, j)
			}
			network.Train(in, exp)
		}
	}

	return &neuralModel{net: network}, nil
}

type neuralModel struct {
	net *ff.Network
}

// Predict runs the network forward on each feature column.
func (m *neuralModel) Predict(x mat.Matrix) (*mat.Dense, error) {
	d, n := x.Dims()

	var yy *mat.Dense
	for j := 0; j < n; j++ {
		in := xmath.Vec(d)
		for i := 0; i < d; i++ {
			in[i] = x.At(i, j)
		}
		out := m.net.Predict(in)
		if yy == nil {
			yy = mat.NewDense(len(out), n, nil)
		}
		for o, v := range out {
			yy.Set(o, j, v)
		}
	}
	if yy == nil {
		return nil, fmt.Errorf("no samples to predict on")
	}
	return yy, nil
}
