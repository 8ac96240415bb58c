package main

import (
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/drakos74/kfold/cv"
	xmath "github.com/drakos74/kfold/internal/math"
	"github.com/drakos74/kfold/internal/metrics"
	"github.com/drakos74/kfold/net"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

const (
	samples    = 200
	signalSize = 64
	features   = 8
	folds      = 5
)

func main() {

	go func() {
		err := metrics.Serve(6021)
		if err != nil {
			log.Warn().Err(err).Msg("could not serve metrics")
		}
	}()

	xs, ys := signalDataset()

	regression(xs, ys)
	classification(xs, ys)
}

// signalDataset synthesizes sine signals of two frequency bands
// and extracts their spectrum amplitudes as feature columns.
// The label is the frequency band of the signal.
func signalDataset() (*mat.Dense, *mat.Dense) {
	xs := mat.NewDense(features, samples, nil)
	ys := mat.NewDense(1, samples, nil)

	for j := 0; j < samples; j++ {
		period := 0.4
		class := 0.0
		if j%2 == 1 {
			period = 1.2
			class = 1.0
		}
		signal := xmath.Sine(1+rand.Float64(), signalSize, period)
		for i, v := range xmath.NewSpectrum(signal).Features(features) {
			xs.Set(i, j, v+0.1*rand.NormFloat64())
		}
		ys.Set(0, j, class)
	}
	return xs, ys
}

func regression(xs, ys *mat.Dense) {
	kf, err := cv.New(folds, net.NewLeastSquares(), net.MSE{}, xs, ys)
	if err != nil {
		log.Fatal().Err(err).Msg("could not set up harness")
	}

	score, err := kf.Evaluate()
	if err != nil {
		log.Fatal().Err(err).Msg("could not evaluate")
	}

	log.Info().
		Float64("mse", score).
		Floats64("scores", kf.Scores()).
		Msg("least squares")
}

func classification(xs, ys *mat.Dense) {
	kf, err := cv.New(folds, net.NewForest(100), net.Accuracy{}, xs, ys, cv.WithNumClasses(2))
	if err != nil {
		log.Fatal().Err(err).Msg("could not set up harness")
	}

	score, err := kf.Evaluate()
	if err != nil {
		log.Fatal().Err(err).Msg("could not evaluate")
	}

	log.Info().
		Float64("accuracy", score).
		Floats64("scores", kf.Scores()).
		Msg("random forest")
}
