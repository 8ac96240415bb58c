// Package cv implements a k-fold cross validation harness over column-major sample buffers.
//
// The harness partitions the samples into k contiguous folds, trains k models,
// each on k-1 folds, scores each on its held-out fold and returns the mean score,
// while keeping the model of the last fold around for inspection.
// Partitioning is zero-copy: the buffers are staged once at construction,
// with a bounded prefix repeated at the end of the arena,
// so that every training window is a single contiguous view.
package cv

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/drakos74/kfold/buffer"
	"github.com/drakos74/kfold/data"
	"github.com/drakos74/kfold/fold"
	xmath "github.com/drakos74/kfold/internal/math"
	"github.com/drakos74/kfold/internal/metrics"
)

// Model is a trained artifact that predicts label columns for the given feature columns.
type Model interface {
	Predict(x mat.Matrix) (*mat.Dense, error)
}

// Learner trains a model on a training window.
// The extra args are forwarded verbatim from Evaluate
// and are interpreted by the concrete learner.
type Learner interface {
	Train(x, y mat.Matrix, args ...float64) (Model, error)
}

// WeightedLearner is a Learner that takes per-sample weights into account.
type WeightedLearner interface {
	Learner
	TrainWeighted(x, y mat.Matrix, w mat.Vector, args ...float64) (Model, error)
}

// Metric scores a trained model against a validation window.
// Whether higher or lower is better is a convention of the concrete metric.
type Metric interface {
	Evaluate(m Model, x, y mat.Matrix) (float64, error)
}

// InfoAware learners receive the dataset metadata once at harness construction.
type InfoAware interface {
	Configure(info data.Info, numClasses int)
}

// Option configures the harness at construction time.
type Option func(kf *KFold)

// WithWeights supplies per-sample weights.
// A nil or empty vector keeps the plain training path.
func WithWeights(w mat.Vector) Option {
	return func(kf *KFold) {
		kf.weights = w
	}
}

// WithInfo supplies dataset metadata for info-aware learners.
func WithInfo(info data.Info) Option {
	return func(kf *KFold) {
		kf.info = &info
	}
}

// WithNumClasses supplies the label class count for info-aware learners.
func WithNumClasses(c int) Option {
	return func(kf *KFold) {
		kf.numClasses = c
	}
}

// KFold drives the k-fold cross validation of a learner under a metric.
// It owns the staged buffers and the most recently trained model.
// A harness instance is meant for sequential use, nothing is synchronised internally.
type KFold struct {
	id      string
	geom    fold.Geometry
	learner Learner
	metric  Metric

	// weighted is resolved once at construction,
	// nil means the plain training path is used for every fold
	weighted WeightedLearner

	xs *buffer.Staged
	ys *buffer.Staged
	ws *buffer.StagedVec

	weights    mat.Vector
	info       *data.Info
	numClasses int

	scores []float64
	last   holder
}

// New creates a harness for k folds over the given features and labels.
// Columns are samples for both buffers.
// It fails for k < 2, for fewer samples than folds, for inconsistent buffer shapes,
// and for weighted datasets when the learner cannot handle weights.
func New(k int, learner Learner, metric Metric, xs, ys mat.Matrix, opts ...Option) (*KFold, error) {
	if learner == nil {
		return nil, fmt.Errorf("cv: no learner provided")
	}
	if metric == nil {
		return nil, fmt.Errorf("cv: no metric provided")
	}

	kf := &KFold{
		id:      uuid.New().String(),
		learner: learner,
		metric:  metric,
	}
	for _, opt := range opts {
		opt(kf)
	}

	_, n := xs.Dims()
	geom, err := fold.New(n, k)
	if err != nil {
		return nil, fmt.Errorf("cv: %w", err)
	}
	kf.geom = geom

	if err := data.AssertConsistency(xs, ys); err != nil {
		return nil, fmt.Errorf("cv: %w", err)
	}
	if err := data.AssertWeights(xs, kf.weights); err != nil {
		return nil, fmt.Errorf("cv: %w", err)
	}

	if kf.xs, err = buffer.Stage(xs, geom); err != nil {
		return nil, fmt.Errorf("cv: could not stage features: %w", err)
	}
	if kf.ys, err = buffer.Stage(ys, geom); err != nil {
		return nil, fmt.Errorf("cv: could not stage labels: %w", err)
	}

	if kf.weights != nil && kf.weights.Len() > 0 {
		weighted, ok := learner.(WeightedLearner)
		if !ok {
			return nil, fmt.Errorf("cv: learner %s does not support per-sample weights", learnerType(learner))
		}
		kf.weighted = weighted
		if kf.ws, err = buffer.StageVec(kf.weights, geom); err != nil {
			return nil, fmt.Errorf("cv: could not stage weights: %w", err)
		}
	}

	if aware, ok := learner.(InfoAware); ok && (kf.info != nil || kf.numClasses > 0) {
		info := data.Info{}
		if kf.info != nil {
			info = *kf.info
		}
		aware.Configure(info, kf.numClasses)
	}

	log.Debug().
		Str("id", kf.id).
		Str("learner", learnerType(learner)).
		Int("folds", geom.K).
		Int("samples", geom.Samples).
		Bool("weighted", kf.weighted != nil).
		Msg("staged dataset")

	return kf, nil
}

// Evaluate runs one full k-fold pass and returns the arithmetic mean of the per-fold scores.
// Every fold contributes equally to the mean,
// even though fold 0 can hold more validation columns than the rest.
// The extra args are forwarded verbatim to the learner on every fold.
// Any learner or metric failure aborts the run, no partial mean is returned.
func (kf *KFold) Evaluate(args ...float64) (float64, error) {
	run := xmath.String(8)
	scores := make([]float64, kf.geom.K)

	for i := 0; i < kf.geom.K; i++ {
		model, err := kf.train(i, args...)
		if err != nil {
			return 0, fmt.Errorf("cv: training failed on fold %d: %w", i, err)
		}

		score, err := kf.metric.Evaluate(model, kf.xs.Validation(i), kf.ys.Validation(i))
		if err != nil {
			return 0, fmt.Errorf("cv: evaluation failed on fold %d: %w", i, err)
		}
		scores[i] = score
		metrics.Observer.Fold(learnerType(kf.learner))

		log.Debug().
			Str("id", kf.id).
			Str("run", run).
			Int("fold", i).
			Float64("score", score).
			Msg("fold evaluated")

		if i == kf.geom.K-1 {
			kf.last.set(model)
		}
	}

	kf.scores = scores
	metrics.Observer.Run(learnerType(kf.learner))

	log.Debug().
		Str("id", kf.id).
		Str("run", run).
		Floats64("scores", scores).
		Msg("run completed")

	return stat.Mean(scores, nil), nil
}

// Model returns the model trained on the last fold of the most recent run.
func (kf *KFold) Model() (Model, error) {
	return kf.last.get()
}

// Scores returns the per-fold scores of the most recent completed run.
func (kf *KFold) Scores() []float64 {
	scores := make([]float64, len(kf.scores))
	copy(scores, kf.scores)
	return scores
}

// Geometry returns the fold geometry of the harness.
func (kf *KFold) Geometry() fold.Geometry {
	return kf.geom
}

func (kf *KFold) train(i int, args ...float64) (Model, error) {
	if kf.weighted != nil {
		return kf.weighted.TrainWeighted(kf.xs.Train(i), kf.ys.Train(i), kf.ws.Train(i), args...)
	}
	return kf.learner.Train(kf.xs.Train(i), kf.ys.Train(i), args...)
}

func learnerType(l Learner) string {
	t := reflect.TypeOf(l)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.String()
}
