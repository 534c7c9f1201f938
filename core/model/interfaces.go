// Package model provides lifecycle interfaces and persistence helpers for
// online estimators.
package model

import "context"

// OnlineLearner is a model that learns from one sample at a time.
// There is no batch Fit: the stream is the training set.
type OnlineLearner interface {
	// Train updates the model with a single sample.
	Train(x []float64) error

	// Reset returns the model to its freshly constructed state.
	Reset()

	// SamplesSeen returns the number of training calls so far.
	SamplesSeen() float64
}

// NoveltyScorer scores how far a sample lies from the region the model
// has learned. Larger scores indicate more novel samples.
type NoveltyScorer interface {
	// Score computes the novelty score of a sample. It is read-only.
	Score(x []float64) (float64, error)

	// Size returns the number of basis samples the model retains.
	Size() int
}

// StreamScorer processes channels of samples. Implementations consume
// sequentially; they add no concurrency of their own beyond the
// goroutine feeding the output channel.
type StreamScorer interface {
	// TrainStream trains on samples from a channel until the channel is
	// closed or the context is canceled.
	TrainStream(ctx context.Context, samples <-chan []float64) error

	// ScoreStream scores samples from a channel. The output channel is
	// closed when the input channel is closed or the context is canceled.
	ScoreStream(ctx context.Context, samples <-chan []float64) <-chan float64
}
