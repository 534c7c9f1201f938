package centroid

import (
	"context"

	"github.com/YuminosukeSato/streamkern/core/model"
	"github.com/YuminosukeSato/streamkern/pkg/errors"
)

// Interface conformance checks.
var (
	_ model.OnlineLearner = (*Centroid)(nil)
	_ model.NoveltyScorer = (*Centroid)(nil)
	_ model.StreamScorer  = (*Centroid)(nil)
)

// TrainStream consumes samples from a channel and trains on each in
// arrival order until the channel is closed or the context is canceled.
// The first training error stops consumption and is returned. A panic in
// a caller-supplied kernel is recovered and returned as an error.
func (c *Centroid) TrainStream(ctx context.Context, samples <-chan []float64) (err error) {
	defer errors.Recover(&err, "centroid.TrainStream")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case x, ok := <-samples:
			if !ok {
				return nil
			}
			if err := c.Train(x); err != nil {
				return err
			}
		}
	}
}

// ScoreStream scores samples from a channel in arrival order. The output
// channel is closed when the input channel is closed or the context is
// canceled. Samples that fail validation are skipped.
//
// Scoring is read-only, but do not train the estimator while a
// ScoreStream is active.
func (c *Centroid) ScoreStream(ctx context.Context, samples <-chan []float64) <-chan float64 {
	out := make(chan float64)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case x, ok := <-samples:
				if !ok {
					return
				}
				score, err := c.Score(x)
				if err != nil {
					c.logger.Warn("skipping unscorable sample", "error", err)
					continue
				}
				select {
				case out <- score:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
