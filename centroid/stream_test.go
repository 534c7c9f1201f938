package centroid

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/YuminosukeSato/streamkern/kernel"
	"github.com/YuminosukeSato/streamkern/pkg/errors"
	"github.com/YuminosukeSato/streamkern/pkg/log"
)

func TestTrainStream(t *testing.T) {
	c := New(kernel.RBF{Gamma: 1.0}, WithTolerance(1e-3))

	samples := make(chan []float64)
	go func() {
		defer close(samples)
		for _, x := range [][]float64{{0}, {1}, {2}} {
			samples <- x
		}
	}()

	if err := c.TrainStream(context.Background(), samples); err != nil {
		t.Fatalf("Failed to train from stream: %v", err)
	}
	if c.SamplesSeen() != 3 {
		t.Errorf("Expected 3 samples seen, got %f", c.SamplesSeen())
	}
}

func TestTrainStream_StopsOnError(t *testing.T) {
	c := New(kernel.Linear{})

	samples := make(chan []float64, 3)
	samples <- []float64{1, 1}
	samples <- []float64{1} // wrong dimensionality
	samples <- []float64{2, 2}
	close(samples)

	err := c.TrainStream(context.Background(), samples)
	if err == nil {
		t.Fatal("Expected the stream to stop on the bad sample")
	}
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("Expected DimensionError, got %T: %v", err, err)
	}
	if c.SamplesSeen() != 1 {
		t.Errorf("Expected training to stop after 1 sample, got %f", c.SamplesSeen())
	}
}

func TestTrainStream_ContextCancel(t *testing.T) {
	c := New(kernel.Linear{})
	ctx, cancel := context.WithCancel(context.Background())

	samples := make(chan []float64) // never fed, never closed
	done := make(chan error, 1)
	go func() {
		done <- c.TrainStream(ctx, samples)
	}()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("TrainStream did not return after cancellation")
	}
}

func TestTrainStream_RecoversKernelPanic(t *testing.T) {
	c := New(panicKernel{})

	samples := make(chan []float64, 1)
	samples <- []float64{1}
	close(samples)

	err := c.TrainStream(context.Background(), samples)
	if err == nil {
		t.Fatal("Expected an error from the panicking kernel")
	}
	var panicErr *errors.PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("Expected PanicError, got %T: %v", err, err)
	}
}

func TestScoreStream(t *testing.T) {
	c := New(kernel.Linear{})
	if err := c.Train([]float64{1.0}); err != nil {
		t.Fatalf("Failed to train: %v", err)
	}

	samples := make(chan []float64, 2)
	samples <- []float64{1.0}
	samples <- []float64{2.0}
	close(samples)

	var scores []float64
	for s := range c.ScoreStream(context.Background(), samples) {
		scores = append(scores, s)
	}

	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}
	if !almostEqual(scores[0], 0, eps) {
		t.Errorf("Expected score 0 for the trained sample, got %f", scores[0])
	}
	if !almostEqual(scores[1], 1, eps) {
		t.Errorf("Expected score 1 for the far sample, got %f", scores[1])
	}
}

func TestScoreStream_SkipsBadSamples(t *testing.T) {
	logger, logBuf := log.NewTestLogger(log.LevelWarn)
	c := New(kernel.Linear{}, WithLogger(logger))
	if err := c.Train([]float64{1, 1}); err != nil {
		t.Fatalf("Failed to train: %v", err)
	}

	samples := make(chan []float64, 3)
	samples <- []float64{1, 1}
	samples <- []float64{1} // wrong dimensionality, skipped
	samples <- []float64{2, 2}
	close(samples)

	var n int
	for range c.ScoreStream(context.Background(), samples) {
		n++
	}
	if n != 2 {
		t.Errorf("Expected 2 scores with the bad sample skipped, got %d", n)
	}
	if !strings.Contains(logBuf.String(), "skipping unscorable sample") {
		t.Error("Expected the skipped sample to be logged")
	}
}

// panicKernel simulates a broken caller-supplied kernel.
type panicKernel struct{}

func (panicKernel) Eval(x, y []float64) float64 { panic("broken kernel") }
