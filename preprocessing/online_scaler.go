// Package preprocessing provides input normalization for online
// estimators.
//
// Kernel admission thresholds are sensitive to the scale of the input,
// so streams with features on very different scales should be
// standardized before training. Because samples arrive one at a time,
// the scaler here is itself online: it updates per-feature mean and
// variance incrementally and never stores past samples.
package preprocessing

import (
	"math"

	"github.com/YuminosukeSato/streamkern/pkg/errors"
)

// OnlineStandardScaler standardizes samples to zero mean and unit
// variance using running statistics maintained with Welford's algorithm.
//
// Like the estimators it feeds, it is a single-pass component: Update
// folds one sample into the statistics, Transform standardizes a sample
// against the statistics accumulated so far.
type OnlineStandardScaler struct {
	WithMean bool
	WithStd  bool

	count float64
	mean  []float64
	m2    []float64
}

// NewOnlineStandardScaler creates a scaler that centers and scales.
func NewOnlineStandardScaler() *OnlineStandardScaler {
	return &OnlineStandardScaler{WithMean: true, WithStd: true}
}

// Update folds one sample into the running statistics.
func (s *OnlineStandardScaler) Update(x []float64) error {
	if len(x) == 0 {
		return errors.NewValueError("OnlineStandardScaler.Update", "empty sample vector")
	}
	if s.mean == nil {
		s.mean = make([]float64, len(x))
		s.m2 = make([]float64, len(x))
	}
	if len(x) != len(s.mean) {
		return errors.NewDimensionError("OnlineStandardScaler.Update", len(s.mean), len(x))
	}
	if err := errors.CheckVector("OnlineStandardScaler.Update", "x", x, int(s.count)); err != nil {
		return err
	}

	s.count++
	for i, xi := range x {
		delta := xi - s.mean[i]
		s.mean[i] += delta / s.count
		s.m2[i] += delta * (xi - s.mean[i])
	}
	return nil
}

// Transform standardizes a sample against the statistics seen so far.
// Features with zero variance are centered but not scaled.
func (s *OnlineStandardScaler) Transform(x []float64) ([]float64, error) {
	if s.count == 0 {
		return nil, errors.NewNotFittedError("OnlineStandardScaler", "Transform")
	}
	if len(x) != len(s.mean) {
		return nil, errors.NewDimensionError("OnlineStandardScaler.Transform", len(s.mean), len(x))
	}

	out := make([]float64, len(x))
	for i, xi := range x {
		v := xi
		if s.WithMean {
			v -= s.mean[i]
		}
		if s.WithStd {
			if sd := s.std(i); sd > 0 {
				v /= sd
			}
		}
		out[i] = v
	}
	return out, nil
}

// UpdateTransform folds the sample into the statistics and then
// standardizes it, the natural order for a training stream.
func (s *OnlineStandardScaler) UpdateTransform(x []float64) ([]float64, error) {
	if err := s.Update(x); err != nil {
		return nil, err
	}
	return s.Transform(x)
}

// Mean returns a copy of the running per-feature means.
func (s *OnlineStandardScaler) Mean() []float64 {
	out := make([]float64, len(s.mean))
	copy(out, s.mean)
	return out
}

// Std returns a copy of the running per-feature standard deviations
// (population form, M2/n).
func (s *OnlineStandardScaler) Std() []float64 {
	out := make([]float64, len(s.m2))
	for i := range out {
		out[i] = s.std(i)
	}
	return out
}

// Count returns the number of samples folded in.
func (s *OnlineStandardScaler) Count() float64 {
	return s.count
}

// Reset discards all running statistics.
func (s *OnlineStandardScaler) Reset() {
	s.count = 0
	s.mean = nil
	s.m2 = nil
}

func (s *OnlineStandardScaler) std(i int) float64 {
	if s.count == 0 {
		return 0
	}
	return math.Sqrt(s.m2[i] / s.count)
}
