// Package centroid implements an online estimator of the center of mass
// of a data stream in a kernel-induced feature space.
//
// The estimator follows the sparsification technique described in "The
// Kernel Recursive Least Squares Algorithm" by Yaakov Engel: a new sample
// is admitted into a growing basis (the dictionary) only if it is not
// approximately linearly dependent, in feature space, on the samples
// already retained. The inverse of the Gram matrix over the dictionary is
// maintained incrementally, so a training step costs O(m^2) in the
// dictionary size m instead of the O(m^3) of a fresh inversion.
//
// Score returns the feature-space distance of a sample to the running
// mean embedding, which makes the estimator directly usable for one-class
// novelty detection: samples far from the learned center score high.
//
// A Centroid is not safe for concurrent use. Train mutates every piece of
// state; callers that share an estimator across goroutines must serialize
// access themselves. Score is read-only, so concurrent Score calls are
// fine as long as no Train is in flight.
package centroid

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/streamkern/core/model"
	"github.com/YuminosukeSato/streamkern/core/parallel"
	"github.com/YuminosukeSato/streamkern/kernel"
	"github.com/YuminosukeSato/streamkern/pkg/errors"
	"github.com/YuminosukeSato/streamkern/pkg/log"
)

// driftWarnThreshold is the convexity drift beyond which a warning is
// reported. The weight vector is meant to stay a convex combination, but
// the update on the non-growth path uses reconstruction coefficients that
// need not sum to one, so the sum can drift. The drift is inherent to the
// algorithm and is reported rather than renormalized away; AlphaSum
// exposes the current value for callers that want to monitor it.
const driftWarnThreshold = 0.25

// batchThreshold is the batch size above which ScoreBatch fans out
// across CPU cores.
const batchThreshold = 64

// Centroid is an online estimator of the mean embedding of a sample
// stream in the feature space induced by a kernel.
//
// All internal state is owned exclusively by the instance. Use Swap to
// exchange state between two instances and Reset to discard it.
type Centroid struct {
	kern kernel.Kernel

	// Model state. The dictionary, the weight vector, the Gram matrix
	// and its inverse always have matching sizes.
	dict    [][]float64
	alpha   []float64
	gram    *mat.Dense
	gramInv *mat.Dense
	bias    float64
	tol     float64
	seen    float64

	// maxSize caps the dictionary when positive; 0 means unbounded,
	// which is the reference behavior.
	maxSize int

	state  *model.StateManager
	logger log.Logger

	// Scratch buffers reused across Train calls. Not part of the
	// persisted state.
	kBuf *mat.VecDense
	aBuf *mat.VecDense

	driftWarned bool
}

// New creates a Centroid using the given kernel. The default admission
// tolerance is 0.001; how aggressively the dictionary grows depends on it
// and on the scale of the kernel values, so tune it per kernel.
func New(k kernel.Kernel, opts ...Option) *Centroid {
	c := &Centroid{
		kern:   k,
		tol:    0.001,
		state:  model.NewStateManager(),
		logger: log.GetLoggerWithName("centroid"),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Reset()
	return c
}

// SetTolerance sets the admission tolerance for the approximate linear
// dependence test. Larger values keep the dictionary smaller.
func (c *Centroid) SetTolerance(tol float64) {
	c.tol = tol
}

// Tolerance returns the current admission tolerance.
func (c *Centroid) Tolerance() float64 {
	return c.tol
}

// Size returns the current dictionary size.
func (c *Centroid) Size() int {
	return len(c.dict)
}

// SamplesSeen returns the number of successful Train calls.
func (c *Centroid) SamplesSeen() float64 {
	return c.seen
}

// AlphaSum returns the sum of the weight vector. It stays exactly 1 on
// the growth path and can drift from 1 on the non-growth path; see the
// package documentation.
func (c *Centroid) AlphaSum() float64 {
	var sum float64
	for _, a := range c.alpha {
		sum += a
	}
	return sum
}

// Reset discards all learned state. The estimator behaves as freshly
// constructed; the kernel and tolerance are kept.
func (c *Centroid) Reset() {
	c.dict = nil
	c.alpha = nil
	c.gram = nil
	c.gramInv = nil
	c.bias = 0
	c.seen = 0
	c.kBuf = nil
	c.aBuf = nil
	c.driftWarned = false
	c.state.Reset()
}

// Train updates the estimator with a single sample.
//
// If the sample is not approximately linearly dependent on the current
// dictionary it is admitted as a new basis vector and the Gram matrix
// inverse is extended in place; otherwise its contribution is folded into
// the existing weights. Either way the running mean embedding moves
// toward the sample with weight 1/(n+1).
//
// Train fails without touching any state when the input is empty, has the
// wrong dimensionality, contains NaN or Inf, or when the update would
// divide by a degenerate kernel or residual value.
func (c *Centroid) Train(x []float64) error {
	const op = "centroid.Train"
	sample := int(c.seen)

	if err := c.checkInput(op, x, sample); err != nil {
		return err
	}

	kx := c.kern.Eval(x, x)
	if err := errors.CheckScalar(op, "k(x,x)", kx, sample); err != nil {
		return err
	}

	admitted := false
	if len(c.dict) == 0 {
		if errors.NearZero(kx) {
			return errors.NewNumericalDegeneracyError(op, "k(x,x)", kx, sample)
		}
		c.dict = append(c.dict, cloneSample(x))
		c.alpha = append(c.alpha, 1.0)
		c.gram = mat.NewDense(1, 1, []float64{kx})
		c.gramInv = mat.NewDense(1, 1, []float64{1 / kx})
		admitted = true
	} else {
		m := len(c.dict)
		c.ensureScratch(m)

		for i, d := range c.dict {
			c.kBuf.SetVec(i, c.kern.Eval(x, d))
		}

		// Best reconstruction of x's feature-space image from the
		// dictionary, and the squared norm of the residual (the ALD
		// test from the KRLS paper).
		c.aBuf.MulVec(c.gramInv, c.kBuf)
		delta := kx - mat.Dot(c.kBuf, c.aBuf)
		if err := errors.CheckScalar(op, "delta", delta, sample); err != nil {
			return err
		}

		if math.Abs(delta) > c.tol && (c.maxSize == 0 || m < c.maxSize) {
			if errors.NearZero(delta) {
				return errors.NewNumericalDegeneracyError(op, "delta", delta, sample)
			}
			c.grow(x, kx, delta)
			admitted = true
		} else {
			c.fold()
		}
	}

	// The bias is the self-energy alpha^T K alpha of the weighted
	// combination. Both factors changed, so it is recomputed in full.
	var bias float64
	for i, ai := range c.alpha {
		for j, aj := range c.alpha {
			bias += c.gram.At(i, j) * ai * aj
		}
	}
	c.bias = bias
	c.seen++

	if !c.state.IsFitted() {
		c.state.SetFitted()
		c.state.SetNFeatures(len(x))
	}

	c.logger.Debug("training step",
		log.OperationKey, "train",
		log.SamplesSeenKey, c.seen,
		log.DictSizeKey, len(c.dict),
		log.AdmittedKey, admitted,
	)
	c.checkDrift()
	return nil
}

// grow admits x into the dictionary and extends the Gram matrix and its
// inverse by one row and column. The inverse update is the exact
// Schur-complement block extension, equation 3.14 of the KRLS paper.
func (c *Centroid) grow(x []float64, kx, delta float64) {
	m := len(c.dict)

	newInv := mat.NewDense(m+1, m+1, nil)
	for r := 0; r < m; r++ {
		ar := c.aBuf.AtVec(r)
		for col := 0; col < m; col++ {
			newInv.Set(r, col, c.gramInv.At(r, col)+ar*c.aBuf.AtVec(col)/delta)
		}
		newInv.Set(r, m, -ar/delta)
		newInv.Set(m, r, -ar/delta)
	}
	newInv.Set(m, m, 1/delta)
	c.gramInv = newInv

	newGram := mat.NewDense(m+1, m+1, nil)
	for r := 0; r < m; r++ {
		for col := 0; col < m; col++ {
			newGram.Set(r, col, c.gram.At(r, col))
		}
		newGram.Set(r, m, c.kBuf.AtVec(r))
		newGram.Set(m, r, c.kBuf.AtVec(r))
	}
	newGram.Set(m, m, kx)
	c.gram = newGram

	c.dict = append(c.dict, cloneSample(x))

	// The newest basis vector carries the online-average weight
	// 1/(n+1); everything older decays by n/(n+1).
	scale := c.seen / (c.seen + 1)
	for i := range c.alpha {
		c.alpha[i] *= scale
	}
	c.alpha = append(c.alpha, 1-scale)
}

// fold updates the weights in place, using the reconstruction
// coefficients as a proxy for the sample's contribution in the existing
// basis.
func (c *Centroid) fold() {
	scale := c.seen / (c.seen + 1)
	aScale := 1 - scale
	for i := range c.alpha {
		c.alpha[i] = scale*c.alpha[i] + aScale*c.aBuf.AtVec(i)
	}
}

// Score computes the feature-space distance between the image of x and
// the current mean estimate. It is read-only. Larger values indicate that
// x is farther from the learned region.
//
// An empty estimator yields sqrt(k(x,x)), which is well-defined but
// carries no information. Floating-point cancellation can make the
// squared distance slightly negative when x is very close to the mean;
// it is clamped to zero before the square root.
func (c *Centroid) Score(x []float64) (float64, error) {
	const op = "centroid.Score"
	if err := c.checkInput(op, x, int(c.seen)); err != nil {
		return 0, err
	}

	var temp float64
	for i, d := range c.dict {
		temp += c.alpha[i] * c.kern.Eval(d, x)
	}

	dist2 := c.kern.Eval(x, x) + c.bias - 2*temp
	if dist2 < 0 {
		dist2 = 0
	}
	return math.Sqrt(dist2), nil
}

// ScoreBatch scores every row of X. Inputs are validated up front and
// the scoring loop fans out across CPU cores for large batches, which is
// safe because Score does not mutate the estimator.
func (c *Centroid) ScoreBatch(X [][]float64) ([]float64, error) {
	const op = "centroid.ScoreBatch"
	for _, x := range X {
		if err := c.checkInput(op, x, int(c.seen)); err != nil {
			return nil, err
		}
	}

	scores := make([]float64, len(X))
	parallel.ParallelizeWithThreshold(len(X), batchThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			s, _ := c.Score(X[i])
			scores[i] = s
		}
	})
	return scores, nil
}

// Swap exchanges the complete learned state of two estimators, including
// kernels, tolerances and scratch buffers, in O(1). Loggers stay with
// their instance.
func (c *Centroid) Swap(other *Centroid) {
	c.kern, other.kern = other.kern, c.kern
	c.dict, other.dict = other.dict, c.dict
	c.alpha, other.alpha = other.alpha, c.alpha
	c.gram, other.gram = other.gram, c.gram
	c.gramInv, other.gramInv = other.gramInv, c.gramInv
	c.bias, other.bias = other.bias, c.bias
	c.tol, other.tol = other.tol, c.tol
	c.seen, other.seen = other.seen, c.seen
	c.maxSize, other.maxSize = other.maxSize, c.maxSize
	c.state, other.state = other.state, c.state
	c.kBuf, other.kBuf = other.kBuf, c.kBuf
	c.aBuf, other.aBuf = other.aBuf, c.aBuf
	c.driftWarned, other.driftWarned = other.driftWarned, c.driftWarned
}

// IsFitted reports whether the estimator has seen at least one sample.
func (c *Centroid) IsFitted() bool {
	return c.state.IsFitted()
}

// checkInput validates a sample vector against the trained
// dimensionality without mutating any state.
func (c *Centroid) checkInput(op string, x []float64, sample int) error {
	if len(x) == 0 {
		return errors.NewValueError(op, "empty sample vector")
	}
	if n := c.state.GetNFeatures(); c.state.IsFitted() && len(x) != n {
		return errors.NewDimensionError(op, n, len(x))
	}
	return errors.CheckVector(op, "x", x, sample)
}

// ensureScratch sizes the reusable buffers for a dictionary of size m.
func (c *Centroid) ensureScratch(m int) {
	if c.kBuf == nil || c.kBuf.Len() != m {
		c.kBuf = mat.NewVecDense(m, nil)
		c.aBuf = mat.NewVecDense(m, nil)
	}
}

// checkDrift reports a ConvexityDriftWarning the first time the weight
// sum drifts past the threshold.
func (c *Centroid) checkDrift() {
	if c.driftWarned {
		return
	}
	sum := c.AlphaSum()
	if math.Abs(sum-1) > driftWarnThreshold {
		c.driftWarned = true
		errors.Warn(errors.NewConvexityDriftWarning("Centroid", sum, int(c.seen)))
	}
}

func cloneSample(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	return out
}
