// Package kernel implements a number of different kernel functions.
//
// A kernel is a symmetric, positive-semi-definite similarity function over
// sample vectors. Estimators in this library treat kernels as oracles: they
// only ever call Eval, so any type satisfying Kernel can be plugged in.
//
// All kernels in this package are plain value types with exported
// parameters and are registered with encoding/gob, so an estimator holding
// a Kernel interface value serializes without further ceremony.
package kernel

import (
	"encoding/gob"
)

func init() {
	gob.Register(Linear{})
	gob.Register(RBF{})
	gob.Register(Polynomial{})
	gob.Register(Sigmoid{})
}

// Kernel is a similarity function between two sample vectors.
//
// Implementations must be symmetric: Eval(x, y) == Eval(y, x). They are
// also expected to be positive semi-definite over the sample domain;
// algorithms built on top of a kernel silently degrade when this is
// violated rather than detecting it.
type Kernel interface {
	Eval(x, y []float64) float64
}

// Compile-time interface checks.
var (
	_ Kernel = Linear{}
	_ Kernel = RBF{}
	_ Kernel = Polynomial{}
	_ Kernel = Sigmoid{}
)

// dot computes the inner product of x and y. Assumes lengths are equal.
func dot(x, y []float64) float64 {
	var sum float64
	for i, xi := range x {
		sum += xi * y[i]
	}
	return sum
}

// sqDist computes the squared euclidean distance between x and y.
// Assumes lengths are equal.
func sqDist(x, y []float64) float64 {
	var sum float64
	for i, xi := range x {
		d := xi - y[i]
		sum += d * d
	}
	return sum
}

// Linear is the ordinary dot-product kernel.
type Linear struct{}

// Eval returns the inner product of x and y.
func (Linear) Eval(x, y []float64) float64 {
	return dot(x, y)
}
