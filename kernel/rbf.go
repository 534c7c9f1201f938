package kernel

import "math"

// RBF is the radial basis function (Gaussian) kernel,
// k(x, y) = exp(-gamma * ||x - y||^2).
//
// Larger Gamma makes the kernel more local: distant points look less
// similar and downstream estimators retain more basis samples.
type RBF struct {
	Gamma float64
}

// NewRBF creates an RBF kernel. A non-positive gamma falls back to the
// conventional default of 1/nFeatures.
func NewRBF(gamma float64, nFeatures int) RBF {
	if gamma <= 0 && nFeatures > 0 {
		gamma = 1.0 / float64(nFeatures)
	}
	return RBF{Gamma: gamma}
}

// Eval computes exp(-gamma * ||x-y||^2).
func (k RBF) Eval(x, y []float64) float64 {
	return math.Exp(-k.Gamma * sqDist(x, y))
}
