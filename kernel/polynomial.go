package kernel

import "math"

// Polynomial is the polynomial kernel,
// k(x, y) = (gamma * <x, y> + coef0)^degree.
type Polynomial struct {
	Gamma  float64
	Coef0  float64
	Degree int
}

// Eval computes (gamma * <x,y> + coef0)^degree.
func (k Polynomial) Eval(x, y []float64) float64 {
	return math.Pow(k.Gamma*dot(x, y)+k.Coef0, float64(k.Degree))
}

// Sigmoid is the hyperbolic tangent kernel,
// k(x, y) = tanh(gamma * <x, y> + coef0).
//
// Note that the sigmoid kernel is not positive semi-definite for all
// parameter choices; use with care.
type Sigmoid struct {
	Gamma float64
	Coef0 float64
}

// Eval computes tanh(gamma * <x,y> + coef0).
func (k Sigmoid) Eval(x, y []float64) float64 {
	return math.Tanh(k.Gamma*dot(x, y) + k.Coef0)
}
