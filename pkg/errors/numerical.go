package errors

import (
	"math"
)

// CheckScalar checks a single scalar value for NaN or Inf and returns a
// NumericalDegeneracyError if found.
func CheckScalar(op, quantity string, value float64, sample int) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalDegeneracyError(op, quantity, value, sample)
	}
	return nil
}

// CheckVector checks all elements of a vector for NaN or Inf.
func CheckVector(op, quantity string, values []float64, sample int) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalDegeneracyError(op, quantity, v, sample)
		}
	}
	return nil
}

// NearZero reports whether v is too close to zero to divide by safely.
func NearZero(v float64) bool {
	return math.Abs(v) < 1e-12
}
