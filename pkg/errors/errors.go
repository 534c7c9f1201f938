// Package errors provides error handling and the warning system for the
// whole project. Errors carry structured fields and stack traces so that
// numerical failures in online training can be diagnosed after the fact.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// The default handler logs to standard error.
		log.Printf("streamkern-warning: %v\n", w)
	}
)

// SetWarningHandler sets the warning handler for the whole library.
// It controls how soft conditions such as ConvexityDriftWarning are
// reported without failing the call that detected them.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// Warn reports a warning through the configured handler.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// ConvexityDriftWarning is raised when the weight vector of an online
// estimator, which is intended to stay a convex combination, has drifted
// away from summing to one. The drift is inherent to the update rule on
// the non-growth path and is reported rather than silently renormalized.
type ConvexityDriftWarning struct {
	Estimator string
	AlphaSum  float64
	Drift     float64
	Samples   int
}

func (w *ConvexityDriftWarning) Error() string {
	return fmt.Sprintf("%s: weight vector drifted from convexity after %d samples: sum(alpha)=%.6g (drift %.3g)",
		w.Estimator, w.Samples, w.AlphaSum, w.Drift)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *ConvexityDriftWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("estimator", w.Estimator).
		Float64("alpha_sum", w.AlphaSum).
		Float64("drift", w.Drift).
		Int("samples", w.Samples).
		Str("type", "ConvexityDriftWarning")
}

// NewConvexityDriftWarning creates a new ConvexityDriftWarning.
func NewConvexityDriftWarning(estimator string, alphaSum float64, samples int) *ConvexityDriftWarning {
	drift := alphaSum - 1
	if drift < 0 {
		drift = -drift
	}
	return &ConvexityDriftWarning{Estimator: estimator, AlphaSum: alphaSum, Drift: drift, Samples: samples}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// NotFittedError is returned when an operation requires a trained model
// but Train has never been called.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("streamkern: %s: this model is not fitted yet. Call Train() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a new NotFittedError with a stack trace attached.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError is returned when an input vector does not match the
// dimensionality the model was trained on.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("streamkern: %s: dimension mismatch. Expected %d features, got %d", e.Op, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// NumericalDegeneracyError is returned when an online update would divide
// by a zero or near-zero quantity, or when an input or intermediate value
// is NaN or infinite. The failed call leaves the model state unchanged.
type NumericalDegeneracyError struct {
	Op       string  // operation that detected the condition, e.g. "centroid.Train"
	Quantity string  // name of the degenerate quantity, e.g. "delta"
	Value    float64 // the offending value
	Sample   int     // index of the training call where it occurred
}

func (e *NumericalDegeneracyError) Error() string {
	return fmt.Sprintf("streamkern: %s: numerical degeneracy at sample %d: %s = %.6g",
		e.Op, e.Sample, e.Quantity, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NumericalDegeneracyError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("quantity", e.Quantity).
		Float64("value", e.Value).
		Int("sample", e.Sample).
		Str("type", "NumericalDegeneracyError")
}

// NewNumericalDegeneracyError creates a new NumericalDegeneracyError with a
// stack trace attached.
func NewNumericalDegeneracyError(op, quantity string, value float64, sample int) error {
	err := &NumericalDegeneracyError{Op: op, Quantity: quantity, Value: value, Sample: sample}
	return errors.WithStack(err)
}

// ValueError is returned when an argument value is invalid for the
// operation, for example an empty sample vector.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("streamkern: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches the target error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be assigned to the target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}
