package errors

import (
	"math"
	"strings"
	"testing"
)

func TestNumericalDegeneracyError_Message(t *testing.T) {
	err := NewNumericalDegeneracyError("centroid.Train", "delta", 0, 42)

	var degErr *NumericalDegeneracyError
	if !As(err, &degErr) {
		t.Fatalf("Expected NumericalDegeneracyError, got %T", err)
	}
	if degErr.Quantity != "delta" || degErr.Sample != 42 {
		t.Errorf("Unexpected fields: %+v", degErr)
	}
	if !strings.Contains(err.Error(), "delta") {
		t.Errorf("Error message should name the degenerate quantity: %s", err.Error())
	}
}

func TestDimensionError_Message(t *testing.T) {
	err := NewDimensionError("centroid.Score", 3, 2)

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Fatalf("Expected DimensionError, got %T", err)
	}
	if dimErr.Expected != 3 || dimErr.Got != 2 {
		t.Errorf("Unexpected fields: %+v", dimErr)
	}
}

func TestCheckScalar(t *testing.T) {
	if err := CheckScalar("op", "v", 1.5, 0); err != nil {
		t.Errorf("Finite value should pass: %v", err)
	}
	if err := CheckScalar("op", "v", math.NaN(), 0); err == nil {
		t.Error("NaN should be detected")
	}
	if err := CheckScalar("op", "v", math.Inf(1), 0); err == nil {
		t.Error("Inf should be detected")
	}
}

func TestCheckVector(t *testing.T) {
	if err := CheckVector("op", "x", []float64{1, 2, 3}, 0); err != nil {
		t.Errorf("Finite vector should pass: %v", err)
	}
	if err := CheckVector("op", "x", []float64{1, math.NaN()}, 0); err == nil {
		t.Error("NaN element should be detected")
	}
}

func TestNearZero(t *testing.T) {
	if !NearZero(0) || !NearZero(1e-15) || !NearZero(-1e-15) {
		t.Error("Values near zero should be detected")
	}
	if NearZero(1e-6) {
		t.Error("1e-6 is safely away from zero")
	}
}

func TestWarningHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(func(w error) {})

	w := NewConvexityDriftWarning("Centroid", 1.15, 100)
	Warn(w)

	if captured == nil {
		t.Fatal("Warning handler was not invoked")
	}
	if math.Abs(w.Drift-0.15) > 1e-12 {
		t.Errorf("Expected drift 0.15, got %f", w.Drift)
	}
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "fn")
		panic("boom")
	}

	err := fn()
	if err == nil {
		t.Fatal("Expected error from recovered panic")
	}
	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Fatalf("Expected PanicError, got %T", err)
	}
	if panicErr.Operation != "fn" {
		t.Errorf("Expected operation fn, got %s", panicErr.Operation)
	}
}
