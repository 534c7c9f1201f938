package preprocessing

import (
	"math"
	"testing"
)

func TestOnlineStandardScaler_RunningStatistics(t *testing.T) {
	s := NewOnlineStandardScaler()

	samples := [][]float64{{1, 10}, {2, 20}, {3, 30}, {4, 40}}
	for _, x := range samples {
		if err := s.Update(x); err != nil {
			t.Fatalf("Failed to update: %v", err)
		}
	}

	mean := s.Mean()
	if math.Abs(mean[0]-2.5) > 1e-12 || math.Abs(mean[1]-25) > 1e-12 {
		t.Errorf("Unexpected means: %v", mean)
	}

	// Population variance of {1,2,3,4} is 1.25.
	std := s.Std()
	if math.Abs(std[0]-math.Sqrt(1.25)) > 1e-12 {
		t.Errorf("Unexpected std: %v", std)
	}
	if s.Count() != 4 {
		t.Errorf("Expected count 4, got %f", s.Count())
	}
}

func TestOnlineStandardScaler_Transform(t *testing.T) {
	s := NewOnlineStandardScaler()
	for _, x := range [][]float64{{0}, {2}} {
		if err := s.Update(x); err != nil {
			t.Fatalf("Failed to update: %v", err)
		}
	}

	// mean 1, population std 1.
	out, err := s.Transform([]float64{3})
	if err != nil {
		t.Fatalf("Failed to transform: %v", err)
	}
	if math.Abs(out[0]-2) > 1e-12 {
		t.Errorf("Expected standardized value 2, got %f", out[0])
	}
}

func TestOnlineStandardScaler_ZeroVarianceFeature(t *testing.T) {
	s := NewOnlineStandardScaler()
	for i := 0; i < 3; i++ {
		if err := s.Update([]float64{5}); err != nil {
			t.Fatalf("Failed to update: %v", err)
		}
	}

	out, err := s.Transform([]float64{7})
	if err != nil {
		t.Fatalf("Failed to transform: %v", err)
	}
	// Centered but not divided by the zero std.
	if math.Abs(out[0]-2) > 1e-12 {
		t.Errorf("Expected 2 for a zero-variance feature, got %f", out[0])
	}
}

func TestOnlineStandardScaler_Validation(t *testing.T) {
	s := NewOnlineStandardScaler()

	if _, err := s.Transform([]float64{1}); err == nil {
		t.Error("Transform before any Update should fail")
	}
	if err := s.Update(nil); err == nil {
		t.Error("Empty sample should fail")
	}
	if err := s.Update([]float64{1, 2}); err != nil {
		t.Fatalf("Failed to update: %v", err)
	}
	if err := s.Update([]float64{1}); err == nil {
		t.Error("Dimension change should fail")
	}
}

func TestOnlineStandardScaler_Reset(t *testing.T) {
	s := NewOnlineStandardScaler()
	if err := s.Update([]float64{1, 2}); err != nil {
		t.Fatalf("Failed to update: %v", err)
	}

	s.Reset()

	if s.Count() != 0 {
		t.Error("Reset did not clear the count")
	}
	// Dimensionality is re-learned from the next sample.
	if err := s.Update([]float64{1, 2, 3}); err != nil {
		t.Fatalf("Failed to update after reset: %v", err)
	}
}
