package model

import "testing"

func TestStateManager_FittedLifecycle(t *testing.T) {
	s := NewStateManager()

	if s.IsFitted() {
		t.Error("New StateManager should not be fitted")
	}
	if err := s.RequireFitted(); err == nil {
		t.Error("RequireFitted should fail before training")
	}

	s.SetFitted()
	s.SetNFeatures(3)

	if !s.IsFitted() {
		t.Error("Expected fitted after SetFitted")
	}
	if err := s.RequireFitted(); err != nil {
		t.Errorf("RequireFitted failed after SetFitted: %v", err)
	}
	if s.GetNFeatures() != 3 {
		t.Errorf("Expected 3 features, got %d", s.GetNFeatures())
	}

	s.Reset()

	if s.IsFitted() || s.GetNFeatures() != 0 {
		t.Error("Reset did not clear state")
	}
}
