package model

import (
	"fmt"
	"sync"
)

// StateManager tracks the fitted state of a model in a thread-safe manner.
// Estimators embed it by composition rather than inheritance.
type StateManager struct {
	Fitted bool // Public for gob encoding
	mu     sync.RWMutex

	// Optional metadata - Public for gob encoding
	NFeatures int
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{
		Fitted: false,
	}
}

// IsFitted returns whether the model has seen at least one training call.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Fitted
}

// SetFitted marks the model as fitted.
func (s *StateManager) SetFitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fitted = true
}

// Reset resets the fitted state.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fitted = false
	s.NFeatures = 0
}

// SetNFeatures records the dimensionality seen during training.
func (s *StateManager) SetNFeatures(nFeatures int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.NFeatures = nFeatures
}

// GetNFeatures returns the dimensionality seen during training, or 0 if
// the model has not been trained.
func (s *StateManager) GetNFeatures() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.NFeatures
}

// RequireFitted returns an error if the model has not been fitted.
func (s *StateManager) RequireFitted() error {
	if !s.IsFitted() {
		return fmt.Errorf("model has not been trained yet. Call Train() first")
	}
	return nil
}
