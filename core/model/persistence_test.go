package model

import (
	"bytes"
	"path/filepath"
	"testing"
)

type toyModel struct {
	Weights []float64
	Bias    float64
}

func TestSaveLoadModel_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "toy.gob")

	orig := &toyModel{Weights: []float64{1, 2, 3}, Bias: 0.5}
	if err := SaveModel(orig, path); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	var loaded toyModel
	if err := LoadModel(&loaded, path); err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	if loaded.Bias != orig.Bias || len(loaded.Weights) != 3 || loaded.Weights[2] != 3 {
		t.Errorf("Round trip mismatch: %+v", loaded)
	}
}

func TestSaveLoadModel_Stream(t *testing.T) {
	var buf bytes.Buffer

	orig := &toyModel{Weights: []float64{-1}, Bias: 2}
	if err := SaveModelToWriter(orig, &buf); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	var loaded toyModel
	if err := LoadModelFromReader(&loaded, &buf); err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if loaded.Bias != 2 || loaded.Weights[0] != -1 {
		t.Errorf("Round trip mismatch: %+v", loaded)
	}
}

func TestLoadModel_MissingFile(t *testing.T) {
	var m toyModel
	err := LoadModel(&m, filepath.Join(t.TempDir(), "missing.gob"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}
