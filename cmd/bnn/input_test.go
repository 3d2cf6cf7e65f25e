package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sbinet/npyio/npy"
	"github.com/sbinet/npyio/npz"
)

func writeNPY(t *testing.T, path string, val any) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer f.Close()

	if err := npy.Write(f, val); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestLoadInputFileNPY(t *testing.T) {
	dir := t.TempDir()

	f32Path := filepath.Join(dir, "x32.npy")
	writeNPY(t, f32Path, []float32{0.05, 0.10})

	got, err := loadInputFile(f32Path, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(got, []float32{0.05, 0.10}); diff != "" {
		t.Errorf("Wrong input; diff (-got +want)\n%s", diff)
	}

	f64Path := filepath.Join(dir, "x64.npy")
	writeNPY(t, f64Path, []float64{0.5, -1.5, 2})

	got, err = loadInputFile(f64Path, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(got, []float32{0.5, -1.5, 2}); diff != "" {
		t.Errorf("Wrong input; diff (-got +want)\n%s", diff)
	}
}

func TestLoadInputFileNPZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.npz")

	w, err := npz.Create(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := w.Write("x.npy", []float32{1, 2, 3}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, err := loadInputFile(path, "x")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(got, []float32{1, 2, 3}); diff != "" {
		t.Errorf("Wrong input; diff (-got +want)\n%s", diff)
	}

	if _, err := loadInputFile(path, "missing"); err == nil {
		t.Errorf("loadInputFile() with a missing key succeeded, want error")
	}
}

func TestLoadInputFileRejectsUnknownExtension(t *testing.T) {
	if _, err := loadInputFile("input.csv", ""); err == nil {
		t.Errorf("loadInputFile() succeeded, want error")
	}
}

func TestCheckVectorShape(t *testing.T) {
	for _, shape := range [][]int{{2}, {1, 2}} {
		if err := checkVectorShape(shape); err != nil {
			t.Errorf("checkVectorShape(%v) unexpected error: %v", shape, err)
		}
	}
	for _, shape := range [][]int{{}, {2, 2}, {1, 1, 2}} {
		if err := checkVectorShape(shape); err == nil {
			t.Errorf("checkVectorShape(%v) succeeded, want error", shape)
		}
	}
}
