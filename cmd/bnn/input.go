package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sbinet/npyio/npy"
	"github.com/sbinet/npyio/npz"
)

// loadInputFile reads a 1-D float32 or float64 array from a .npy file, or
// the array named key from a .npz archive.
func loadInputFile(path, key string) ([]float32, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".npy":
		return loadNPY(path)
	case ".npz":
		return loadNPZ(path, key)
	default:
		return nil, fmt.Errorf("unsupported input file extension %q (want .npy or .npz)", filepath.Ext(path))
	}
}

func loadNPY(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("while opening input file: %w", err)
	}
	defer f.Close()

	r, err := npy.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("while reading npy header: %w", err)
	}

	if err := checkVectorShape(r.Header.Descr.Shape); err != nil {
		return nil, err
	}

	switch r.Header.Descr.Type {
	case "<f4":
		var raw []float32
		if err := r.Read(&raw); err != nil {
			return nil, fmt.Errorf("while reading float32 array: %w", err)
		}
		return raw, nil
	case "<f8":
		var raw []float64
		if err := r.Read(&raw); err != nil {
			return nil, fmt.Errorf("while reading float64 array: %w", err)
		}
		return narrow(raw), nil
	default:
		return nil, fmt.Errorf("unsupported dtype %s", r.Header.Descr.Type)
	}
}

func loadNPZ(path, key string) ([]float32, error) {
	r, err := npz.Open(path)
	if err != nil {
		return nil, fmt.Errorf("while opening input archive: %w", err)
	}
	defer r.Close()

	// Arrays written by numpy are stored as "<key>.npy".
	name := key
	if !strings.HasSuffix(name, ".npy") {
		name += ".npy"
	}
	if !slices.Contains(r.Keys(), name) {
		return nil, fmt.Errorf("no array %s in archive (have %v)", name, r.Keys())
	}

	header := r.Header(name)
	if err := checkVectorShape(header.Descr.Shape); err != nil {
		return nil, err
	}

	switch header.Descr.Type {
	case "<f4":
		var raw []float32
		if err := r.Read(name, &raw); err != nil {
			return nil, fmt.Errorf("while reading float32 array %s: %w", name, err)
		}
		return raw, nil
	case "<f8":
		var raw []float64
		if err := r.Read(name, &raw); err != nil {
			return nil, fmt.Errorf("while reading float64 array %s: %w", name, err)
		}
		return narrow(raw), nil
	default:
		return nil, fmt.Errorf("unsupported dtype %s", header.Descr.Type)
	}
}

// checkVectorShape accepts a single example: shape (n) or (1, n).
func checkVectorShape(shape []int) error {
	switch {
	case len(shape) == 1:
		return nil
	case len(shape) == 2 && shape[0] == 1:
		return nil
	default:
		return fmt.Errorf("input must hold a single vector; got shape %v", shape)
	}
}

func narrow(v []float64) []float32 {
	out := make([]float32, len(v))
	for i := range v {
		out[i] = float32(v[i])
	}
	return out
}
