// Package toolbox evaluates dense, fully-connected, sigmoid-activated
// feed-forward networks, one example at a time.
package toolbox

import (
	"fmt"
)

// AF32 is a row-major float32 tensor.
type AF32 struct {
	V     []float32
	Shape []int
}

func MakeAF32(shape ...int) *AF32 {
	for _, s := range shape {
		if s <= 0 {
			panic(fmt.Sprintf("invalid shape: %v", shape))
		}
	}
	size := 1
	for _, s := range shape {
		size *= s
	}

	return &AF32{
		V:     make([]float32, size),
		Shape: shape,
	}
}

// AF32FromRows builds a 2-D tensor of shape (len(rows), len(rows[0])),
// copying the row values.  All rows must have the same non-zero length.
func AF32FromRows(rows ...[]float32) *AF32 {
	if len(rows) == 0 || len(rows[0]) == 0 {
		panic("AF32FromRows() needs at least one non-empty row")
	}
	cols := len(rows[0])

	out := MakeAF32(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("ragged rows: row %d has %d columns, want %d", i, len(row), cols))
		}
		copy(out.V[i*cols:i*cols+cols], row)
	}
	return out
}

func (a *AF32) At1(idx int) float32 {
	return a.V[idx]
}

func (a *AF32) At2(idx0, idx1 int) float32 {
	if len(a.Shape) != 2 {
		panic("At2() invalid for len(shape) != 2")
	}
	return a.V[idx0*a.Shape[1]+idx1]
}

func (a *AF32) Set1(idx int, v float32) {
	a.V[idx] = v
}

func (a *AF32) Set2(idx0, idx1 int, v float32) {
	if len(a.Shape) != 2 {
		panic("Set2() invalid for len(shape) != 2")
	}
	a.V[idx0*a.Shape[1]+idx1] = v
}

// Row returns row idx of a 2-D tensor.  The returned slice shares storage
// with the tensor.
func (a *AF32) Row(idx int) []float32 {
	if len(a.Shape) != 2 {
		panic("Row() invalid for len(shape) != 2")
	}
	cols := a.Shape[1]
	return a.V[idx*cols : idx*cols+cols]
}

// Fill sets every element of the tensor to v.
func (a *AF32) Fill(v float32) {
	for i := range a.V {
		a.V[i] = v
	}
}
