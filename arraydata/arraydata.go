/*
 * arraydata.go, part of hackblock
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package arraydata provides a simple in-memory array of analysis data:
// a table of rows (frames) and columns, where every row has an x value
// given by a start and a constant step.
//
// The array is filled in stages: set the column and row counts, Allocate,
// set the values, and call ValuesReady. After that the values can only be
// read. Misusing the stages is a programming error and panics.
package arraydata

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Array is an in-memory data array with an x axis.
type Array struct {
	ncols  int
	nrows  int
	values *mat.Dense
	xstart float64
	xstep  float64
	ready  bool
}

// New returns an empty array with an x axis starting at 0 with step 1.
func New() *Array {
	return &Array{xstep: 1}
}

// SetColumnCount sets the number of columns. It panics after Allocate.
func (A *Array) SetColumnCount(ncols int) {
	if A.IsAllocated() {
		panic("arraydata: can't change the column count after allocation")
	}
	if ncols <= 0 {
		panic(fmt.Sprintf("arraydata: invalid column count %d", ncols))
	}
	A.ncols = ncols
}

// SetRowCount sets the number of rows. It panics after Allocate.
func (A *Array) SetRowCount(nrows int) {
	if A.IsAllocated() {
		panic("arraydata: can't change the row count after allocation")
	}
	if nrows <= 0 {
		panic(fmt.Sprintf("arraydata: invalid row count %d", nrows))
	}
	A.nrows = nrows
}

// Allocate reserves memory for the values, all set to zero.
// Both counts must have been set.
func (A *Array) Allocate() {
	if A.ncols <= 0 || A.nrows <= 0 {
		panic("arraydata: row and column counts must be set before allocation")
	}
	if A.IsAllocated() {
		panic("arraydata: already allocated")
	}
	A.values = mat.NewDense(A.nrows, A.ncols, nil)
}

// SetXAxis sets the x value of the first row and the step between rows.
func (A *Array) SetXAxis(start, step float64) {
	A.xstart = start
	A.xstep = step
}

// IsAllocated returns true if the values have been allocated.
func (A *Array) IsAllocated() bool { return A.values != nil }

// RowCount returns the number of rows, even before ValuesReady.
func (A *Array) RowCount() int { return A.nrows }

// ColumnCount returns the number of columns.
func (A *Array) ColumnCount() int { return A.ncols }

// FrameCount is like RowCount, but returns 0 until ValuesReady has been called.
func (A *Array) FrameCount() int {
	if !A.ready {
		return 0
	}
	return A.nrows
}

// XStart returns the x value of the first row.
func (A *Array) XStart() float64 { return A.xstart }

// XStep returns the step between the x values of consecutive rows.
func (A *Array) XStep() float64 { return A.xstep }

// XValue returns the x value of a row.
func (A *Array) XValue(row int) float64 {
	A.checkRow(row)
	return A.xstart + float64(row)*A.xstep
}

func (A *Array) checkRow(row int) {
	if row < 0 || row >= A.nrows {
		panic(fmt.Sprintf("arraydata: row index %d out of range", row))
	}
}

func (A *Array) check(row, col int) {
	A.checkRow(row)
	if col < 0 || col >= A.ncols {
		panic(fmt.Sprintf("arraydata: column index %d out of range", col))
	}
	if !A.IsAllocated() {
		panic("arraydata: values not allocated")
	}
}

// Value returns the element at row, col.
func (A *Array) Value(row, col int) float64 {
	A.check(row, col)
	return A.values.At(row, col)
}

// SetValue sets the element at row, col. It panics after ValuesReady.
func (A *Array) SetValue(row, col int, v float64) {
	A.check(row, col)
	if A.ready {
		panic("arraydata: values can't be changed after ValuesReady")
	}
	A.values.Set(row, col, v)
}

// ValuesReady marks the values as final.
func (A *Array) ValuesReady() {
	if !A.IsAllocated() {
		panic("arraydata: ValuesReady called before allocation")
	}
	A.ready = true
}

// Ready returns true if ValuesReady has been called.
func (A *Array) Ready() bool { return A.ready }

// Column returns a copy of the values in column col.
func (A *Array) Column(col int) []float64 {
	A.check(0, col)
	return mat.Col(nil, col, A.values)
}

// Copy returns an independent copy of the array, including the
// ready state.
func (A *Array) Copy() *Array {
	r := &Array{ncols: A.ncols, nrows: A.nrows, xstart: A.xstart, xstep: A.xstep, ready: A.ready}
	if A.values != nil {
		r.values = mat.DenseCopyOf(A.values)
	}
	return r
}
