package arraydata

import (
	"os"
	"path/filepath"
	"testing"
)

func panics(f func()) (p bool) {
	defer func() {
		if r := recover(); r != nil {
			p = true
		}
	}()
	f()
	return false
}

func filled() *Array {
	A := New()
	A.SetColumnCount(2)
	A.SetRowCount(3)
	A.SetXAxis(0.5, 0.25)
	A.Allocate()
	for r := 0; r < 3; r++ {
		A.SetValue(r, 0, float64(r))
		A.SetValue(r, 1, float64(r*r))
	}
	return A
}

func TestArray(Te *testing.T) {
	A := filled()
	if A.FrameCount() != 0 || A.RowCount() != 3 {
		Te.Errorf("got %d frames %d rows before ready", A.FrameCount(), A.RowCount())
	}
	A.ValuesReady()
	if A.FrameCount() != 3 {
		Te.Errorf("got %d frames after ready", A.FrameCount())
	}
	if x := A.XValue(2); x != 1.0 {
		Te.Errorf("XValue(2) = %f, want 1.0", x)
	}
	if v := A.Value(2, 1); v != 4 {
		Te.Errorf("Value(2,1) = %f, want 4", v)
	}
	col := A.Column(1)
	if len(col) != 3 || col[1] != 1 {
		Te.Errorf("wrong column %v", col)
	}
	if !panics(func() { A.SetValue(0, 0, 1) }) {
		Te.Error("changed a value after ValuesReady")
	}
	if !panics(func() { A.Value(3, 0) }) {
		Te.Error("read out of range")
	}
	if !panics(func() { A.SetRowCount(4) }) {
		Te.Error("changed the row count after allocation")
	}
}

func TestAllocateNeedsCounts(Te *testing.T) {
	A := New()
	A.SetColumnCount(1)
	if !panics(A.Allocate) {
		Te.Error("allocated without a row count")
	}
	if !panics(func() { A.Value(0, 0) }) {
		Te.Error("read from an unallocated array")
	}
}

func TestCopy(Te *testing.T) {
	A := filled()
	B := A.Copy()
	A.SetValue(1, 1, 100)
	if B.Value(1, 1) != 1 {
		Te.Error("copy shares values with the original")
	}
	if B.XStart() != 0.5 || B.XStep() != 0.25 || B.ColumnCount() != 2 {
		Te.Errorf("axis or shape not copied: %+v", B)
	}
}

func TestPlot(Te *testing.T) {
	A := filled()
	name := filepath.Join(Te.TempDir(), "data.png")
	if err := A.Plot(name, "test"); err == nil {
		Te.Error("plotted values that were not ready")
	}
	A.ValuesReady()
	if err := A.Plot(name, "test", 0, 1); err != nil {
		Te.Fatal(err)
	}
	if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
		Te.Errorf("plot not written: %v", err)
	}
	if err := A.Plot(name, "test", 5); err == nil {
		Te.Error("plotted a column out of range")
	}
}
