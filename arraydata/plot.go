package arraydata

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot draws the given columns (all of them, if none is given) against the
// x values of the array, and saves the plot to filename. The format is
// taken from the file extension (png, svg, pdf...).
func (A *Array) Plot(filename, title string, cols ...int) error {
	if !A.ready {
		return fmt.Errorf("arraydata: values not ready for plotting")
	}
	if len(cols) == 0 {
		cols = make([]int, A.ncols)
		for i := range cols {
			cols[i] = i
		}
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Add(plotter.NewGrid())
	for i, c := range cols {
		if c < 0 || c >= A.ncols {
			return fmt.Errorf("arraydata: column %d out of range", c)
		}
		pts := make(plotter.XYs, A.nrows)
		for row := range pts {
			pts[row].X = A.XValue(row)
			pts[row].Y = A.values.At(row, c)
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("column %d", c), l)
	}
	return p.Save(5*vg.Inch, 4*vg.Inch, filename)
}
