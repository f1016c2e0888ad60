package io

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/lagrange/interpolate"
)

// ReadSamples reads the x and y columns of a whitespace-separated text table
// into a sample table. Rows are returned in file order.
func ReadSamples(fname string, xCol, yCol int) ([]interpolate.Point, error) {
	cols, err := table.ReadTable(fname, []int{xCol, yCol}, nil)
	if err != nil {
		return nil, err
	}
	return interpolate.Points(cols[0], cols[1]), nil
}

// CheckSamples returns an error if pts cannot be interpolated through: too
// few rows, non-finite values, or x values which are not strictly
// increasing.
func CheckSamples(pts []interpolate.Point) error {
	if len(pts) < 2 {
		return fmt.Errorf(
			"Sample table has %d rows, but at least 2 are needed.", len(pts),
		)
	}

	for i, p := range pts {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf(
				"Row %d of sample table, (%g, %g), is not finite.", i, p.X, p.Y,
			)
		}
		if i > 0 && !(p.X > pts[i-1].X) {
			return fmt.Errorf(
				"Sample table not strictly increasing: x = %g in row %d "+
					"follows x = %g.", p.X, i, pts[i-1].X,
			)
		}
	}

	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
