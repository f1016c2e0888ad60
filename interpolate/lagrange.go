/*package interpolate evaluates Lagrange interpolating polynomials through
tables of (x, y) samples.

Only interpolation is supported. Every routine here rejects queries at or
outside the ends of the table instead of extrapolating.
*/
package interpolate

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewPoints is returned for tables with fewer than two samples.
	ErrTooFewPoints = errors.New("interpolate: table needs at least two points")
	// ErrOutOfRange is returned for queries which are not strictly inside
	// the table.
	ErrOutOfRange = errors.New("interpolate: x out of table range")
)

// Point is a single (x, y) sample.
type Point struct {
	X, Y float64
}

// Points zips parallel x and y slices into a table.
func Points(xs, ys []float64) []Point {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf(
			"len(xs) = %d, but len(ys) = %d", len(xs), len(ys),
		))
	}

	table := make([]Point, len(xs))
	for i := range xs {
		table[i] = Point{xs[i], ys[i]}
	}
	return table
}

// Interpolate evaluates the Lagrange polynomial through table at x. If the
// table was sampled from a polynomial of degree less than len(table), the
// result is exact up to rounding.
//
// table must be sorted from smallest to largest x and x must lie strictly
// between the first and last x values. Only the endpoints are checked. Equal
// x values or NaNs in the table are not caught and will propagate into the
// result.
func Interpolate(table []Point, x float64) (float64, error) {
	if len(table) < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(table))
	}

	lo, hi := table[0].X, table[len(table)-1].X
	if !(x > lo) {
		return 0, fmt.Errorf(
			"%w: %g is at or below the lower bound %g", ErrOutOfRange, x, lo,
		)
	} else if !(x < hi) {
		return 0, fmt.Errorf(
			"%w: %g is at or above the upper bound %g", ErrOutOfRange, x, hi,
		)
	}

	sum := 0.0
	for i := range table {
		// L_i(x)
		prod := 1.0
		for j := range table {
			if j == i {
				continue
			}
			prod *= (x - table[j].X) / (table[i].X - table[j].X)
		}
		sum += table[i].Y * prod
	}

	return sum, nil
}

// MustInterpolate is like Interpolate but panics if table or x is invalid.
func MustInterpolate(table []Point, x float64) float64 {
	y, err := Interpolate(table, x)
	if err != nil {
		panic(err)
	}
	return y
}
