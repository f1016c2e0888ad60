package interpolate

// Interpolator is a 1D interpolator.
type Interpolator interface {
	Eval(x float64) float64
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Lagrange{}
)

// Lagrange is an Interpolator which evaluates the full Lagrange polynomial
// through its table on every call. It keeps no cache, so a single Lagrange
// can be shared between goroutines.
type Lagrange struct {
	table []Point
}

// NewLagrange creates a Lagrange interpolator for a strictly increasing
// sequence of points, xs, which take on the values given by vals.
//
// Lookups are O(|xs|^2).
func NewLagrange(xs, vals []float64) *Lagrange {
	return &Lagrange{Points(xs, vals)}
}

// Eval returns the interpolated value at x.
//
// Eval panics if x is not strictly inside the range of xs or if fewer than
// two points were given.
func (lg *Lagrange) Eval(x float64) float64 {
	return MustInterpolate(lg.table, x)
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lg *Lagrange) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lg.Eval(x)
	}
	return out[0]
}
