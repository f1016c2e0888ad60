package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/phil-mansfield/lagrange/interpolate"
	"github.com/phil-mansfield/lagrange/io"

	plt "github.com/phil-mansfield/pyplot"
)

func main() {
	var interpolateStr, exampleConfig string
	vars := map[string]*string{
		"Interpolate":   &interpolateStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&interpolateStr, "Interpolate", "",
		"Configuration file for [Interpolate] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. The only accepted argument is "+
			"'Interpolate'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Interpolate":
		con, err := io.ReadInterpolateConfig(interpolateStr)
		if err != nil {
			log.Fatal(err.Error())
		}

		lines, err := interpolateMain(con)
		if err != nil {
			log.Fatal(err.Error())
		}
		for _, line := range lines {
			fmt.Println(line)
		}
		if con.Plot != "" {
			plt.Execute()
		}

	case "ExampleConfig":
		text, err := exampleConfigMain(exampleConfig)
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Println(text)
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}
	sort.Strings(setNames)

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but lagrange "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// exampleConfigMain returns the example config file for the named mode.
func exampleConfigMain(name string) (string, error) {
	switch name {
	case "Interpolate":
		return io.ExampleInterpolateFile, nil
	default:
		return "", fmt.Errorf(
			"Unrecognized 'ExampleConfig' argument, '%s'. The only "+
				"recognized argument is 'Interpolate'.", name,
		)
	}
}

// interpolateMain evaluates the table named by con at every query point and
// returns one "x y" line per query. Any query outside the table aborts the
// whole run. If con.Plot is set, a plot of the table is queued up; it is
// written once plt.Execute is called.
func interpolateMain(con *io.InterpolateConfig) ([]string, error) {
	pts, err := io.ReadSamples(con.Input, con.XColumn, con.YColumn)
	if err != nil {
		return nil, err
	}
	if err := io.CheckSamples(pts); err != nil {
		return nil, fmt.Errorf("%s: %s", con.Input, err.Error())
	}

	lines := make([]string, len(con.Query))
	for i, x := range con.Query {
		y, err := interpolate.Interpolate(pts, x)
		if err != nil {
			return nil, fmt.Errorf("Query %d: %w", i, err)
		}
		lines[i] = fmt.Sprintf("%g "+con.Format, x, y)
	}

	if con.Plot != "" {
		plotInterpolant(pts, con.PlotPoints, con.Plot)
	}
	return lines, nil
}

// plotGrid returns n points evenly spaced strictly between lo and hi.
func plotGrid(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i+1)/float64(n+1)
	}
	return xs
}

func plotInterpolant(pts []interpolate.Point, n int, fname string) {
	xs, ys := make([]float64, len(pts)), make([]float64, len(pts))
	for i := range pts {
		xs[i], ys[i] = pts[i].X, pts[i].Y
	}

	evalXs := plotGrid(xs[0], xs[len(xs)-1], n)
	evalYs := interpolate.NewLagrange(xs, ys).EvalAll(evalXs)

	plt.Figure()
	plt.Plot(xs, ys, "ok")
	plt.Plot(evalXs, evalYs, "r", plt.LW(3))

	plt.Title(fmt.Sprintf("Lagrange interpolant through %d points", len(pts)))
	plt.XLabel("$x$", plt.FontSize(16))
	plt.YLabel("$y$", plt.FontSize(16))
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"))
	plt.SaveFig(fname)
}
