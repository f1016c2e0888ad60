package main

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/lagrange/interpolate"
	"github.com/phil-mansfield/lagrange/io"

	plt "github.com/phil-mansfield/pyplot"
)

func TestGetModeName(t *testing.T) {
	a, b := "", ""
	vars := map[string]*string{"Interpolate": &a, "ExampleConfig": &b}

	_, err := getModeName(vars)
	assert.Error(t, err)

	a = "interp.config"
	name, err := getModeName(vars)
	require.NoError(t, err)
	assert.Equal(t, "Interpolate", name)

	b = "Interpolate"
	_, err = getModeName(vars)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ExampleConfig, Interpolate")
}

func writeSamples(t *testing.T, text string) (fname string, cleanup func()) {
	dir, err := ioutil.TempDir("", "lagrange_main")
	require.NoError(t, err)
	fname = filepath.Join(dir, "samples.txt")
	require.NoError(t, ioutil.WriteFile(fname, []byte(text), 0644))
	return fname, func() { os.RemoveAll(dir) }
}

func TestInterpolateMain(t *testing.T) {
	fname, cleanup := writeSamples(t, "0 0\n1 2\n2 4\n")
	defer cleanup()

	con := &io.InterpolateConfig{
		Input: fname, Query: []float64{0.5, 1.5},
		XColumn: 0, YColumn: 1, Format: "%.2f",
	}
	lines, err := interpolateMain(con)
	require.NoError(t, err)
	assert.Equal(t, []string{"0.5 1.00", "1.5 3.00"}, lines)

	con.Query = []float64{0.5, 2}
	_, err = interpolateMain(con)
	require.Error(t, err)
	assert.True(t, errors.Is(err, interpolate.ErrOutOfRange))
}

func TestInterpolateMainUnsorted(t *testing.T) {
	fname, cleanup := writeSamples(t, "0 0\n2 4\n1 2\n")
	defer cleanup()

	con := &io.InterpolateConfig{
		Input: fname, Query: []float64{0.5},
		XColumn: 0, YColumn: 1, Format: "%g",
	}
	_, err := interpolateMain(con)
	assert.Error(t, err)
}

func TestExampleConfigMain(t *testing.T) {
	text, err := exampleConfigMain("Interpolate")
	require.NoError(t, err)
	assert.Equal(t, io.ExampleInterpolateFile, text)

	_, err = io.ParseInterpolateConfig(text)
	assert.NoError(t, err)

	for _, name := range []string{"Render", "interpolate", " "} {
		text, err := exampleConfigMain(name)
		require.Error(t, err, "name = %q", name)
		assert.Contains(t, err.Error(), "'Interpolate'")
		assert.Equal(t, "", text)
	}
}

func TestPlotGrid(t *testing.T) {
	xs := plotGrid(0, 90, 200)
	require.Len(t, xs, 200)
	assert.True(t, xs[0] > 0)
	assert.True(t, xs[len(xs)-1] < 90)
	for i := 1; i < len(xs); i++ {
		assert.True(t, xs[i] > xs[i-1], "%d) %g <= %g", i, xs[i], xs[i-1])
	}

	assert.Equal(t, []float64{1, 2, 3}, plotGrid(0, 4, 3))
}

func TestInterpolateMainPlot(t *testing.T) {
	fname, cleanup := writeSamples(t, "0 0\n30 0.5\n60 0.86603\n90 1\n")
	defer cleanup()

	plt.Reset()
	defer plt.Reset()

	con := &io.InterpolateConfig{
		Input: fname, Query: []float64{51},
		XColumn: 0, YColumn: 1, Format: "%.4f",
		Plot: filepath.Join(filepath.Dir(fname), "sin.png"), PlotPoints: 2,
	}
	var lines []string
	var err error
	assert.NotPanics(t, func() { lines, err = interpolateMain(con) })
	require.NoError(t, err)
	assert.Equal(t, []string{"51 0.7761"}, lines)
}
