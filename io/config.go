package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"
)

const (
	ExampleInterpolateFile = `[Interpolate]

#######################
# Required Parameters #
#######################

# Text file containing the sample table. Columns are separated by whitespace
# and rows must be sorted from smallest to largest x.
Input = path/to/samples.txt

# Points to evaluate the interpolant at. Give one Query line per point. Every
# point must lie strictly between the first and last x in Input.
Query = 51
Query = 75.5

#######################
# Optional Parameters #
#######################

# Zero-indexed columns of Input which hold x and y. Defaults are 0 and 1.
# XColumn = 0
# YColumn = 1

# printf verb used to write each result. It must be a floating point verb
# (e, f, g, or x, either case). Default is %g.
# Format = %.6g

# Image file which the sample points and the interpolating polynomial will be
# plotted to. Plotting requires python with numpy and matplotlib. PlotPoints
# is the number of points along the curve. Default is 200.
# Plot = interpolant.png
# PlotPoints = 200`
)

// InterpolateConfig describes a single run of Interpolate mode.
type InterpolateConfig struct {
	// Required
	Input string
	Query []float64

	// Optional
	XColumn, YColumn int
	Format           string
	Plot             string
	PlotPoints       int
}

type InterpolateWrapper struct {
	Interpolate InterpolateConfig
}

func DefaultInterpolateWrapper() *InterpolateWrapper {
	con := InterpolateConfig{}
	con.XColumn = 0
	con.YColumn = 1
	con.Format = "%g"
	con.PlotPoints = 200
	return &InterpolateWrapper{con}
}

func (con *InterpolateConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *InterpolateConfig) ValidQuery() bool {
	return len(con.Query) > 0
}
func (con *InterpolateConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.XColumn != con.YColumn
}
func (con *InterpolateConfig) ValidFormat() bool {
	return floatVerbs(con.Format) == 1
}
func (con *InterpolateConfig) ValidPlot() bool {
	return con.Plot == "" || con.PlotPoints >= 2
}

// floatVerbs returns the number of float64 verbs in format, or -1 if format
// contains a verb which cannot print a float64 or a dangling '%'. Literal
// "%%" is skipped.
func floatVerbs(format string) int {
	n := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			continue
		}

		// Flags, width, precision.
		for i < len(format) && strings.IndexByte("+-# 0", format[i]) >= 0 {
			i++
		}
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			i++
		}
		if i < len(format) && format[i] == '.' {
			i++
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
		}

		if i >= len(format) || strings.IndexByte("eEfFgGxX", format[i]) < 0 {
			return -1
		}
		n++
	}
	return n
}

// CheckInit returns an error describing the first invalid field of con.
func (con *InterpolateConfig) CheckInit() error {
	if !con.ValidInput() {
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	} else if !con.ValidQuery() {
		return fmt.Errorf("Need to specify at least one 'Query' value.")
	} else if !con.ValidColumns() {
		return fmt.Errorf(
			"'XColumn' = %d and 'YColumn' = %d must be distinct and "+
				"non-negative.", con.XColumn, con.YColumn,
		)
	} else if !con.ValidFormat() {
		return fmt.Errorf(
			"'Format' = %q must contain exactly one floating point verb.",
			con.Format,
		)
	} else if !con.ValidPlot() {
		return fmt.Errorf(
			"'PlotPoints' = %d must be at least 2.", con.PlotPoints,
		)
	}
	return nil
}

// ParseInterpolateConfig parses the text of an [Interpolate] config file.
func ParseInterpolateConfig(text string) (*InterpolateConfig, error) {
	wrap := DefaultInterpolateWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	return checked(wrap)
}

// ReadInterpolateConfig reads and checks an [Interpolate] config file.
func ReadInterpolateConfig(fname string) (*InterpolateConfig, error) {
	wrap := DefaultInterpolateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return checked(wrap)
}

func checked(wrap *InterpolateWrapper) (*InterpolateConfig, error) {
	con := &wrap.Interpolate
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}
