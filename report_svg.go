// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hermes

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

const (
	svgWidth  = 1920
	svgHeight = 1080
)

// svgBar is the buffered per-row state SVGReporter needs to draw one bar;
// everything is precomputed in log-space by WriteReport so Close only has
// to scale and lay the bars out (mirrors
// original_source/hermes.cpp's SVGReporter::Bar).
type svgBar struct {
	name              string
	value             float64 // the row's median, for the numeric label
	height            float64 // axisScale(median)
	tipUp, tipDown    float64 // axisScale(max)-height, axisScale(min)-height
	stddevUp, stddevDown float64 // axisScale(mean+stddev), axisScale(mean-stddev)
}

// SVGReporter buffers every row in memory and emits one 1920x1080 SVG
// chart on Close. The SVG reporter is the one reporter that must see
// every row before it can lay anything out (bar spacing depends on N,
// the y-scale depends on the tallest bar), so unlike Console and CSV it
// cannot stream.
type SVGReporter struct {
	f    io.WriteCloser
	bars []svgBar
}

// NewSVGReporter opens path for writing. Nothing is written until Close;
// a failure to open is a "Reporter I/O fatal" condition.
func NewSVGReporter(path string) (*SVGReporter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, wrapReporterIO(err, "open svg report "+path)
	}
	return &SVGReporter{f: f}, nil
}

// axisScale is the SVG chart's log axis: log(x) for x>0, and x unchanged
// otherwise so a non-positive median (possible after fixed-overhead
// correction) does not feed log a domain error.
func axisScale(x float64) float64 {
	if x <= 0 {
		return x
	}
	return math.Log(x)
}

func (r *SVGReporter) WriteReport(name string, row Row) {
	height := axisScale(row.Median)
	r.bars = append(r.bars, svgBar{
		name:        name,
		value:       row.Median,
		height:      height,
		tipUp:       axisScale(row.Max) - height,
		tipDown:     axisScale(row.Min) - height,
		stddevUp:    axisScale(row.Mean + row.StdDev),
		stddevDown:  axisScale(row.Mean - row.StdDev),
	})
}

// Close renders the buffered bars into the final SVG document and closes
// the underlying file. Bar i sits at x = 100 + i*xscale; bar height is
// height*yscale, where yscale is chosen so the tallest bar (including its
// upper tip) reaches the chart's usable vertical span.
func (r *SVGReporter) Close() error {
	defer r.f.Close()

	var b strings.Builder
	fmt.Fprintf(&b, "<svg viewBox=\"0 0 %d %d\" xmlns=\"http://www.w3.org/2000/svg\">\n", svgWidth, svgHeight)
	b.WriteString(svgStyle)
	fmt.Fprintf(&b, "<rect x=\"0\" y=\"0\" width=\"%d\" height=\"%d\" fill=\"lightgray\" />\n", svgWidth, svgHeight)

	if len(r.bars) == 0 {
		b.WriteString("</svg>\n")
		_, err := io.WriteString(r.f, b.String())
		return err
	}

	xscale := float64(svgWidth-200) / math.Max(1, float64(len(r.bars)-1))
	ymax := 0.0
	for _, bar := range r.bars {
		if h := bar.height + bar.tipUp; h > ymax {
			ymax = h
		}
	}
	yscale := float64(svgHeight-120) / ymax

	const baseY = svgHeight - 60
	for i, bar := range r.bars {
		x := 100 + float64(i)*xscale
		barWidth := 0.65 * xscale
		avgWidth := 0.35 * xscale
		tipWidth := 0.15 * xscale
		barHeight := bar.height * yscale
		tipUpH := bar.tipUp * yscale
		tipDownH := bar.tipDown * yscale

		fmt.Fprintf(&b, "<rect class=\"bar\" x=\"%f\" y=\"%f\" width=\"%f\" height=\"%f\" />\n",
			x-barWidth*0.5, baseY-barHeight, barWidth, barHeight)
		fmt.Fprintf(&b, "<rect class=\"stddev\" x=\"%f\" y=\"%f\" width=\"%f\" height=\"%f\" />\n",
			x-avgWidth*0.5, baseY-bar.stddevUp*yscale, avgWidth, (bar.stddevUp-bar.stddevDown)*yscale)
		fmt.Fprintf(&b, "<line class=\"tip\" x1=\"%f\" y1=\"%f\" x2=\"%f\" y2=\"%f\" />\n",
			x, baseY-barHeight-tipUpH, x, baseY-barHeight-tipDownH)
		fmt.Fprintf(&b, "<line class=\"tip\" x1=\"%f\" y1=\"%f\" x2=\"%f\" y2=\"%f\" />\n",
			x-tipWidth*0.5, baseY-barHeight-tipUpH, x+tipWidth*0.5, baseY-barHeight-tipUpH)
		fmt.Fprintf(&b, "<line class=\"tip\" x1=\"%f\" y1=\"%f\" x2=\"%f\" y2=\"%f\" />\n",
			x-tipWidth*0.5, baseY-barHeight-tipDownH, x+tipWidth*0.5, baseY-barHeight-tipDownH)
		fmt.Fprintf(&b, "<text class=\"value\" x=\"%f\" y=\"%f\">%.0f</text>\n",
			x, baseY-barHeight-20, bar.value)
		fmt.Fprintf(&b, "<text class=\"label\" x=\"%f\" y=\"%f\">%s</text>\n",
			x, float64(svgHeight-30), bar.name)
	}
	b.WriteString("</svg>\n")

	_, err := io.WriteString(r.f, b.String())
	return err
}

const svgStyle = `<style type="text/css">
.bar {
  stroke: #000000;
  fill: #779977;
}
.stddev {
  stroke: none;
  fill: #223344;
  opacity: 0.25;
}
.tip {
  stroke: #223344;
  fill: none;
}
.label {
  font-family: monospace;
  color: #000000;
  dominant-baseline: central;
  text-anchor: middle;
}
.value {
  font-family: monospace;
  color: #000000;
  dominant-baseline: central;
  text-anchor: middle;
}
</style>
`
