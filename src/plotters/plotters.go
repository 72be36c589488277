// Package plotters implements the two chart procedures: the embedded GenEval
// curve and the CSV-driven OCR reward curve. Each run either writes one PNG or
// prints a diagnostic and stops without writing anything.
package plotters

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/iafilius/TrainingPlots/src/logging"
	"github.com/iafilius/TrainingPlots/src/render"
	"github.com/iafilius/TrainingPlots/src/series"
)

// DefaultOutDir is where both charts are written.
const DefaultOutDir = "plot"

// Options are shared by both plotters. The zero value writes to DefaultOutDir
// with the default backend, prints to stdout and never opens a window.
type Options struct {
	OutDir   string
	Renderer render.Renderer
	DPI      float64 // 0 keeps the chart's 300 DPI
	Caption  string
	Out      io.Writer
	// Show displays the finished chart; nil disables display.
	Show func(title string, img image.Image) error
}

// Outcome describes how a run ended.
type Outcome struct {
	Path    string // written image, empty if none
	Points  int    // points plotted
	Stopped error  // reportable condition that ended the run early
}

// Written reports whether an image was produced.
func (o Outcome) Written() bool { return o.Path != "" }

func (o Options) out() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o Options) printf(format string, a ...interface{}) {
	fmt.Fprintf(o.out(), format+"\n", a...)
}

func (o Options) outDir() string {
	if o.OutDir == "" {
		return DefaultOutDir
	}
	return o.OutDir
}

func (o Options) renderer() (render.Renderer, error) {
	if o.Renderer != nil {
		return o.Renderer, nil
	}
	return render.Backend(render.DefaultBackend)
}

// apply layers the run options over a chart's fixed style.
func (o Options) apply(spec render.ChartSpec) render.ChartSpec {
	if o.DPI > 0 {
		spec.DPI = o.DPI
	}
	if o.Caption != "" {
		spec.Caption = o.Caption
	}
	return spec
}

// finish renders s, writes it under OutDir and optionally shows it. Nothing is
// written if rendering fails.
func (o Options) finish(spec render.ChartSpec, s series.Series, fileName string) (Outcome, error) {
	r, err := o.renderer()
	if err != nil {
		return Outcome{}, err
	}
	logging.Debugf("rendering %q (%d points) with %s", spec.Title, s.Len(), r.Name())
	img, err := render.Draw(r, spec, s)
	if err != nil {
		return Outcome{}, err
	}
	path, err := render.Save(o.outDir(), fileName, img, spec.DPI)
	if err != nil {
		return Outcome{}, err
	}
	o.printf("Plot saved successfully to: %s", path)
	if o.Show != nil {
		if err := o.Show(spec.Title, img); err != nil {
			logging.Warnf("display %s: %v", path, err)
		}
	}
	return Outcome{Path: path, Points: s.Len()}, nil
}
