package cli

import (
	"fmt"
	"image"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iafilius/TrainingPlots/src/display"
	"github.com/iafilius/TrainingPlots/src/logging"
	"github.com/iafilius/TrainingPlots/src/plotters"
	"github.com/iafilius/TrainingPlots/src/render"
)

// renderFlags are accepted by every command. Defaults reproduce the fixed
// behaviour, so running without arguments needs no configuration.
type renderFlags struct {
	outDir   string
	backend  string
	dpi      float64
	show     bool
	caption  string
	logLevel string
}

func (f *renderFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.outDir, "out-dir", "o", plotters.DefaultOutDir, "Directory for PNG output (created if missing)")
	fs.StringVar(&f.backend, "backend", render.DefaultBackend, "Render backend: "+strings.Join(render.Backends(), ", "))
	fs.Float64Var(&f.dpi, "dpi", 300, "Output resolution in dots per inch")
	fs.BoolVar(&f.show, "show", true, "Open the chart in a window when a display is available")
	fs.StringVar(&f.caption, "caption", "", "Caption drawn in the bottom-left corner")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// ocrFlags select the table and columns for the reward chart.
type ocrFlags struct {
	file    string
	xCol    string
	yCol    string
	maxStep float64
}

func (f *ocrFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.file, "file", "f", plotters.DefaultCSV, "Training log to read (.csv, .tsv or .xlsx)")
	fs.StringVar(&f.xCol, "x-col", plotters.DefaultXCol, "Step column")
	fs.StringVar(&f.yCol, "y-col", plotters.DefaultYCol, "Metric column")
	fs.Float64Var(&f.maxStep, "max-step", plotters.DefaultMaxStep, "Drop rows with a step above this value")
}

func (f *ocrFlags) plotter(opts plotters.Options) *plotters.CSVPlotter {
	p := plotters.NewCSVPlotter(opts)
	p.File, p.XCol, p.YCol, p.MaxStep = f.file, f.xCol, f.yCol, f.maxStep
	return p
}

// session carries the resolved options for one command invocation and the
// charts waiting to be displayed once every plotter has finished.
type session struct {
	opts    plotters.Options
	pending []display.Chart
}

func (f *renderFlags) session(cmd *cobra.Command) (*session, error) {
	if !logging.ValidLevel(f.logLevel) {
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn or error)", f.logLevel)
	}
	logging.SetOutput(cmd.ErrOrStderr())
	logging.SetLogLevel(f.logLevel)

	if f.dpi <= 0 {
		return nil, fmt.Errorf("invalid dpi: %v (must be positive)", f.dpi)
	}
	r, err := render.Backend(f.backend)
	if err != nil {
		return nil, err
	}
	s := &session{opts: plotters.Options{
		OutDir:   f.outDir,
		Renderer: r,
		DPI:      f.dpi,
		Caption:  f.caption,
		Out:      cmd.OutOrStdout(),
	}}
	if f.show && display.Available() {
		s.opts.Show = func(title string, img image.Image) error {
			s.pending = append(s.pending, display.Chart{Title: title, Image: img})
			return nil
		}
	} else if f.show {
		logging.Debugf("no display available; skipping chart window")
	}
	return s, nil
}

// flush shows every collected chart in one window session.
func (s *session) flush() error {
	if len(s.pending) == 0 {
		return nil
	}
	logging.Infof("opening %d chart window(s)", len(s.pending))
	return display.Show(s.pending...)
}
