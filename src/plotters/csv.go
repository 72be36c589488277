package plotters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iafilius/TrainingPlots/src/logging"
	"github.com/iafilius/TrainingPlots/src/render"
	"github.com/iafilius/TrainingPlots/src/table"
)

const (
	// DefaultCSV is the exported training log read by CSVPlotter.
	DefaultCSV = "plot/ocr.csv"
	// OCRFile is the output name of the OCR reward chart.
	OCRFile = "ocr_train_reward.png"

	DefaultXCol    = "train/global_step"
	DefaultYCol    = "Qwen3-1.7B-GRPO-16-beta-0.001-lr-1e-6-final-4-nodes - train/rewards/reward_len/mean"
	DefaultMaxStep = 900
)

// hintSubstrings pick out plausible y columns when the configured one is absent.
var hintSubstrings = []string{"reward", "mean"}

// CSVPlotter charts one metric column against the step column of a training log.
type CSVPlotter struct {
	Options
	File    string
	XCol    string
	YCol    string
	MaxStep float64
}

// NewCSVPlotter returns a plotter configured for the OCR reward run.
func NewCSVPlotter(opts Options) *CSVPlotter {
	return &CSVPlotter{
		Options: opts,
		File:    DefaultCSV,
		XCol:    DefaultXCol,
		YCol:    DefaultYCol,
		MaxStep: DefaultMaxStep,
	}
}

// Spec is the reward chart layout; axes follow the data.
func (p *CSVPlotter) Spec() render.ChartSpec {
	return p.apply(render.DefaultSpec("OCR GRPO Training Reward", "Training Steps", "Reward"))
}

// Run loads the table and renders the chart. Missing files, unparsable input,
// absent columns and an empty selection are printed and returned in
// Outcome.Stopped with a nil error; only render/write failures are errors.
func (p *CSVPlotter) Run() (Outcome, error) {
	tbl, err := table.Load(p.File)
	if err != nil {
		return p.stopOnLoad(err), nil
	}
	rows, cols := tbl.Shape()
	p.printf("Successfully loaded table with shape: (%d, %d)", rows, cols)
	p.printf("Columns: %s", columnList(tbl.Columns()))

	if !tbl.Has(p.XCol) {
		err := &table.ColumnError{Column: p.XCol, Available: tbl.Columns()}
		p.printf("Error: %v in %s", err, p.File)
		p.printf("Available columns: %s", columnList(err.Available))
		return Outcome{Stopped: err}, nil
	}
	if !tbl.Has(p.YCol) {
		err := &table.ColumnError{Column: p.YCol, Available: tbl.Columns()}
		p.printf("Error: %v in %s", err, p.File)
		p.printf("Looking for similar columns...")
		p.printf("Columns containing 'reward' or 'mean': %s", columnList(tbl.MatchingColumns(hintSubstrings...)))
		return Outcome{Stopped: err}, nil
	}

	s, st, err := tbl.Select(p.XCol, p.YCol)
	if err != nil {
		p.printf("Error reading %s: %v", p.File, err)
		return Outcome{Stopped: err}, nil
	}
	logging.Debugf("%s: %d rows, %d dropped for missing values", p.File, st.Rows, st.Dropped)
	s = s.FilterMaxX(p.MaxStep)
	if finite := s.Finite(); finite.Len() != s.Len() {
		logging.Debugf("%s: %d rows with infinite values left out", p.File, s.Len()-finite.Len())
		s = finite
	}

	if s.Empty() {
		p.printf("Error: no valid data points found after removing missing values and steps > %v", p.MaxStep)
		return Outcome{Stopped: ErrNoData}, nil
	}
	p.printf("Plotting %d data points", s.Len())
	return p.finish(p.Spec(), s, OCRFile)
}

func (p *CSVPlotter) stopOnLoad(err error) Outcome {
	if errors.Is(err, ErrNotFound) {
		p.printf("Error: could not find %s (file not found)", p.File)
		p.printf("Please make sure the file exists relative to the current directory.")
		return Outcome{Stopped: err}
	}
	p.printf("Error reading %s: %v", p.File, err)
	if !errors.Is(err, ErrMalformed) {
		err = fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return Outcome{Stopped: err}
}

// columnList formats names as ['a', 'b'], the way the training logs' own tooling prints them.
func columnList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
