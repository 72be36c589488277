package plotters

import (
	"github.com/iafilius/TrainingPlots/src/render"
	"github.com/iafilius/TrainingPlots/src/series"
)

// GenEvalFile is the output name of the GenEval chart.
const GenEvalFile = "geneval_performance.png"

// GenEvalPlotter charts the embedded GenEval GRPO performance curve.
type GenEvalPlotter struct {
	Options
}

func NewGenEvalPlotter(opts Options) *GenEvalPlotter {
	return &GenEvalPlotter{Options: opts}
}

// Spec is the fixed chart layout: y pinned to [80,92], one x tick per checkpoint.
func (p *GenEvalPlotter) Spec() render.ChartSpec {
	spec := render.DefaultSpec("GenEval GRPO Performance", "Training Steps", "GenEval Performance (%)")
	spec.YRange = &render.Range{Min: 80, Max: 92}
	spec.XTicks = series.GenEvalSteps()
	return p.apply(spec)
}

// Run renders the chart. Rendering and write failures are returned as errors.
func (p *GenEvalPlotter) Run() (Outcome, error) {
	s := series.GenEval()
	p.printf("Plotting %d data points", s.Len())
	p.printf("Training steps: %v", s.XValues())
	p.printf("GenEval performance: %v", s.YValues())
	return p.finish(p.Spec(), s, GenEvalFile)
}
