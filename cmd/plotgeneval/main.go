// plotgeneval renders the GenEval GRPO performance curve to plot/geneval_performance.png.
package main

import (
	"os"

	"github.com/iafilius/TrainingPlots/src/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewGenEvalCommand("plotgeneval")))
}
