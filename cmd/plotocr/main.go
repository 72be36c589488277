// plotocr renders the OCR GRPO training reward from plot/ocr.csv to plot/ocr_train_reward.png.
package main

import (
	"os"

	"github.com/iafilius/TrainingPlots/src/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewOCRCommand("plotocr")))
}
