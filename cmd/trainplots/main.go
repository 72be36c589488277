// trainplots bundles every chart behind subcommands: geneval, ocr and all.
package main

import (
	"os"

	"github.com/iafilius/TrainingPlots/src/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewRootCommand()))
}
