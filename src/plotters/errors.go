package plotters

import (
	"errors"

	"github.com/iafilius/TrainingPlots/src/table"
)

// Conditions a plotter reports and stops on. Run returns them in
// Outcome.Stopped rather than as an error.
var (
	ErrNotFound      = table.ErrNotFound      // input file missing
	ErrMalformed     = table.ErrMalformed     // input could not be parsed
	ErrMissingColumn = table.ErrMissingColumn // required column absent
	ErrNoData        = errors.New("no valid data points")
)

// Reportable reports whether err is one of the report-and-stop conditions.
func Reportable(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrMalformed) ||
		errors.Is(err, ErrMissingColumn) ||
		errors.Is(err, ErrNoData)
}
