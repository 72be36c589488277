package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// loadXLSX reads the first sheet of a workbook. The first row is the header.
// Cells are read raw so number formats ("1,500", "50%") never reach parseCell;
// excelize trims trailing empty cells and fromRecords pads them back as missing.
func loadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformed)
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrMalformed, sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrMalformed, sheets[0])
	}
	return fromRecords(rows)
}
