package xlsexport

import "github.com/xuri/excelize/v2"

func writeColumn(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for idx, value := range values {
		if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
			return err
		}
	}
	return nil
}

func rangeStyle(f *excelize.File, sheet string, colFrom, rowFrom, colTo, rowTo int, style *excelize.Style) error {
	styleID, err := f.NewStyle(style)
	if err != nil {
		return err
	}
	cellFirst, err := excelize.CoordinatesToCellName(colFrom, rowFrom)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(colTo, rowTo)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cellFirst, cellLast, styleID)
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	err := rangeStyle(f, sheet, 1, row, len(headers), row, &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Family: "Calibri", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D1FAE5"}},
	})
	if err != nil {
		return row, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return row, err
	}
	if err = f.SetColWidth(sheet, "A", lastCol, 22); err != nil {
		return row, err
	}
	values := make([]interface{}, 0, len(headers))
	for _, h := range headers {
		values = append(values, h)
	}
	return row, writeRow(f, sheet, row, values)
}

func applyDataCellStyle(f *excelize.File, sheet string, colFrom, rowFrom, colTo, rowTo int) error {
	return rangeStyle(f, sheet, colFrom, rowFrom, colTo, rowTo, &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
		Font:      &excelize.Font{Family: "Calibri", Size: 11},
	})
}
