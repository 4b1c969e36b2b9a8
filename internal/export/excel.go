package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/RenoQuote/internal/model"
)

const excelSheetName = "Estimate"

// RenderExcel renders the estimate as an xlsx workbook in memory, mirroring
// the content of the text report. The result is suitable for download as
// estimate.xlsx.
func RenderExcel(est model.Estimate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelSheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetCellValue(excelSheetName, "A1", reportTitle); err != nil {
		return nil, err
	}

	headers := []string{"Item", "Quantity", "Unit", "Unit price", "Subtotal"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 3)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(excelSheetName, cell, h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(excelSheetName, "A3", "E3", headerStyle); err != nil {
		return nil, err
	}

	row := 4
	for _, it := range est.Items {
		values := []interface{}{it.Label, it.Quantity, it.Unit, it.UnitPrice, it.Subtotal}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(excelSheetName, cell, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	row++ // blank row between items and totals
	totals := []struct {
		label string
		value float64
	}{
		{"Material subtotal", est.MaterialSubtotal},
		{"Labor (" + percent(est.LaborRate) + ")", est.LaborCost},
		{"Total", est.GrandTotal},
	}
	for _, tl := range totals {
		labelCell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		valueCell, err := excelize.CoordinatesToCellName(5, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(excelSheetName, labelCell, tl.label); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(excelSheetName, valueCell, tl.value); err != nil {
			return nil, err
		}
		row++
	}

	if err := f.SetColWidth(excelSheetName, "A", "E", 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
