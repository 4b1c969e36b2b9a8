package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestRenderExcelProducesWorkbook(t *testing.T) {
	data, err := RenderExcel(scenarioEstimate())
	if err != nil {
		t.Fatalf("RenderExcel returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("workbook output is empty")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	title, err := f.GetCellValue(excelSheetName, "A1")
	if err != nil {
		t.Fatal(err)
	}
	if title != "Interior Renovation Estimate" {
		t.Errorf("A1 = %q, want report title", title)
	}

	// First line item row: wall covering with its subtotal in column E.
	label, _ := f.GetCellValue(excelSheetName, "A4")
	if label != "Wall covering" {
		t.Errorf("A4 = %q, want Wall covering", label)
	}
	subtotal, _ := f.GetCellValue(excelSheetName, "E4")
	if subtotal != "54000" {
		t.Errorf("E4 = %q, want 54000", subtotal)
	}
}

func TestRenderExcelTotals(t *testing.T) {
	data, err := RenderExcel(scenarioEstimate())
	if err != nil {
		t.Fatalf("RenderExcel returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(excelSheetName)
	if err != nil {
		t.Fatal(err)
	}

	var foundTotal bool
	for _, row := range rows {
		if len(row) >= 5 && row[0] == "Total" {
			foundTotal = true
			if row[4] != "288240" {
				t.Errorf("grand total cell = %q, want 288240", row[4])
			}
		}
	}
	if !foundTotal {
		t.Error("workbook has no Total row")
	}
}
