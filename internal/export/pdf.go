package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/RenoQuote/internal/model"
)

var (
	// ErrRenderingUnavailable means no document backend is installed in this
	// environment. Callers should fall back to the text report.
	ErrRenderingUnavailable = errors.New("document rendering unavailable")

	// ErrRenderingFailed means the backend failed while drawing the document.
	// No partial output is returned.
	ErrRenderingFailed = errors.New("document rendering failed")
)

// DocumentBackend turns an estimate into a paginated document byte stream.
type DocumentBackend interface {
	Render(est model.Estimate) ([]byte, error)
}

// backend is the installed document backend. The fpdf backend is installed
// by default; SetDocumentBackend(nil) models a runtime without document
// support, which is how headless builds and tests exercise the fallback.
var backend DocumentBackend = fpdfBackend{}

// SetDocumentBackend replaces the installed document backend and returns the
// previous one.
func SetDocumentBackend(b DocumentBackend) DocumentBackend {
	prev := backend
	backend = b
	return prev
}

// RenderPDF renders the estimate into an in-memory PDF byte stream suitable
// for download as estimate.pdf (application/pdf). It returns
// ErrRenderingUnavailable when no backend is installed and an error wrapping
// ErrRenderingFailed when the backend fails mid-render.
func RenderPDF(est model.Estimate) ([]byte, error) {
	if backend == nil {
		return nil, ErrRenderingUnavailable
	}
	data, err := backend.Render(est)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderingFailed, err)
	}
	return data, nil
}

// Page layout constants (A4 portrait in mm).
const (
	pdfPageWidth   = 210.0
	pdfPageHeight  = 297.0
	pdfMarginLeft  = 20.0
	pdfMarginRight = 20.0
	pdfMarginTop   = 20.0
	pdfQRSize      = 24.0
)

// Table column widths: item, quantity, unit price, subtotal.
var pdfColWidths = []float64{55, 35, 35, 45}

// fpdfBackend renders estimates with github.com/go-pdf/fpdf.
type fpdfBackend struct{}

func (fpdfBackend) Render(est model.Estimate) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Core fonts are cp1252; translate for "¥" and "m²".
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(pdfMarginLeft, pdfMarginTop)
	pdf.CellFormat(pdfPageWidth-pdfMarginLeft-pdfMarginRight, 10, tr(reportTitle), "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(pdfMarginLeft, pdfMarginTop+12, pdfPageWidth-pdfMarginRight, pdfMarginTop+12)

	y := pdfMarginTop + 18.0

	// Table header
	headers := []string{"Item", "Quantity", "Unit price", "Subtotal"}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	x := pdfMarginLeft
	for i, h := range headers {
		pdf.SetXY(x, y)
		pdf.CellFormat(pdfColWidths[i], 7, tr(h), "1", 0, "C", true, 0, "")
		x += pdfColWidths[i]
	}
	y += 7

	// Line item rows
	pdf.SetFont("Helvetica", "", 10)
	for i, it := range est.Items {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		row := []string{
			it.Label,
			amount(it.Quantity) + " " + it.Unit,
			money(it.UnitPrice),
			money(it.Subtotal),
		}
		aligns := []string{"L", "R", "R", "R"}
		x = pdfMarginLeft
		for j, cell := range row {
			pdf.SetXY(x, y)
			pdf.CellFormat(pdfColWidths[j], 7, tr(cell), "1", 0, aligns[j], true, 0, "")
			x += pdfColWidths[j]
		}
		y += 7
	}

	y += 6

	// Totals block, right-aligned under the subtotal column
	totals := []struct {
		label string
		value string
		bold  bool
	}{
		{"Material subtotal", money(est.MaterialSubtotal), false},
		{"Labor (" + percent(est.LaborRate) + ")", money(est.LaborCost), false},
		{"Total", money(est.GrandTotal), true},
	}

	labelW := pdfColWidths[0] + pdfColWidths[1] + pdfColWidths[2]
	for _, row := range totals {
		if row.bold {
			pdf.SetFont("Helvetica", "B", 11)
		} else {
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.SetXY(pdfMarginLeft, y)
		pdf.CellFormat(labelW, 7, tr(row.label), "", 0, "R", false, 0, "")
		pdf.CellFormat(pdfColWidths[3], 7, tr(row.value), "", 0, "R", false, 0, "")
		y += 7
	}

	if err := stampEstimateQR(pdf, est, y+8); err != nil {
		return nil, err
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(pdfMarginLeft, pdfPageHeight-15)
	pdf.CellFormat(pdfPageWidth-pdfMarginLeft-pdfMarginRight, 4,
		"Generated by RenoQuote - Interior Renovation Estimator", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// stampEstimateQR places a QR code encoding the estimate as JSON, so a
// printed quote can be scanned back into a structured record.
func stampEstimateQR(pdf *fpdf.Fpdf, est model.Estimate, y float64) error {
	qrData, err := json.Marshal(est)
	if err != nil {
		return fmt.Errorf("failed to marshal estimate: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	pdf.RegisterImageOptionsReader("estimate-qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	qrX := pdfPageWidth - pdfMarginRight - pdfQRSize
	pdf.ImageOptions("estimate-qr", qrX, y, pdfQRSize, pdfQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(qrX, y+pdfQRSize+1)
	pdf.CellFormat(pdfQRSize, 3, "Scan for details", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}
