package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/piwi3910/RenoQuote/internal/model"
)

func TestRenderPDFProducesDocument(t *testing.T) {
	data, err := RenderPDF(scenarioEstimate())
	if err != nil {
		t.Fatalf("RenderPDF returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("PDF output is empty")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header: %q", data[:8])
	}
	// A one-page document with a table and QR code should be a reasonable size.
	if len(data) < 1000 {
		t.Errorf("PDF output seems too small: %d bytes", len(data))
	}
}

func TestRenderPDFZeroEstimate(t *testing.T) {
	est := model.CreateEstimate(model.RoomMeasurement{}, model.PriceCatalog{})
	data, err := RenderPDF(est)
	if err != nil {
		t.Fatalf("RenderPDF returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("PDF output is empty")
	}
}

func TestRenderPDFUnavailableBackend(t *testing.T) {
	prev := SetDocumentBackend(nil)
	defer SetDocumentBackend(prev)

	data, err := RenderPDF(scenarioEstimate())
	if !errors.Is(err, ErrRenderingUnavailable) {
		t.Fatalf("expected ErrRenderingUnavailable, got %v", err)
	}
	if data != nil {
		t.Error("no output should be returned when rendering is unavailable")
	}
}

type failingBackend struct{}

func (failingBackend) Render(model.Estimate) ([]byte, error) {
	return nil, errors.New("boom")
}

func TestRenderPDFFailedBackend(t *testing.T) {
	prev := SetDocumentBackend(failingBackend{})
	defer SetDocumentBackend(prev)

	data, err := RenderPDF(scenarioEstimate())
	if !errors.Is(err, ErrRenderingFailed) {
		t.Fatalf("expected ErrRenderingFailed, got %v", err)
	}
	if errors.Is(err, ErrRenderingUnavailable) {
		t.Error("a failed render must be distinguishable from an unavailable backend")
	}
	if data != nil {
		t.Error("no partial output should be returned on failure")
	}
}

func TestSetDocumentBackendReturnsPrevious(t *testing.T) {
	prev := SetDocumentBackend(nil)
	if prev == nil {
		t.Fatal("default backend should be installed")
	}
	restored := SetDocumentBackend(prev)
	if restored != nil {
		t.Error("expected the nil backend back")
	}
}
