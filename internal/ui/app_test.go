package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/RenoQuote/internal/model"
)

// roomEntries walks the Room panel and returns its entry widgets in order.
func roomEntries(panel fyne.CanvasObject) []*widget.Entry {
	var entries []*widget.Entry
	var walk func(fyne.CanvasObject)
	walk = func(obj fyne.CanvasObject) {
		switch o := obj.(type) {
		case *widget.Entry:
			entries = append(entries, o)
		case *widget.Card:
			walk(o.Content)
		case *fyne.Container:
			for _, child := range o.Objects {
				walk(child)
			}
		}
	}
	walk(panel)
	return entries
}

func TestNewEstimateResetsRoomEntries(t *testing.T) {
	test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	app := NewApp(w)
	app.room = model.RoomMeasurement{Length: 5, Width: 4, Height: 2.5, OpeningsArea: 2}
	est := model.CreateEstimate(app.room, app.prices)
	app.estimate = &est
	w.SetContent(app.Build())

	entries := roomEntries(app.tabs.Items[0].Content)
	if len(entries) != 4 {
		t.Fatalf("expected 4 room entries, got %d", len(entries))
	}
	if entries[0].Text != "5" {
		t.Fatalf("length entry shows %q before reset, want 5", entries[0].Text)
	}

	app.newEstimate()

	if app.room != (model.RoomMeasurement{}) {
		t.Errorf("room not reset: %+v", app.room)
	}
	if app.estimate != nil {
		t.Error("estimate should be cleared")
	}
	if app.reportLabel.Text != reportPlaceholder {
		t.Errorf("report label shows %q, want the placeholder", app.reportLabel.Text)
	}

	// The Room panel must be rebuilt so its entries show the reset values.
	entries = roomEntries(app.tabs.Items[0].Content)
	if len(entries) != 4 {
		t.Fatalf("expected 4 room entries after reset, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Text != "0" {
			t.Errorf("entry %d shows %q after reset, want 0", i, e.Text)
		}
	}
}
