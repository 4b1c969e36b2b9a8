// RenoQuote — Interior Renovation Estimator
//
// A cross-platform desktop application for estimating interior
// renovation costs from room dimensions and unit prices, with
// PDF and Excel export.
//
// Build:
//   go build -o renoquote ./cmd/renoquote
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o renoquote.exe ./cmd/renoquote
//   GOOS=darwin  GOARCH=amd64 go build -o renoquote-darwin ./cmd/renoquote
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/piwi3910/RenoQuote/internal/ui"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	application := app.NewWithID("com.piwi3910.renoquote")

	window := application.NewWindow("RenoQuote — Interior Renovation Estimator")

	appUI := ui.NewApp(window)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(900, 640))
	window.CenterOnScreen()
	window.Show()

	application.Run()
}
