// Package ui implements the RenoQuote form interface: room and price entry,
// estimate display, and document export.
package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/piwi3910/RenoQuote/internal/export"
	"github.com/piwi3910/RenoQuote/internal/importer"
	"github.com/piwi3910/RenoQuote/internal/model"
	"github.com/piwi3910/RenoQuote/internal/project"
)

const reportPlaceholder = "No estimate yet. Enter room dimensions and click Calculate."

// App holds all application state and UI references.
type App struct {
	window fyne.Window

	room    model.RoomMeasurement
	prices  model.PriceCatalog
	presets []model.CatalogPreset

	// Result of the last calculation; nil until Calculate is pressed.
	estimate *model.Estimate

	// UI references for dynamic updates
	tabs         *container.AppTabs
	reportLabel  *widget.Label
	presetSelect *widget.Select
}

// NewApp creates the application state, seeding prices from the saved app
// config and loading any stored catalog presets.
func NewApp(window fyne.Window) *App {
	a := &App{
		window: window,
		prices: model.DefaultCatalog(),
	}

	if path, err := project.DefaultConfigPath(); err == nil {
		if cfg, err := project.LoadAppConfig(path); err == nil {
			a.prices = cfg.Catalog()
		} else {
			log.Warn().Err(err).Msg("failed to load app config, using defaults")
		}
	}

	if path, err := project.DefaultPresetsPath(); err == nil {
		if presets, err := project.LoadPresets(path); err == nil {
			a.presets = presets
		} else {
			log.Warn().Err(err).Msg("failed to load catalog presets")
		}
	}

	return a
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Estimate", func() {
			a.newEstimate()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Price Book...", func() {
			a.importPriceBook()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF...", func() {
			a.exportPDF()
		}),
		fyne.NewMenuItem("Export Excel...", func() {
			a.exportExcel()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About RenoQuote",
		"RenoQuote — Interior Renovation Estimator\n\n"+
			"Calculates line-itemized renovation costs from room\n"+
			"dimensions and unit prices, with PDF and Excel export.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	roomTab := container.NewTabItem("Room", a.buildRoomPanel())
	pricesTab := container.NewTabItem("Prices", a.buildPricesPanel())
	estimateTab := container.NewTabItem("Estimate", a.buildEstimatePanel())

	a.tabs = container.NewAppTabs(roomTab, pricesTab, estimateTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	return a.tabs
}

// floatEntry creates an entry bound to a float field. Invalid text leaves the
// previous value in place; range checks happen at calculation time.
func floatEntry(val *float64) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(strconv.FormatFloat(*val, 'f', -1, 64))
	e.OnChanged = func(text string) {
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			*val = v
		}
	}
	return e
}

// ─── Room Panel ────────────────────────────────────────────

func (a *App) buildRoomPanel() fyne.CanvasObject {
	dims := widget.NewCard("Room Dimensions", "", container.NewGridWithColumns(2,
		widget.NewLabel("Length (m)"), floatEntry(&a.room.Length),
		widget.NewLabel("Width (m)"), floatEntry(&a.room.Width),
		widget.NewLabel("Height (m)"), floatEntry(&a.room.Height),
		widget.NewLabel("Openings: doors & windows (m²)"), floatEntry(&a.room.OpeningsArea),
	))

	calcBtn := widget.NewButtonWithIcon("Calculate Estimate", theme.ConfirmIcon(), func() {
		a.calculate()
	})

	return container.NewVBox(
		dims,
		container.NewHBox(layout.NewSpacer(), calcBtn),
	)
}

// ─── Prices Panel ──────────────────────────────────────────

func (a *App) buildPricesPanel() fyne.CanvasObject {
	// Labor is edited as a percentage, stored as a fraction.
	laborPercent := a.prices.LaborRate * 100
	laborEntry := widget.NewEntry()
	laborEntry.SetText(strconv.FormatFloat(laborPercent, 'f', -1, 64))
	laborEntry.OnChanged = func(text string) {
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			a.prices.LaborRate = v / 100
		}
	}

	priceCard := widget.NewCard("Unit Prices", "", container.NewGridWithColumns(2,
		widget.NewLabel("Wall covering (per m²)"), floatEntry(&a.prices.WallCovering),
		widget.NewLabel("Flooring (per m²)"), floatEntry(&a.prices.Floor),
		widget.NewLabel("Baseboard (per m)"), floatEntry(&a.prices.Baseboard),
		widget.NewLabel("Disposal (per m² floor)"), floatEntry(&a.prices.Disposal),
		widget.NewLabel("Labor rate (%)"), laborEntry,
	))

	a.presetSelect = widget.NewSelect(a.presetNames(), func(selected string) {
		for _, p := range a.presets {
			if p.Name == selected {
				a.applyPreset(p)
				return
			}
		}
	})
	a.presetSelect.PlaceHolder = "Select a price book..."

	savePresetBtn := widget.NewButtonWithIcon("Save as Preset...", theme.DocumentSaveIcon(), func() {
		a.showSavePresetDialog()
	})
	saveDefaultsBtn := widget.NewButtonWithIcon("Save as Defaults", theme.SettingsIcon(), func() {
		a.saveDefaults()
	})

	presetCard := widget.NewCard("Price Books", "", container.NewVBox(
		a.presetSelect,
		container.NewHBox(savePresetBtn, layout.NewSpacer(), saveDefaultsBtn),
	))

	return container.NewVBox(priceCard, presetCard)
}

func (a *App) presetNames() []string {
	names := make([]string, len(a.presets))
	for i, p := range a.presets {
		names[i] = p.Name
	}
	return names
}

// applyPreset copies preset prices into the working catalog and rebuilds the
// prices tab so the entries show the new values.
func (a *App) applyPreset(p model.CatalogPreset) {
	a.prices = p.Prices
	a.tabs.Items[1].Content = a.buildPricesPanel()
	a.tabs.Refresh()
}

func (a *App) showSavePresetDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("e.g. Premium vinyl")

	form := dialog.NewForm("Save Price Preset", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			name := strings.TrimSpace(nameEntry.Text)
			if name == "" {
				dialog.ShowError(fmt.Errorf("preset name must not be empty"), a.window)
				return
			}
			if err := a.prices.Validate(); err != nil {
				dialog.ShowError(err, a.window)
				return
			}

			a.presets = append(a.presets, model.NewCatalogPreset(name, a.prices))
			a.presetSelect.Options = a.presetNames()
			a.presetSelect.Refresh()

			if path, err := project.DefaultPresetsPath(); err == nil {
				if err := project.SavePresets(path, a.presets); err != nil {
					log.Error().Err(err).Msg("failed to save catalog presets")
					dialog.ShowError(err, a.window)
				}
			}
		},
		a.window,
	)
	form.Resize(fyne.NewSize(380, 160))
	form.Show()
}

// saveDefaults stores the current prices as the startup defaults.
func (a *App) saveDefaults() {
	if err := a.prices.Validate(); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	path, err := project.DefaultConfigPath()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	cfg, err := project.LoadAppConfig(path)
	if err != nil {
		cfg = model.DefaultAppConfig()
	}
	cfg.SetCatalog(a.prices)
	if err := project.SaveAppConfig(path, cfg); err != nil {
		log.Error().Err(err).Msg("failed to save app config")
		dialog.ShowError(err, a.window)
		return
	}
	dialog.ShowInformation("Defaults Saved", "Current prices will be used for new estimates.", a.window)
}

// ─── Estimate Panel ────────────────────────────────────────

func (a *App) buildEstimatePanel() fyne.CanvasObject {
	a.reportLabel = widget.NewLabelWithStyle(
		reportPlaceholder,
		fyne.TextAlignLeading,
		fyne.TextStyle{Monospace: true},
	)

	pdfBtn := widget.NewButtonWithIcon("Export PDF...", theme.DocumentIcon(), func() {
		a.exportPDF()
	})
	excelBtn := widget.NewButtonWithIcon("Export Excel...", theme.FileIcon(), func() {
		a.exportExcel()
	})

	return container.NewBorder(
		nil,
		container.NewHBox(layout.NewSpacer(), excelBtn, pdfBtn),
		nil, nil,
		container.NewVScroll(a.reportLabel),
	)
}

// ─── Actions ───────────────────────────────────────────────

// newEstimate clears the room and last result. The Room panel is rebuilt so
// the entry widgets show the reset dimensions, not their previous text.
func (a *App) newEstimate() {
	a.room = model.RoomMeasurement{}
	a.estimate = nil
	a.reportLabel.SetText(reportPlaceholder)
	a.tabs.Items[0].Content = a.buildRoomPanel()
	a.tabs.Refresh()
	a.tabs.SelectIndex(0)
}

// calculate validates the inputs, builds a fresh estimate, and shows the
// text report. Invalid inputs surface as a dialog before any calculation.
func (a *App) calculate() {
	if err := a.room.Validate(); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	if err := a.prices.Validate(); err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	est := model.CreateEstimate(a.room, a.prices)
	a.estimate = &est
	a.reportLabel.SetText(export.RenderText(est))
	a.tabs.SelectIndex(2)
}

func (a *App) exportPDF() {
	if a.estimate == nil {
		dialog.ShowInformation("No estimate", "Calculate an estimate before exporting.", a.window)
		return
	}

	data, err := export.RenderPDF(*a.estimate)
	if err != nil {
		if errors.Is(err, export.ErrRenderingUnavailable) {
			dialog.ShowInformation("PDF Unavailable",
				"Document rendering is not available in this build.\nUse the text report instead.", a.window)
			return
		}
		log.Error().Err(err).Msg("PDF export failed")
		dialog.ShowError(err, a.window)
		return
	}

	a.saveBytes(data, "estimate.pdf")
}

func (a *App) exportExcel() {
	if a.estimate == nil {
		dialog.ShowInformation("No estimate", "Calculate an estimate before exporting.", a.window)
		return
	}

	data, err := export.RenderExcel(*a.estimate)
	if err != nil {
		log.Error().Err(err).Msg("Excel export failed")
		dialog.ShowError(err, a.window)
		return
	}

	a.saveBytes(data, "estimate.xlsx")
}

// saveBytes writes already-rendered document bytes to a user-chosen location.
// The document is fully in memory; nothing is staged on disk first.
func (a *App) saveBytes(data []byte, defaultName string) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if _, err := writer.Write(data); err != nil {
			log.Error().Err(err).Str("file", defaultName).Msg("failed to write export")
			dialog.ShowError(err, a.window)
			return
		}
		log.Info().Str("file", writer.URI().Path()).Int("bytes", len(data)).Msg("export saved")
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Saved to %s", writer.URI().Path()), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

func (a *App) importPriceBook() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		path := reader.URI().Path()
		var result importer.ImportResult
		if strings.EqualFold(filepath.Ext(path), ".xlsx") {
			result = importer.ImportExcel(path)
		} else {
			result = importer.ImportCSV(path)
		}
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) handleImportResult(result importer.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}
	if len(result.Warnings) > 0 {
		log.Warn().Strs("warnings", result.Warnings).Msg("price book import warnings")
	}
	if len(result.Presets) == 0 {
		return
	}

	a.presets = append(a.presets, result.Presets...)
	a.presetSelect.Options = a.presetNames()
	a.presetSelect.Refresh()

	if path, err := project.DefaultPresetsPath(); err == nil {
		if err := project.SavePresets(path, a.presets); err != nil {
			log.Error().Err(err).Msg("failed to save imported presets")
		}
	}

	log.Info().Int("presets", len(result.Presets)).Msg("price book imported")
	dialog.ShowInformation("Import Complete",
		fmt.Sprintf("Imported %d price book(s).", len(result.Presets)), a.window)
}
