package main

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"

	"github.com/jimmitjoo/hogby-pace/internal/pacing"
	"github.com/jimmitjoo/hogby-pace/internal/services/export"
	"github.com/jimmitjoo/hogby-pace/internal/ui/dialogs"
)

var (
	behindColor = color.NRGBA{R: 244, G: 63, B: 94, A: 255}
	aheadColor  = color.NRGBA{R: 52, G: 211, B: 153, A: 255}
)

// runWindow opens the main window and blocks until it is closed.
func runWindow(state *AppState) {
	myApp := app.NewWithID("se.hogby.pace")
	window := myApp.NewWindow("Hogby Pace")

	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon("Kalkylator", theme.ListIcon(), newCalculatorTab(state, window)),
		container.NewTabItemWithIcon("Stoppur", theme.HistoryIcon(), newStopwatchTab(state, window).content),
		container.NewTabItemWithIcon("Flera löpare", theme.AccountIcon(), newRaceTab(state, window).content),
	)

	window.SetContent(tabs)
	window.Resize(fyne.NewSize(900, 700))
	window.SetOnClosed(state.StopAll)
	window.ShowAndRun()
}

// newClockText returns a large monospaced time display.
func newClockText(size float32) *canvas.Text {
	t := canvas.NewText(pacing.FormatDuration(0, true), theme.ForegroundColor())
	t.TextSize = size
	t.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	t.Alignment = fyne.TextAlignCenter
	return t
}

// setDelta shows a signed delta, red when behind and green when ahead.
func setDelta(t *canvas.Text, seconds float64) {
	t.Text = pacing.FormatSignedDelta(seconds)
	switch {
	case seconds > 0:
		t.Color = behindColor
	case seconds < 0:
		t.Color = aheadColor
	default:
		t.Color = theme.ForegroundColor()
	}
	t.Refresh()
}

func setClock(t *canvas.Text, seconds float64) {
	t.Text = pacing.FormatDuration(seconds, true)
	t.Refresh()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// exportSheet asks for a format and writes the sheet built by build.
func exportSheet(state *AppState, window fyne.Window, title string, build func() export.Sheet) {
	dialogs.ShowExportDialog(window, title, export.Format(state.cfg.Export.Format), func(format export.Format) {
		path, err := state.exporter.Export(build(), format)
		if err != nil {
			state.logger.Error().Err(err).Str("title", title).Msg("export failed")
			dialog.ShowError(err, window)
			return
		}
		dialog.ShowInformation("Exporterat", "Sparade "+path, window)
	})
}
