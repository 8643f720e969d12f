package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/jimmitjoo/hogby-pace/internal/pacing"
	"github.com/jimmitjoo/hogby-pace/internal/services/export"
)

// newCalculatorTab builds the split calculator. The table follows the
// inputs as they are typed.
func newCalculatorTab(state *AppState, window fyne.Window) fyne.CanvasObject {
	rc := state.cfg.Race

	distanceEntry := widget.NewEntry()
	distanceEntry.SetPlaceHolder("Distans")
	distanceEntry.SetText(formatNumber(rc.Distance))

	unitSelect := widget.NewSelect([]string{pacing.Meters, pacing.Kilometers, pacing.Miles}, nil)
	unitSelect.SetSelected(rc.Unit)

	timeEntry := widget.NewEntry()
	timeEntry.SetPlaceHolder("Måltid (H:MM:SS eller MM:SS)")
	timeEntry.SetText(rc.TargetTime)

	intervalEntry := widget.NewEntry()
	intervalEntry.SetPlaceHolder("Mellantid var (m)")
	intervalEntry.SetText(formatNumber(rc.SplitInterval))

	paceLabel := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	var (
		distance float64
		target   float64
		splits   []pacing.Checkpoint
	)

	table := widget.NewTable(
		func() (int, int) {
			return len(splits) + 1, 3
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			label := cell.(*widget.Label)
			if id.Row == 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				switch id.Col {
				case 0:
					label.SetText("Distans")
				case 1:
					label.SetText("Total tid")
				case 2:
					label.SetText("Mellantid")
				}
				return
			}
			label.TextStyle = fyne.TextStyle{Monospace: true}
			c := splits[id.Row-1]
			switch id.Col {
			case 0:
				label.SetText(formatNumber(c.Distance) + " m")
			case 1:
				label.SetText(pacing.FormatDuration(c.Cumulative, true))
			case 2:
				label.SetText(pacing.FormatDuration(c.Incremental, true))
			}
		})
	table.SetColumnWidth(0, 150)
	table.SetColumnWidth(1, 150)
	table.SetColumnWidth(2, 150)

	recalculate := func() {
		distance = pacing.ToMeters(pacing.ParseField(distanceEntry.Text).Value(), unitSelect.Selected)
		target = pacing.ParseDuration(timeEntry.Text)
		splits = pacing.GenerateSplits(distance, target, pacing.ParseField(intervalEntry.Text).Value())
		paceLabel.SetText("Tempo: " + pacing.FormatPacePerKm(distance, target) + " /km")
		table.Refresh()
	}

	onChanged := func(string) { recalculate() }
	distanceEntry.OnChanged = onChanged
	unitSelect.OnChanged = onChanged
	timeEntry.OnChanged = onChanged
	intervalEntry.OnChanged = onChanged
	recalculate()

	exportButton := widget.NewButtonWithIcon("Exportera", theme.DocumentSaveIcon(), func() {
		exportSheet(state, window, "Exportera mellantider", func() export.Sheet {
			return export.SplitSheet(distance, target, splits)
		})
	})

	form := widget.NewForm(
		widget.NewFormItem("Distans", container.NewBorder(nil, nil, nil, unitSelect, distanceEntry)),
		widget.NewFormItem("Måltid", timeEntry),
		widget.NewFormItem("Mellantid var (m)", intervalEntry),
	)

	top := container.NewVBox(
		form,
		container.NewBorder(nil, nil, nil, exportButton, paceLabel),
		widget.NewSeparator(),
	)
	return container.NewBorder(top, nil, nil, nil, table)
}
