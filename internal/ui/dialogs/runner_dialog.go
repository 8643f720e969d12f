package dialogs

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/jimmitjoo/hogby-pace/internal/pacing"
)

// ShowRunnerDialog asks for a runner name and a lap target. The target is
// entered as seconds or M:SS; a blank or invalid target keeps defaultTarget.
func ShowRunnerDialog(window fyne.Window, defaultTarget float64, onAdd func(name string, targetLapTime float64)) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Löparens namn")

	targetEntry := widget.NewEntry()
	targetEntry.SetPlaceHolder("Måltid per varv (s eller M:SS)")
	targetEntry.SetText(pacing.FormatDuration(defaultTarget, false))

	content := container.NewVBox(
		widget.NewLabel("Namn"),
		nameEntry,
		widget.NewLabel("Mål per varv"),
		targetEntry,
	)

	d := dialog.NewCustomConfirm(
		"Lägg till löpare",
		"Lägg till",
		"Avbryt",
		content,
		func(submit bool) {
			if !submit {
				return
			}
			target := pacing.ParseDuration(targetEntry.Text)
			if target <= 0 {
				target = defaultTarget
			}
			onAdd(strings.TrimSpace(nameEntry.Text), target)
		},
		window,
	)

	d.Resize(fyne.NewSize(360, 240))
	d.Show()
	window.Canvas().Focus(nameEntry)
}
