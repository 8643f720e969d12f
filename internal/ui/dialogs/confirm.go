package dialogs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// ConfirmReset asks before throwing away timing data.
func ConfirmReset(window fyne.Window, message string, onConfirm func()) {
	dialog.ShowConfirm("Nollställ", message, func(ok bool) {
		if ok {
			onConfirm()
		}
	}, window)
}
