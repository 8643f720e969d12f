package dialogs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/jimmitjoo/hogby-pace/internal/services/export"
)

var formatOptions = []string{string(export.CSV), string(export.JSON), string(export.YAML)}

// ShowExportDialog asks for a file format and hands it to onExport.
func ShowExportDialog(window fyne.Window, title string, defaultFormat export.Format, onExport func(export.Format)) {
	formatSelect := widget.NewSelect(formatOptions, nil)
	formatSelect.SetSelected(string(defaultFormat))

	items := []*widget.FormItem{
		{Text: "Format", Widget: formatSelect},
	}

	dialog.ShowForm(title, "Exportera", "Avbryt", items,
		func(submitted bool) {
			if !submitted {
				return
			}
			format, err := export.ParseFormat(formatSelect.Selected)
			if err != nil {
				dialog.ShowError(err, window)
				return
			}
			onExport(format)
		}, window)
}
