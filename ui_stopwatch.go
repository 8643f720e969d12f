package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/jimmitjoo/hogby-pace/internal/pacing"
	"github.com/jimmitjoo/hogby-pace/internal/services/export"
	"github.com/jimmitjoo/hogby-pace/internal/stopwatch"
)

const stopwatchTicker = "stopwatch"

type stopwatchTab struct {
	state   *AppState
	window  fyne.Window
	content fyne.CanvasObject

	clock     *canvas.Text
	lapClock  *canvas.Text
	delta     *canvas.Text
	predicted *widget.Label
	lapTarget *widget.Label

	toggleButton *widget.Button
	lapButton    *widget.Button
	resetButton  *widget.Button
	lapList      *widget.List
	laps         []pacing.Lap
}

func newStopwatchTab(state *AppState, window fyne.Window) *stopwatchTab {
	t := &stopwatchTab{
		state:     state,
		window:    window,
		clock:     newClockText(64),
		lapClock:  newClockText(28),
		delta:     newClockText(28),
		predicted: widget.NewLabel(""),
		lapTarget: widget.NewLabel(""),
	}

	target := state.stopwatch.Target()
	raceEntry := widget.NewEntry()
	raceEntry.SetPlaceHolder("Loppdistans (m)")
	raceEntry.SetText(formatNumber(target.RaceDistance))
	timeEntry := widget.NewEntry()
	timeEntry.SetPlaceHolder("Måltid")
	timeEntry.SetText(pacing.FormatDuration(target.TargetTotal, false))
	lapEntry := widget.NewEntry()
	lapEntry.SetPlaceHolder("Varvlängd (m)")
	lapEntry.SetText(formatNumber(target.LapDistance))

	onTargetChanged := func(string) {
		state.stopwatch.SetTarget(stopwatch.Target{
			RaceDistance: pacing.ParseField(raceEntry.Text).Value(),
			TargetTotal:  pacing.ParseDuration(timeEntry.Text),
			LapDistance:  pacing.ParseField(lapEntry.Text).Value(),
		})
		t.refresh()
	}
	raceEntry.OnChanged = onTargetChanged
	timeEntry.OnChanged = onTargetChanged
	lapEntry.OnChanged = onTargetChanged

	t.toggleButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), t.toggle)
	t.toggleButton.Importance = widget.SuccessImportance
	t.lapButton = widget.NewButtonWithIcon("Varv", theme.MediaSkipNextIcon(), t.recordLap)
	t.lapButton.Importance = widget.HighImportance
	t.resetButton = widget.NewButtonWithIcon("Nollställ", theme.MediaReplayIcon(), t.reset)
	exportButton := widget.NewButtonWithIcon("Exportera", theme.DocumentSaveIcon(), func() {
		exportSheet(state, window, "Exportera varv", func() export.Sheet {
			return export.LapSheet(state.stopwatch.Snapshot())
		})
	})

	t.lapList = widget.NewList(
		func() int {
			return len(t.laps)
		},
		func() fyne.CanvasObject {
			delta := canvas.NewText("", theme.ForegroundColor())
			delta.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
			return container.NewGridWithColumns(4,
				widget.NewLabel(""),
				widget.NewLabel(""),
				widget.NewLabel(""),
				delta,
			)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			row := item.(*fyne.Container)
			lap := t.laps[id]
			row.Objects[0].(*widget.Label).SetText(fmt.Sprintf("Varv %d", lap.Number))
			row.Objects[1].(*widget.Label).SetText(pacing.FormatDuration(lap.Duration, true))
			row.Objects[2].(*widget.Label).SetText(pacing.FormatSignedDelta(lap.LapDelta))
			setDelta(row.Objects[3].(*canvas.Text), lap.CumulativeDelta)
		},
	)

	form := widget.NewForm(
		widget.NewFormItem("Loppdistans (m)", raceEntry),
		widget.NewFormItem("Måltid", timeEntry),
		widget.NewFormItem("Varvlängd (m)", lapEntry),
	)

	stats := container.NewGridWithColumns(2,
		widget.NewCard("Aktuellt varv", "", t.lapClock),
		widget.NewCard("Delta vid senaste varv", "", t.delta),
	)

	top := container.NewVBox(
		form,
		t.clock,
		stats,
		container.NewGridWithColumns(2, t.lapTarget, t.predicted),
		container.NewGridWithColumns(4, t.toggleButton, t.lapButton, t.resetButton, exportButton),
		widget.NewSeparator(),
	)
	t.content = container.NewBorder(top, nil, nil, nil, t.lapList)

	t.refresh()
	return t
}

// refresh redraws the clocks and the buttons from the session.
func (t *stopwatchTab) refresh() {
	sw := t.state.stopwatch
	running := sw.Running()

	setClock(t.clock, sw.Elapsed())
	setClock(t.lapClock, sw.CurrentLap())
	setDelta(t.delta, sw.LastSplitDelta())
	t.predicted.SetText("Beräknad sluttid: " + pacing.FormatDuration(sw.PredictedFinish(), true))
	t.lapTarget.SetText("Mål per varv: " + pacing.FormatDuration(sw.Target().LapTarget(), true))

	if running {
		t.toggleButton.SetText("Stopp")
		t.toggleButton.SetIcon(theme.MediaPauseIcon())
		t.toggleButton.Importance = widget.DangerImportance
		t.lapButton.Enable()
		t.resetButton.Disable()
	} else {
		t.toggleButton.SetText("Start")
		t.toggleButton.SetIcon(theme.MediaPlayIcon())
		t.toggleButton.Importance = widget.SuccessImportance
		t.lapButton.Disable()
		t.resetButton.Enable()
	}
	t.toggleButton.Refresh()
}

// tick is called by the ticker goroutine while the watch runs.
func (t *stopwatchTab) tick() {
	sw := t.state.stopwatch
	setClock(t.clock, sw.Tick())
	setClock(t.lapClock, sw.CurrentLap())
}

func (t *stopwatchTab) toggle() {
	if t.state.stopwatch.Toggle() {
		if err := t.state.StartTicker(stopwatchTicker, t.tick); err != nil {
			dialog.ShowError(err, t.window)
		}
	} else {
		t.state.StopTicker(stopwatchTicker)
	}
	t.refresh()
}

func (t *stopwatchTab) recordLap() {
	if _, err := t.state.stopwatch.RecordLap(); err != nil {
		return
	}
	t.laps = t.state.stopwatch.Laps()
	t.lapList.Refresh()
	t.refresh()
}

func (t *stopwatchTab) reset() {
	if err := t.state.stopwatch.Reset(); err != nil {
		dialog.ShowError(err, t.window)
		return
	}
	t.laps = nil
	t.lapList.Refresh()
	t.refresh()
}
