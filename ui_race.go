package main

import (
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/jimmitjoo/hogby-pace/internal/pacing"
	"github.com/jimmitjoo/hogby-pace/internal/race"
	"github.com/jimmitjoo/hogby-pace/internal/services/export"
	"github.com/jimmitjoo/hogby-pace/internal/ui/dialogs"
)

const raceTicker = "race"

// runnerCard holds the live parts of one runner's card.
type runnerCard struct {
	id    string
	clock *canvas.Text
	delta *canvas.Text
}

type raceTab struct {
	state   *AppState
	window  fyne.Window
	content fyne.CanvasObject

	clock       *canvas.Text
	raceButton  *widget.Button
	addButton   *widget.Button
	grid        *fyne.Container
	emptyNotice *widget.Label

	mu    sync.Mutex
	cards []runnerCard
}

func newRaceTab(state *AppState, window fyne.Window) *raceTab {
	t := &raceTab{
		state:       state,
		window:      window,
		clock:       newClockText(56),
		grid:        container.NewGridWithColumns(2),
		emptyNotice: widget.NewLabelWithStyle("Lägg till löpare för att starta ett lopp.", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	}

	t.raceButton = widget.NewButtonWithIcon("Starta loppet", theme.MediaPlayIcon(), t.raceAction)
	t.addButton = widget.NewButtonWithIcon("Lägg till löpare", theme.ContentAddIcon(), func() {
		dialogs.ShowRunnerDialog(window, state.cfg.Runner.TargetLapTime, t.addRunner)
	})
	exportButton := widget.NewButtonWithIcon("Exportera", theme.DocumentSaveIcon(), func() {
		exportSheet(state, window, "Exportera resultat", func() export.Sheet {
			return export.RaceSheet(state.race.Snapshot())
		})
	})

	top := container.NewVBox(
		t.clock,
		container.NewGridWithColumns(3, t.raceButton, t.addButton, exportButton),
		widget.NewSeparator(),
	)
	t.content = container.NewBorder(top, nil, nil, nil,
		container.NewVScroll(container.NewVBox(t.emptyNotice, t.grid)))

	t.rebuild()
	return t
}

// raceAction is the single race button: start, stop or reset depending on
// where the race is.
func (t *raceTab) raceAction() {
	rs := t.state.race
	switch {
	case rs.Running():
		rs.Stop()
		t.state.StopTicker(raceTicker)
		t.rebuild()
	case rs.Elapsed() == 0:
		if err := rs.Start(); err != nil {
			dialog.ShowError(err, t.window)
			return
		}
		if err := t.state.StartTicker(raceTicker, t.tick); err != nil {
			dialog.ShowError(err, t.window)
		}
		t.rebuild()
	default:
		dialogs.ConfirmReset(t.window, "Nollställ loppet? Alla tider och varv försvinner.", func() {
			rs.Reset()
			t.rebuild()
		})
	}
}

func (t *raceTab) addRunner(name string, targetLapTime float64) {
	if _, err := t.state.race.AddRunner(name, targetLapTime); err != nil {
		if errors.Is(err, race.ErrEmptyName) {
			dialog.ShowError(errors.New("ange ett namn"), t.window)
			return
		}
		dialog.ShowError(err, t.window)
		return
	}
	t.rebuild()
}

// tick is called by the ticker goroutine while the race runs.
func (t *raceTab) tick() {
	snap := t.state.race.Snapshot()
	setClock(t.clock, snap.Elapsed)

	t.mu.Lock()
	defer t.mu.Unlock()
	for i, card := range t.cards {
		if i >= len(snap.Runners) || snap.Runners[i].ID != card.id {
			return
		}
		r := snap.Runners[i]
		setClock(card.clock, r.DisplayTime(snap.Elapsed))
		setDelta(card.delta, r.TotalDelta(snap.Elapsed))
	}
}

// rebuild recreates every runner card from a fresh snapshot.
func (t *raceTab) rebuild() {
	snap := t.state.race.Snapshot()
	editable := t.state.race.CanEditRoster()

	switch {
	case snap.Running:
		t.raceButton.SetText("Stoppa alla")
		t.raceButton.SetIcon(theme.MediaStopIcon())
		t.raceButton.Importance = widget.DangerImportance
	case snap.Elapsed == 0:
		t.raceButton.SetText("Starta loppet")
		t.raceButton.SetIcon(theme.MediaPlayIcon())
		t.raceButton.Importance = widget.SuccessImportance
	default:
		t.raceButton.SetText("Nollställ")
		t.raceButton.SetIcon(theme.MediaReplayIcon())
		t.raceButton.Importance = widget.MediumImportance
	}
	t.raceButton.Refresh()
	if editable {
		t.addButton.Enable()
	} else {
		t.addButton.Disable()
	}
	setClock(t.clock, snap.Elapsed)

	cards := make([]runnerCard, 0, len(snap.Runners))
	objects := make([]fyne.CanvasObject, 0, len(snap.Runners))
	for _, r := range snap.Runners {
		card, obj := t.newRunnerCard(r, snap.Elapsed, editable)
		cards = append(cards, card)
		objects = append(objects, obj)
	}

	t.mu.Lock()
	t.cards = cards
	t.mu.Unlock()

	t.grid.Objects = objects
	t.grid.Refresh()
	if len(snap.Runners) == 0 {
		t.emptyNotice.Show()
	} else {
		t.emptyNotice.Hide()
	}
}

func (t *raceTab) newRunnerCard(r race.Runner, master float64, editable bool) (runnerCard, fyne.CanvasObject) {
	card := runnerCard{
		id:    r.ID,
		clock: newClockText(32),
		delta: newClockText(22),
	}
	setClock(card.clock, r.DisplayTime(master))
	setDelta(card.delta, r.TotalDelta(master))

	id := r.ID
	lapButton := widget.NewButtonWithIcon(fmt.Sprintf("Varv %d", len(r.Laps)+1), theme.MediaSkipNextIcon(), func() {
		if _, err := t.state.race.RecordLap(id); err != nil {
			dialog.ShowError(err, t.window)
			return
		}
		t.rebuild()
	})
	lapButton.Importance = widget.HighImportance
	finishButton := widget.NewButton("Mål", func() {
		if err := t.state.race.FinishRunner(id); err != nil {
			dialog.ShowError(err, t.window)
			return
		}
		t.rebuild()
	})
	if r.Status != race.StatusRunning {
		lapButton.Disable()
		finishButton.Disable()
	}

	laps := newLapRows(r.Laps)

	header := container.NewGridWithColumns(2,
		container.NewVBox(widget.NewLabel("Tid"), card.clock),
		container.NewVBox(widget.NewLabel("Total delta"), card.delta),
	)
	body := container.NewVBox(
		header,
		container.NewBorder(nil, nil, nil, finishButton, lapButton),
		laps,
	)

	subtitle := fmt.Sprintf("Mål: %s / varv", pacing.FormatDuration(r.TargetLapTime, true))
	if r.Status == race.StatusFinished {
		subtitle += " · i mål"
	}
	c := widget.NewCard(r.Name, subtitle, body)

	if !editable {
		return card, c
	}
	removeButton := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		if err := t.state.race.RemoveRunner(id); err != nil {
			dialog.ShowError(err, t.window)
			return
		}
		t.rebuild()
	})
	removeButton.Importance = widget.LowImportance
	return card, container.NewBorder(nil, nil, nil, container.NewVBox(removeButton), c)
}

// newLapRows lists laps newest first with each lap's time and the runner's
// cumulative delta at that lap.
func newLapRows(laps []pacing.Lap) *fyne.Container {
	rows := container.NewVBox()
	for _, lap := range laps {
		delta := canvas.NewText("", theme.ForegroundColor())
		delta.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
		setDelta(delta, lap.CumulativeDelta)
		rows.Add(container.NewGridWithColumns(3,
			widget.NewLabel(fmt.Sprintf("V%d", lap.Number)),
			widget.NewLabel(pacing.FormatDuration(lap.Duration, true)),
			delta,
		))
	}
	return rows
}
