package gui

import (
	"context"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/KirkDiggler/balanced-dice/internal/models"
)

const windowTitle = "Balanced Dice"

// Window is the fyne implementation of View
type Window struct {
	window       fyne.Window
	chart        *canvas.Image
	listing      *widget.Entry
	overlayCheck *widget.Check
}

// NewWindow lays out the simulator controls and binds them to the controller
func NewWindow(ctx context.Context, a fyne.App, controller *Controller) (*Window, error) {
	w := &Window{
		window: a.NewWindow(windowTitle),
	}
	w.window.Resize(fyne.NewSize(1000, 760))

	rollsEntry := widget.NewEntry()
	rollsEntry.SetPlaceHolder("Number of rolls")

	strategies := make([]string, 0, len(models.Strategies()))
	for _, strategy := range models.Strategies() {
		strategies = append(strategies, strategy.Title())
	}
	strategyRadio := widget.NewRadioGroup(strategies, nil)
	strategyRadio.Horizontal = true
	strategyRadio.SetSelected(models.StrategyStandard.Title())

	w.overlayCheck = widget.NewCheck("Overlay with other dice type", nil)

	w.chart = canvas.NewImageFromImage(blank())
	w.chart.FillMode = canvas.ImageFillContain
	w.chart.SetMinSize(fyne.NewSize(chartWidth, chartHeight))

	w.listing = widget.NewMultiLineEntry()
	w.listing.TextStyle = fyne.TextStyle{Monospace: true}
	w.listing.Disable()
	w.listing.SetMinRowsVisible(8)

	startButton := widget.NewButton("Start simulation", func() {
		_ = controller.Simulate(ctx, rollsEntry.Text, strategyRadio.Selected, w.overlayCheck.Checked)
	})
	clearButton := widget.NewButton("Clear graphs and frequencies", func() {
		_ = controller.Clear(ctx)
	})

	controls := container.NewVBox(
		widget.NewLabel("Number of rolls:"),
		rollsEntry,
		strategyRadio,
		w.overlayCheck,
		container.NewHBox(startButton, clearButton),
	)
	w.window.SetContent(container.NewBorder(controls, w.listing, nil, nil, w.chart))

	if err := controller.Start(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// ShowAndRun shows the window and runs the fyne event loop
func (w *Window) ShowAndRun() {
	w.window.ShowAndRun()
}

// ShowChart replaces the chart image
func (w *Window) ShowChart(img image.Image) {
	w.chart.Image = img
	w.chart.Refresh()
}

// ClearChart shows an empty canvas in place of the chart
func (w *Window) ClearChart() {
	w.ShowChart(blank())
}

// SetFrequencies replaces the frequency listing
func (w *Window) SetFrequencies(text string) {
	w.listing.SetText(text)
}

// AppendFrequencies adds to the end of the frequency listing
func (w *Window) AppendFrequencies(text string) {
	w.listing.SetText(w.listing.Text + text)
}

// SetOverlay ticks or unticks the overlay checkbox
func (w *Window) SetOverlay(checked bool) {
	w.overlayCheck.SetChecked(checked)
}

// ShowWarning opens a dialog for input the user can correct
func (w *Window) ShowWarning(title, message string) {
	dialog.ShowInformation(title, message, w.window)
}

// ShowError opens an error dialog
func (w *Window) ShowError(err error) {
	dialog.ShowError(err, w.window)
}

// ShowInfo opens an informational dialog
func (w *Window) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, w.window)
}
