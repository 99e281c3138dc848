package gui

//go:generate mockgen -package=mocks -destination=mocks/mock_view.go github.com/KirkDiggler/balanced-dice/internal/handlers/gui View

import "image"

// View is what the controller drives on screen
type View interface {
	// ShowChart replaces the chart image
	ShowChart(img image.Image)

	// ClearChart erases the chart image
	ClearChart()

	// SetFrequencies replaces the frequency listing
	SetFrequencies(text string)

	// AppendFrequencies adds to the end of the frequency listing
	AppendFrequencies(text string)

	// SetOverlay checks or unchecks the overlay option
	SetOverlay(checked bool)

	// ShowWarning reports rejected input
	ShowWarning(title, message string)

	// ShowError reports an unexpected failure
	ShowError(err error)

	// ShowInfo shows an informational message
	ShowInfo(title, message string)
}
