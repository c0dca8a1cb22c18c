package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/svarj/WeatherMe/internal/config"
)

// CityDialog asks the user for a new city
type CityDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSubmit     func(city string)

	// UI components
	cityEntry *widget.Entry
	hintLabel *widget.Label
}

// NewCityDialog creates a new change-city dialog
func NewCityDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSubmit func(city string)) *CityDialog {
	cd := &CityDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSubmit:     onSubmit,
	}

	cd.createUI()
	return cd
}

// Show displays the dialog prefilled with the stored city
func (cd *CityDialog) Show() {
	cd.cityEntry.SetText(cd.settings.GetCity())
	cd.hintLabel.Hide()
	cd.dialog.Show()
	cd.window.Canvas().Focus(cd.cityEntry)
}

// createUI creates the dialog UI
func (cd *CityDialog) createUI() {
	cd.cityEntry = widget.NewEntry()
	cd.cityEntry.SetPlaceHolder(cd.localization.GetText(KeyCityPlaceholder))
	cd.cityEntry.OnSubmitted = func(string) {
		cd.dialog.Hide()
		cd.submit(true)
	}

	cd.hintLabel = widget.NewLabel(cd.localization.GetText(KeyPleaseEnterCity))
	cd.hintLabel.Hide()

	form := container.NewVBox(
		widget.NewLabel(cd.localization.GetText(KeyCity)+":"),
		cd.cityEntry,
		cd.hintLabel,
	)

	cd.dialog = dialog.NewCustomConfirm(
		cd.localization.GetText(KeyChangeCity),
		cd.localization.GetText(KeySearch),
		cd.localization.GetText(KeyCancel),
		form,
		cd.submit,
		cd.window,
	)

	cd.dialog.Resize(fyne.NewSize(360, 200))
}

// submit hands a non-blank city to onSubmit
func (cd *CityDialog) submit(confirmed bool) {
	if !confirmed {
		return
	}

	city := strings.TrimSpace(cd.cityEntry.Text)
	if city == "" {
		cd.hintLabel.Show()
		cd.dialog.Show()
		return
	}

	if cd.onSubmit != nil {
		cd.onSubmit(city)
	}
}
