package ui

import (
	"sort"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/svarj/WeatherMe/internal/config"
	"github.com/svarj/WeatherMe/internal/display"
	"github.com/svarj/WeatherMe/internal/lookup"
	"github.com/svarj/WeatherMe/internal/model"
	"github.com/svarj/WeatherMe/internal/observability"
)

// WeatherView is the single weather screen
type WeatherView struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	lookupSvc    lookup.Looker
	logger       *zap.Logger
	mobileUI     *MobileUI
	now          func() time.Time

	// Weather card
	cityLabel        *widget.Label
	detailsLabel     *widget.Label
	temperatureLabel *widget.Label
	updatedLabel     *widget.Label
	iconText         *canvas.Text
	toggleBtn        *widget.Button

	// City row
	cityEntry  *widget.Entry
	searchBtn  *widget.Button
	refreshBtn *widget.Button
	menuBtn    *widget.Button
	cityDialog *CityDialog
	refresher  *PullToRefresh

	// Notice panel under the city row
	noticeContainer *fyne.Container
	noticeLabel     *widget.Label
	noticeSpinner   *widget.ProgressBarInfinite
	noticeToken     uint64

	// Owned by the UI goroutine
	state      model.DisplayState
	lastRecord *model.WeatherRecord
}

// NewWeatherView builds the screen, wires the lookup callback and starts
// a lookup for the stored city
func NewWeatherView(window fyne.Window, app fyne.App, lookupSvc lookup.Looker, logger *zap.Logger) *WeatherView {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	v := &WeatherView{
		window:       window,
		settings:     settings,
		localization: localization,
		lookupSvc:    lookupSvc,
		logger:       observability.OrNop(logger).Named("ui"),
		mobileUI:     NewMobileUI(app),
		now:          time.Now,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	v.lookupSvc.SetUpdateCallback(v.onLookupResult)

	v.setupUI()
	v.startLookup(settings.GetCity())
	return v
}

// setupUI creates and arranges all UI components
func (v *WeatherView) setupUI() {
	v.createMenu()

	v.cityEntry = v.mobileUI.CreateMobileEntry(v.localization.GetText(KeyCityPlaceholder))
	v.cityEntry.SetText(v.settings.GetCity())
	v.cityEntry.OnSubmitted = func(string) {
		v.onSearchClick()
	}

	v.searchBtn = v.mobileUI.CreateMobileButton(IconSearch, v.onSearchClick)
	v.searchBtn.Importance = widget.HighImportance

	v.menuBtn = v.mobileUI.CreateMobileButton(IconMenu, v.onShowCityDialog)
	v.menuBtn.Importance = widget.LowImportance

	logoImage := canvas.NewImageFromResource(LoadLogoResource())
	logoImage.SetMinSize(fyne.NewSize(32, 32))
	logoImage.FillMode = canvas.ImageFillContain
	left := container.NewHBox(logoImage, v.menuBtn)
	v.refreshBtn = v.mobileUI.CreateMobileButton(IconRefresh, v.onRefresh)
	v.refreshBtn.Importance = widget.LowImportance

	cityRow := container.NewBorder(nil, nil, left, container.NewHBox(v.searchBtn, v.refreshBtn), v.cityEntry)

	v.noticeLabel = widget.NewLabel("")
	v.noticeLabel.Alignment = fyne.TextAlignLeading
	v.noticeSpinner = widget.NewProgressBarInfinite()
	v.noticeSpinner.Hide()
	v.noticeContainer = container.NewHBox(v.noticeSpinner, container.NewPadded(v.noticeLabel))
	v.noticeContainer.Hide()

	v.cityLabel = widget.NewLabel("")
	v.cityLabel.Alignment = fyne.TextAlignCenter
	v.cityLabel.TextStyle = fyne.TextStyle{Bold: true}
	v.cityLabel.SizeName = theme.SizeNameSubHeadingText

	v.iconText = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	v.iconText.TextSize = WeatherIconTextSize
	v.iconText.Alignment = fyne.TextAlignCenter

	v.detailsLabel = widget.NewLabel("")
	v.detailsLabel.Alignment = fyne.TextAlignCenter
	v.detailsLabel.Wrapping = fyne.TextWrapWord

	v.temperatureLabel = widget.NewLabel("")
	v.temperatureLabel.Alignment = fyne.TextAlignCenter
	v.temperatureLabel.SizeName = theme.SizeNameHeadingText

	v.toggleBtn = v.mobileUI.CreateMobileButton(v.localization.GetText(KeyToggleFahrenheit), v.onToggleUnit)
	v.toggleBtn.Disable()

	v.updatedLabel = widget.NewLabel("")
	v.updatedLabel.Alignment = fyne.TextAlignCenter

	card := container.NewVBox(
		v.cityLabel,
		v.mobileUI.CreateOrientationAwareContainer(v.iconText, v.detailsLabel),
		container.NewCenter(container.NewHBox(
			v.temperatureLabel,
			container.NewGridWrap(fyne.NewSize(MobileButtonWidth, MinTouchTargetSize), v.toggleBtn),
		)),
		v.updatedLabel,
	)
	pad := v.mobileUI.GetMobilePadding()
	padded := container.New(layout.NewCustomPaddedLayout(pad, pad, pad, pad), card)
	v.refresher = NewPullToRefresh(container.NewVScroll(padded), v.onRefresh)

	content := container.NewBorder(
		container.NewVBox(cityRow, v.noticeContainer), // top
		nil, // bottom
		nil, // left
		nil, // right
		v.refresher,
	)

	v.window.SetContent(content)
}

// createMenu creates the application menu
func (v *WeatherView) createMenu() {
	changeCityItem := fyne.NewMenuItem(v.localization.GetText(KeyChangeCity), v.onShowCityDialog)
	refreshItem := fyne.NewMenuItem(v.localization.GetText(KeyRefresh), v.onRefresh)

	options := v.settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	languageMenu := fyne.NewMenu(v.localization.GetText(KeyLanguage))
	current := v.settings.GetLanguage()
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(options[code], func() {
			v.onLanguageChange(langCode)
		})
		langItem.Checked = current == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	v.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(v.localization.GetText(KeyCity), changeCityItem, refreshItem),
		languageMenu,
	))
}

// onLanguageChange switches the UI language and re-renders the last record
func (v *WeatherView) onLanguageChange(langCode string) {
	v.localization.SetLanguage(langCode)
	v.settings.SetLanguage(langCode)
	v.logger.Info("language changed",
		zap.String("selected", langCode),
		zap.String("language", v.localization.GetCurrentLanguage()))

	v.refreshUITexts()
	v.createMenu()
}

// refreshUITexts updates all UI texts with the current language
func (v *WeatherView) refreshUITexts() {
	v.window.SetTitle(v.localization.GetText(KeyAppTitle))
	v.cityEntry.SetPlaceHolder(v.localization.GetText(KeyCityPlaceholder))
	v.updateToggleText()
	v.cityDialog = nil

	if v.lastRecord == nil {
		return
	}
	fields, ok := display.Render(v.lastRecord, v.now(), v.localization.Labels())
	if !ok {
		return
	}
	v.detailsLabel.SetText(fields.Details)
	v.updatedLabel.SetText(fields.Updated)
}

// onSearchClick looks up the city typed into the entry
func (v *WeatherView) onSearchClick() {
	city := strings.TrimSpace(v.cityEntry.Text)
	if city == "" {
		v.showNotice(v.localization.GetText(KeyPleaseEnterCity), false)
		return
	}
	v.changeCity(city)
}

// onShowCityDialog opens the change-city dialog
func (v *WeatherView) onShowCityDialog() {
	if v.cityDialog == nil {
		v.cityDialog = NewCityDialog(v.window, v.settings, v.localization, v.changeCity)
	}
	v.cityDialog.Show()
}

// changeCity stores city and looks it up
func (v *WeatherView) changeCity(city string) {
	v.settings.SetCity(city)
	v.cityEntry.SetText(city)
	v.startLookup(city)
}

// onRefresh repeats the lookup for the stored city
func (v *WeatherView) onRefresh() {
	v.startLookup(v.settings.GetCity())
}

// startLookup asks the lookup service for city and shows the loading notice
func (v *WeatherView) startLookup(city string) {
	v.showNotice(v.localization.GetText(KeyLoading), true)
	id := v.lookupSvc.Lookup(city)
	v.logger.Debug("lookup requested", zap.String("lookup_id", id), zap.String("city", city))
}

// onLookupResult receives finished lookups on the worker goroutine
func (v *WeatherView) onLookupResult(result *model.LookupResult) {
	fyne.Do(func() {
		v.applyResult(result)
	})
}

// applyResult writes a lookup result to the screen. Runs on the UI goroutine.
func (v *WeatherView) applyResult(result *model.LookupResult) {
	if !result.Found() {
		v.logger.Info("place not found",
			zap.String("lookup_id", result.ID),
			zap.String("city", result.City),
			zap.Error(result.Err),
		)
		v.showNotice(v.localization.GetText(KeyPlaceNotFound), false)
		return
	}

	fields, ok := display.Render(result.Record, v.now(), v.localization.Labels())
	if !ok {
		return
	}

	v.lastRecord = result.Record
	v.state = fields.State

	v.cityLabel.SetText(fields.City)
	v.detailsLabel.SetText(fields.Details)
	v.temperatureLabel.SetText(fields.Temperature)
	v.updatedLabel.SetText(fields.Updated)
	v.iconText.Text = string(fields.Icon)
	v.iconText.Refresh()

	v.updateToggleText()
	v.toggleBtn.Enable()
	v.hideNotice()

	v.logger.Debug("weather rendered",
		zap.String("lookup_id", result.ID),
		zap.String("city", fields.City),
		zap.String("icon", fields.Icon.Name()),
	)
}

// onToggleUnit flips the temperature between Celsius and Fahrenheit
func (v *WeatherView) onToggleUnit() {
	if v.lastRecord == nil {
		return
	}

	v.state.Toggle()
	v.temperatureLabel.SetText(display.FormatTemperature(v.state))
	v.updateToggleText()

	observability.TemperatureTogglesTotal.WithLabelValues(v.state.Unit.String()).Inc()
}

// updateToggleText labels the toggle with the unit it switches to
func (v *WeatherView) updateToggleText() {
	if v.state.Unit == model.UnitFahrenheit {
		v.toggleBtn.SetText(v.localization.GetText(KeyToggleCelsius))
		return
	}
	v.toggleBtn.SetText(v.localization.GetText(KeyToggleFahrenheit))
}

// showNotice displays message in the notice panel. Messages without the
// spinner hide themselves after NoticeAutoHide unless replaced.
func (v *WeatherView) showNotice(message string, spinning bool) {
	v.noticeToken++
	token := v.noticeToken

	v.noticeLabel.SetText(message)
	if spinning {
		v.noticeSpinner.Show()
	} else {
		v.noticeSpinner.Hide()
	}
	v.noticeContainer.Show()
	v.noticeContainer.Refresh()

	if spinning {
		return
	}
	go func() {
		time.Sleep(NoticeAutoHide)
		fyne.Do(func() {
			if v.noticeToken == token {
				v.hideNotice()
			}
		})
	}()
}

// hideNotice hides the notice panel
func (v *WeatherView) hideNotice() {
	v.noticeSpinner.Hide()
	v.noticeContainer.Hide()
}
