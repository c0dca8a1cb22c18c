package ui

import (
	"errors"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/svarj/WeatherMe/internal/config"
	"github.com/svarj/WeatherMe/internal/display"
	"github.com/svarj/WeatherMe/internal/model"
	"github.com/svarj/WeatherMe/internal/observability"
)

// fakeLooker records requested cities and lets the test deliver results
type fakeLooker struct {
	mu       sync.Mutex
	cities   []string
	onUpdate func(*model.LookupResult)
}

func (f *fakeLooker) SetUpdateCallback(cb func(*model.LookupResult)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onUpdate = cb
}

func (f *fakeLooker) Lookup(city string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cities = append(f.cities, city)
	return "lookup-test"
}

func (f *fakeLooker) Wait() {}

func (f *fakeLooker) requested() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.cities...)
}

func (f *fakeLooker) deliver(result *model.LookupResult) {
	f.mu.Lock()
	cb := f.onUpdate
	f.mu.Unlock()
	cb(result)
}

// londonNow is 2021-03-01 22:00 UTC, after the London sunset
var londonNow = time.Date(2021, 3, 1, 22, 0, 0, 0, time.UTC)

func londonRecord() *model.WeatherRecord {
	return &model.WeatherRecord{
		CityName:           "London",
		CountryCode:        "GB",
		ConditionID:        800,
		Description:        "clear sky",
		Humidity:           60,
		Pressure:           1012,
		TemperatureCelsius: 15.5,
		ObservedAt:         londonNow.Add(-time.Minute).Unix(),
		SunriseMillis:      time.Date(2021, 3, 1, 6, 50, 0, 0, time.UTC).UnixMilli(),
		SunsetMillis:       time.Date(2021, 3, 1, 17, 40, 0, 0, time.UTC).UnixMilli(),
	}
}

func newTestView(t *testing.T) (*WeatherView, *fakeLooker, fyne.App) {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)

	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	looker := &fakeLooker{}
	v := NewWeatherView(window, app, looker, nil)
	v.now = func() time.Time { return londonNow }

	return v, looker, app
}

// waitFor polls cond until it holds or the deadline passes
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestNewWeatherView_LooksUpStoredCity(t *testing.T) {
	v, looker, _ := newTestView(t)

	require.Equal(t, []string{config.DefaultCity}, looker.requested())
	if !v.toggleBtn.Disabled() {
		t.Error("Toggle should be disabled before the first record")
	}
	if v.cityEntry.Text != config.DefaultCity {
		t.Errorf("Expected entry %q, got %q", config.DefaultCity, v.cityEntry.Text)
	}
	if !v.noticeContainer.Visible() || v.noticeLabel.Text != v.localization.GetText(KeyLoading) {
		t.Errorf("Expected loading notice, got visible=%v text=%q", v.noticeContainer.Visible(), v.noticeLabel.Text)
	}
}

func TestWeatherView_RendersLondon(t *testing.T) {
	v, looker, _ := newTestView(t)

	looker.deliver(&model.LookupResult{ID: "lookup-1", City: "London,uk", Record: londonRecord()})
	waitFor(t, func() bool { return v.cityLabel.Text != "" })

	if v.cityLabel.Text != "LONDON, GB" {
		t.Errorf("Expected city 'LONDON, GB', got %q", v.cityLabel.Text)
	}
	if v.temperatureLabel.Text != "15.50ºC" {
		t.Errorf("Expected temperature '15.50ºC', got %q", v.temperatureLabel.Text)
	}
	if v.detailsLabel.Text != "CLEAR SKY\nHumidity: 60%\nPressure: 1012 hPa" {
		t.Errorf("Unexpected details %q", v.detailsLabel.Text)
	}
	if v.updatedLabel.Text != "Last update: Mar 1, 2021 9:59:00 PM" {
		t.Errorf("Unexpected updated text %q", v.updatedLabel.Text)
	}
	if v.iconText.Text != string(display.IconClearNight) {
		t.Errorf("Expected clear night icon, got %q", v.iconText.Text)
	}
	if v.toggleBtn.Disabled() {
		t.Error("Toggle should be enabled after a record")
	}
	if v.noticeContainer.Visible() {
		t.Error("Notice should be hidden after a successful lookup")
	}
}

func TestWeatherView_NotFoundLeavesFields(t *testing.T) {
	v, looker, _ := newTestView(t)

	looker.deliver(&model.LookupResult{ID: "lookup-1", City: "London,uk", Record: londonRecord()})
	waitFor(t, func() bool { return v.cityLabel.Text != "" })

	looker.deliver(&model.LookupResult{ID: "lookup-2", City: "Nowhere", Err: errors.New("city not found")})
	waitFor(t, func() bool { return v.noticeLabel.Text == "Place not found" })

	if !v.noticeContainer.Visible() {
		t.Error("Notice should be visible after a failed lookup")
	}
	if v.noticeSpinner.Visible() {
		t.Error("Spinner should be hidden on the not-found notice")
	}
	if v.cityLabel.Text != "LONDON, GB" || v.temperatureLabel.Text != "15.50ºC" {
		t.Errorf("Fields changed on failure: %q %q", v.cityLabel.Text, v.temperatureLabel.Text)
	}
}

func TestWeatherView_FailureBeforeFirstRecord(t *testing.T) {
	v, looker, _ := newTestView(t)

	looker.deliver(&model.LookupResult{ID: "lookup-1", City: "Nowhere", Err: errors.New("boom")})
	waitFor(t, func() bool { return v.noticeLabel.Text == "Place not found" })

	if v.cityLabel.Text != "" || v.temperatureLabel.Text != "" {
		t.Errorf("Expected empty fields, got %q %q", v.cityLabel.Text, v.temperatureLabel.Text)
	}
	if !v.toggleBtn.Disabled() {
		t.Error("Toggle should stay disabled without a record")
	}
}

func TestWeatherView_ToggleUnit(t *testing.T) {
	v, looker, _ := newTestView(t)

	record := londonRecord()
	record.TemperatureCelsius = 20
	looker.deliver(&model.LookupResult{ID: "lookup-1", City: "London,uk", Record: record})
	waitFor(t, func() bool { return v.temperatureLabel.Text == "20.00ºC" })

	before := testutil.ToFloat64(observability.TemperatureTogglesTotal.WithLabelValues("Fahrenheit"))

	test.Tap(v.toggleBtn)
	if v.temperatureLabel.Text != "68.00ºF" {
		t.Errorf("Expected '68.00ºF', got %q", v.temperatureLabel.Text)
	}
	if v.toggleBtn.Text != "ºC" {
		t.Errorf("Expected toggle text 'ºC', got %q", v.toggleBtn.Text)
	}

	test.Tap(v.toggleBtn)
	if v.temperatureLabel.Text != "20.00ºC" {
		t.Errorf("Expected '20.00ºC', got %q", v.temperatureLabel.Text)
	}
	if v.toggleBtn.Text != "ºF" {
		t.Errorf("Expected toggle text 'ºF', got %q", v.toggleBtn.Text)
	}

	after := testutil.ToFloat64(observability.TemperatureTogglesTotal.WithLabelValues("Fahrenheit"))
	if after-before != 1 {
		t.Errorf("Expected one toggle to Fahrenheit, got %v", after-before)
	}
}

func TestWeatherView_NewRecordResetsUnit(t *testing.T) {
	v, looker, _ := newTestView(t)

	looker.deliver(&model.LookupResult{ID: "lookup-1", City: "London,uk", Record: londonRecord()})
	waitFor(t, func() bool { return v.temperatureLabel.Text == "15.50ºC" })
	test.Tap(v.toggleBtn)

	record := londonRecord()
	record.TemperatureCelsius = 10
	looker.deliver(&model.LookupResult{ID: "lookup-2", City: "London,uk", Record: record})
	waitFor(t, func() bool { return v.temperatureLabel.Text == "10.00ºC" })

	if v.toggleBtn.Text != "ºF" {
		t.Errorf("Expected toggle text 'ºF', got %q", v.toggleBtn.Text)
	}
}

func TestWeatherView_ChangeCity(t *testing.T) {
	v, looker, app := newTestView(t)

	v.cityEntry.SetText("  London, GB ")
	test.Tap(v.searchBtn)

	require.Equal(t, []string{config.DefaultCity, "London, GB"}, looker.requested())
	if got := config.NewSettings(app).GetCity(); got != "London, GB" {
		t.Errorf("Expected stored city 'London, GB', got %q", got)
	}
}

func TestWeatherView_BlankCityRejected(t *testing.T) {
	v, looker, app := newTestView(t)

	v.cityEntry.SetText("   ")
	test.Tap(v.searchBtn)

	require.Len(t, looker.requested(), 1)
	if got := config.NewSettings(app).GetCity(); got != config.DefaultCity {
		t.Errorf("Stored city changed to %q", got)
	}
	if v.noticeLabel.Text != "Please enter a city" {
		t.Errorf("Expected blank-city notice, got %q", v.noticeLabel.Text)
	}
}

func TestWeatherView_Refresh(t *testing.T) {
	v, looker, _ := newTestView(t)

	v.onRefresh()

	require.Equal(t, []string{config.DefaultCity, config.DefaultCity}, looker.requested())
}

func TestWeatherView_LanguageChange(t *testing.T) {
	v, looker, app := newTestView(t)

	looker.deliver(&model.LookupResult{ID: "lookup-1", City: "London,uk", Record: londonRecord()})
	waitFor(t, func() bool { return v.cityLabel.Text != "" })

	v.onLanguageChange("ru")

	if got := config.NewSettings(app).GetLanguage(); got != "ru" {
		t.Errorf("Expected stored language 'ru', got %q", got)
	}
	want := "CLEAR SKY\n" + v.localization.GetText(KeyHumidity) + ": 60%\n" +
		v.localization.GetText(KeyPressure) + ": 1012 hPa"
	if v.detailsLabel.Text != want {
		t.Errorf("Expected details %q, got %q", want, v.detailsLabel.Text)
	}
	if v.temperatureLabel.Text != "15.50ºC" {
		t.Errorf("Temperature changed on language switch: %q", v.temperatureLabel.Text)
	}
}

func TestWeatherView_RefreshButton(t *testing.T) {
	v, looker, app := newTestView(t)
	config.NewSettings(app).SetCity("Oslo, NO")

	test.Tap(v.refreshBtn)

	require.Equal(t, []string{config.DefaultCity, "Oslo, NO"}, looker.requested())
}

func TestWeatherView_LanguageMenu(t *testing.T) {
	v, _, _ := newTestView(t)

	menu := v.window.MainMenu()
	require.NotNil(t, menu)
	require.Len(t, menu.Items, 2)

	languages := menu.Items[1].Items
	names := make([]string, 0, len(languages))
	for _, item := range languages {
		names = append(names, item.Label)
		if item.Checked != (item.Label == "System Default") {
			t.Errorf("item %q checked = %v", item.Label, item.Checked)
		}
	}
	require.Equal(t, []string{"English", "Português", "Русский", "System Default"}, names)

	languages[2].Action()
	if v.localization.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected ru after menu action, got %s", v.localization.GetCurrentLanguage())
	}
	for _, item := range v.window.MainMenu().Items[1].Items {
		if item.Checked != (item.Label == "Русский") {
			t.Errorf("after switch, item %q checked = %v", item.Label, item.Checked)
		}
	}
}
