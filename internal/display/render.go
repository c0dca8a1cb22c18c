package display

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/svarj/WeatherMe/internal/model"
)

// UpdatedLayout formats the observation time
const UpdatedLayout = "Jan 2, 2006 3:04:05 PM"

// Labels holds the translated prefixes used in the rendered text
type Labels struct {
	Humidity   string
	Pressure   string
	LastUpdate string
}

// DefaultLabels returns the English labels
func DefaultLabels() Labels {
	return Labels{
		Humidity:   "Humidity",
		Pressure:   "Pressure",
		LastUpdate: "Last update",
	}
}

// Fields are the values written to the screen for one record
type Fields struct {
	City        string
	Details     string
	Temperature string
	Updated     string
	Icon        Icon

	// State is the temperature state the toggle starts from
	State model.DisplayState
}

// Render maps rec to display fields. It returns false for a nil record, in
// which case nothing on screen should change. Zero labels mean DefaultLabels.
func Render(rec *model.WeatherRecord, now time.Time, labels Labels) (Fields, bool) {
	if rec == nil {
		return Fields{}, false
	}
	if labels == (Labels{}) {
		labels = DefaultLabels()
	}

	state := model.NewDisplayState(rec.TemperatureCelsius)

	return Fields{
		City:        strings.ToUpper(rec.CityName) + ", " + rec.CountryCode,
		Details:     details(rec, labels),
		Temperature: FormatTemperature(state),
		Updated:     labels.LastUpdate + ": " + rec.ObservedTime().In(now.Location()).Format(UpdatedLayout),
		Icon:        SelectIcon(rec.ConditionID, rec.SunriseMillis, rec.SunsetMillis, now.UnixMilli()),
		State:       state,
	}, true
}

// FormatTemperature renders the value with two decimals and the unit symbol
func FormatTemperature(state model.DisplayState) string {
	return fmt.Sprintf("%.2f", state.Value) + state.Unit.Symbol()
}

func details(rec *model.WeatherRecord, labels Labels) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(rec.Description))
	b.WriteString("\n")
	b.WriteString(labels.Humidity + ": " + formatNumber(rec.Humidity) + "%")
	b.WriteString("\n")
	b.WriteString(labels.Pressure + ": " + formatNumber(rec.Pressure) + " hPa")
	return b.String()
}

// formatNumber prints whole numbers without a fractional part
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
