package model

// TemperatureUnit represents the unit the temperature label is shown in
type TemperatureUnit string

const (
	// UnitCelsius is the unit reported by the provider (units=metric)
	UnitCelsius TemperatureUnit = "Celsius"

	// UnitFahrenheit is the alternate unit reachable through the toggle
	UnitFahrenheit TemperatureUnit = "Fahrenheit"
)

// String returns the string representation of TemperatureUnit
func (u TemperatureUnit) String() string {
	return string(u)
}

// Symbol returns the suffix appended to formatted temperatures
func (u TemperatureUnit) Symbol() string {
	if u == UnitFahrenheit {
		return "ºF"
	}
	return "ºC"
}

// Other returns the unit a toggle switches to
func (u TemperatureUnit) Other() TemperatureUnit {
	if u == UnitFahrenheit {
		return UnitCelsius
	}
	return UnitFahrenheit
}
