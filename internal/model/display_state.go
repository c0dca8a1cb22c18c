package model

// DisplayState is the temperature currently on screen and its unit.
// It is derived from the last rendered record and never persisted.
type DisplayState struct {
	Value float64
	Unit  TemperatureUnit
}

// NewDisplayState returns the state right after a record is rendered
func NewDisplayState(celsius float64) DisplayState {
	return DisplayState{Value: celsius, Unit: UnitCelsius}
}

// IsCelsius reports whether the value is in Celsius
func (s DisplayState) IsCelsius() bool {
	return s.Unit != UnitFahrenheit
}

// Toggle converts the value to the other unit and flips the unit flag.
// Repeated toggles drift slightly because of floating-point rounding.
func (s *DisplayState) Toggle() {
	if s.IsCelsius() {
		s.Value = s.Value*(float64(9)/5) + 32
	} else {
		s.Value = (s.Value - 32) * (float64(5) / 9)
	}
	s.Unit = s.Unit.Other()
}
