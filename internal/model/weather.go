package model

import "time"

// WeatherRecord holds the current conditions for one city as reported by
// the provider. A record only exists for a response with cod == 200.
type WeatherRecord struct {
	CityName           string
	CountryCode        string
	ConditionID        int // three-digit provider condition code
	Description        string
	Humidity           float64 // percent
	Pressure           float64 // hPa
	TemperatureCelsius float64
	ObservedAt         int64 // epoch seconds
	SunriseMillis      int64
	SunsetMillis       int64
}

// ObservedTime returns the observation time as a time.Time
func (r *WeatherRecord) ObservedTime() time.Time {
	return time.UnixMilli(r.ObservedAt * 1000)
}

// LookupResult is delivered to the UI once a lookup finishes.
// Record is nil whenever Err is set.
type LookupResult struct {
	ID         string
	Seq        uint64
	City       string
	Record     *WeatherRecord
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

// Found reports whether the lookup produced a record
func (r *LookupResult) Found() bool {
	return r != nil && r.Err == nil && r.Record != nil
}
