package weather

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// flexNumber accepts a JSON number or a string holding one. The provider
// reports "cod" as a string on errors and some deployments quote
// humidity/pressure.
type flexNumber struct {
	value float64
	set   bool
}

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", s)
		}
		n.value, n.set = v, true
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.value, n.set = v, true
	return nil
}

// openWeatherResponse mirrors the fields the app reads. Pointers mark
// required fields so a missing one can be told apart from a zero value.
type openWeatherResponse struct {
	Cod  flexNumber `json:"cod"`
	Name *string    `json:"name"`
	Dt   *int64     `json:"dt"`
	Sys  *struct {
		Country *string `json:"country"`
		Sunrise *int64  `json:"sunrise"`
		Sunset  *int64  `json:"sunset"`
	} `json:"sys"`
	Weather []struct {
		ID          *int    `json:"id"`
		Description *string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp     *float64   `json:"temp"`
		Humidity flexNumber `json:"humidity"`
		Pressure flexNumber `json:"pressure"`
	} `json:"main"`
	Message string `json:"message"`
}

// missingField returns the path of the first required field absent from r.
func (r *openWeatherResponse) missingField() string {
	switch {
	case r.Name == nil:
		return "name"
	case r.Dt == nil:
		return "dt"
	case r.Sys == nil:
		return "sys"
	case r.Sys.Country == nil:
		return "sys.country"
	case r.Sys.Sunrise == nil:
		return "sys.sunrise"
	case r.Sys.Sunset == nil:
		return "sys.sunset"
	case len(r.Weather) == 0:
		return "weather[0]"
	case r.Weather[0].ID == nil:
		return "weather[0].id"
	case r.Weather[0].Description == nil:
		return "weather[0].description"
	case r.Main == nil:
		return "main"
	case r.Main.Temp == nil:
		return "main.temp"
	case !r.Main.Humidity.set:
		return "main.humidity"
	case !r.Main.Pressure.set:
		return "main.pressure"
	}
	return ""
}
