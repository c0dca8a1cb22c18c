package lookup

import (
	"github.com/svarj/WeatherMe/internal/model"
)

// Looker defines the interface for the lookup service.
type Looker interface {
	// SetUpdateCallback registers the function receiving finished lookups.
	// It is called on the worker goroutine.
	SetUpdateCallback(func(*model.LookupResult))

	// Lookup starts a lookup for city and returns its ID.
	Lookup(city string) string

	// Wait blocks until every started lookup has finished.
	Wait()
}
