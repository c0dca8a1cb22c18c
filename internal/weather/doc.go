package weather

// Package weather talks to the OpenWeatherMap current conditions endpoint.
// A lookup is one GET with no retry and no cache; every failure (network,
// non-200 cod, malformed or incomplete body) comes back as an error and a
// nil record.
