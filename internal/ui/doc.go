package ui

// Package ui contains the Fyne-based user interface for the application.
// WeatherView owns every widget; lookup results arrive on worker goroutines
// and are applied through fyne.Do. All UI strings are localized via Localization.
