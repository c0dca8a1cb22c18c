package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyCity     = "city"
	KeyLanguage = "app_language"
	KeyAPIKey   = "weather_api_key"
)

// Default values
const (
	DefaultCity     = "Las Vegas, US"
	DefaultLanguage = "system"
)

// Settings persists user preferences through the Fyne app preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCity returns the last city the user looked up, or DefaultCity
func (s *Settings) GetCity() string {
	return s.app.Preferences().StringWithFallback(KeyCity, DefaultCity)
}

// SetCity stores the city. The value is not validated.
func (s *Settings) SetCity(city string) {
	s.app.Preferences().SetString(KeyCity, city)
}

// GetAPIKey returns the stored API key, or "" when none was saved
func (s *Settings) GetAPIKey() string {
	return s.app.Preferences().String(KeyAPIKey)
}

// SetAPIKey stores the API key used when the config carries none
func (s *Settings) SetAPIKey(key string) {
	s.app.Preferences().SetString(KeyAPIKey, key)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
