package ui

import "github.com/svarj/WeatherMe/internal/display"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyCity             = "city"
	KeyChangeCity       = "change_city"
	KeyCityPlaceholder  = "city_placeholder"
	KeySearch           = "search"
	KeyCancel           = "cancel"
	KeyRefresh          = "refresh"
	KeyLanguage         = "language"
	KeyHumidity         = "humidity"
	KeyPressure         = "pressure"
	KeyLastUpdate       = "last_update"
	KeyPlaceNotFound    = "place_not_found"
	KeyLoading          = "loading"
	KeyPleaseEnterCity  = "please_enter_city"
	KeyToggleFahrenheit = "toggle_fahrenheit"
	KeyToggleCelsius    = "toggle_celsius"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// Labels returns the render labels in the current language
func (l *Localization) Labels() display.Labels {
	return display.Labels{
		Humidity:   l.GetText(KeyHumidity),
		Pressure:   l.GetText(KeyPressure),
		LastUpdate: l.GetText(KeyLastUpdate),
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "WeatherMe",
		KeyCity:             "City",
		KeyChangeCity:       "Change city",
		KeyCityPlaceholder:  "City, country code (e.g. London, GB)",
		KeySearch:           "Go",
		KeyCancel:           "Cancel",
		KeyRefresh:          "Refresh",
		KeyLanguage:         "Language",
		KeyHumidity:         "Humidity",
		KeyPressure:         "Pressure",
		KeyLastUpdate:       "Last update",
		KeyPlaceNotFound:    "Place not found",
		KeyLoading:          "Loading weather...",
		KeyPleaseEnterCity:  "Please enter a city",
		KeyToggleFahrenheit: "ºF",
		KeyToggleCelsius:    "ºC",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "WeatherMe",
		KeyCity:             "Город",
		KeyChangeCity:       "Сменить город",
		KeyCityPlaceholder:  "Город, код страны (например, London, GB)",
		KeySearch:           "Найти",
		KeyCancel:           "Отмена",
		KeyRefresh:          "Обновить",
		KeyLanguage:         "Язык",
		KeyHumidity:         "Влажность",
		KeyPressure:         "Давление",
		KeyLastUpdate:       "Обновлено",
		KeyPlaceNotFound:    "Место не найдено",
		KeyLoading:          "Загрузка погоды...",
		KeyPleaseEnterCity:  "Пожалуйста, введите город",
		KeyToggleFahrenheit: "ºF",
		KeyToggleCelsius:    "ºC",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "WeatherMe",
		KeyCity:             "Cidade",
		KeyChangeCity:       "Mudar cidade",
		KeyCityPlaceholder:  "Cidade, código do país (ex. London, GB)",
		KeySearch:           "Ir",
		KeyCancel:           "Cancelar",
		KeyRefresh:          "Atualizar",
		KeyLanguage:         "Idioma",
		KeyHumidity:         "Umidade",
		KeyPressure:         "Pressão",
		KeyLastUpdate:       "Última atualização",
		KeyPlaceNotFound:    "Local não encontrado",
		KeyLoading:          "Carregando o tempo...",
		KeyPleaseEnterCity:  "Por favor, digite uma cidade",
		KeyToggleFahrenheit: "ºF",
		KeyToggleCelsius:    "ºC",
	}
}
