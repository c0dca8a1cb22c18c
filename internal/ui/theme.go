package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// WeatherTheme is a light/dark theme with large headings for the weather card
type WeatherTheme struct{}

// NewWeatherTheme creates a new weather theme
func NewWeatherTheme() fyne.Theme {
	return &WeatherTheme{}
}

// Color returns theme colors
func (t *WeatherTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for notices
	case theme.ColorNamePrimary:
		return color.RGBA{R: 2, G: 136, B: 209, A: 255} // Sky blue
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 16, G: 24, B: 32, A: 255} // Night sky
		}
		return color.RGBA{R: 240, G: 247, B: 252, A: 255} // Pale blue
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255} // Dark text
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *WeatherTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *WeatherTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *WeatherTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameHeadingText:
		return 40 // temperature
	case theme.SizeNameSubHeadingText:
		return CityTextSize
	case theme.SizeNameText:
		return 15
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 8
	}

	return theme.DefaultTheme().Size(name)
}
