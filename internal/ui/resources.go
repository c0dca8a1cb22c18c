package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "weatherme.png"
)

//go:embed weatherme.png
var logoPNG []byte

// LoadLogoResource returns the app logo bundled into the binary
func LoadLogoResource() fyne.Resource {
	return fyne.NewStaticResource(AppIcon, logoPNG)
}
