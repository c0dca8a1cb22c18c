package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconMenu    = "☰"
	IconRefresh = "⟳"
	IconSearch  = "🔍"
)

// Text sizing for the weather card
const (
	WeatherIconTextSize float32 = 96
	CityTextSize        float32 = 24
)

// Layout sizing
const (
	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48

	// Mobile button sizing
	MobileButtonWidth float32 = 60
)

// Notice behavior
const (
	NoticeAutoHide = 3500 * time.Millisecond
)

// Pull-to-refresh behavior
const (
	RefreshCooldown = 2 * time.Second
)
