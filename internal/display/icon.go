package display

// Icon is the glyph shown next to the conditions
type Icon string

// Weather glyphs
const (
	IconNone       Icon = ""
	IconSunny      Icon = "☀"
	IconClearNight Icon = "🌙"
	IconThunder    Icon = "⛈"
	IconDrizzle    Icon = "🌦"
	IconRainy      Icon = "🌧"
	IconSnowy      Icon = "❄"
	IconFoggy      Icon = "🌫"
	IconCloudy     Icon = "☁"
)

// ConditionClear is the provider code for a clear sky
const ConditionClear = 800

// Name returns a stable English name for the icon, used in logs
func (i Icon) Name() string {
	switch i {
	case IconSunny:
		return "sunny"
	case IconClearNight:
		return "clear night"
	case IconThunder:
		return "thunder"
	case IconDrizzle:
		return "drizzle"
	case IconRainy:
		return "rainy"
	case IconSnowy:
		return "snowy"
	case IconFoggy:
		return "foggy"
	case IconCloudy:
		return "cloudy"
	default:
		return "none"
	}
}

// SelectIcon picks the glyph for a condition code. A clear sky depends on
// whether now falls in [sunrise, sunset); every other code is bucketed by
// its hundreds digit. All times are epoch milliseconds.
func SelectIcon(conditionID int, sunrise, sunset, now int64) Icon {
	if conditionID == ConditionClear {
		if now >= sunrise && now < sunset {
			return IconSunny
		}
		return IconClearNight
	}

	switch conditionID / 100 {
	case 2:
		return IconThunder
	case 3:
		return IconDrizzle
	case 5:
		return IconRainy
	case 6:
		return IconSnowy
	case 7:
		return IconFoggy
	case 8:
		return IconCloudy
	}
	return IconNone
}
