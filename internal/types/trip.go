// README: Small trip-related helpers: time-of-day buckets, duration
// phrasing, text truncation.
package types

// TimePeriod buckets an hour of day into the itinerary slots.
func TimePeriod(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	default:
		return "evening"
	}
}

// TripDurationText phrases a trip length for display.
func TripDurationText(days int) string {
	switch {
	case days <= 3:
		return "short getaway"
	case days <= 7:
		return "week-long trip"
	case days <= 14:
		return "two-week vacation"
	default:
		return "extended journey"
	}
}

// Truncate shortens text to max runes, appending an ellipsis when cut.
func Truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
