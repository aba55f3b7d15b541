package forecast

import "time"

// LocalTime shifts a UTC epoch timestamp into the destination offset, or the
// host's local zone when no offset is known.
func LocalTime(epochSeconds int64, utcOffsetSeconds *int) time.Time {
	zone := time.Local
	if utcOffsetSeconds != nil {
		zone = time.FixedZone("dest", *utcOffsetSeconds)
	}
	return time.Unix(epochSeconds, 0).In(zone)
}

// ClockLabel formats a timestamp as a 24-hour clock string, e.g. "06:42".
func ClockLabel(epochSeconds int64, utcOffsetSeconds *int) string {
	return LocalTime(epochSeconds, utcOffsetSeconds).Format("15:04")
}

// windArrows maps the 16 compass points, 22.5 degrees wide each, to the arrow
// showing where the wind blows toward (degrees are the direction it comes
// from). Adjacent intercardinal points share their nearest octant glyph.
var windArrows = [16]string{
	"↓", "↓", "↙", "↙", "←", "←", "↖", "↖",
	"↑", "↑", "↗", "↗", "→", "→", "↘", "↘",
}

var windNames = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

func windSector(deg float64) int {
	for deg < 0 {
		deg += 360
	}
	return int((deg+11.25)/22.5) % 16
}

// WindArrow returns the arrow glyph for a meteorological wind direction.
func WindArrow(deg float64) string {
	return windArrows[windSector(deg)]
}

// WindCardinal returns the 16-point compass name for a wind direction.
func WindCardinal(deg float64) string {
	return windNames[windSector(deg)]
}
