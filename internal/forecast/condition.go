package forecast

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"
)

// WeatherCondition is the categorized weather state used for theming and
// animation selection.
type WeatherCondition string

const (
	ConditionStorm   WeatherCondition = "storm"
	ConditionDrizzle WeatherCondition = "drizzle"
	ConditionRain    WeatherCondition = "rain"
	ConditionSnow    WeatherCondition = "snow"
	ConditionFog     WeatherCondition = "fog"
	ConditionClear   WeatherCondition = "clear"
	ConditionClouds  WeatherCondition = "clouds"
)

// TimeOfDay represents the lighting period.
type TimeOfDay string

const (
	TimeDay   TimeOfDay = "day"
	TimeDusk  TimeOfDay = "dusk"
	TimeNight TimeOfDay = "night"
	TimeDawn  TimeOfDay = "dawn"
)

// twilightWindow is how far around sunrise/sunset the dawn/dusk themes apply.
const twilightWindow = 30 * time.Minute

// ConditionFromCode maps an OpenWeatherMap condition code to a category.
// Code groups: 2xx thunderstorm, 3xx drizzle, 5xx rain, 6xx snow,
// 7xx atmosphere (mist/fog/haze), 800 clear, 80x clouds.
func ConditionFromCode(code int) WeatherCondition {
	switch {
	case code >= 200 && code < 300:
		return ConditionStorm
	case code >= 300 && code < 400:
		return ConditionDrizzle
	case code >= 500 && code < 600:
		return ConditionRain
	case code >= 600 && code < 700:
		return ConditionSnow
	case code >= 700 && code < 800:
		return ConditionFog
	case code == 800:
		return ConditionClear
	default:
		return ConditionClouds
	}
}

// Animation returns the animation asset identifier for a condition code.
// Clear skies are the only night-aware animation.
func Animation(code int, tod TimeOfDay) string {
	cond := ConditionFromCode(code)
	if cond == ConditionClear {
		if tod == TimeNight {
			return "clear_night"
		}
		return "clear_day"
	}
	return string(cond)
}

// TimeOfDayAt classifies a moment against the location's sunrise and sunset
// (UTC epoch seconds). Within the twilight window of sunrise it is dawn, of
// sunset it is dusk.
func TimeOfDayAt(now time.Time, sunrise, sunset int64) TimeOfDay {
	sr := time.Unix(sunrise, 0)
	ss := time.Unix(sunset, 0)

	switch {
	case absDuration(now.Sub(sr)) <= twilightWindow:
		return TimeDawn
	case absDuration(now.Sub(ss)) <= twilightWindow:
		return TimeDusk
	case now.After(sr) && now.Before(ss):
		return TimeDay
	default:
		return TimeNight
	}
}

// TimeOfDayFromSun is the fallback when a snapshot carries no sunrise/sunset:
// it classifies by computed sun altitude at the given coordinates. The sun is
// in twilight between -6 and +6 degrees; whether that is dawn or dusk depends
// on whether it is rising.
func TimeOfDayFromSun(now time.Time, lat, lon float64) TimeOfDay {
	alt := sunAltitudeDegrees(now, lat, lon)
	switch {
	case alt >= 6:
		return TimeDay
	case alt <= -6:
		return TimeNight
	case sunAltitudeDegrees(now.Add(10*time.Minute), lat, lon) > alt:
		return TimeDawn
	default:
		return TimeDusk
	}
}

func sunAltitudeDegrees(t time.Time, lat, lon float64) float64 {
	pos := suncalc.GetPosition(t, lat, lon)
	return pos.Altitude * 180 / math.Pi
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
