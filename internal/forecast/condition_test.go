package forecast

import (
	"testing"
	"time"
)

func TestConditionFromCode(t *testing.T) {
	tests := []struct {
		code int
		want WeatherCondition
	}{
		{211, ConditionStorm},
		{301, ConditionDrizzle},
		{500, ConditionRain},
		{531, ConditionRain},
		{600, ConditionSnow},
		{741, ConditionFog},
		{800, ConditionClear},
		{801, ConditionClouds},
		{804, ConditionClouds},
	}

	for _, tt := range tests {
		if got := ConditionFromCode(tt.code); got != tt.want {
			t.Errorf("ConditionFromCode(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestAnimationNightAware(t *testing.T) {
	if got := Animation(800, TimeNight); got != "clear_night" {
		t.Errorf("clear at night = %q, want clear_night", got)
	}
	if got := Animation(800, TimeDay); got != "clear_day" {
		t.Errorf("clear at day = %q, want clear_day", got)
	}
	if got := Animation(212, TimeNight); got != "storm" {
		t.Errorf("storm should not be night-aware, got %q", got)
	}
}

func TestTimeOfDayAt(t *testing.T) {
	sunrise := time.Date(2023, 8, 28, 5, 30, 0, 0, time.UTC)
	sunset := time.Date(2023, 8, 28, 18, 45, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want TimeOfDay
	}{
		{"midday", sunrise.Add(6 * time.Hour), TimeDay},
		{"just after sunrise", sunrise.Add(10 * time.Minute), TimeDawn},
		{"just before sunrise", sunrise.Add(-10 * time.Minute), TimeDawn},
		{"just before sunset", sunset.Add(-10 * time.Minute), TimeDusk},
		{"just after sunset", sunset.Add(10 * time.Minute), TimeDusk},
		{"deep night", sunset.Add(4 * time.Hour), TimeNight},
		{"pre-dawn", sunrise.Add(-3 * time.Hour), TimeNight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeOfDayAt(tt.now, sunrise.Unix(), sunset.Unix()); got != tt.want {
				t.Errorf("TimeOfDayAt = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeOfDayFromSun(t *testing.T) {
	// Athens, local solar noon vs midnight. UTC+3 in August.
	lat, lon := 37.98, 23.72
	noon := time.Date(2023, 8, 28, 10, 0, 0, 0, time.UTC)
	midnight := time.Date(2023, 8, 28, 22, 0, 0, 0, time.UTC)

	if got := TimeOfDayFromSun(noon, lat, lon); got != TimeDay {
		t.Errorf("sun high at noon, got %q", got)
	}
	if got := TimeOfDayFromSun(midnight, lat, lon); got != TimeNight {
		t.Errorf("sun below horizon at midnight, got %q", got)
	}
}

func TestGetPalette(t *testing.T) {
	if p := GetPalette(ConditionClear, TimeDay); p == DefaultPalette {
		t.Error("clear day should have a curated palette")
	}
	if p := GetPalette(ConditionDrizzle, TimeNight); p != GetPalette(ConditionRain, TimeNight) {
		t.Error("drizzle should share rain palettes")
	}
	if p := GetPalette(WeatherCondition("unknown"), TimeDay); p != DefaultPalette {
		t.Error("unknown condition should fall back to the default palette")
	}
}
