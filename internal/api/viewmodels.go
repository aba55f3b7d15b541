package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/raexp917/weather-app/internal/forecast"
	"github.com/raexp917/weather-app/internal/models"
)

// StateView is the display-ready projection of an AppState, with all strings
// pre-formatted so the rendering surface binds them directly.
type StateView struct {
	Loading bool         `json:"loading"`
	Error   *ErrorView   `json:"error,omitempty"`
	Current *CurrentView `json:"current,omitempty"`
	Days    []DayView    `json:"days"`
	Sensor  *SensorView  `json:"sensor,omitempty"`
}

type ErrorView struct {
	Kind    string `json:"kind"`
	Status  int    `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Display string `json:"display"`
}

type CurrentView struct {
	City        string           `json:"city"`
	Country     string           `json:"country,omitempty"`
	Temperature string           `json:"temperature"`
	FeelsLike   string           `json:"feels_like"`
	Summary     string           `json:"summary"`
	Animation   string           `json:"animation"`
	Wind        string           `json:"wind"`
	Humidity    string           `json:"humidity"`
	Sunrise     string           `json:"sunrise"`
	Sunset      string           `json:"sunset"`
	TimeOfDay   string           `json:"time_of_day"`
	Palette     forecast.Palette `json:"palette"`
}

type DayView struct {
	DateMillis int64      `json:"date_millis"`
	Label      string     `json:"label"`
	Expanded   bool       `json:"expanded"`
	Hours      []HourView `json:"hours"`
}

type HourView struct {
	Time        string `json:"time"`
	Temperature string `json:"temperature"`
	Summary     string `json:"summary,omitempty"`
	Animation   string `json:"animation"`
	WindArrow   string `json:"wind_arrow"`
}

type SensorView struct {
	PressureHPa    float64 `json:"pressure_hpa"`
	AltitudeMeters float64 `json:"altitude_meters"`
}

// DisplayError renders a FetchError for the user. Formatting lives here so
// the error data stays free of presentation concerns.
func DisplayError(e models.FetchError) string {
	switch e.Kind {
	case models.ErrNone:
		return ""
	case models.ErrConfig:
		return "Weather service is not configured"
	case models.ErrNetwork:
		return "Network unavailable, check your connection"
	case models.ErrAPI:
		if e.Message != "" {
			return fmt.Sprintf("Weather service error (%d): %s", e.Status, e.Message)
		}
		return fmt.Sprintf("Weather service error (%d)", e.Status)
	case models.ErrRequest:
		return "Could not build the weather request"
	default:
		return "Something went wrong fetching the weather"
	}
}

// BuildView projects an AppState into its display form. now drives the
// day/night theme; fallbackTod is used when the snapshot carries no
// sunrise/sunset data.
func BuildView(st models.AppState, now time.Time, fallbackTod forecast.TimeOfDay) StateView {
	view := StateView{
		Loading: st.Loading,
		Days:    make([]DayView, 0, len(st.Forecast)),
	}

	if st.Err.IsError() {
		view.Error = &ErrorView{
			Kind:    st.Err.Kind.String(),
			Status:  st.Err.Status,
			Message: st.Err.Message,
			Display: DisplayError(st.Err),
		}
	}

	var offset *int
	if snap := st.Snapshot; snap != nil {
		offset = &snap.TimezoneOffset

		tod := fallbackTod
		if snap.Sunrise != 0 && snap.Sunset != 0 {
			tod = forecast.TimeOfDayAt(now, snap.Sunrise, snap.Sunset)
		}

		view.Current = &CurrentView{
			City:        snap.City,
			Country:     snap.Country,
			Temperature: formatTemp(snap.Temp),
			FeelsLike:   formatTemp(snap.FeelsLike),
			Summary:     snap.Summary,
			Animation:   forecast.Animation(snap.Condition, tod),
			Wind: fmt.Sprintf("%.1f m/s %s %s",
				snap.WindSpeed, forecast.WindCardinal(snap.WindDeg), forecast.WindArrow(snap.WindDeg)),
			Humidity:  fmt.Sprintf("%d%%", snap.Humidity),
			Sunrise:   forecast.ClockLabel(snap.Sunrise, offset),
			Sunset:    forecast.ClockLabel(snap.Sunset, offset),
			TimeOfDay: string(tod),
			Palette:   forecast.GetPalette(forecast.ConditionFromCode(snap.Condition), tod),
		}
	}

	for _, b := range st.Forecast {
		day := DayView{
			DateMillis: b.DateMillis,
			Label:      b.Label,
			Expanded:   b.Expanded,
			Hours:      make([]HourView, 0, len(b.Samples)),
		}
		for _, s := range b.Samples {
			day.Hours = append(day.Hours, HourView{
				Time:        forecast.ClockLabel(s.Timestamp, offset),
				Temperature: formatTemp(s.Temp),
				Summary:     s.Summary,
				Animation:   forecast.Animation(s.Condition, sampleTimeOfDay(s.Icon)),
				WindArrow:   forecast.WindArrow(s.WindDeg),
			})
		}
		view.Days = append(view.Days, day)
	}

	return view
}

func formatTemp(celsius float64) string {
	return fmt.Sprintf("%.0f°C", celsius)
}

// sampleTimeOfDay derives day/night for a forecast hour from the upstream
// icon suffix ("d" or "n"), which is already localized per sample.
func sampleTimeOfDay(icon string) forecast.TimeOfDay {
	if strings.HasSuffix(icon, "n") {
		return forecast.TimeNight
	}
	return forecast.TimeDay
}
