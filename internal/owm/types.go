package owm

import (
	"github.com/raexp917/weather-app/internal/models"
)

// CurrentResponse mirrors the OpenWeatherMap current-conditions payload.
type CurrentResponse struct {
	Cod     int    `json:"cod"`
	Message string `json:"message,omitempty"`
	Name    string `json:"name"`
	Dt      int64  `json:"dt"`
	// Timezone is the location's UTC offset in seconds. Pointer so an absent
	// field stays distinguishable from an offset of zero.
	Timezone *int        `json:"timezone"`
	Weather  []Condition `json:"weather"`
	Main     MainBlock   `json:"main"`
	Wind     Wind        `json:"wind"`
	Sys      struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
}

// Condition is one entry of the weather condition list.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainBlock holds the temperature and atmosphere readings.
type MainBlock struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  float64 `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

// Snapshot converts the wire payload into the domain snapshot.
func (r *CurrentResponse) Snapshot() models.WeatherSnapshot {
	s := models.WeatherSnapshot{
		Cod:        r.Cod,
		Message:    r.Message,
		City:       r.Name,
		Country:    r.Sys.Country,
		Temp:       r.Main.Temp,
		FeelsLike:  r.Main.FeelsLike,
		TempMin:    r.Main.TempMin,
		TempMax:    r.Main.TempMax,
		Pressure:   r.Main.Pressure,
		Humidity:   r.Main.Humidity,
		WindSpeed:  r.Wind.Speed,
		WindDeg:    r.Wind.Deg,
		Sunrise:    r.Sys.Sunrise,
		Sunset:     r.Sys.Sunset,
		ObservedAt: r.Dt,
	}
	if r.Timezone != nil {
		s.TimezoneOffset = *r.Timezone
	}
	if len(r.Weather) > 0 {
		s.Condition = r.Weather[0].ID
		s.Summary = r.Weather[0].Description
		s.Icon = r.Weather[0].Icon
	}
	return s
}

// ForecastResponse mirrors the 5-day/3-hour forecast payload. Cod is a string
// on this endpoint, unlike the current-conditions endpoint.
type ForecastResponse struct {
	Cod     string         `json:"cod"`
	List    []ForecastItem `json:"list"`
	City    ForecastCity   `json:"city"`
	Message any            `json:"message,omitempty"`
}

type ForecastItem struct {
	Dt      int64       `json:"dt"`
	Main    MainBlock   `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    Wind        `json:"wind"`
}

type ForecastCity struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	// Timezone is the destination city's UTC offset in seconds.
	Timezone *int  `json:"timezone"`
	Sunrise  int64 `json:"sunrise"`
	Sunset   int64 `json:"sunset"`
}

// Samples converts the forecast list into domain samples, preserving order.
func (r *ForecastResponse) Samples() []models.ForecastSample {
	if r.List == nil {
		return nil
	}
	samples := make([]models.ForecastSample, 0, len(r.List))
	for _, it := range r.List {
		s := models.ForecastSample{
			Timestamp: it.Dt,
			Temp:      it.Main.Temp,
			TempMin:   it.Main.TempMin,
			TempMax:   it.Main.TempMax,
			Humidity:  it.Main.Humidity,
			WindSpeed: it.Wind.Speed,
			WindDeg:   it.Wind.Deg,
		}
		if len(it.Weather) > 0 {
			s.Condition = it.Weather[0].ID
			s.Summary = it.Weather[0].Description
			s.Icon = it.Weather[0].Icon
		}
		samples = append(samples, s)
	}
	return samples
}
