package models

// ErrorKind classifies a failed fetch. The zero value means no error, so an
// AppState carries an explicit "no error" state rather than a nil.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrConfig
	ErrNetwork
	ErrAPI
	ErrRequest
	ErrGeneric
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNone:
		return "none"
	case ErrConfig:
		return "config"
	case ErrNetwork:
		return "network"
	case ErrAPI:
		return "api"
	case ErrRequest:
		return "request"
	default:
		return "generic"
	}
}

// FetchError is the classified outcome of a failed fetch. Exactly one kind is
// active; Status and Message are only meaningful for ErrAPI.
type FetchError struct {
	Kind    ErrorKind `json:"kind"`
	Status  int       `json:"status,omitempty"`
	Message string    `json:"message,omitempty"`
}

// IsError reports whether the value represents an actual failure.
func (e FetchError) IsError() bool {
	return e.Kind != ErrNone
}

// WeatherSnapshot is the decoded current-conditions reading for one location.
// Cod 200 means the optional fields are authoritative; any other value means
// the snapshot must not be rendered as valid data.
type WeatherSnapshot struct {
	Cod       int     `json:"cod"`
	Message   string  `json:"message,omitempty"`
	City      string  `json:"city"`
	Country   string  `json:"country,omitempty"`
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  float64 `json:"pressure"`
	Humidity  int     `json:"humidity"`
	Condition int     `json:"condition"`
	Summary   string  `json:"summary,omitempty"`
	Icon      string  `json:"icon,omitempty"`
	WindSpeed float64 `json:"wind_speed"`
	WindDeg   float64 `json:"wind_deg"`
	Sunrise   int64   `json:"sunrise"`
	Sunset    int64   `json:"sunset"`
	// TimezoneOffset is the location's UTC offset in seconds.
	TimezoneOffset int   `json:"timezone_offset"`
	ObservedAt     int64 `json:"observed_at"`
}

// ForecastSample is one 3-hour forecast point. Timestamp is always UTC epoch
// seconds, never pre-localized.
type ForecastSample struct {
	Timestamp int64   `json:"timestamp"`
	Temp      float64 `json:"temp"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
	Condition int     `json:"condition"`
	Summary   string  `json:"summary,omitempty"`
	Icon      string  `json:"icon,omitempty"`
	WindSpeed float64 `json:"wind_speed"`
	WindDeg   float64 `json:"wind_deg"`
}

// DayBucket is one calendar day of forecast samples in the destination city's
// local time. DateMillis is UTC midnight of that local day in epoch millis and
// is the bucket's stable identity.
type DayBucket struct {
	DateMillis int64            `json:"date_millis"`
	Label      string           `json:"label"`
	Samples    []ForecastSample `json:"samples"`
	Expanded   bool             `json:"expanded"`
}

// AppState is the coordinator's published state. It is replaced as a whole on
// every publish; consumers must treat it as immutable.
type AppState struct {
	Snapshot *WeatherSnapshot `json:"snapshot,omitempty"`
	Forecast []DayBucket      `json:"forecast"`
	Err      FetchError       `json:"error"`
	Loading  bool             `json:"loading"`
}
