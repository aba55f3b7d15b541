package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherapp_owm_api_calls_total",
			Help: "Total OpenWeatherMap API calls",
		},
		[]string{"endpoint", "status"},
	)

	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weatherapp_owm_api_latency_seconds",
			Help:    "OpenWeatherMap API call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	FetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherapp_fetches_total",
			Help: "Total coordinator fetches by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	SensorReadingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "weatherapp_sensor_readings_total",
			Help: "Total barometer readings consumed",
		},
	)

	SensorPressureHPa = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "weatherapp_sensor_pressure_hpa",
			Help: "Last barometric pressure reading in hPa",
		},
	)

	SensorAltitudeMeters = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "weatherapp_sensor_altitude_meters",
			Help: "Altitude derived from the last pressure reading",
		},
	)
)
