// Package api exposes the coordinator's published state over HTTP and
// WebSocket. It stands in for the rendering surface: everything it returns is
// display-ready, built by the viewmodel layer.
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/raexp917/weather-app/internal/app"
	"github.com/raexp917/weather-app/internal/forecast"
	"github.com/raexp917/weather-app/internal/location"
	"github.com/raexp917/weather-app/internal/models"
	"github.com/raexp917/weather-app/internal/sensor"
)

type Server struct {
	coord    *app.Coordinator
	monitor  *sensor.Monitor
	locator  location.Provider
	port     string
	upgrader websocket.Upgrader
}

func NewServer(coord *app.Coordinator, monitor *sensor.Monitor, locator location.Provider, port string) *Server {
	return &Server{
		coord:   coord,
		monitor: monitor,
		locator: locator,
		port:    port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/api/fetch", s.handleFetch)
	mux.HandleFunc("/api/ws", s.handleWS)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.buildView(s.coord.State()))
}

// handleFetch triggers a fetch by city (?city=), by coordinates (?lat=&lon=),
// or by the configured location provider when neither is given. The fetch
// runs asynchronously; the published state carries its outcome.
func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	switch {
	case q.Get("city") != "":
		s.coord.FetchByCity(context.Background(), q.Get("city"))
	case q.Get("lat") != "" || q.Get("lon") != "":
		lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
		lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
		if latErr != nil || lonErr != nil {
			http.Error(w, "invalid lat/lon", http.StatusBadRequest)
			return
		}
		s.coord.FetchByCoords(context.Background(), lat, lon)
	default:
		fix, err := s.locator.CurrentFix(r.Context())
		if err != nil {
			http.Error(w, "no location fix and no city given", http.StatusBadRequest)
			return
		}
		s.coord.FetchByCoords(context.Background(), fix.Latitude, fix.Longitude)
	}

	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{"status": "fetching"})
}

// handleWS streams a view for every published state, starting with the
// current one.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	sub, cancel := s.coord.Subscribe()
	defer cancel()

	if err := conn.WriteJSON(s.buildView(s.coord.State())); err != nil {
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case st := <-sub:
			if err := conn.WriteJSON(s.buildView(st)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (s *Server) buildView(st models.AppState) StateView {
	view := BuildView(st, time.Now(), s.fallbackTimeOfDay())
	if r, alt, ok := s.monitor.Current(); ok {
		view.Sensor = &SensorView{
			PressureHPa:    r.PressureHPa,
			AltitudeMeters: alt,
		}
	}
	return view
}

// fallbackTimeOfDay classifies day/night from the configured location's sun
// position, for snapshots that carry no sunrise/sunset.
func (s *Server) fallbackTimeOfDay() forecast.TimeOfDay {
	fix, err := s.locator.CurrentFix(context.Background())
	if err != nil {
		return forecast.TimeDay
	}
	return forecast.TimeOfDayFromSun(time.Now(), fix.Latitude, fix.Longitude)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
