package web

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jbrasil/fishplants/internal/county"
	"github.com/jbrasil/fishplants/internal/geocode"
	"github.com/jbrasil/fishplants/internal/plants"
)

// californiaCenter is the last-resort map pin when neither the geocoder
// nor the county seat table can place a water body.
var californiaCenter = geocode.Point{Lat: 36.7783, Lon: -119.4179}

type homeData struct {
	Counties []string
	Error    string
}

type resultsData struct {
	County string
	Waters []waterRow
	Today  string
}

type waterRow struct {
	Water  string
	Result plants.WaterBodyResult
}

type mapData struct {
	Water   string
	County  string
	Lat     float64
	Lon     float64
	Message string
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	s.renderHome(w, r, "")
}

func (s *Server) renderHome(w http.ResponseWriter, r *http.Request, errMsg string) {
	data := homeData{
		Counties: s.counties.Counties(r.Context()),
		Error:    errMsg,
	}
	s.render(w, "index.html", data)
}

func (s *Server) results(w http.ResponseWriter, r *http.Request) {
	countyName := r.URL.Query().Get("county")
	if countyName == "" {
		s.renderHome(w, r, "Please select a county.")
		return
	}

	schedule, err := s.schedules.ForCounty(r.Context(), countyName)
	if err != nil {
		s.renderHome(w, r, err.Error())
		return
	}

	rows := make([]waterRow, 0, len(schedule))
	for _, water := range schedule.Waters() {
		rows = append(rows, waterRow{Water: water, Result: schedule[water]})
	}
	s.render(w, "results.html", resultsData{
		County: countyName,
		Waters: rows,
		Today:  s.schedules.Today().Format("January 02, 2006"),
	})
}

func (s *Server) mapView(w http.ResponseWriter, r *http.Request) {
	countyName := pathParam(r, "county")
	water := pathParam(r, "water")

	point, found := s.geocoder.Geocode(r.Context(), water, countyName)
	message := ""
	if !found {
		if seat, ok := county.Seat(countyName); ok {
			point = seat
			message = fmt.Sprintf("Exact location for '%s' not found — showing %s County seat.", water, countyName)
		} else {
			point = californiaCenter
			message = "Location and county seat not found — showing center of California."
		}
	}

	s.render(w, "map.html", mapData{
		Water:   water,
		County:  countyName,
		Lat:     point.Lat,
		Lon:     point.Lon,
		Message: message,
	})
}

// pathParam returns a decoded chi URL parameter; water body names
// arrive percent-encoded.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("render template failed", zap.String("template", name), zap.Error(err))
	}
}
