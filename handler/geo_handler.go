package handler

import (
	"errors"
	"net/http"

	"bankledger/geo"
	"bankledger/model"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// GeoHandler exposes the IP geolocation lookup.
type GeoHandler struct {
	geolocator *geo.Geolocator
	logger     *logrus.Logger
}

// NewGeoHandler creates a new GeoHandler.
func NewGeoHandler(geolocator *geo.Geolocator, logger *logrus.Logger) *GeoHandler {
	return &GeoHandler{geolocator: geolocator, logger: logger}
}

// LookupHandler resolves the location of an IPv4 address.
//
// Method: GET
// Path: /geolocation/{ip}
// Success: 200 OK with the location record
// Error: 400 Bad Request (malformed IPv4 address)
// Error: 502 Bad Gateway (lookup backend failure)
func (h *GeoHandler) LookupHandler(w http.ResponseWriter, r *http.Request) {
	rawIP := mux.Vars(r)["ip"]

	loc, err := h.geolocator.Locate(r.Context(), rawIP)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidIP) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithError(err).WithField("ip", rawIP).Warn("geolocation lookup failed")
		http.Error(w, "Geolocation lookup failed", http.StatusBadGateway)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, model.Location{
		IP:        rawIP,
		Country:   loc.Country,
		City:      loc.City,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	})
}
