package geo

import "context"

// Location is the result of a geolocation lookup.
type Location struct {
	Country   string
	City      string
	Latitude  float64
	Longitude float64
}

// LocationResolver is the pluggable data source behind the Geolocator.
// Implementations translate their own transport and decoding failures
// into plain errors; the Geolocator takes care of classifying them.
type LocationResolver interface {
	Lookup(ctx context.Context, ip IPAddress) (Location, error)
}
