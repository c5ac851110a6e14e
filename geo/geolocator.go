package geo

import (
	"context"
	"errors"
	"fmt"
)

// ErrLookup is the single error kind surfaced by Geolocator.Locate.
// Both malformed input and resolver failures wrap it; the underlying
// cause stays reachable with errors.Is/As.
var ErrLookup = errors.New("geolocation lookup failed")

// Geolocator resolves raw IP strings to locations through a
// LocationResolver.
type Geolocator struct {
	resolver LocationResolver
}

// NewGeolocator wires a geolocator to the given resolver. A nil resolver
// selects the default Free IP API client.
func NewGeolocator(resolver LocationResolver) *Geolocator {
	if resolver == nil {
		resolver = NewFreeIPAPIClient("", 0)
	}
	return &Geolocator{resolver: resolver}
}

// Locate parses rawIP and delegates to the resolver. Every failure is
// wrapped into ErrLookup.
func (g *Geolocator) Locate(ctx context.Context, rawIP string) (Location, error) {
	ip, err := ParseIPAddress(rawIP)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %w", ErrLookup, err)
	}

	loc, err := g.resolver.Lookup(ctx, ip)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %w", ErrLookup, err)
	}
	return loc, nil
}
