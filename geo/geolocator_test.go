package geo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resolverFunc adapts a function to the LocationResolver interface.
type resolverFunc func(ctx context.Context, ip IPAddress) (Location, error)

func (f resolverFunc) Lookup(ctx context.Context, ip IPAddress) (Location, error) {
	return f(ctx, ip)
}

func TestGeolocatorLocate(t *testing.T) {
	t.Run("parses the input and delegates to the resolver", func(t *testing.T) {
		want := Location{Country: "Australia", City: "Sydney", Latitude: -33.86, Longitude: 151.2}
		g := NewGeolocator(resolverFunc(func(_ context.Context, ip IPAddress) (Location, error) {
			assert.Equal(t, "1.1.1.1", ip.String())
			return want, nil
		}))

		got, err := g.Locate(context.Background(), "1.1.1.1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("malformed input surfaces as a lookup error", func(t *testing.T) {
		called := false
		g := NewGeolocator(resolverFunc(func(context.Context, IPAddress) (Location, error) {
			called = true
			return Location{}, nil
		}))

		_, err := g.Locate(context.Background(), "not-an-ip")
		assert.ErrorIs(t, err, ErrLookup)
		assert.ErrorIs(t, err, ErrInvalidIP)
		assert.False(t, called, "resolver must not run on malformed input")
	})

	t.Run("resolver failure surfaces as a lookup error", func(t *testing.T) {
		backend := errors.New("upstream down")
		g := NewGeolocator(resolverFunc(func(context.Context, IPAddress) (Location, error) {
			return Location{}, backend
		}))

		_, err := g.Locate(context.Background(), "8.8.8.8")
		assert.ErrorIs(t, err, ErrLookup)
		assert.ErrorIs(t, err, backend)
	})

	t.Run("nil resolver falls back to the Free IP API client", func(t *testing.T) {
		g := NewGeolocator(nil)
		require.IsType(t, &FreeIPAPIClient{}, g.resolver)
	})
}
