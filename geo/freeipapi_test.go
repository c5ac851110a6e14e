package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeIPAPIClientLookup(t *testing.T) {
	ip, err := ParseIPAddress("187.190.76.70")
	require.NoError(t, err)

	t.Run("decodes a successful response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/187.190.76.70", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"countryName":"Mexico","cityName":"Mexico City","latitude":19.43,"longitude":-99.13}`))
		}))
		defer srv.Close()

		client := NewFreeIPAPIClient(srv.URL, time.Second)
		loc, err := client.Lookup(context.Background(), ip)
		require.NoError(t, err)
		assert.Equal(t, Location{Country: "Mexico", City: "Mexico City", Latitude: 19.43, Longitude: -99.13}, loc)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := NewFreeIPAPIClient(srv.URL, time.Second)
		_, err := client.Lookup(context.Background(), ip)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("undecodable body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer srv.Close()

		client := NewFreeIPAPIClient(srv.URL, time.Second)
		_, err := client.Lookup(context.Background(), ip)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid response data")
	})

	t.Run("unreachable server is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close() // shut down before the call

		client := NewFreeIPAPIClient(srv.URL, time.Second)
		_, err := client.Lookup(context.Background(), ip)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch geolocation data")
	})

	t.Run("defaults apply when unconfigured", func(t *testing.T) {
		client := NewFreeIPAPIClient("", 0)
		assert.Equal(t, DefaultBaseURL, client.baseURL)
		assert.Equal(t, defaultTimeout, client.client.Timeout)
	})
}
