package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the Free IP API endpoint; the address is appended
	// as the final path segment.
	DefaultBaseURL = "https://freeipapi.com/api/json"

	defaultTimeout = 10 * time.Second
)

// FreeIPAPIClient resolves locations through freeipapi.com.
type FreeIPAPIClient struct {
	baseURL string
	client  *http.Client
}

// NewFreeIPAPIClient builds a client for the given endpoint. An empty
// baseURL selects DefaultBaseURL, a zero timeout the 10s default.
func NewFreeIPAPIClient(baseURL string, timeout time.Duration) *FreeIPAPIClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &FreeIPAPIClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Lookup fetches the location record for ip. Transport failures,
// non-2xx responses and undecodable bodies are all returned as errors.
func (c *FreeIPAPIClient) Lookup(ctx context.Context, ip IPAddress) (Location, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Location{}, fmt.Errorf("could not build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("failed to fetch geolocation data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Location{}, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var body struct {
		CountryName string  `json:"countryName"`
		CityName    string  `json:"cityName"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Location{}, fmt.Errorf("invalid response data: %w", err)
	}

	return Location{
		Country:   body.CountryName,
		City:      body.CityName,
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
	}, nil
}
