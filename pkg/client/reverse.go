package client

import (
	"context"
	"fmt"

	"funweather/internal/models"
	"go.uber.org/zap"
)

// ReverseClient resolves coordinates into a city/country label via the
// OpenRouteService reverse-geocoding endpoint (Pelias schema).
type ReverseClient struct {
	*BaseClient
	baseURL string
	apiKey  string
}

type reverseResponse struct {
	Features []struct {
		Properties struct {
			Locality string `json:"locality"`
			Name     string `json:"name"`
			Country  string `json:"country"`
		} `json:"properties"`
	} `json:"features"`
}

func NewReverseClient(apiKey string, config ClientConfig, logger *zap.Logger) *ReverseClient {
	return &ReverseClient{
		BaseClient: NewBaseClient("ors-reverse", config, logger),
		baseURL:    "https://api.openrouteservice.org/geocode",
		apiKey:     apiKey,
	}
}

func (c *ReverseClient) SetBaseURL(url string) {
	c.baseURL = url
}

// ReverseGeocode returns the nearest place for the given coordinates.
func (c *ReverseClient) ReverseGeocode(ctx context.Context, coords models.Coordinates) (models.Place, error) {
	url := fmt.Sprintf("%s/reverse?api_key=%s&point.lat=%.6f&point.lon=%.6f&size=1",
		c.baseURL, c.apiKey, coords.Latitude, coords.Longitude)

	var resp reverseResponse
	if err := c.GetJSON(ctx, url, &resp); err != nil {
		return models.Place{}, fmt.Errorf("reverse geocode failed: %w", err)
	}

	if len(resp.Features) == 0 {
		return models.Place{}, fmt.Errorf("no reverse geocode results for %.4f,%.4f",
			coords.Latitude, coords.Longitude)
	}

	props := resp.Features[0].Properties
	city := props.Locality
	if city == "" {
		city = props.Name
	}

	return models.Place{City: city, Country: props.Country}, nil
}
