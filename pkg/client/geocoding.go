package client

import (
	"context"
	"fmt"
	"net/url"

	"funweather/internal/models"
	"go.uber.org/zap"
)

// GeocodingClient queries the Open-Meteo geocoding API for free-text
// city searches. Results are raw: the search ranker owns filtering,
// deduplication, and ordering.
type GeocodingClient struct {
	*BaseClient
	baseURL string
}

type geocodingResponse struct {
	Results []struct {
		Name        string  `json:"name"`
		Admin1      string  `json:"admin1"`
		Country     string  `json:"country"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		FeatureCode string  `json:"feature_code"`
	} `json:"results"`
}

func NewGeocodingClient(config ClientConfig, logger *zap.Logger) *GeocodingClient {
	return &GeocodingClient{
		BaseClient: NewBaseClient("openmeteo-geocoding", config, logger),
		baseURL:    "https://geocoding-api.open-meteo.com/v1",
	}
}

func (c *GeocodingClient) SetBaseURL(url string) {
	c.baseURL = url
}

// Search returns up to count raw places matching the query in the
// requested language.
func (c *GeocodingClient) Search(ctx context.Context, query, language string, count int) ([]models.GeoPlace, error) {
	u := fmt.Sprintf("%s/search?name=%s&count=%d&language=%s&format=json",
		c.baseURL, url.QueryEscape(query), count, url.QueryEscape(language))

	var resp geocodingResponse
	if err := c.GetJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("failed to search cities: %w", err)
	}

	places := make([]models.GeoPlace, 0, len(resp.Results))
	for _, r := range resp.Results {
		places = append(places, models.GeoPlace{
			Name:        r.Name,
			Region:      r.Admin1,
			Country:     r.Country,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
			FeatureCode: r.FeatureCode,
		})
	}

	return places, nil
}
