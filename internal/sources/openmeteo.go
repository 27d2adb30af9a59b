package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/saferoute-in/saferoute-go/internal/models"
)

// OpenMeteoClient fetches current weather conditions. Bad weather raises
// the hazard factor.
type OpenMeteoClient struct {
	url    string
	client *http.Client
}

func NewOpenMeteoClient(apiURL string) *OpenMeteoClient {
	return &OpenMeteoClient{
		url: apiURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type openMeteoResponse struct {
	CurrentWeather openMeteoCurrent `json:"current_weather"`
}

type openMeteoCurrent struct {
	Temperature float64 `json:"temperature"`
	WeatherCode int     `json:"weathercode"`
}

func (o *OpenMeteoClient) Current(ctx context.Context, c models.Coordinate) (Weather, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", c.Latitude))
	params.Set("longitude", fmt.Sprintf("%f", c.Longitude))
	params.Set("current_weather", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.url+"?"+params.Encode(), nil)
	if err != nil {
		return Weather{}, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return Weather{}, fmt.Errorf("error while doing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Weather{}, fmt.Errorf("unexpected status code: %d - status: %s", resp.StatusCode, resp.Status)
	}

	var data openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return Weather{}, fmt.Errorf("error decoding resp.Body: %w", err)
	}

	return Weather{
		Temperature: data.CurrentWeather.Temperature,
		WeatherCode: data.CurrentWeather.WeatherCode,
	}, nil
}
