package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saferoute-in/saferoute-go/internal/models"
)

func TestOpenMeteoClient_Current(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("current_weather") != "true" {
			t.Errorf("expected current_weather=true, got query %s", r.URL.RawQuery)
		}
		if r.URL.Query().Get("latitude") == "" || r.URL.Query().Get("longitude") == "" {
			t.Errorf("expected latitude and longitude, got query %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"current_weather":{"temperature":31.4,"weathercode":63}}`))
	}))
	defer server.Close()

	client := NewOpenMeteoClient(server.URL)
	weather, err := client.Current(context.Background(), models.Coordinate{Latitude: 19.076, Longitude: 72.8777})
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}

	if weather.Temperature != 31.4 {
		t.Errorf("expected temperature 31.4, got %v", weather.Temperature)
	}
	if weather.WeatherCode != 63 {
		t.Errorf("expected weathercode 63, got %d", weather.WeatherCode)
	}
}

func TestOpenMeteoClient_UpstreamErrors(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"current_weather":`))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			client := NewOpenMeteoClient(server.URL)
			if _, err := client.Current(context.Background(), models.Coordinate{Latitude: 19.076, Longitude: 72.8777}); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
