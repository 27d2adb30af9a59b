package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/saferoute-in/saferoute-go/internal/models"
)

// OverpassClient counts OSM points of interest through the Overpass API
// using an `out count` query. Lookups are memoized per rounded coordinate
// so a heatmap burst issues at most a handful of upstream requests.
type OverpassClient struct {
	url    string
	client *http.Client
	memo   *memoCache
}

func NewOverpassClient(url string, memoTTL time.Duration) *OverpassClient {
	return &OverpassClient{
		url: url,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		memo: newMemoCache(memoTTL),
	}
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Tags overpassCountTags `json:"tags"`
}

type overpassCountTags struct {
	Total string `json:"total"`
}

func (o *OverpassClient) CountNearby(ctx context.Context, c models.Coordinate, radiusMeters int) (int, error) {
	key := fmt.Sprintf("%.3f,%.3f,%d", c.Latitude, c.Longitude, radiusMeters)
	if count, ok := o.memo.get(key); ok {
		return count, nil
	}

	query := buildPOIQuery(c, radiusMeters)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.url, strings.NewReader(query))
	if err != nil {
		return 0, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("error while doing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d - status: %s", resp.StatusCode, resp.Status)
	}

	var data overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, fmt.Errorf("error decoding resp.Body: %w", err)
	}

	if len(data.Elements) == 0 {
		return 0, fmt.Errorf("empty overpass count response")
	}

	var count int
	if _, err := fmt.Sscanf(data.Elements[0].Tags.Total, "%d", &count); err != nil {
		return 0, fmt.Errorf("error parsing overpass total %q: %w", data.Elements[0].Tags.Total, err)
	}

	o.memo.put(key, count)
	return count, nil
}

func buildPOIQuery(c models.Coordinate, radiusMeters int) string {
	var b strings.Builder
	b.WriteString("[out:json];(")
	for _, tag := range []string{"amenity", "shop", "tourism"} {
		for _, obj := range []string{"node", "way", "relation"} {
			fmt.Fprintf(&b, "%s(around:%d,%f,%f)[%s];", obj, radiusMeters, c.Latitude, c.Longitude, tag)
		}
	}
	b.WriteString(");out count;")
	return b.String()
}
