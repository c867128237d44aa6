// README: Google Maps geocoding fallback for generated locations.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Geocoder resolves place names to coordinates via the Google Maps Geocoding API.
// It implements trip.Geocoder.
type Geocoder struct {
	client *maps.Client
}

// NewGeocoder creates a Geocoder. apiKey should be provided from environment variables.
func NewGeocoder(apiKey string) (*Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Maps client: %w", err)
	}
	return &Geocoder{client: client}, nil
}

// Locate returns the coordinates of the first geocoding result for name.
func (g *Geocoder) Locate(ctx context.Context, name string) (float64, float64, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: name})
	if err != nil {
		return 0, 0, fmt.Errorf("geocode %q: %w", name, err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("geocode %q: no results", name)
	}
	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}
