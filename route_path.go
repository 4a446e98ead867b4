package routelink

import (
	"sort"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// RouteStop is one row of a bus service's stop sequence. Rows without
// coordinates are allowed and skipped during path construction.
type RouteStop struct {
	StopSequence int     `json:"StopSequence"`
	Latitude     float64 `json:"Latitude"`
	Longitude    float64 `json:"Longitude"`
	Description  string  `json:"Description"`
	RoadName     string  `json:"RoadName"`
}

// PathFromStops builds an ordered route path from a stop sequence. Stops with
// missing (zero) coordinates are skipped; fewer than 2 usable coordinates
// yields ErrRouteNotFound.
func PathFromStops(stops []RouteStop) ([]GeoPoint, error) {
	ordered := make([]RouteStop, len(stops))
	copy(ordered, stops)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StopSequence < ordered[j].StopSequence
	})

	path := make([]GeoPoint, 0, len(ordered))
	for _, stop := range ordered {
		if stop.Latitude == 0 && stop.Longitude == 0 {
			continue
		}
		path = append(path, GeoPoint{Lat: stop.Latitude, Lon: stop.Longitude})
	}
	if len(path) < 2 {
		return nil, errors.Wrapf(ErrRouteNotFound, "stop sequence has %d usable coordinates", len(path))
	}
	return path, nil
}

// PathFromGeoJSON decodes a route path from GeoJSON data holding a LineString
// geometry or a feature wrapping one
func PathFromGeoJSON(data []byte) ([]GeoPoint, error) {
	coords, err := lineStringCoordinates(data)
	if err != nil {
		return nil, err
	}
	path := make([]GeoPoint, 0, len(coords))
	for _, coord := range coords {
		if len(coord) < 2 {
			continue
		}
		path = append(path, GeoPoint{Lon: coord[0], Lat: coord[1]})
	}
	if len(path) < 2 {
		return nil, errors.Wrapf(ErrRouteNotFound, "path geometry has %d usable points", len(path))
	}
	return path, nil
}

func lineStringCoordinates(data []byte) ([][]float64, error) {
	if geometry, err := geojson.UnmarshalGeometry(data); err == nil {
		if !geometry.IsLineString() {
			return nil, errors.Errorf("Expected LineString geometry, got '%s'", geometry.Type)
		}
		return geometry.LineString, nil
	}
	feature, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse route path GeoJSON")
	}
	if feature.Geometry == nil || !feature.Geometry.IsLineString() {
		return nil, errors.New("Feature does not carry a LineString geometry")
	}
	return feature.Geometry.LineString, nil
}
