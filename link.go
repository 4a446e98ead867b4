package routelink

import (
	"strconv"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

/* Static link catalog stuff */

type LinkID string

// ErrNoGeometry is returned when a link record has missing or non-numeric
// coordinate fields. Callers skip such links instead of failing the whole
// operation.
var ErrNoGeometry = errors.New("link has no valid geometry")

// RoadLink is a static atomic road segment: the unit of route matching and
// speed observation. Coordinate fields keep the string form the catalog feed
// ships them in; parsing happens on access so malformed records surface as
// ErrNoGeometry rather than load failures. Never mutated after load.
type RoadLink struct {
	ID           LinkID `json:"LinkID"`
	RoadName     string `json:"RoadName"`
	RoadCategory string `json:"RoadCategory"`
	StartLat     string `json:"StartLat"`
	StartLon     string `json:"StartLon"`
	EndLat       string `json:"EndLat"`
	EndLon       string `json:"EndLon"`
}

func parseCoordinate(value string) (float64, error) {
	if value == "" {
		return 0, errors.Wrap(ErrNoGeometry, "empty coordinate")
	}
	coord, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrNoGeometry, "coordinate '%s' is not numeric", value)
	}
	return coord, nil
}

// StartPoint returns link's start coordinate
func (link *RoadLink) StartPoint() (GeoPoint, error) {
	lat, err := parseCoordinate(link.StartLat)
	if err != nil {
		return GeoPoint{}, err
	}
	lon, err := parseCoordinate(link.StartLon)
	if err != nil {
		return GeoPoint{}, err
	}
	return GeoPoint{Lat: lat, Lon: lon}, nil
}

// EndPoint returns link's end coordinate
func (link *RoadLink) EndPoint() (GeoPoint, error) {
	lat, err := parseCoordinate(link.EndLat)
	if err != nil {
		return GeoPoint{}, err
	}
	lon, err := parseCoordinate(link.EndLon)
	if err != nil {
		return GeoPoint{}, err
	}
	return GeoPoint{Lat: lat, Lon: lon}, nil
}

// Geometry builds the two-point segment for given link. Returns ErrNoGeometry
// when any coordinate is missing or non-numeric.
func (link *RoadLink) Geometry() (orb.LineString, error) {
	start, err := link.StartPoint()
	if err != nil {
		return nil, err
	}
	end, err := link.EndPoint()
	if err != nil {
		return nil, err
	}
	return orb.LineString{start.point(), end.point()}, nil
}

// Midpoint returns mean of link's endpoints
func (link *RoadLink) Midpoint() (GeoPoint, error) {
	start, err := link.StartPoint()
	if err != nil {
		return GeoPoint{}, err
	}
	end, err := link.EndPoint()
	if err != nil {
		return GeoPoint{}, err
	}
	return middlePointSegment(start, end), nil
}
