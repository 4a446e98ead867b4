package routelink

import (
	"math"
	"strings"
)

const (
	// DefaultWeatherRadiusMeters bounds how far a weather station may sit
	// from a link midpoint for its reading to count
	DefaultWeatherRadiusMeters = 50.0

	// DefaultIncidentLiveRadiusMeters is the live incident-check threshold.
	// DefaultIncidentOfflineRadiusMeters is the offline correlation one.
	// They are deliberately kept as two independent constants: the asymmetry
	// is inherited behavior, do not unify silently.
	DefaultIncidentLiveRadiusMeters    = 50.0
	DefaultIncidentOfflineRadiusMeters = 100.0
)

// StationReading is a point weather station with a scalar reading (rainfall
// in millimeters)
type StationReading struct {
	ID    string
	Lat   float64
	Lon   float64
	Value float64
}

// Incident is a point traffic incident with its free-text message
type Incident struct {
	Type    string
	Lat     float64
	Lon     float64
	Message string
}

// NearestStationReading returns the reading of the station nearest to the
// link's midpoint, but only when that station lies within radiusMeters
// (boundary inclusive: distance <= radius). A nearest station outside the
// radius yields no reading, not an error; so does a link without geometry.
func NearestStationReading(link *RoadLink, stations []StationReading, radiusMeters float64) (float64, bool) {
	midpoint, err := link.Midpoint()
	if err != nil {
		return 0, false
	}

	bestDistance := math.Inf(1)
	bestValue := 0.0
	found := false
	for _, station := range stations {
		distance := greatCircleDistanceMeters(midpoint, GeoPoint{Lat: station.Lat, Lon: station.Lon})
		if distance < bestDistance {
			bestDistance = distance
			bestValue = station.Value
			found = true
		}
	}
	if !found || bestDistance > radiusMeters {
		return 0, false
	}
	return bestValue, true
}

// LinkHasIncident decides whether any incident affects given link. When the
// link carries a road name, a case-insensitive substring match against the
// incident message wins; otherwise (or when no message matches and the
// incident set is non-empty) it falls back to metric point-to-segment
// distance within thresholdMeters. Links without geometry never match.
func LinkHasIncident(link *RoadLink, incidents []Incident, thresholdMeters float64) bool {
	if len(incidents) == 0 {
		return false
	}

	roadName := strings.ToLower(strings.TrimSpace(link.RoadName))
	if roadName != "" {
		for _, incident := range incidents {
			if strings.Contains(strings.ToLower(incident.Message), roadName) {
				return true
			}
		}
	}

	start, err := link.StartPoint()
	if err != nil {
		return false
	}
	end, err := link.EndPoint()
	if err != nil {
		return false
	}
	for _, incident := range incidents {
		pt := GeoPoint{Lat: incident.Lat, Lon: incident.Lon}
		if metricDistanceToSegmentMeters(pt, start, end) <= thresholdMeters {
			return true
		}
	}
	return false
}

// AnyIncidentNear reports whether any incident affects any of given nodes'
// links within thresholdMeters
func AnyIncidentNear(nodes []*RouteLinkNode, incidents []Incident, thresholdMeters float64) bool {
	for _, node := range nodes {
		if LinkHasIncident(node.Link(), incidents, thresholdMeters) {
			return true
		}
	}
	return false
}

// AnyStationReadingAbove reports whether any of given nodes' links has a
// nearby station (within radiusMeters) reading strictly above minValue. The
// rain check for upcoming links uses this with minValue 0.
func AnyStationReadingAbove(nodes []*RouteLinkNode, stations []StationReading, radiusMeters, minValue float64) bool {
	for _, node := range nodes {
		value, ok := NearestStationReading(node.Link(), stations, radiusMeters)
		if ok && value > minValue {
			return true
		}
	}
	return false
}
