package routelink

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	earthRadiusMeters = 6371000.0
	pi180             = math.Pi / 180.0
	pi180Rev          = 180.0 / math.Pi
)

// GeoPoint representation of point on Earth (WGS84 degrees)
type GeoPoint struct {
	Lat float64
	Lon float64
}

// String returns pretty printed value for GeoPoint
func (gp GeoPoint) String() string {
	return fmt.Sprintf("Lon: %f | Lat: %f", gp.Lon, gp.Lat)
}

func (gp GeoPoint) point() orb.Point {
	return orb.Point{gp.Lon, gp.Lat}
}

// degreesToRadians deg = r * pi / 180
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// radiansTodegrees r = deg * 180 / pi
func radiansTodegrees(d float64) float64 {
	return d * pi180Rev
}

// greatCircleDistanceMeters returns distance between two geo-points (meters)
func greatCircleDistanceMeters(p, q GeoPoint) float64 {
	lat1 := degreesToRadians(p.Lat)
	lon1 := degreesToRadians(p.Lon)
	lat2 := degreesToRadians(q.Lat)
	lon2 := degreesToRadians(q.Lon)
	diffLat := lat2 - lat1
	diffLon := lon2 - lon1
	a := math.Pow(math.Sin(diffLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(diffLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return c * earthRadiusMeters
}

// angularDistanceToSegment returns distance between a point and a segment in
// the unprojected coordinate space, i.e. plain degrees (Lon == X, Lat == Y).
// This is the ranking convention used for matching a GPS fix against route
// links; its output must not be compared against meter thresholds.
func angularDistanceToSegment(pt GeoPoint, seg orb.LineString) float64 {
	return planar.DistanceFrom(seg, pt.point())
}

// metricDistanceToSegmentMeters returns distance (meters) between a point and
// a segment using an equirectangular projection around the query latitude.
// Accurate at city scale only; this is the convention for incident and
// weather proximity thresholds.
func metricDistanceToSegmentMeters(pt, a, b GeoPoint) float64 {
	phi := degreesToRadians(pt.Lat)
	cosPhi := math.Cos(phi)

	px, py := degreesToRadians(pt.Lon)*cosPhi, degreesToRadians(pt.Lat)
	ax, ay := degreesToRadians(a.Lon)*cosPhi, degreesToRadians(a.Lat)
	bx, by := degreesToRadians(b.Lon)*cosPhi, degreesToRadians(b.Lat)

	dx := bx - ax
	dy := by - ay
	if dx == 0 && dy == 0 {
		// Segment is a point
		return greatCircleDistanceMeters(pt, a)
	}

	t := ((px-ax)*dx + (py-ay)*dy) / (dx*dx + dy*dy)
	t = math.Max(0.0, math.Min(1.0, t))
	projX := ax + t*dx
	projY := ay + t*dy

	projected := GeoPoint{
		Lon: radiansTodegrees(projX / cosPhi),
		Lat: radiansTodegrees(projY),
	}
	return greatCircleDistanceMeters(pt, projected)
}

// middlePointSegment returns arithmetic mean of segment endpoints. Link
// segments are short enough that the planar midpoint is indistinguishable
// from the spherical one.
func middlePointSegment(p, q GeoPoint) GeoPoint {
	return GeoPoint{
		Lat: (p.Lat + q.Lat) / 2.0,
		Lon: (p.Lon + q.Lon) / 2.0,
	}
}

// Check if two segments intersect and returns intersection Point
// p1, p2 - first segment
// p3, p4 - second segment
// Note: Euclidean space
func intersect(p1, p2, p3, p4 orb.Point) (orb.Point, error) {
	a1 := p2[1] - p1[1]
	b1 := p1[0] - p2[0]
	c1 := a1*p1[0] + b1*p1[1]
	a2 := p4[1] - p3[1]
	b2 := p3[0] - p4[0]
	c2 := a2*p3[0] + b2*p3[1]

	det := a1*b2 - a2*b1
	if det == 0 {
		return orb.Point{}, fmt.Errorf("The lines are parallel")
	}

	x := (b2*c1 - b1*c2) / det
	y := (a1*c2 - a2*c1) / det
	return orb.Point{x, y}, nil
}

func crossProduct(o, a, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

func withinBounds(a, b, pt orb.Point) bool {
	return math.Min(a[0], b[0]) <= pt[0] && pt[0] <= math.Max(a[0], b[0]) &&
		math.Min(a[1], b[1]) <= pt[1] && pt[1] <= math.Max(a[1], b[1])
}

// segmentsIntersect reports whether segments (p1,p2) and (p3,p4) touch or
// cross each other. Euclidean space.
func segmentsIntersect(p1, p2, p3, p4 orb.Point) bool {
	d1 := crossProduct(p3, p4, p1)
	d2 := crossProduct(p3, p4, p2)
	d3 := crossProduct(p1, p2, p3)
	d4 := crossProduct(p1, p2, p4)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && withinBounds(p3, p4, p1) {
		return true
	}
	if d2 == 0 && withinBounds(p3, p4, p2) {
		return true
	}
	if d3 == 0 && withinBounds(p1, p2, p3) {
		return true
	}
	if d4 == 0 && withinBounds(p1, p2, p4) {
		return true
	}
	return false
}

// offsetCurve offsets given line perpendicularly by given distance. Positive
// distance offsets to the left of travel direction, negative to the right.
//
// Note: consecutive duplicate points must be removed beforehand
func offsetCurve(line orb.LineString, distance float64) orb.LineString {
	var result orb.LineString
	var segments [][2]orb.Point

	for i := 1; i < len(line); i++ {
		p1 := line[i-1]
		p2 := line[i]

		vec := [2]float64{p2[0] - p1[0], p2[1] - p1[1]}
		vecLen := math.Sqrt(vec[0]*vec[0] + vec[1]*vec[1])
		vec = [2]float64{vec[0] / vecLen, vec[1] / vecLen}

		// Rotate vector by 90 degrees, then scale by the distance
		offset := [2]float64{-vec[1] * distance, vec[0] * distance}

		op1 := orb.Point{p1[0] + offset[0], p1[1] + offset[1]}
		op2 := orb.Point{p2[0] + offset[0], p2[1] + offset[1]}
		segments = append(segments, [2]orb.Point{op1, op2})
	}

	result = append(result, segments[0][0])
	for i := 1; i < len(segments); i++ {
		seg1 := segments[i-1]
		seg2 := segments[i]
		intersection, err := intersect(seg1[0], seg1[1], seg2[0], seg2[1])
		if err != nil {
			continue
		}
		result = append(result, intersection)
	}
	result = append(result, segments[len(segments)-1][1])
	return result
}

// projectAlongLine projects a point onto a polyline and returns the distance
// from the line start to the projection together with the perpendicular
// distance to the line. Euclidean space.
func projectAlongLine(line orb.LineString, pt orb.Point) (along float64, perpendicular float64) {
	bestAlong := 0.0
	bestDist := math.Inf(1)
	traversed := 0.0

	for i := 1; i < len(line); i++ {
		a := line[i-1]
		b := line[i]
		dx := b[0] - a[0]
		dy := b[1] - a[1]
		segLen := math.Sqrt(dx*dx + dy*dy)
		if segLen == 0 {
			continue
		}

		t := ((pt[0]-a[0])*dx + (pt[1]-a[1])*dy) / (segLen * segLen)
		t = math.Max(0.0, math.Min(1.0, t))
		projX := a[0] + t*dx
		projY := a[1] + t*dy
		dist := math.Sqrt((pt[0]-projX)*(pt[0]-projX) + (pt[1]-projY)*(pt[1]-projY))

		if dist < bestDist {
			bestDist = dist
			bestAlong = traversed + t*segLen
		}
		traversed += segLen
	}
	return bestAlong, bestDist
}

// dedupePoints drops consecutive duplicates from given line. Returns new slice
func dedupePoints(pts []GeoPoint) []GeoPoint {
	output := make([]GeoPoint, 0, len(pts))
	for i, pt := range pts {
		if i > 0 && pt == pts[i-1] {
			continue
		}
		output = append(output, pt)
	}
	return output
}
