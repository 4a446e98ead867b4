package routelink

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	earthR = 20037508.34
)

func epsg4326To3857(lon, lat float64) (float64, float64) {
	x := lon * earthR / 180
	y := math.Log(math.Tan((90+lat)*math.Pi/360)) / (math.Pi / 180)
	y = y * earthR / 180
	return x, y
}

func epsg3857To4326(x, y float64) (float64, float64) {
	lon := x * 180 / earthR
	lat := math.Atan(math.Exp(y*math.Pi/earthR))*360/math.Pi - 90
	return lon, lat
}

func pointToEuclidean(pt orb.Point) orb.Point {
	euclideanX, euclideanY := epsg4326To3857(pt[0], pt[1])
	return orb.Point{euclideanX, euclideanY}
}

func pointToWGS84(pt orb.Point) orb.Point {
	lon, lat := epsg3857To4326(pt[0], pt[1])
	return orb.Point{lon, lat}
}

func lineToEuclidean(line orb.LineString) orb.LineString {
	newLine := make(orb.LineString, len(line))
	for i, pt := range line {
		newLine[i] = pointToEuclidean(pt)
	}
	return newLine
}

func ringToWGS84(ring orb.Ring) orb.Ring {
	newRing := make(orb.Ring, len(ring))
	for i, pt := range ring {
		newRing[i] = pointToWGS84(pt)
	}
	return newRing
}

// bufferLine builds a closed ring around given line at given perpendicular
// distance (same units as the line coordinates). The ring has flat caps, which
// is enough for a route corridor: links at the very ends still touch it.
//
// Note: panics if number of points in line is less than 2
func bufferLine(line orb.LineString, distance float64) orb.Ring {
	left := offsetCurve(line, distance)
	right := offsetCurve(line, -distance)

	ring := make(orb.Ring, 0, len(left)+len(right)+1)
	ring = append(ring, left...)
	for i := len(right) - 1; i >= 0; i-- {
		ring = append(ring, right[i])
	}
	ring = append(ring, ring[0])
	return ring
}
