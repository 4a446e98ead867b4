package routelink

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrLinkNotFound is returned when no node with valid geometry can be matched
// against a GPS fix
var ErrLinkNotFound = errors.New("no link matches the GPS fix")

// RankedLink is one entry of the diagnostic shortlist produced by
// RankNearest. Distance is in the angular convention (degrees).
type RankedLink struct {
	Node     *RouteLinkNode
	Distance float64
}

// NearestLink returns the node whose segment is closest to given GPS fix.
// Distances use the angular convention; ties keep first-seen order. Linear
// scan: route sizes are small enough that no spatial index pays off.
func NearestLink(fix GeoPoint, nodes []*RouteLinkNode) (*RouteLinkNode, error) {
	var closest *RouteLinkNode
	minDistance := 0.0
	for _, node := range nodes {
		geom := node.Geometry()
		if len(geom) < 2 {
			continue
		}
		distance := angularDistanceToSegment(fix, geom)
		if closest == nil || distance < minDistance {
			minDistance = distance
			closest = node
		}
	}
	if closest == nil {
		return nil, errors.Wrap(ErrLinkNotFound, "no node has valid geometry")
	}
	return closest, nil
}

// RankNearest returns up to limit nodes closest to given GPS fix, nearest
// first. Diagnostic only: selection is always done by NearestLink and this
// shortlist never influences it.
func RankNearest(fix GeoPoint, nodes []*RouteLinkNode, limit int) []RankedLink {
	ranked := make([]RankedLink, 0, len(nodes))
	for _, node := range nodes {
		geom := node.Geometry()
		if len(geom) < 2 {
			continue
		}
		ranked = append(ranked, RankedLink{
			Node:     node,
			Distance: angularDistanceToSegment(fix, geom),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
