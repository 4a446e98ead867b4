package routelink

import (
	"fmt"
	"sort"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// DefaultBufferMeters is the route corridor tolerance and the endpoint
// adjacency tolerance
const DefaultBufferMeters = 5.0

// ErrRouteNotFound is returned when a route path is degenerate or no catalog
// link falls within the corridor. Surfaced as a sentinel so callers can map
// it to a domain-appropriate response.
var ErrRouteNotFound = errors.New("route not found")

// GraphBuilder matches a static link catalog against route paths and produces
// ordered, adjacency-annotated route link graphs
type GraphBuilder struct {
	catalog      []*RoadLink
	bufferMeters float64
	verbose      bool
}

// NewGraphBuilder prepares a builder over given catalog
func NewGraphBuilder(catalog []*RoadLink, options ...func(*GraphBuilder)) *GraphBuilder {
	builder := &GraphBuilder{
		catalog:      catalog,
		bufferMeters: DefaultBufferMeters,
	}
	for _, option := range options {
		option(builder)
	}
	return builder
}

// WithBufferMeters overrides the corridor and adjacency tolerance
func WithBufferMeters(bufferMeters float64) func(*GraphBuilder) {
	return func(builder *GraphBuilder) {
		builder.bufferMeters = bufferMeters
	}
}

// WithVerbose enables progress output during construction
func WithVerbose(verbose bool) func(*GraphBuilder) {
	return func(builder *GraphBuilder) {
		builder.verbose = verbose
	}
}

// BufferMeters returns the configured tolerance
func (builder *GraphBuilder) BufferMeters() float64 {
	return builder.bufferMeters
}

type routeMember struct {
	link       *RoadLink
	geom       orb.LineString
	start      GeoPoint
	end        GeoPoint
	alongRoute float64
}

// Build constructs the route link graph for given service and direction from
// an ordered route path (WGS84). Candidate links are selected by intersecting
// their segments with a corridor buffered around the path, ordered by the
// along-path distance of their projected midpoints, then annotated with
// endpoint-proximity adjacency. O(n²) in route member count: fine at route
// scale, never apply catalog-wide.
func (builder *GraphBuilder) Build(serviceNo string, direction int, path []GeoPoint) (*RouteLinkGraph, error) {
	usable := dedupePoints(path)
	if len(usable) < 2 {
		return nil, errors.Wrapf(ErrRouteNotFound, "route path has %d usable points", len(usable))
	}

	pathLine := make(orb.LineString, len(usable))
	for i, pt := range usable {
		pathLine[i] = pt.point()
	}
	pathEuclidean := lineToEuclidean(pathLine)

	st := time.Now()
	corridor := ringToWGS84(bufferLine(pathEuclidean, builder.bufferMeters))

	members := builder.selectMembers(corridor)
	if builder.verbose {
		fmt.Printf("Selected %d of %d candidate links in %v\n", len(members), len(builder.catalog), time.Since(st))
	}
	if len(members) == 0 {
		return nil, errors.Wrap(ErrRouteNotFound, "no links intersect the route corridor")
	}

	// Order members by projecting each link's midpoint onto the route path.
	// Sort is stable: ties keep catalog input order.
	for _, member := range members {
		midpoint := pointToEuclidean(middlePointSegment(member.start, member.end).point())
		along, _ := projectAlongLine(pathEuclidean, midpoint)
		member.alongRoute = along
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].alongRoute < members[j].alongRoute
	})

	graph := &RouteLinkGraph{
		serviceNo: serviceNo,
		direction: direction,
		nodes:     make([]*RouteLinkNode, 0, len(members)),
		index:     make(map[LinkID]*RouteLinkNode, len(members)),
	}
	for order, member := range members {
		node := &RouteLinkNode{
			link:               member.link,
			geom:               member.geom,
			order:              order,
			distanceAlongRoute: member.alongRoute,
			lengthMeters:       geo.LengthHaversign(member.geom),
			inboundIDs:         builder.inboundLinks(member, members),
			outboundIDs:        builder.outboundLinks(member, members),
		}
		if order+1 < len(members) {
			node.nextIDs = []LinkID{members[order+1].link.ID}
		}
		graph.nodes = append(graph.nodes, node)
		graph.index[node.ID()] = node
	}
	if builder.verbose {
		fmt.Printf("Built route graph for service %s direction %d: %d links\n", serviceNo, direction, graph.Len())
	}
	return graph, nil
}

// selectMembers tests each catalog link segment against the corridor ring.
// Links with invalid coordinates are silently excluded.
func (builder *GraphBuilder) selectMembers(corridor orb.Ring) []*routeMember {
	members := []*routeMember{}
	for _, link := range builder.catalog {
		geom, err := link.Geometry()
		if err != nil {
			continue
		}
		if !segmentIntersectsRing(geom[0], geom[1], corridor) {
			continue
		}
		start, _ := link.StartPoint()
		end, _ := link.EndPoint()
		members = append(members, &routeMember{
			link:  link,
			geom:  geom,
			start: start,
			end:   end,
		})
	}
	return members
}

// segmentIntersectsRing reports whether segment (a,b) lies inside or crosses
// the boundary of given closed ring
func segmentIntersectsRing(a, b orb.Point, ring orb.Ring) bool {
	if planar.RingContains(ring, a) || planar.RingContains(ring, b) {
		return true
	}
	for i := 1; i < len(ring); i++ {
		if segmentsIntersect(a, b, ring[i-1], ring[i]) {
			return true
		}
	}
	return false
}

// inboundLinks collects route members whose end point lies within the buffer
// tolerance of given member's start point
func (builder *GraphBuilder) inboundLinks(current *routeMember, members []*routeMember) []LinkID {
	inbound := []LinkID{}
	for _, member := range members {
		if member.link.ID == current.link.ID {
			continue
		}
		if greatCircleDistanceMeters(current.start, member.end) <= builder.bufferMeters {
			inbound = append(inbound, member.link.ID)
		}
	}
	return inbound
}

// outboundLinks collects route members whose start point lies within the
// buffer tolerance of given member's end point
func (builder *GraphBuilder) outboundLinks(current *routeMember, members []*routeMember) []LinkID {
	outbound := []LinkID{}
	for _, member := range members {
		if member.link.ID == current.link.ID {
			continue
		}
		if greatCircleDistanceMeters(current.end, member.start) <= builder.bufferMeters {
			outbound = append(outbound, member.link.ID)
		}
	}
	return outbound
}
