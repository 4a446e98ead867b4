package routelink

import (
	"github.com/paulmach/orb"
)

/* Per-route link graph stuff */

// RouteLinkNode wraps a static RoadLink with route-specific attributes for
// one (service, direction). Immutable after graph construction.
type RouteLinkNode struct {
	link               *RoadLink
	geom               orb.LineString
	order              int
	distanceAlongRoute float64
	lengthMeters       float64
	inboundIDs         []LinkID
	outboundIDs        []LinkID
	nextIDs            []LinkID
}

// Link returns the underlying static road link
func (node *RouteLinkNode) Link() *RoadLink {
	return node.link
}

// ID returns the underlying link identifier
func (node *RouteLinkNode) ID() LinkID {
	return node.link.ID
}

// Geometry returns the link segment. Shared, do not mutate
func (node *RouteLinkNode) Geometry() orb.LineString {
	return node.geom
}

// Order returns 0-based position of the link along the route
func (node *RouteLinkNode) Order() int {
	return node.order
}

// DistanceAlongRoute returns projected linear distance (meters) from route
// start to the link's midpoint projection
func (node *RouteLinkNode) DistanceAlongRoute() float64 {
	return node.distanceAlongRoute
}

// LengthMeters returns metric length of the link segment
func (node *RouteLinkNode) LengthMeters() float64 {
	return node.lengthMeters
}

// InboundIDs returns links whose end point lies within tolerance of this
// link's start point. Computed independently per node: the same link can be
// inbound to more than one node when geometry is ambiguous.
func (node *RouteLinkNode) InboundIDs() []LinkID {
	return node.inboundIDs
}

// OutboundIDs returns links whose start point lies within tolerance of this
// link's end point
func (node *RouteLinkNode) OutboundIDs() []LinkID {
	return node.outboundIDs
}

// NextIDs returns the single link at order+1, empty at the route's end
func (node *RouteLinkNode) NextIDs() []LinkID {
	return node.nextIDs
}

// RouteLinkGraph is the ordered, adjacency-annotated structure of links
// belonging to one bus service and direction. Built once, read-only after
// construction: safe to share across concurrent requests without locking.
type RouteLinkGraph struct {
	serviceNo string
	direction int
	nodes     []*RouteLinkNode
	index     map[LinkID]*RouteLinkNode
}

// ServiceNo returns the bus service number the graph was built for
func (graph *RouteLinkGraph) ServiceNo() string {
	return graph.serviceNo
}

// Direction returns the route direction the graph was built for
func (graph *RouteLinkGraph) Direction() int {
	return graph.direction
}

// Nodes returns route members in order. Shared, do not mutate
func (graph *RouteLinkGraph) Nodes() []*RouteLinkNode {
	return graph.nodes
}

// Node returns the node for given link identifier
func (graph *RouteLinkGraph) Node(id LinkID) (*RouteLinkNode, bool) {
	node, ok := graph.index[id]
	return node, ok
}

// NodeAt returns the node at given order index
func (graph *RouteLinkGraph) NodeAt(order int) (*RouteLinkNode, bool) {
	if order < 0 || order >= len(graph.nodes) {
		return nil, false
	}
	return graph.nodes[order], true
}

// Len returns number of route members
func (graph *RouteLinkGraph) Len() int {
	return len(graph.nodes)
}
