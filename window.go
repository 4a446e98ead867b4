package routelink

// DefaultLookaheadLinks is the number of upcoming links collected into an
// analysis window
const DefaultLookaheadLinks = 3

// AnalysisWindow is the bounded set of links examined for a single
// prediction cycle: the current link, up to K next links, the target link
// and the target's inbound/outbound neighbors. Deduplicated by link
// identifier. Ephemeral: derived per request, never cached.
type AnalysisWindow struct {
	current   *RouteLinkNode
	target    *RouteLinkNode
	nextLinks []*RouteLinkNode
	links     []*RouteLinkNode
	seen      map[LinkID]struct{}
}

func (window *AnalysisWindow) add(node *RouteLinkNode) {
	if node == nil {
		return
	}
	if _, ok := window.seen[node.ID()]; ok {
		return
	}
	window.seen[node.ID()] = struct{}{}
	window.links = append(window.links, node)
}

// ExpandAnalysisWindow walks forward from the current node up to lookahead
// steps and assembles the analysis window. The target link is the first next
// link when any exist, otherwise the current link itself. Neighbor ids with
// no matching node in the graph are silently dropped.
func ExpandAnalysisWindow(current *RouteLinkNode, graph *RouteLinkGraph, lookahead int) *AnalysisWindow {
	if lookahead < 0 {
		lookahead = DefaultLookaheadLinks
	}
	window := &AnalysisWindow{
		current: current,
		seen:    make(map[LinkID]struct{}),
	}
	window.add(current)

	for i := 1; i <= lookahead; i++ {
		next, ok := graph.NodeAt(current.Order() + i)
		if !ok {
			break
		}
		window.nextLinks = append(window.nextLinks, next)
		window.add(next)
	}

	window.target = current
	if len(window.nextLinks) > 0 {
		window.target = window.nextLinks[0]
	}

	for _, id := range window.target.InboundIDs() {
		if node, ok := graph.Node(id); ok {
			window.add(node)
		}
	}
	for _, id := range window.target.OutboundIDs() {
		if node, ok := graph.Node(id); ok {
			window.add(node)
		}
	}
	return window
}

// Current returns the link the bus currently occupies
func (window *AnalysisWindow) Current() *RouteLinkNode {
	return window.current
}

// Target returns the link the feature sequence is built to predict for: the
// first upcoming link, or the current link at the route's end
func (window *AnalysisWindow) Target() *RouteLinkNode {
	return window.target
}

// NextLinks returns the collected upcoming links in route order. May hold
// fewer entries than the lookahead when the route ends first.
func (window *AnalysisWindow) NextLinks() []*RouteLinkNode {
	return window.nextLinks
}

// Links returns every window member in insertion order
func (window *AnalysisWindow) Links() []*RouteLinkNode {
	return window.links
}

// LinkIDs returns identifiers of every window member, insertion order
func (window *AnalysisWindow) LinkIDs() []LinkID {
	ids := make([]LinkID, len(window.links))
	for i, node := range window.links {
		ids[i] = node.ID()
	}
	return ids
}

// Contains reports whether given link identifier is part of the window
func (window *AnalysisWindow) Contains(id LinkID) bool {
	_, ok := window.seen[id]
	return ok
}
