package routelink

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

// RouteGraphCache owns the lifecycle of built route graphs: construct on
// miss, keyed by (service_no, direction), no eviction. Construction for a
// key is serialized by the cache; cached graphs are immutable and safe to
// share across concurrent readers. Pass the cache by handle into request
// handling instead of holding process-wide state.
type RouteGraphCache struct {
	mu     sync.Mutex
	build  func(serviceNo string, direction int) (*RouteLinkGraph, error)
	graphs map[string]*RouteLinkGraph
}

// NewRouteGraphCache prepares a cache constructing graphs via given build
// function on miss
func NewRouteGraphCache(build func(serviceNo string, direction int) (*RouteLinkGraph, error)) *RouteGraphCache {
	return &RouteGraphCache{
		build:  build,
		graphs: make(map[string]*RouteLinkGraph),
	}
}

func cacheKey(serviceNo string, direction int) string {
	return fmt.Sprintf("%s_%d", serviceNo, direction)
}

// Get returns the cached graph for given service and direction, building it
// on first access. Build failures are not cached: the next Get retries.
func (cache *RouteGraphCache) Get(serviceNo string, direction int) (*RouteLinkGraph, error) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	key := cacheKey(serviceNo, direction)
	if graph, ok := cache.graphs[key]; ok {
		return graph, nil
	}
	graph, err := cache.build(serviceNo, direction)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't build route graph for service %s direction %d", serviceNo, direction)
	}
	cache.graphs[key] = graph
	return graph, nil
}

// Has reports whether a graph for given key is already built
func (cache *RouteGraphCache) Has(serviceNo string, direction int) bool {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	_, ok := cache.graphs[cacheKey(serviceNo, direction)]
	return ok
}

// Len returns number of cached graphs
func (cache *RouteGraphCache) Len() int {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	return len(cache.graphs)
}
