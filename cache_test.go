package routelink

import (
	"testing"

	"github.com/pkg/errors"
)

func TestRouteGraphCacheGet(t *testing.T) {
	builder := NewGraphBuilder(chainCatalog())
	builds := 0
	cache := NewRouteGraphCache(func(serviceNo string, direction int) (*RouteLinkGraph, error) {
		builds++
		return builder.Build(serviceNo, direction, chainPath())
	})

	if cache.Has("147", 1) {
		t.Errorf("Fresh cache must hold nothing")
	}
	first, err := cache.Get("147", 1)
	if err != nil {
		t.Fatal(err)
	}
	second, err := cache.Get("147", 1)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("Repeated Get must return the same graph")
	}
	if builds != 1 {
		t.Errorf("Graph must be built once per key, but got %d builds", builds)
	}
	if !cache.Has("147", 1) {
		t.Errorf("Built graph must be retained")
	}

	// Direction is part of the key
	if _, err := cache.Get("147", 2); err != nil {
		t.Fatal(err)
	}
	if builds != 2 {
		t.Errorf("Distinct direction must build its own graph, but got %d builds", builds)
	}
	if cache.Len() != 2 {
		t.Errorf("Cache must hold 2 graphs, but got %d", cache.Len())
	}
}

func TestRouteGraphCacheRetriesFailures(t *testing.T) {
	builds := 0
	fail := true
	cache := NewRouteGraphCache(func(serviceNo string, direction int) (*RouteLinkGraph, error) {
		builds++
		if fail {
			return nil, errors.Wrap(ErrRouteNotFound, "no path data")
		}
		return NewGraphBuilder(chainCatalog()).Build(serviceNo, direction, chainPath())
	})

	if _, err := cache.Get("963", 1); !errors.Is(err, ErrRouteNotFound) {
		t.Errorf("Build failure must surface the underlying error, but got %v", err)
	}
	if cache.Has("963", 1) {
		t.Errorf("Failed build must not be cached")
	}

	fail = false
	if _, err := cache.Get("963", 1); err != nil {
		t.Fatal(err)
	}
	if builds != 2 {
		t.Errorf("Failed build must be retried on the next Get, but got %d builds", builds)
	}
}
