package routelink

import (
	"reflect"
	"testing"
)

func TestBandFromSpeed(t *testing.T) {
	correctness := map[float64]int{
		0.0:   0,
		9.9:   0,
		10.0:  1,
		19.9:  1,
		45.0:  4,
		79.9:  7,
		80.0:  8,
		120.0: 8,
	}
	for kmh, want := range correctness {
		if got := bandFromSpeed(kmh); got != want {
			t.Errorf("Band for %f km/h must be %d, but got %d", kmh, want, got)
		}
	}
}

func TestBandValue(t *testing.T) {
	direct := SpeedBandObservation{Band: 6, MinSpeed: 10, MaxSpeed: 20}
	if band, ok := direct.bandValue(); !ok || band != 6 {
		t.Errorf("Direct band must win over speed range, but got %d (%v)", band, ok)
	}
	inferred := SpeedBandObservation{Band: -1, MinSpeed: 40, MaxSpeed: 60}
	if band, ok := inferred.bandValue(); !ok || band != 5 {
		t.Errorf("Band inferred from midpoint 50 km/h must be 5, but got %d (%v)", band, ok)
	}
	absent := SpeedBandObservation{Band: -1, MinSpeed: -1, MaxSpeed: 30}
	if _, ok := absent.bandValue(); ok {
		t.Errorf("Observation without band and without full range must yield no value")
	}
}

func TestBuildSpeedHistoryEmpty(t *testing.T) {
	graph := makeChainGraph(t, 4)
	current, _ := graph.Node("C1")
	window := ExpandAnalysisWindow(current, graph, DefaultLookaheadLinks)

	history := window.SpeedHistory(nil, DefaultMinHistoryLength)
	want := []int{3, 3, 3, 3, 3}
	if !reflect.DeepEqual(history, want) {
		t.Errorf("History with no observations must be %v, but got %v", want, history)
	}
}

func TestBuildSpeedHistorySingleObservation(t *testing.T) {
	graph := makeChainGraph(t, 4)
	current, _ := graph.Node("C1")
	window := ExpandAnalysisWindow(current, graph, DefaultLookaheadLinks)

	observations := map[LinkID]SpeedBandObservation{
		"C2": {Band: 6, MinSpeed: -1, MaxSpeed: -1},
	}
	history := window.SpeedHistory(observations, DefaultMinHistoryLength)
	want := []int{6, 6, 6, 6, 6}
	if !reflect.DeepEqual(history, want) {
		t.Errorf("Single-observation history must pad with the last value to %v, but got %v", want, history)
	}
}

func TestBuildSpeedHistoryPriorityOrder(t *testing.T) {
	graph := makeChainGraph(t, 6)
	current, _ := graph.Node("C2")
	window := ExpandAnalysisWindow(current, graph, DefaultLookaheadLinks)
	// Candidates in priority order: target C3's inbound C2 first, then the
	// current link C2 (duplicate, dropped), target C3, next links C4 and C5,
	// target's outbound C4 (duplicate, dropped).
	observations := map[LinkID]SpeedBandObservation{
		"C2": {Band: 1, MinSpeed: -1, MaxSpeed: -1},
		"C3": {Band: 2, MinSpeed: -1, MaxSpeed: -1},
		"C4": {Band: 5, MinSpeed: -1, MaxSpeed: -1},
		"C5": {Band: 7, MinSpeed: -1, MaxSpeed: -1},
	}
	history := window.SpeedHistory(observations, DefaultMinHistoryLength)
	want := []int{1, 2, 5, 7, 7}
	if !reflect.DeepEqual(history, want) {
		t.Errorf("History must follow candidate priority, but got %v (want %v)", history, want)
	}
}

func TestBuildSpeedHistorySuppressesAdjacentDuplicates(t *testing.T) {
	graph := makeChainGraph(t, 6)
	current, _ := graph.Node("C2")
	window := ExpandAnalysisWindow(current, graph, DefaultLookaheadLinks)

	observations := map[LinkID]SpeedBandObservation{
		"C2": {Band: 2, MinSpeed: -1, MaxSpeed: -1},
		"C3": {Band: 2, MinSpeed: -1, MaxSpeed: -1},
		"C4": {Band: 4, MinSpeed: -1, MaxSpeed: -1},
		"C5": {Band: 4, MinSpeed: -1, MaxSpeed: -1},
	}
	history := window.SpeedHistory(observations, DefaultMinHistoryLength)
	want := []int{2, 4, 4, 4, 4}
	if !reflect.DeepEqual(history, want) {
		t.Errorf("Repeated neighbor bands must collapse then pad, but got %v (want %v)", history, want)
	}
}

func TestBuildSpeedHistoryInferredBands(t *testing.T) {
	graph := makeChainGraph(t, 4)
	current, _ := graph.Node("C1")
	window := ExpandAnalysisWindow(current, graph, DefaultLookaheadLinks)

	observations := map[LinkID]SpeedBandObservation{
		"C1": {Band: -1, MinSpeed: 0, MaxSpeed: 8},    // midpoint 4 -> band 0
		"C2": {Band: -1, MinSpeed: 70, MaxSpeed: 110}, // midpoint 90 -> band 8
	}
	history := window.SpeedHistory(observations, DefaultMinHistoryLength)
	want := []int{0, 8, 8, 8, 8}
	if !reflect.DeepEqual(history, want) {
		t.Errorf("Bands inferred from speed ranges must be %v, but got %v", want, history)
	}
}
