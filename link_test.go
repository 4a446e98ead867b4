package routelink

import (
	"testing"

	"github.com/pkg/errors"
)

func TestRoadLinkGeometry(t *testing.T) {
	link := &RoadLink{ID: "103000000", RoadName: "PUNGGOL ROAD", StartLat: "1.3500", StartLon: "103.8000", EndLat: "1.3510", EndLon: "103.8010"}
	geom, err := link.Geometry()
	if err != nil {
		t.Fatal(err)
	}
	if len(geom) != 2 {
		t.Fatalf("Link geometry must hold 2 points, but got %d", len(geom))
	}
	if geom[0][0] != 103.8000 || geom[0][1] != 1.3500 {
		t.Errorf("Geometry start must be (103.8000, 1.3500), but got %v", geom[0])
	}

	mid, err := link.Midpoint()
	if err != nil {
		t.Fatal(err)
	}
	if mid.Lat != 1.3505 || mid.Lon != 103.8005 {
		t.Errorf("Midpoint must be (1.3505, 103.8005), but got %v", mid)
	}
}

func TestRoadLinkNoGeometry(t *testing.T) {
	missing := &RoadLink{ID: "X", StartLat: "", StartLon: "103.8000", EndLat: "1.3510", EndLon: "103.8010"}
	if _, err := missing.Geometry(); !errors.Is(err, ErrNoGeometry) {
		t.Errorf("Empty coordinate must yield ErrNoGeometry, but got %v", err)
	}

	malformed := &RoadLink{ID: "Y", StartLat: "abc", StartLon: "103.8000", EndLat: "1.3510", EndLon: "103.8010"}
	if _, err := malformed.StartPoint(); !errors.Is(err, ErrNoGeometry) {
		t.Errorf("Non-numeric coordinate must yield ErrNoGeometry, but got %v", err)
	}
	if _, err := malformed.Midpoint(); !errors.Is(err, ErrNoGeometry) {
		t.Errorf("Midpoint of malformed link must yield ErrNoGeometry, but got %v", err)
	}
}
