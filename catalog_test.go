package routelink

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLinksJSON(t *testing.T) {
	content := `[
		{"LinkID": "103000000", "RoadName": "PUNGGOL ROAD", "RoadCategory": "B", "StartLat": "1.3500", "StartLon": "103.8000", "EndLat": "1.3500", "EndLon": "103.8009"},
		{"LinkID": "103000001", "RoadName": "PUNGGOL ROAD", "RoadCategory": "B", "StartLat": "1.3500", "StartLon": "103.8009", "EndLat": "1.3500", "EndLon": "103.8018"}
	]`
	path := filepath.Join(t.TempDir(), "links.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	links, err := LoadLinksJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(links) != 2 {
		t.Fatalf("Catalog must hold 2 links, but got %d", len(links))
	}
	if links[0].ID != "103000000" {
		t.Errorf("First link id must be 103000000, but got %s", links[0].ID)
	}
	start, err := links[0].StartPoint()
	if err != nil {
		t.Fatal(err)
	}
	if start.Lat != 1.3500 || start.Lon != 103.8000 {
		t.Errorf("First link start must be (1.3500, 103.8000), but got %v", start)
	}
}

func TestLoadLinksJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLinksJSON(path); err == nil {
		t.Errorf("Empty catalog must fail")
	}
	if _, err := LoadLinksJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("Missing catalog file must fail")
	}
}

func TestLinkPositionIndex(t *testing.T) {
	links := []*RoadLink{
		{ID: "A"},
		{ID: ""},
		{ID: "B"},
		{ID: "A"}, // duplicate keeps the first position
		{ID: "C"},
	}
	index := LinkPositionIndex(links)
	if len(index) != 3 {
		t.Fatalf("Index must hold 3 entries, but got %d", len(index))
	}
	correctness := map[LinkID]int{"A": 0, "B": 2, "C": 4}
	for id, want := range correctness {
		if got := index[id]; got != want {
			t.Errorf("Position of %s must be %d, but got %d", id, want, got)
		}
	}
}
