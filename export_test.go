package routelink

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	geojson "github.com/paulmach/go.geojson"
)

func TestExportToCSV(t *testing.T) {
	graph, err := NewGraphBuilder(chainCatalog()).Build("147", 1, chainPath())
	if err != nil {
		t.Fatal(err)
	}

	fname := filepath.Join(t.TempDir(), "route.csv")
	if err := graph.ExportToCSV(fname); err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	reader := csv.NewReader(file)
	reader.Comma = ';'
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != graph.Len()+1 {
		t.Fatalf("CSV must hold header plus %d rows, but got %d", graph.Len(), len(rows))
	}
	if rows[0][0] != "order" || rows[0][1] != "link_id" || rows[0][9] != "geom" {
		t.Errorf("Unexpected CSV header: %v", rows[0])
	}
	if rows[1][1] != "L1" || rows[2][1] != "L2" || rows[3][1] != "L3" {
		t.Errorf("CSV rows must follow route order, but got %v %v %v", rows[1][1], rows[2][1], rows[3][1])
	}
	if !strings.HasPrefix(rows[1][9], "LINESTRING") {
		t.Errorf("Geometry column must be WKT, but got %s", rows[1][9])
	}
}

func TestOrderedLinksGeoJSON(t *testing.T) {
	graph, err := NewGraphBuilder(chainCatalog()).Build("147", 1, chainPath())
	if err != nil {
		t.Fatal(err)
	}

	data, err := OrderedLinksGeoJSON(graph)
	if err != nil {
		t.Fatal(err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != graph.Len() {
		t.Fatalf("Feature collection must hold %d features, but got %d", graph.Len(), len(fc.Features))
	}
	first := fc.Features[0]
	if !first.Geometry.IsLineString() {
		t.Errorf("Features must carry LineString geometries")
	}
	id, err := first.PropertyString("link_id")
	if err != nil || id != "L1" {
		t.Errorf("First feature link_id must be L1, but got %s (%v)", id, err)
	}
}

func TestPrepareWKT(t *testing.T) {
	line := PrepareWKTLinestring([]GeoPoint{{Lat: 1.35, Lon: 103.8}, {Lat: 1.36, Lon: 103.81}})
	want := "LINESTRING(103.800000 1.350000,103.810000 1.360000)"
	if line != want {
		t.Errorf("WKT linestring must be %s, but got %s", want, line)
	}
	pt := PrepareWKTPoint(GeoPoint{Lat: 1.35, Lon: 103.8})
	if pt != "POINT(103.800000 1.350000)" {
		t.Errorf("WKT point must be POINT(103.800000 1.350000), but got %s", pt)
	}
}

func TestPrepareGeoJSON(t *testing.T) {
	line := PrepareGeoJSONLinestring([]GeoPoint{{Lat: 1.35, Lon: 103.8}, {Lat: 1.36, Lon: 103.81}})
	if !strings.Contains(line, "LineString") {
		t.Errorf("Expected LineString geometry, but got %s", line)
	}
	pt := PrepareGeoJSONPoint(GeoPoint{Lat: 1.35, Lon: 103.8})
	if !strings.Contains(pt, "Point") {
		t.Errorf("Expected Point geometry, but got %s", pt)
	}
}
