package routelink

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
)

// PrepareGeoJSONLinestring returns GeoJSON representation of LineString
func PrepareGeoJSONLinestring(pts []GeoPoint) string {
	pts2d := make([][]float64, len(pts))
	for i := range pts {
		pts2d[i] = []float64{pts[i].Lon, pts[i].Lat}
	}
	b, err := geojson.NewLineStringGeometry(pts2d).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

// PrepareGeoJSONPoint returns GeoJSON representation of Point
func PrepareGeoJSONPoint(pt GeoPoint) string {
	b, err := geojson.NewPointGeometry([]float64{pt.Lon, pt.Lat}).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

// OrderedLinksGeoJSON renders the graph's ordered links as a GeoJSON
// FeatureCollection for map rendering
func OrderedLinksGeoJSON(graph *RouteLinkGraph) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, node := range graph.Nodes() {
		geom := node.Geometry()
		coords := make([][]float64, len(geom))
		for i, pt := range geom {
			coords[i] = []float64{pt[0], pt[1]}
		}
		feature := geojson.NewLineStringFeature(coords)
		feature.SetProperty("link_id", string(node.ID()))
		feature.SetProperty("order", node.Order())
		feature.SetProperty("road_name", node.Link().RoadName)
		feature.SetProperty("road_category", node.Link().RoadCategory)
		feature.SetProperty("distance_along_route", node.DistanceAlongRoute())
		fc.AddFeature(feature)
	}
	return fc.MarshalJSON()
}
