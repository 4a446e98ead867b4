package routelink

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/errors"
)

func joinIDs(ids []LinkID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ",")
}

// ExportToCSV writes the graph's ordered links to a ';'-separated CSV file
// with a WKT geometry column
func (graph *RouteLinkGraph) ExportToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"order", "link_id", "road_name", "road_category", "distance_along_route", "length_meters", "inbound_ids", "outbound_ids", "next_ids", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, node := range graph.Nodes() {
		err = writer.Write([]string{
			fmt.Sprintf("%d", node.Order()),
			string(node.ID()),
			node.Link().RoadName,
			node.Link().RoadCategory,
			fmt.Sprintf("%f", node.DistanceAlongRoute()),
			fmt.Sprintf("%f", node.LengthMeters()),
			joinIDs(node.InboundIDs()),
			joinIDs(node.OutboundIDs()),
			joinIDs(node.NextIDs()),
			wkt.MarshalString(node.Geometry()),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write link")
		}
	}
	return nil
}
