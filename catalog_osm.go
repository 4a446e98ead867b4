package routelink

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"
)

// OSMImportConfig filters ways by highway tag values during catalog import
type OSMImportConfig struct {
	Tags    []string
	Verbose bool
}

// CheckTag checks if incoming tag is represented in configuration
func (cfg *OSMImportConfig) CheckTag(tag string) bool {
	for i := range cfg.Tags {
		if cfg.Tags[i] == tag {
			return true
		}
	}
	return false
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// ImportLinksFromOSM builds a RoadLink catalog from a file of PBF-format (in
// OSM terms): one link per consecutive node pair of every way matching the
// configured highway tags. Gives deployments without a vendor link catalog a
// way to produce one from an OSM extract.
/*
	File should have PBF (Protocolbuffer Binary Format) extension according to https://github.com/paulmach/osm
*/
func ImportLinksFromOSM(fileName string, cfg *OSMImportConfig) ([]*RoadLink, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "File open")
	}
	defer f.Close()

	scannerWays := osmpbf.New(context.Background(), f, 4)
	defer scannerWays.Close()

	type wayData struct {
		id       osm.WayID
		name     string
		category string
		nodeIDs  []osm.NodeID
	}

	ways := []wayData{}
	nodesSeen := make(map[osm.NodeID]struct{})

	if cfg.Verbose {
		fmt.Printf("Scanning ways...")
	}
	st := time.Now()
	for scannerWays.Scan() {
		obj := scannerWays.Object()
		if obj.ObjectID().Type() != "way" {
			continue
		}
		way := obj.(*osm.Way)
		tagMap := way.TagMap()
		tag, ok := tagMap["highway"]
		if !ok {
			continue
		}
		if !cfg.CheckTag(tag) {
			continue
		}
		prepared := wayData{
			id:       way.ID,
			name:     tagMap["name"],
			category: tag,
			nodeIDs:  make([]osm.NodeID, 0, len(way.Nodes)),
		}
		for _, node := range way.Nodes {
			prepared.nodeIDs = append(prepared.nodeIDs, node.ID)
			nodesSeen[node.ID] = struct{}{}
		}
		ways = append(ways, prepared)
	}
	if scannerWays.Err() != nil {
		return nil, errors.Wrap(scannerWays.Err(), "Scanner error on Ways")
	}
	if cfg.Verbose {
		fmt.Printf("Done in %v\n\tWays: %d\n", time.Since(st), len(ways))
	}

	// Seek file to start
	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking")
	}
	scannerNodes := osmpbf.New(context.Background(), f, 4)
	defer scannerNodes.Close()

	nodes := make(map[osm.NodeID]GeoPoint)
	if cfg.Verbose {
		fmt.Printf("Scanning nodes...")
	}
	st = time.Now()
	for scannerNodes.Scan() {
		obj := scannerNodes.Object()
		if obj.ObjectID().Type() != "node" {
			continue
		}
		node := obj.(*osm.Node)
		if _, ok := nodesSeen[node.ID]; ok {
			delete(nodesSeen, node.ID)
			nodes[node.ID] = GeoPoint{Lat: node.Lat, Lon: node.Lon}
		}
	}
	if scannerNodes.Err() != nil {
		return nil, errors.Wrap(scannerNodes.Err(), "Scanner error on Nodes")
	}
	if cfg.Verbose {
		fmt.Printf("Done in %v\n\tNodes: %d\n", time.Since(st), len(nodes))
	}

	if cfg.Verbose {
		fmt.Printf("Preparing links...")
	}
	st = time.Now()
	links := []*RoadLink{}
	for _, way := range ways {
		for i := 1; i < len(way.nodeIDs); i++ {
			start, ok := nodes[way.nodeIDs[i-1]]
			if !ok {
				return nil, errors.Errorf("Missing node with id: %d", way.nodeIDs[i-1])
			}
			end, ok := nodes[way.nodeIDs[i]]
			if !ok {
				return nil, errors.Errorf("Missing node with id: %d", way.nodeIDs[i])
			}
			links = append(links, &RoadLink{
				ID:           LinkID(fmt.Sprintf("%d-%d", way.id, i-1)),
				RoadName:     way.name,
				RoadCategory: way.category,
				StartLat:     formatCoordinate(start.Lat),
				StartLon:     formatCoordinate(start.Lon),
				EndLat:       formatCoordinate(end.Lat),
				EndLon:       formatCoordinate(end.Lon),
			})
		}
	}
	if cfg.Verbose {
		fmt.Printf("Done in %v\n\tLinks: %d\n", time.Since(st), len(links))
	}
	if len(links) == 0 {
		return nil, errors.Errorf("No links matched tags in '%s'", fileName)
	}
	return links, nil
}
