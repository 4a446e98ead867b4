package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/coastadv/routelink"
)

var (
	linksFileName = flag.String("links", "", "Filename of the static link catalog (JSON array of link records)")
	osmFileName   = flag.String("osm", "", "Filename of *.osm.pbf file to import the link catalog from (alternative to -links)")
	tagStr        = flag.String("tags", "motorway,primary,primary_link,road,secondary,secondary_link,residential,tertiary,tertiary_link,unclassified,trunk,trunk_link,motorway_link", "Set of needed OSM highway tags for -osm import (separated by commas)")
	pathFileName  = flag.String("path", "", "Filename of route path GeoJSON (LineString geometry or feature)")
	serviceNo     = flag.String("service", "", "Bus service number")
	direction     = flag.Int("direction", 1, "Route direction (1 or 2)")
	configPath    = flag.String("config", "", "Optional yaml config with tolerances")
	out           = flag.String("out", "route_links.csv", "Filename of 'Comma-Separated Values' (CSV) formatted file for the ordered links")
	geomFormat    = flag.String("geomf", "wkt", "Format of output geometry. Expected values: wkt / geojson")
	lat           = flag.Float64("lat", 0, "Latitude of a live GPS fix to locate on the route (needs -lon)")
	lon           = flag.Float64("lon", 0, "Longitude of a live GPS fix to locate on the route (needs -lat)")
	speedBands    = flag.String("speedbands", "", "Optional speed feed snapshot (JSON) to build the history sequence from")
	verbose       = flag.Bool("verbose", false, "Print construction progress")
)

func main() {
	flag.Parse()

	cfg := routelink.DefaultConfig()
	if *configPath != "" {
		loaded, err := routelink.LoadConfig(*configPath)
		if err != nil {
			fmt.Println(err)
			return
		}
		cfg = loaded
	}

	catalog, err := loadCatalog()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Loaded %d links\n", len(catalog))

	pathData, err := os.ReadFile(*pathFileName)
	if err != nil {
		fmt.Println(err)
		return
	}
	path, err := routelink.PathFromGeoJSON(pathData)
	if err != nil {
		fmt.Println(err)
		return
	}

	builder := routelink.NewGraphBuilder(
		catalog,
		routelink.WithBufferMeters(cfg.BufferMeters),
		routelink.WithVerbose(*verbose),
	)
	cache := routelink.NewRouteGraphCache(func(serviceNo string, direction int) (*routelink.RouteLinkGraph, error) {
		return builder.Build(serviceNo, direction, path)
	})

	graph, err := cache.Get(*serviceNo, *direction)
	if err != nil {
		fmt.Println(err)
		return
	}

	if err := graph.ExportToCSV(*out); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Exported %d ordered links to '%s'\n", graph.Len(), *out)

	if strings.ToLower(*geomFormat) == "geojson" {
		fnameParts := strings.Split(*out, ".csv")
		fnameGeoJSON := fmt.Sprintf(fnameParts[0] + "_links.geojson")
		data, err := routelink.OrderedLinksGeoJSON(graph)
		if err != nil {
			fmt.Println(err)
			return
		}
		if err := os.WriteFile(fnameGeoJSON, data, 0644); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("Exported links geometry to '%s'\n", fnameGeoJSON)
	}

	if *lat != 0 || *lon != 0 {
		locateFix(graph, cfg)
	}
}

func loadCatalog() ([]*routelink.RoadLink, error) {
	if *linksFileName != "" {
		return routelink.LoadLinksJSON(*linksFileName)
	}
	if *osmFileName != "" {
		return routelink.ImportLinksFromOSM(*osmFileName, &routelink.OSMImportConfig{
			Tags:    strings.Split(*tagStr, ","),
			Verbose: *verbose,
		})
	}
	return nil, fmt.Errorf("either -links or -osm is required")
}

func locateFix(graph *routelink.RouteLinkGraph, cfg routelink.Config) {
	fix := routelink.GeoPoint{Lat: *lat, Lon: *lon}
	current, err := routelink.NearestLink(fix, graph.Nodes())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("GPS fix %s matched link %s (order %d)\n", routelink.PrepareWKTPoint(fix), current.ID(), current.Order())

	fmt.Println("Top 5 closest links:")
	for i, ranked := range routelink.RankNearest(fix, graph.Nodes(), 5) {
		fmt.Printf("  %d. Order %d, LinkID %s, Distance: %.6f degrees\n", i+1, ranked.Node.Order(), ranked.Node.ID(), ranked.Distance)
	}

	window := routelink.ExpandAnalysisWindow(current, graph, cfg.LookaheadLinks)
	fmt.Printf("Analysis window (target %s): %v\n", window.Target().ID(), window.LinkIDs())

	if *speedBands == "" {
		return
	}
	observations, err := routelink.LoadSpeedBandsJSON(*speedBands)
	if err != nil {
		fmt.Println(err)
		return
	}
	history := window.SpeedHistory(observations, cfg.MinHistoryLength)
	fmt.Printf("Speed band history: %v\n", history)
}
