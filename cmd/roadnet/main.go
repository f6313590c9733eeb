package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/LdDl/roadnet"
)

var (
	osmFileName = flag.String("file", "my_graph.osm.pbf", "Filename of *.osm.pbf / *.osm / *.xml file")
	configFile  = flag.String("config", "", "Filename of YAML configuration. Defaults are used when empty")
	out         = flag.String("out", "my_graph.csv", "Prefix of 'Comma-Separated Values' (CSV) formatted files. E.g.: if file name is 'map.csv' then 2 files will be produced: 'map_roads.csv', 'map_connections.csv'")
	geojsonOut  = flag.String("geojson", "", "Filename of GeoJSON output. Nothing is written when empty")
	maxDist     = flag.Float64("max-dist", -1, "Maximum distance (meters) between paired lane ends. Negative value means 'take it from config'")
	rule        = flag.String("rule", "", "Traffic rule: rht / lht. Empty value means 'take it from config'")
	verbose     = flag.Bool("verbose", false, "Print debug messages")
	routeFrom   = flag.Int("from", -1, "Source road ID for test route. Routing is skipped when negative")
	routeTo     = flag.Int("to", -1, "Target road ID for test route")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	roadnet.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() error {
	cfg := roadnet.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = roadnet.LoadConfig(*configFile)
		if err != nil {
			return err
		}
	}
	if *maxDist >= 0 {
		cfg.MaxEndpointDistance = *maxDist
	}
	if *rule != "" {
		cfg.TrafficRule = *rule
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	st := time.Now()
	data, err := roadnet.ReadOSMFile(*osmFileName)
	if err != nil {
		return err
	}
	imported, err := roadnet.ImportOSM(data, cfg.ImportOptions()...)
	if err != nil {
		return err
	}

	net := roadnet.NewRoadNetwork(cfg.NetworkOptions()...)
	for _, road := range imported.Roads {
		if err := net.AddRoad(road); err != nil {
			return err
		}
	}

	entries := net.CreateJunctionEntries(net.Roads())
	report, err := net.MergeEntries(entries, nil, cfg.MergeOptions()...)
	if err != nil {
		return err
	}
	fmt.Println(report)

	if err := net.ExportToCSV(*out); err != nil {
		return err
	}
	if *geojsonOut != "" {
		b, err := net.ExportGeoJSON(roadnet.WithGeoJSONProjection(imported.Projection), roadnet.WithGeoJSONEntries(entries))
		if err != nil {
			return err
		}
		if err := os.WriteFile(*geojsonOut, b, 0644); err != nil {
			return err
		}
	}
	if *routeFrom >= 0 && *routeTo >= 0 {
		router, err := roadnet.BuildRouter(net)
		if err != nil {
			return err
		}
		path, cost, err := router.Route(roadnet.RoadID(*routeFrom), roadnet.RoadID(*routeTo))
		if err != nil {
			return err
		}
		fmt.Printf("Route %d -> %d: %v (%f meters)\n", *routeFrom, *routeTo, path, cost)
	}
	roadnet.Logger().Info("done", "network", net.String(), "elapsed", time.Since(st))
	return nil
}
