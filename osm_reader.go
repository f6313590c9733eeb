package roadnet

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// OSMData is raw content of OSM file needed for road import: highway ways and nodes they reference
type OSMData struct {
	Ways  osm.Ways
	Nodes map[osm.NodeID]*osm.Node
}

func newOSMScanner(ctx context.Context, filename string, r io.Reader) (OSMScanner, error) {
	switch {
	case strings.HasSuffix(filename, ".osm.pbf"), filepath.Ext(filename) == ".pbf":
		return osmpbf.New(ctx, r, 4), nil
	case filepath.Ext(filename) == ".osm", filepath.Ext(filename) == ".xml":
		return osmxml.New(ctx, r), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedFile, "extension '%s' of file '%s'", filepath.Ext(filename), filename)
	}
}

// ReadOSMFile reads highway ways and their nodes from .osm/.xml or .pbf file.
// File is scanned twice: ways first, then only nodes referenced by collected ways.
func ReadOSMFile(filename string) (*OSMData, error) {
	Logger().Info("opening OSM file", "file", filename)
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't open file '%s'", filename)
	}
	defer file.Close()

	ctx := context.Background()
	data := &OSMData{
		Ways:  make(osm.Ways, 0),
		Nodes: make(map[osm.NodeID]*osm.Node),
	}

	st := time.Now()
	nodesSeen := make(map[osm.NodeID]struct{})
	{
		scannerWays, err := newOSMScanner(ctx, filename, file)
		if err != nil {
			return nil, err
		}
		for scannerWays.Scan() {
			way, ok := scannerWays.Object().(*osm.Way)
			if !ok {
				continue
			}
			if way.Tags.Find("highway") == "" {
				continue
			}
			for _, node := range way.Nodes {
				nodesSeen[node.ID] = struct{}{}
			}
			data.Ways = append(data.Ways, way)
		}
		err = scannerWays.Err()
		scannerWays.Close()
		if err != nil {
			return nil, errors.Wrap(err, "Can't scan ways")
		}
	}
	Logger().Info("ways processed", "ways", len(data.Ways), "elapsed", time.Since(st))

	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking after ways scanning")
	}

	st = time.Now()
	{
		scannerNodes, err := newOSMScanner(ctx, filename, file)
		if err != nil {
			return nil, err
		}
		for scannerNodes.Scan() {
			node, ok := scannerNodes.Object().(*osm.Node)
			if !ok {
				continue
			}
			if _, ok := nodesSeen[node.ID]; !ok {
				continue
			}
			data.Nodes[node.ID] = node
		}
		err = scannerNodes.Err()
		scannerNodes.Close()
		if err != nil {
			return nil, errors.Wrap(err, "Can't scan nodes")
		}
	}
	Logger().Info("nodes processed", "nodes", len(data.Nodes), "elapsed", time.Since(st))
	return data, nil
}
