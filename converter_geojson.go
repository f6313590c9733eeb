package roadnet

import (
	"github.com/paulmach/orb"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

type geojsonOptions struct {
	projection *Projection
	entries    []JunctionEntry
}

// WithGeoJSONProjection converts local meters to lon/lat on export
func WithGeoJSONProjection(proj Projection) func(*geojsonOptions) {
	return func(opts *geojsonOptions) {
		opts.projection = &proj
	}
}

// WithGeoJSONEntries adds junction entries as point features
func WithGeoJSONEntries(entries []JunctionEntry) func(*geojsonOptions) {
	return func(opts *geojsonOptions) {
		opts.entries = entries
	}
}

func toCoordinates(line orb.LineString, proj *Projection) [][]float64 {
	if proj != nil {
		line = proj.InverseLine(line)
	}
	coords := make([][]float64, len(line))
	for i, pt := range line {
		coords[i] = []float64{pt.X(), pt.Y()}
	}
	return coords
}

func toCoordinate(pt orb.Point, proj *Projection) []float64 {
	if proj != nil {
		pt = proj.Inverse(pt)
	}
	return []float64{pt.X(), pt.Y()}
}

// ExportGeoJSON returns FeatureCollection with road reference lines, lane centerlines,
// junction connections and (optionally) junction entries. Every feature has 'kind' property.
func (net *RoadNetwork) ExportGeoJSON(options ...func(*geojsonOptions)) ([]byte, error) {
	opts := geojsonOptions{}
	for _, option := range options {
		option(&opts)
	}
	fc := geojson.NewFeatureCollection()

	for _, road := range net.Roads() {
		feature := geojson.NewLineStringFeature(toCoordinates(road.curve.Sample(net.samplingStep), opts.projection))
		feature.SetProperty("kind", "road")
		feature.SetProperty("road_id", int(road.ID))
		feature.SetProperty("name", road.Name)
		feature.SetProperty("length", road.Length)
		feature.SetProperty("junction_id", int(road.JunctionID))
		fc.AddFeature(feature)

		section, err := road.SectionAtContact(CONTACT_START)
		if err != nil {
			continue
		}
		for _, lane := range section.Lanes() {
			if lane.ID == 0 {
				continue
			}
			line, err := net.LaneCenterline(road.ID, lane.ID)
			if err != nil {
				Logger().Warn("lane centerline skipped", "road", road.ID, "lane", lane.ID, "error", err)
				continue
			}
			laneFeature := geojson.NewLineStringFeature(toCoordinates(line, opts.projection))
			laneFeature.SetProperty("kind", "lane")
			laneFeature.SetProperty("road_id", int(road.ID))
			laneFeature.SetProperty("lane_id", lane.ID)
			laneFeature.SetProperty("lane_type", lane.Type.String())
			fc.AddFeature(laneFeature)
		}
	}

	for _, junction := range net.Junctions() {
		for _, conn := range junction.Connections() {
			line, ok := net.connectionLine(conn)
			if !ok {
				continue
			}
			feature := geojson.NewLineStringFeature(toCoordinates(line, opts.projection))
			feature.SetProperty("kind", "connection")
			feature.SetProperty("junction_id", int(junction.ID))
			feature.SetProperty("connection_id", int(conn.ID))
			feature.SetProperty("incoming_road", int(conn.IncomingRoad))
			feature.SetProperty("connecting_road", int(conn.ConnectingRoad))
			feature.SetProperty("turn", conn.Turn.String())
			feature.SetProperty("lane_links", len(conn.LaneLinks))
			fc.AddFeature(feature)
		}
	}

	for _, entry := range opts.entries {
		feature := geojson.NewPointFeature(toCoordinate(entry.Position, opts.projection))
		feature.SetProperty("kind", "entry")
		feature.SetProperty("road_id", int(entry.RoadID))
		feature.SetProperty("lane_id", entry.LaneID)
		feature.SetProperty("contact", entry.ContactPoint.String())
		feature.SetProperty("is_entry", entry.IsEntry)
		fc.AddFeature(feature)
	}

	b, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "Can't marshal feature collection")
	}
	return b, nil
}
