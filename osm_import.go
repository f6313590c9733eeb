package roadnet

import (
	"math"
	"strconv"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

const (
	defaultLaneWidth = 3.5
)

type importOptions struct {
	highways    map[HighwayType]struct{}
	origin      *orb.Point
	laneWidth   float64
	startRoadID RoadID
	trafficSide TrafficSide
}

func defaultImportOptions() importOptions {
	opts := importOptions{
		highways:    make(map[HighwayType]struct{}, len(defaultHighwayTypes)),
		laneWidth:   defaultLaneWidth,
		startRoadID: 1,
		trafficSide: TRAFFIC_RHT,
	}
	for _, str := range defaultHighwayTypes {
		opts.highways[highwaysTypes[str]] = struct{}{}
	}
	return opts
}

// WithHighwayTypes sets `highway` tag values to be imported. Unknown values are ignored.
func WithHighwayTypes(types ...string) func(*importOptions) {
	return func(opts *importOptions) {
		highways := make(map[HighwayType]struct{}, len(types))
		for _, str := range types {
			if highway := getHighwayType(str); highway != 0 {
				highways[highway] = struct{}{}
			}
		}
		if len(highways) > 0 {
			opts.highways = highways
		}
	}
}

// WithOrigin sets lon/lat mapped to local (0, 0). Default is the first node of the first imported way.
func WithOrigin(origin orb.Point) func(*importOptions) {
	return func(opts *importOptions) {
		opts.origin = &origin
	}
}

// WithDefaultLaneWidth sets constant width of imported lanes
func WithDefaultLaneWidth(width float64) func(*importOptions) {
	return func(opts *importOptions) {
		if width > 0 {
			opts.laneWidth = width
		}
	}
}

// WithStartRoadID sets ID of the first imported road
func WithStartRoadID(id RoadID) func(*importOptions) {
	return func(opts *importOptions) {
		opts.startRoadID = id
	}
}

// WithImportTrafficSide decides which lanes (positive or negative IDs) carry traffic along way direction
func WithImportTrafficSide(side TrafficSide) func(*importOptions) {
	return func(opts *importOptions) {
		opts.trafficSide = side
	}
}

// OSMImport is result of ImportOSM
type OSMImport struct {
	Roads      []*Road
	Projection Projection
}

// wayLanes is number of lanes per travel direction relative to way nodes order
type wayLanes struct {
	forward  int
	backward int
	reversed bool
	laneType LaneType
}

// ImportOSM converts highway ways into roads. Ways are split at nodes shared with other ways, so every
// road end is either an intersection or a dead end. Each node pair becomes a line segment.
func ImportOSM(data *OSMData, options ...func(*importOptions)) (*OSMImport, error) {
	opts := defaultImportOptions()
	for _, option := range options {
		option(&opts)
	}
	st := time.Now()

	ways := make([]*osm.Way, 0, len(data.Ways))
	for _, way := range data.Ways {
		highway := getHighwayType(way.Tags.Find("highway"))
		if _, ok := opts.highways[highway]; !ok {
			continue
		}
		if len(way.Nodes) < 2 {
			Logger().Warn("way skipped: not enough nodes", "way", way.ID)
			continue
		}
		ways = append(ways, way)
	}
	if len(ways) == 0 {
		return nil, errors.Wrap(ErrNoRoads, "Can't find any suitable highway")
	}

	var proj Projection
	if opts.origin != nil {
		proj = NewProjection(*opts.origin)
	} else {
		first, ok := data.Nodes[ways[0].Nodes[0].ID]
		if !ok {
			return nil, errors.Wrapf(ErrNoRoads, "Can't find first node %d of way %d", ways[0].Nodes[0].ID, ways[0].ID)
		}
		proj = NewProjection(orb.Point{first.Lon, first.Lat})
	}

	usage := make(map[osm.NodeID]int)
	for _, way := range ways {
		for _, node := range way.Nodes {
			usage[node.ID]++
		}
	}

	result := &OSMImport{
		Roads:      make([]*Road, 0, len(ways)),
		Projection: proj,
	}
	nextID := opts.startRoadID
	for _, way := range ways {
		lanes := lanesFromOSM(way)
		nodes := make([]osm.NodeID, len(way.Nodes))
		for i, node := range way.Nodes {
			if lanes.reversed {
				nodes[len(way.Nodes)-1-i] = node.ID
			} else {
				nodes[i] = node.ID
			}
		}
		for _, part := range splitAtShared(nodes, usage) {
			points := make(orb.LineString, 0, len(part))
			for _, nodeID := range part {
				node, ok := data.Nodes[nodeID]
				if !ok {
					Logger().Warn("node is missing", "way", way.ID, "node", nodeID)
					continue
				}
				points = append(points, proj.Forward(orb.Point{node.Lon, node.Lat}))
			}
			road, err := roadFromPolyline(nextID, points, lanes, opts)
			if err != nil {
				Logger().Warn("way part skipped", "way", way.ID, "error", err)
				continue
			}
			road.Name = way.Tags.Find("name")
			road.OSMWayID = way.ID
			result.Roads = append(result.Roads, road)
			nextID++
		}
	}
	Logger().Info("OSM ways imported", "ways", len(ways), "roads", len(result.Roads), "elapsed", time.Since(st))
	return result, nil
}

// splitAtShared cuts nodes sequence at interior nodes used more than once
func splitAtShared(nodes []osm.NodeID, usage map[osm.NodeID]int) [][]osm.NodeID {
	parts := [][]osm.NodeID{}
	start := 0
	for i := 1; i < len(nodes)-1; i++ {
		if usage[nodes[i]] > 1 {
			parts = append(parts, nodes[start:i+1])
			start = i
		}
	}
	parts = append(parts, nodes[start:])
	return parts
}

// roadFromPolyline builds road with one line segment per consecutive pair of distinct points
func roadFromPolyline(id RoadID, points orb.LineString, lanes wayLanes, opts importOptions) (*Road, error) {
	segments := make([]*RoadGeometry, 0, len(points))
	s := 0.0
	for i := 1; i < len(points); i++ {
		dx := points[i].X() - points[i-1].X()
		dy := points[i].Y() - points[i-1].Y()
		length := math.Hypot(dx, dy)
		if length < 1e-6 {
			continue
		}
		segments = append(segments, NewLineGeometry(s, points[i-1].X(), points[i-1].Y(), math.Atan2(dy, dx), length))
		s += length
	}
	if len(segments) == 0 {
		return nil, errors.Wrapf(ErrInvalidGeometry, "road %d has zero length", id)
	}
	road := NewRoad(id, s, segments...)

	// Lanes travelling along s are those entering a junction at the road END
	along, against := 1, -1
	if !opts.trafficSide.IsEntry(CONTACT_END, 1) {
		along, against = -1, 1
	}
	section := NewLaneSection(0)
	if err := section.AddLane(NewLane(0, LANE_NONE)); err != nil {
		return nil, err
	}
	for i := 1; i <= lanes.forward; i++ {
		if err := section.AddLane(NewLane(along*i, lanes.laneType, LaneWidth{A: opts.laneWidth})); err != nil {
			return nil, err
		}
	}
	for i := 1; i <= lanes.backward; i++ {
		if err := section.AddLane(NewLane(against*i, lanes.laneType, LaneWidth{A: opts.laneWidth})); err != nil {
			return nil, err
		}
	}
	if err := road.AddLaneSection(section); err != nil {
		return nil, err
	}
	return road, nil
}

// lanesFromOSM derives lanes per direction from `oneway`, `junction`, `lanes`, `lanes:forward` and `lanes:backward` tags
func lanesFromOSM(way *osm.Way) wayLanes {
	profile := highwayProfiles[getHighwayType(way.Tags.Find("highway"))]
	oneway := false
	reversed := false
	onewayText := way.Tags.Find("oneway")
	switch onewayText {
	case "yes", "1", "true":
		oneway = true
	case "no", "0", "false":
		oneway = false
	case "-1":
		oneway = true
		reversed = true
	case "":
		if _, ok := junctionTypes[way.Tags.Find("junction")]; ok {
			oneway = true
		} else {
			oneway = profile.onewayDefault
		}
	default:
		// Time dependent values are treated as two-way roads
		if _, ok := onewayReversible[onewayText]; !ok {
			Logger().Warn("unhandled oneway tag value", "value", onewayText, "way", way.ID)
		}
	}

	total := tagInt(way, "lanes")
	forward := tagInt(way, "lanes:forward")
	backward := tagInt(way, "lanes:backward")
	if reversed {
		forward, backward = backward, forward
	}
	defaultLanes := profile.lanes
	if defaultLanes <= 0 {
		defaultLanes = 1
	}

	result := wayLanes{reversed: reversed, laneType: profile.laneType}
	if result.laneType == LANE_NONE {
		result.laneType = LANE_DRIVING
	}
	if oneway {
		switch {
		case total > 0:
			result.forward = total
		case forward > 0:
			result.forward = forward
		default:
			result.forward = defaultLanes
		}
		return result
	}
	half := int(math.Ceil(float64(total) / 2.0))
	result.forward = forward
	if result.forward <= 0 {
		result.forward = half
	}
	if result.forward <= 0 {
		result.forward = defaultLanes
	}
	result.backward = backward
	if result.backward <= 0 {
		result.backward = half
	}
	if result.backward <= 0 {
		result.backward = defaultLanes
	}
	return result
}

// tagInt returns integer tag value or -1 when the tag is missing or malformed
func tagInt(way *osm.Way, key string) int {
	text := way.Tags.Find(key)
	if text == "" {
		return -1
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		Logger().Warn("tag value should be an integer", "tag", key, "value", text, "way", way.ID)
		return -1
	}
	return value
}
