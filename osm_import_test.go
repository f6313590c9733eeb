package roadnet

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWay(id osm.WayID, tags osm.Tags, nodes ...osm.NodeID) *osm.Way {
	way := &osm.Way{ID: id, Tags: tags, Nodes: make(osm.WayNodes, len(nodes))}
	for i, node := range nodes {
		way.Nodes[i] = osm.WayNode{ID: node}
	}
	return way
}

// crossData is a four-way intersection at node 2: bidirectional way 10 goes west to east,
// one-way way 20 goes south to north with two lanes. Way 30 is a footway.
func crossData() *OSMData {
	return &OSMData{
		Ways: osm.Ways{
			testWay(10, osm.Tags{{Key: "highway", Value: "residential"}, {Key: "name", Value: "Main street"}}, 1, 2, 3),
			testWay(20, osm.Tags{{Key: "highway", Value: "primary"}, {Key: "oneway", Value: "yes"}, {Key: "lanes", Value: "2"}}, 4, 2, 5),
			testWay(30, osm.Tags{{Key: "highway", Value: "footway"}}, 3, 6),
		},
		Nodes: map[osm.NodeID]*osm.Node{
			1: {ID: 1, Lon: 37.600, Lat: 55.750},
			2: {ID: 2, Lon: 37.601, Lat: 55.750},
			3: {ID: 3, Lon: 37.602, Lat: 55.750},
			4: {ID: 4, Lon: 37.601, Lat: 55.749},
			5: {ID: 5, Lon: 37.601, Lat: 55.751},
			6: {ID: 6, Lon: 37.603, Lat: 55.750},
		},
	}
}

func TestImportOSM(t *testing.T) {
	imported, err := ImportOSM(crossData())
	require.NoError(t, err)
	require.Len(t, imported.Roads, 4)

	expectedWays := []osm.WayID{10, 10, 20, 20}
	// 0.001 degree in EPSG:3857 units; latitude is stretched by 1/cos(lat)
	expectedLengths := []float64{111.3195, 111.3195, 197.8, 197.8}
	for i, road := range imported.Roads {
		assert.Equal(t, RoadID(i+1), road.ID)
		assert.Equal(t, expectedWays[i], road.OSMWayID)
		assert.InDelta(t, expectedLengths[i], road.Length, 0.5)
	}
	assert.Equal(t, "Main street", imported.Roads[0].Name)

	// Origin is the first node of the first way
	start := imported.Roads[0].PositionAt(0)
	assert.InDelta(t, 0, start.X, eps)
	assert.InDelta(t, 0, start.Y, eps)
	assert.Equal(t, orb.Point{37.600, 55.750}, imported.Projection.Origin())

	// Split point is shared
	end := imported.Roads[0].PositionAt(imported.Roads[0].Length)
	next := imported.Roads[1].PositionAt(0)
	assert.InDelta(t, end.X, next.X, 1e-6)
	assert.InDelta(t, end.Y, next.Y, 1e-6)

	bidirectional, err := imported.Roads[0].SectionAtContact(CONTACT_START)
	require.NoError(t, err)
	assert.Len(t, bidirectional.LeftLanes(), 1)
	assert.Len(t, bidirectional.RightLanes(), 1)
	w, err := imported.Roads[0].WidthAt(-1, 10)
	require.NoError(t, err)
	assert.InDelta(t, defaultLaneWidth, w, eps)

	oneway, err := imported.Roads[2].SectionAtContact(CONTACT_START)
	require.NoError(t, err)
	assert.Len(t, oneway.LeftLanes(), 2)
	assert.Empty(t, oneway.RightLanes())
	assert.InDelta(t, 0, headingDifference(imported.Roads[2].PositionAt(0).Hdg, 1.5707963), 1e-3)

	// Back to lon/lat
	lonlat := imported.Projection.Inverse(next.Point())
	assert.InDelta(t, 37.601, lonlat.Lon(), 1e-9)
	assert.InDelta(t, 55.750, lonlat.Lat(), 1e-9)
}

func TestImportOSMSynthesis(t *testing.T) {
	imported, err := ImportOSM(crossData())
	require.NoError(t, err)
	net := NewRoadNetwork()
	for _, road := range imported.Roads {
		require.NoError(t, net.AddRoad(road))
	}
	_, err = net.MergeEntries(net.CreateJunctionEntries(net.Roads()), nil, WithMaxEndpointDistance(1))
	require.NoError(t, err)

	junctions := net.Junctions()
	require.Len(t, junctions, 1)
	assert.Len(t, junctions[0].Connections(), 7)
	through, ok := junctions[0].FindConnection(3, 4)
	require.True(t, ok)
	assert.Len(t, through.LaneLinks, 2)
	assert.Equal(t, TURN_THRU, through.Turn)
	_, ok = junctions[0].FindConnection(4, 3)
	assert.False(t, ok, "one-way road can't be entered backwards")
}

func TestImportOSMOptions(t *testing.T) {
	imported, err := ImportOSM(crossData(),
		WithHighwayTypes("footway", "not_a_highway"),
		WithStartRoadID(100),
		WithDefaultLaneWidth(2),
		WithOrigin(orb.Point{37.602, 55.750}),
	)
	require.NoError(t, err)
	require.Len(t, imported.Roads, 1)
	road := imported.Roads[0]
	assert.Equal(t, RoadID(100), road.ID)
	assert.InDelta(t, 0, road.PositionAt(0).X, eps)
	// Footway is a one-way sidewalk by default
	section, err := road.SectionAtContact(CONTACT_START)
	require.NoError(t, err)
	lane, ok := section.Lane(1)
	require.True(t, ok)
	assert.Equal(t, LANE_SIDEWALK, lane.Type)
	w, err := road.WidthAt(1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2, w, eps)
	assert.Empty(t, NewRoadNetwork().CreateJunctionEntries(imported.Roads), "sidewalks don't form junction entries")

	_, err = ImportOSM(crossData(), WithHighwayTypes("motorway"))
	assert.ErrorIs(t, err, ErrNoRoads)
}

func TestImportOSMReversed(t *testing.T) {
	data := &OSMData{
		Ways: osm.Ways{
			testWay(1, osm.Tags{{Key: "highway", Value: "secondary"}, {Key: "oneway", Value: "-1"}}, 1, 2),
		},
		Nodes: map[osm.NodeID]*osm.Node{
			1: {ID: 1, Lon: 0, Lat: 0},
			2: {ID: 2, Lon: 0.001, Lat: 0},
		},
	}
	imported, err := ImportOSM(data, WithOrigin(orb.Point{0, 0}))
	require.NoError(t, err)
	require.Len(t, imported.Roads, 1)
	start := imported.Roads[0].PositionAt(0)
	assert.InDelta(t, 111.3195, start.X, 0.01)
	assert.InDelta(t, 0, headingDifference(start.Hdg, 3.1415926), 1e-6)
}

func TestImportTrafficSide(t *testing.T) {
	data := crossData()
	imported, err := ImportOSM(data, WithImportTrafficSide(TRAFFIC_LHT))
	require.NoError(t, err)
	section, err := imported.Roads[2].SectionAtContact(CONTACT_START)
	require.NoError(t, err)
	assert.Empty(t, section.LeftLanes())
	assert.Len(t, section.RightLanes(), 2)
}

func TestLanesFromOSM(t *testing.T) {
	cases := []struct {
		tags     osm.Tags
		expected wayLanes
	}{
		{osm.Tags{{Key: "highway", Value: "primary"}}, wayLanes{forward: 3, backward: 3, laneType: LANE_DRIVING}},
		{osm.Tags{{Key: "highway", Value: "primary"}, {Key: "lanes", Value: "3"}}, wayLanes{forward: 2, backward: 2, laneType: LANE_DRIVING}},
		{osm.Tags{{Key: "highway", Value: "primary"}, {Key: "lanes", Value: "4"}, {Key: "lanes:forward", Value: "3"}, {Key: "lanes:backward", Value: "1"}}, wayLanes{forward: 3, backward: 1, laneType: LANE_DRIVING}},
		{osm.Tags{{Key: "highway", Value: "residential"}, {Key: "oneway", Value: "yes"}}, wayLanes{forward: 1, laneType: LANE_DRIVING}},
		{osm.Tags{{Key: "highway", Value: "trunk"}, {Key: "oneway", Value: "-1"}, {Key: "lanes", Value: "2"}}, wayLanes{forward: 2, reversed: true, laneType: LANE_DRIVING}},
		{osm.Tags{{Key: "highway", Value: "secondary"}, {Key: "junction", Value: "roundabout"}}, wayLanes{forward: 2, laneType: LANE_DRIVING}},
		{osm.Tags{{Key: "highway", Value: "tertiary"}, {Key: "oneway", Value: "reversible"}, {Key: "lanes", Value: "x"}}, wayLanes{forward: 2, backward: 2, laneType: LANE_DRIVING}},
		{osm.Tags{{Key: "highway", Value: "cycleway"}}, wayLanes{forward: 1, laneType: LANE_BIKING}},
	}
	for i, c := range cases {
		got := lanesFromOSM(testWay(osm.WayID(i), c.tags, 1, 2))
		assert.Equal(t, c.expected, got, "case %d: %v", i, c.tags)
	}
}

func TestSplitAtShared(t *testing.T) {
	usage := map[osm.NodeID]int{1: 1, 2: 2, 3: 1, 4: 3, 5: 2}
	parts := splitAtShared([]osm.NodeID{1, 2, 3, 4, 5}, usage)
	assert.Equal(t, [][]osm.NodeID{{1, 2}, {2, 3, 4}, {4, 5}}, parts)
}

func TestHighwayTypes(t *testing.T) {
	assert.Equal(t, HIGHWAY_LIVING_STREET, getHighwayType("living_street"))
	assert.Equal(t, HighwayType(0), getHighwayType("runway"))
	assert.Equal(t, "motorway_link", HIGHWAY_MOTORWAY_LINK.String())
}
