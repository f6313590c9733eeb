package roadnet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const eps = 1e-6

// straightRoad creates road with single line segment and one lane section with constant width lanes
func straightRoad(t *testing.T, id RoadID, x, y, hdg, length, width float64, laneIDs ...int) *Road {
	t.Helper()
	road := NewRoad(id, length, NewLineGeometry(0, x, y, hdg, length))
	section := NewLaneSection(0)
	require.NoError(t, section.AddLane(NewLane(0, LANE_NONE)))
	for _, laneID := range laneIDs {
		require.NoError(t, section.AddLane(NewLane(laneID, LANE_DRIVING, LaneWidth{A: width})))
	}
	require.NoError(t, road.AddLaneSection(section))
	return road
}

func networkOf(t *testing.T, roads ...*Road) *RoadNetwork {
	t.Helper()
	net := NewRoadNetwork()
	for _, road := range roads {
		require.NoError(t, net.AddRoad(road))
	}
	return net
}

// tJunctionRoads builds three roads starting near the origin heading east, north and west. Each carries lanes {1, -1, -2}.
func tJunctionRoads(t *testing.T) []*Road {
	t.Helper()
	return []*Road{
		straightRoad(t, 1, 5, 0, 0, 50, 3.5, 1, -1, -2),
		straightRoad(t, 2, 0, 5, math.Pi/2, 50, 3.5, 1, -1, -2),
		straightRoad(t, 3, -5, 0, math.Pi, 50, 3.5, 1, -1, -2),
	}
}

func tJunction(t *testing.T) *RoadNetwork {
	t.Helper()
	return networkOf(t, tJunctionRoads(t)...)
}

func entriesAt(entries []JunctionEntry, contact ContactPoint) []JunctionEntry {
	out := []JunctionEntry{}
	for _, entry := range entries {
		if entry.ContactPoint == contact {
			out = append(out, entry)
		}
	}
	return out
}
