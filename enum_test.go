package roadnet

import (
	"fmt"
	"testing"
)

func TestEnumStringZeroAndOutOfRange(t *testing.T) {
	cases := []struct {
		value    fmt.Stringer
		expected string
	}{
		{PRange(0), "undefined"},
		{P_RANGE_NORMALIZED, "normalized"},
		{PRange(7), "unknown"},
		{GeometryType(0), "undefined"},
		{GeometryType(42), "unknown"},
		{TrafficSide(0), "undefined"},
		{TRAFFIC_LHT, "lht"},
		{ContactPoint(9), "unknown"},
		{ElementType(0), "undefined"},
		{ELEMENT_JUNCTION, "junction"},
		{EventKind(0), "undefined"},
		{EVENT_LANE_LINK_REMOVED, "lane_link_removed"},
		{HighwayType(0), "undefined"},
		{HighwayType(100), "unknown"},
		{ErrorKind(99), "unknown"},
		{TurnType(9), "unknown"},
		{TurnCompositeType(99), "unknown"},
		{LaneType(99), "none"},
	}
	for i, c := range cases {
		if got := c.value.String(); got != c.expected {
			t.Errorf("case %d (%T): expected '%s', got '%s'", i, c.value, c.expected, got)
		}
	}
	// Zero value segment fields are printable
	seg := NewParamPoly3Geometry(0, 0, 0, 0, 10, [4]float64{}, [4]float64{}, 0)
	if seg.PRange.String() != "undefined" {
		t.Errorf("unexpected p range %s", seg.PRange)
	}
}
