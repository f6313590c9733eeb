package roadnet

import (
	"sort"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

type RoadID int

// RoadLink points from road end to a road or a junction
type RoadLink struct {
	ElementType  ElementType
	ElementID    int
	ContactPoint ContactPoint // Contact point on the linked road (undefined for junctions)
}

// Road must be created with NewRoad: zero value has no reference line and JunctionID 0 marks a junction road
type Road struct {
	sections    []*LaneSection
	curve       *RoadCurve
	Predecessor *RoadLink
	Successor   *RoadLink
	Name        string
	ID          RoadID
	Length      float64
	JunctionID  JunctionID // -1 if road is not a part of junction
	OSMWayID    osm.WayID  // 0 unless imported from OSM
}

// NewRoad creates road with reference line built from given segments.
// Non-positive length is taken from the reference line.
func NewRoad(id RoadID, length float64, segments ...*RoadGeometry) *Road {
	curve := NewRoadCurve(length, segments...)
	if length <= 0 {
		length = curve.Length()
	}
	return &Road{
		ID:         id,
		Length:     length,
		JunctionID: -1,
		curve:      curve,
		sections:   make([]*LaneSection, 0, 1),
	}
}

// Curve returns road reference line
func (road *Road) Curve() *RoadCurve {
	return road.curve
}

// IsJunctionRoad reports whether road belongs to a junction
func (road *Road) IsJunctionRoad() bool {
	return road.JunctionID >= 0
}

// AddLaneSection inserts lane section keeping sections ordered by s.
// Two sections starting at the same s are considered as corrupted input.
func (road *Road) AddLaneSection(section *LaneSection) error {
	if section == nil {
		return errors.Wrapf(ErrNilElement, "lane section of road %d", road.ID)
	}
	idx := sort.Search(len(road.sections), func(i int) bool {
		return road.sections[i].S >= section.S
	})
	if idx < len(road.sections) && road.sections[idx].S == section.S {
		return errors.Wrapf(ErrUnsortedSections, "road %d already has section at s=%f", road.ID, section.S)
	}
	road.sections = append(road.sections, nil)
	copy(road.sections[idx+1:], road.sections[idx:])
	road.sections[idx] = section
	return nil
}

// LaneSections returns copy of ordered lane sections
func (road *Road) LaneSections() []*LaneSection {
	out := make([]*LaneSection, len(road.sections))
	copy(out, road.sections)
	return out
}

// SectionAt returns active lane section at s (the last one starting at or before s)
func (road *Road) SectionAt(s float64) (*LaneSection, error) {
	idx := sort.Search(len(road.sections), func(i int) bool {
		return road.sections[i].S > s
	}) - 1
	if idx < 0 {
		return nil, errors.Wrapf(ErrLaneSectionNotFound, "road %d at s=%f", road.ID, s)
	}
	return road.sections[idx], nil
}

// SectionAtContact returns first section for START and last section for END
func (road *Road) SectionAtContact(contact ContactPoint) (*LaneSection, error) {
	if len(road.sections) == 0 {
		return nil, errors.Wrapf(ErrLaneSectionNotFound, "road %d has no lane sections", road.ID)
	}
	if contact == CONTACT_END {
		return road.sections[len(road.sections)-1], nil
	}
	return road.sections[0], nil
}

// ContactS returns s coordinate of the given road end
func (road *Road) ContactS(contact ContactPoint) float64 {
	if contact == CONTACT_END {
		return road.Length
	}
	return 0
}

// LinkAt returns predecessor for START and successor for END
func (road *Road) LinkAt(contact ContactPoint) *RoadLink {
	if contact == CONTACT_END {
		return road.Successor
	}
	return road.Predecessor
}

// PositionAt returns reference line pose at s
func (road *Road) PositionAt(s float64) Pose {
	return road.curve.PositionAt(s)
}

// laneAt resolves lane and distance from its section start
func (road *Road) laneAt(laneID int, s float64) (*LaneSection, *Lane, float64, error) {
	section, err := road.SectionAt(s)
	if err != nil {
		return nil, nil, 0, err
	}
	lane, ok := section.Lane(laneID)
	if !ok {
		return nil, nil, 0, errors.Wrapf(ErrLaneNotFound, "lane %d of road %d at s=%f", laneID, road.ID, s)
	}
	return section, lane, s - section.S, nil
}

// WidthAt returns width of the lane at road coordinate s
func (road *Road) WidthAt(laneID int, s float64) (float64, error) {
	_, lane, ds, err := road.laneAt(laneID, s)
	if err != nil {
		Logger().Warn("can't evaluate lane width", "error", err)
		return 0, err
	}
	return lane.WidthAt(ds), nil
}

// CumulativeOffsetToCenter returns summary width of lanes between the center lane and the given lane (inner edge offset)
func (road *Road) CumulativeOffsetToCenter(laneID int, s float64) (float64, error) {
	section, _, ds, err := road.laneAt(laneID, s)
	if err != nil {
		Logger().Warn("can't evaluate lane offset", "error", err)
		return 0, err
	}
	return section.InnerOffset(laneID, ds)
}

// CenterlineOffset returns distance from reference line to the lane centerline
func (road *Road) CenterlineOffset(laneID int, s float64) (float64, error) {
	section, _, ds, err := road.laneAt(laneID, s)
	if err != nil {
		Logger().Warn("can't evaluate lane centerline offset", "error", err)
		return 0, err
	}
	return section.CenterOffset(laneID, ds)
}
