package roadnet

import (
	"sort"

	"github.com/pkg/errors"
)

// LaneSection is a longitudinal span of a road with fixed lane set
type LaneSection struct {
	lanes map[int]*Lane
	S     float64
}

func NewLaneSection(s float64) *LaneSection {
	return &LaneSection{
		S:     s,
		lanes: make(map[int]*Lane),
	}
}

// AddLane adds lane to the section. Duplicated ID means corrupted input.
func (section *LaneSection) AddLane(lane *Lane) error {
	if lane == nil {
		return errors.Wrapf(ErrNilElement, "lane in section at s=%f", section.S)
	}
	if _, ok := section.lanes[lane.ID]; ok {
		return errors.Wrapf(ErrDuplicateLane, "lane %d in section at s=%f", lane.ID, section.S)
	}
	section.lanes[lane.ID] = lane
	return nil
}

// Lane returns lane by ID
func (section *LaneSection) Lane(id int) (*Lane, bool) {
	lane, ok := section.lanes[id]
	return lane, ok
}

// LeftLanes returns left lanes ordered from the center outward (1, 2, ...)
func (section *LaneSection) LeftLanes() []*Lane {
	lanes := make([]*Lane, 0, len(section.lanes))
	for id, lane := range section.lanes {
		if id > 0 {
			lanes = append(lanes, lane)
		}
	}
	sort.Slice(lanes, func(i, j int) bool {
		return lanes[i].ID < lanes[j].ID
	})
	return lanes
}

// RightLanes returns right lanes ordered from the center outward (-1, -2, ...)
func (section *LaneSection) RightLanes() []*Lane {
	lanes := make([]*Lane, 0, len(section.lanes))
	for id, lane := range section.lanes {
		if id < 0 {
			lanes = append(lanes, lane)
		}
	}
	sort.Slice(lanes, func(i, j int) bool {
		return lanes[i].ID > lanes[j].ID
	})
	return lanes
}

// Lanes returns all lanes ordered by ID ascending
func (section *LaneSection) Lanes() []*Lane {
	lanes := make([]*Lane, 0, len(section.lanes))
	for _, lane := range section.lanes {
		lanes = append(lanes, lane)
	}
	sort.Slice(lanes, func(i, j int) bool {
		return lanes[i].ID < lanes[j].ID
	})
	return lanes
}

// InnerOffset returns summary width of lanes strictly between the center lane and given lane
// on the same side, i.e. distance from reference line to the inner edge of the lane.
// ds is measured from the section start.
func (section *LaneSection) InnerOffset(laneID int, ds float64) (float64, error) {
	if _, ok := section.lanes[laneID]; !ok {
		return 0, errors.Wrapf(ErrLaneNotFound, "lane %d in section at s=%f", laneID, section.S)
	}
	if laneID == 0 {
		return 0, nil
	}
	step := 1
	if laneID < 0 {
		step = -1
	}
	total := 0.0
	for id := step; id != laneID; id += step {
		if lane, ok := section.lanes[id]; ok {
			total += lane.WidthAt(ds)
		}
	}
	return total, nil
}

// CenterOffset returns distance from reference line to the centerline of the lane
func (section *LaneSection) CenterOffset(laneID int, ds float64) (float64, error) {
	inner, err := section.InnerOffset(laneID, ds)
	if err != nil {
		return 0, err
	}
	return inner + 0.5*section.lanes[laneID].WidthAt(ds), nil
}

// OuterOffset returns distance from reference line to the outer edge of the lane
func (section *LaneSection) OuterOffset(laneID int, ds float64) (float64, error) {
	inner, err := section.InnerOffset(laneID, ds)
	if err != nil {
		return 0, err
	}
	return inner + section.lanes[laneID].WidthAt(ds), nil
}
