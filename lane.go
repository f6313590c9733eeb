package roadnet

import (
	"math"
	"sort"
)

// LaneWidth is a cubic width polynomial valid from SOffset (relative to lane section start)
// up to SOffset of the next record
type LaneWidth struct {
	SOffset float64
	A       float64
	B       float64
	C       float64
	D       float64
}

// Eval returns width at ds measured from the lane section start
func (w LaneWidth) Eval(ds float64) float64 {
	return cubic(w.A, w.B, w.C, w.D, ds-w.SOffset)
}

// laneWidths is kept sorted by SOffset
type laneWidths []LaneWidth

// insert keeps order; records with equal SOffset keep insertion order and the later one wins on lookup
func (widths laneWidths) insert(w LaneWidth) laneWidths {
	idx := sort.Search(len(widths), func(i int) bool {
		return widths[i].SOffset > w.SOffset
	})
	widths = append(widths, LaneWidth{})
	copy(widths[idx+1:], widths[idx:])
	widths[idx] = w
	return widths
}

// find returns the record with the greatest SOffset not exceeding ds.
// When ds precedes every record the first one is used.
func (widths laneWidths) find(ds float64) (LaneWidth, bool) {
	if len(widths) == 0 {
		return LaneWidth{}, false
	}
	idx := sort.Search(len(widths), func(i int) bool {
		return widths[i].SOffset > ds
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return widths[idx], true
}

// Lane is a single lane of a lane section. ID > 0 is left of the reference line, ID < 0 is right, 0 is center.
type Lane struct {
	widths laneWidths
	ID     int
	Type   LaneType
	Level  bool
}

// NewLane creates lane. Width records may come in any order.
func NewLane(id int, laneType LaneType, widths ...LaneWidth) *Lane {
	lane := &Lane{
		ID:     id,
		Type:   laneType,
		widths: make(laneWidths, 0, len(widths)),
	}
	for _, w := range widths {
		lane.AddWidth(w)
	}
	return lane
}

// AddWidth inserts width record. Center lane never gets width.
func (lane *Lane) AddWidth(w LaneWidth) {
	if lane.ID == 0 {
		return
	}
	lane.widths = lane.widths.insert(w)
}

// Widths returns copy of width records sorted by SOffset
func (lane *Lane) Widths() []LaneWidth {
	out := make([]LaneWidth, len(lane.widths))
	copy(out, lane.widths)
	return out
}

// WidthAt returns lane width at ds measured from the lane section start. Negative polynomial values give 0.
func (lane *Lane) WidthAt(ds float64) float64 {
	if lane.ID == 0 {
		return 0
	}
	w, ok := lane.widths.find(ds)
	if !ok {
		return 0
	}
	return math.Max(0, w.Eval(ds))
}

// IsDriving reports whether lane carries motorized traffic
func (lane *Lane) IsDriving() bool {
	return lane.Type == LANE_DRIVING
}

// Side returns +1 for left lanes, -1 for right lanes and 0 for the center lane
func (lane *Lane) Side() int {
	switch {
	case lane.ID > 0:
		return 1
	case lane.ID < 0:
		return -1
	default:
		return 0
	}
}
