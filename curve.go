package roadnet

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	curveGapToleranceAbs = 1e-3
	curveGapToleranceRel = 1e-6
)

// RoadCurve is the reference line of a road: ordered contiguous segments over [0, length]
type RoadCurve struct {
	segments []*RoadGeometry
	length   float64
	repaired bool
}

// NewRoadCurve builds reference line from given segments.
// Segments are sorted by s. If there are no segments or any of them is invalid
// the curve is replaced by a single line of length max(length, 1) so the road is still usable.
func NewRoadCurve(length float64, segments ...*RoadGeometry) *RoadCurve {
	curve := &RoadCurve{
		segments: make([]*RoadGeometry, 0, len(segments)),
		length:   length,
	}
	for _, seg := range segments {
		if seg == nil {
			continue
		}
		if err := seg.Validate(); err != nil {
			Logger().Error("replacing road reference line with default line", "error", err)
			return defaultRoadCurve(length)
		}
		curve.segments = append(curve.segments, seg)
	}
	if len(curve.segments) == 0 {
		Logger().Warn("road has no geometry, default line substituted", "length", math.Max(length, 1))
		return defaultRoadCurve(length)
	}
	sort.SliceStable(curve.segments, func(i, j int) bool {
		return curve.segments[i].S < curve.segments[j].S
	})
	if curve.length <= 0 {
		last := curve.segments[len(curve.segments)-1]
		curve.length = last.End()
	}
	if err := curve.Validate(); err != nil {
		Logger().Warn("road reference line is not contiguous", "error", err)
	}
	return curve
}

func defaultRoadCurve(length float64) *RoadCurve {
	l := math.Max(length, 1)
	return &RoadCurve{
		segments: []*RoadGeometry{NewLineGeometry(0, 0, 0, 0, l)},
		length:   l,
		repaired: true,
	}
}

// Length returns length of the reference line
func (curve *RoadCurve) Length() float64 {
	return curve.length
}

// Repaired reports whether default geometry has been substituted
func (curve *RoadCurve) Repaired() bool {
	return curve.repaired
}

// Segments returns copy of ordered segments list
func (curve *RoadCurve) Segments() []*RoadGeometry {
	out := make([]*RoadGeometry, len(curve.segments))
	copy(out, curve.segments)
	return out
}

// Validate checks that segments start at 0, are sorted, have no gaps and cover the whole length
func (curve *RoadCurve) Validate() error {
	tolerance := math.Max(curveGapToleranceAbs, curveGapToleranceRel*curve.length)
	if len(curve.segments) == 0 {
		return errors.Wrap(ErrInvalidGeometry, "no segments")
	}
	if math.Abs(curve.segments[0].S) > tolerance {
		return errors.Wrapf(ErrInvalidGeometry, "first segment starts at s=%f", curve.segments[0].S)
	}
	for i := 1; i < len(curve.segments); i++ {
		prev, cur := curve.segments[i-1], curve.segments[i]
		if cur.S < prev.S {
			return errors.Wrapf(ErrInvalidGeometry, "segment %d starts before segment %d", i, i-1)
		}
		if math.Abs(prev.End()-cur.S) > tolerance {
			return errors.Wrapf(ErrInvalidGeometry, "gap between s=%f and s=%f", prev.End(), cur.S)
		}
	}
	if last := curve.segments[len(curve.segments)-1]; math.Abs(last.End()-curve.length) > tolerance {
		return errors.Wrapf(ErrInvalidGeometry, "segments end at s=%f, road length is %f", last.End(), curve.length)
	}
	return nil
}

// segmentIndex returns index of the last segment with S <= s
func (curve *RoadCurve) segmentIndex(s float64) int {
	idx := sort.Search(len(curve.segments), func(i int) bool {
		return curve.segments[i].S > s
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return idx
}

// PositionAt returns pose on the reference line. s outside of [0, length] is clamped.
func (curve *RoadCurve) PositionAt(s float64) Pose {
	if s < 0 || s > curve.length {
		Logger().Warn("s is out of road range, clamped", "s", s, "length", curve.length)
		s = clamp(s, 0, curve.length)
	}
	return curve.segments[curve.segmentIndex(s)].PoseAt(s)
}

// Sample returns reference line as polyline with given maximum step. Both ends are always included.
func (curve *RoadCurve) Sample(step float64) orb.LineString {
	if step <= 0 {
		step = defaultSamplingStep
	}
	n := int(math.Ceil(curve.length / step))
	if n < 1 {
		n = 1
	}
	line := make(orb.LineString, 0, n+1)
	for i := 0; i <= n; i++ {
		s := math.Min(float64(i)*step, curve.length)
		line = append(line, curve.segments[curve.segmentIndex(s)].PoseAt(s).Point())
	}
	return line
}
