package roadnet

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// PositionAt returns pose on reference line of the road at s
func (net *RoadNetwork) PositionAt(roadID RoadID, s float64) (Pose, error) {
	road, err := net.Road(roadID)
	if err != nil {
		Logger().Warn("can't evaluate road position", "error", err)
		return Pose{}, err
	}
	return road.PositionAt(s), nil
}

// LanePosition returns world position of point lying on the inner edge of the lane
// shifted outward by lateralOffset. The center lane (laneID = 0) has no direction and is rejected.
// On error the origin is returned.
func (net *RoadNetwork) LanePosition(roadID RoadID, laneID int, s, lateralOffset float64) (orb.Point, error) {
	pt, err := net.lanePose(roadID, laneID, s, func(section *LaneSection, ds float64) (float64, error) {
		return section.InnerOffset(laneID, ds)
	})
	if err != nil {
		return orb.Point{}, err
	}
	return shift(pt, laneID, lateralOffset), nil
}

// LaneCenterPosition returns world position on the lane centerline
func (net *RoadNetwork) LaneCenterPosition(roadID RoadID, laneID int, s float64) (orb.Point, error) {
	pt, err := net.lanePose(roadID, laneID, s, func(section *LaneSection, ds float64) (float64, error) {
		return section.CenterOffset(laneID, ds)
	})
	if err != nil {
		return orb.Point{}, err
	}
	return pt.Point(), nil
}

// LaneOuterPosition returns world position on the outer edge of the lane
func (net *RoadNetwork) LaneOuterPosition(roadID RoadID, laneID int, s float64) (orb.Point, error) {
	pt, err := net.lanePose(roadID, laneID, s, func(section *LaneSection, ds float64) (float64, error) {
		return section.OuterOffset(laneID, ds)
	})
	if err != nil {
		return orb.Point{}, err
	}
	return pt.Point(), nil
}

// LaneCenterline samples lane centerline with the network sampling step.
// Stretches of the road where the lane doesn't exist are skipped.
func (net *RoadNetwork) LaneCenterline(roadID RoadID, laneID int) (orb.LineString, error) {
	if laneID == 0 {
		return nil, errors.Wrapf(ErrCenterLane, "road %d", roadID)
	}
	road, err := net.Road(roadID)
	if err != nil {
		return nil, err
	}
	n := int(math.Ceil(road.Length / net.samplingStep))
	if n < 1 {
		n = 1
	}
	line := make(orb.LineString, 0, n+1)
	for i := 0; i <= n; i++ {
		s := math.Min(float64(i)*net.samplingStep, road.Length)
		section, err := road.SectionAt(s)
		if err != nil {
			continue
		}
		if _, ok := section.Lane(laneID); !ok {
			continue
		}
		offset, err := section.CenterOffset(laneID, s-section.S)
		if err != nil {
			continue
		}
		line = append(line, road.PositionAt(s).moved(laneID, offset).Point())
	}
	if len(line) < 2 {
		return nil, errors.Wrapf(ErrLaneNotFound, "lane %d of road %d", laneID, roadID)
	}
	return line, nil
}

type offsetFunc func(section *LaneSection, ds float64) (float64, error)

// lanePose moves reference line pose at s to the lateral offset computed by offsetFn.
// Returned pose keeps reference line heading.
func (net *RoadNetwork) lanePose(roadID RoadID, laneID int, s float64, offsetFn offsetFunc) (Pose, error) {
	if laneID == 0 {
		err := errors.Wrapf(ErrCenterLane, "road %d", roadID)
		Logger().Warn("can't evaluate lane position", "error", err)
		return Pose{}, err
	}
	if s < 0 {
		Logger().Warn("negative s clamped to zero", "road", roadID, "lane", laneID, "s", s)
		s = 0
	}
	road, err := net.Road(roadID)
	if err != nil {
		Logger().Warn("can't evaluate lane position", "error", err)
		return Pose{}, err
	}
	pose := road.PositionAt(s)
	section, err := road.SectionAt(s)
	if err != nil {
		Logger().Warn("can't evaluate lane position", "error", err)
		return Pose{}, err
	}
	if _, ok := section.Lane(laneID); !ok {
		err = errors.Wrapf(ErrLaneNotFound, "lane %d of road %d at s=%f", laneID, roadID, s)
		Logger().Warn("can't evaluate lane position", "error", err)
		return Pose{}, err
	}
	offset, err := offsetFn(section, s-section.S)
	if err != nil {
		Logger().Warn("can't evaluate lane position", "error", err)
		return Pose{}, err
	}
	return pose.moved(laneID, offset), nil
}

// moved shifts pose along its left normal toward the side of the lane
func (p Pose) moved(laneID int, distance float64) Pose {
	nx, ny := leftNormal(p.Hdg)
	dir := sign(laneID)
	return Pose{
		X:   p.X + nx*dir*distance,
		Y:   p.Y + ny*dir*distance,
		Hdg: p.Hdg,
	}
}

func shift(p Pose, laneID int, distance float64) orb.Point {
	return p.moved(laneID, distance).Point()
}
