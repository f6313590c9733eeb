package roadnet

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// FindNearestRoad returns road whose reference line is the closest to the point and the distance to it.
// Reference lines are approximated by polylines with the network sampling step.
func (net *RoadNetwork) FindNearestRoad(pt orb.Point) (*Road, float64, error) {
	var nearest *Road
	best := math.Inf(1)
	for _, road := range net.Roads() {
		line := road.curve.Sample(net.samplingStep)
		d := planar.DistanceFrom(line, pt)
		if d < best {
			best = d
			nearest = road
		}
	}
	if nearest == nil {
		return nil, 0, errors.Wrap(ErrRoadNotFound, "network has no roads")
	}
	return nearest, best, nil
}
