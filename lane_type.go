package roadnet

type LaneType uint16

const (
	LANE_DRIVING = LaneType(iota + 1)
	LANE_SIDEWALK
	LANE_SHOULDER
	LANE_BORDER
	LANE_BIKING
	LANE_PARKING
	LANE_MEDIAN
	LANE_STOP
	LANE_RESTRICTED

	LANE_NONE = LaneType(0)
)

var laneTypeNames = [...]string{"none", "driving", "sidewalk", "shoulder", "border", "biking", "parking", "median", "stop", "restricted"}

func (iotaIdx LaneType) String() string {
	if int(iotaIdx) >= len(laneTypeNames) {
		return "none"
	}
	return laneTypeNames[iotaIdx]
}

// LaneTypeFromString returns LANE_NONE for unknown names
func LaneTypeFromString(str string) LaneType {
	for i, name := range laneTypeNames {
		if name == str {
			return LaneType(i)
		}
	}
	return LANE_NONE
}
