package roadnet

import (
	"strings"

	"github.com/pkg/errors"
)

// TrafficRule decides whether lane at given road end carries traffic toward a junction (entry)
// or away from it (exit)
type TrafficRule interface {
	IsEntry(contact ContactPoint, laneID int) bool
}

// TrafficSide is a built-in TrafficRule
type TrafficSide uint16

const (
	// START with negative lane or END with positive lane is an entry
	TRAFFIC_RHT = TrafficSide(iota + 1)
	// Mirror of TRAFFIC_RHT
	TRAFFIC_LHT
)

func (iotaIdx TrafficSide) String() string {
	names := [...]string{"undefined", "rht", "lht"}
	if int(iotaIdx) >= len(names) {
		return "unknown"
	}
	return names[iotaIdx]
}

func (iotaIdx TrafficSide) IsEntry(contact ContactPoint, laneID int) bool {
	if laneID == 0 {
		return false
	}
	entry := (contact == CONTACT_START && laneID < 0) || (contact == CONTACT_END && laneID > 0)
	if iotaIdx == TRAFFIC_LHT {
		return !entry
	}
	return entry
}

// TrafficSideFromString parses 'rht' / 'lht' (case insensitive)
func TrafficSideFromString(str string) (TrafficSide, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "rht", "right":
		return TRAFFIC_RHT, nil
	case "lht", "left":
		return TRAFFIC_LHT, nil
	default:
		return 0, errors.Wrapf(ErrUnknownTrafficRule, "'%s'", str)
	}
}
