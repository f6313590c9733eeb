package roadnet

import (
	"math"
)

type TurnType uint16

const (
	TURN_THRU = TurnType(iota + 1)
	TURN_RIGHT
	TURN_LEFT
	TURN_U_TURN

	TURN_UNDEFINED = TurnType(0)
)

func (iotaIdx TurnType) String() string {
	names := [...]string{"undefined", "thru", "right", "left", "uturn"}
	if int(iotaIdx) >= len(names) {
		return "unknown"
	}
	return names[iotaIdx]
}

// TurnCompositeType is approach bound combined with turn type
type TurnCompositeType uint16

const (
	TURN_SBT = TurnCompositeType(iota + 1)
	TURN_SBR
	TURN_SBL
	TURN_SBU
	TURN_EBT
	TURN_EBR
	TURN_EBL
	TURN_EBU
	TURN_NBT
	TURN_NBR
	TURN_NBL
	TURN_NBU
	TURN_WBT
	TURN_WBR
	TURN_WBL
	TURN_WBU
	TURN_NONE = TurnCompositeType(0)
)

var (
	turnTxt = map[string]TurnCompositeType{
		"SBT": TURN_SBT,
		"SBR": TURN_SBR,
		"SBL": TURN_SBL,
		"SBU": TURN_SBU,
		"EBT": TURN_EBT,
		"EBR": TURN_EBR,
		"EBL": TURN_EBL,
		"EBU": TURN_EBU,
		"NBT": TURN_NBT,
		"NBR": TURN_NBR,
		"NBL": TURN_NBL,
		"NBU": TURN_NBU,
		"WBT": TURN_WBT,
		"WBR": TURN_WBR,
		"WBL": TURN_WBL,
		"WBU": TURN_WBU,
	}
)

func (iotaIdx TurnCompositeType) String() string {
	names := [...]string{"undefined", "SBT", "SBR", "SBL", "SBU", "EBT", "EBR", "EBL", "EBU", "NBT", "NBR", "NBL", "NBU", "WBT", "WBR", "WBL", "WBU"}
	if int(iotaIdx) >= len(names) {
		return "unknown"
	}
	return names[iotaIdx]
}

// turnBetweenHeadings classifies movement from travel direction hdgIn (entering junction)
// to travel direction hdgOut (leaving junction). Headings are in radians.
func turnBetweenHeadings(hdgIn, hdgOut float64) (TurnCompositeType, TurnType) {
	angle1 := normalizeHeading(hdgIn)
	var direction string
	if -0.75*math.Pi <= angle1 && angle1 < -0.25*math.Pi {
		direction = "SB"
	} else if -0.25*math.Pi <= angle1 && angle1 < 0.25*math.Pi {
		direction = "EB"
	} else if 0.25*math.Pi <= angle1 && angle1 < 0.75*math.Pi {
		direction = "NB"
	} else {
		direction = "WB"
	}

	angleDiff := headingDifference(hdgIn, hdgOut)

	var turn string
	var turnType TurnType
	if -0.25*math.Pi <= angleDiff && angleDiff <= 0.25*math.Pi {
		turn = "T"
		turnType = TURN_THRU
	} else if angleDiff < -0.25*math.Pi && angleDiff >= -0.75*math.Pi {
		turn = "R"
		turnType = TURN_RIGHT
	} else if angleDiff > 0.25*math.Pi && angleDiff <= 0.75*math.Pi {
		turn = "L"
		turnType = TURN_LEFT
	} else {
		turn = "U"
		turnType = TURN_U_TURN
	}
	return turnTxt[direction+turn], turnType
}
