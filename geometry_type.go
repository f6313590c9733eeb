package roadnet

type GeometryType uint16

const (
	GEOMETRY_LINE = GeometryType(iota + 1)
	GEOMETRY_ARC
	GEOMETRY_SPIRAL
	GEOMETRY_POLY3
	GEOMETRY_PARAM_POLY3

	GEOMETRY_UNDEFINED = GeometryType(0)
)

func (iotaIdx GeometryType) String() string {
	if int(iotaIdx) >= len(geometryTypeNames) {
		return "unknown"
	}
	return geometryTypeNames[iotaIdx]
}

var geometryTypeNames = [...]string{"undefined", "line", "arc", "spiral", "poly3", "paramPoly3"}

// GeometryTypeFromString returns GEOMETRY_UNDEFINED for unknown names
func GeometryTypeFromString(str string) GeometryType {
	for i, name := range geometryTypeNames {
		if i > 0 && name == str {
			return GeometryType(i)
		}
	}
	return GEOMETRY_UNDEFINED
}

// PRange defines parameter domain of paramPoly3 curve
type PRange uint16

const (
	P_RANGE_ARC_LENGTH = PRange(iota + 1)
	P_RANGE_NORMALIZED
)

func (iotaIdx PRange) String() string {
	names := [...]string{"undefined", "arcLength", "normalized"}
	if int(iotaIdx) >= len(names) {
		return "unknown"
	}
	return names[iotaIdx]
}
