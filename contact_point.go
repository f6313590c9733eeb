package roadnet

// ContactPoint is the end of a road participating in a link
type ContactPoint uint16

const (
	CONTACT_START = ContactPoint(iota + 1)
	CONTACT_END

	CONTACT_UNDEFINED = ContactPoint(0)
)

func (iotaIdx ContactPoint) String() string {
	names := [...]string{"undefined", "start", "end"}
	if int(iotaIdx) >= len(names) {
		return "unknown"
	}
	return names[iotaIdx]
}

// Opposite returns the other end of the road
func (iotaIdx ContactPoint) Opposite() ContactPoint {
	switch iotaIdx {
	case CONTACT_START:
		return CONTACT_END
	case CONTACT_END:
		return CONTACT_START
	default:
		return CONTACT_UNDEFINED
	}
}

// ElementType is type of the element a road is linked to
type ElementType uint16

const (
	ELEMENT_ROAD = ElementType(iota + 1)
	ELEMENT_JUNCTION
)

func (iotaIdx ElementType) String() string {
	names := [...]string{"undefined", "road", "junction"}
	if int(iotaIdx) >= len(names) {
		return "unknown"
	}
	return names[iotaIdx]
}
