package roadnet

type HighwayType uint16

const (
	HIGHWAY_MOTORWAY = HighwayType(iota + 1)
	HIGHWAY_MOTORWAY_LINK
	HIGHWAY_TRUNK
	HIGHWAY_TRUNK_LINK
	HIGHWAY_PRIMARY
	HIGHWAY_PRIMARY_LINK
	HIGHWAY_SECONDARY
	HIGHWAY_SECONDARY_LINK
	HIGHWAY_TERTIARY
	HIGHWAY_TERTIARY_LINK
	HIGHWAY_RESIDENTIAL
	HIGHWAY_RESIDENTIAL_LINK
	HIGHWAY_LIVING_STREET
	HIGHWAY_SERVICE
	HIGHWAY_SERVICES
	HIGHWAY_CYCLEWAY
	HIGHWAY_FOOTWAY
	HIGHWAY_PEDESTRIAN
	HIGHWAY_STEPS
	HIGHWAY_TRACK
	HIGHWAY_UNCLASSIFIED
)

func (iotaIdx HighwayType) String() string {
	names := [...]string{"undefined", "motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "residential", "residential_link", "living_street", "service", "services", "cycleway", "footway", "pedestrian", "steps", "track", "unclassified"}
	if int(iotaIdx) >= len(names) {
		return "unknown"
	}
	return names[iotaIdx]
}

func getHighwayType(str string) HighwayType {
	if found, ok := highwaysTypes[str]; ok {
		return found
	}
	return 0
}

// highwayProfile holds defaults applied when OSM tags don't say otherwise
type highwayProfile struct {
	lanes         int
	laneType      LaneType
	onewayDefault bool
}

var (
	highwayProfiles = map[HighwayType]highwayProfile{
		HIGHWAY_MOTORWAY:         {4, LANE_DRIVING, false},
		HIGHWAY_MOTORWAY_LINK:    {4, LANE_DRIVING, false},
		HIGHWAY_TRUNK:            {3, LANE_DRIVING, false},
		HIGHWAY_TRUNK_LINK:       {3, LANE_DRIVING, false},
		HIGHWAY_PRIMARY:          {3, LANE_DRIVING, false},
		HIGHWAY_PRIMARY_LINK:     {3, LANE_DRIVING, false},
		HIGHWAY_SECONDARY:        {2, LANE_DRIVING, false},
		HIGHWAY_SECONDARY_LINK:   {2, LANE_DRIVING, false},
		HIGHWAY_TERTIARY:         {2, LANE_DRIVING, false},
		HIGHWAY_TERTIARY_LINK:    {2, LANE_DRIVING, false},
		HIGHWAY_RESIDENTIAL:      {1, LANE_DRIVING, false},
		HIGHWAY_RESIDENTIAL_LINK: {1, LANE_DRIVING, false},
		HIGHWAY_LIVING_STREET:    {1, LANE_DRIVING, false},
		HIGHWAY_SERVICE:          {1, LANE_DRIVING, false},
		HIGHWAY_SERVICES:         {1, LANE_DRIVING, false},
		HIGHWAY_CYCLEWAY:         {1, LANE_BIKING, true},
		HIGHWAY_FOOTWAY:          {1, LANE_SIDEWALK, true},
		HIGHWAY_PEDESTRIAN:       {1, LANE_SIDEWALK, true},
		HIGHWAY_STEPS:            {1, LANE_SIDEWALK, true},
		HIGHWAY_TRACK:            {1, LANE_DRIVING, true},
		HIGHWAY_UNCLASSIFIED:     {1, LANE_DRIVING, false},
	}

	highwaysTypes = map[string]HighwayType{
		"motorway":         HIGHWAY_MOTORWAY,
		"motorway_link":    HIGHWAY_MOTORWAY_LINK,
		"trunk":            HIGHWAY_TRUNK,
		"trunk_link":       HIGHWAY_TRUNK_LINK,
		"primary":          HIGHWAY_PRIMARY,
		"primary_link":     HIGHWAY_PRIMARY_LINK,
		"secondary":        HIGHWAY_SECONDARY,
		"secondary_link":   HIGHWAY_SECONDARY_LINK,
		"tertiary":         HIGHWAY_TERTIARY,
		"tertiary_link":    HIGHWAY_TERTIARY_LINK,
		"residential":      HIGHWAY_RESIDENTIAL,
		"residential_link": HIGHWAY_RESIDENTIAL_LINK,
		"living_street":    HIGHWAY_LIVING_STREET,
		"service":          HIGHWAY_SERVICE,
		"services":         HIGHWAY_SERVICES,
		"cycleway":         HIGHWAY_CYCLEWAY,
		"footway":          HIGHWAY_FOOTWAY,
		"pedestrian":       HIGHWAY_PEDESTRIAN,
		"steps":            HIGHWAY_STEPS,
		"track":            HIGHWAY_TRACK,
		"unclassified":     HIGHWAY_UNCLASSIFIED,
	}

	// Drivable highways imported by default
	defaultHighwayTypes = []string{
		"motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link",
		"secondary", "secondary_link", "tertiary", "tertiary_link", "residential", "residential_link",
		"living_street", "service", "unclassified",
	}

	junctionTypes = map[string]struct{}{
		"circular":   {},
		"roundabout": {},
	}

	onewayReversible = map[string]struct{}{
		"reversible":  {},
		"alternating": {},
	}
)
