package roadnet

type EventKind uint16

const (
	EVENT_ROAD_ADDED = EventKind(iota + 1)
	EVENT_JUNCTION_CREATED
	EVENT_JUNCTION_REMOVED
	EVENT_CONNECTION_CREATED
	EVENT_CONNECTION_REMOVED
	EVENT_LANE_LINK_CREATED
	EVENT_LANE_LINK_REMOVED
)

func (iotaIdx EventKind) String() string {
	names := [...]string{"undefined", "road_added", "junction_created", "junction_removed", "connection_created", "connection_removed", "lane_link_created", "lane_link_removed"}
	if int(iotaIdx) >= len(names) {
		return "unknown"
	}
	return names[iotaIdx]
}

// Event describes a single creation or removal. Fields not relevant to Kind are zero.
type Event struct {
	Kind         EventKind
	RoadID       RoadID
	JunctionID   JunctionID
	ConnectionID ConnectionID
	LaneLink     LaneLink
}

// Announcer is notified once per creation/removal so visualization can follow the network
type Announcer interface {
	Announce(event Event)
}

// AnnouncerFunc adapts a function to Announcer
type AnnouncerFunc func(event Event)

func (f AnnouncerFunc) Announce(event Event) {
	f(event)
}

type nopAnnouncer struct{}

func (nopAnnouncer) Announce(Event) {}
