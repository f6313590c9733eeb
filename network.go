package roadnet

import (
	"fmt"

	"github.com/pkg/errors"
)

// RoadNetwork owns roads and junctions. It is passed explicitly to every query and synthesis call.
// Not safe for concurrent mutation: one writer, any number of readers between writes.
type RoadNetwork struct {
	roads          map[RoadID]*Road
	roadsOrder     []RoadID
	junctions      map[JunctionID]*Junction
	junctionsOrder []JunctionID
	trafficRule    TrafficRule
	announcer      Announcer
	samplingStep   float64
}

func NewRoadNetwork(options ...func(*RoadNetwork)) *RoadNetwork {
	net := &RoadNetwork{
		roads:        make(map[RoadID]*Road),
		roadsOrder:   make([]RoadID, 0),
		junctions:    make(map[JunctionID]*Junction),
		trafficRule:  TRAFFIC_RHT,
		announcer:    nopAnnouncer{},
		samplingStep: defaultSamplingStep,
	}
	for _, option := range options {
		option(net)
	}
	return net
}

func (net *RoadNetwork) String() string {
	return fmt.Sprintf(`
Road network:
	roads: %d
	junctions: %d
	traffic rule: %v
	sampling step: %f
	`,
		len(net.roads),
		len(net.junctions),
		net.trafficRule,
		net.samplingStep,
	)
}

// TrafficRule returns rule used to derive entry/exit roles
func (net *RoadNetwork) TrafficRule() TrafficRule {
	return net.trafficRule
}

// AddRoad adds road to the network
func (net *RoadNetwork) AddRoad(road *Road) error {
	if road == nil {
		return errors.Wrap(ErrNilElement, "road")
	}
	if road.curve == nil {
		return errors.Wrapf(ErrInvalidGeometry, "road %d has no reference line, create it with NewRoad", road.ID)
	}
	if _, ok := net.roads[road.ID]; ok {
		return errors.Wrapf(ErrRoadExists, "road %d", road.ID)
	}
	net.roads[road.ID] = road
	net.roadsOrder = append(net.roadsOrder, road.ID)
	net.announcer.Announce(Event{Kind: EVENT_ROAD_ADDED, RoadID: road.ID})
	return nil
}

// Road returns road by ID
func (net *RoadNetwork) Road(id RoadID) (*Road, error) {
	road, ok := net.roads[id]
	if !ok {
		return nil, errors.Wrapf(ErrRoadNotFound, "road %d", id)
	}
	return road, nil
}

// Roads returns roads in insertion order
func (net *RoadNetwork) Roads() []*Road {
	out := make([]*Road, 0, len(net.roadsOrder))
	for _, id := range net.roadsOrder {
		out = append(out, net.roads[id])
	}
	return out
}

// Junction returns junction by ID
func (net *RoadNetwork) Junction(id JunctionID) (*Junction, error) {
	junction, ok := net.junctions[id]
	if !ok {
		return nil, errors.Wrapf(ErrJunctionNotFound, "junction %d", id)
	}
	return junction, nil
}

// Junctions returns junctions in creation order
func (net *RoadNetwork) Junctions() []*Junction {
	out := make([]*Junction, 0, len(net.junctionsOrder))
	for _, id := range net.junctionsOrder {
		out = append(out, net.junctions[id])
	}
	return out
}

// NextJunctionID returns ID greater than any existing junction ID
func (net *RoadNetwork) NextJunctionID() JunctionID {
	next := JunctionID(0)
	for id := range net.junctions {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

func (net *RoadNetwork) addJunction(junction *Junction) error {
	if _, ok := net.junctions[junction.ID]; ok {
		return errors.Wrapf(ErrJunctionExists, "junction %d", junction.ID)
	}
	net.junctions[junction.ID] = junction
	net.junctionsOrder = append(net.junctionsOrder, junction.ID)
	return nil
}

func (net *RoadNetwork) removeJunction(id JunctionID) error {
	if _, ok := net.junctions[id]; !ok {
		return errors.Wrapf(ErrJunctionNotFound, "junction %d", id)
	}
	delete(net.junctions, id)
	for i, jid := range net.junctionsOrder {
		if jid == id {
			net.junctionsOrder = append(net.junctionsOrder[:i], net.junctionsOrder[i+1:]...)
			break
		}
	}
	return nil
}

// JunctionAt returns junction the given road end belongs to. Connections are checked first, then road links.
func (net *RoadNetwork) JunctionAt(roadID RoadID, contact ContactPoint) (*Junction, bool) {
	for _, id := range net.junctionsOrder {
		if junction := net.junctions[id]; junction.touches(roadID, contact) {
			return junction, true
		}
	}
	road, ok := net.roads[roadID]
	if !ok {
		return nil, false
	}
	if link := road.LinkAt(contact); link != nil && link.ElementType == ELEMENT_JUNCTION {
		if junction, ok := net.junctions[JunctionID(link.ElementID)]; ok {
			return junction, true
		}
	}
	return nil, false
}

// snapshot copies junction graph. Roads are shared since synthesis never mutates them.
func (net *RoadNetwork) snapshot() *RoadNetwork {
	cp := &RoadNetwork{
		roads:          net.roads,
		roadsOrder:     net.roadsOrder,
		junctions:      make(map[JunctionID]*Junction, len(net.junctions)),
		junctionsOrder: make([]JunctionID, len(net.junctionsOrder)),
		trafficRule:    net.trafficRule,
		announcer:      nopAnnouncer{},
		samplingStep:   net.samplingStep,
	}
	copy(cp.junctionsOrder, net.junctionsOrder)
	for id, junction := range net.junctions {
		cp.junctions[id] = junction.clone()
	}
	return cp
}
