package roadnet

import (
	"fmt"

	"github.com/pkg/errors"
)

type JunctionID int

type ConnectionID int

// LaneLink maps lane of incoming road to lane of connecting road
type LaneLink struct {
	From int
	To   int
}

// Connection links incoming road to connecting (or directly outgoing) road inside a junction
type Connection struct {
	LaneLinks       []LaneLink
	ID              ConnectionID
	IncomingRoad    RoadID
	IncomingContact ContactPoint // End of incoming road touching the junction
	ConnectingRoad  RoadID
	ContactPoint    ContactPoint // End of connecting road touching the junction
	OutgoingRoad    RoadID
	Turn            TurnType
	Movement        TurnCompositeType
}

// LaneLinkFrom returns lane link starting at given incoming lane
func (conn *Connection) LaneLinkFrom(from int) (LaneLink, bool) {
	for _, link := range conn.LaneLinks {
		if link.From == from {
			return link, true
		}
	}
	return LaneLink{}, false
}

func (conn *Connection) addLaneLink(link LaneLink) error {
	if _, ok := conn.LaneLinkFrom(link.From); ok {
		return errors.Wrapf(ErrLaneLinkExists, "connection %d already links lane %d", conn.ID, link.From)
	}
	conn.LaneLinks = append(conn.LaneLinks, link)
	return nil
}

func (conn *Connection) removeLaneLink(from int) error {
	for i, link := range conn.LaneLinks {
		if link.From == from {
			conn.LaneLinks = append(conn.LaneLinks[:i], conn.LaneLinks[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(ErrLaneLinkNotFound, "connection %d has no link from lane %d", conn.ID, from)
}

// sameEnds reports whether connection joins exactly the given road ends
func (conn *Connection) sameEnds(incoming RoadID, incomingContact ContactPoint, connecting RoadID, contact ContactPoint) bool {
	return conn.IncomingRoad == incoming && conn.IncomingContact == incomingContact &&
		conn.ConnectingRoad == connecting && conn.ContactPoint == contact
}

func (conn *Connection) clone() *Connection {
	cp := *conn
	cp.LaneLinks = make([]LaneLink, len(conn.LaneLinks))
	copy(cp.LaneLinks, conn.LaneLinks)
	return &cp
}

// Junction is an intersection node owning connections between roads
type Junction struct {
	connections []*Connection
	Name        string
	ID          JunctionID
}

func NewJunction(id JunctionID, name string) *Junction {
	if name == "" {
		name = fmt.Sprintf("junction_%d", id)
	}
	return &Junction{
		ID:          id,
		Name:        name,
		connections: make([]*Connection, 0),
	}
}

// Connections returns connections in creation order
func (junction *Junction) Connections() []*Connection {
	out := make([]*Connection, len(junction.connections))
	copy(out, junction.connections)
	return out
}

// Connection returns connection by ID
func (junction *Junction) Connection(id ConnectionID) (*Connection, bool) {
	for _, conn := range junction.connections {
		if conn.ID == id {
			return conn, true
		}
	}
	return nil, false
}

// FindConnection returns connection from incoming road to connecting road
func (junction *Junction) FindConnection(incoming, connecting RoadID) (*Connection, bool) {
	for _, conn := range junction.connections {
		if conn.IncomingRoad == incoming && conn.ConnectingRoad == connecting {
			return conn, true
		}
	}
	return nil, false
}

// ConnectionsFrom returns connections with given incoming road
func (junction *Junction) ConnectionsFrom(incoming RoadID) []*Connection {
	out := []*Connection{}
	for _, conn := range junction.connections {
		if conn.IncomingRoad == incoming {
			out = append(out, conn)
		}
	}
	return out
}

// AddConnection adds connection. ID and the pair of joined road ends must be unique.
func (junction *Junction) AddConnection(conn *Connection) error {
	for _, existing := range junction.connections {
		if existing.ID == conn.ID {
			return errors.Wrapf(ErrConnectionExists, "junction %d already has connection %d", junction.ID, conn.ID)
		}
		if existing.sameEnds(conn.IncomingRoad, conn.IncomingContact, conn.ConnectingRoad, conn.ContactPoint) {
			return errors.Wrapf(ErrConnectionExists, "junction %d already connects road %d to road %d", junction.ID, conn.IncomingRoad, conn.ConnectingRoad)
		}
	}
	junction.connections = append(junction.connections, conn)
	return nil
}

// RemoveConnection deletes connection by ID
func (junction *Junction) RemoveConnection(id ConnectionID) error {
	for i, conn := range junction.connections {
		if conn.ID == id {
			junction.connections = append(junction.connections[:i], junction.connections[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(ErrConnectionNotFound, "connection %d in junction %d", id, junction.ID)
}

// NextConnectionID returns ID greater than any existing one
func (junction *Junction) NextConnectionID() ConnectionID {
	next := ConnectionID(0)
	for _, conn := range junction.connections {
		if conn.ID >= next {
			next = conn.ID + 1
		}
	}
	return next
}

// touches reports whether given road end takes part in any connection of the junction
func (junction *Junction) touches(road RoadID, contact ContactPoint) bool {
	for _, conn := range junction.connections {
		if conn.IncomingRoad == road && conn.IncomingContact == contact {
			return true
		}
		if conn.ConnectingRoad == road && conn.ContactPoint == contact {
			return true
		}
	}
	return false
}

func (junction *Junction) clone() *Junction {
	cp := &Junction{
		ID:          junction.ID,
		Name:        junction.Name,
		connections: make([]*Connection, len(junction.connections)),
	}
	for i, conn := range junction.connections {
		cp.connections[i] = conn.clone()
	}
	return cp
}
