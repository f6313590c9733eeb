package roadnet

import (
	"fmt"

	"github.com/pkg/errors"
)

// Command is a single reversible mutation of junction graph.
// Hosts wrap commands into their undo/redo layer; Revert undoes exactly what Apply did.
type Command interface {
	Apply(net *RoadNetwork) error
	Revert(net *RoadNetwork) error
	String() string
}

// CommandSink executes commands produced by synthesis (the host's reversible command layer)
type CommandSink interface {
	Execute(cmd Command) error
}

// CreateJunction adds empty junction
type CreateJunction struct {
	Name     string
	Junction JunctionID
}

func (cmd CreateJunction) Apply(net *RoadNetwork) error {
	if err := net.addJunction(NewJunction(cmd.Junction, cmd.Name)); err != nil {
		return err
	}
	net.announcer.Announce(Event{Kind: EVENT_JUNCTION_CREATED, JunctionID: cmd.Junction})
	return nil
}

func (cmd CreateJunction) Revert(net *RoadNetwork) error {
	if err := net.removeJunction(cmd.Junction); err != nil {
		return err
	}
	net.announcer.Announce(Event{Kind: EVENT_JUNCTION_REMOVED, JunctionID: cmd.Junction})
	return nil
}

func (cmd CreateJunction) String() string {
	return fmt.Sprintf("create junction %d '%s'", cmd.Junction, cmd.Name)
}

// CreateConnection adds connection without lane links to existing junction
type CreateConnection struct {
	Connection Connection
	Junction   JunctionID
}

func (cmd CreateConnection) Apply(net *RoadNetwork) error {
	junction, err := net.Junction(cmd.Junction)
	if err != nil {
		return err
	}
	conn := cmd.Connection.clone()
	if err := junction.AddConnection(conn); err != nil {
		return err
	}
	net.announcer.Announce(Event{Kind: EVENT_CONNECTION_CREATED, JunctionID: cmd.Junction, ConnectionID: conn.ID})
	return nil
}

func (cmd CreateConnection) Revert(net *RoadNetwork) error {
	junction, err := net.Junction(cmd.Junction)
	if err != nil {
		return err
	}
	if err := junction.RemoveConnection(cmd.Connection.ID); err != nil {
		return err
	}
	net.announcer.Announce(Event{Kind: EVENT_CONNECTION_REMOVED, JunctionID: cmd.Junction, ConnectionID: cmd.Connection.ID})
	return nil
}

func (cmd CreateConnection) String() string {
	return fmt.Sprintf("create connection %d in junction %d: road %d (%s) -> road %d (%s)", cmd.Connection.ID, cmd.Junction, cmd.Connection.IncomingRoad, cmd.Connection.IncomingContact, cmd.Connection.ConnectingRoad, cmd.Connection.ContactPoint)
}

// CreateLaneLink adds lane link to existing connection
type CreateLaneLink struct {
	Link       LaneLink
	Junction   JunctionID
	Connection ConnectionID
}

func (cmd CreateLaneLink) connection(net *RoadNetwork) (*Connection, error) {
	junction, err := net.Junction(cmd.Junction)
	if err != nil {
		return nil, err
	}
	conn, ok := junction.Connection(cmd.Connection)
	if !ok {
		return nil, errors.Wrapf(ErrConnectionNotFound, "connection %d in junction %d", cmd.Connection, cmd.Junction)
	}
	return conn, nil
}

func (cmd CreateLaneLink) Apply(net *RoadNetwork) error {
	conn, err := cmd.connection(net)
	if err != nil {
		return err
	}
	if err := conn.addLaneLink(cmd.Link); err != nil {
		return err
	}
	net.announcer.Announce(Event{Kind: EVENT_LANE_LINK_CREATED, JunctionID: cmd.Junction, ConnectionID: cmd.Connection, LaneLink: cmd.Link})
	return nil
}

func (cmd CreateLaneLink) Revert(net *RoadNetwork) error {
	conn, err := cmd.connection(net)
	if err != nil {
		return err
	}
	if err := conn.removeLaneLink(cmd.Link.From); err != nil {
		return err
	}
	net.announcer.Announce(Event{Kind: EVENT_LANE_LINK_REMOVED, JunctionID: cmd.Junction, ConnectionID: cmd.Connection, LaneLink: cmd.Link})
	return nil
}

func (cmd CreateLaneLink) String() string {
	return fmt.Sprintf("create lane link %d -> %d in connection %d of junction %d", cmd.Link.From, cmd.Link.To, cmd.Connection, cmd.Junction)
}

// NetworkSink applies commands directly to the network and remembers them in execution order
type NetworkSink struct {
	net      *RoadNetwork
	executed []Command
}

func NewNetworkSink(net *RoadNetwork) *NetworkSink {
	return &NetworkSink{
		net:      net,
		executed: make([]Command, 0),
	}
}

func (sink *NetworkSink) Execute(cmd Command) error {
	if err := cmd.Apply(sink.net); err != nil {
		return errors.Wrapf(err, "Can't %s", cmd)
	}
	sink.executed = append(sink.executed, cmd)
	return nil
}

// Executed returns commands applied so far
func (sink *NetworkSink) Executed() []Command {
	out := make([]Command, len(sink.executed))
	copy(out, sink.executed)
	return out
}

// RecordingSink only collects commands. Hosts use it to compute synthesis off-line and apply results later.
type RecordingSink struct {
	Commands []Command
}

func (sink *RecordingSink) Execute(cmd Command) error {
	sink.Commands = append(sink.Commands, cmd)
	return nil
}
