package roadnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MergeSuite struct {
	suite.Suite
	events []Event
}

func (s *MergeSuite) SetupTest() {
	s.events = nil
}

func (s *MergeSuite) newNetwork(roads ...*Road) *RoadNetwork {
	net := NewRoadNetwork(WithAnnouncer(AnnouncerFunc(func(event Event) {
		s.events = append(s.events, event)
	})))
	for _, road := range roads {
		s.Require().NoError(net.AddRoad(road))
	}
	return net
}

func (s *MergeSuite) countEvents(kind EventKind) int {
	n := 0
	for _, event := range s.events {
		if event.Kind == kind {
			n++
		}
	}
	return n
}

func countLinks(net *RoadNetwork) int {
	n := 0
	for _, junction := range net.Junctions() {
		for _, conn := range junction.Connections() {
			n += len(conn.LaneLinks)
		}
	}
	return n
}

func (s *MergeSuite) TestEndToEnd() {
	t := s.T()
	net := s.newNetwork(
		straightRoad(t, 1, 0, 0, 0, 10, 3, -1),
		straightRoad(t, 2, 10, 0, 0, 10, 3, -1),
	)
	entries := net.CreateJunctionEntries(net.Roads())
	s.Require().Len(entries, 4)

	report, err := net.MergeEntries(entries, nil, WithMaxEndpointDistance(1))
	s.Require().NoError(err)
	s.Equal(1, report.JunctionsCreated)
	s.Equal(1, report.ConnectionsCreated)
	s.Equal(1, report.LaneLinksCreated)
	s.Equal(1, report.RejectedByDistance)

	junctions := net.Junctions()
	s.Require().Len(junctions, 1)
	conns := junctions[0].Connections()
	s.Require().Len(conns, 1)
	conn := conns[0]
	// Road 2 lane -1 enters at START, road 1 lane -1 leaves at END
	s.Equal(RoadID(2), conn.IncomingRoad)
	s.Equal(CONTACT_START, conn.IncomingContact)
	s.Equal(RoadID(1), conn.ConnectingRoad)
	s.Equal(CONTACT_END, conn.ContactPoint)
	s.Equal([]LaneLink{{From: -1, To: -1}}, conn.LaneLinks)
	s.Equal(TURN_THRU, conn.Turn)

	s.Equal(1, s.countEvents(EVENT_JUNCTION_CREATED))
	s.Equal(1, s.countEvents(EVENT_CONNECTION_CREATED))
	s.Equal(1, s.countEvents(EVENT_LANE_LINK_CREATED))

	jnc, ok := net.JunctionAt(1, CONTACT_END)
	s.True(ok)
	s.Equal(junctions[0].ID, jnc.ID)
	_, ok = net.JunctionAt(1, CONTACT_START)
	s.False(ok)
}

func (s *MergeSuite) TestEndToEndMeetingEntriesOnly() {
	t := s.T()
	net := s.newNetwork(
		straightRoad(t, 1, 0, 0, 0, 10, 3, -1),
		straightRoad(t, 2, 10, 0, 0, 10, 3, -1),
	)
	all := net.CreateJunctionEntries(net.Roads())
	meeting := []JunctionEntry{}
	for _, entry := range all {
		if (entry.RoadID == 1 && entry.ContactPoint == CONTACT_END) || (entry.RoadID == 2 && entry.ContactPoint == CONTACT_START) {
			meeting = append(meeting, entry)
		}
	}
	s.Require().Len(meeting, 2)

	report, err := net.MergeEntries(meeting, nil)
	s.Require().NoError(err)
	s.Equal(1, report.PairsConsidered)
	s.Len(net.Junctions(), 1)
	s.Len(net.Junctions()[0].Connections(), 1)
	s.Equal(1, countLinks(net))
}

func (s *MergeSuite) TestTJunction() {
	net := s.newNetwork(tJunctionRoads(s.T())...)
	entries := entriesAt(net.CreateJunctionEntries(net.Roads()), CONTACT_START)
	s.Require().Len(entries, 9)

	report, err := net.MergeEntries(entries, nil)
	s.Require().NoError(err)
	s.Equal(1, report.JunctionsCreated)
	s.Equal(6, report.ConnectionsCreated)
	s.Equal(6, report.LaneLinksCreated)

	junctions := net.Junctions()
	s.Require().Len(junctions, 1)
	junction := junctions[0]
	s.Len(junction.Connections(), 6)
	for _, incoming := range []RoadID{1, 2} {
		conns := junction.ConnectionsFrom(incoming)
		s.Require().Len(conns, 2)
		for _, conn := range conns {
			s.Require().Len(conn.LaneLinks, 1)
			s.Equal(-1, conn.LaneLinks[0].From)
			s.Equal(1, conn.LaneLinks[0].To)
		}
	}
	conn, ok := junction.FindConnection(1, 3)
	s.Require().True(ok)
	s.Equal(TURN_THRU, conn.Turn)
	conn, ok = junction.FindConnection(1, 2)
	s.Require().True(ok)
	s.Equal(TURN_RIGHT, conn.Turn)
	conn, ok = junction.FindConnection(2, 1)
	s.Require().True(ok)
	s.Equal(TURN_LEFT, conn.Turn)
}

func (s *MergeSuite) TestTJunctionSevenEntries() {
	net := tJunction(s.T())
	entries := entriesAt(net.CreateJunctionEntries(net.Roads()), CONTACT_START)
	seven := []JunctionEntry{}
	for _, entry := range entries {
		if entry.LaneID == -2 && entry.RoadID != 1 {
			continue
		}
		seven = append(seven, entry)
	}
	s.Require().Len(seven, 7)

	_, err := net.MergeEntries(seven, nil)
	s.Require().NoError(err)
	junctions := net.Junctions()
	s.Require().Len(junctions, 1)
	s.Len(junctions[0].Connections(), 6)
	for _, incoming := range []RoadID{1, 2} {
		for _, conn := range junctions[0].ConnectionsFrom(incoming) {
			s.Require().Len(conn.LaneLinks, 1)
			s.Equal(-1, conn.LaneLinks[0].From)
		}
	}
}

func (s *MergeSuite) TestIdempotence() {
	net := s.newNetwork(tJunctionRoads(s.T())...)
	entries := entriesAt(net.CreateJunctionEntries(net.Roads()), CONTACT_START)

	_, err := net.MergeEntries(entries, nil)
	s.Require().NoError(err)
	links := countLinks(net)
	created := len(s.events)

	report, err := net.MergeEntries(entries, nil)
	s.Require().NoError(err)
	s.Equal(0, report.JunctionsCreated)
	s.Equal(0, report.ConnectionsCreated)
	s.Equal(0, report.LaneLinksCreated)
	s.Equal(6, report.DuplicatesSkipped)
	s.Equal(links, countLinks(net))
	s.Len(net.Junctions(), 1)
	s.Equal(3+1+6+6, created)
	s.Equal(created, len(s.events))
}

func (s *MergeSuite) TestPairingRules() {
	net := tJunction(s.T())
	entries := net.CreateJunctionEntries(net.Roads())

	_, err := net.MergeEntries(entries, nil)
	s.Require().NoError(err)
	for _, junction := range net.Junctions() {
		for _, conn := range junction.Connections() {
			s.NotEqual(conn.IncomingRoad, conn.ConnectingRoad)
			for _, link := range conn.LaneLinks {
				s.Equal(abs(link.From), abs(link.To))
				s.True(TRAFFIC_RHT.IsEntry(conn.IncomingContact, link.From), "incoming lane must be an entry")
				s.False(TRAFFIC_RHT.IsEntry(conn.ContactPoint, link.To), "connecting lane must be an exit")
			}
		}
	}
}

func (s *MergeSuite) TestRecordingSinkLeavesNetwork() {
	net := tJunction(s.T())
	entries := entriesAt(net.CreateJunctionEntries(net.Roads()), CONTACT_START)
	sink := &RecordingSink{}

	report, err := net.MergeEntries(entries, sink)
	s.Require().NoError(err)
	s.Empty(net.Junctions())
	s.Len(sink.Commands, report.JunctionsCreated+report.ConnectionsCreated+report.LaneLinksCreated)
	_, isJunction := sink.Commands[0].(CreateJunction)
	s.True(isJunction)

	// Replaying recorded commands gives the same graph as direct execution
	for _, cmd := range sink.Commands {
		s.Require().NoError(cmd.Apply(net))
	}
	s.Len(net.Junctions(), 1)
	s.Len(net.Junctions()[0].Connections(), 6)
}

func (s *MergeSuite) TestEndsInDifferentJunctions() {
	net := s.newNetwork()
	sink := NewNetworkSink(net)
	for _, cmd := range []Command{
		CreateJunction{Junction: 0},
		CreateConnection{Junction: 0, Connection: Connection{ID: 0, IncomingRoad: 1, IncomingContact: CONTACT_END, ConnectingRoad: 3, ContactPoint: CONTACT_START}},
		CreateJunction{Junction: 1},
		CreateConnection{Junction: 1, Connection: Connection{ID: 0, IncomingRoad: 4, IncomingContact: CONTACT_END, ConnectingRoad: 2, ContactPoint: CONTACT_START}},
	} {
		s.Require().NoError(sink.Execute(cmd))
	}

	entry := JunctionEntry{RoadID: 1, LaneID: 1, ContactPoint: CONTACT_END, IsEntry: true}
	exit := JunctionEntry{RoadID: 2, LaneID: -1, ContactPoint: CONTACT_START}
	report, err := net.MergeEntries([]JunctionEntry{entry, exit}, nil)
	s.Require().NoError(err)
	s.Equal(1, report.PairsAccepted)
	s.Equal(1, report.ConflictsSkipped)
	s.Equal(0, report.ConnectionsCreated)
	s.Contains(report.String(), "conflicts: 1")

	first, err := net.Junction(0)
	s.Require().NoError(err)
	s.Len(first.Connections(), 1)
	jnc, ok := net.JunctionAt(2, CONTACT_START)
	s.Require().True(ok)
	s.Equal(JunctionID(1), jnc.ID)

	// Free entry end joins the junction of the exit end
	free := JunctionEntry{RoadID: 3, LaneID: 1, ContactPoint: CONTACT_END, IsEntry: true}
	report, err = net.MergeEntries([]JunctionEntry{free, exit}, nil)
	s.Require().NoError(err)
	s.Equal(0, report.ConflictsSkipped)
	s.Equal(1, report.ConnectionsCreated)
	second, err := net.Junction(1)
	s.Require().NoError(err)
	_, ok = second.FindConnection(3, 2)
	s.True(ok)
	s.Len(first.Connections(), 1)
}

func TestMergeSuite(t *testing.T) {
	suite.Run(t, new(MergeSuite))
}

func TestPairEntries(t *testing.T) {
	a := JunctionEntry{RoadID: 1, LaneID: -1, IsEntry: true}
	b := JunctionEntry{RoadID: 2, LaneID: 1, IsEntry: false}
	entry, exit, ok := pairEntries(b, a)
	require.True(t, ok)
	assert.Equal(t, a, entry)
	assert.Equal(t, b, exit)

	_, _, ok = pairEntries(a, JunctionEntry{RoadID: 1, LaneID: 1})
	assert.False(t, ok, "same road")
	_, _, ok = pairEntries(a, JunctionEntry{RoadID: 2, LaneID: 2})
	assert.False(t, ok, "different rank")
	_, _, ok = pairEntries(a, JunctionEntry{RoadID: 2, LaneID: 1, IsEntry: true})
	assert.False(t, ok, "two entries")
}

func TestMergeReportString(t *testing.T) {
	report := &MergeReport{PairsConsidered: 3, PairsAccepted: 1, LaneLinksCreated: 1}
	assert.Contains(t, report.String(), "3 considered")
}
