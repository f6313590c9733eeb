package roadnet

import (
	"fmt"
	"time"

	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// MergeReport summarizes single MergeEntries call
type MergeReport struct {
	PairsConsidered    int
	PairsAccepted      int
	RejectedByDistance int
	JunctionsCreated   int
	ConnectionsCreated int
	LaneLinksCreated   int
	DuplicatesSkipped  int
	ConflictsSkipped   int // road ends of the pair already belong to different junctions
}

func (report *MergeReport) String() string {
	return fmt.Sprintf("pairs: %d considered, %d accepted, %d too far | created: %d junctions, %d connections, %d lane links | skipped duplicates: %d, conflicts: %d",
		report.PairsConsidered, report.PairsAccepted, report.RejectedByDistance,
		report.JunctionsCreated, report.ConnectionsCreated, report.LaneLinksCreated,
		report.DuplicatesSkipped, report.ConflictsSkipped,
	)
}

// pairEntries checks pairing rule and returns (entry, exit) in roles order.
// Pair is accepted when lanes belong to different roads, have equal rank |id| and opposite roles.
func pairEntries(a, b JunctionEntry) (JunctionEntry, JunctionEntry, bool) {
	if a.RoadID == b.RoadID {
		return JunctionEntry{}, JunctionEntry{}, false
	}
	if abs(a.LaneID) != abs(b.LaneID) {
		return JunctionEntry{}, JunctionEntry{}, false
	}
	if a.IsEntry == b.IsEntry {
		return JunctionEntry{}, JunctionEntry{}, false
	}
	if a.IsEntry {
		return a, b, true
	}
	return b, a, true
}

// MergeEntries pairs entries with exits and creates junctions, connections and lane links for accepted pairs.
// Pairs are enumerated as (i, j > i) in input order. All mutations go through sink; the network itself is
// touched only if sink applies commands to it (e.g. NetworkSink). Nil sink means NetworkSink over net.
// Repeated calls with the same entries create nothing new: already existing lane links are reported and skipped.
func (net *RoadNetwork) MergeEntries(entries []JunctionEntry, sink CommandSink, options ...func(*mergeOptions)) (*MergeReport, error) {
	opts := mergeOptions{}
	for _, option := range options {
		option(&opts)
	}
	if sink == nil {
		sink = NewNetworkSink(net)
	}
	st := time.Now()

	// Planning happens on a private copy so pairs see what earlier pairs created even if sink defers execution
	plan := net.snapshot()
	report := &MergeReport{}
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			report.PairsConsidered++
			entry, exit, ok := pairEntries(entries[i], entries[j])
			if !ok {
				continue
			}
			if opts.maxEndpointDistance > 0 && planar.Distance(entry.Position, exit.Position) > opts.maxEndpointDistance {
				report.RejectedByDistance++
				continue
			}
			report.PairsAccepted++
			for _, cmd := range plan.synthesize(entry, exit, report) {
				if err := cmd.Apply(plan); err != nil {
					return report, errors.Wrapf(err, "Can't plan %s", cmd)
				}
				if err := sink.Execute(cmd); err != nil {
					return report, errors.Wrap(err, "Can't execute synthesis command")
				}
				report.count(cmd)
			}
		}
	}
	Logger().Info("junction entries merged", "entries", len(entries), "report", report.String(), "elapsed", time.Since(st))
	return report, nil
}

func (report *MergeReport) count(cmd Command) {
	switch cmd.(type) {
	case CreateJunction:
		report.JunctionsCreated++
	case CreateConnection:
		report.ConnectionsCreated++
	case CreateLaneLink:
		report.LaneLinksCreated++
	}
}

// synthesize decides which records the pair needs. Receiver must be the planning snapshot.
func (net *RoadNetwork) synthesize(entry, exit JunctionEntry, report *MergeReport) []Command {
	link := LaneLink{From: entry.LaneID, To: exit.LaneID}

	junction, ok := net.JunctionAt(entry.RoadID, entry.ContactPoint)
	exitJunction, exitOK := net.JunctionAt(exit.RoadID, exit.ContactPoint)
	switch {
	case ok && exitOK && junction.ID != exitJunction.ID:
		// Road end can't belong to two junctions
		Logger().Warn("pair skipped: road ends belong to different junctions",
			"entry", entry.String(), "entry_junction", junction.ID,
			"exit", exit.String(), "exit_junction", exitJunction.ID,
		)
		report.ConflictsSkipped++
		return nil
	case !ok && exitOK:
		junction, ok = exitJunction, true
	}
	if !ok {
		jid := net.NextJunctionID()
		conn := newConnection(0, entry, exit)
		return []Command{
			CreateJunction{Junction: jid, Name: fmt.Sprintf("junction_%d", jid)},
			CreateConnection{Junction: jid, Connection: conn},
			CreateLaneLink{Junction: jid, Connection: conn.ID, Link: link},
		}
	}

	conn, ok := junction.findConnection(entry.RoadID, entry.ContactPoint, exit.RoadID, exit.ContactPoint)
	if !ok {
		newConn := newConnection(junction.NextConnectionID(), entry, exit)
		return []Command{
			CreateConnection{Junction: junction.ID, Connection: newConn},
			CreateLaneLink{Junction: junction.ID, Connection: newConn.ID, Link: link},
		}
	}

	if _, exists := conn.LaneLinkFrom(entry.LaneID); exists {
		err := errors.Wrapf(ErrLaneLinkExists, "junction %d, connection %d, lane %d of road %d", junction.ID, conn.ID, entry.LaneID, entry.RoadID)
		Logger().Warn("lane link skipped", "error", err)
		report.DuplicatesSkipped++
		return nil
	}
	return []Command{
		CreateLaneLink{Junction: junction.ID, Connection: conn.ID, Link: link},
	}
}

func newConnection(id ConnectionID, entry, exit JunctionEntry) Connection {
	movement, turn := turnBetweenHeadings(entry.Heading, exit.Heading)
	return Connection{
		ID:              id,
		IncomingRoad:    entry.RoadID,
		IncomingContact: entry.ContactPoint,
		ConnectingRoad:  exit.RoadID,
		ContactPoint:    exit.ContactPoint,
		OutgoingRoad:    exit.RoadID,
		Turn:            turn,
		Movement:        movement,
		LaneLinks:       []LaneLink{},
	}
}

// findConnection matches connection by both road ends it joins
func (junction *Junction) findConnection(incoming RoadID, incomingContact ContactPoint, connecting RoadID, contact ContactPoint) (*Connection, bool) {
	for _, conn := range junction.connections {
		if conn.sameEnds(incoming, incomingContact, connecting, contact) {
			return conn, true
		}
	}
	return nil, false
}
