package roadnet

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// JunctionEntry marks driving lane at a road end. Entry lanes carry traffic toward a prospective junction,
// exit lanes carry it away.
type JunctionEntry struct {
	Position     orb.Point
	Heading      float64 // Travel direction: into the junction for entries, out of it for exits
	RoadID       RoadID
	LaneID       int
	ContactPoint ContactPoint
	IsEntry      bool
}

// IsExit is complement of IsEntry
func (entry JunctionEntry) IsExit() bool {
	return !entry.IsEntry
}

// String returns pretty printed value for JunctionEntry
func (entry JunctionEntry) String() string {
	role := "exit"
	if entry.IsEntry {
		role = "entry"
	}
	return fmt.Sprintf("Road: %d | Lane: %d | Contact: %s | Role: %s | X: %f | Y: %f", entry.RoadID, entry.LaneID, entry.ContactPoint, role, entry.Position.X(), entry.Position.Y())
}

// CreateJunctionEntries enumerates driving lanes at both ends of every non-junction road.
// Output order: roads in given order, START before END, lanes by ascending ID.
// Lanes whose position can't be evaluated are skipped.
func (net *RoadNetwork) CreateJunctionEntries(roads []*Road) []JunctionEntry {
	entries := make([]JunctionEntry, 0, 4*len(roads))
	for _, road := range roads {
		if road == nil || road.IsJunctionRoad() {
			continue
		}
		for _, contact := range []ContactPoint{CONTACT_START, CONTACT_END} {
			entries = append(entries, net.roadEndEntries(road, contact)...)
		}
	}
	return entries
}

func (net *RoadNetwork) roadEndEntries(road *Road, contact ContactPoint) []JunctionEntry {
	section, err := road.SectionAtContact(contact)
	if err != nil {
		Logger().Warn("road end skipped", "road", road.ID, "contact", contact.String(), "error", err)
		return nil
	}
	s := road.ContactS(contact)
	hdg := road.PositionAt(s).Hdg
	entries := []JunctionEntry{}
	for _, lane := range section.Lanes() {
		if lane.ID == 0 || !lane.IsDriving() {
			continue
		}
		pt, err := net.LanePosition(road.ID, lane.ID, s, 0)
		if err != nil {
			continue
		}
		isEntry := net.trafficRule.IsEntry(contact, lane.ID)
		entries = append(entries, JunctionEntry{
			Position:     pt,
			Heading:      travelHeading(hdg, contact, isEntry),
			RoadID:       road.ID,
			LaneID:       lane.ID,
			ContactPoint: contact,
			IsEntry:      isEntry,
		})
	}
	return entries
}

// travelHeading returns travel direction at road end: toward the junction for entries, away from it for exits
func travelHeading(roadHdg float64, contact ContactPoint, isEntry bool) float64 {
	// At END travelling along s moves into the junction, at START it moves away from it
	alongS := (contact == CONTACT_END) == isEntry
	if alongS {
		return normalizeHeading(roadHdg)
	}
	return normalizeHeading(roadHdg + math.Pi)
}
