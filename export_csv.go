package roadnet

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ExportToCSV writes '<prefix>_roads.csv' and '<prefix>_connections.csv' (';'-separated, geometry as WKT)
func (net *RoadNetwork) ExportToCSV(fname string) error {
	fnameParts := strings.Split(fname, ".csv")
	fnameRoads := fnameParts[0] + "_roads.csv"
	fnameConnections := fnameParts[0] + "_connections.csv"

	err := net.exportRoadsToCSV(fnameRoads)
	if err != nil {
		return errors.Wrap(err, "Can't export roads")
	}

	err = net.exportConnectionsToCSV(fnameConnections)
	if err != nil {
		return errors.Wrap(err, "Can't export connections")
	}
	return nil
}

func (net *RoadNetwork) exportRoadsToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "name", "length", "junction", "lanes_left", "lanes_right", "osm_way_id", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, road := range net.Roads() {
		lanesLeft, lanesRight := 0, 0
		if section, err := road.SectionAtContact(CONTACT_START); err == nil {
			lanesLeft = len(section.LeftLanes())
			lanesRight = len(section.RightLanes())
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", road.ID),
			road.Name,
			fmt.Sprintf("%f", road.Length),
			fmt.Sprintf("%d", road.JunctionID),
			fmt.Sprintf("%d", lanesLeft),
			fmt.Sprintf("%d", lanesRight),
			fmt.Sprintf("%d", road.OSMWayID),
			net.RoadWKT(road),
		})
		if err != nil {
			return errors.Wrap(err, "Can't write road")
		}
	}
	return writer.Error()
}

func (net *RoadNetwork) exportConnectionsToCSV(fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"junction_id", "connection_id", "incoming_road", "incoming_contact", "connecting_road", "contact_point", "turn", "movement", "lane_links", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, junction := range net.Junctions() {
		for _, conn := range junction.Connections() {
			links := make([]string, len(conn.LaneLinks))
			for i, link := range conn.LaneLinks {
				links[i] = fmt.Sprintf("%d:%d", link.From, link.To)
			}
			err = writer.Write([]string{
				fmt.Sprintf("%d", junction.ID),
				fmt.Sprintf("%d", conn.ID),
				fmt.Sprintf("%d", conn.IncomingRoad),
				conn.IncomingContact.String(),
				fmt.Sprintf("%d", conn.ConnectingRoad),
				conn.ContactPoint.String(),
				conn.Turn.String(),
				conn.Movement.String(),
				strings.Join(links, ","),
				net.ConnectionWKT(conn),
			})
			if err != nil {
				return errors.Wrap(err, "Can't write connection")
			}
		}
	}
	return writer.Error()
}
