package roadnet

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// RoadWKT returns WKT representation of the road reference line sampled with the network step
func (net *RoadNetwork) RoadWKT(road *Road) string {
	return wkt.MarshalString(road.curve.Sample(net.samplingStep))
}

// ConnectionWKT returns WKT of straight link between the incoming road end and the connecting road end
func (net *RoadNetwork) ConnectionWKT(conn *Connection) string {
	line, ok := net.connectionLine(conn)
	if !ok {
		return ""
	}
	return wkt.MarshalString(line)
}

// connectionLine joins reference line points of both contact ends
func (net *RoadNetwork) connectionLine(conn *Connection) (orb.LineString, bool) {
	incoming, ok := net.roads[conn.IncomingRoad]
	if !ok {
		return nil, false
	}
	connecting, ok := net.roads[conn.ConnectingRoad]
	if !ok {
		return nil, false
	}
	return orb.LineString{
		incoming.PositionAt(incoming.ContactS(conn.IncomingContact)).Point(),
		connecting.PositionAt(connecting.ContactS(conn.ContactPoint)).Point(),
	}, true
}
