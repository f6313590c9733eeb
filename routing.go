package roadnet

import (
	"time"

	"github.com/LdDl/ch"
	"github.com/pkg/errors"
)

// Router answers road-level shortest path queries over junction connections and road-to-road links
type Router struct {
	graph *ch.Graph
	roads map[RoadID]struct{}
}

// BuildRouter creates contraction hierarchies graph: one vertex per road, one edge per
// connection (incoming -> connecting -> outgoing) and per road link. Edge weight is length of the target road.
func BuildRouter(net *RoadNetwork) (*Router, error) {
	st := time.Now()
	router := &Router{
		graph: &ch.Graph{},
		roads: make(map[RoadID]struct{}, len(net.roads)),
	}
	for _, road := range net.Roads() {
		if err := router.graph.CreateVertex(int64(road.ID)); err != nil {
			return nil, errors.Wrapf(err, "Can't create vertex for road %d", road.ID)
		}
		router.roads[road.ID] = struct{}{}
	}

	edges := make(map[[2]RoadID]struct{})
	addEdge := func(from, to RoadID) error {
		if from == to {
			return nil
		}
		key := [2]RoadID{from, to}
		if _, ok := edges[key]; ok {
			return nil
		}
		target, ok := net.roads[to]
		if !ok {
			return nil
		}
		if _, ok := net.roads[from]; !ok {
			return nil
		}
		if err := router.graph.AddEdge(int64(from), int64(to), target.Length); err != nil {
			return errors.Wrapf(err, "Can't add edge %d -> %d", from, to)
		}
		edges[key] = struct{}{}
		return nil
	}

	for _, junction := range net.Junctions() {
		for _, conn := range junction.Connections() {
			if len(conn.LaneLinks) == 0 {
				continue
			}
			if err := addEdge(conn.IncomingRoad, conn.ConnectingRoad); err != nil {
				return nil, err
			}
			if err := addEdge(conn.ConnectingRoad, conn.OutgoingRoad); err != nil {
				return nil, err
			}
		}
	}
	for _, road := range net.Roads() {
		if link := road.Successor; link != nil && link.ElementType == ELEMENT_ROAD {
			if err := addEdge(road.ID, RoadID(link.ElementID)); err != nil {
				return nil, err
			}
		}
		if link := road.Predecessor; link != nil && link.ElementType == ELEMENT_ROAD {
			if err := addEdge(RoadID(link.ElementID), road.ID); err != nil {
				return nil, err
			}
		}
	}
	router.graph.PrepareContractionHierarchies()
	Logger().Info("router prepared", "roads", len(router.roads), "edges", len(edges), "elapsed", time.Since(st))
	return router, nil
}

// Route returns sequence of roads from source to target and summary length of traversed roads (source excluded)
func (router *Router) Route(from, to RoadID) ([]RoadID, float64, error) {
	if _, ok := router.roads[from]; !ok {
		return nil, 0, errors.Wrapf(ErrRoadNotFound, "road %d", from)
	}
	if _, ok := router.roads[to]; !ok {
		return nil, 0, errors.Wrapf(ErrRoadNotFound, "road %d", to)
	}
	if from == to {
		return []RoadID{from}, 0, nil
	}
	cost, path := router.graph.ShortestPath(int64(from), int64(to))
	if cost < 0 || len(path) == 0 {
		return nil, 0, errors.Wrapf(ErrNoRoute, "road %d -> road %d", from, to)
	}
	roads := make([]RoadID, len(path))
	for i, v := range path {
		roads[i] = RoadID(v)
	}
	return roads, cost, nil
}
