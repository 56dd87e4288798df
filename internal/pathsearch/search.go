package pathsearch

import (
	"context"
	"fmt"
	"slices"

	"github.com/shenikar/maritime_route_intel/internal/geo"
	"github.com/shenikar/maritime_route_intel/internal/models"
	"github.com/sirupsen/logrus"
)

// Searcher прокладывает путь по сети линий: от точки отправления к ближайшей вершине,
// по сети, от ближайшей к назначению вершины до точки назначения
type Searcher struct {
	graph  *Graph
	logger *logrus.Logger
}

func NewSearcher(graph *Graph, logger *logrus.Logger) *Searcher {
	return &Searcher{graph: graph, logger: logger}
}

func (s *Searcher) ShortestPath(ctx context.Context, origin, destination models.Coordinate) (*models.Path, error) {
	log := s.logger.WithFields(logrus.Fields{
		"component": "pathsearch",
		"method":    "ShortestPath",
	})

	start, ok := s.graph.Nearest(origin)
	if !ok {
		return nil, ErrEmptyGraph
	}
	goal, _ := s.graph.Nearest(destination)

	waypoints := []models.Coordinate{origin}
	var lanes []string
	if start != goal {
		nodes, _, err := s.graph.AStar(ctx, start, goal)
		if err != nil {
			return nil, fmt.Errorf("pathsearch: %w", err)
		}
		for _, id := range nodes {
			waypoints = append(waypoints, s.graph.Node(id))
		}
		lanes = s.graph.Lanes(nodes)
	}
	waypoints = append(waypoints, destination)

	// точка отправления или назначения может совпасть с вершиной сети
	waypoints = slices.Compact(waypoints)
	if len(waypoints) < 2 {
		waypoints = []models.Coordinate{origin, destination}
	}

	path := &models.Path{Waypoints: waypoints, Lanes: lanes}
	for i := 1; i < len(waypoints); i++ {
		path.LengthKm += geo.DistanceKm(waypoints[i-1], waypoints[i])
	}

	log.WithFields(logrus.Fields{
		"waypoints": len(waypoints),
		"length_km": path.LengthKm,
		"lanes":     lanes,
	}).Debug("Path found")
	return path, nil
}
