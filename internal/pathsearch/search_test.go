package pathsearch

import (
	"context"
	"testing"

	"github.com/paulmach/orb"
	"github.com/shenikar/maritime_route_intel/internal/geo"
	"github.com/shenikar/maritime_route_intel/internal/models"
	"github.com/shenikar/maritime_route_intel/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mumbai    = models.Coordinate{Lat: 18.95, Lng: 72.83}
	singapore = models.Coordinate{Lat: 1.26, Lng: 103.84}
	rotterdam = models.Coordinate{Lat: 51.95, Lng: 4.05}
	shanghai  = models.Coordinate{Lat: 31.23, Lng: 121.9}
)

func TestLoadGraph_EmbeddedIsConnected(t *testing.T) {
	g, err := LoadGraph("")
	require.NoError(t, err)
	require.Greater(t, g.Len(), 40)

	for id := 1; id < g.Len(); id++ {
		_, _, err := g.AStar(context.Background(), 0, id)
		assert.NoError(t, err, "node %d must be reachable", id)
	}
}

func TestShortestPath_MumbaiToSingapore(t *testing.T) {
	// Подготовка
	g, err := LoadGraph("")
	require.NoError(t, err)
	s := NewSearcher(g, logger.Discard())

	// Действие
	path, err := s.ShortestPath(context.Background(), mumbai, singapore)

	// Проверки
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(path.Waypoints), 4)
	assert.Equal(t, mumbai, path.Waypoints[0])
	assert.Equal(t, singapore, path.Waypoints[len(path.Waypoints)-1])

	direct := geo.DistanceKm(mumbai, singapore)
	assert.Greater(t, path.LengthKm, direct)
	assert.Less(t, path.LengthKm, direct*1.6)

	// путь проходит через Малаккский пролив
	assert.Contains(t, path.Waypoints, models.Coordinate{Lat: 3.0, Lng: 100.6})
}

func TestShortestPath_RotterdamToShanghaiViaSuez(t *testing.T) {
	g, err := LoadGraph("")
	require.NoError(t, err)
	s := NewSearcher(g, logger.Discard())

	path, err := s.ShortestPath(context.Background(), rotterdam, shanghai)

	require.NoError(t, err)
	assert.Contains(t, path.Waypoints, models.Coordinate{Lat: 29.9, Lng: 32.55})
	assert.Contains(t, path.Waypoints, models.Coordinate{Lat: 12.6, Lng: 43.3})
	assert.Contains(t, path.Lanes, "Suez Canal - Red Sea")
	assert.Contains(t, path.Lanes, "Gulf of Aden")
}

func TestShortestPath_LengthIsSumOfLegs(t *testing.T) {
	g, err := LoadGraph("")
	require.NoError(t, err)
	s := NewSearcher(g, logger.Discard())

	path, err := s.ShortestPath(context.Background(), mumbai, rotterdam)
	require.NoError(t, err)

	total := 0.0
	for i := 1; i < len(path.Waypoints); i++ {
		total += geo.DistanceKm(path.Waypoints[i-1], path.Waypoints[i])
	}
	assert.InDelta(t, total, path.LengthKm, 1e-6)
}

func TestShortestPath_SameNearestNode(t *testing.T) {
	g, err := LoadGraph("")
	require.NoError(t, err)
	s := NewSearcher(g, logger.Discard())
	a := models.Coordinate{Lat: 18.9, Lng: 72.7}
	b := models.Coordinate{Lat: 19.0, Lng: 72.8}

	path, err := s.ShortestPath(context.Background(), a, b)

	require.NoError(t, err)
	assert.Equal(t, []models.Coordinate{a, b}, path.Waypoints)
	assert.InDelta(t, geo.DistanceKm(a, b), path.LengthKm, 1e-9)
	assert.Empty(t, path.Lanes)
}

func TestShortestPath_OriginOnNode(t *testing.T) {
	g, err := LoadGraph("")
	require.NoError(t, err)
	s := NewSearcher(g, logger.Discard())
	node := models.Coordinate{Lat: 18.9, Lng: 72.6}

	path, err := s.ShortestPath(context.Background(), node, singapore)

	require.NoError(t, err)
	assert.Equal(t, node, path.Waypoints[0])
	assert.NotEqual(t, path.Waypoints[0], path.Waypoints[1])
}

func TestShortestPath_Disconnected(t *testing.T) {
	g := NewGraph()
	g.AddLane("west", orb.LineString{{0, 0}, {1, 0}})
	g.AddLane("east", orb.LineString{{50, 0}, {51, 0}})
	s := NewSearcher(g, logger.Discard())

	_, err := s.ShortestPath(context.Background(), models.Coordinate{Lat: 0, Lng: 0}, models.Coordinate{Lat: 0, Lng: 51})

	assert.ErrorIs(t, err, ErrNoPath)
}

func TestShortestPath_EmptyGraph(t *testing.T) {
	s := NewSearcher(NewGraph(), logger.Discard())

	_, err := s.ShortestPath(context.Background(), mumbai, singapore)

	assert.ErrorIs(t, err, ErrEmptyGraph)
}

func TestAStar_PicksShorterBranch(t *testing.T) {
	// ромб: через север короче, чем через дальний юг
	g := NewGraph()
	g.AddLane("north", orb.LineString{{0, 0}, {5, 1}, {10, 0}})
	g.AddLane("south", orb.LineString{{0, 0}, {5, -8}, {10, 0}})

	nodes, length, err := g.AStar(context.Background(), 0, 2)

	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, nodes)
	assert.InDelta(t, geo.DistanceKm(g.Node(0), g.Node(1))+geo.DistanceKm(g.Node(1), g.Node(2)), length, 1e-9)
}

func TestGraph_LanesAlongPath(t *testing.T) {
	g := NewGraph()
	g.AddLane("north", orb.LineString{{0, 0}, {5, 1}, {10, 0}})
	g.AddLane("south", orb.LineString{{0, 0}, {5, -8}, {10, 0}})
	g.AddLane("east", orb.LineString{{10, 0}, {15, 0}})

	nodes, _, err := g.AStar(context.Background(), 0, g.Len()-1)

	require.NoError(t, err)
	assert.Equal(t, []string{"north", "east"}, g.Lanes(nodes))
	assert.Empty(t, g.Lanes(nodes[:1]))
}

func TestAStar_CancelledContext(t *testing.T) {
	g, err := LoadGraph("")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = g.AStar(ctx, 0, g.Len()-1)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseGraph_Errors(t *testing.T) {
	_, err := ParseGraph([]byte(`{"type": "FeatureCollection", "features": []}`))
	assert.ErrorIs(t, err, ErrEmptyGraph)

	_, err = ParseGraph([]byte(`not json`))
	assert.Error(t, err)

	_, err = ParseGraph([]byte(`{"type": "FeatureCollection", "features": [
		{"type": "Feature", "properties": {}, "geometry": {"type": "LineString", "coordinates": [[0, 0], [0, 95]]}}
	]}`))
	assert.ErrorContains(t, err, "invalid point")
}

func TestParseGraph_SkipsPointsAndMergesSharedVertices(t *testing.T) {
	g, err := ParseGraph([]byte(`{"type": "FeatureCollection", "features": [
		{"type": "Feature", "properties": {"name": "a"}, "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 1]]}},
		{"type": "Feature", "properties": {"name": "b"}, "geometry": {"type": "MultiLineString", "coordinates": [[[1, 1], [2, 2]]]}},
		{"type": "Feature", "properties": {"name": "port"}, "geometry": {"type": "Point", "coordinates": [5, 5]}}
	]}`))

	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
	assert.Len(t, g.Edges(1), 2)
}
