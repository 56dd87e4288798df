package pathsearch

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/shenikar/maritime_route_intel/internal/geo"
	"github.com/shenikar/maritime_route_intel/internal/models"
)

// Edge - ребро сети морских линий
type Edge struct {
	To       int
	LengthKm float64
	Lane     string
}

// Graph - неориентированная сеть морских линий. Вершины совпадающих точек разных линий сливаются.
type Graph struct {
	nodes []models.Coordinate
	edges [][]Edge
	index map[orb.Point]int
}

func NewGraph() *Graph {
	return &Graph{index: make(map[orb.Point]int)}
}

// AddNode возвращает id вершины, создавая ее при первом обращении
func (g *Graph) AddNode(c models.Coordinate) int {
	p := c.Point()
	if id, ok := g.index[p]; ok {
		return id
	}
	id := len(g.nodes)
	g.nodes = append(g.nodes, c)
	g.edges = append(g.edges, nil)
	g.index[p] = id
	return id
}

// Connect добавляет ребро в обе стороны, длина - по дуге большого круга
func (g *Graph) Connect(a, b int, lane string) {
	if a == b {
		return
	}
	length := geo.DistanceKm(g.nodes[a], g.nodes[b])
	g.edges[a] = append(g.edges[a], Edge{To: b, LengthKm: length, Lane: lane})
	g.edges[b] = append(g.edges[b], Edge{To: a, LengthKm: length, Lane: lane})
}

// AddLane добавляет линию как цепочку ребер между последовательными точками
func (g *Graph) AddLane(name string, line orb.LineString) {
	prev := -1
	for _, p := range line {
		id := g.AddNode(models.Coordinate{Lat: p.Lat(), Lng: p.Lon()})
		if prev >= 0 {
			g.Connect(prev, id, name)
		}
		prev = id
	}
}

func (g *Graph) Len() int {
	return len(g.nodes)
}

func (g *Graph) Node(id int) models.Coordinate {
	return g.nodes[id]
}

func (g *Graph) Edges(id int) []Edge {
	return g.edges[id]
}

// Lanes возвращает названия линий вдоль цепочки вершин, без повторов подряд.
// Между соседними вершинами берется самое короткое ребро.
func (g *Graph) Lanes(nodes []int) []string {
	var lanes []string
	for i := 1; i < len(nodes); i++ {
		lane, best := "", math.Inf(1)
		for _, e := range g.edges[nodes[i-1]] {
			if e.To == nodes[i] && e.LengthKm < best {
				lane, best = e.Lane, e.LengthKm
			}
		}
		if lane != "" && (len(lanes) == 0 || lanes[len(lanes)-1] != lane) {
			lanes = append(lanes, lane)
		}
	}
	return lanes
}

// Nearest - ближайшая к точке вершина. false, если граф пустой.
func (g *Graph) Nearest(c models.Coordinate) (int, bool) {
	best, bestDist := -1, math.Inf(1)
	for id, n := range g.nodes {
		if d := geo.Distance(c, n); d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, best >= 0
}
