package pathsearch

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/shenikar/maritime_route_intel/internal/geo"
)

// ErrNoPath - вершины не связаны сетью линий
var ErrNoPath = errors.New("no sea lane path")

// AStar ищет кратчайший путь между вершинами. Эвристика - расстояние по дуге
// большого круга, она не превышает длину любого пути по ребрам.
func (g *Graph) AStar(ctx context.Context, start, goal int) ([]int, float64, error) {
	heuristic := func(id int) float64 {
		return geo.DistanceKm(g.nodes[id], g.nodes[goal])
	}

	gScore := make([]float64, len(g.nodes))
	cameFrom := make([]int, len(g.nodes))
	for i := range gScore {
		gScore[i] = math.Inf(1)
		cameFrom[i] = -1
	}
	gScore[start] = 0

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{node: start, priority: heuristic(start)})

	closed := make([]bool, len(g.nodes))

	for pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		item := heap.Pop(pq).(*pqItem)
		current := item.node
		if current == goal {
			return reconstructPath(cameFrom, current), gScore[current], nil
		}

		if closed[current] {
			continue
		}
		closed[current] = true

		for _, e := range g.edges[current] {
			tentative := gScore[current] + e.LengthKm
			if tentative < gScore[e.To] {
				cameFrom[e.To] = current
				gScore[e.To] = tentative
				heap.Push(pq, &pqItem{node: e.To, priority: tentative + heuristic(e.To)})
			}
		}
	}

	return nil, 0, fmt.Errorf("%w: from node %d to node %d", ErrNoPath, start, goal)
}

func reconstructPath(cameFrom []int, current int) []int {
	path := []int{current}
	for cameFrom[current] >= 0 {
		current = cameFrom[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type pqItem struct {
	node     int
	priority float64
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].priority < pq[j].priority }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(*pqItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
