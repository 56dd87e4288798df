package pathsearch

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/maritime_route_intel/internal/models"
)

// Сеть основных морских линий: Северное море, Средиземное, Суэц, Аравийское море,
// Бенгальский залив, Малаккский пролив, Южно-Китайское море
//
//go:embed lanes.geojson
var defaultLanes []byte

// ErrEmptyGraph - в файле нет ни одной линии
var ErrEmptyGraph = errors.New("lane graph has no nodes")

// LoadGraph читает сеть линий из GeoJSON файла; пустой путь - встроенная сеть
func LoadGraph(path string) (*Graph, error) {
	if path == "" {
		return ParseGraph(defaultLanes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read lane graph file: %w", err)
	}
	return ParseGraph(data)
}

// ParseGraph строит граф из FeatureCollection. Учитываются LineString и MultiLineString,
// остальные геометрии пропускаются.
func ParseGraph(data []byte) (*Graph, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse lane graph: %w", err)
	}

	g := NewGraph()
	for i, f := range fc.Features {
		name := f.Properties.MustString("name", fmt.Sprintf("lane-%d", i))

		var lines []orb.LineString
		switch geom := f.Geometry.(type) {
		case orb.LineString:
			lines = append(lines, geom)
		case orb.MultiLineString:
			lines = append(lines, geom...)
		default:
			continue
		}

		for _, line := range lines {
			for _, p := range line {
				c := models.Coordinate{Lat: p.Lat(), Lng: p.Lon()}
				if !c.Valid() {
					return nil, fmt.Errorf("lane %q has invalid point %v", name, p)
				}
			}
			g.AddLane(name, line)
		}
	}

	if g.Len() == 0 {
		return nil, ErrEmptyGraph
	}
	return g, nil
}
