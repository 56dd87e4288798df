package routing

import (
	"errors"
	"fmt"

	"github.com/shenikar/maritime_route_intel/internal/geo"
	"github.com/shenikar/maritime_route_intel/internal/models"
)

const (
	// HazardRadiusNm - радиус, в котором опасность влияет на точку маршрута
	HazardRadiusNm = 5.0
	// TrafficRadiusNm - радиус подсчета сообщений о трафике вокруг точки
	TrafficRadiusNm = 10.0

	highTrafficCount     = 5
	mediumTrafficCount   = 2
	highTrafficPenalty   = 15
	mediumTrafficPenalty = 5
)

// ErrInsufficientWaypoints - в маршруте меньше двух точек
var ErrInsufficientWaypoints = errors.New("route needs at least two waypoints")

// Snapshot - согласованный срез данных, снятый один раз перед анализом маршрута
type Snapshot struct {
	Hazards []models.HazardReport
	Traffic []models.TrafficReport
}

// Annotate анализирует сырой маршрут по срезу опасностей и трафика.
// Функция чистая: срез не изменяется и повторно не запрашивается.
func Annotate(path models.Path, origin, destination models.Coordinate, prefs models.Preferences, snap Snapshot) (*models.AnnotatedRoute, error) {
	if len(path.Waypoints) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientWaypoints, len(path.Waypoints))
	}

	distanceNm := path.LengthKm * geo.NmPerKm
	duration := 0.0
	if prefs.SpeedKnots > 0 {
		duration = distanceNm / prefs.SpeedKnots * 60
	}

	waypoints := make([]models.Coordinate, len(path.Waypoints))
	copy(waypoints, path.Waypoints)

	hits := make([]models.RouteHazard, 0)
	density := models.DensityLow
	score := 100

	for _, wp := range waypoints {
		// одна опасность может попасть в радиус нескольких точек, дубли не убираем
		for i := range snap.Hazards {
			h := &snap.Hazards[i]
			dist := geo.Distance(wp, h.Location)
			if dist >= HazardRadiusNm {
				continue
			}
			hits = append(hits, models.RouteHazard{
				Type:        h.Type,
				Severity:    h.Severity,
				DistanceNm:  round(dist, 2),
				Description: h.Description,
				Waypoint:    wp,
			})
			score -= hazardPenalty(h.Severity)
		}

		nearby := 0
		for i := range snap.Traffic {
			if geo.Distance(wp, snap.Traffic[i].Location) < TrafficRadiusNm {
				nearby++
			}
		}
		// плотность только повышается, штраф за средний трафик начисляется всегда
		if nearby > highTrafficCount {
			density = models.DensityHigh
			score -= highTrafficPenalty
		} else if nearby > mediumTrafficCount {
			if density != models.DensityHigh {
				density = models.DensityMedium
			}
			score -= mediumTrafficPenalty
		}
	}

	score = clamp(score, 0, 100)

	route := &models.AnnotatedRoute{
		Waypoints:       waypoints,
		Origin:          origin,
		Destination:     destination,
		DistanceNm:      distanceNm,
		DurationMinutes: duration,
		Directions:      Directions(waypoints),
		SafetyScore:     score,
		TrafficDensity:  density,
		Hazards:         hits,
		Prediction:      Predict(score, density, hits, distanceNm, prefs.SpeedKnots),
		Recommendations: Recommendations(score, density, len(hits)),
	}

	if ShouldOfferAlternative(prefs, score, density) {
		route.Alternatives = []models.AlternativeRoute{Alternative(route)}
	}

	return route, nil
}

// Directions строит пошаговую навигацию: по одной записи на точку маршрута.
// Вызывающий гарантирует не меньше двух точек.
func Directions(waypoints []models.Coordinate) []models.Direction {
	n := len(waypoints)
	directions := make([]models.Direction, 0, n)

	for i := 0; i < n-1; i++ {
		bearing := geo.Bearing(waypoints[i], waypoints[i+1])
		compass := geo.BearingToDirection(bearing)

		d := models.Direction{
			Bearing:  round(bearing, 0),
			Waypoint: waypoints[i],
		}
		if i == 0 {
			d.Instruction = "Head " + compass
		} else {
			d.Instruction = "Continue " + compass
			d.Distance = formatNm(geo.Distance(waypoints[i-1], waypoints[i]))
		}
		directions = append(directions, d)
	}

	directions = append(directions, models.Direction{
		Instruction: "Arrive at destination",
		Distance:    formatNm(geo.Distance(waypoints[n-2], waypoints[n-1])),
		Waypoint:    waypoints[n-1],
	})
	return directions
}

// Recommendations - предупреждения в порядке: безопасность, трафик, число опасностей
func Recommendations(score int, density models.Density, hazardHits int) []string {
	recs := make([]string, 0, 3)
	if score < 70 {
		recs = append(recs, "Route has multiple hazards. Consider an alternative route.")
	}
	if density == models.DensityHigh {
		recs = append(recs, "High traffic expected. Allow extra time.")
	}
	if hazardHits > 0 {
		recs = append(recs, fmt.Sprintf("%d hazards detected along route. Stay alert.", hazardHits))
	}
	return recs
}

func formatNm(nm float64) string {
	return fmt.Sprintf("%.1f nm", nm)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
