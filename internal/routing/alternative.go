package routing

import (
	"github.com/shenikar/maritime_route_intel/internal/models"
)

const (
	alternativeName      = "Offset Route"
	alternativeLatOffset = 0.05
)

// ShouldOfferAlternative - альтернатива нужна при оценке ниже 80 или ненулевом трафике
func ShouldOfferAlternative(prefs models.Preferences, score int, density models.Density) bool {
	return prefs.ShowAlternatives && (score < 80 || density != models.DensityLow)
}

// Alternative строит смещенный к северу вариант маршрута.
// Это эвристика: опасности и трафик вдоль нового пути не проверяются.
func Alternative(route *models.AnnotatedRoute) models.AlternativeRoute {
	waypoints := make([]models.Coordinate, len(route.Waypoints))
	for i, w := range route.Waypoints {
		waypoints[i] = models.Coordinate{Lat: w.Lat + alternativeLatOffset, Lng: w.Lng}
	}

	score := route.SafetyScore + 10
	if score > 100 {
		score = 100
	}
	hazards := len(route.Hazards) - 1
	if hazards < 0 {
		hazards = 0
	}

	return models.AlternativeRoute{
		Name:            alternativeName,
		Waypoints:       waypoints,
		DistanceNm:      route.DistanceNm * 1.1,
		DurationMinutes: route.DurationMinutes * 1.15,
		SafetyScore:     score,
		HazardCount:     hazards,
	}
}
