package routing

import (
	"math"

	"github.com/shenikar/maritime_route_intel/internal/models"
)

// hazardPenalty - снижение оценки безопасности за одно попадание опасности
func hazardPenalty(s models.Severity) int {
	switch s {
	case models.SeverityLow:
		return 5
	case models.SeverityMedium:
		return 10
	case models.SeverityHigh:
		return 20
	case models.SeverityCritical:
		return 40
	}
	return 10
}

// hazardDelay - ожидаемая задержка в минутах за одно попадание опасности
func hazardDelay(s models.Severity) int {
	switch s {
	case models.SeverityLow:
		return 5
	case models.SeverityMedium:
		return 10
	case models.SeverityHigh:
		return 20
	case models.SeverityCritical:
		return 45
	}
	return 10
}

// trafficDelay - добавка к задержке за плотность трафика
func trafficDelay(d models.Density) int {
	switch d {
	case models.DensityMedium:
		return 15
	case models.DensityHigh:
		return 30
	case models.DensityCritical:
		return 60
	}
	return 0
}

// EstimateDelay суммирует задержки по всем попаданиям и добавку за трафик
func EstimateDelay(hits []models.RouteHazard, density models.Density) int {
	total := 0
	for _, h := range hits {
		total += hazardDelay(h.Severity)
	}
	return total + trafficDelay(density)
}

// CollisionRisk классифицирует риск по оценке безопасности
func CollisionRisk(score int) models.RiskLevel {
	switch {
	case score > 70:
		return models.RiskLow
	case score > 40:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

// FuelEstimate - расход топлива в литрах: 0.5 л на милю с поправкой на трафик
func FuelEstimate(distanceNm float64, density models.Density) float64 {
	liters := distanceNm * 0.5
	switch density {
	case models.DensityHigh:
		liters *= 1.2
	case models.DensityMedium:
		liters *= 1.1
	}
	return round(liters, 2)
}

// RecommendedSpeed снижает скорость на 3 узла (не ниже 10) при высокой плотности
func RecommendedSpeed(speedKnots float64, density models.Density) float64 {
	if density == models.DensityHigh {
		return math.Max(10, speedKnots-3)
	}
	return speedKnots
}

// Predict собирает прогноз для маршрута
func Predict(score int, density models.Density, hits []models.RouteHazard, distanceNm, speedKnots float64) models.Prediction {
	return models.Prediction{
		EstimatedDelayMinutes: EstimateDelay(hits, density),
		// TODO: брать погодный риск из прогноза, когда появится источник погодных данных
		WeatherRisk:      models.RiskLow,
		CollisionRisk:    CollisionRisk(score),
		FuelEfficiency:   FuelEstimate(distanceNm, density),
		RecommendedSpeed: RecommendedSpeed(speedKnots, density),
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
