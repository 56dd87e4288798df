package models

// Severity - уровень опасности сообщения
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Known сообщает, относится ли значение к известным уровням.
// Неизвестные строки сохраняются как есть и получают значения по умолчанию.
func (s Severity) Known() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Rank - порядок сортировки: critical=0, high=1, medium=2, low=3, неизвестный=4
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	}
	return 4
}

// HazardType - тип опасности. Принимается любая строка.
type HazardType string

const (
	HazardDebris     HazardType = "debris"
	HazardShallow    HazardType = "shallow"
	HazardWeather    HazardType = "weather"
	HazardCongestion HazardType = "congestion"
	HazardRegulatory HazardType = "regulatory"
)

func (t HazardType) Known() bool {
	switch t {
	case HazardDebris, HazardShallow, HazardWeather, HazardCongestion, HazardRegulatory:
		return true
	}
	return false
}

// Density - плотность судоходства
type Density string

const (
	DensityLow      Density = "low"
	DensityMedium   Density = "medium"
	DensityHigh     Density = "high"
	DensityCritical Density = "critical"
)

func (d Density) Known() bool {
	switch d {
	case DensityLow, DensityMedium, DensityHigh, DensityCritical:
		return true
	}
	return false
}

// VoteDirection - направление голоса за сообщение об опасности
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// RiskLevel - качественная оценка риска в прогнозе
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)
