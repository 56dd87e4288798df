package models

// Path - сырой маршрут от поиска пути по сети морских линий
type Path struct {
	Waypoints []Coordinate
	LengthKm  float64
	// Lanes - морские линии, по которым проходит путь, по порядку
	Lanes []string
}

// Preferences - пользовательские параметры расчета маршрута
type Preferences struct {
	SpeedKnots       float64 `json:"speed"`
	ShowAlternatives bool    `json:"show_alternatives"`
}

// DefaultSpeedKnots - крейсерская скорость по умолчанию
const DefaultSpeedKnots = 15.0

// DefaultPreferences возвращает параметры по умолчанию: 15 узлов, с альтернативами
func DefaultPreferences() Preferences {
	return Preferences{SpeedKnots: DefaultSpeedKnots, ShowAlternatives: true}
}

// RouteRequest - запрос на аннотированный маршрут
type RouteRequest struct {
	Origin      Coordinate
	Destination Coordinate
	Preferences Preferences
}

// Direction - один шаг пошаговой навигации
type Direction struct {
	Instruction string     `json:"instruction"`
	Distance    string     `json:"distance"`
	Bearing     float64    `json:"bearing"`
	Waypoint    Coordinate `json:"waypoint"`
}

// RouteHazard - попадание активной опасности в радиус точки маршрута
type RouteHazard struct {
	Type        HazardType `json:"type"`
	Severity    Severity   `json:"severity"`
	DistanceNm  float64    `json:"distance"`
	Description string     `json:"description,omitempty"`
	Waypoint    Coordinate `json:"waypoint"`
}

// Prediction - эвристический прогноз для маршрута
type Prediction struct {
	EstimatedDelayMinutes int       `json:"estimated_delay_minutes"`
	WeatherRisk           RiskLevel `json:"weather_risk"`
	CollisionRisk         RiskLevel `json:"collision_risk"`
	FuelEfficiency        float64   `json:"fuel_efficiency"`
	RecommendedSpeed      float64   `json:"recommended_speed"`
}

// AlternativeRoute - смещенный вариант маршрута. Не пересчитывается по опасностям.
type AlternativeRoute struct {
	Name            string       `json:"name"`
	Waypoints       []Coordinate `json:"waypoints"`
	DistanceNm      float64      `json:"distance"`
	DurationMinutes float64      `json:"duration"`
	SafetyScore     int          `json:"safety_score"`
	HazardCount     int          `json:"hazards"`
}

// AnnotatedRoute - результат аннотирования маршрута, собирается заново на каждый запрос
type AnnotatedRoute struct {
	Waypoints       []Coordinate       `json:"waypoints"`
	Origin          Coordinate         `json:"origin"`
	Destination     Coordinate         `json:"destination"`
	DistanceNm      float64            `json:"distance"`
	DurationMinutes float64            `json:"duration"`
	Directions      []Direction        `json:"directions"`
	SafetyScore     int                `json:"safety_score"`
	TrafficDensity  Density            `json:"traffic_density"`
	Hazards         []RouteHazard      `json:"hazards"`
	Prediction      Prediction         `json:"prediction"`
	Recommendations []string           `json:"recommendations"`
	Alternatives    []AlternativeRoute `json:"alternative_routes,omitempty"`
}
