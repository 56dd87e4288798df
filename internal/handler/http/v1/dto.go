package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/maritime_route_intel/internal/models"
)

// ReportHazardRequest DTO для сообщения об опасности.
// Координаты - указатели: 0 является допустимым значением.
// @Description DTO для сообщения об опасности
type ReportHazardRequest struct {
	Type        string   `json:"type" validate:"max=64"`
	Severity    string   `json:"severity,omitempty" validate:"max=32"`
	Latitude    *float64 `json:"lat" validate:"required,latitude"`
	Longitude   *float64 `json:"lng" validate:"required,longitude"`
	Description string   `json:"description,omitempty" validate:"max=2000"`
	ReportedBy  string   `json:"reported_by,omitempty" validate:"max=255"`
	VesselID    string   `json:"vessel_id,omitempty" validate:"max=255"`
	ExpiryHours *float64 `json:"expiry_hours,omitempty" validate:"omitempty,gte=0,lte=8760"`
}

// HazardResponse DTO для ответа с сообщением об опасности
// @Description DTO для ответа с сообщением об опасности
type HazardResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Severity    string    `json:"severity"`
	Latitude    float64   `json:"lat"`
	Longitude   float64   `json:"lng"`
	Description string    `json:"description,omitempty"`
	ReportedBy  string    `json:"reported_by,omitempty"`
	VesselID    string    `json:"vessel_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Verified    bool      `json:"verified"`
	Upvotes     uint      `json:"upvotes"`
	Downvotes   uint      `json:"downvotes"`
}

// NearbyHazardResponse DTO для опасности рядом с точкой
// @Description DTO для опасности рядом с точкой
type NearbyHazardResponse struct {
	HazardResponse
	DistanceKm float64 `json:"distance_km"`
}

// VoteRequest DTO для голоса за сообщение
// @Description DTO для голоса за сообщение
type VoteRequest struct {
	Vote string `json:"vote" validate:"required,oneof=up down"`
}

// VoteResponse DTO для результата голосования
// @Description DTO для результата голосования
type VoteResponse struct {
	Hazard  *HazardResponse `json:"hazard,omitempty"`
	Removed bool            `json:"removed,omitempty"`
}

// ReportTrafficRequest DTO для сообщения о трафике
// @Description DTO для сообщения о трафике
type ReportTrafficRequest struct {
	Latitude    *float64 `json:"lat" validate:"required,latitude"`
	Longitude   *float64 `json:"lng" validate:"required,longitude"`
	Density     string   `json:"density,omitempty" validate:"max=32"`
	VesselCount uint     `json:"vessel_count,omitempty"`
	PortCode    string   `json:"port_code,omitempty" validate:"max=16"`
	ReportedBy  string   `json:"reported_by,omitempty" validate:"max=255"`
	VesselID    string   `json:"vessel_id,omitempty" validate:"max=255"`
}

// TrafficResponse DTO для ответа с сообщением о трафике
// @Description DTO для ответа с сообщением о трафике
type TrafficResponse struct {
	ID          uuid.UUID `json:"id"`
	Latitude    float64   `json:"lat"`
	Longitude   float64   `json:"lng"`
	Density     string    `json:"density"`
	VesselCount uint      `json:"vessel_count"`
	PortCode    string    `json:"port_code,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ReportedBy  string    `json:"reported_by"`
}

// CoordinateRequest DTO координаты в запросе маршрута
type CoordinateRequest struct {
	Latitude  *float64 `json:"lat" validate:"required,latitude"`
	Longitude *float64 `json:"lng" validate:"required,longitude"`
}

// PreferencesRequest DTO параметров маршрута
type PreferencesRequest struct {
	Speed            *float64 `json:"speed,omitempty" validate:"omitempty,gt=0,lte=60"`
	ShowAlternatives *bool    `json:"show_alternatives,omitempty"`
}

// AnnotateRouteRequest DTO запроса аннотированного маршрута
// @Description DTO запроса аннотированного маршрута
type AnnotateRouteRequest struct {
	Origin      CoordinateRequest   `json:"origin"`
	Destination CoordinateRequest   `json:"destination"`
	Preferences *PreferencesRequest `json:"preferences,omitempty"`
}

// AnnotatedRouteResponse DTO ответа с маршрутом и его геометрией в GeoJSON
// @Description DTO ответа с маршрутом
type AnnotatedRouteResponse struct {
	*models.AnnotatedRoute
	Geometry *geojson.Geometry `json:"geometry" swaggertype:"object"`
}

// SweepResponse DTO для результата очистки истекших сообщений
// @Description DTO для результата очистки истекших сообщений
type SweepResponse struct {
	Removed int `json:"removed"`
}
