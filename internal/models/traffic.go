package models

import (
	"time"

	"github.com/google/uuid"
)

// TrafficReport - сообщение о плотности судов в точке. После создания не меняется.
type TrafficReport struct {
	ID          uuid.UUID  `json:"id" bson:"_id"`
	Location    Coordinate `json:"location" bson:"location"`
	Density     Density    `json:"density" bson:"density"`
	VesselCount uint       `json:"vessel_count" bson:"vessel_count"`
	PortCode    string     `json:"port_code,omitempty" bson:"port_code,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	ReportedBy  string     `json:"reported_by" bson:"reported_by"`
}

// TrafficInput - данные для создания сообщения о трафике
type TrafficInput struct {
	Lat         *float64
	Lng         *float64
	Density     Density
	VesselCount uint
	PortCode    string
	ReportedBy  string
	VesselID    string
}
