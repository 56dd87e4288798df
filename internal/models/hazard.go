package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	// VerifyUpvotes - число голосов "за", после которого сообщение считается подтвержденным
	VerifyUpvotes = 3
	// RemoveDownvotes - число голосов "против", после которого сообщение удаляется
	RemoveDownvotes = 5
	// MaxExpiryHours - наибольший срок жизни сообщения, один год
	MaxExpiryHours = 8760.0
)

// HazardReport - краудсорсинговое сообщение об опасности на море
type HazardReport struct {
	ID          uuid.UUID  `json:"id" bson:"_id"`
	Type        HazardType `json:"type" bson:"type"`
	Severity    Severity   `json:"severity" bson:"severity"`
	Location    Coordinate `json:"location" bson:"location"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	ReportedBy  string     `json:"reported_by,omitempty" bson:"reported_by,omitempty"`
	VesselID    string     `json:"vessel_id,omitempty" bson:"vessel_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	ExpiresAt   time.Time  `json:"expires_at" bson:"expires_at"`
	Verified    bool       `json:"verified" bson:"verified"`
	Upvotes     uint       `json:"upvotes" bson:"upvotes"`
	Downvotes   uint       `json:"downvotes" bson:"downvotes"`
}

// ActiveAt сообщает, что сообщение еще не истекло на момент now
func (h *HazardReport) ActiveAt(now time.Time) bool {
	return h.ExpiresAt.After(now)
}

// HazardInput - данные для создания сообщения об опасности.
// Координаты - указатели, чтобы отличать отсутствие значения от нуля.
type HazardInput struct {
	Type        HazardType
	Severity    Severity
	Lat         *float64
	Lng         *float64
	Description string
	ReportedBy  string
	VesselID    string
	ExpiryHours *float64
}

// NearbyHazard - активное сообщение вместе с расстоянием до точки запроса
type NearbyHazard struct {
	Hazard     HazardReport `json:"hazard"`
	DistanceKm float64      `json:"distance_km"`
}

// VoteOutcome - результат голосования: либо обновленное сообщение, либо факт удаления
type VoteOutcome struct {
	Hazard  *HazardReport `json:"hazard,omitempty"`
	Removed bool          `json:"removed,omitempty"`
}
