package models

import "time"

// Slot represents one bookable (date, time-bucket, professional) unit.
// A slot document only exists once the professional has enabled that bucket;
// buckets without a document are not offered.
type Slot struct {
	ID             string    `bson:"id" json:"id"`
	Date           string    `bson:"date" json:"date"`                 // calendar day, e.g. "2025-06-01"
	TimeSlot       string    `bson:"timeSlot" json:"timeSlot"`         // bucket label, e.g. "10:00 - 11:00"
	ProfessionalID string    `bson:"professionalId" json:"professionalId"`
	OccupantID     *string   `bson:"occupantId" json:"occupantId"`     // nil until reserved
	IsBlocked      bool      `bson:"isBlocked" json:"isBlocked"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// Reserved reports whether the slot has an occupant.
func (s *Slot) Reserved() bool {
	return s.OccupantID != nil && *s.OccupantID != ""
}

// EnableSlotsRequest is the payload for enabling buckets on a date.
type EnableSlotsRequest struct {
	Date      string   `json:"date" binding:"required"`
	TimeSlots []string `json:"timeSlots" binding:"required"`
}

// ReserveSlotRequest is the payload for claiming one open bucket.
type ReserveSlotRequest struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required"`
	Language string `json:"language" binding:"required"` // "es" or "en"
}

// BlockSlotRequest is the payload for blocking or unblocking one bucket.
type BlockSlotRequest struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required"`
	Blocked  *bool  `json:"blocked" binding:"required"`
}

// DayView is the privileged occupancy view: every fixed bucket of one day
// with its display state, whether or not a slot document exists yet.
type DayView struct {
	Date    string       `json:"date"`
	Buckets []BucketView `json:"buckets"`
}

// BucketView is one bucket within a DayView.
type BucketView struct {
	TimeSlot string `json:"timeSlot"`
	State    string `json:"state"`
	Past     bool   `json:"past"`
	Disabled bool   `json:"disabled"`
}
