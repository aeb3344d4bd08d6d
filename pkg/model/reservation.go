package model

import (
	"time"
)

// Reservation is a booking of one equipment item for a [StartTime, EndTime)
// slot on a calendar date. JSON field names are the wire contract consumed
// by the frontend; bson names follow the store conventions.
//
// EquipmentName is a snapshot taken from the catalog at creation time. It
// is deliberately not re-resolved on read, so later catalog renames leave
// historical reservations untouched.
type Reservation struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	EquipmentID   string    `json:"equipmentId" bson:"equipment_id" validate:"required"`
	EquipmentName string    `json:"equipmentName" bson:"equipment_name" validate:"omitempty"`
	Date          string    `json:"date" bson:"date" validate:"required,iso_date"`
	StartTime     string    `json:"startTime" bson:"start_time" validate:"required,hour_slot"`
	EndTime       string    `json:"endTime" bson:"end_time" validate:"required,hour_slot"`
	UserName      string    `json:"userName" bson:"user_name" validate:"required,max=100"`
	Observation   string    `json:"observation,omitempty" bson:"observation,omitempty" validate:"omitempty,max=500"`
	CreatedAt     time.Time `json:"createdAt" bson:"created_at" validate:"omitempty"`
}
