package models

import (
	"time"

	"rental-backend/pkg/dates"
)

// MaintenanceWindow reserves a vehicle for service over the inclusive
// window [StartDate, EndDate]. It has no state machine: windows are created
// by the scheduler and deleted independently. A window must never overlap
// another window or an open rental of the same vehicle.
type MaintenanceWindow struct {
	ID          int64      `bson:"_id" json:"id"`
	VehicleID   int64      `bson:"vehicle_id" json:"vehicleId"`
	StartDate   dates.Date `bson:"start_date" json:"startDate"`
	EndDate     dates.Date `bson:"end_date" json:"endDate"`
	Description string     `bson:"description" json:"description"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updatedAt"`
}
