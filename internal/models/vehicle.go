package models

import (
	"time"

	"rental-backend/pkg/dates"
)

// VehicleStatus is the cached fleet status maintained by the rental and
// maintenance lifecycle operations. It must always agree with the set of
// open rentals and maintenance windows covering "now"; any other reference
// date goes through FleetStateService.EffectiveStatus instead.
type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
)

// ValidVehicleStatus reports whether s is one of the three known statuses.
func ValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusRented, VehicleStatusMaintenance:
		return true
	}
	return false
}

type Vehicle struct {
	ID          int64         `bson:"_id" json:"id"`
	PlateNumber string        `bson:"plate_number" json:"plateNumber" validate:"required"`
	Make        string        `bson:"make" json:"make" validate:"required"`
	Model       string        `bson:"model" json:"model" validate:"required"`
	Year        int           `bson:"year" json:"year" validate:"min=1900,max=2100"`
	Category    string        `bson:"category" json:"category"`
	DailyRate   float64       `bson:"daily_rate" json:"dailyRate" validate:"gt=0"`
	Active      bool          `bson:"active" json:"active"`
	Status      VehicleStatus `bson:"status" json:"status"`
	Odometer    float64       `bson:"odometer" json:"odometer"`
	FuelLevel   float64       `bson:"fuel_level" json:"fuelLevel"`
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updatedAt"`
}

// FleetSnapshot is the per-status vehicle count on a reference date,
// derived from rental and maintenance windows rather than the cached
// status field.
type FleetSnapshot struct {
	Date        dates.Date `json:"date"`
	Available   int        `json:"available"`
	Rented      int        `json:"rented"`
	Maintenance int        `json:"maintenance"`
	Inactive    int        `json:"inactive"`
}
