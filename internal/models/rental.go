package models

import (
	"time"

	"rental-backend/pkg/dates"
)

// RentalStatus is the two-state rental lifecycle. CLOSED is terminal;
// rentals are never cancelled, deleted or reopened.
type RentalStatus string

const (
	RentalStatusOpen   RentalStatus = "OPEN"
	RentalStatusClosed RentalStatus = "CLOSED"
)

// Rental is a contract occupying one vehicle over the inclusive window
// [StartDate, EndDate]. DailyRate is a snapshot taken at open time and kept
// for audit; the close-time total is recomputed from the vehicle's current
// rate. OdometerEnd/FuelEnd/ReturnDate stay nil until the rental is closed.
type Rental struct {
	ID            int64        `bson:"_id" json:"id"`
	CustomerID    int64        `bson:"customer_id" json:"customerId"`
	VehicleID     int64        `bson:"vehicle_id" json:"vehicleId"`
	EmployeeID    int64        `bson:"employee_id" json:"employeeId"`
	StartDate     dates.Date   `bson:"start_date" json:"startDate"`
	EndDate       dates.Date   `bson:"end_date" json:"endDate"`
	ReturnDate    *dates.Date  `bson:"return_date,omitempty" json:"returnDate,omitempty"`
	DailyRate     float64      `bson:"daily_rate" json:"dailyRate"`
	Status        RentalStatus `bson:"status" json:"status"`
	Total         float64      `bson:"total" json:"total"`
	OdometerStart float64      `bson:"odometer_start" json:"odometerStart"`
	OdometerEnd   *float64     `bson:"odometer_end,omitempty" json:"odometerEnd,omitempty"`
	FuelStart     float64      `bson:"fuel_start" json:"fuelStart"`
	FuelEnd       *float64     `bson:"fuel_end,omitempty" json:"fuelEnd,omitempty"`
	CreatedAt     time.Time    `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time    `bson:"updated_at" json:"updatedAt"`
}
