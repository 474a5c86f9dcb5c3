package services

import (
	"rental-backend/pkg/dates"
)

// ConflictDetector answers whether a candidate date window collides with
// what already occupies a vehicle. It is read-only and shared by rental
// opening and maintenance scheduling; the candidate/existing roles are
// symmetric on both sides.
type ConflictDetector struct {
	rentalStore      RentalStore
	maintenanceStore MaintenanceStore
}

func NewConflictDetector(rentalStore RentalStore, maintenanceStore MaintenanceStore) *ConflictDetector {
	return &ConflictDetector{
		rentalStore:      rentalStore,
		maintenanceStore: maintenanceStore,
	}
}

// HasConflict reports whether [start, end] overlaps any open rental or any
// maintenance window of the vehicle. Boundaries are inclusive: sharing a
// single day is a conflict.
func (d *ConflictDetector) HasConflict(vehicleID int64, start, end dates.Date) (bool, error) {
	openRentals, err := d.rentalStore.FindOpenByVehicle(vehicleID)
	if err != nil {
		return false, err
	}
	for _, rental := range openRentals {
		if dates.Overlaps(start, end, rental.StartDate, rental.EndDate) {
			return true, nil
		}
	}

	windows, err := d.maintenanceStore.FindByVehicle(vehicleID)
	if err != nil {
		return false, err
	}
	for _, window := range windows {
		if dates.Overlaps(start, end, window.StartDate, window.EndDate) {
			return true, nil
		}
	}

	return false, nil
}
