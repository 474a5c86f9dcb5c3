package services

import (
	"rental-backend/internal/apperrors"
	"rental-backend/internal/models"
)

// ReportService answers the read-only questions the back office asks:
// rental history per customer or vehicle, activity in a date range, and
// billed totals. Range queries select by rental START date, like the
// original reporting screens did.
type ReportService struct {
	rentalStore   RentalStore
	customerStore CustomerStore
	vehicleStore  VehicleStore
}

func NewReportService(rentalStore RentalStore, customerStore CustomerStore, vehicleStore VehicleStore) *ReportService {
	return &ReportService{
		rentalStore:   rentalStore,
		customerStore: customerStore,
		vehicleStore:  vehicleStore,
	}
}

func (s *ReportService) RentalsByCustomer(customerID int64) ([]*models.Rental, error) {
	if customerID <= 0 {
		return nil, apperrors.Validation("customer id must be positive")
	}
	if _, err := s.customerStore.FindByID(customerID); err != nil {
		return nil, err
	}
	return s.rentalStore.FindByCustomer(customerID)
}

func (s *ReportService) RentalsByVehicle(vehicleID int64) ([]*models.Rental, error) {
	if vehicleID <= 0 {
		return nil, apperrors.Validation("vehicle id must be positive")
	}
	if _, err := s.vehicleStore.FindByID(vehicleID); err != nil {
		return nil, err
	}
	return s.rentalStore.FindByVehicle(vehicleID)
}

func (s *ReportService) RentalsInRange(fromStr, toStr string) ([]*models.Rental, error) {
	from, err := parseDate(fromStr, "from date")
	if err != nil {
		return nil, err
	}
	to, err := parseDate(toStr, "to date")
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, apperrors.Validation("to date cannot be before from date")
	}

	return s.rentalStore.FindStartedBetween(from, to)
}

// BilledTotal sums the totals of CLOSED rentals started in the range. Open
// rentals carry only an estimate and are excluded.
type BilledTotal struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Rentals int     `json:"rentals"`
	Total   float64 `json:"total"`
}

func (s *ReportService) TotalBilledInRange(fromStr, toStr string) (*BilledTotal, error) {
	rentals, err := s.RentalsInRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}

	report := &BilledTotal{From: fromStr, To: toStr}
	for _, rental := range rentals {
		if rental.Status != models.RentalStatusClosed {
			continue
		}
		report.Rentals++
		report.Total += rental.Total
	}

	return report, nil
}
