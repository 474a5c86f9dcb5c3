package services

import (
	"log"
	"strings"
	"time"

	"rental-backend/internal/apperrors"
	"rental-backend/internal/models"
	"rental-backend/pkg/cache"
	"rental-backend/pkg/dates"
	"rental-backend/pkg/vehiclelock"
)

// RentalService owns the rental lifecycle: OpenRental creates a contract in
// OPEN state, CloseRental moves it to CLOSED exactly once. Every domain
// check runs before the first write, so a failed operation leaves no
// partial state behind.
type RentalService struct {
	rentalStore   RentalStore
	vehicleStore  VehicleStore
	customerStore CustomerStore
	employeeStore EmployeeStore
	conflicts     *ConflictDetector
	locks         *vehiclelock.Table
	cacheManager  cache.CacheManager
}

func NewRentalService(
	rentalStore RentalStore,
	vehicleStore VehicleStore,
	customerStore CustomerStore,
	employeeStore EmployeeStore,
	conflicts *ConflictDetector,
	locks *vehiclelock.Table,
) *RentalService {
	return &RentalService{
		rentalStore:   rentalStore,
		vehicleStore:  vehicleStore,
		customerStore: customerStore,
		employeeStore: employeeStore,
		conflicts:     conflicts,
		locks:         locks,
	}
}

// SetCacheManager allows setting the cache manager so vehicle reads stay
// fresh after lifecycle writes.
func (s *RentalService) SetCacheManager(cacheManager cache.CacheManager) {
	s.cacheManager = cacheManager
}

type OpenRentalRequest struct {
	CustomerID int64  `json:"customerId" validate:"required"`
	VehicleID  int64  `json:"vehicleId" validate:"required"`
	EmployeeID int64  `json:"employeeId" validate:"required"`
	StartDate  string `json:"startDate" validate:"required"`
	EndDate    string `json:"endDate" validate:"required"`
}

type CloseRentalRequest struct {
	ReturnDate  string  `json:"returnDate" validate:"required"`
	OdometerEnd float64 `json:"odometerEnd"`
	FuelEnd     float64 `json:"fuelEnd"`
	ExtraAmount float64 `json:"extraAmount"`
}

// OpenRental validates the request, checks the candidate window against
// everything occupying the vehicle, and creates the rental with odometer
// and fuel snapshots. The vehicle's cached status flips to RENTED.
func (s *RentalService) OpenRental(req *OpenRentalRequest) (*models.Rental, error) {
	if req.CustomerID <= 0 || req.VehicleID <= 0 || req.EmployeeID <= 0 {
		return nil, apperrors.Validation("customer, vehicle and employee ids must be positive")
	}

	start, err := parseDate(req.StartDate, "start date")
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate, "end date")
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, apperrors.Validation("end date cannot be before start date")
	}

	customer, err := s.customerStore.FindByID(req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customer.Active {
		return nil, apperrors.Inactive("customer %d is inactive and cannot rent", customer.ID)
	}

	s.locks.Lock(req.VehicleID)
	defer s.locks.Unlock(req.VehicleID)

	vehicle, err := s.vehicleStore.FindByID(req.VehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.Active {
		return nil, apperrors.Inactive("vehicle %d is inactive and cannot be rented", vehicle.ID)
	}
	switch vehicle.Status {
	case models.VehicleStatusRented:
		return nil, apperrors.Conflict("vehicle %d is already rented", vehicle.ID)
	case models.VehicleStatusMaintenance:
		return nil, apperrors.Conflict("vehicle %d is under maintenance", vehicle.ID)
	case models.VehicleStatusAvailable:
		// free to rent
	}

	employee, err := s.employeeStore.FindByID(req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !employee.Active {
		return nil, apperrors.Inactive("employee %d is inactive and cannot manage rentals", employee.ID)
	}

	conflict, err := s.conflicts.HasConflict(req.VehicleID, start, end)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, apperrors.Conflict("vehicle %d already has a rental or maintenance window in that date range", vehicle.ID)
	}

	days := dates.BilledDays(start, end)
	now := time.Now()

	rental := &models.Rental{
		CustomerID:    req.CustomerID,
		VehicleID:     req.VehicleID,
		EmployeeID:    req.EmployeeID,
		StartDate:     start,
		EndDate:       end,
		DailyRate:     vehicle.DailyRate,
		Status:        models.RentalStatusOpen,
		Total:         float64(days) * vehicle.DailyRate,
		OdometerStart: vehicle.Odometer,
		FuelStart:     vehicle.FuelLevel,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.rentalStore.Create(rental)
	if err != nil {
		return nil, err
	}

	vehicle.Status = models.VehicleStatusRented
	if err := s.vehicleStore.Update(vehicle); err != nil {
		return nil, err
	}

	s.invalidateVehicleCache(vehicle.ID)
	return created, nil
}

// CloseRental settles an open rental: the total is recomputed from the
// actual return date and the vehicle's CURRENT daily rate (not the
// open-time snapshot) plus the extra amount, and the vehicle takes the
// closing odometer and fuel readings back.
func (s *RentalService) CloseRental(rentalID int64, req *CloseRentalRequest) (*models.Rental, error) {
	if rentalID <= 0 {
		return nil, apperrors.Validation("rental id must be positive")
	}

	rental, err := s.rentalStore.FindByID(rentalID)
	if err != nil {
		return nil, err
	}

	if rental.Status != models.RentalStatusOpen {
		return nil, apperrors.State("rental %d is already closed", rental.ID)
	}

	returnDate, err := parseDate(req.ReturnDate, "return date")
	if err != nil {
		return nil, err
	}
	if returnDate.Before(rental.StartDate) {
		return nil, apperrors.Validation("return date cannot be before the rental start date")
	}

	if req.ExtraAmount < 0 {
		return nil, apperrors.Validation("extra amount cannot be negative")
	}
	if req.OdometerEnd < 0 {
		return nil, apperrors.Validation("closing odometer cannot be negative")
	}
	if req.OdometerEnd < rental.OdometerStart {
		return nil, apperrors.Validation("closing odometer (%.1f) cannot be below the opening reading (%.1f)", req.OdometerEnd, rental.OdometerStart)
	}
	if req.FuelEnd < 0 {
		return nil, apperrors.Validation("closing fuel level cannot be negative")
	}

	s.locks.Lock(rental.VehicleID)
	defer s.locks.Unlock(rental.VehicleID)

	vehicle, err := s.vehicleStore.FindByID(rental.VehicleID)
	if err != nil {
		return nil, err
	}

	realDays := dates.BilledDays(rental.StartDate, returnDate)

	odometerEnd := req.OdometerEnd
	fuelEnd := req.FuelEnd

	rental.ReturnDate = &returnDate
	rental.OdometerEnd = &odometerEnd
	rental.FuelEnd = &fuelEnd
	rental.Total = float64(realDays)*vehicle.DailyRate + req.ExtraAmount
	rental.Status = models.RentalStatusClosed

	if err := s.rentalStore.Update(rental); err != nil {
		return nil, err
	}

	vehicle.Odometer = odometerEnd
	vehicle.FuelLevel = fuelEnd
	vehicle.Status = models.VehicleStatusAvailable
	if err := s.vehicleStore.Update(vehicle); err != nil {
		return nil, err
	}

	s.invalidateVehicleCache(vehicle.ID)
	return rental, nil
}

func (s *RentalService) invalidateVehicleCache(vehicleID int64) {
	if s.cacheManager == nil {
		return
	}
	if err := s.cacheManager.InvalidateVehicle(vehicleID); err != nil {
		log.Printf("Failed to invalidate vehicle %d cache: %v", vehicleID, err)
	}
	if err := s.cacheManager.InvalidateVehicleLists(); err != nil {
		log.Printf("Failed to invalidate vehicle list cache: %v", err)
	}
}

func (s *RentalService) GetRental(id int64) (*models.Rental, error) {
	if id <= 0 {
		return nil, apperrors.Validation("rental id must be positive")
	}
	return s.rentalStore.FindByID(id)
}

func (s *RentalService) ListRentals() ([]*models.Rental, error) {
	return s.rentalStore.FindAll()
}

func parseDate(value, field string) (dates.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return dates.Date{}, apperrors.Validation("%s cannot be empty", field)
	}
	d, err := dates.Parse(value)
	if err != nil {
		return dates.Date{}, apperrors.Validation("%s must have format %s", field, dates.Layout)
	}
	return d, nil
}
