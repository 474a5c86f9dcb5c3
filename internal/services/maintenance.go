package services

import (
	"strings"
	"time"

	"rental-backend/internal/apperrors"
	"rental-backend/internal/models"
	"rental-backend/pkg/vehiclelock"
)

// MaintenanceService schedules service windows on vehicles. Scheduling
// mirrors rental opening with the candidate/existing roles swapped; the
// vehicle's cached status is untouched because maintenance state is derived
// by date (see FleetStateService). Deleting a window needs no conflict
// re-check.
type MaintenanceService struct {
	maintenanceStore MaintenanceStore
	vehicleStore     VehicleStore
	conflicts        *ConflictDetector
	locks            *vehiclelock.Table
}

func NewMaintenanceService(
	maintenanceStore MaintenanceStore,
	vehicleStore VehicleStore,
	conflicts *ConflictDetector,
	locks *vehiclelock.Table,
) *MaintenanceService {
	return &MaintenanceService{
		maintenanceStore: maintenanceStore,
		vehicleStore:     vehicleStore,
		conflicts:        conflicts,
		locks:            locks,
	}
}

type ScheduleMaintenanceRequest struct {
	VehicleID   int64  `json:"vehicleId" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (s *MaintenanceService) ScheduleMaintenance(req *ScheduleMaintenanceRequest) (*models.MaintenanceWindow, error) {
	if req.VehicleID <= 0 {
		return nil, apperrors.Validation("vehicle id must be positive")
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, apperrors.Validation("description cannot be empty")
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

	s.locks.Lock(req.VehicleID)
	defer s.locks.Unlock(req.VehicleID)

	vehicle, err := s.vehicleStore.FindByID(req.VehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.Active {
		return nil, apperrors.Inactive("vehicle %d is inactive and cannot be serviced", vehicle.ID)
	}

	conflict, err := s.conflicts.HasConflict(req.VehicleID, start, end)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, apperrors.Conflict("vehicle %d already has a rental or maintenance window in that date range", vehicle.ID)
	}

	now := time.Now()
	window := &models.MaintenanceWindow{
		VehicleID:   req.VehicleID,
		StartDate:   start,
		EndDate:     end,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.maintenanceStore.Create(window)
}

func (s *MaintenanceService) GetMaintenance(id int64) (*models.MaintenanceWindow, error) {
	if id <= 0 {
		return nil, apperrors.Validation("maintenance window id must be positive")
	}
	return s.maintenanceStore.FindByID(id)
}

func (s *MaintenanceService) ListMaintenance() ([]*models.MaintenanceWindow, error) {
	return s.maintenanceStore.FindAll()
}

func (s *MaintenanceService) ListMaintenanceByVehicle(vehicleID int64) ([]*models.MaintenanceWindow, error) {
	if vehicleID <= 0 {
		return nil, apperrors.Validation("vehicle id must be positive")
	}
	if _, err := s.vehicleStore.FindByID(vehicleID); err != nil {
		return nil, err
	}
	return s.maintenanceStore.FindByVehicle(vehicleID)
}

func (s *MaintenanceService) DeleteMaintenance(id int64) error {
	if id <= 0 {
		return apperrors.Validation("maintenance window id must be positive")
	}
	if _, err := s.maintenanceStore.FindByID(id); err != nil {
		return err
	}
	return s.maintenanceStore.Delete(id)
}
