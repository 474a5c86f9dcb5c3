package services

import (
	"log"

	"rental-backend/internal/apperrors"
	"rental-backend/internal/models"
	"rental-backend/pkg/cache"
	"rental-backend/pkg/dates"
)

// FleetStateService derives what a vehicle is doing on an arbitrary
// reference date by scanning its windows, independently of the cached
// status field. Read-only; dashboards and reports query past and future
// dates through it without mutating anything.
type FleetStateService struct {
	vehicleStore     VehicleStore
	rentalStore      RentalStore
	maintenanceStore MaintenanceStore
	cacheManager     cache.CacheManager
	cacheConfig      cache.CacheConfig
}

func NewFleetStateService(vehicleStore VehicleStore, rentalStore RentalStore, maintenanceStore MaintenanceStore) *FleetStateService {
	return &FleetStateService{
		vehicleStore:     vehicleStore,
		rentalStore:      rentalStore,
		maintenanceStore: maintenanceStore,
		cacheConfig:      cache.DefaultCacheConfig(),
	}
}

// SetCacheManager allows setting the cache manager for snapshot caching
func (s *FleetStateService) SetCacheManager(cacheManager cache.CacheManager) {
	s.cacheManager = cacheManager
}

// EffectiveStatus returns the vehicle's status on referenceDate.
// Maintenance wins over rentals; a vehicle with neither window covering the
// date is AVAILABLE regardless of its cached status field.
func (s *FleetStateService) EffectiveStatus(vehicleID int64, referenceDate dates.Date) (models.VehicleStatus, error) {
	if vehicleID <= 0 {
		return "", apperrors.Validation("vehicle id must be positive")
	}

	if _, err := s.vehicleStore.FindByID(vehicleID); err != nil {
		return "", err
	}

	windows, err := s.maintenanceStore.FindByVehicle(vehicleID)
	if err != nil {
		return "", err
	}
	for _, window := range windows {
		if dates.Covers(window.StartDate, window.EndDate, referenceDate) {
			return models.VehicleStatusMaintenance, nil
		}
	}

	openRentals, err := s.rentalStore.FindOpenByVehicle(vehicleID)
	if err != nil {
		return "", err
	}
	for _, rental := range openRentals {
		if dates.Covers(rental.StartDate, rental.EndDate, referenceDate) {
			return models.VehicleStatusRented, nil
		}
	}

	return models.VehicleStatusAvailable, nil
}

// Snapshot counts the fleet by effective status on referenceDate. The
// result is cached briefly because the dashboard polls it.
func (s *FleetStateService) Snapshot(referenceDate dates.Date) (*models.FleetSnapshot, error) {
	if s.cacheManager != nil {
		cached, err := s.cacheManager.GetFleetSnapshot(referenceDate.String())
		if err != nil {
			log.Printf("Cache error for fleet snapshot %s: %v", referenceDate, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	vehicles, err := s.vehicleStore.FindAll()
	if err != nil {
		return nil, err
	}

	snapshot := &models.FleetSnapshot{Date: referenceDate}
	for _, vehicle := range vehicles {
		if !vehicle.Active {
			snapshot.Inactive++
			continue
		}

		status, err := s.EffectiveStatus(vehicle.ID, referenceDate)
		if err != nil {
			return nil, err
		}

		switch status {
		case models.VehicleStatusMaintenance:
			snapshot.Maintenance++
		case models.VehicleStatusRented:
			snapshot.Rented++
		case models.VehicleStatusAvailable:
			snapshot.Available++
		}
	}

	if s.cacheManager != nil {
		ttl := s.cacheConfig.GetTTLForDataType("fleet_snapshot")
		if err := s.cacheManager.SetFleetSnapshot(referenceDate.String(), snapshot, ttl); err != nil {
			log.Printf("Failed to cache fleet snapshot %s: %v", referenceDate, err)
		}
	}

	return snapshot, nil
}
