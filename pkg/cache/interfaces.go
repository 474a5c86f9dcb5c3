package cache

import (
	"time"

	"rental-backend/internal/models"
)

// CacheManager defines the caching operations the services use. A nil
// manager disables caching; every method is best-effort and a miss returns
// (nil, nil) rather than an error.
type CacheManager interface {
	// Vehicle operations
	GetVehicle(vehicleID int64) (*models.Vehicle, error)
	SetVehicle(vehicleID int64, vehicle *models.Vehicle, ttl time.Duration) error
	InvalidateVehicle(vehicleID int64) error

	// Vehicle list operations
	GetVehicleList(key string) ([]*models.Vehicle, error)
	SetVehicleList(key string, vehicles []*models.Vehicle, ttl time.Duration) error
	InvalidateVehicleLists() error

	// Fleet snapshot operations (keyed by reference date)
	GetFleetSnapshot(date string) (*models.FleetSnapshot, error)
	SetFleetSnapshot(date string, snapshot *models.FleetSnapshot, ttl time.Duration) error

	// Health
	HealthCheck() error
	Close() error
}
