package services

import (
	"log"
	"time"

	"rental-backend/internal/apperrors"
	"rental-backend/internal/models"
	"rental-backend/pkg/cache"
)

type VehicleService struct {
	vehicleStore VehicleStore
	cacheManager cache.CacheManager
	cacheConfig  cache.CacheConfig
}

func NewVehicleService(vehicleStore VehicleStore) *VehicleService {
	return &VehicleService{
		vehicleStore: vehicleStore,
		cacheConfig:  cache.DefaultCacheConfig(),
	}
}

// SetCacheManager allows setting the cache manager for caching operations
func (s *VehicleService) SetCacheManager(cacheManager cache.CacheManager) {
	s.cacheManager = cacheManager
}

// SetCacheConfig allows setting custom cache configuration
func (s *VehicleService) SetCacheConfig(config cache.CacheConfig) {
	s.cacheConfig = config
}

type CreateVehicleRequest struct {
	PlateNumber string  `json:"plateNumber" validate:"required,min=1,max=20"`
	Make        string  `json:"make" validate:"required,min=1,max=100"`
	Model       string  `json:"model" validate:"required,min=1,max=100"`
	Year        int     `json:"year" validate:"required,min=1900,max=2100"`
	Category    string  `json:"category,omitempty"`
	DailyRate   float64 `json:"dailyRate" validate:"required,gt=0"`
	Odometer    float64 `json:"odometer,omitempty" validate:"omitempty,min=0"`
	FuelLevel   float64 `json:"fuelLevel,omitempty" validate:"omitempty,min=0"`
}

type UpdateVehicleRequest struct {
	PlateNumber string  `json:"plateNumber,omitempty"`
	Make        string  `json:"make,omitempty"`
	Model       string  `json:"model,omitempty"`
	Year        int     `json:"year,omitempty"`
	Category    string  `json:"category,omitempty"`
	DailyRate   float64 `json:"dailyRate,omitempty" validate:"omitempty,gt=0"`
	Status      string  `json:"status,omitempty"`
}

func (s *VehicleService) GetAllVehicles() ([]*models.Vehicle, error) {
	if s.cacheManager != nil {
		cached, err := s.cacheManager.GetVehicleList("all_vehicles")
		if err != nil {
			log.Printf("Cache error for GetAllVehicles: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	vehicles, err := s.vehicleStore.FindAll()
	if err != nil {
		return nil, err
	}

	if s.cacheManager != nil {
		ttl := s.cacheConfig.GetTTLForDataType("vehicle_list")
		if cacheErr := s.cacheManager.SetVehicleList("all_vehicles", vehicles, ttl); cacheErr != nil {
			log.Printf("Failed to cache all vehicles: %v", cacheErr)
		}
	}

	return vehicles, nil
}

func (s *VehicleService) GetVehicleByID(id int64) (*models.Vehicle, error) {
	if id <= 0 {
		return nil, apperrors.Validation("vehicle id must be positive")
	}

	if s.cacheManager != nil {
		cached, err := s.cacheManager.GetVehicle(id)
		if err != nil {
			log.Printf("Cache error for GetVehicleByID(%d): %v", id, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	vehicle, err := s.vehicleStore.FindByID(id)
	if err != nil {
		return nil, err
	}

	if s.cacheManager != nil {
		ttl := s.cacheConfig.GetTTLForDataType("vehicle")
		if cacheErr := s.cacheManager.SetVehicle(id, vehicle, ttl); cacheErr != nil {
			log.Printf("Failed to cache vehicle %d: %v", id, cacheErr)
		}
	}

	return vehicle, nil
}

func (s *VehicleService) CreateVehicle(req *CreateVehicleRequest) (*models.Vehicle, error) {
	existing, err := s.vehicleStore.FindByPlateNumber(req.PlateNumber)
	if err != nil && !apperrors.IsKind(err, apperrors.KindNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Validation("plate number %s already exists", req.PlateNumber)
	}

	now := time.Now()
	vehicle := &models.Vehicle{
		PlateNumber: req.PlateNumber,
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		Category:    req.Category,
		DailyRate:   req.DailyRate,
		Active:      true,
		Status:      models.VehicleStatusAvailable,
		Odometer:    req.Odometer,
		FuelLevel:   req.FuelLevel,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.vehicleStore.Create(vehicle)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(created.ID)
	return created, nil
}

// UpdateVehicle changes descriptive fields and the daily rate. The status
// field is owned by the rental/maintenance lifecycle and cannot be written
// through here.
func (s *VehicleService) UpdateVehicle(id int64, req *UpdateVehicleRequest) (*models.Vehicle, error) {
	if id <= 0 {
		return nil, apperrors.Validation("vehicle id must be positive")
	}
	if req.Status != "" {
		return nil, apperrors.Validation("vehicle status cannot be set directly; it is managed by rentals and maintenance")
	}

	vehicle, err := s.vehicleStore.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.PlateNumber != "" && req.PlateNumber != vehicle.PlateNumber {
		existing, err := s.vehicleStore.FindByPlateNumber(req.PlateNumber)
		if err != nil && !apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.Validation("plate number %s already exists", req.PlateNumber)
		}
		vehicle.PlateNumber = req.PlateNumber
	}
	if req.Make != "" {
		vehicle.Make = req.Make
	}
	if req.Model != "" {
		vehicle.Model = req.Model
	}
	if req.Year > 0 {
		vehicle.Year = req.Year
	}
	if req.Category != "" {
		vehicle.Category = req.Category
	}
	if req.DailyRate > 0 {
		vehicle.DailyRate = req.DailyRate
	}

	if err := s.vehicleStore.Update(vehicle); err != nil {
		return nil, err
	}

	s.invalidateCache(id)
	return vehicle, nil
}

func (s *VehicleService) SetVehicleActive(id int64, active bool) error {
	if id <= 0 {
		return apperrors.Validation("vehicle id must be positive")
	}
	if err := s.vehicleStore.SetActive(id, active); err != nil {
		return err
	}
	s.invalidateCache(id)
	return nil
}

func (s *VehicleService) invalidateCache(id int64) {
	if s.cacheManager == nil {
		return
	}
	if err := s.cacheManager.InvalidateVehicle(id); err != nil {
		log.Printf("Failed to invalidate vehicle %d cache: %v", id, err)
	}
	if err := s.cacheManager.InvalidateVehicleLists(); err != nil {
		log.Printf("Failed to invalidate vehicle list cache: %v", err)
	}
}
