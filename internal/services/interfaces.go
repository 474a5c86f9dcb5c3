package services

import (
	"rental-backend/internal/models"
	"rental-backend/pkg/dates"
)

// Store contracts consumed by the service layer. The Mongo repositories in
// internal/repository satisfy them; tests substitute in-memory fakes. The
// services make no assumption about the storage engine beyond these
// signatures.

type VehicleStore interface {
	Create(vehicle *models.Vehicle) (*models.Vehicle, error)
	FindByID(id int64) (*models.Vehicle, error)
	FindByPlateNumber(plateNumber string) (*models.Vehicle, error)
	FindAll() ([]*models.Vehicle, error)
	Update(vehicle *models.Vehicle) error
	SetActive(id int64, active bool) error
}

type CustomerStore interface {
	Create(customer *models.Customer) (*models.Customer, error)
	FindByID(id int64) (*models.Customer, error)
	FindAll() ([]*models.Customer, error)
	Update(customer *models.Customer) error
	SetActive(id int64, active bool) error
}

type EmployeeStore interface {
	Create(employee *models.Employee) (*models.Employee, error)
	FindByID(id int64) (*models.Employee, error)
	FindAll() ([]*models.Employee, error)
	Update(employee *models.Employee) error
	SetActive(id int64, active bool) error
}

type RentalStore interface {
	Create(rental *models.Rental) (*models.Rental, error)
	FindByID(id int64) (*models.Rental, error)
	FindOpenByVehicle(vehicleID int64) ([]*models.Rental, error)
	FindByVehicle(vehicleID int64) ([]*models.Rental, error)
	FindByCustomer(customerID int64) ([]*models.Rental, error)
	FindStartedBetween(from, to dates.Date) ([]*models.Rental, error)
	FindAll() ([]*models.Rental, error)
	Update(rental *models.Rental) error
}

type MaintenanceStore interface {
	Create(window *models.MaintenanceWindow) (*models.MaintenanceWindow, error)
	FindByID(id int64) (*models.MaintenanceWindow, error)
	FindByVehicle(vehicleID int64) ([]*models.MaintenanceWindow, error)
	FindAll() ([]*models.MaintenanceWindow, error)
	Delete(id int64) error
}

type IncidentStore interface {
	Create(incident *models.Incident) (*models.Incident, error)
	FindByID(id int64) (*models.Incident, error)
	FindByRental(rentalID int64) ([]*models.Incident, error)
	FindAll() ([]*models.Incident, error)
	Update(incident *models.Incident) error
	SumPendingByRental(rentalID int64) (float64, error)
}

type UserStore interface {
	Create(user *models.User) (*models.User, error)
	FindByID(id string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	Update(user *models.User) error
}
