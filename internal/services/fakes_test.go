package services

import (
	"sync"

	"rental-backend/internal/apperrors"
	"rental-backend/internal/models"
	"rental-backend/pkg/dates"
)

// In-memory store fakes backing the service tests. They reproduce the
// repository error contract: NotFound for missing ids, Persistence when a
// second OPEN rental is inserted for the same vehicle.

type fakeVehicleStore struct {
	mu       sync.Mutex
	nextID   int64
	vehicles map[int64]*models.Vehicle
}

func newFakeVehicleStore() *fakeVehicleStore {
	return &fakeVehicleStore{vehicles: make(map[int64]*models.Vehicle)}
}

func (s *fakeVehicleStore) Create(vehicle *models.Vehicle) (*models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	vehicle.ID = s.nextID
	copied := *vehicle
	s.vehicles[vehicle.ID] = &copied
	return vehicle, nil
}

func (s *fakeVehicleStore) FindByID(id int64) (*models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vehicle, ok := s.vehicles[id]
	if !ok {
		return nil, apperrors.NotFound("vehicle %d not found", id)
	}
	copied := *vehicle
	return &copied, nil
}

func (s *fakeVehicleStore) FindByPlateNumber(plateNumber string) (*models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, vehicle := range s.vehicles {
		if vehicle.PlateNumber == plateNumber {
			copied := *vehicle
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("vehicle with plate %s not found", plateNumber)
}

func (s *fakeVehicleStore) FindAll() ([]*models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*models.Vehicle, 0, len(s.vehicles))
	for _, vehicle := range s.vehicles {
		copied := *vehicle
		result = append(result, &copied)
	}
	return result, nil
}

func (s *fakeVehicleStore) Update(vehicle *models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehicles[vehicle.ID]; !ok {
		return apperrors.NotFound("vehicle %d not found", vehicle.ID)
	}
	copied := *vehicle
	s.vehicles[vehicle.ID] = &copied
	return nil
}

func (s *fakeVehicleStore) SetActive(id int64, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	vehicle, ok := s.vehicles[id]
	if !ok {
		return apperrors.NotFound("vehicle %d not found", id)
	}
	vehicle.Active = active
	return nil
}

type fakeCustomerStore struct {
	mu        sync.Mutex
	nextID    int64
	customers map[int64]*models.Customer
}

func newFakeCustomerStore() *fakeCustomerStore {
	return &fakeCustomerStore{customers: make(map[int64]*models.Customer)}
}

func (s *fakeCustomerStore) Create(customer *models.Customer) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	customer.ID = s.nextID
	copied := *customer
	s.customers[customer.ID] = &copied
	return customer, nil
}

func (s *fakeCustomerStore) FindByID(id int64) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	customer, ok := s.customers[id]
	if !ok {
		return nil, apperrors.NotFound("customer %d not found", id)
	}
	copied := *customer
	return &copied, nil
}

func (s *fakeCustomerStore) FindAll() ([]*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*models.Customer, 0, len(s.customers))
	for _, customer := range s.customers {
		copied := *customer
		result = append(result, &copied)
	}
	return result, nil
}

func (s *fakeCustomerStore) Update(customer *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[customer.ID]; !ok {
		return apperrors.NotFound("customer %d not found", customer.ID)
	}
	copied := *customer
	s.customers[customer.ID] = &copied
	return nil
}

func (s *fakeCustomerStore) SetActive(id int64, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	customer, ok := s.customers[id]
	if !ok {
		return apperrors.NotFound("customer %d not found", id)
	}
	customer.Active = active
	return nil
}

type fakeEmployeeStore struct {
	mu        sync.Mutex
	nextID    int64
	employees map[int64]*models.Employee
}

func newFakeEmployeeStore() *fakeEmployeeStore {
	return &fakeEmployeeStore{employees: make(map[int64]*models.Employee)}
}

func (s *fakeEmployeeStore) Create(employee *models.Employee) (*models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	employee.ID = s.nextID
	copied := *employee
	s.employees[employee.ID] = &copied
	return employee, nil
}

func (s *fakeEmployeeStore) FindByID(id int64) (*models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	employee, ok := s.employees[id]
	if !ok {
		return nil, apperrors.NotFound("employee %d not found", id)
	}
	copied := *employee
	return &copied, nil
}

func (s *fakeEmployeeStore) FindAll() ([]*models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*models.Employee, 0, len(s.employees))
	for _, employee := range s.employees {
		copied := *employee
		result = append(result, &copied)
	}
	return result, nil
}

func (s *fakeEmployeeStore) Update(employee *models.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[employee.ID]; !ok {
		return apperrors.NotFound("employee %d not found", employee.ID)
	}
	copied := *employee
	s.employees[employee.ID] = &copied
	return nil
}

func (s *fakeEmployeeStore) SetActive(id int64, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	employee, ok := s.employees[id]
	if !ok {
		return apperrors.NotFound("employee %d not found", id)
	}
	employee.Active = active
	return nil
}

type fakeRentalStore struct {
	mu      sync.Mutex
	nextID  int64
	rentals map[int64]*models.Rental
}

func newFakeRentalStore() *fakeRentalStore {
	return &fakeRentalStore{rentals: make(map[int64]*models.Rental)}
}

func (s *fakeRentalStore) Create(rental *models.Rental) (*models.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rental.Status == models.RentalStatusOpen {
		for _, existing := range s.rentals {
			if existing.VehicleID == rental.VehicleID && existing.Status == models.RentalStatusOpen {
				return nil, apperrors.Persistence(nil, "vehicle %d already has an open rental", rental.VehicleID)
			}
		}
	}
	s.nextID++
	rental.ID = s.nextID
	copied := *rental
	s.rentals[rental.ID] = &copied
	return rental, nil
}

func (s *fakeRentalStore) FindByID(id int64) (*models.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rental, ok := s.rentals[id]
	if !ok {
		return nil, apperrors.NotFound("rental %d not found", id)
	}
	copied := *rental
	return &copied, nil
}

func (s *fakeRentalStore) FindOpenByVehicle(vehicleID int64) ([]*models.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*models.Rental
	for _, rental := range s.rentals {
		if rental.VehicleID == vehicleID && rental.Status == models.RentalStatusOpen {
			copied := *rental
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *fakeRentalStore) FindByVehicle(vehicleID int64) ([]*models.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*models.Rental
	for _, rental := range s.rentals {
		if rental.VehicleID == vehicleID {
			copied := *rental
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *fakeRentalStore) FindByCustomer(customerID int64) ([]*models.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*models.Rental
	for _, rental := range s.rentals {
		if rental.CustomerID == customerID {
			copied := *rental
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *fakeRentalStore) FindStartedBetween(from, to dates.Date) ([]*models.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*models.Rental
	for _, rental := range s.rentals {
		if dates.Covers(from, to, rental.StartDate) {
			copied := *rental
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *fakeRentalStore) FindAll() ([]*models.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*models.Rental, 0, len(s.rentals))
	for _, rental := range s.rentals {
		copied := *rental
		result = append(result, &copied)
	}
	return result, nil
}

func (s *fakeRentalStore) Update(rental *models.Rental) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rentals[rental.ID]; !ok {
		return apperrors.NotFound("rental %d not found", rental.ID)
	}
	copied := *rental
	s.rentals[rental.ID] = &copied
	return nil
}

type fakeMaintenanceStore struct {
	mu      sync.Mutex
	nextID  int64
	windows map[int64]*models.MaintenanceWindow
}

func newFakeMaintenanceStore() *fakeMaintenanceStore {
	return &fakeMaintenanceStore{windows: make(map[int64]*models.MaintenanceWindow)}
}

func (s *fakeMaintenanceStore) Create(window *models.MaintenanceWindow) (*models.MaintenanceWindow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	window.ID = s.nextID
	copied := *window
	s.windows[window.ID] = &copied
	return window, nil
}

func (s *fakeMaintenanceStore) FindByID(id int64) (*models.MaintenanceWindow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	window, ok := s.windows[id]
	if !ok {
		return nil, apperrors.NotFound("maintenance window %d not found", id)
	}
	copied := *window
	return &copied, nil
}

func (s *fakeMaintenanceStore) FindByVehicle(vehicleID int64) ([]*models.MaintenanceWindow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*models.MaintenanceWindow
	for _, window := range s.windows {
		if window.VehicleID == vehicleID {
			copied := *window
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *fakeMaintenanceStore) FindAll() ([]*models.MaintenanceWindow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*models.MaintenanceWindow, 0, len(s.windows))
	for _, window := range s.windows {
		copied := *window
		result = append(result, &copied)
	}
	return result, nil
}

func (s *fakeMaintenanceStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.windows[id]; !ok {
		return apperrors.NotFound("maintenance window %d not found", id)
	}
	delete(s.windows, id)
	return nil
}

type fakeIncidentStore struct {
	mu        sync.Mutex
	nextID    int64
	incidents map[int64]*models.Incident
}

func newFakeIncidentStore() *fakeIncidentStore {
	return &fakeIncidentStore{incidents: make(map[int64]*models.Incident)}
}

func (s *fakeIncidentStore) Create(incident *models.Incident) (*models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	incident.ID = s.nextID
	copied := *incident
	s.incidents[incident.ID] = &copied
	return incident, nil
}

func (s *fakeIncidentStore) FindByID(id int64) (*models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	incident, ok := s.incidents[id]
	if !ok {
		return nil, apperrors.NotFound("incident %d not found", id)
	}
	copied := *incident
	return &copied, nil
}

func (s *fakeIncidentStore) FindByRental(rentalID int64) ([]*models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*models.Incident
	for _, incident := range s.incidents {
		if incident.RentalID == rentalID {
			copied := *incident
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *fakeIncidentStore) FindAll() ([]*models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*models.Incident, 0, len(s.incidents))
	for _, incident := range s.incidents {
		copied := *incident
		result = append(result, &copied)
	}
	return result, nil
}

func (s *fakeIncidentStore) Update(incident *models.Incident) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.incidents[incident.ID]; !ok {
		return apperrors.NotFound("incident %d not found", incident.ID)
	}
	copied := *incident
	s.incidents[incident.ID] = &copied
	return nil
}

func (s *fakeIncidentStore) SumPendingByRental(rentalID int64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, incident := range s.incidents {
		if incident.RentalID == rentalID && incident.Status == models.IncidentStatusPending {
			total += incident.Amount
		}
	}
	return total, nil
}
