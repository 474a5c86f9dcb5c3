package services

import (
	"time"

	"rental-backend/internal/apperrors"
	"rental-backend/internal/models"
)

type EmployeeService struct {
	employeeStore EmployeeStore
}

func NewEmployeeService(employeeStore EmployeeStore) *EmployeeService {
	return &EmployeeService{employeeStore: employeeStore}
}

type CreateEmployeeRequest struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string `json:"lastName" validate:"required,min=1,max=100"`
	Role      string `json:"role,omitempty"`
}

type UpdateEmployeeRequest struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      string `json:"role,omitempty"`
}

func (s *EmployeeService) CreateEmployee(req *CreateEmployeeRequest) (*models.Employee, error) {
	now := time.Now()
	employee := &models.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.employeeStore.Create(employee)
}

func (s *EmployeeService) GetEmployee(id int64) (*models.Employee, error) {
	if id <= 0 {
		return nil, apperrors.Validation("employee id must be positive")
	}
	return s.employeeStore.FindByID(id)
}

func (s *EmployeeService) ListEmployees() ([]*models.Employee, error) {
	return s.employeeStore.FindAll()
}

func (s *EmployeeService) UpdateEmployee(id int64, req *UpdateEmployeeRequest) (*models.Employee, error) {
	if id <= 0 {
		return nil, apperrors.Validation("employee id must be positive")
	}

	employee, err := s.employeeStore.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		employee.FirstName = req.FirstName
	}
	if req.LastName != "" {
		employee.LastName = req.LastName
	}
	if req.Role != "" {
		employee.Role = req.Role
	}

	if err := s.employeeStore.Update(employee); err != nil {
		return nil, err
	}

	return employee, nil
}

func (s *EmployeeService) SetEmployeeActive(id int64, active bool) error {
	if id <= 0 {
		return apperrors.Validation("employee id must be positive")
	}
	return s.employeeStore.SetActive(id, active)
}
