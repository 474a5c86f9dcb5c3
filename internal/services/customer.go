package services

import (
	"time"

	"rental-backend/internal/apperrors"
	"rental-backend/internal/models"
)

type CustomerService struct {
	customerStore CustomerStore
}

func NewCustomerService(customerStore CustomerStore) *CustomerService {
	return &CustomerService{customerStore: customerStore}
}

type CreateCustomerRequest struct {
	FirstName  string `json:"firstName" validate:"required,min=1,max=100"`
	LastName   string `json:"lastName" validate:"required,min=1,max=100"`
	DocumentID string `json:"documentId" validate:"required,min=1,max=30"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string `json:"phone,omitempty"`
}

type UpdateCustomerRequest struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
}

func (s *CustomerService) CreateCustomer(req *CreateCustomerRequest) (*models.Customer, error) {
	now := time.Now()
	customer := &models.Customer{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		DocumentID: req.DocumentID,
		Email:      req.Email,
		Phone:      req.Phone,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s.customerStore.Create(customer)
}

func (s *CustomerService) GetCustomer(id int64) (*models.Customer, error) {
	if id <= 0 {
		return nil, apperrors.Validation("customer id must be positive")
	}
	return s.customerStore.FindByID(id)
}

func (s *CustomerService) ListCustomers() ([]*models.Customer, error) {
	return s.customerStore.FindAll()
}

func (s *CustomerService) UpdateCustomer(id int64, req *UpdateCustomerRequest) (*models.Customer, error) {
	if id <= 0 {
		return nil, apperrors.Validation("customer id must be positive")
	}

	customer, err := s.customerStore.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		customer.FirstName = req.FirstName
	}
	if req.LastName != "" {
		customer.LastName = req.LastName
	}
	if req.Email != "" {
		customer.Email = req.Email
	}
	if req.Phone != "" {
		customer.Phone = req.Phone
	}

	if err := s.customerStore.Update(customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func (s *CustomerService) SetCustomerActive(id int64, active bool) error {
	if id <= 0 {
		return apperrors.Validation("customer id must be positive")
	}
	return s.customerStore.SetActive(id, active)
}
