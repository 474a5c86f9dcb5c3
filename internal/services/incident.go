package services

import (
	"strings"
	"time"

	"rental-backend/internal/apperrors"
	"rental-backend/internal/models"
)

// IncidentService tracks billable events (fines, damage) against rentals.
// Incidents never influence conflict detection; they only feed billing and
// reports.
type IncidentService struct {
	incidentStore IncidentStore
	rentalStore   RentalStore
}

func NewIncidentService(incidentStore IncidentStore, rentalStore RentalStore) *IncidentService {
	return &IncidentService{
		incidentStore: incidentStore,
		rentalStore:   rentalStore,
	}
}

type CreateIncidentRequest struct {
	RentalID    int64   `json:"rentalId" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"min=0"`
}

func (s *IncidentService) CreateIncident(req *CreateIncidentRequest) (*models.Incident, error) {
	if req.RentalID <= 0 {
		return nil, apperrors.Validation("rental id must be positive")
	}

	incidentType := models.IncidentType(strings.ToUpper(strings.TrimSpace(req.Type)))
	if !models.ValidIncidentType(incidentType) {
		return nil, apperrors.Validation("incident type must be one of FINE, DAMAGE, OTHER")
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, apperrors.Validation("description cannot be empty")
	}

	if req.Amount < 0 {
		return nil, apperrors.Validation("amount cannot be negative")
	}

	if _, err := s.rentalStore.FindByID(req.RentalID); err != nil {
		return nil, err
	}

	now := time.Now()
	incident := &models.Incident{
		RentalID:    req.RentalID,
		Type:        incidentType,
		Description: description,
		Amount:      req.Amount,
		Status:      models.IncidentStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.incidentStore.Create(incident)
}

func (s *IncidentService) GetIncident(id int64) (*models.Incident, error) {
	if id <= 0 {
		return nil, apperrors.Validation("incident id must be positive")
	}
	return s.incidentStore.FindByID(id)
}

func (s *IncidentService) ListIncidents() ([]*models.Incident, error) {
	return s.incidentStore.FindAll()
}

func (s *IncidentService) ListIncidentsByRental(rentalID int64) ([]*models.Incident, error) {
	if rentalID <= 0 {
		return nil, apperrors.Validation("rental id must be positive")
	}
	return s.incidentStore.FindByRental(rentalID)
}

// MarkIncidentPaid settles a pending incident. PAID is terminal.
func (s *IncidentService) MarkIncidentPaid(id int64) (*models.Incident, error) {
	if id <= 0 {
		return nil, apperrors.Validation("incident id must be positive")
	}

	incident, err := s.incidentStore.FindByID(id)
	if err != nil {
		return nil, err
	}

	if incident.Status == models.IncidentStatusPaid {
		return nil, apperrors.State("incident %d is already paid", incident.ID)
	}

	incident.Status = models.IncidentStatusPaid
	if err := s.incidentStore.Update(incident); err != nil {
		return nil, err
	}

	return incident, nil
}

// PendingAmountForRental totals the unpaid incidents of a rental, used as a
// billing input by reports.
func (s *IncidentService) PendingAmountForRental(rentalID int64) (float64, error) {
	if rentalID <= 0 {
		return 0, apperrors.Validation("rental id must be positive")
	}
	if _, err := s.rentalStore.FindByID(rentalID); err != nil {
		return 0, err
	}
	return s.incidentStore.SumPendingByRental(rentalID)
}
