package handlers

import (
	"net/http"

	"rental-backend/internal/services"
	"rental-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type IncidentHandler struct {
	incidentService *services.IncidentService
	validator       *validator.Validate
}

func NewIncidentHandler(incidentService *services.IncidentService) *IncidentHandler {
	return &IncidentHandler{
		incidentService: incidentService,
		validator:       validator.New(),
	}
}

// GetIncidents retrieves all incidents
func (h *IncidentHandler) GetIncidents(c *gin.Context) {
	incidents, err := h.incidentService.ListIncidents()
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Incidents retrieved successfully", incidents)
}

// GetIncident retrieves a specific incident by ID
func (h *IncidentHandler) GetIncident(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	incident, err := h.incidentService.GetIncident(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Incident retrieved successfully", incident)
}

// GetRentalIncidents retrieves the incidents recorded against a rental
func (h *IncidentHandler) GetRentalIncidents(c *gin.Context) {
	rentalID, ok := idParam(c, "id")
	if !ok {
		return
	}

	incidents, err := h.incidentService.ListIncidentsByRental(rentalID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Incidents retrieved successfully", incidents)
}

// GetRentalPendingAmount returns the unpaid incident total of a rental
func (h *IncidentHandler) GetRentalPendingAmount(c *gin.Context) {
	rentalID, ok := idParam(c, "id")
	if !ok {
		return
	}

	amount, err := h.incidentService.PendingAmountForRental(rentalID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pending amount retrieved successfully", gin.H{
		"rentalId":      rentalID,
		"pendingAmount": amount,
	})
}

// CreateIncident records a billable event against a rental
func (h *IncidentHandler) CreateIncident(c *gin.Context) {
	var req services.CreateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	incident, err := h.incidentService.CreateIncident(&req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Incident created successfully", incident)
}

// MarkIncidentPaid settles a pending incident
func (h *IncidentHandler) MarkIncidentPaid(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	incident, err := h.incidentService.MarkIncidentPaid(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Incident marked as paid", incident)
}
