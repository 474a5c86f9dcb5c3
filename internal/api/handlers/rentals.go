package handlers

import (
	"net/http"

	"rental-backend/internal/services"
	"rental-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type RentalHandler struct {
	rentalService *services.RentalService
	validator     *validator.Validate
}

func NewRentalHandler(rentalService *services.RentalService) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
		validator:     validator.New(),
	}
}

// GetRentals retrieves all rentals
func (h *RentalHandler) GetRentals(c *gin.Context) {
	rentals, err := h.rentalService.ListRentals()
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Rentals retrieved successfully", rentals)
}

// GetRental retrieves a specific rental by ID
func (h *RentalHandler) GetRental(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	rental, err := h.rentalService.GetRental(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Rental retrieved successfully", rental)
}

// OpenRental creates a new rental contract in OPEN state
func (h *RentalHandler) OpenRental(c *gin.Context) {
	var req services.OpenRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	rental, err := h.rentalService.OpenRental(&req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Rental opened successfully", rental)
}

// CloseRental settles an open rental and returns the vehicle to the fleet
func (h *RentalHandler) CloseRental(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.CloseRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	rental, err := h.rentalService.CloseRental(id, &req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Rental closed successfully", rental)
}
