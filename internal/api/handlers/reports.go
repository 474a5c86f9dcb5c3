package handlers

import (
	"net/http"

	"rental-backend/internal/services"
	"rental-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetCustomerRentals retrieves the rental history of a customer
func (h *ReportHandler) GetCustomerRentals(c *gin.Context) {
	customerID, ok := idParam(c, "id")
	if !ok {
		return
	}

	rentals, err := h.reportService.RentalsByCustomer(customerID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Customer rentals retrieved successfully", rentals)
}

// GetVehicleRentals retrieves the rental history of a vehicle
func (h *ReportHandler) GetVehicleRentals(c *gin.Context) {
	vehicleID, ok := idParam(c, "id")
	if !ok {
		return
	}

	rentals, err := h.reportService.RentalsByVehicle(vehicleID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle rentals retrieved successfully", rentals)
}

// GetRentalsInRange retrieves the rentals started between ?from and ?to
func (h *ReportHandler) GetRentalsInRange(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")

	rentals, err := h.reportService.RentalsInRange(from, to)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Rentals retrieved successfully", rentals)
}

// GetBilledTotal sums the closed rental totals started between ?from and ?to
func (h *ReportHandler) GetBilledTotal(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")

	report, err := h.reportService.TotalBilledInRange(from, to)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Billing report generated successfully", report)
}
