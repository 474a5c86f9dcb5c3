package handlers

import (
	"net/http"

	"rental-backend/internal/services"
	"rental-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
	validator          *validator.Validate
}

func NewMaintenanceHandler(maintenanceService *services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
		validator:          validator.New(),
	}
}

// GetMaintenanceWindows retrieves all maintenance windows
func (h *MaintenanceHandler) GetMaintenanceWindows(c *gin.Context) {
	windows, err := h.maintenanceService.ListMaintenance()
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance windows retrieved successfully", windows)
}

// GetMaintenanceWindow retrieves a specific maintenance window by ID
func (h *MaintenanceHandler) GetMaintenanceWindow(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	window, err := h.maintenanceService.GetMaintenance(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance window retrieved successfully", window)
}

// GetVehicleMaintenance retrieves the maintenance windows of a vehicle
func (h *MaintenanceHandler) GetVehicleMaintenance(c *gin.Context) {
	vehicleID, ok := idParam(c, "id")
	if !ok {
		return
	}

	windows, err := h.maintenanceService.ListMaintenanceByVehicle(vehicleID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance windows retrieved successfully", windows)
}

// ScheduleMaintenance books a service window on a vehicle
func (h *MaintenanceHandler) ScheduleMaintenance(c *gin.Context) {
	var req services.ScheduleMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	window, err := h.maintenanceService.ScheduleMaintenance(&req)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Maintenance scheduled successfully", window)
}

// CancelMaintenance removes a scheduled maintenance window
func (h *MaintenanceHandler) CancelMaintenance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.maintenanceService.DeleteMaintenance(id); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance window cancelled successfully", nil)
}
