package handlers

import (
	"net/http"

	"rental-backend/internal/services"
	"rental-backend/pkg/dates"
	"rental-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type FleetStateHandler struct {
	fleetStateService *services.FleetStateService
}

func NewFleetStateHandler(fleetStateService *services.FleetStateService) *FleetStateHandler {
	return &FleetStateHandler{fleetStateService: fleetStateService}
}

// GetVehicleStatus returns the derived status of a vehicle on ?date
// (today when omitted)
func (h *FleetStateHandler) GetVehicleStatus(c *gin.Context) {
	vehicleID, ok := idParam(c, "id")
	if !ok {
		return
	}

	referenceDate, ok := h.referenceDate(c)
	if !ok {
		return
	}

	status, err := h.fleetStateService.EffectiveStatus(vehicleID, referenceDate)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle status retrieved successfully", gin.H{
		"vehicleId": vehicleID,
		"date":      referenceDate.String(),
		"status":    status,
	})
}

// GetFleetSnapshot counts the fleet by derived status on ?date
// (today when omitted)
func (h *FleetStateHandler) GetFleetSnapshot(c *gin.Context) {
	referenceDate, ok := h.referenceDate(c)
	if !ok {
		return
	}

	snapshot, err := h.fleetStateService.Snapshot(referenceDate)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Fleet snapshot retrieved successfully", snapshot)
}

func (h *FleetStateHandler) referenceDate(c *gin.Context) (dates.Date, bool) {
	raw := c.Query("date")
	if raw == "" {
		return dates.Today(), true
	}

	parsed, err := dates.Parse(raw)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid date parameter", err)
		return dates.Date{}, false
	}
	return parsed, true
}
