package services

import (
	"testing"

	"rental-backend/internal/apperrors"
	"rental-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleMaintenance(t *testing.T) {
	t.Run("books a window on a free vehicle", func(t *testing.T) {
		f := newRentalFixture(t)
		vehicle := f.addVehicle(t, 100)

		window, err := f.maintSvc.ScheduleMaintenance(&ScheduleMaintenanceRequest{
			VehicleID:   vehicle.ID,
			StartDate:   "2026-09-10",
			EndDate:     "2026-09-12",
			Description: "annual inspection",
		})
		require.NoError(t, err)

		assert.Equal(t, vehicle.ID, window.VehicleID)
		assert.Equal(t, "2026-09-10", window.StartDate.String())
		assert.Equal(t, "annual inspection", window.Description)

		// Scheduling does not touch the cached vehicle status.
		fresh, err := f.vehicles.FindByID(vehicle.ID)
		require.NoError(t, err)
		assert.Equal(t, models.VehicleStatusAvailable, fresh.Status)
	})

	t.Run("rejects an empty description", func(t *testing.T) {
		f := newRentalFixture(t)
		vehicle := f.addVehicle(t, 100)

		_, err := f.maintSvc.ScheduleMaintenance(&ScheduleMaintenanceRequest{
			VehicleID:   vehicle.ID,
			StartDate:   "2026-09-10",
			EndDate:     "2026-09-12",
			Description: "   ",
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("rejects inverted dates", func(t *testing.T) {
		f := newRentalFixture(t)
		vehicle := f.addVehicle(t, 100)

		_, err := f.maintSvc.ScheduleMaintenance(&ScheduleMaintenanceRequest{
			VehicleID:   vehicle.ID,
			StartDate:   "2026-09-12",
			EndDate:     "2026-09-10",
			Description: "annual inspection",
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("rejects an inactive vehicle", func(t *testing.T) {
		f := newRentalFixture(t)
		vehicle := f.addVehicle(t, 100)
		require.NoError(t, f.vehicles.SetActive(vehicle.ID, false))

		_, err := f.maintSvc.ScheduleMaintenance(&ScheduleMaintenanceRequest{
			VehicleID:   vehicle.ID,
			StartDate:   "2026-09-10",
			EndDate:     "2026-09-12",
			Description: "annual inspection",
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindInactive))
	})

	t.Run("rejects overlapping maintenance windows", func(t *testing.T) {
		f := newRentalFixture(t)
		vehicle := f.addVehicle(t, 100)

		_, err := f.maintSvc.ScheduleMaintenance(&ScheduleMaintenanceRequest{
			VehicleID:   vehicle.ID,
			StartDate:   "2026-09-10",
			EndDate:     "2026-09-12",
			Description: "annual inspection",
		})
		require.NoError(t, err)

		_, err = f.maintSvc.ScheduleMaintenance(&ScheduleMaintenanceRequest{
			VehicleID:   vehicle.ID,
			StartDate:   "2026-09-12",
			EndDate:     "2026-09-14",
			Description: "tyre swap",
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	})

	t.Run("unknown vehicle is not found", func(t *testing.T) {
		f := newRentalFixture(t)

		_, err := f.maintSvc.ScheduleMaintenance(&ScheduleMaintenanceRequest{
			VehicleID:   7,
			StartDate:   "2026-09-10",
			EndDate:     "2026-09-12",
			Description: "annual inspection",
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestDeleteMaintenance(t *testing.T) {
	t.Run("removes the window and frees the dates", func(t *testing.T) {
		f := newRentalFixture(t)
		vehicle := f.addVehicle(t, 100)

		window, err := f.maintSvc.ScheduleMaintenance(&ScheduleMaintenanceRequest{
			VehicleID:   vehicle.ID,
			StartDate:   "2026-09-10",
			EndDate:     "2026-09-12",
			Description: "annual inspection",
		})
		require.NoError(t, err)

		require.NoError(t, f.maintSvc.DeleteMaintenance(window.ID))

		// The window no longer blocks the dates.
		_, err = f.maintSvc.ScheduleMaintenance(&ScheduleMaintenanceRequest{
			VehicleID:   vehicle.ID,
			StartDate:   "2026-09-11",
			EndDate:     "2026-09-11",
			Description: "quick check",
		})
		assert.NoError(t, err)
	})

	t.Run("deleting a missing window is not found", func(t *testing.T) {
		f := newRentalFixture(t)
		err := f.maintSvc.DeleteMaintenance(99)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}
