package services

import (
	"testing"

	"rental-backend/internal/apperrors"
	"rental-backend/internal/models"
	"rental-backend/pkg/dates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveStatus(t *testing.T) {
	f := newRentalFixture(t)
	fleet := NewFleetStateService(f.vehicles, f.rentals, f.maintenance)

	vehicle := f.addVehicle(t, 100)
	customer := f.addCustomer(t)
	employee := f.addEmployee(t)

	_, err := f.service.OpenRental(f.openRequest(customer, vehicle, employee, "2026-09-01", "2026-09-05"))
	require.NoError(t, err)

	_, err = f.maintSvc.ScheduleMaintenance(&ScheduleMaintenanceRequest{
		VehicleID:   vehicle.ID,
		StartDate:   "2026-09-10",
		EndDate:     "2026-09-12",
		Description: "annual inspection",
	})
	require.NoError(t, err)

	day := func(d int) dates.Date { return dates.New(2026, 9, d) }

	t.Run("rented inside the rental window", func(t *testing.T) {
		status, err := fleet.EffectiveStatus(vehicle.ID, day(3))
		require.NoError(t, err)
		assert.Equal(t, models.VehicleStatusRented, status)
	})

	t.Run("available between windows", func(t *testing.T) {
		status, err := fleet.EffectiveStatus(vehicle.ID, day(7))
		require.NoError(t, err)
		assert.Equal(t, models.VehicleStatusAvailable, status)
	})

	t.Run("maintenance inside the service window", func(t *testing.T) {
		status, err := fleet.EffectiveStatus(vehicle.ID, day(11))
		require.NoError(t, err)
		assert.Equal(t, models.VehicleStatusMaintenance, status)
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		status, err := fleet.EffectiveStatus(vehicle.ID, day(5))
		require.NoError(t, err)
		assert.Equal(t, models.VehicleStatusRented, status)

		status, err = fleet.EffectiveStatus(vehicle.ID, day(10))
		require.NoError(t, err)
		assert.Equal(t, models.VehicleStatusMaintenance, status)
	})

	t.Run("unknown vehicle is not found", func(t *testing.T) {
		_, err := fleet.EffectiveStatus(404, day(1))
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestFleetSnapshot(t *testing.T) {
	f := newRentalFixture(t)
	fleet := NewFleetStateService(f.vehicles, f.rentals, f.maintenance)

	customer := f.addCustomer(t)
	employee := f.addEmployee(t)

	rented := f.addVehicle(t, 100)
	serviced := f.addVehicle(t, 90)
	f.addVehicle(t, 80)
	retired := f.addVehicle(t, 70)
	require.NoError(t, f.vehicles.SetActive(retired.ID, false))

	_, err := f.service.OpenRental(f.openRequest(customer, rented, employee, "2026-09-01", "2026-09-05"))
	require.NoError(t, err)

	_, err = f.maintSvc.ScheduleMaintenance(&ScheduleMaintenanceRequest{
		VehicleID:   serviced.ID,
		StartDate:   "2026-09-02",
		EndDate:     "2026-09-04",
		Description: "annual inspection",
	})
	require.NoError(t, err)

	snapshot, err := fleet.Snapshot(dates.New(2026, 9, 3))
	require.NoError(t, err)

	assert.Equal(t, 1, snapshot.Rented)
	assert.Equal(t, 1, snapshot.Maintenance)
	assert.Equal(t, 1, snapshot.Available)
	assert.Equal(t, 1, snapshot.Inactive)
}
