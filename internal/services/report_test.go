package services

import (
	"testing"

	"rental-backend/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService(t *testing.T) {
	f := newRentalFixture(t)
	reports := NewReportService(f.rentals, f.customers, f.vehicles)

	customer := f.addCustomer(t)
	employee := f.addEmployee(t)
	vehicleA := f.addVehicle(t, 100)
	vehicleB := f.addVehicle(t, 200)

	first, err := f.service.OpenRental(f.openRequest(customer, vehicleA, employee, "2026-09-01", "2026-09-03"))
	require.NoError(t, err)
	_, err = f.service.OpenRental(f.openRequest(customer, vehicleB, employee, "2026-10-01", "2026-10-05"))
	require.NoError(t, err)

	_, err = f.service.CloseRental(first.ID, &CloseRentalRequest{
		ReturnDate:  "2026-09-03",
		OdometerEnd: 50300,
		FuelEnd:     60,
	})
	require.NoError(t, err)

	t.Run("rentals by customer", func(t *testing.T) {
		rentals, err := reports.RentalsByCustomer(customer.ID)
		require.NoError(t, err)
		assert.Len(t, rentals, 2)
	})

	t.Run("rentals by vehicle", func(t *testing.T) {
		rentals, err := reports.RentalsByVehicle(vehicleA.ID)
		require.NoError(t, err)
		assert.Len(t, rentals, 1)
	})

	t.Run("rentals in range selects by start date", func(t *testing.T) {
		rentals, err := reports.RentalsInRange("2026-09-01", "2026-09-30")
		require.NoError(t, err)
		assert.Len(t, rentals, 1)
	})

	t.Run("billed total counts closed rentals only", func(t *testing.T) {
		report, err := reports.TotalBilledInRange("2026-09-01", "2026-10-31")
		require.NoError(t, err)
		assert.Equal(t, 1, report.Rentals)
		assert.Equal(t, 200.0, report.Total)
	})

	t.Run("inverted range is a validation error", func(t *testing.T) {
		_, err := reports.RentalsInRange("2026-10-01", "2026-09-01")
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("unknown customer is not found", func(t *testing.T) {
		_, err := reports.RentalsByCustomer(999)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}
