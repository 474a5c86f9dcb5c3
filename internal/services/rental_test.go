package services

import (
	"testing"
	"time"

	"rental-backend/internal/apperrors"
	"rental-backend/internal/models"
	"rental-backend/pkg/vehiclelock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rentalFixture struct {
	vehicles    *fakeVehicleStore
	customers   *fakeCustomerStore
	employees   *fakeEmployeeStore
	rentals     *fakeRentalStore
	maintenance *fakeMaintenanceStore
	service     *RentalService
	maintSvc    *MaintenanceService
}

func newRentalFixture(t *testing.T) *rentalFixture {
	t.Helper()

	vehicles := newFakeVehicleStore()
	customers := newFakeCustomerStore()
	employees := newFakeEmployeeStore()
	rentals := newFakeRentalStore()
	maintenance := newFakeMaintenanceStore()

	locks := vehiclelock.NewTable()
	conflicts := NewConflictDetector(rentals, maintenance)

	return &rentalFixture{
		vehicles:    vehicles,
		customers:   customers,
		employees:   employees,
		rentals:     rentals,
		maintenance: maintenance,
		service:     NewRentalService(rentals, vehicles, customers, employees, conflicts, locks),
		maintSvc:    NewMaintenanceService(maintenance, vehicles, conflicts, locks),
	}
}

func (f *rentalFixture) addVehicle(t *testing.T, rate float64) *models.Vehicle {
	t.Helper()
	vehicle, err := f.vehicles.Create(&models.Vehicle{
		PlateNumber: "AB123CD",
		Make:        "Toyota",
		Model:       "Corolla",
		Year:        2021,
		DailyRate:   rate,
		Active:      true,
		Status:      models.VehicleStatusAvailable,
		Odometer:    50000,
		FuelLevel:   80,
		CreatedAt:   time.Now(),
	})
	require.NoError(t, err)
	return vehicle
}

func (f *rentalFixture) addCustomer(t *testing.T) *models.Customer {
	t.Helper()
	customer, err := f.customers.Create(&models.Customer{
		FirstName:  "Ana",
		LastName:   "Gomez",
		DocumentID: "30111222",
		Active:     true,
	})
	require.NoError(t, err)
	return customer
}

func (f *rentalFixture) addEmployee(t *testing.T) *models.Employee {
	t.Helper()
	employee, err := f.employees.Create(&models.Employee{
		FirstName: "Luis",
		LastName:  "Perez",
		Role:      "operator",
		Active:    true,
	})
	require.NoError(t, err)
	return employee
}

func (f *rentalFixture) openRequest(customer *models.Customer, vehicle *models.Vehicle, employee *models.Employee, start, end string) *OpenRentalRequest {
	return &OpenRentalRequest{
		CustomerID: customer.ID,
		VehicleID:  vehicle.ID,
		EmployeeID: employee.ID,
		StartDate:  start,
		EndDate:    end,
	}
}

func TestOpenRental(t *testing.T) {
	t.Run("creates an open rental and marks the vehicle rented", func(t *testing.T) {
		f := newRentalFixture(t)
		vehicle := f.addVehicle(t, 100)
		customer := f.addCustomer(t)
		employee := f.addEmployee(t)

		rental, err := f.service.OpenRental(f.openRequest(customer, vehicle, employee, "2026-09-01", "2026-09-05"))
		require.NoError(t, err)

		assert.Equal(t, models.RentalStatusOpen, rental.Status)
		assert.Equal(t, 400.0, rental.Total)
		assert.Equal(t, 100.0, rental.DailyRate)
		assert.Equal(t, 50000.0, rental.OdometerStart)
		assert.Equal(t, 80.0, rental.FuelStart)
		assert.Nil(t, rental.ReturnDate)

		updated, err := f.vehicles.FindByID(vehicle.ID)
		require.NoError(t, err)
		assert.Equal(t, models.VehicleStatusRented, updated.Status)
	})

	t.Run("same-day rental bills one full day", func(t *testing.T) {
		f := newRentalFixture(t)
		vehicle := f.addVehicle(t, 75)
		customer := f.addCustomer(t)
		employee := f.addEmployee(t)

		rental, err := f.service.OpenRental(f.openRequest(customer, vehicle, employee, "2026-09-01", "2026-09-01"))
		require.NoError(t, err)
		assert.Equal(t, 75.0, rental.Total)
	})

	t.Run("rejects non-positive ids before touching any store", func(t *testing.T) {
		f := newRentalFixture(t)

		_, err := f.service.OpenRental(&OpenRentalRequest{
			CustomerID: -1,
			VehicleID:  1,
			EmployeeID: 1,
			StartDate:  "2026-09-01",
			EndDate:    "2026-09-02",
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

		all, err := f.rentals.FindAll()
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("rejects malformed and inverted dates", func(t *testing.T) {
		f := newRentalFixture(t)
		vehicle := f.addVehicle(t, 100)
		customer := f.addCustomer(t)
		employee := f.addEmployee(t)

		_, err := f.service.OpenRental(f.openRequest(customer, vehicle, employee, "01/09/2026", "2026-09-05"))
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

		_, err = f.service.OpenRental(f.openRequest(customer, vehicle, employee, "2026-09-05", "2026-09-01"))
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("returns not found for a missing customer", func(t *testing.T) {
		f := newRentalFixture(t)
		vehicle := f.addVehicle(t, 100)
		employee := f.addEmployee(t)

		_, err := f.service.OpenRental(&OpenRentalRequest{
			CustomerID: 999,
			VehicleID:  vehicle.ID,
			EmployeeID: employee.ID,
			StartDate:  "2026-09-01",
			EndDate:    "2026-09-05",
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})

	t.Run("rejects an inactive customer", func(t *testing.T) {
		f := newRentalFixture(t)
		vehicle := f.addVehicle(t, 100)
		customer := f.addCustomer(t)
		employee := f.addEmployee(t)
		require.NoError(t, f.customers.SetActive(customer.ID, false))

		_, err := f.service.OpenRental(f.openRequest(customer, vehicle, employee, "2026-09-01", "2026-09-05"))
		assert.True(t, apperrors.IsKind(err, apperrors.KindInactive))
	})

	t.Run("rejects an inactive vehicle", func(t *testing.T) {
		f := newRentalFixture(t)
		vehicle := f.addVehicle(t, 100)
		customer := f.addCustomer(t)
		employee := f.addEmployee(t)
		require.NoError(t, f.vehicles.SetActive(vehicle.ID, false))

		_, err := f.service.OpenRental(f.openRequest(customer, vehicle, employee, "2026-09-01", "2026-09-05"))
		assert.True(t, apperrors.IsKind(err, apperrors.KindInactive))
	})

	t.Run("rejects an inactive employee", func(t *testing.T) {
		f := newRentalFixture(t)
		vehicle := f.addVehicle(t, 100)
		customer := f.addCustomer(t)
		employee := f.addEmployee(t)
		require.NoError(t, f.employees.SetActive(employee.ID, false))

		_, err := f.service.OpenRental(f.openRequest(customer, vehicle, employee, "2026-09-01", "2026-09-05"))
		assert.True(t, apperrors.IsKind(err, apperrors.KindInactive))
	})

	t.Run("a shared boundary day counts as overlap", func(t *testing.T) {
		f := newRentalFixture(t)
		vehicle := f.addVehicle(t, 100)
		customer := f.addCustomer(t)
		employee := f.addEmployee(t)

		_, err := f.service.OpenRental(f.openRequest(customer, vehicle, employee, "2026-09-01", "2026-09-05"))
		require.NoError(t, err)

		// Maintenance scheduling goes through the same detector without
		// the status short-circuit, so it exposes the boundary rule.
		_, err = f.maintSvc.ScheduleMaintenance(&ScheduleMaintenanceRequest{
			VehicleID:   vehicle.ID,
			StartDate:   "2026-09-05",
			EndDate:     "2026-09-07",
			Description: "oil change",
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	})

	t.Run("rejects a window overlapping a maintenance window", func(t *testing.T) {
		f := newRentalFixture(t)
		vehicle := f.addVehicle(t, 100)
		customer := f.addCustomer(t)
		employee := f.addEmployee(t)

		_, err := f.maintSvc.ScheduleMaintenance(&ScheduleMaintenanceRequest{
			VehicleID:   vehicle.ID,
			StartDate:   "2026-09-03",
			EndDate:     "2026-09-04",
			Description: "brake pads",
		})
		require.NoError(t, err)

		_, err = f.service.OpenRental(f.openRequest(customer, vehicle, employee, "2026-09-04", "2026-09-08"))
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	})

	t.Run("rejects a vehicle that is already rented", func(t *testing.T) {
		f := newRentalFixture(t)
		vehicle := f.addVehicle(t, 100)
		customer := f.addCustomer(t)
		employee := f.addEmployee(t)

		_, err := f.service.OpenRental(f.openRequest(customer, vehicle, employee, "2026-09-01", "2026-09-05"))
		require.NoError(t, err)

		_, err = f.service.OpenRental(f.openRequest(customer, vehicle, employee, "2026-10-01", "2026-10-05"))
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	})
}

func TestCloseRental(t *testing.T) {
	open := func(t *testing.T, f *rentalFixture, rate float64) *models.Rental {
		t.Helper()
		vehicle := f.addVehicle(t, rate)
		customer := f.addCustomer(t)
		employee := f.addEmployee(t)
		rental, err := f.service.OpenRental(f.openRequest(customer, vehicle, employee, "2026-09-01", "2026-09-05"))
		require.NoError(t, err)
		return rental
	}

	t.Run("settles the rental and frees the vehicle", func(t *testing.T) {
		f := newRentalFixture(t)
		rental := open(t, f, 100)

		closed, err := f.service.CloseRental(rental.ID, &CloseRentalRequest{
			ReturnDate:  "2026-09-05",
			OdometerEnd: 50800,
			FuelEnd:     40,
		})
		require.NoError(t, err)

		assert.Equal(t, models.RentalStatusClosed, closed.Status)
		assert.Equal(t, 400.0, closed.Total)
		require.NotNil(t, closed.ReturnDate)
		assert.Equal(t, "2026-09-05", closed.ReturnDate.String())
		require.NotNil(t, closed.OdometerEnd)
		assert.Equal(t, 50800.0, *closed.OdometerEnd)

		vehicle, err := f.vehicles.FindByID(rental.VehicleID)
		require.NoError(t, err)
		assert.Equal(t, models.VehicleStatusAvailable, vehicle.Status)
		assert.Equal(t, 50800.0, vehicle.Odometer)
		assert.Equal(t, 40.0, vehicle.FuelLevel)
	})

	t.Run("recomputes the total from the current vehicle rate", func(t *testing.T) {
		f := newRentalFixture(t)
		rental := open(t, f, 100)

		// Rate raised while the rental is out.
		vehicle, err := f.vehicles.FindByID(rental.VehicleID)
		require.NoError(t, err)
		vehicle.DailyRate = 150
		require.NoError(t, f.vehicles.Update(vehicle))

		closed, err := f.service.CloseRental(rental.ID, &CloseRentalRequest{
			ReturnDate:  "2026-09-07",
			OdometerEnd: 51000,
			FuelEnd:     30,
			ExtraAmount: 50,
		})
		require.NoError(t, err)

		// 6 real days at the new rate plus the extra charge; the open-time
		// snapshot stays for audit.
		assert.Equal(t, 950.0, closed.Total)
		assert.Equal(t, 100.0, closed.DailyRate)
	})

	t.Run("bills at least one day on a same-day return", func(t *testing.T) {
		f := newRentalFixture(t)
		rental := open(t, f, 100)

		closed, err := f.service.CloseRental(rental.ID, &CloseRentalRequest{
			ReturnDate:  "2026-09-01",
			OdometerEnd: 50100,
			FuelEnd:     70,
		})
		require.NoError(t, err)
		assert.Equal(t, 100.0, closed.Total)
	})

	t.Run("closing twice is a state error", func(t *testing.T) {
		f := newRentalFixture(t)
		rental := open(t, f, 100)

		_, err := f.service.CloseRental(rental.ID, &CloseRentalRequest{
			ReturnDate:  "2026-09-05",
			OdometerEnd: 50500,
			FuelEnd:     50,
		})
		require.NoError(t, err)

		_, err = f.service.CloseRental(rental.ID, &CloseRentalRequest{
			ReturnDate:  "2026-09-06",
			OdometerEnd: 50600,
			FuelEnd:     50,
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindState))
	})

	t.Run("rejects a return date before the start date", func(t *testing.T) {
		f := newRentalFixture(t)
		rental := open(t, f, 100)

		_, err := f.service.CloseRental(rental.ID, &CloseRentalRequest{
			ReturnDate:  "2026-08-31",
			OdometerEnd: 50100,
			FuelEnd:     70,
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("rejects an odometer reading below the opening one", func(t *testing.T) {
		f := newRentalFixture(t)
		rental := open(t, f, 100)

		_, err := f.service.CloseRental(rental.ID, &CloseRentalRequest{
			ReturnDate:  "2026-09-05",
			OdometerEnd: 49000,
			FuelEnd:     70,
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("rejects a negative extra amount", func(t *testing.T) {
		f := newRentalFixture(t)
		rental := open(t, f, 100)

		_, err := f.service.CloseRental(rental.ID, &CloseRentalRequest{
			ReturnDate:  "2026-09-05",
			OdometerEnd: 50500,
			FuelEnd:     70,
			ExtraAmount: -10,
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("unknown rental is not found", func(t *testing.T) {
		f := newRentalFixture(t)

		_, err := f.service.CloseRental(42, &CloseRentalRequest{
			ReturnDate:  "2026-09-05",
			OdometerEnd: 50500,
			FuelEnd:     70,
		})
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestRentalStoreRejectsSecondOpenRental(t *testing.T) {
	// The storage constraint is the last line of defense when two writers
	// slip past the domain checks.
	rentals := newFakeRentalStore()

	_, err := rentals.Create(&models.Rental{VehicleID: 1, Status: models.RentalStatusOpen})
	require.NoError(t, err)

	_, err = rentals.Create(&models.Rental{VehicleID: 1, Status: models.RentalStatusOpen})
	assert.True(t, apperrors.IsKind(err, apperrors.KindPersistence))
}
